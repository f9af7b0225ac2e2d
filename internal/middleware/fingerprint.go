package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/asddataking/shittter/internal/config"
	"github.com/gofiber/fiber/v2"
)

const fingerprintKey = "device_fingerprint"

// DeviceFingerprint computes a salted one-way hash of the client IP and
// user agent and stores it in request locals. The raw IP is never persisted;
// the hash is the rate-limiting key.
func DeviceFingerprint(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(fingerprintKey, HashDevice(clientIP(c), c.Get("User-Agent"), cfg.DeviceHashSalt))
		return c.Next()
	}
}

// GetFingerprint returns the fingerprint set by DeviceFingerprint, or "" if
// the middleware did not run.
func GetFingerprint(c *fiber.Ctx) string {
	if v, ok := c.Locals(fingerprintKey).(string); ok {
		return v
	}
	return ""
}

// HashDevice is the stable fingerprint function: sha256(ip + userAgent + salt).
func HashDevice(ip, userAgent, salt string) string {
	sum := sha256.Sum256([]byte(ip + userAgent + salt))
	return hex.EncodeToString(sum[:])
}

func clientIP(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		if first, _, found := strings.Cut(fwd, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}
	if real := c.Get("X-Real-IP"); real != "" {
		return real
	}
	return c.IP()
}
