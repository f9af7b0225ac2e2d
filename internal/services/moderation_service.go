package services

import (
	"regexp"
	"strings"

	"github.com/asddataking/shittter/internal/models"
)

// Rule is one named moderation predicate. Rules run in order against the
// trimmed, lower-cased note; the first match rejects.
type Rule struct {
	Name  string
	Match func(text string) bool
}

// maxRepeatRun is the longest allowed run of identical consecutive characters.
const maxRepeatRun = 10

// ModerationService classifies report notes with a fixed, deterministic rule
// set. Identical input always yields the identical verdict — scoring
// recomputation depends on that.
type ModerationService struct {
	rules []Rule
}

func NewModerationService() *ModerationService {
	return &ModerationService{rules: defaultRules()}
}

func defaultRules() []Rule {
	sexual := regexp.MustCompile(`\b(sex|sexual|nude|naked|explicit)\b`)
	hateful := regexp.MustCompile(`\b(slur|hate|harass)\w*\b`)
	spam := regexp.MustCompile(`\b(spam|scam|buy now|click here)\b`)
	url := regexp.MustCompile(`https?://\S+`)

	return []Rule{
		{Name: "sexual_content", Match: sexual.MatchString},
		{Name: "hateful_language", Match: hateful.MatchString},
		{Name: "spam_solicitation", Match: spam.MatchString},
		{Name: "repeated_characters", Match: hasRepeatedRun},
		{Name: "embedded_url", Match: url.MatchString},
	}
}

// Classify returns the moderation verdict for a note and, when rejected, the
// name of the rule that fired. Empty or whitespace-only notes always approve.
func (ms *ModerationService) Classify(notes *string) (status string, rule string) {
	if notes == nil || strings.TrimSpace(*notes) == "" {
		return models.ModerationApproved, ""
	}
	text := strings.ToLower(strings.TrimSpace(*notes))
	for _, r := range ms.rules {
		if r.Match(text) {
			return models.ModerationRejected, r.Name
		}
	}
	return models.ModerationApproved, ""
}

// Quality is an advisory [30,90] heuristic, independent of the verdict and
// never part of the public trust score: 30 with no text, otherwise
// 50 + min(40, len/6) capped at 90.
func (ms *ModerationService) Quality(notes *string) int {
	if notes == nil || strings.TrimSpace(*notes) == "" {
		return 30
	}
	n := len(strings.TrimSpace(*notes))
	bonus := n / 6
	if bonus > 40 {
		bonus = 40
	}
	q := 50 + bonus
	if q > 90 {
		q = 90
	}
	return q
}

// hasRepeatedRun reports whether text contains a run of more than
// maxRepeatRun identical consecutive runes. Go's regexp has no
// backreferences, so this is a scan rather than a pattern.
func hasRepeatedRun(text string) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
			if run > maxRepeatRun {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}
