package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// ValidationErrorResponse carries field-level detail for malformed input.
type ValidationErrorResponse struct {
	Error   bool              `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// RateLimitResponse includes a coarse retry hint in seconds. The windows are
// rolling, so the hint is fixed guidance, not an exact reset time.
type RateLimitResponse struct {
	Error      bool   `json:"error"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
