package domain

// TestError represents an error reported for a test result
type TestError struct {
	Message string `json:"message,omitempty"`
	Stack   string `json:"stack,omitempty"`
}
