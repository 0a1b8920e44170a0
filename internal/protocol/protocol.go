package protocol

// Tool execution statuses used in logs and audit events.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the payload returned to MCP clients for every tool call.
type Result struct {
	// Text is the human-readable result or error message.
	Text string `json:"text"`
	// IsError marks the result as a failure.
	IsError bool `json:"is_error"`
}

// Status returns the status string matching the error flag.
func (r Result) Status() string {
	if r.IsError {
		return StatusError
	}
	return StatusSuccess
}

// Text builds a successful Result.
func Text(text string) Result {
	return Result{Text: text}
}

// Error builds a failed Result.
func Error(text string) Result {
	return Result{Text: text, IsError: true}
}
