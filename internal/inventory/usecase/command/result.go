package command

// Result carries the outcome of a mutation back to the presentation shell.
// Business failures (insufficient stock, unknown IDs) land here as
// Success=false with a human-readable message instead of an error, so the
// shell can render them inline.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func failure(message string) *Result {
	return &Result{Success: false, Message: message}
}

func success(message string) *Result {
	return &Result{Success: true, Message: message}
}
