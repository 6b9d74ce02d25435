// Package exitcode defines named exit codes for the llm-ask CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and CI pipelines.
package exitcode

const (
	Success     = 0   // Response received and printed
	Usage       = 1   // Invalid flags, missing API key, blank prompt
	Exhausted   = 2   // Retry budget consumed with no accepted response
	Interrupted = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Usage:
		return "Usage"
	case Exhausted:
		return "Exhausted"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
