// Package exitcode defines named exit codes shared by the cliopts
// termination path and the bundled command-line tools.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and CI pipelines.
package exitcode

// Exit code constants for the cliopts processing model.
const (
	Success     = 0   // Parse completed and the program ran to the end
	Error       = 1   // Runtime failure: I/O error, misconfiguration
	Usage       = 2   // Help requested or unknown flags on the command line
	Interrupted = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case Usage:
		return "Usage"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}
