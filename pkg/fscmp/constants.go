package fscmp

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Comparison completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration (directories, rules)
	ExitDirectoryNotFound = 20 // An input directory does not exist
	ExitNotADirectory     = 21 // An input path exists but is not a directory
)

// EnvExtraExcludes is the environment variable holding extra exclusion
// patterns as a comma-separated list. Patterns from it are appended after
// config-file and CLI patterns. Typically set through a .env file.
const EnvExtraExcludes = "FSCMP_EXCLUDE"
