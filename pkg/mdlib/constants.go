package mdlib

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Command completed successfully
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Configuration rejected by its JSON Schema
	ExitRecordError   = 11 // Record rejected by its XSD or container malformed
	ExitCitationError = 12 // DOI citation could not be resolved
	ExitUnknownError  = 13 // Unknown standard or named configuration
)

const (
	// DefaultCitationTimeout bounds a single DOI citation request.
	DefaultCitationTimeout = 10 * time.Second

	// DefaultCitationRetries is the number of retries after a transient
	// citation lookup failure. One retry, then fail.
	DefaultCitationRetries = 1

	// DefaultCitationRetryDelay is the fixed delay before the retry.
	DefaultCitationRetryDelay = 500 * time.Millisecond

	// DefaultXMLLint is the XSD validator binary looked up on PATH.
	DefaultXMLLint = "xmllint"

	// DefaultServerAddr is the listen address of the HTTP front-end.
	DefaultServerAddr = ":9000"

	// CitationAccept is the content negotiation header sent to DOI resolvers
	// to receive a formatted bibliography entry.
	CitationAccept = "text/x-bibliography; style=apa; locale=en-GB"
)
