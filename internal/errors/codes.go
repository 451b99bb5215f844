package errors

// Code classifies an error. The values mirror the gRPC status codes the
// importer can produce or receive.
type Code string

const (
	CodeOK               Code = "OK"
	CodeCanceled         Code = "CANCELED"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"
	CodeAborted          Code = "ABORTED"
	CodeUnimplemented    Code = "UNIMPLEMENTED"
	CodeInternal         Code = "INTERNAL"
	CodeUnavailable      Code = "UNAVAILABLE"
)

// Process exit statuses of the statblock CLI
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2
	ExitNotFound    = 3
	ExitConflict    = 4
	ExitUnavailable = 5
)

func (c Code) String() string {
	return string(c)
}

// ExitCode maps the code to the CLI exit status. Bad input exits 2 so
// scripts can tell a rejected statblock from a broken backend.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return ExitOK
	case CodeInvalidArgument:
		return ExitUsage
	case CodeNotFound:
		return ExitNotFound
	case CodeAlreadyExists, CodeAborted:
		return ExitConflict
	case CodeUnavailable, CodeDeadlineExceeded, CodeCanceled:
		return ExitUnavailable
	}
	return ExitFailure
}
