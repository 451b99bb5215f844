// Package errors is the importer's coded error type.
//
// Every layer returns *Error values built from a Code and a message:
//
//	errors.InvalidArgument("statblock is required").WithSource(file)
//	errors.NotFoundf("ability %q not found", name).WithMeta(errors.MetaSuggestion, "Club")
//
// Wrap keeps the code of the error it wraps, so a NotFound from a repository
// is still NotFound after the orchestrator adds context:
//
//	if err != nil {
//	    return nil, errors.Wrap(err, "failed to get monster")
//	}
//
// Input checks go through a ValidationBuilder, which yields a single
// InvalidArgument listing every bad field in the order it was found:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", m.Name, vb)
//	errors.ValidateRange("workers", n, 1, 256, vb)
//	return vb.Build()
//
// Handlers convert with ToGRPCError; the client converts back with
// FromGRPCError, metadata included. The CLI exits with GetCode(err).ExitCode().
package errors
