package errors

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var toGRPC = map[Code]codes.Code{
	CodeOK:               codes.OK,
	CodeCanceled:         codes.Canceled,
	CodeInvalidArgument:  codes.InvalidArgument,
	CodeDeadlineExceeded: codes.DeadlineExceeded,
	CodeNotFound:         codes.NotFound,
	CodeAlreadyExists:    codes.AlreadyExists,
	CodeAborted:          codes.Aborted,
	CodeUnimplemented:    codes.Unimplemented,
	CodeInternal:         codes.Internal,
	CodeUnavailable:      codes.Unavailable,
}

var fromGRPC = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(toGRPC))
	for code, grpcCode := range toGRPC {
		m[grpcCode] = code
	}
	return m
}()

// GRPCCode returns the matching gRPC status code; unknown codes are Unknown
func (c Code) GRPCCode() codes.Code {
	if gc, ok := toGRPC[c]; ok {
		return gc
	}
	return codes.Unknown
}

// ToGRPCError converts err to a gRPC status error. Metadata travels as a
// google.protobuf.Struct detail and is dropped if it cannot be converted.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var e *Error
	if !As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(e.Code.GRPCCode(), e.Message)
	if details, derr := metaDetails(e.Meta); derr == nil && details != nil {
		if withDetails, werr := st.WithDetails(details); werr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

// FromGRPCError turns a status error back into an *Error, restoring metadata
// from the first Struct detail. Codes the importer never produces map to Internal.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	code, known := fromGRPC[st.Code()]
	if !known {
		code = CodeInternal
	}

	out := &Error{Code: code, Message: st.Message()}
	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			out.Meta = meta.AsMap()
			break
		}
	}
	return out
}

// metaDetails round-trips meta through JSON so typed slices and maps become
// Struct-compatible values.
func metaDetails(meta map[string]any) (*structpb.Struct, error) {
	if len(meta) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}

	return structpb.NewStruct(generic)
}
