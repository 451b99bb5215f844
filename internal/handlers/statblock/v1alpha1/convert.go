package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
)

// toStruct renders any JSON-serializable value as a Struct
func toStruct(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

// structJSON turns a request Struct back into JSON bytes
func structJSON(s *structpb.Struct) ([]byte, error) {
	raw, err := s.MarshalJSON()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "request is not valid json")
	}
	return raw, nil
}

// stringField reads a string field from a request Struct
func stringField(s *structpb.Struct, name string) string {
	if s == nil {
		return ""
	}
	if v, ok := s.GetFields()[name]; ok {
		return v.GetStringValue()
	}
	return ""
}

// intField reads a whole number field from a request Struct
func intField(s *structpb.Struct, name string) int {
	if s == nil {
		return 0
	}
	if v, ok := s.GetFields()[name]; ok {
		return int(v.GetNumberValue())
	}
	return 0
}
