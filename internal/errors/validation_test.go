package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/statblock-importer/internal/errors"
)

func TestValidationBuilderEmpty(t *testing.T) {
	assert.NoError(t, errors.NewValidationBuilder().Build())
}

func TestValidationBuilderKeepsFieldOrder(t *testing.T) {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("name").
		InvalidField(errors.ItemField(1, "type"), "must be feature or ability").
		Field("name", "must not be blank")

	err := vb.Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Equal(t,
		"INVALID_ARGUMENT: validation failed: name: is required, must not be blank; items[1].type: is invalid: must be feature or ability",
		err.Error())

	fields, ok := errors.GetMeta(err)[errors.MetaValidation].(map[string][]string)
	require.True(t, ok)
	assert.Len(t, fields, 2)
}

func TestValidateHelpers(t *testing.T) {
	testCases := []struct {
		name    string
		check   func(vb *errors.ValidationBuilder)
		wantErr bool
	}{
		{
			name:    "blank name",
			check:   func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "   ", vb) },
			wantErr: true,
		},
		{
			name:  "present name",
			check: func(vb *errors.ValidationBuilder) { errors.ValidateRequired("name", "Goblin", vb) },
		},
		{
			name:    "workers above range",
			check:   func(vb *errors.ValidationBuilder) { errors.ValidateRange("workers", 300, 1, 256, vb) },
			wantErr: true,
		},
		{
			name:  "workers at bound",
			check: func(vb *errors.ValidationBuilder) { errors.ValidateRange("workers", 256, 1, 256, vb) },
		},
		{
			name: "unknown characteristic",
			check: func(vb *errors.ValidationBuilder) {
				errors.ValidateEnum("highest", "luck", []string{"might", "agility"}, vb)
			},
			wantErr: true,
		},
		{
			name: "known characteristic",
			check: func(vb *errors.ValidationBuilder) {
				errors.ValidateEnum("highest", "might", []string{"might", "agility"}, vb)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vb := errors.NewValidationBuilder()
			tc.check(vb)
			err := vb.Build()
			if tc.wantErr {
				assert.True(t, errors.IsInvalidArgument(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEnumMessage(t *testing.T) {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("log_level", "loud", []string{"debug", "info"}, vb)

	assert.EqualError(t, vb.Build(), "INVALID_ARGUMENT: validation failed: log_level: must be one of: debug, info")
}
