package contact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		draft  Draft
		fields []string
	}{
		{"complete", validDraft(), nil},
		{"empty", Draft{}, []string{"name", "email", "subject", "message"}},
		{"bad email", Draft{Name: "a", Email: "not-an-email", Subject: "s", Message: "m"}, []string{"email"}},
		{"missing message", Draft{Name: "a", Email: "a@b.co", Subject: "s"}, []string{"message"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.draft)
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tt.fields, verr.Fields)
		})
	}
}

func TestTrimmedRejectsBlankFields(t *testing.T) {
	d := Draft{Name: "   ", Email: " ada@example.com ", Subject: "\tassunto ", Message: "oi"}
	trimmed := d.Trimmed()
	assert.Equal(t, "ada@example.com", trimmed.Email)
	assert.Equal(t, "assunto", trimmed.Subject)

	var verr *ValidationError
	require.ErrorAs(t, Validate(trimmed), &verr)
	assert.Equal(t, []string{"name"}, verr.Fields)
}
