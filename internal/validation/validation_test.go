package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYAML_ValidConfig(t *testing.T) {
	content := []byte(`
exclude:
  - "*.log"
options:
  assets: true
output:
  html: out.html
`)
	assert.NoError(t, ValidateYAML(ConfigSchema, content))
}

func TestValidateYAML_EmptyDocument(t *testing.T) {
	assert.NoError(t, ValidateYAML(ConfigSchema, []byte("")))
}

func TestValidateYAML_UnknownProperty(t *testing.T) {
	err := ValidateYAML(ConfigSchema, []byte("unknown_key: 1\n"))
	require.Error(t, err)

	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidateYAML_WrongTypes(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"exclude not a list", "exclude: vendor\n"},
		{"option not a bool", "options:\n  detail: 3\n"},
		{"output not a string", "output:\n  html: true\n"},
		{"empty exclude pattern", "exclude:\n  - \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateYAML(ConfigSchema, []byte(tt.content)))
		})
	}
}

func TestValidateYAML_MalformedYAML(t *testing.T) {
	err := ValidateYAML(ConfigSchema, []byte("a: [1,\n"))
	assert.Error(t, err)
}

func TestValidateJSON_MissingSchema(t *testing.T) {
	err := ValidateJSON("no-such-schema.json", map[string]any{})
	assert.Error(t, err)
}

func TestValidationError_Message(t *testing.T) {
	assert.Equal(t, "validation failed", ValidationError{}.Error())
	assert.Equal(t, "validation failed: a; b", ValidationError{Errors: []string{"a", "b"}}.Error())
}
