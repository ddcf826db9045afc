package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HatsuSumi/project-stats/internal/lang"
)

func TestLanguageList_ToText(t *testing.T) {
	list := &languageList{descriptors: lang.Descriptors()}

	var buf bytes.Buffer
	list.ToText(&buf)
	out := buf.String()

	assert.Contains(t, out, "JavaScript")
	assert.Contains(t, out, ".mjs")
	assert.Contains(t, out, "file types")
}

func TestLanguageList_ToJSON(t *testing.T) {
	list := &languageList{descriptors: lang.Descriptors()}

	doc, ok := list.ToJSON().(map[string]interface{})
	require.True(t, ok)

	descriptors, ok := doc["languages"].([]lang.Descriptor)
	require.True(t, ok)
	assert.NotEmpty(t, descriptors)
	assert.Equal(t, len(descriptors), doc["count"])
}
