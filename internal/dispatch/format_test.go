package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"gotest.tools/v3/golden"

	"github.com/conneroisu/textutils/internal/errors"
	"github.com/conneroisu/textutils/internal/registry"
)

func TestListGolden(t *testing.T) {
	d, out := newTestDispatcher(t)

	require.NoError(t, d.Dispatch(context.Background(), ListCommand, ""))
	golden.Assert(t, out.String(), "list_table.golden")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ExitUsage, errors.ExitCode(err))
				assert.Contains(t, err.Error(), "csv")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func sampleEntries() []registry.Entry {
	return []registry.Entry{
		{Name: "count", Description: "Count things", Category: "Statistics"},
		{Name: "reverse", Description: "Reverse text"},
	}
}

func TestRenderListJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, sampleEntries(), FormatJSON))

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "count", decoded[0]["name"])
	assert.Equal(t, "Statistics", decoded[0]["category"])
	_, hasCategory := decoded[1]["category"]
	assert.False(t, hasCategory)
}

func TestRenderListJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRenderListYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, sampleEntries(), FormatYAML))

	var decoded []registry.Entry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "reverse", decoded[1].Name)
	assert.Equal(t, "Reverse text", decoded[1].Description)
	assert.NotContains(t, buf.String(), "handler")
}

func TestRenderListUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, RenderList(&buf, sampleEntries(), Format("xml")))
}

func TestWithListFormat(t *testing.T) {
	d, out := newTestDispatcher(t, WithListFormat(FormatYAML))

	require.NoError(t, d.Dispatch(context.Background(), ListCommand, ""))
	assert.Contains(t, out.String(), "- name: camel_case")
}

func TestRenderGrouped(t *testing.T) {
	entries := []registry.Entry{
		{Name: "count", Description: "Count things", Category: "Statistics"},
		{Name: "echo", Description: "Echo the input"},
		{Name: "reverse", Description: "Reverse text", Category: "Transform"},
		{Name: "rot13", Description: "ROT13", Category: "Encoding"},
		{Name: "zap", Description: "Custom", Category: "Custom"},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderGrouped(&buf, entries, []string{"Statistics", "Transform", "Naming", "Encoding"}))

	want := `Statistics:
  count  Count things

Transform:
  reverse  Reverse text

Encoding:
  rot13  ROT13

Custom:
  zap  Custom

Other Commands:
  echo  Echo the input
`
	assert.Equal(t, want, buf.String())
	assert.NotContains(t, buf.String(), "Naming:")
}

func TestRenderGroupedEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderGrouped(&buf, nil, []string{"Statistics"}))
	assert.Empty(t, buf.String())
}
