package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/todo/internal/domain"
)

func sampleTasks() []domain.Task {
	return []domain.Task{
		{Index: 1, Description: "buy milk", Done: true},
		{Index: 2, Description: "call mom, later"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"csv", FormatCSV, false},
		{"pdf", FormatPDF, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_Binary(t *testing.T) {
	assert.True(t, FormatPDF.Binary())
	assert.False(t, FormatText.Binary())
	assert.False(t, FormatJSON.Binary())
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, sampleTasks()))
	assert.Equal(t, "1. [x] buy milk\n2. [ ] call mom, later\n", buf.String())
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sampleTasks()))

	var got document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleTasks(), got.Tasks)
}

func TestRender_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, nil))
	assert.JSONEq(t, `{"tasks": []}`, buf.String())
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, sampleTasks()))

	var got document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleTasks(), got.Tasks)
	assert.Contains(t, buf.String(), "description: buy milk")
}

func TestRender_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatCSV, sampleTasks()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"index", "status", "description"},
		{"1", "Done", "buy milk"},
		{"2", "Pending", "call mom, later"},
	}, records)
}

func TestRender_PDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatPDF, sampleTasks()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRender_PDFEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatPDF, nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Format("xml"), sampleTasks())
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
	assert.Zero(t, buf.Len())
}

func TestExporter(t *testing.T) {
	var e Exporter
	assert.True(t, e.IsBinary("PDF"))
	assert.False(t, e.IsBinary("json"))
	assert.False(t, e.IsBinary("bogus"))

	var buf bytes.Buffer
	require.NoError(t, e.Export(&buf, "text", sampleTasks()))
	assert.Equal(t, "1. [x] buy milk\n2. [ ] call mom, later\n", buf.String())

	assert.ErrorIs(t, e.Export(&buf, "bogus", nil), domain.ErrUnknownFormat)
}
