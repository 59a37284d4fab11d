package json_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsonout "github.com/lintscope/lintscope/internal/adapter/output/json"
	"github.com/lintscope/lintscope/internal/domain"
)

func TestEncode_NilFindingsIsEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jsonout.Encode(&buf, nil))

	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	findings := []domain.Finding{
		{Path: "a.py", Line: 10, Column: 5, Code: "E501", Message: "line too long"},
		{Path: "b.py", Line: 2, Code: "W503", Message: "line break"},
	}

	var buf bytes.Buffer
	require.NoError(t, jsonout.Encode(&buf, findings))

	decoded, err := jsonout.DecodeFindings(&buf)
	require.NoError(t, err)
	assert.Equal(t, findings, decoded)
}

func TestEncode_OmitsZeroColumn(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jsonout.Encode(&buf, []domain.Finding{
		{Path: "a.py", Line: 1, Code: "E501", Message: "m"},
	}))

	assert.NotContains(t, buf.String(), "column")
}

func TestWriteCreatesFile(t *testing.T) {
	dir := t.TempDir()
	writer := jsonout.NewWriter(func() string { return "20260827T120000Z" })

	path, err := writer.Write(context.Background(), jsonout.Artifact{
		OutputDir:  dir,
		Repository: "lintscope",
		Findings: []domain.Finding{
			{Path: "a.py", Line: 1, Code: "E501", Message: "m"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, path, "findings_lintscope_20260827T120000Z.json")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"code": "E501"`)
}

func TestReadFindings(t *testing.T) {
	dir := t.TempDir()
	writer := jsonout.NewWriter(func() string { return "ts" })

	want := []domain.Finding{{Path: "a.py", Line: 1, Code: "E501", Message: "m"}}
	path, err := writer.Write(context.Background(), jsonout.Artifact{
		OutputDir:  dir,
		Repository: "repo",
		Findings:   want,
	})
	require.NoError(t, err)

	got, err := jsonout.ReadFindings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadFindings_MissingFile(t *testing.T) {
	_, err := jsonout.ReadFindings("/nonexistent/findings.json")
	require.Error(t, err)
}

func TestDecodeFindings_Malformed(t *testing.T) {
	_, err := jsonout.DecodeFindings(strings.NewReader("{not json"))
	require.Error(t, err)
}
