package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeDocument(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.html")
	content := `<style>body { margin: 0 }</style><div style="width: 500px; height: 20px; background-color: red"></div><p>Hello</p>`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDump(t *testing.T) {
	out, err := execute(t, "dump", writeDocument(t), "--width", "300", "--height", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "Viewport#")
	assert.Contains(t, out, "Hello")
}

func TestRender(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.png")
	out, err := execute(t, "render", writeDocument(t), "-o", output, "--width", "300", "--height", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	// the viewport grows to enclose the div
	assert.Equal(t, 500, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("CSSFLOW_FONT_FACE", "basic")
	out, err := execute(t, "config", "--width", "123")
	require.NoError(t, err)
	assert.Contains(t, out, "width: 123")
	assert.Contains(t, out, "face: basic")
}

func TestInvalidInput(t *testing.T) {
	_, err := execute(t, "dump", filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)

	_, err = execute(t, "config", "--log-level", "verbose")
	assert.ErrorContains(t, err, `unknown level "verbose"`)

	_, err = execute(t, "dump")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "cssflow 0.3.0\n", out)
}
