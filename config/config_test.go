package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/cssflow/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"golang.org/x/image/font/gofont/goregular"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, 800., cfg.Viewport.Width)
	assert.Equal(t, 600., cfg.Viewport.Height)
	assert.Equal(t, 16., cfg.Font.Size)
	assert.Equal(t, "go-regular", cfg.Font.Face)
	assert.True(t, cfg.Style.Default)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Viewport.Width = 0
	cfg.Font.Face = "comic"
	cfg.Logger.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.Contains(t, err.Error(), "viewport.width must be positive")
	assert.Contains(t, err.Error(), `unknown face "comic"`)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cssflow.yaml")
	require.NoError(t, os.WriteFile(file, []byte("viewport:\n  width: 320\nfont:\n  face: basic\n"), 0o644))
	t.Setenv("CSSFLOW_VIEWPORT_HEIGHT", "200")

	v, err := NewViper(file)
	require.NoError(t, err)
	cfg, err := NewConfigFromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 320., cfg.Viewport.Width)
	assert.Equal(t, 200., cfg.Viewport.Height)
	assert.Equal(t, "basic", cfg.Font.Face)
	assert.Equal(t, 16., cfg.Font.Size)

	_, err = NewViper(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("CSSFLOW_FONT_SIZE", "-1")
	v, err = NewViper(file)
	require.NoError(t, err)
	_, err = NewConfigFromViper(v)
	assert.ErrorContains(t, err, "font.size must be positive")
}

func TestOptions(t *testing.T) {
	sheet := filepath.Join(t.TempDir(), "extra.css")
	require.NoError(t, os.WriteFile(sheet, []byte("p { margin: 0 }"), 0o644))

	cfg := NewDefaultConfig()
	cfg.Font.Face = "basic"
	cfg.Style.Default = false
	cfg.Style.Stylesheets = []string{sheet}

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, text.BasicFonts{}, opts.Fonts)
	assert.True(t, opts.NoDefaultStyle)
	assert.Len(t, opts.Stylesheets, 2)

	cfg.Style.Stylesheets = []string{sheet + ".missing"}
	_, err = cfg.Options()
	assert.Error(t, err)

	cfg.Font.Face = "go-regular"
	fonts, err := cfg.Fonts()
	require.NoError(t, err)
	_, ok := fonts.(*text.OpenTypeFonts)
	assert.True(t, ok)

	font := filepath.Join(t.TempDir(), "regular.ttf")
	require.NoError(t, os.WriteFile(font, goregular.TTF, 0o644))
	cfg.Font.File = font
	fonts, err = cfg.Fonts()
	require.NoError(t, err)
	otf, ok := fonts.(*text.OpenTypeFonts)
	require.True(t, ok)
	assert.False(t, otf.Info.CFF)

	cfg.Font.File = sheet
	_, err = cfg.Fonts()
	assert.ErrorContains(t, err, "loading font")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, NewDefaultConfig()))
	out := buf.String()
	assert.Contains(t, out, "viewport:\n  width: 800\n")
	assert.Contains(t, out, "face: go-regular")
	assert.Contains(t, out, "level: warn")
}
