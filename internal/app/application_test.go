package app

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"zoop-converter/internal/config"
	"zoop-converter/internal/models"
	"zoop-converter/internal/prefs"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	return config.Config{
		SupportedExtensions: []string{".png", ".jpg"},
		OutputDirectory:     filepath.Join(dir, "converted"),
		OutputFormat:        ".jpg",
		Codec:               config.CodecImaging,
		JPEGQuality:         90,
		AutoOrient:          true,
		ThumbnailSize:       16,
		PrefsBackend:        config.PrefsBackendFile,
		PrefsFile:           filepath.Join(dir, "prefs.yaml"),
	}
}

func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func newTestApplication(t *testing.T, cfg config.Config) *Application {
	t.Helper()
	fyneApp := test.NewApp()
	t.Cleanup(fyneApp.Quit)

	a, err := newApplication(fyneApp, cfg, nil)
	require.NoError(t, err)
	return a
}

func TestNewCodec(t *testing.T) {
	cfg := testConfig(t)

	c, err := NewCodec(cfg)
	require.NoError(t, err)
	assert.Equal(t, "imaging", c.Name())

	cfg.Codec = "paint"
	_, err = NewCodec(cfg)
	assert.Error(t, err)
}

func TestNewApplicationRejectsFormatTheCodecCannotWrite(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutputFormat = ".webp"

	_, err := newApplication(test.NewApp(), cfg, nil)
	assert.Error(t, err)
}

func TestAddConvertAndRemoveThroughHandlers(t *testing.T) {
	cfg := testConfig(t)
	a := newTestApplication(t, cfg)

	in := t.TempDir()
	first := writeTestPNG(t, in, "first.png")
	second := writeTestPNG(t, in, "second.png")

	a.handlers.HandleDropped([]string{first, second, filepath.Join(in, "notes.txt")})
	require.Equal(t, 2, a.view.FileList().Len())
	assert.Contains(t, a.view.LogPane().Lines()[0], "1 non supported file(s) selected")

	a.view.FileList().SetChecked(1, true)
	a.handlers.HandleRemove()
	assert.Equal(t, 1, a.view.FileList().Len())

	a.handlers.HandleConvertAll()
	a.handlers.Wait()

	summary, batches := a.state.LastSummary()
	assert.Equal(t, 1, batches)
	assert.Equal(t, models.Summary{Success: 1}, summary)
	assert.FileExists(t, filepath.Join(cfg.OutputDirectory, "first.jpg"))
	assert.NoFileExists(t, filepath.Join(cfg.OutputDirectory, "second.jpg"))
}

func TestThemeChangeIsPersisted(t *testing.T) {
	cfg := testConfig(t)
	a := newTestApplication(t, cfg)
	assert.Equal(t, prefs.ThemeDark, a.view.ThemeName())

	a.handlers.HandleThemeChange(prefs.ThemeLight)
	assert.Equal(t, prefs.ThemeLight, a.view.ThemeName())

	store := prefs.NewStore(prefs.FileBackend{Path: cfg.PrefsFile}, nil)
	assert.Equal(t, prefs.ThemeLight, store.Load().Theme)
}

func TestLifecycleShutdownIsIdempotent(t *testing.T) {
	a := newTestApplication(t, testConfig(t))

	a.lifecycle.Shutdown()
	a.lifecycle.Shutdown()
	a.shutdown.Shutdown()
}
