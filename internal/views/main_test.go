package views

import (
	"testing"

	"zoop-converter/internal/models"
	"zoop-converter/internal/prefs"
	"zoop-converter/internal/report"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T) *MainView {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	w := a.NewWindow("zoop")
	return NewMainView(w, ViewOptions{
		Formats: []string{".jpg", ".png"},
		Output:  models.OutputSpec{TargetDirectory: t.TempDir(), TargetExtension: ".png"},
		Theme:   prefs.ThemeDark,
	})
}

func TestPlaceholderFollowsLiveEntries(t *testing.T) {
	view := newTestView(t)
	assert.True(t, view.FileList().PlaceholderVisible())

	view.ShowEntries([]models.IndexedEntry{
		{Index: 0, Entry: models.Entry{Path: "/in/a.jpg", Ext: ".jpg"}},
		{Index: 2, Entry: models.Entry{Path: "/in/c.jpg", Ext: ".jpg"}},
	})
	assert.False(t, view.FileList().PlaceholderVisible())
	assert.Equal(t, 2, view.FileList().Len())

	view.ShowEntries(nil)
	assert.True(t, view.FileList().PlaceholderVisible())
}

func TestSelectionDropsEntriesThatLeaveTheList(t *testing.T) {
	view := newTestView(t)
	entries := []models.IndexedEntry{
		{Index: 0, Entry: models.Entry{Path: "/in/a.jpg"}},
		{Index: 1, Entry: models.Entry{Path: "/in/b.jpg"}},
	}
	view.ShowEntries(entries)

	view.FileList().SetChecked(1, true)
	view.FileList().SetChecked(0, true)
	assert.Equal(t, []int{0, 1}, view.Selection())

	view.ShowEntries(entries[:1])
	assert.Equal(t, []int{0}, view.Selection())
}

func TestStateAndLog(t *testing.T) {
	view := newTestView(t)
	assert.Equal(t, "No conversion started", view.StateLabel().Text())

	view.SetState(models.StateConverting)
	assert.Equal(t, "Converting...", view.StateLabel().Text())
	view.SetState(models.StateIdle)
	assert.Equal(t, "No conversion started", view.StateLabel().Text())

	view.AppendLog(report.ColorSuccess, "INFO : Converted a.jpg to a.png")
	view.AppendLog(report.ColorFailure, "ERROR : Failed to convert b.jpg to b.png (broken)")
	require.Len(t, view.LogPane().Lines(), 2)
	assert.Contains(t, view.LogPane().Lines()[1], "ERROR")
}

func TestOptionsKeepPreviousDirectoryWhenRejected(t *testing.T) {
	view := newTestView(t)
	start := view.Options().Directory()

	view.SetDirectoryHandler(func(dir string) bool { return dir != "" })
	view.ApplyDirectory("")
	assert.Equal(t, start, view.Options().Directory())

	view.ApplyDirectory("/elsewhere")
	assert.Equal(t, "/elsewhere", view.Options().Directory())
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, variantTheme{variant: theme.VariantDark}, ThemeFor(prefs.ThemeDark))
	assert.Equal(t, variantTheme{variant: theme.VariantLight}, ThemeFor(prefs.ThemeLight))
	assert.Equal(t, theme.DefaultTheme(), ThemeFor(prefs.ThemeSystem))
}
