package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputOptionsDirectoryKeepsPreviousOnEmptyOrFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	o := NewOutputOptions("/start", "jpg", nil)
	assert.False(t, o.SetDirectory("  "))
	assert.False(t, o.SetDirectory(file))
	assert.Equal(t, "/start", o.OutputSpec().TargetDirectory)

	assert.True(t, o.SetDirectory(dir))
	assert.Equal(t, dir, o.OutputSpec().TargetDirectory)

	assert.True(t, o.SetDirectory(filepath.Join(dir, "later")))
}

func TestOutputOptionsFormatIsValidated(t *testing.T) {
	o := NewOutputOptions("/out", ".jpg", []string{"jpg", ".PNG"})
	assert.Equal(t, ".jpg", o.OutputSpec().TargetExtension)
	assert.Equal(t, []string{".jpg", ".png"}, o.Formats())

	require.NoError(t, o.SetFormat("png"))
	assert.Equal(t, ".png", o.OutputSpec().TargetExtension)

	assert.Error(t, o.SetFormat(".webp"))
	assert.Error(t, o.SetFormat(""))
	assert.Equal(t, ".png", o.OutputSpec().TargetExtension)
}

func TestOutputOptionsWithoutFormatListAcceptsAnything(t *testing.T) {
	o := NewOutputOptions("/out", ".jpg", nil)
	require.NoError(t, o.SetFormat(".webp"))
	assert.Equal(t, ".webp", o.OutputSpec().TargetExtension)
}
