package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager(t *testing.T) *FileManager {
	t.Helper()
	base := t.TempDir()
	fm := NewFileManager(
		filepath.Join(base, "input"),
		filepath.Join(base, "output"),
		filepath.Join(base, "archive"),
		"folha_{sequence}_{timestamp}",
	)
	require.NoError(t, fm.EnsureDirectories())
	return fm
}

func TestDiscoverInputFiles(t *testing.T) {
	fm := testManager(t)

	require.NoError(t, os.WriteFile(filepath.Join(fm.InputDir, "a.xlsx"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(fm.InputDir, "b.xlsx"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(fm.InputDir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(fm.InputDir, "sub.xlsx"), 0755))

	files, err := fm.DiscoverInputFiles("")
	require.NoError(t, err)
	assert.Len(t, files, 2)
	for _, f := range files {
		assert.True(t, strings.HasSuffix(f, ".xlsx"))
	}
}

func TestOutputNamePlaceholders(t *testing.T) {
	fm := testManager(t)

	name := fm.OutputName(42, ".rem")
	assert.True(t, strings.HasPrefix(name, "folha_42_"))
	assert.True(t, strings.HasSuffix(name, ".rem"))
	assert.NotContains(t, name, "{timestamp}")

	fm.NameFormat = "{uuid}"
	uuidName := fm.OutputName(1, ".xml")
	assert.NotContains(t, uuidName, "{uuid}")
	assert.True(t, strings.HasSuffix(uuidName, ".xml"))
	// UUID plus extension.
	assert.Len(t, uuidName, 40)
}

func TestWriteOutput(t *testing.T) {
	fm := testManager(t)

	path, err := fm.WriteOutput("folha_1.rem", []byte("conteudo"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "conteudo", string(data))
	assert.Equal(t, fm.OutputDir, filepath.Dir(path))
}

func TestArchiveInputFile(t *testing.T) {
	fm := testManager(t)

	src := filepath.Join(fm.InputDir, "folha.xlsx")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))

	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)

	assert.NoFileExists(t, src)
	assert.FileExists(t, archived)
	assert.Equal(t, fm.ArchiveDir, filepath.Dir(archived))
	assert.True(t, strings.HasPrefix(filepath.Base(archived), "folha_"))
	assert.True(t, strings.HasSuffix(archived, ".xlsx"))
}
