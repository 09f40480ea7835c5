package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a config file into a temp dir and returns its path.
// Directory paths inside the YAML are anchored to the same temp dir so
// validation creates them there instead of the working directory.
func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	base := t.TempDir()
	path := writeConfig(t, `
input_dir: "`+filepath.Join(base, "in")+`"
output_dir: "`+filepath.Join(base, "out")+`"
archive_dir: "`+filepath.Join(base, "done")+`"
originator:
  tax_id: "00.394.460/0001-41"
  name: "Secretaria de Administração"
  bank_code: "001"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "folha_{sequence}_{timestamp}", cfg.OutputNameFormat)
	assert.Equal(t, 2, cfg.ESocial.Environment)
	assert.Equal(t, 1, cfg.ESocial.EmployerTaxIDKind)
	assert.Equal(t, "1.0", cfg.ESocial.ProcVersion)
	// The employer defaults to the originator.
	assert.Equal(t, "00.394.460/0001-41", cfg.ESocial.EmployerTaxID)

	// Validation creates the working directories.
	for _, dir := range []string{cfg.InputDir, cfg.OutputDir, cfg.ArchiveDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestLoadKeepsExplicitValues(t *testing.T) {
	base := t.TempDir()
	path := writeConfig(t, `
input_dir: "`+filepath.Join(base, "in")+`"
output_dir: "`+filepath.Join(base, "out")+`"
archive_dir: "`+filepath.Join(base, "done")+`"
log_level: "debug"
output_name_format: "rem_{uuid}"
originator:
  tax_id: "00394460000141"
  bank_code: "104"
esocial:
  environment: 1
  proc_version: "2.3"
  employer_tax_id: "11.222.333/0001-81"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "rem_{uuid}", cfg.OutputNameFormat)
	assert.Equal(t, 1, cfg.ESocial.Environment)
	assert.Equal(t, "2.3", cfg.ESocial.ProcVersion)
	assert.Equal(t, "11.222.333/0001-81", cfg.ESocial.EmployerTaxID)
}

func TestLoadRejectsMissingTaxID(t *testing.T) {
	path := writeConfig(t, `
originator:
  bank_code: "001"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "originator.tax_id")
}

func TestLoadRejectsMissingBankCode(t *testing.T) {
	path := writeConfig(t, `
originator:
  tax_id: "00394460000141"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "originator.bank_code")
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "originator: [not: a: mapping")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
