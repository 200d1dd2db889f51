package clusterconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spalhad/kvstore/internal/kverrors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cluster.config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadParsesConfig(t *testing.T) {
	path := writeConfig(t, `{
		"replication": 3,
		"min_correct_reads": 2,
		"min_correct_writes": 2,
		"addresses": ["http://a", "http://b", "http://c"]
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Replication)
	assert.Equal(t, 2, cfg.MinCorrectReads)
	assert.Equal(t, 2, cfg.MinCorrectWrites)
	assert.Equal(t, []string{"http://a", "http://b", "http://c"}, cfg.Addresses)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidateSelfIDAcceptsInRangeSlot(t *testing.T) {
	cfg := Config{Addresses: []string{"http://a", "http://b"}}
	assert.NoError(t, cfg.ValidateSelfID(1))
}

func TestValidateSelfIDRejectsOutOfRangeSlot(t *testing.T) {
	cfg := Config{Addresses: []string{"http://a", "http://b"}}

	err := cfg.ValidateSelfID(2)
	assert.ErrorAs(t, err, &kverrors.SelfIdOutOfRange{})

	err = cfg.ValidateSelfID(-1)
	assert.ErrorAs(t, err, &kverrors.SelfIdOutOfRange{})
}
