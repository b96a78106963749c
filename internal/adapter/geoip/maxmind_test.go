package geoip

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adgate/internal/core/port"
)

var _ port.GeoDatabase = (*Reader)(nil)

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.mmdb"))
	assert.ErrorContains(t, err, "open geoip database")
}

func TestOpenRejectsNonDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.mmdb")
	require.NoError(t, os.WriteFile(path, []byte("not a maxmind database"), 0o600))

	_, err := Open(path)
	assert.Error(t, err)
}
