package appstate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileDefaultsToAdminModeOn(t *testing.T) {
	st, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)

	assert.True(t, st.GetAdminMode())
}

func TestSetAdminModePersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appstate.json")

	st, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, st.SetAdminMode(false))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.False(t, reloaded.GetAdminMode())

	require.NoError(t, reloaded.SetAdminMode(true))

	again, err := Load(path)
	require.NoError(t, err)
	assert.True(t, again.GetAdminMode())
}

func TestLoadCorruptFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appstate.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
