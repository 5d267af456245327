package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
}

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range settingsCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "show")
	assert.Contains(t, names, "set")
	assert.Contains(t, names, "unset")
}

func TestSettingsShowCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "show"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No settings configured")
}

func TestSettingsSetAndShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "set", "ollama.generation_model", "mistral"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "ollama.generation_model = mistral")

	buf.Reset()
	rootCmd.SetArgs([]string{"settings", "show"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "ollama.generation_model = mistral")
}

func TestSettingsSetCmd_TypedValues(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	defer rootCmd.SetArgs(nil)

	rootCmd.SetArgs([]string{"settings", "set", "chunking.size", "800"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, 800, configStore.GetInt("chunking.size"))

	rootCmd.SetArgs([]string{"settings", "set", "some.flag", "true"})
	require.NoError(t, rootCmd.Execute())
	assert.True(t, configStore.GetBool("some.flag"))

	rootCmd.SetArgs([]string{"settings", "set", "language", "pt"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "pt", configStore.GetString("language"))
}

func TestSettingsUnsetCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	require.NoError(t, configStore.Set("data_dir", "/tmp/acta"))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "unset", "data_dir"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "data_dir unset")

	_, ok := configStore.Get("data_dir")
	assert.False(t, ok)
}

func TestSettingsCmd_StoreNotConfigured(t *testing.T) {
	oldStore := configStore
	configStore = nil
	defer func() { configStore = oldStore }()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"settings", "show"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
