package whispercpp

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	t.Run("missing binary path", func(t *testing.T) {
		_, err := New(Config{ModelDir: "/models"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "binary path")
	})

	t.Run("missing model dir", func(t *testing.T) {
		_, err := New(Config{BinaryPath: "/usr/bin/whisper"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "model directory")
	})

	t.Run("defaults model", func(t *testing.T) {
		tr, err := New(Config{BinaryPath: "/usr/bin/whisper", ModelDir: "/models"})
		require.NoError(t, err)
		assert.Equal(t, DefaultModel, tr.Model())
	})

	t.Run("keeps configured model", func(t *testing.T) {
		tr, err := New(Config{BinaryPath: "/usr/bin/whisper", ModelDir: "/models", Model: "medium"})
		require.NoError(t, err)
		assert.Equal(t, "medium", tr.Model())
	})
}

func TestListModels(t *testing.T) {
	modelDir := t.TempDir()

	for _, name := range []string{
		"ggml-base.bin",
		"ggml-base.en.bin",
		"ggml-medium.bin",
		"ggml-base-test.bin", // test models are skipped
		"ggml-tiny.bin",      // not a recognised family
		"notes.txt",          // not a model file
	} {
		require.NoError(t, os.WriteFile(filepath.Join(modelDir, name), []byte("x"), 0600))
	}

	tr, err := New(Config{BinaryPath: "/usr/bin/whisper", ModelDir: modelDir})
	require.NoError(t, err)

	models, err := tr.ListModels()
	require.NoError(t, err)

	sort.Strings(models)
	assert.Equal(t, []string{"base", "base.en", "medium"}, models)
}

func TestListModels_MissingDir(t *testing.T) {
	tr, err := New(Config{BinaryPath: "/usr/bin/whisper", ModelDir: "/nonexistent/models"})
	require.NoError(t, err)

	_, err = tr.ListModels()
	assert.Error(t, err)
}

func TestTranscribe_MissingMediaFile(t *testing.T) {
	tr, err := New(Config{BinaryPath: "/usr/bin/whisper", ModelDir: t.TempDir()})
	require.NoError(t, err)

	_, err = tr.Transcribe(context.Background(), "/nonexistent/meeting.mp4")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "opening media file")
}
