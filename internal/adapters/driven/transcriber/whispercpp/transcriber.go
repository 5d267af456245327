// Package whispercpp provides a speech-to-text adapter backed by the
// whisper.cpp command-line binary. Media files are downmixed to mono
// 16 kHz WAV with ffmpeg before recognition.
package whispercpp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/acta-labs/acta-cli/internal/core/ports/driven"
	"github.com/acta-labs/acta-cli/internal/logger"
)

// Ensure Transcriber implements the interface.
var _ driven.Transcriber = (*Transcriber)(nil)

const (
	// DefaultModel is used when no whisper model is configured.
	DefaultModel = "base"

	// ffmpegBinary is resolved from PATH.
	ffmpegBinary = "ffmpeg"
)

// validModels are the whisper model families we recognise in a model
// directory listing.
var validModels = []string{"base", "small", "medium", "large", "large-V3"}

// Config holds the Transcriber configuration.
type Config struct {
	// BinaryPath is the whisper.cpp executable. Required.
	BinaryPath string

	// ModelDir holds the downloaded ggml-*.bin model files. Required.
	ModelDir string

	// Model is the whisper model name (default "base").
	Model string
}

// Transcriber shells out to whisper.cpp for speech recognition.
type Transcriber struct {
	binaryPath string
	modelDir   string
	model      string
}

// New creates a whisper.cpp transcriber from the given configuration.
func New(cfg Config) (*Transcriber, error) {
	if cfg.BinaryPath == "" {
		return nil, fmt.Errorf("whisper binary path is required")
	}
	if cfg.ModelDir == "" {
		return nil, fmt.Errorf("whisper model directory is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	return &Transcriber{
		binaryPath: cfg.BinaryPath,
		modelDir:   cfg.ModelDir,
		model:      cfg.Model,
	}, nil
}

// Model returns the configured whisper model name.
func (t *Transcriber) Model() string {
	return t.model
}

// Transcribe converts the media file at path to plain text.
// The file is first converted to mono 16 kHz WAV; video containers have
// their audio track extracted by the same ffmpeg pass.
func (t *Transcriber) Transcribe(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("opening media file: %w", err)
	}

	wavPath, err := t.convertToWav(ctx, path)
	if err != nil {
		return "", err
	}
	defer os.Remove(wavPath)

	modelFile := filepath.Join(t.modelDir, "ggml-"+t.model+".bin")
	if _, err := os.Stat(modelFile); err != nil {
		return "", fmt.Errorf("whisper model %q not found in %s: %w", t.model, t.modelDir, err)
	}

	logger.Info("Transcribing %s with whisper model %s", filepath.Base(path), t.model)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, t.binaryPath,
		"-m", modelFile,
		"-f", wavPath,
		"--language", "auto",
		"--no-timestamps",
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("running whisper: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}

// convertToWav downmixes the input to a temporary mono 16 kHz WAV file.
// The caller removes the returned file.
func (t *Transcriber) convertToWav(ctx context.Context, path string) (string, error) {
	tmp, err := os.CreateTemp("", "acta-audio-*.wav")
	if err != nil {
		return "", fmt.Errorf("creating temp wav file: %w", err)
	}
	tmp.Close()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, ffmpegBinary,
		"-y",
		"-i", path,
		"-ar", "16000",
		"-ac", "1",
		tmp.Name(),
	)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(tmp.Name())
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("converting audio with ffmpeg: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return tmp.Name(), nil
}

// ListModels returns the whisper models downloaded to the model
// directory, derived from the ggml-*.bin files present. Test models are
// skipped.
func (t *Transcriber) ListModels() ([]string, error) {
	entries, err := os.ReadDir(t.modelDir)
	if err != nil {
		return nil, fmt.Errorf("reading model directory: %w", err)
	}

	seen := make(map[string]struct{})
	var models []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".bin") {
			continue
		}
		if strings.Contains(name, "test") {
			continue
		}

		model := strings.TrimPrefix(strings.TrimSuffix(name, ".bin"), "ggml-")
		if !isValidModel(model) {
			continue
		}
		if _, ok := seen[model]; ok {
			continue
		}
		seen[model] = struct{}{}
		models = append(models, model)
	}

	return models, nil
}

func isValidModel(model string) bool {
	for _, valid := range validModels {
		if strings.Contains(model, valid) {
			return true
		}
	}
	return false
}
