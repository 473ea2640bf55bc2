package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"screencast/internal/config"
	"strconv"
	"strings"
)

// Transcoder shells out to an ffmpeg binary to convert raw recordings into a
// broadly playable mp4: constant-quality x264, normalized pixel format,
// fast-start layout for progressive playback.
type Transcoder struct {
	cfg    config.TranscodeConfig
	logger *slog.Logger
}

// NewTranscoder creates a Transcoder
func NewTranscoder(cfg config.TranscodeConfig, logger *slog.Logger) *Transcoder {
	return &Transcoder{cfg: cfg, logger: logger}
}

// Available probes the binary with a version run.
func (t *Transcoder) Available(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, t.cfg.FFmpegPath, "-version")
	return cmd.Run() == nil
}

func (t *Transcoder) args(inPath, outPath string) []string {
	return []string{
		"-y",
		"-i", inPath,
		"-r", strconv.Itoa(t.cfg.FrameRate),
		"-c:v", "libx264",
		"-preset", t.cfg.Preset,
		"-crf", strconv.Itoa(t.cfg.CRF),
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		outPath,
	}
}

// Transcode converts inPath to outPath, blocking until the external process
// exits. The caller decides what a failure means; nothing is retried here.
func (t *Transcoder) Transcode(ctx context.Context, inPath, outPath string) error {
	cmd := exec.CommandContext(ctx, t.cfg.FFmpegPath, t.args(inPath, outPath)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	t.logger.Info("transcoding", "in", inPath, "out", outPath)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w: %s", err, lastLine(&stderr))
	}

	if _, err := os.Stat(outPath); err != nil {
		return fmt.Errorf("ffmpeg produced no output: %w", err)
	}
	return nil
}

func lastLine(buf *bytes.Buffer) string {
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	return lines[len(lines)-1]
}
