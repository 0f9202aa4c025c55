package recorder

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecorder(t *testing.T, opts ...Option) (*Recorder, string) {
	t.Helper()
	dir := t.TempDir()
	frames := filepath.Join(dir, "frames")
	r, err := New(4, 2, 30, frames, dir, opts...)
	require.NoError(t, err)
	return r, frames
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCaptureFrameWritesNumberedPNGs(t *testing.T) {
	r, frames := newRecorder(t)

	require.NoError(t, r.CaptureFrame(solid(4, 2, color.RGBA{255, 0, 0, 255})))
	require.NoError(t, r.CaptureFrame(solid(4, 2, color.RGBA{0, 255, 0, 255})))

	assert.Equal(t, 2, r.Frames())
	assert.FileExists(t, filepath.Join(frames, "frame_000000.png"))
	assert.FileExists(t, filepath.Join(frames, "frame_000001.png"))
}

func TestCaptureFrameRescales(t *testing.T) {
	r, frames := newRecorder(t)
	require.NoError(t, r.CaptureFrame(solid(8, 4, color.RGBA{0, 0, 255, 255})))

	f, err := os.Open(filepath.Join(frames, "frame_000000.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Bounds())
	_, _, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), b)
}

func TestFFmpegArgs(t *testing.T) {
	r, frames := newRecorder(t)
	assert.Equal(t, []string{
		"-y",
		"-framerate", "30",
		"-i", filepath.Join(frames, "frame_%06d.png"),
		"-c:v", "libx264",
		"-preset", "slow",
		"-crf", "18",
		"-pix_fmt", "yuv420p",
		"out.mp4",
	}, r.FFmpegArgs("out.mp4"))
}

func TestOutputPath(t *testing.T) {
	r, _ := newRecorder(t)
	at := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	assert.Equal(t, "output_2024-03-09_14-05-07.mp4", filepath.Base(r.OutputPath(at)))
}

func TestFinalizeWithoutFrames(t *testing.T) {
	r, frames := newRecorder(t)
	_, err := r.Finalize(context.Background())
	assert.ErrorIs(t, err, ErrNoFrames)
	assert.DirExists(t, frames)
}

func TestFinalizeRemovesFrames(t *testing.T) {
	ok, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true not available")
	}
	r, frames := newRecorder(t, WithEncoder(ok))
	require.NoError(t, r.CaptureFrame(solid(4, 2, color.RGBA{A: 255})))

	out, err := r.Finalize(context.Background())
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(out), "output_")
	assert.NoDirExists(t, frames)
}

func TestFinalizeEncoderFailureStillRemovesFrames(t *testing.T) {
	fail, err := exec.LookPath("false")
	if err != nil {
		t.Skip("false not available")
	}
	r, frames := newRecorder(t, WithEncoder(fail))
	require.NoError(t, r.CaptureFrame(solid(4, 2, color.RGBA{A: 255})))

	_, err = r.Finalize(context.Background())
	assert.ErrorContains(t, err, "ffmpeg failed")
	assert.NoDirExists(t, frames)
}

func TestNewRejectsBadSize(t *testing.T) {
	_, err := New(0, 2, 30, t.TempDir(), ".")
	assert.Error(t, err)
}
