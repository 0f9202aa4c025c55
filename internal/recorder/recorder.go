package recorder

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
)

// ErrNoFrames is returned by Finalize when nothing was captured.
var ErrNoFrames = errors.New("no frames were captured")

const (
	framePattern   = "frame_%06d.png"
	timestampFmt   = "2006-01-02_15-04-05"
	defaultEncoder = "ffmpeg"
)

// Recorder writes numbered PNG frames to a directory and encodes them into an
// H.264 video with ffmpeg.
type Recorder struct {
	width, height int
	fps           int
	framesDir     string
	outputDir     string
	encoder       string
	log           zerolog.Logger
	now           func() time.Time

	frames int
}

// Option configures a Recorder
type Option func(*Recorder)

// WithEncoder overrides the ffmpeg binary
func WithEncoder(path string) Option {
	return func(r *Recorder) { r.encoder = path }
}

func WithLogger(l zerolog.Logger) Option {
	return func(r *Recorder) { r.log = l }
}

// WithClock overrides the clock used to timestamp the output file
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// New creates the frames directory. Frames are stored at width x height.
func New(width, height, fps int, framesDir, outputDir string, opts ...Option) (*Recorder, error) {
	if width <= 0 || height <= 0 || fps <= 0 {
		return nil, fmt.Errorf("invalid recording size %dx%d at %d fps", width, height, fps)
	}
	r := &Recorder{
		width:     width,
		height:    height,
		fps:       fps,
		framesDir: framesDir,
		outputDir: outputDir,
		encoder:   defaultEncoder,
		log:       zerolog.Nop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := os.MkdirAll(framesDir, 0o755); err != nil {
		return nil, fmt.Errorf("create frames dir: %w", err)
	}
	return r, nil
}

// Frames returns how many frames have been captured
func (r *Recorder) Frames() int {
	return r.frames
}

// CaptureFrame writes img as the next numbered frame, rescaling it when its size differs
// from the recording size.
func (r *Recorder) CaptureFrame(img image.Image) error {
	if b := img.Bounds(); b.Dx() != r.width || b.Dy() != r.height {
		dst := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
		draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}

	path := filepath.Join(r.framesDir, fmt.Sprintf(framePattern, r.frames))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode frame %d: %w", r.frames, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close frame %d: %w", r.frames, err)
	}

	r.log.Debug().Int("frame", r.frames).Msg("saved frame")
	r.frames++
	return nil
}

// OutputPath names the video for a recording finished at t.
func (r *Recorder) OutputPath(t time.Time) string {
	return filepath.Join(r.outputDir, "output_"+t.Format(timestampFmt)+".mp4")
}

// FFmpegArgs returns the encoder arguments for writing output.
func (r *Recorder) FFmpegArgs(output string) []string {
	return []string{
		"-y",
		"-framerate", strconv.Itoa(r.fps),
		"-i", filepath.Join(r.framesDir, framePattern),
		"-c:v", "libx264",
		"-preset", "slow",
		"-crf", "18",
		"-pix_fmt", "yuv420p",
		output,
	}
}

// Finalize encodes the captured frames and removes the frames directory, whether
// or not encoding succeeded. It returns the video path.
func (r *Recorder) Finalize(ctx context.Context) (string, error) {
	if r.frames == 0 {
		return "", ErrNoFrames
	}
	defer r.removeFrames()

	output := r.OutputPath(r.now())
	args := r.FFmpegArgs(output)
	r.log.Info().Str("cmd", r.encoder+" "+strings.Join(args, " ")).Msg("encoding video")

	out, err := exec.CommandContext(ctx, r.encoder, args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("ffmpeg failed: %w: %s", err, lastLine(out))
	}

	r.log.Info().Str("output", output).Int("frames", r.frames).Msg("video saved")
	return output, nil
}

func (r *Recorder) removeFrames() {
	if err := os.RemoveAll(r.framesDir); err != nil {
		r.log.Warn().Err(err).Str("dir", r.framesDir).Msg("could not remove frames")
	}
}

func lastLine(b []byte) string {
	s := strings.TrimSpace(string(b))
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
