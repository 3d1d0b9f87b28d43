package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/fractals/internal/core"
	"github.com/vovakirdan/fractals/internal/raster"
)

// FrameSink consumes video frames in order. Close finalizes the output.
type FrameSink interface {
	WriteFrame(img *image.RGBA) error
	Close() error
}

// Aborter is implemented by sinks that can discard a partial output.
type Aborter interface {
	Abort() error
}

// abort discards sink output when supported, otherwise closes it.
func abort(s FrameSink) {
	if a, ok := s.(Aborter); ok {
		_ = a.Abort()
		return
	}
	_ = s.Close()
}

// FFmpegBinary is the encoder executable looked up on PATH.
var FFmpegBinary = "ffmpeg"

// FFmpegSink pipes raw RGBA frames into an ffmpeg process encoding H.264 in
// an MP4 container. The file appears at its final path only after Close.
type FFmpegSink struct {
	path   string
	tmp    string
	width  int
	height int
	frames int

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
	done   bool
}

// FFmpegArgs returns the encoder command line for a w x h stream at fps
// frames per second written to out.
func FFmpegArgs(w, h, fps int, out string) []string {
	return []string{
		"-hide_banner", "-loglevel", "error", "-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", strconv.Itoa(w) + "x" + strconv.Itoa(h),
		"-r", strconv.Itoa(fps),
		"-i", "-",
		// yuv420p needs even dimensions
		"-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-r", strconv.Itoa(fps),
		"-movflags", "+faststart",
		"-f", "mp4",
		out,
	}
}

// NewFFmpegSink starts the encoder. A missing ffmpeg binary is a resource
// error.
func NewFFmpegSink(ctx context.Context, path string, w, h, fps int) (*FFmpegSink, error) {
	bin, err := exec.LookPath(FFmpegBinary)
	if err != nil {
		return nil, fmt.Errorf("export: %s not found on PATH: %w", FFmpegBinary, core.ErrResource)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: cannot create directory %s: %w: %w", dir, core.ErrResource, err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("export: cannot create temp file: %w: %w", core.ErrResource, err)
	}
	tmp := f.Name()
	_ = f.Close()

	s := &FFmpegSink{path: path, tmp: tmp, width: w, height: h}
	s.cmd = exec.CommandContext(ctx, bin, FFmpegArgs(w, h, fps, tmp)...)
	s.cmd.Stderr = &s.stderr
	if s.stdin, err = s.cmd.StdinPipe(); err != nil {
		_ = os.Remove(tmp)
		return nil, fmt.Errorf("export: ffmpeg stdin: %w: %w", core.ErrResource, err)
	}
	if err := s.cmd.Start(); err != nil {
		_ = os.Remove(tmp)
		return nil, fmt.Errorf("export: start ffmpeg: %w: %w", core.ErrResource, err)
	}
	return s, nil
}

// WriteFrame sends one frame. It must match the sink size.
func (s *FFmpegSink) WriteFrame(img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() != s.width || b.Dy() != s.height {
		return fmt.Errorf("export: frame is %dx%d, stream is %dx%d", b.Dx(), b.Dy(), s.width, s.height)
	}
	row := 4 * s.width
	if img.Stride == row {
		if _, err := s.stdin.Write(img.Pix[:row*s.height]); err != nil {
			return s.pipeErr(err)
		}
	} else {
		for y := 0; y < s.height; y++ {
			off := y * img.Stride
			if _, err := s.stdin.Write(img.Pix[off : off+row]); err != nil {
				return s.pipeErr(err)
			}
		}
	}
	s.frames++
	return nil
}

func (s *FFmpegSink) pipeErr(err error) error {
	msg := strings.TrimSpace(s.stderr.String())
	if msg != "" {
		return fmt.Errorf("export: ffmpeg: %s: %w: %w", msg, core.ErrResource, err)
	}
	return fmt.Errorf("export: ffmpeg: %w: %w", core.ErrResource, err)
}

// Frames returns how many frames were written.
func (s *FFmpegSink) Frames() int {
	return s.frames
}

// Close flushes the encoder and moves the video into place.
func (s *FFmpegSink) Close() error {
	if s.done {
		return nil
	}
	s.done = true

	_ = s.stdin.Close()
	if err := s.cmd.Wait(); err != nil {
		_ = os.Remove(s.tmp)
		return s.pipeErr(err)
	}
	if err := os.Rename(s.tmp, s.path); err != nil {
		_ = os.Remove(s.tmp)
		return fmt.Errorf("export: rename to %s: %w: %w", s.path, core.ErrResource, err)
	}
	return nil
}

// Abort stops the encoder and removes the partial output.
func (s *FFmpegSink) Abort() error {
	if s.done {
		return nil
	}
	s.done = true

	_ = s.stdin.Close()
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	_ = s.cmd.Wait()
	return os.Remove(s.tmp)
}

// FrameDirSink writes each frame as a numbered PNG into a directory.
type FrameDirSink struct {
	dir    string
	frames int
}

// NewFrameDirSink creates dir if needed.
func NewFrameDirSink(dir string) (*FrameDirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: cannot create directory %s: %w: %w", dir, core.ErrResource, err)
	}
	return &FrameDirSink{dir: dir}, nil
}

// WriteFrame writes frame_000001.png, frame_000002.png and so on.
func (s *FrameDirSink) WriteFrame(img *image.RGBA) error {
	s.frames++
	return raster.WritePNG(filepath.Join(s.dir, fmt.Sprintf("frame_%06d.png", s.frames)), img)
}

// Frames returns how many frames were written.
func (s *FrameDirSink) Frames() int {
	return s.frames
}

// Close is a no-op; every frame is already on disk.
func (s *FrameDirSink) Close() error {
	return nil
}
