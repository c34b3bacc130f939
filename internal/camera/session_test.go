package camera

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

type fakeStream struct {
	frame    []byte
	frameErr error
	closed   int
}

func (s *fakeStream) Frame() ([]byte, error) { return s.frame, s.frameErr }
func (s *fakeStream) Close() error {
	s.closed++
	return nil
}

type fakeDevice struct {
	stream  *fakeStream
	openErr error
	opens   int
}

func (d *fakeDevice) Open(ctx context.Context) (Stream, error) {
	d.opens++
	if d.openErr != nil {
		return nil, d.openErr
	}
	return d.stream, nil
}

func TestOpenFailureReturnsToClosed(t *testing.T) {
	dev := &fakeDevice{openErr: errors.New("permission denied")}
	s := NewSession(dev)

	err := s.Open(context.Background())
	if !errors.Is(err, ErrDevice) {
		t.Fatalf("expected ErrDevice, got %v", err)
	}
	if s.Phase() != PhaseClosed {
		t.Fatalf("expected closed after failed open, got %s", s.Phase())
	}
	// no stream handle may be retained
	if s.stream != nil {
		t.Fatalf("stream retained after failed open")
	}
}

func TestCaptureStopsCamera(t *testing.T) {
	stream := &fakeStream{frame: []byte("jpegbytes")}
	dev := &fakeDevice{stream: stream}
	s := NewSession(dev)

	if err := s.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Phase() != PhaseLive {
		t.Fatalf("expected live, got %s", s.Phase())
	}

	uri, err := s.Capture()
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
		t.Fatalf("expected data URI, got %q", uri)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/jpeg;base64,"))
	if err != nil || string(raw) != "jpegbytes" {
		t.Fatalf("round trip failed: %q %v", raw, err)
	}

	// capture always releases the stream
	if stream.closed != 1 {
		t.Fatalf("expected stream closed once, got %d", stream.closed)
	}
	if s.Phase() != PhaseCaptured {
		t.Fatalf("expected captured, got %s", s.Phase())
	}

	// multi-shot needs a fresh Open
	if _, err := s.Capture(); !errors.Is(err, ErrDevice) {
		t.Fatalf("expected ErrDevice on second capture, got %v", err)
	}
}

func TestReopenTearsDownExistingStream(t *testing.T) {
	first := &fakeStream{frame: []byte("a")}
	dev := &fakeDevice{stream: first}
	s := NewSession(dev)

	if err := s.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	second := &fakeStream{frame: []byte("b")}
	dev.stream = second
	if err := s.Open(context.Background()); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if first.closed != 1 {
		t.Fatalf("previous stream must be closed before reopening, closed=%d", first.closed)
	}
	if s.Phase() != PhaseLive {
		t.Fatalf("expected live after reopen, got %s", s.Phase())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	stream := &fakeStream{frame: []byte("x")}
	s := NewSession(&fakeDevice{stream: stream})

	if err := s.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	s.Close()
	s.Close()
	if stream.closed != 1 {
		t.Fatalf("expected single close, got %d", stream.closed)
	}
	if s.Phase() != PhaseClosed {
		t.Fatalf("expected closed, got %s", s.Phase())
	}
}

func TestCaptureFrameErrorReleasesStream(t *testing.T) {
	stream := &fakeStream{frameErr: errors.New("device disappeared")}
	s := NewSession(&fakeDevice{stream: stream})

	if err := s.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.Capture(); !errors.Is(err, ErrDevice) {
		t.Fatalf("expected ErrDevice, got %v", err)
	}
	if stream.closed != 1 {
		t.Fatalf("stream must be released on frame error, closed=%d", stream.closed)
	}
	if s.Phase() != PhaseClosed {
		t.Fatalf("expected closed after frame error, got %s", s.Phase())
	}
}
