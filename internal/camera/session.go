// Package camera manages exclusive access to a user-facing video capture
// device. The physical device sits behind the Device/Stream interfaces so the
// session logic (and its callers) stay independent of how frames are produced.
package camera

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
)

// ErrDevice is returned when the camera cannot be opened (permission denied,
// no device) or a frame cannot be read.
var ErrDevice = errors.New("camera device error")

// Phase is the session lifecycle state.
type Phase string

const (
	PhaseClosed   Phase = "closed"
	PhaseOpening  Phase = "opening"
	PhaseLive     Phase = "live"
	PhaseCaptured Phase = "captured"
)

// Device opens a user-facing video stream.
type Device interface {
	Open(ctx context.Context) (Stream, error)
}

// Stream is a live video stream. Frame returns the current frame encoded as
// JPEG bytes at the stream's native resolution.
type Stream interface {
	Frame() ([]byte, error)
	Close() error
}

// Session owns at most one live stream at a time. A capture always stops the
// camera; taking another shot requires a fresh Open.
type Session struct {
	mu     sync.Mutex
	device Device
	phase  Phase
	stream Stream
}

func NewSession(device Device) *Session {
	return &Session{device: device, phase: PhaseClosed}
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Open acquires the device stream. An already open session is torn down first
// so at most one stream is ever held. On failure the session returns to closed.
func (s *Session) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stream != nil {
		s.stream.Close()
		s.stream = nil
	}
	s.phase = PhaseOpening

	stream, err := s.device.Open(ctx)
	if err != nil {
		s.phase = PhaseClosed
		return fmt.Errorf("%w: %v", ErrDevice, err)
	}
	s.stream = stream
	s.phase = PhaseLive
	return nil
}

// Capture snapshots the current frame as a base64 JPEG data URI. Valid only
// while live; the underlying stream is always released, even when reading the
// frame fails.
func (s *Session) Capture() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseLive || s.stream == nil {
		return "", fmt.Errorf("%w: capture requires a live session (phase %s)", ErrDevice, s.phase)
	}

	frame, err := s.stream.Frame()
	s.stream.Close()
	s.stream = nil
	if err != nil {
		s.phase = PhaseClosed
		return "", fmt.Errorf("%w: read frame: %v", ErrDevice, err)
	}

	s.phase = PhaseCaptured
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(frame), nil
}

// Close releases the device stream if one is held. Idempotent from any state.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stream != nil {
		s.stream.Close()
		s.stream = nil
	}
	s.phase = PhaseClosed
}
