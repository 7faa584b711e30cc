package sender

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/decisionkit-labs/decisionkit/internal/trace"
)

// ErrClosed is returned by Send after the sender has been closed.
var ErrClosed = errors.New("sender: closed")

// File appends length-framed event records to a single file. The file is
// opened lazily on the first Send, so constructing a File never touches the
// filesystem; unwritable paths surface at first use.
//
// Record framing: 4-byte big-endian payload length, then the payload bytes.
type File struct {
	path    string
	onError ErrorFunc
	tr      trace.Tracer

	mu     sync.Mutex
	f      *os.File
	closed bool
}

// NewFile returns a file sender bound to path. onError may be nil; tr must
// not be nil (use trace.Noop{}).
func NewFile(path string, onError ErrorFunc, tr trace.Tracer) *File {
	return &File{path: path, onError: onError, tr: tr}
}

// Path returns the file the sender is bound to.
func (s *File) Path() string { return s.path }

// Send appends one framed record. The error callback, when set, is invoked
// for every failure Send returns.
func (s *File) Send(payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.fail(ErrClosed)
	}
	if s.f == nil {
		f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return s.fail(fmt.Errorf("opening %s: %w", s.path, err))
		}
		s.f = f
		s.tr.Log(trace.LevelDebug, "file sender opened "+s.path)
	}

	var frame [4]byte
	binary.BigEndian.PutUint32(frame[:], uint32(len(payload)))
	if _, err := s.f.Write(frame[:]); err != nil {
		return s.fail(fmt.Errorf("writing frame to %s: %w", s.path, err))
	}
	if _, err := s.f.Write(payload); err != nil {
		return s.fail(fmt.Errorf("writing payload to %s: %w", s.path, err))
	}
	return nil
}

// Close closes the underlying file, if it was ever opened. Close is
// idempotent.
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.f == nil {
		return nil
	}
	if err := s.f.Close(); err != nil {
		return s.fail(fmt.Errorf("closing %s: %w", s.path, err))
	}
	return nil
}

func (s *File) fail(err error) error {
	if s.onError != nil {
		s.onError(err)
	}
	return err
}

// ReadRecords decodes every framed record from r. Used by diagnostics and
// tests to inspect sender output files.
func ReadRecords(r io.Reader) ([][]byte, error) {
	var records [][]byte
	for {
		var frame [4]byte
		if _, err := io.ReadFull(r, frame[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return records, fmt.Errorf("reading frame: %w", err)
		}
		payload := make([]byte, binary.BigEndian.Uint32(frame[:]))
		if _, err := io.ReadFull(r, payload); err != nil {
			return records, fmt.Errorf("reading payload: %w", err)
		}
		records = append(records, payload)
	}
}
