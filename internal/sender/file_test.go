package sender

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/decisionkit-labs/decisionkit/internal/trace"
)

func TestFileSenderLazyOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "observation.fb.data")
	s := NewFile(path, nil, trace.Noop{})

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file %s exists before first Send", path)
	}

	if err := s.Send([]byte("event-1")); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file missing after Send: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestFileSenderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interaction.fb.data")
	s := NewFile(path, nil, trace.Noop{})

	payloads := [][]byte{
		[]byte("first"),
		[]byte(""),
		[]byte("third event with more bytes"),
	}
	for _, p := range payloads {
		if err := s.Send(p); err != nil {
			t.Fatalf("Send(%q) returned error: %v", p, err)
		}
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		t.Fatalf("ReadRecords returned error: %v", err)
	}
	if len(records) != len(payloads) {
		t.Fatalf("got %d records, want %d", len(records), len(payloads))
	}
	for i, p := range payloads {
		if string(records[i]) != string(p) {
			t.Fatalf("record %d = %q, want %q", i, records[i], p)
		}
	}
}

func TestFileSenderUnwritablePath(t *testing.T) {
	var cbErr error
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.data")
	s := NewFile(path, func(err error) { cbErr = err }, trace.Noop{})

	err := s.Send([]byte("event"))
	if err == nil {
		t.Fatal("Send to unwritable path succeeded")
	}
	if cbErr == nil {
		t.Fatal("error callback was not invoked")
	}
	if cbErr.Error() != err.Error() {
		t.Fatalf("callback error %q differs from returned error %q", cbErr, err)
	}
}

func TestFileSenderSendAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.data")
	s := NewFile(path, nil, trace.Noop{})

	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := s.Send([]byte("late")); !errors.Is(err, ErrClosed) {
		t.Fatalf("Send after Close error = %v, want ErrClosed", err)
	}
	// Close is idempotent.
	if err := s.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}
}
