package joystick

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/quartercade/internal/input"
)

const waitFor = time.Second

func pressed(d interface{ Poll() (input.Raw, bool) }, b input.Button) func() bool {
	return func() bool {
		raw, ok := d.Poll()
		return ok && input.Normalize(raw).Pressed(b)
	}
}

func TestDeviceTracksEvents(t *testing.T) {
	r, w := io.Pipe()
	d := NewDevice("js0", r, XboxMapping)
	defer d.Close()

	_, err := w.Write(Event{Type: TypeButton | TypeInit, Number: 0, Value: 0}.Encode())
	require.NoError(t, err)
	_, err = w.Write(Event{Type: TypeButton, Number: 0, Value: 1}.Encode())
	require.NoError(t, err)
	assert.Eventually(t, pressed(d, input.ButtonConfirm), waitFor, time.Millisecond)

	_, err = w.Write(Event{Type: TypeAxis, Number: 0, Value: 32767}.Encode())
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		raw, ok := d.Poll()
		x, _ := input.Normalize(raw).Stick()
		return ok && x == 1
	}, waitFor, time.Millisecond)

	_, err = w.Write(Event{Type: TypeButton, Number: 0, Value: 0}.Encode())
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return !pressed(d, input.ButtonConfirm)() }, waitFor, time.Millisecond)
}

func TestDeviceStopsOnReadError(t *testing.T) {
	r, w := io.Pipe()
	d := NewDevice("js0", r, XboxMapping)
	require.True(t, d.Alive())

	require.NoError(t, w.Close())
	select {
	case <-d.Done():
	case <-time.After(waitFor):
		t.Fatal("reader did not stop")
	}
	assert.False(t, d.Alive())
	assert.ErrorIs(t, d.Err(), io.EOF)
	_, ok := d.Poll()
	assert.False(t, ok)
	assert.NoError(t, d.Close())
}

// fakeNodes hands out pipes for device paths created under a temp dir.
type fakeNodes struct {
	mu      sync.Mutex
	dir     string
	writers map[string]*io.PipeWriter
}

func newFakeNodes(t *testing.T) *fakeNodes {
	t.Helper()
	return &fakeNodes{dir: t.TempDir(), writers: make(map[string]*io.PipeWriter)}
}

func (f *fakeNodes) add(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	return path
}

func (f *fakeNodes) open(path string) (io.ReadCloser, error) {
	r, w := io.Pipe()
	f.mu.Lock()
	f.writers[path] = w
	f.mu.Unlock()
	return r, nil
}

func (f *fakeNodes) writer(path string) *io.PipeWriter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writers[path]
}

func TestHubScanAnnouncesAndPolls(t *testing.T) {
	nodes := newFakeNodes(t)
	hub := NewHub(Options{Glob: filepath.Join(nodes.dir, "js*"), Open: nodes.open})
	defer hub.Close()

	_, ok := hub.Poll()
	assert.False(t, ok, "no device yet")

	js0 := nodes.add(t, "js0")
	n, err := hub.Scan()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, js0, <-hub.Connected())

	n, err = hub.Scan()
	require.NoError(t, err)
	assert.Zero(t, n, "already tracked")

	_, err = nodes.writer(js0).Write(Event{Type: TypeButton, Number: 5, Value: 1}.Encode())
	require.NoError(t, err)
	assert.Eventually(t, pressed(hub, input.ButtonNextTab), waitFor, time.Millisecond)
	assert.Equal(t, 1, hub.Count())
}

func TestHubFallsBackAndReconnects(t *testing.T) {
	nodes := newFakeNodes(t)
	hub := NewHub(Options{Glob: filepath.Join(nodes.dir, "js*"), Open: nodes.open})
	defer hub.Close()

	js0 := nodes.add(t, "js0")
	js1 := nodes.add(t, "js1")
	_, err := hub.Scan()
	require.NoError(t, err)

	_, err = nodes.writer(js1).Write(Event{Type: TypeButton, Number: 1, Value: 1}.Encode())
	require.NoError(t, err)
	require.NoError(t, nodes.writer(js0).Close())

	assert.Eventually(t, pressed(hub, input.ButtonCancel), waitFor, time.Millisecond,
		"second pad serves once the first is gone")
	assert.Equal(t, 1, hub.Count())

	// js0 is still on disk, so the next scan drops the dead reader and
	// reopens the node.
	n, err := hub.Scan()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, hub.Count())
}

func TestHubOpenFailureIsSkipped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "js0"), nil, 0o644))
	hub := NewHub(Options{
		Glob: filepath.Join(dir, "js*"),
		Open: func(string) (io.ReadCloser, error) { return nil, os.ErrPermission },
	})
	n, err := hub.Scan()
	require.NoError(t, err)
	assert.Zero(t, n)
	_, ok := hub.Poll()
	assert.False(t, ok)
}

func TestHubScanBadGlob(t *testing.T) {
	hub := NewHub(Options{Glob: "["})
	_, err := hub.Scan()
	assert.Error(t, err)
}
