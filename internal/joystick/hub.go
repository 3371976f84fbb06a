package joystick

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/five82/quartercade/internal/input"
)

// DefaultGlob matches Linux joystick nodes.
const DefaultGlob = "/dev/input/js*"

// DefaultScanInterval is how often Run looks for new devices.
const DefaultScanInterval = time.Second

// OpenFunc opens a device node for reading.
type OpenFunc func(path string) (io.ReadCloser, error)

// Options configures a Hub.
type Options struct {
	Glob    string
	Open    OpenFunc
	Mapping *Mapping
	Logger  *zap.Logger
}

// Hub tracks connected devices and serves the first live one.
type Hub struct {
	glob    string
	open    OpenFunc
	mapping Mapping
	log     *zap.Logger

	mu        sync.Mutex
	devices   []*Device
	serving   *Device
	connected chan string
}

// NewHub returns a hub with no devices. Call Scan or Run to discover them.
func NewHub(opts Options) *Hub {
	h := &Hub{
		glob:      opts.Glob,
		open:      opts.Open,
		mapping:   XboxMapping,
		log:       opts.Logger,
		connected: make(chan string, 4),
	}
	if h.glob == "" {
		h.glob = DefaultGlob
	}
	if h.open == nil {
		h.open = func(path string) (io.ReadCloser, error) { return os.Open(path) }
	}
	if opts.Mapping != nil {
		h.mapping = *opts.Mapping
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	return h
}

// Connected delivers the path of every newly opened device. Announcements
// are dropped when nobody is listening and the buffer is full.
func (h *Hub) Connected() <-chan string {
	return h.connected
}

// Poll implements input.Source over the first live device. When the
// serving device changes, Poll reports no device for that one call so the
// caller drops the previous device's button state before reading the new one.
func (h *Hub) Poll() (input.Raw, bool) {
	h.mu.Lock()
	devices := append([]*Device(nil), h.devices...)
	serving := h.serving
	h.mu.Unlock()

	for _, d := range devices {
		raw, ok := d.Poll()
		if !ok {
			continue
		}
		if d != serving {
			h.setServing(d)
			if serving != nil {
				h.log.Debug("joystick switched", zap.String("path", d.Path()))
				return input.Raw{}, false
			}
		}
		return raw, true
	}
	h.setServing(nil)
	return input.Raw{}, false
}

func (h *Hub) setServing(d *Device) {
	h.mu.Lock()
	h.serving = d
	h.mu.Unlock()
}

// Count returns how many live devices are tracked.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, d := range h.devices {
		if d.Alive() {
			n++
		}
	}
	return n
}

// Scan drops dead devices and opens nodes matching the glob that are not
// tracked yet. It returns the number of devices opened.
func (h *Hub) Scan() (int, error) {
	paths, err := filepath.Glob(h.glob)
	if err != nil {
		return 0, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	live := h.devices[:0]
	tracked := make(map[string]bool, len(h.devices))
	for _, d := range h.devices {
		if !d.Alive() {
			h.log.Info("joystick disconnected", zap.String("path", d.Path()), zap.Error(d.Err()))
			_ = d.Close()
			continue
		}
		live = append(live, d)
		tracked[d.Path()] = true
	}
	h.devices = live

	opened := 0
	for _, path := range paths {
		if tracked[path] {
			continue
		}
		rc, err := h.open(path)
		if err != nil {
			h.log.Debug("joystick open failed", zap.String("path", path), zap.Error(err))
			continue
		}
		h.devices = append(h.devices, NewDevice(path, rc, h.mapping))
		opened++
		h.log.Info("joystick connected", zap.String("path", path), zap.String("mapping", h.mapping.Name))
		select {
		case h.connected <- path:
		default:
		}
	}
	return opened, nil
}

// Run scans immediately and then every interval until ctx is done, then
// closes all devices.
func (h *Hub) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultScanInterval
	}
	defer h.Close()

	h.rescan()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.rescan()
		}
	}
}

func (h *Hub) rescan() {
	opened, err := h.Scan()
	if err != nil {
		h.log.Warn("joystick scan failed", zap.String("glob", h.glob), zap.Error(err))
		return
	}
	if opened > 0 {
		h.log.Info("joystick scan", zap.Int("opened", opened), zap.Int("live", h.Count()))
	}
}

// Close closes every tracked device.
func (h *Hub) Close() {
	h.mu.Lock()
	devices := h.devices
	h.devices = nil
	h.serving = nil
	h.mu.Unlock()
	for _, d := range devices {
		_ = d.Close()
	}
}
