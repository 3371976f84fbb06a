// Package launcher receives open requests from the navigation controller.
//
// Launching applications is outside the shell's job: a Launcher records each
// request, publishes it on Events for the UI's status line and hands it to
// an optional Handler on its own goroutine. Handler errors and panics are
// logged and never reach the caller.
package launcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Kind tells module and item requests apart.
type Kind int

const (
	KindModule Kind = iota
	KindItem
)

func (k Kind) String() string {
	if k == KindItem {
		return "item"
	}
	return "module"
}

// Event is one open request.
type Event struct {
	Kind Kind
	ID   string
	At   time.Time
}

// Handler performs the request. It runs off the UI goroutine.
type Handler func(ctx context.Context, ev Event) error

// Launcher implements nav.Actions.
type Launcher struct {
	ctx     context.Context
	log     *zap.Logger
	handler Handler
	events  chan Event
	now     func() time.Time
	wg      sync.WaitGroup
}

// New returns a launcher. A nil handler only logs and publishes requests.
func New(ctx context.Context, log *zap.Logger, handler Handler) *Launcher {
	if ctx == nil {
		ctx = context.Background()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Launcher{
		ctx:     ctx,
		log:     log,
		handler: handler,
		events:  make(chan Event, 8),
		now:     time.Now,
	}
}

// Events delivers requests as they are made. When the buffer is full new
// events are dropped; the request itself still runs.
func (l *Launcher) Events() <-chan Event {
	return l.events
}

// OpenModule requests the module with id.
func (l *Launcher) OpenModule(id string) {
	l.dispatch(Event{Kind: KindModule, ID: id})
}

// OpenItem requests the library item with id.
func (l *Launcher) OpenItem(id string) {
	l.dispatch(Event{Kind: KindItem, ID: id})
}

// Wait blocks until all running handlers return.
func (l *Launcher) Wait() {
	l.wg.Wait()
}

func (l *Launcher) dispatch(ev Event) {
	ev.At = l.now()
	l.log.Info("open requested", zap.Stringer("kind", ev.Kind), zap.String("id", ev.ID))

	select {
	case l.events <- ev:
	default:
		l.log.Debug("launch event dropped", zap.String("id", ev.ID))
	}

	if l.handler == nil {
		return
	}
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		if err := l.run(ev); err != nil {
			l.log.Error("open failed", zap.Stringer("kind", ev.Kind), zap.String("id", ev.ID), zap.Error(err))
		}
	}()
}

func (l *Launcher) run(ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return l.handler(l.ctx, ev)
}
