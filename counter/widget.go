package counter

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

var (
	entropyLock sync.Mutex
	entropy     = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
)

func newWidgetID() ulid.ULID {
	entropyLock.Lock()
	defer entropyLock.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
}

// Widget is a single counter instance. It lives for one rendered page and
// is never stored.
type Widget struct {
	ID ulid.ULID

	initial int
	value   int
}

// Snapshot is the widget's state as exposed over the JSON API.
type Snapshot struct {
	ID      string `json:"id"`
	Initial int    `json:"initial"`
	Value   int    `json:"value"`
}

func NewWidget(log *zerolog.Logger, initial int) *Widget {
	widget := Restore(initial, initial)

	log.Debug().
		Str("widget", widget.ID.String()).
		Int("initialCounter", initial).
		Msg("counter initialCounter")

	return widget
}

// Restore rebuilds a widget from state carried by a previous render.
func Restore(initial int, value int) *Widget {
	return &Widget{
		ID:      newWidgetID(),
		initial: initial,
		value:   value,
	}
}

func (w *Widget) Value() int {
	return w.value
}

func (w *Widget) Initial() int {
	return w.initial
}

func (w *Widget) Increment() {
	w.value++
}

func (w *Widget) Decrement() {
	w.value--
}

// Reset restores the construction-time seed.
func (w *Widget) Reset() {
	w.value = w.initial
}

func (w *Widget) Snapshot() Snapshot {
	return Snapshot{
		ID:      w.ID.String(),
		Initial: w.initial,
		Value:   w.value,
	}
}
