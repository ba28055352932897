package terminal

import (
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tellerlabs/tellerkit/pkg/atm"
)

// defaultJournalLimit bounds the in-memory journal so an unattended
// terminal cannot grow without limit.
const defaultJournalLimit = 1024

// Entry is one journaled transition: the event, what it accomplished, and
// the cash level on both sides of it.
type Entry struct {
	ID         uuid.UUID
	At         time.Time
	Event      atm.Event
	Outcome    atm.Outcome
	CashBefore uint64
	CashAfter  uint64
}

// Terminal owns the authoritative machine state and applies events to it
// one at a time.
type Terminal struct {
	mu      sync.Mutex
	machine *atm.Machine
	state   atm.State
	journal []Entry
	limit   int
	log     *slog.Logger
	now     func() time.Time
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithLogger sets the structured logger for transition records. Nil
// loggers are ignored; the default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(t *Terminal) {
		if log != nil {
			t.log = log
		}
	}
}

// WithClock replaces the journal timestamp source, which keeps tests
// deterministic. Nil clocks are ignored.
func WithClock(now func() time.Time) Option {
	return func(t *Terminal) {
		if now != nil {
			t.now = now
		}
	}
}

// WithJournalLimit caps how many entries the journal retains; the oldest
// entries are dropped first. Zero or negative values disable journaling
// entirely.
func WithJournalLimit(n int) Option {
	return func(t *Terminal) {
		t.limit = n
	}
}

// New creates a terminal around the given engine and initial state. A nil
// machine gets the default engine.
func New(machine *atm.Machine, initial atm.State, opts ...Option) *Terminal {
	if machine == nil {
		machine = atm.New()
	}
	t := &Terminal{
		machine: machine,
		state:   initial,
		limit:   defaultJournalLimit,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Apply feeds one event through the engine, journals the classified
// outcome and returns the new state snapshot. Journal bookkeeping can
// never influence the transition itself.
func (t *Terminal) Apply(event atm.Event) (atm.State, atm.Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()

	before := t.state
	after := t.machine.NextState(before, event)
	outcome := atm.Classify(before, event, after)
	t.state = after

	t.record(before, event, outcome, after)

	return snapshot(after), outcome
}

// State returns a snapshot of the current machine state.
func (t *Terminal) State() atm.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return snapshot(t.state)
}

// Journal returns a copy of the retained transition entries, oldest
// first.
func (t *Terminal) Journal() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.journal)
}

func (t *Terminal) record(before atm.State, event atm.Event, outcome atm.Outcome, after atm.State) {
	t.log.Info("transition applied",
		slog.String("event", eventName(event)),
		slog.String("outcome", outcome.String()),
		slog.String("phase", after.Phase.Status().String()),
		slog.Uint64("cash_before", before.CashInside),
		slog.Uint64("cash_after", after.CashInside),
	)

	if t.limit <= 0 {
		return
	}
	t.journal = append(t.journal, Entry{
		ID:         uuid.New(),
		At:         t.now().UTC(),
		Event:      event,
		Outcome:    outcome,
		CashBefore: before.CashInside,
		CashAfter:  after.CashInside,
	})
	if overflow := len(t.journal) - t.limit; overflow > 0 {
		t.journal = slices.Clone(t.journal[overflow:])
	}
}

// snapshot detaches the keystroke buffer so callers can never mutate the
// terminal's authoritative copy through a returned state.
func snapshot(s atm.State) atm.State {
	s.Keystrokes = slices.Clone(s.Keystrokes)
	return s
}

// eventName renders an event for logging without leaking typed PIN
// digits; only the event kind ever reaches the log.
func eventName(event atm.Event) string {
	switch event.(type) {
	case atm.SwipeCard:
		return "swipe_card"
	case atm.PressKey:
		return "press_key"
	default:
		return "unknown"
	}
}
