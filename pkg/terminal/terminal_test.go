package terminal_test

import (
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerlabs/tellerkit/pkg/atm"
	"github.com/tellerlabs/tellerkit/pkg/keypad"
	"github.com/tellerlabs/tellerkit/pkg/pindigest"
	"github.com/tellerlabs/tellerkit/pkg/terminal"
)

func enrolledDigest(t *testing.T) uint64 {
	t.Helper()
	digest, err := pindigest.SumPIN("1234")
	require.NoError(t, err)
	return digest
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("WalksFullSession", func(t *testing.T) {
		t.Parallel()
		term := terminal.New(nil, atm.NewState(10))
		digest := enrolledDigest(t)

		state, outcome := term.Apply(atm.SwipeCard{PINDigest: digest})
		assert.Equal(t, atm.OutcomeCardAccepted, outcome)
		assert.Equal(t, atm.StatusAuthenticating, state.Phase.Status())

		for _, k := range []keypad.Key{keypad.One, keypad.Two, keypad.Three, keypad.Four} {
			_, outcome = term.Apply(atm.PressKey{Key: k})
			assert.Equal(t, atm.OutcomeDigitBuffered, outcome)
		}

		state, outcome = term.Apply(atm.PressKey{Key: keypad.Enter})
		assert.Equal(t, atm.OutcomePINAccepted, outcome)
		assert.Equal(t, atm.StatusAuthenticated, state.Phase.Status())

		term.Apply(atm.PressKey{Key: keypad.One})
		state, outcome = term.Apply(atm.PressKey{Key: keypad.Enter})
		assert.Equal(t, atm.OutcomeCashDispensed, outcome)
		assert.True(t, state.Equal(atm.NewState(9)))
	})

	t.Run("JournalsEveryTransition", func(t *testing.T) {
		t.Parallel()
		at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		term := terminal.New(nil, atm.NewState(10),
			terminal.WithClock(func() time.Time { return at }),
		)

		term.Apply(atm.PressKey{Key: keypad.Two})
		term.Apply(atm.SwipeCard{PINDigest: enrolledDigest(t)})

		journal := term.Journal()
		require.Len(t, journal, 2)

		assert.Equal(t, atm.OutcomeKeyIgnored, journal[0].Outcome)
		assert.Equal(t, atm.OutcomeCardAccepted, journal[1].Outcome)
		assert.Equal(t, at, journal[0].At)
		assert.NotEqual(t, journal[0].ID, journal[1].ID)
		assert.Equal(t, uint64(10), journal[0].CashBefore)
		assert.Equal(t, uint64(10), journal[0].CashAfter)
	})

	t.Run("JournalLimitDropsOldest", func(t *testing.T) {
		t.Parallel()
		term := terminal.New(nil, atm.NewState(10), terminal.WithJournalLimit(2))
		digest := enrolledDigest(t)

		term.Apply(atm.PressKey{Key: keypad.One})
		term.Apply(atm.SwipeCard{PINDigest: digest})
		term.Apply(atm.PressKey{Key: keypad.One})

		journal := term.Journal()
		require.Len(t, journal, 2)
		assert.Equal(t, atm.OutcomeCardAccepted, journal[0].Outcome)
		assert.Equal(t, atm.OutcomeDigitBuffered, journal[1].Outcome)
	})

	t.Run("ZeroLimitDisablesJournal", func(t *testing.T) {
		t.Parallel()
		term := terminal.New(nil, atm.NewState(10), terminal.WithJournalLimit(0))
		term.Apply(atm.SwipeCard{PINDigest: 1})
		assert.Empty(t, term.Journal())
	})

	t.Run("LogsTransitions", func(t *testing.T) {
		t.Parallel()
		var buf strings.Builder
		log := slog.New(slog.NewTextHandler(&buf, nil))
		term := terminal.New(nil, atm.NewState(10), terminal.WithLogger(log))

		term.Apply(atm.SwipeCard{PINDigest: 1})

		out := buf.String()
		assert.Contains(t, out, "transition applied")
		assert.Contains(t, out, "event=swipe_card")
		assert.Contains(t, out, "outcome=card_accepted")
	})
}

func TestStateSnapshotIsDetached(t *testing.T) {
	t.Parallel()
	term := terminal.New(nil, atm.NewState(10))
	term.Apply(atm.SwipeCard{PINDigest: enrolledDigest(t)})
	term.Apply(atm.PressKey{Key: keypad.One})

	state := term.State()
	require.Len(t, state.Keystrokes, 1)
	state.Keystrokes[0] = keypad.Four

	assert.Equal(t, []keypad.Key{keypad.One}, term.State().Keystrokes)
}

func TestApplySerializesConcurrentEvents(t *testing.T) {
	t.Parallel()
	term := terminal.New(nil, atm.NewState(1000))

	// Ignored key presses from many goroutines must leave the waiting
	// state untouched and journal exactly one entry each.
	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			term.Apply(atm.PressKey{Key: keypad.Three})
		}()
	}
	wg.Wait()

	assert.True(t, term.State().Equal(atm.NewState(1000)))
	assert.Len(t, term.Journal(), workers)
}
