package pindigest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerlabs/tellerkit/pkg/keypad"
	"github.com/tellerlabs/tellerkit/pkg/pindigest"
)

func TestSum(t *testing.T) {
	t.Parallel()

	t.Run("Deterministic", func(t *testing.T) {
		t.Parallel()
		keys := []keypad.Key{keypad.One, keypad.Two, keypad.Three, keypad.Four}
		assert.Equal(t, pindigest.Sum(keys), pindigest.Sum(keys))
	})

	t.Run("OrderSensitive", func(t *testing.T) {
		t.Parallel()
		a := pindigest.Sum([]keypad.Key{keypad.One, keypad.Two})
		b := pindigest.Sum([]keypad.Key{keypad.Two, keypad.One})
		assert.NotEqual(t, a, b)
	})

	t.Run("LengthSensitive", func(t *testing.T) {
		t.Parallel()
		a := pindigest.Sum([]keypad.Key{keypad.One})
		b := pindigest.Sum([]keypad.Key{keypad.One, keypad.One})
		assert.NotEqual(t, a, b)
	})

	t.Run("EmptySequence", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, pindigest.Sum(nil), pindigest.Sum([]keypad.Key{}))
	})
}

func TestSumPIN(t *testing.T) {
	t.Parallel()

	t.Run("MatchesKeySequence", func(t *testing.T) {
		t.Parallel()
		want := pindigest.Sum([]keypad.Key{keypad.One, keypad.Two, keypad.Three, keypad.Four})
		got, err := pindigest.SumPIN("1234")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("EmptyPIN", func(t *testing.T) {
		t.Parallel()
		got, err := pindigest.SumPIN("")
		require.NoError(t, err)
		assert.Equal(t, pindigest.Sum(nil), got)
	})

	t.Run("RejectsForeignCharacters", func(t *testing.T) {
		t.Parallel()
		for _, pin := range []string{"0", "5", "12a4", "12 34", "１２"} {
			_, err := pindigest.SumPIN(pin)
			require.Error(t, err, "pin %q", pin)
			assert.ErrorIs(t, err, pindigest.ErrInvalidPINCharacter)
		}
	})
}
