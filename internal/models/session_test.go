package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWorkSessionHours(t *testing.T) {
	checkIn := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 1, 1, 17, 30, 0, 0, time.UTC)

	t.Run("stored total is authoritative", func(t *testing.T) {
		stored := 3.25
		s := WorkSession{CheckIn: checkIn, CheckOut: &checkOut, TotalHours: &stored}
		require.Equal(t, 3.25, s.Hours())
	})

	t.Run("stored zero is returned verbatim", func(t *testing.T) {
		stored := 0.0
		s := WorkSession{CheckIn: checkIn, CheckOut: &checkOut, TotalHours: &stored}
		require.Equal(t, 0.0, s.Hours())
	})

	t.Run("stored negative is not clamped", func(t *testing.T) {
		stored := -1.5
		s := WorkSession{CheckIn: checkIn, TotalHours: &stored}
		require.Equal(t, -1.5, s.Hours())
	})

	t.Run("derived from timestamps", func(t *testing.T) {
		s := WorkSession{CheckIn: checkIn, CheckOut: &checkOut}
		require.InDelta(t, 8.5, s.Hours(), 1e-9)
	})

	t.Run("derived negative clamps to zero", func(t *testing.T) {
		earlier := checkIn.Add(-time.Hour)
		s := WorkSession{CheckIn: checkIn, CheckOut: &earlier}
		require.Equal(t, 0.0, s.Hours())
	})

	t.Run("open session without total is zero", func(t *testing.T) {
		s := WorkSession{CheckIn: checkIn}
		require.Equal(t, 0.0, s.Hours())
	})
}

func TestWorkSessionElapsedSeconds(t *testing.T) {
	checkIn := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	s := WorkSession{CheckIn: checkIn}

	t.Run("floors to whole seconds", func(t *testing.T) {
		now := checkIn.Add(90*time.Second + 900*time.Millisecond)
		require.Equal(t, 90, s.ElapsedSeconds(now))
	})

	t.Run("never negative", func(t *testing.T) {
		require.Equal(t, 0, s.ElapsedSeconds(checkIn.Add(-time.Minute)))
	})
}

func TestWorkSessionIsOpen(t *testing.T) {
	checkIn := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(time.Hour)

	require.True(t, WorkSession{CheckIn: checkIn}.IsOpen())
	require.False(t, WorkSession{CheckIn: checkIn, CheckOut: &checkOut}.IsOpen())
}
