package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	id := New()
	require.False(t, id.IsZero())
	require.Len(t, id.String(), 26, "ULID canonical form is 26 chars")
}

func TestNew_Unique(t *testing.T) {
	const count = 1000
	seen := make(map[ID]bool, count)

	for range count {
		id := New()
		require.NotContains(t, seen, id, "duplicate id generated")
		seen[id] = true
	}
}

func TestNew_MonotonicWithinProcess(t *testing.T) {
	prev := New()
	for range 100 {
		next := New()
		require.Greater(t, next.String(), prev.String(),
			"ids should be lexicographically increasing")
		prev = next
	}
}

func TestNewAt_EmbedsTimestamp(t *testing.T) {
	at := time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)
	id := NewAt(at)

	require.WithinDuration(t, at, id.Time(), time.Millisecond)
}

func TestParse(t *testing.T) {
	valid := New().String()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid ulid", valid, false},
		{"valid with whitespace", "  " + valid + "  ", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too short", "01ARZ3NDEKTSV", true},
		{"invalid chars", "01ARZ3NDEKTSV4RRFFQ69G5FA!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalid)
				require.True(t, id.IsZero())
				return
			}
			require.NoError(t, err)
			require.Equal(t, valid, id.String())
		})
	}
}

func TestTime_InvalidID(t *testing.T) {
	require.True(t, Zero.Time().IsZero())
	require.True(t, ID("not-a-ulid").Time().IsZero())
}
