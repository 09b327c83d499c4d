package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Luxview-Media/luxview/internal/model"
)

func tod(t *testing.T, s string) model.TimeOfDay {
	t.Helper()
	v, err := model.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("bad time of day %q: %v", s, err)
	}
	return v
}

func todPtr(t *testing.T, s string) *model.TimeOfDay {
	t.Helper()
	v := tod(t, s)
	return &v
}

func at(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		t.Fatalf("bad instant %q: %v", s, err)
	}
	return v
}

func TestWindowContainsNormalRange(t *testing.T) {
	w := Window{Start: todPtr(t, "09:00"), End: todPtr(t, "17:00")}

	assert.True(t, w.Contains(at(t, "2025-01-15 09:00")), "inclusive at start")
	assert.True(t, w.Contains(at(t, "2025-01-15 12:30")))
	assert.True(t, w.Contains(at(t, "2025-01-15 17:00")), "inclusive at end")
	assert.False(t, w.Contains(at(t, "2025-01-15 08:59")))
	assert.False(t, w.Contains(at(t, "2025-01-15 17:01")))
}

func TestWindowContainsOvernightRange(t *testing.T) {
	// 22:00-02:00 is active across midnight
	w := Window{Start: todPtr(t, "22:00"), End: todPtr(t, "02:00")}

	assert.True(t, w.Contains(at(t, "2025-01-15 22:00")), "inclusive at start")
	assert.True(t, w.Contains(at(t, "2025-01-15 23:30")))
	assert.True(t, w.Contains(at(t, "2025-01-16 01:00")))
	assert.True(t, w.Contains(at(t, "2025-01-16 02:00")), "inclusive at end")
	assert.False(t, w.Contains(at(t, "2025-01-16 03:00")))
	assert.False(t, w.Contains(at(t, "2025-01-15 21:59")))
	assert.False(t, w.Contains(at(t, "2025-01-15 12:00")))
}

func TestWindowContainsWeekdayFilter(t *testing.T) {
	// 2025-01-15 is a Wednesday, 2025-01-18 a Saturday
	w := Window{
		Start: todPtr(t, "09:00"),
		End:   todPtr(t, "17:00"),
		Days:  []int{0, 1, 2, 3, 4}, // Mon-Fri
	}

	assert.True(t, w.Contains(at(t, "2025-01-15 12:00")))
	assert.False(t, w.Contains(at(t, "2025-01-18 12:00")))
}

func TestWindowContainsOptionalBounds(t *testing.T) {
	t.Run("no bounds means always", func(t *testing.T) {
		w := Window{}
		assert.True(t, w.Contains(at(t, "2025-01-15 00:00")))
		assert.True(t, w.Contains(at(t, "2025-01-15 23:59")))
	})

	t.Run("start only", func(t *testing.T) {
		w := Window{Start: todPtr(t, "18:00")}
		assert.False(t, w.Contains(at(t, "2025-01-15 17:59")))
		assert.True(t, w.Contains(at(t, "2025-01-15 18:00")))
		assert.True(t, w.Contains(at(t, "2025-01-15 23:59")))
	})

	t.Run("end only", func(t *testing.T) {
		w := Window{End: todPtr(t, "10:00")}
		assert.True(t, w.Contains(at(t, "2025-01-15 00:00")))
		assert.True(t, w.Contains(at(t, "2025-01-15 10:00")))
		assert.False(t, w.Contains(at(t, "2025-01-15 10:01")))
	})
}

func TestWindowOverlaps(t *testing.T) {
	mk := func(start, end string) Window {
		return Window{Start: todPtr(t, start), End: todPtr(t, end)}
	}

	assert.True(t, mk("09:00", "17:00").Overlaps(mk("16:00", "18:00")))
	assert.False(t, mk("09:00", "12:00").Overlaps(mk("13:00", "17:00")))
	// touching endpoints do not overlap
	assert.False(t, mk("09:00", "12:00").Overlaps(mk("12:00", "17:00")))
	// overnight windows compare on the 48-hour timeline
	assert.True(t, mk("22:00", "02:00").Overlaps(mk("23:00", "23:30")))
	assert.True(t, mk("22:00", "02:00").Overlaps(mk("21:00", "23:00")))
	assert.False(t, mk("22:00", "02:00").Overlaps(mk("03:00", "12:00")))
	assert.True(t, mk("22:00", "02:00").Overlaps(mk("20:00", "04:00")))
}
