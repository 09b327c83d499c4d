package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Luxview-Media/luxview/internal/model"
)

func TestApplyException(t *testing.T) {
	s := model.Schedule{ID: 1, VideoID: intPtr(10), IsActive: true}
	date := day(t, "2025-01-15")

	t.Run("no exception passes through", func(t *testing.T) {
		occ := ApplyException(s, date, nil)
		require.NotNil(t, occ)
		assert.Equal(t, intPtr(10), occ.VideoID)
		assert.False(t, occ.HasException)
	})

	t.Run("blackout suppresses", func(t *testing.T) {
		exc := &model.ScheduleException{ExceptionType: model.ExceptionBlackout}
		assert.Nil(t, ApplyException(s, date, exc))
	})

	t.Run("override substitutes content", func(t *testing.T) {
		exc := &model.ScheduleException{
			ExceptionType:   model.ExceptionOverride,
			OverrideVideoID: intPtr(99),
		}
		occ := ApplyException(s, date, exc)
		require.NotNil(t, occ)
		assert.True(t, occ.Overridden)
		assert.Equal(t, intPtr(99), occ.VideoID)
		assert.Nil(t, occ.PlaylistID)
	})

	t.Run("override without content keeps the schedule's own", func(t *testing.T) {
		exc := &model.ScheduleException{ExceptionType: model.ExceptionOverride}
		occ := ApplyException(s, date, exc)
		require.NotNil(t, occ)
		assert.True(t, occ.Overridden)
		assert.Equal(t, intPtr(10), occ.VideoID)
	})

	t.Run("special annotates only", func(t *testing.T) {
		exc := &model.ScheduleException{ExceptionType: model.ExceptionSpecial}
		occ := ApplyException(s, date, exc)
		require.NotNil(t, occ)
		assert.True(t, occ.HasException)
		assert.False(t, occ.Overridden)
		assert.Equal(t, intPtr(10), occ.VideoID)
	})
}
