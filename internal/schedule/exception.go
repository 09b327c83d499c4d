package schedule

import (
	"time"

	"github.com/Luxview-Media/luxview/internal/model"
)

// Occurrence is one concrete (date, content) materialization of a schedule,
// after any date exception has been applied.
type Occurrence struct {
	Schedule     model.Schedule
	Date         time.Time
	VideoID      *int
	PlaylistID   *int
	Overridden   bool
	HasException bool
}

// ApplyException overlays the exception recorded for (schedule, date) onto
// the base occurrence. A blackout suppresses the date entirely and returns
// nil. An override substitutes the exception's content, falling back to the
// schedule's own when the exception carries none. A special exception only
// annotates. A nil exception returns the unmodified base occurrence.
func ApplyException(s model.Schedule, date time.Time, exc *model.ScheduleException) *Occurrence {
	occ := &Occurrence{
		Schedule:   s,
		Date:       dateOnly(date),
		VideoID:    s.VideoID,
		PlaylistID: s.PlaylistID,
	}
	if exc == nil {
		return occ
	}

	occ.HasException = true
	switch exc.ExceptionType {
	case model.ExceptionBlackout:
		return nil
	case model.ExceptionOverride:
		occ.Overridden = true
		if exc.OverrideVideoID != nil || exc.OverridePlaylistID != nil {
			occ.VideoID = exc.OverrideVideoID
			occ.PlaylistID = exc.OverridePlaylistID
		}
		return occ
	default:
		// "special" and anything unrecognized annotate only
		return occ
	}
}
