package schedule

import (
	"sort"
	"time"

	"github.com/Luxview-Media/luxview/internal/model"
)

// Source supplies the scheduling records the engine computes over. The db
// package implements it; tests use in-memory fakes. Implementations must be
// safe for concurrent calls.
type Source interface {
	DeviceByID(id int) (model.Device, error)
	// SchedulesActiveOn returns enabled schedules whose date bounds admit the
	// given date. Callers may over-fetch; the engine re-checks every bound.
	SchedulesActiveOn(date time.Time) ([]model.Schedule, error)
	// SchedulesInRange returns enabled schedules whose date bounds overlap
	// [from, to].
	SchedulesInRange(from, to time.Time) ([]model.Schedule, error)
	ExceptionFor(scheduleID int, date time.Time) (*model.ScheduleException, error)
	AssignmentsForDevice(deviceID int) ([]model.Assignment, error)
	PlaylistItems(playlistID int) ([]model.PlaylistItem, error)
}

// Engine resolves device content against a Source. It holds no mutable state
// beyond its clock and may be shared across request handlers.
type Engine struct {
	src Source
	now func() time.Time
}

// NewEngine builds an engine over src. A nil clock defaults to time.Now.
func NewEngine(src Source, clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{src: src, now: clock}
}

// Decision is the exclusive answer for a device at an instant: the winning
// schedule and the content it resolves to after exceptions.
type Decision struct {
	Schedule    model.Schedule
	VideoID     *int
	PlaylistID  *int
	Overridden  bool
	ActiveUntil model.TimeOfDay
}

// ResolveActiveSchedule selects the single schedule governing a device at an
// instant, or nil when none applies. Candidates must be enabled, within date
// bounds, targeted at the device, active on the weekday and (unless all-day)
// at the clock time, and not blacked out for the date. Ties are broken by
// priority descending then id ascending, so equal-priority conflicts resolve
// deterministically to the older schedule.
func (e *Engine) ResolveActiveSchedule(deviceID int, at time.Time) (*Decision, error) {
	if at.IsZero() {
		at = e.now()
	}
	date := dateOnly(at)
	clock := model.ClockOf(at)

	device, err := e.src.DeviceByID(deviceID)
	if err != nil {
		return nil, err
	}

	schedules, err := e.src.SchedulesActiveOn(date)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		schedule  model.Schedule
		exception *model.ScheduleException
	}
	var candidates []candidate

	for _, s := range schedules {
		if !s.IsActive || !withinDateBounds(s, date) {
			continue
		}
		if !AppliesToDevice(s, device) {
			continue
		}
		if !IsActiveOnDate(s, date) {
			continue
		}
		exc, err := e.src.ExceptionFor(s.ID, date)
		if err != nil {
			return nil, err
		}
		if exc != nil && exc.ExceptionType == model.ExceptionBlackout {
			continue
		}
		if !s.IsAllDay && !IsActiveAtTime(s, clock) {
			continue
		}
		candidates = append(candidates, candidate{schedule: s, exception: exc})
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		si, sj := candidates[i].schedule, candidates[j].schedule
		if si.Priority != sj.Priority {
			return si.Priority > sj.Priority
		}
		return si.ID < sj.ID
	})

	winner := candidates[0]
	occ := ApplyException(winner.schedule, date, winner.exception)
	return &Decision{
		Schedule:    winner.schedule,
		VideoID:     occ.VideoID,
		PlaylistID:  occ.PlaylistID,
		Overridden:  occ.Overridden,
		ActiveUntil: winner.schedule.EndTime,
	}, nil
}

// AssignmentEntry is one video in a device's aggregated playback list,
// carrying the assignment it came from and, when expanded from a playlist,
// its playlist provenance.
type AssignmentEntry struct {
	AssignmentID int  `json:"assignment_id"`
	VideoID      int  `json:"video_id"`
	PlaylistID   *int `json:"playlist_id,omitempty"`
	Position     *int `json:"position,omitempty"`
	Priority     int  `json:"priority"`
}

// ActiveAssignments collects every assignment whose window contains the
// instant and expands it into the device's playback list: direct videos as
// single entries, playlists in stored position order. Entries are additive
// across assignments; duplicate videos are dropped keeping the first
// occurrence. This path backs playback only when ResolveActiveSchedule
// returns no winner.
func (e *Engine) ActiveAssignments(deviceID int, at time.Time) ([]AssignmentEntry, error) {
	if at.IsZero() {
		at = e.now()
	}

	assignments, err := e.src.AssignmentsForDevice(deviceID)
	if err != nil {
		return nil, err
	}

	var active []model.Assignment
	for _, a := range assignments {
		if AssignmentWindow(a).Contains(at) {
			active = append(active, a)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].Priority != active[j].Priority {
			return active[i].Priority > active[j].Priority
		}
		return active[i].ID < active[j].ID
	})

	var entries []AssignmentEntry
	seen := make(map[int]bool)
	for _, a := range active {
		if a.VideoID != nil {
			if seen[*a.VideoID] {
				continue
			}
			seen[*a.VideoID] = true
			entries = append(entries, AssignmentEntry{
				AssignmentID: a.ID,
				VideoID:      *a.VideoID,
				Priority:     a.Priority,
			})
			continue
		}
		if a.PlaylistID == nil {
			continue
		}
		items, err := e.src.PlaylistItems(*a.PlaylistID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if seen[item.VideoID] {
				continue
			}
			seen[item.VideoID] = true
			pos := item.Position
			entries = append(entries, AssignmentEntry{
				AssignmentID: a.ID,
				VideoID:      item.VideoID,
				PlaylistID:   a.PlaylistID,
				Position:     &pos,
				Priority:     a.Priority,
			})
		}
	}
	return entries, nil
}

// PreviewSlot is one hour of a device's daily timeline.
type PreviewSlot struct {
	Hour     int
	Decision *Decision
}

// DayPreview probes the resolver at every hour of the date, producing the
// timeline shown in the admin planning view.
func (e *Engine) DayPreview(deviceID int, date time.Time) ([]PreviewSlot, error) {
	day := dateOnly(date)
	slots := make([]PreviewSlot, 0, 24)
	for hour := 0; hour < 24; hour++ {
		at := day.Add(time.Duration(hour) * time.Hour)
		decision, err := e.ResolveActiveSchedule(deviceID, at)
		if err != nil {
			return nil, err
		}
		slots = append(slots, PreviewSlot{Hour: hour, Decision: decision})
	}
	return slots, nil
}
