package schedule

import (
	"fmt"
	"time"

	"github.com/Luxview-Media/luxview/internal/model"
)

// Conflict types.
const (
	ConflictTimeOverlap      = "time_overlap"
	ConflictPriorityConflict = "priority_conflict"
)

// Conflict records that two schedules compete for the same devices at the
// same time. Conflicts are advisory: the resolver still picks a deterministic
// winner, so a conflict never blocks playback.
type Conflict struct {
	Schedule model.Schedule `json:"-"`
	Other    model.Schedule `json:"-"`
	Type     string         `json:"conflict_type"`
	Details  string         `json:"details"`
}

// FindConflicts scans every other enabled schedule whose date bounds admit
// refDate and reports the ones that overlap the given schedule in target,
// weekday and time of day. Pairs with equal priority are tagged
// priority_conflict since the id tie-break, while deterministic, is rarely
// what the operator intended.
func (e *Engine) FindConflicts(s model.Schedule, refDate time.Time) ([]Conflict, error) {
	if refDate.IsZero() {
		refDate = e.now()
	}
	date := dateOnly(refDate)

	others, err := e.src.SchedulesActiveOn(date)
	if err != nil {
		return nil, err
	}

	var conflicts []Conflict
	for _, other := range others {
		if other.ID == s.ID || !other.IsActive {
			continue
		}
		if other.StartDate != nil && date.Before(dateOnly(*other.StartDate)) {
			continue
		}
		if other.EndDate != nil && date.After(dateOnly(*other.EndDate)) {
			continue
		}

		overlap, err := e.targetsOverlap(s, other)
		if err != nil {
			return nil, err
		}
		if !overlap {
			continue
		}

		// weekday intersection only constrains when both sides filter days
		if s.DaysOfWeek != nil && other.DaysOfWeek != nil && !daysIntersect(s.DaysList(), other.DaysList()) {
			continue
		}

		if !ScheduleWindow(s).Overlaps(ScheduleWindow(other)) {
			continue
		}

		conflictType := ConflictTimeOverlap
		details := fmt.Sprintf("time ranges overlap: %s-%s vs %s-%s",
			s.StartTime, s.EndTime, other.StartTime, other.EndTime)
		if s.Priority == other.Priority {
			conflictType = ConflictPriorityConflict
			details += fmt.Sprintf(" (same priority: %d)", s.Priority)
		}
		conflicts = append(conflicts, Conflict{
			Schedule: s,
			Other:    other,
			Type:     conflictType,
			Details:  details,
		})
	}
	return conflicts, nil
}

// targetsOverlap decides whether two schedules can address at least one
// common device: same device, same group, a device inside the other's group,
// or either side broadcasting to all devices.
func (e *Engine) targetsOverlap(a, b model.Schedule) (bool, error) {
	switch {
	case a.DeviceID != nil && b.DeviceID != nil:
		return *a.DeviceID == *b.DeviceID, nil
	case a.DeviceGroupID != nil && b.DeviceGroupID != nil:
		return *a.DeviceGroupID == *b.DeviceGroupID, nil
	case a.DeviceID != nil && b.DeviceGroupID != nil:
		return e.deviceInGroup(*a.DeviceID, *b.DeviceGroupID)
	case a.DeviceGroupID != nil && b.DeviceID != nil:
		return e.deviceInGroup(*b.DeviceID, *a.DeviceGroupID)
	default:
		// at least one side is untargeted and reaches every device
		return true, nil
	}
}

func (e *Engine) deviceInGroup(deviceID, groupID int) (bool, error) {
	device, err := e.src.DeviceByID(deviceID)
	if err != nil {
		return false, err
	}
	return device.GroupID != nil && *device.GroupID == groupID, nil
}

func daysIntersect(a, b []int) bool {
	for _, d := range a {
		if containsDay(b, d) {
			return true
		}
	}
	return false
}
