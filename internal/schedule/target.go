package schedule

import "github.com/Luxview-Media/luxview/internal/model"

// AppliesToDevice reports whether the schedule's target covers the device: a
// direct device match, a group match, or an untargeted schedule which
// broadcasts to the whole fleet.
func AppliesToDevice(s model.Schedule, d model.Device) bool {
	if s.DeviceID != nil {
		return *s.DeviceID == d.ID
	}
	if s.DeviceGroupID != nil {
		return d.GroupID != nil && *s.DeviceGroupID == *d.GroupID
	}
	return true
}
