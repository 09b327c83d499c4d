package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Luxview-Media/luxview/internal/model"
)

func TestAppliesToDevice(t *testing.T) {
	device := model.Device{ID: 1, GroupID: intPtr(10)}
	ungrouped := model.Device{ID: 2}

	tests := []struct {
		name     string
		schedule model.Schedule
		device   model.Device
		want     bool
	}{
		{"direct device match", model.Schedule{DeviceID: intPtr(1)}, device, true},
		{"different device", model.Schedule{DeviceID: intPtr(2)}, device, false},
		{"group match", model.Schedule{DeviceGroupID: intPtr(10)}, device, true},
		{"different group", model.Schedule{DeviceGroupID: intPtr(11)}, device, false},
		{"group target against ungrouped device", model.Schedule{DeviceGroupID: intPtr(10)}, ungrouped, false},
		{"broadcast", model.Schedule{}, device, true},
		{"broadcast to ungrouped", model.Schedule{}, ungrouped, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AppliesToDevice(tt.schedule, tt.device))
		})
	}
}
