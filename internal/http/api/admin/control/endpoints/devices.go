package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/db"
	"github.com/Luxview-Media/luxview/internal/http/api"
	"github.com/Luxview-Media/luxview/internal/http/api/admin/control/packets"
	"github.com/Luxview-Media/luxview/internal/http/middleware"
	"github.com/Luxview-Media/luxview/internal/model"
	"github.com/Luxview-Media/luxview/internal/mqtt"
	"github.com/Luxview-Media/luxview/internal/schedule"
)

type DeviceController struct {
	store  db.Store
	engine *schedule.Engine
}

func newDeviceController(store db.Store, engine *schedule.Engine) *DeviceController {
	return &DeviceController{store: store, engine: engine}
}

// DeviceModule mounts all authenticated /devices endpoints.
func DeviceModule(store db.Store, engine *schedule.Engine) api.Module {
	ctl := newDeviceController(store, engine)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/devices", ctl.listDevices)
		c.POST("/devices", ctl.createDevice)
		c.GET("/devices/:id", ctl.getDevice)
		c.PUT("/devices/:id", ctl.updateDevice)
		c.DELETE("/devices/:id", ctl.deleteDevice)

		// resolver views
		c.GET("/devices/:id/preview", ctl.previewDevice)
		c.GET("/devices/:id/playback", ctl.devicePlayback)
		c.GET("/devices/:id/assignments", ctl.listDeviceAssignments)
	})
}

func pathID(ctx *gin.Context) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		log.Error().Err(err).Str("id_raw", ctx.Param("id")).Msg("invalid id in request")
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}
	return id, nil
}

func queryInt(ctx *gin.Context, name string) (int, *api.APIError) {
	v, err := strconv.Atoi(ctx.Query(name))
	if err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid " + name}
	}
	return v, nil
}

// GET /api/admin/devices
func (d *DeviceController) listDevices(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	devices, err := d.store.ListDevices()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list devices"}
	}
	return devices, nil
}

// POST /api/admin/devices
func (d *DeviceController) createDevice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateDeviceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := d.store.DeviceBySerial(request.Serial); err == nil {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "serial already registered"}
	}

	// the plaintext key leaves the server exactly once, in this response
	apiKey := uuid.NewString()
	hash, err := middleware.HashPassword(apiKey)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate device key"}
	}

	device, err := d.store.CreateDevice(request.Name, request.Serial, hash, request.GroupID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create device"}
	}

	log.Info().Int("device_id", device.ID).Str("serial", device.Serial).Int("user_id", user.ID).
		Msg("device registered")

	return packets.DeviceCreatedResponse{Device: device, APIKey: apiKey}, nil
}

// GET /api/admin/devices/:id
func (d *DeviceController) getDevice(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	device, err := d.store.DeviceByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "device not found"}
	}
	return device, nil
}

// PUT /api/admin/devices/:id
func (d *DeviceController) updateDevice(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateDeviceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.GroupID != nil {
		if _, err := d.store.DeviceGroupByID(*request.GroupID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "group not found"}
		}
	}

	if err := d.store.UpdateDevice(id, request.Name, request.GroupID, request.IsActive); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update device"}
	}

	updated, err := d.store.DeviceByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "device not found"}
	}

	// group or enablement changes alter what the device should play
	mqtt.NotifyContentChanged(updated.Serial)

	return updated, nil
}

// DELETE /api/admin/devices/:id
func (d *DeviceController) deleteDevice(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := d.store.DeviceByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "device not found"}
	}
	if err := d.store.DeleteDevice(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete device"}
	}
	return gin.H{"message": "device deleted"}, nil
}

// GET /api/admin/devices/:id/preview?date=YYYY-MM-DD
func (d *DeviceController) previewDevice(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	date := time.Now()
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date, expected YYYY-MM-DD"}
		}
		date = parsed
	}

	slots, err := d.engine.DayPreview(id, date)
	if err != nil {
		log.Error().Err(err).Int("device_id", id).Msg("day preview failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not build preview"}
	}

	out := make([]packets.PreviewSlot, 0, len(slots))
	for _, slot := range slots {
		entry := packets.PreviewSlot{Hour: slot.Hour}
		if slot.Decision != nil {
			sched := slot.Decision.Schedule
			entry.ScheduleID = &sched.ID
			entry.ScheduleName = &sched.Name
			entry.VideoID = slot.Decision.VideoID
			entry.PlaylistID = slot.Decision.PlaylistID
			entry.Overridden = slot.Decision.Overridden
		}
		out = append(out, entry)
	}
	return out, nil
}

// GET /api/admin/devices/:id/playback
//
// Shows what the device would play right now: the schedule decision when one
// wins, otherwise the aggregated assignment list.
func (d *DeviceController) devicePlayback(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := d.store.DeviceByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "device not found"}
	}

	now := time.Now()
	decision, err := d.engine.ResolveActiveSchedule(id, now)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not resolve schedule"}
	}
	if decision != nil {
		return gin.H{
			"scheduled":             true,
			"schedule_id":           decision.Schedule.ID,
			"schedule_name":         decision.Schedule.Name,
			"video_id":              decision.VideoID,
			"playlist_id":           decision.PlaylistID,
			"overridden":            decision.Overridden,
			"schedule_active_until": decision.ActiveUntil,
		}, nil
	}

	entries, err := d.engine.ActiveAssignments(id, now)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not aggregate assignments"}
	}
	return gin.H{"scheduled": false, "entries": entries}, nil
}

// GET /api/admin/devices/:id/assignments
func (d *DeviceController) listDeviceAssignments(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	assignments, err := d.store.AssignmentsForDevice(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list assignments"}
	}
	return assignments, nil
}
