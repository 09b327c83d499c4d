package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/db"
	"github.com/Luxview-Media/luxview/internal/http/api"
	"github.com/Luxview-Media/luxview/internal/http/api/admin/control/packets"
	"github.com/Luxview-Media/luxview/internal/model"
	"github.com/Luxview-Media/luxview/internal/mqtt"
	"github.com/Luxview-Media/luxview/internal/schedule"
)

const defaultScheduleColor = "#3788d8"

type ScheduleController struct {
	store  db.Store
	engine *schedule.Engine
}

// ScheduleModule mounts all authenticated /schedules endpoints.
func ScheduleModule(store db.Store, engine *schedule.Engine) api.Module {
	ctl := &ScheduleController{store: store, engine: engine}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/schedules", ctl.listSchedules)
		c.POST("/schedules", ctl.createSchedule)
		c.GET("/schedules/calendar", ctl.calendar)
		c.GET("/schedules/:id", ctl.getSchedule)
		c.PUT("/schedules/:id", ctl.updateSchedule)
		c.DELETE("/schedules/:id", ctl.deleteSchedule)

		c.GET("/schedules/:id/conflicts", ctl.scheduleConflicts)
		c.GET("/schedules/:id/exceptions", ctl.listExceptions)
		c.POST("/schedules/:id/exceptions", ctl.createException)
		c.DELETE("/schedules/exceptions/:id", ctl.deleteException)
	})
}

func parseDate(raw string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", raw)
	return t, err == nil
}

func parseDatePtr(raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	t, ok := parseDate(*raw)
	if !ok {
		return nil, false
	}
	return &t, true
}

// scheduleFromRequest validates and converts the request body. Used by both
// create and update.
func scheduleFromRequest(request packets.ScheduleRequest) (model.Schedule, *api.APIError) {
	var s model.Schedule

	if (request.VideoID == nil) == (request.PlaylistID == nil) {
		return s, &api.APIError{Code: http.StatusBadRequest, Message: "exactly one of video_id and playlist_id is required"}
	}
	if request.DeviceID != nil && request.DeviceGroupID != nil {
		return s, &api.APIError{Code: http.StatusBadRequest, Message: "device_id and device_group_id are mutually exclusive"}
	}

	startDate, ok := parseDatePtr(request.StartDate)
	if !ok {
		return s, &api.APIError{Code: http.StatusBadRequest, Message: "invalid start_date, expected YYYY-MM-DD"}
	}
	endDate, ok := parseDatePtr(request.EndDate)
	if !ok {
		return s, &api.APIError{Code: http.StatusBadRequest, Message: "invalid end_date, expected YYYY-MM-DD"}
	}
	recurrenceEnd, ok := parseDatePtr(request.RecurrenceEndDate)
	if !ok {
		return s, &api.APIError{Code: http.StatusBadRequest, Message: "invalid recurrence_end_date, expected YYYY-MM-DD"}
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return s, &api.APIError{Code: http.StatusBadRequest, Message: "end_date before start_date"}
	}

	recurrenceType := model.RecurrenceNone
	if request.RecurrenceType != nil {
		recurrenceType = *request.RecurrenceType
	}
	recurrenceInterval := 1
	if request.RecurrenceInterval != nil {
		if *request.RecurrenceInterval < 1 {
			return s, &api.APIError{Code: http.StatusBadRequest, Message: "recurrence_interval must be >= 1"}
		}
		recurrenceInterval = *request.RecurrenceInterval
	}

	color := defaultScheduleColor
	if request.Color != nil && *request.Color != "" {
		color = *request.Color
	}
	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	s = model.Schedule{
		Name:               request.Name,
		Description:        request.Description,
		VideoID:            request.VideoID,
		PlaylistID:         request.PlaylistID,
		DeviceID:           request.DeviceID,
		DeviceGroupID:      request.DeviceGroupID,
		StartTime:          request.StartTime,
		EndTime:            request.EndTime,
		DaysOfWeek:         request.DaysOfWeek,
		StartDate:          startDate,
		EndDate:            endDate,
		Priority:           request.Priority,
		IsRecurring:        request.IsRecurring,
		RecurrenceType:     recurrenceType,
		RecurrenceInterval: recurrenceInterval,
		RecurrenceEndDate:  recurrenceEnd,
		IsAllDay:           request.IsAllDay,
		Color:              color,
		IsActive:           isActive,
	}
	return s, nil
}

// notifyScheduleTargets pushes a refresh to whatever the schedule covers.
func (sc *ScheduleController) notifyScheduleTargets(s model.Schedule) {
	switch {
	case s.DeviceID != nil:
		if device, err := sc.store.DeviceByID(*s.DeviceID); err == nil {
			mqtt.NotifyContentChanged(device.Serial)
		}
	case s.DeviceGroupID != nil:
		devices, err := sc.store.ListDevicesInGroup(*s.DeviceGroupID)
		if err != nil {
			return
		}
		for _, device := range devices {
			mqtt.NotifyContentChanged(device.Serial)
		}
	default:
		mqtt.NotifyAllContentChanged()
	}
}

// GET /api/admin/schedules
func (sc *ScheduleController) listSchedules(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	schedules, err := sc.store.ListSchedules()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list schedules"}
	}
	return schedules, nil
}

// POST /api/admin/schedules
func (sc *ScheduleController) createSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	s, apiErr := scheduleFromRequest(request)
	if apiErr != nil {
		return nil, apiErr
	}
	s.CreatedBy = &user.ID

	created, err := sc.store.CreateSchedule(s)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create schedule"}
	}

	log.Info().Int("schedule_id", created.ID).Str("name", created.Name).Int("priority", created.Priority).
		Msg("schedule created")

	// advisory: creation succeeds even when overlapping
	conflicts, err := sc.engine.FindConflicts(created, time.Now())
	if err != nil {
		log.Warn().Err(err).Int("schedule_id", created.ID).Msg("conflict check failed on create")
	}

	sc.notifyScheduleTargets(created)

	return gin.H{"schedule": created, "conflicts": conflictResponses(conflicts)}, nil
}

// GET /api/admin/schedules/:id
func (sc *ScheduleController) getSchedule(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	s, err := sc.store.ScheduleByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}
	return s, nil
}

// PUT /api/admin/schedules/:id
func (sc *ScheduleController) updateSchedule(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	existing, err := sc.store.ScheduleByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}

	var request packets.ScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	s, apiErr := scheduleFromRequest(request)
	if apiErr != nil {
		return nil, apiErr
	}
	s.ID = id
	s.CreatedBy = existing.CreatedBy

	updated, err := sc.store.UpdateSchedule(s)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update schedule"}
	}

	// a retargeted schedule changes playback on both old and new targets
	sc.notifyScheduleTargets(existing)
	sc.notifyScheduleTargets(updated)

	return updated, nil
}

// DELETE /api/admin/schedules/:id
func (sc *ScheduleController) deleteSchedule(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	existing, err := sc.store.ScheduleByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}
	if err := sc.store.DeleteSchedule(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete schedule"}
	}

	sc.notifyScheduleTargets(existing)

	return gin.H{"message": "schedule deleted"}, nil
}

func conflictResponses(conflicts []schedule.Conflict) []packets.ConflictResponse {
	out := make([]packets.ConflictResponse, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, packets.ConflictResponse{
			ScheduleID:   c.Schedule.ID,
			ScheduleName: c.Schedule.Name,
			OtherID:      c.Other.ID,
			OtherName:    c.Other.Name,
			ConflictType: c.Type,
			Details:      c.Details,
		})
	}
	return out
}

// GET /api/admin/schedules/:id/conflicts?date=YYYY-MM-DD
func (sc *ScheduleController) scheduleConflicts(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	s, err := sc.store.ScheduleByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}

	date := time.Now()
	if raw := ctx.Query("date"); raw != "" {
		parsed, ok := parseDate(raw)
		if !ok {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date, expected YYYY-MM-DD"}
		}
		date = parsed
	}

	conflicts, err := sc.engine.FindConflicts(s, date)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not check conflicts"}
	}
	return conflictResponses(conflicts), nil
}

// GET /api/admin/schedules/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD[&device_id|&group_id]
func (sc *ScheduleController) calendar(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	from, ok := parseDate(ctx.Query("from"))
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid from, expected YYYY-MM-DD"}
	}
	to, ok := parseDate(ctx.Query("to"))
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid to, expected YYYY-MM-DD"}
	}
	if to.Before(from) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "to before from"}
	}

	var filter schedule.EventFilter
	if raw := ctx.Query("device_id"); raw != "" {
		deviceID, apiErr := queryInt(ctx, "device_id")
		if apiErr != nil {
			return nil, apiErr
		}
		filter.DeviceID = &deviceID
	} else if raw := ctx.Query("group_id"); raw != "" {
		groupID, apiErr := queryInt(ctx, "group_id")
		if apiErr != nil {
			return nil, apiErr
		}
		filter.GroupID = &groupID
	}

	events, err := sc.engine.ProjectEvents(from, to, filter)
	if err != nil {
		log.Error().Err(err).Msg("calendar projection failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not build calendar"}
	}
	return events, nil
}

// GET /api/admin/schedules/:id/exceptions
func (sc *ScheduleController) listExceptions(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := sc.store.ScheduleByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}

	exceptions, err := sc.store.ListScheduleExceptions(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list exceptions"}
	}
	return exceptions, nil
}

// POST /api/admin/schedules/:id/exceptions
func (sc *ScheduleController) createException(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	s, err := sc.store.ScheduleByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "schedule not found"}
	}

	var request packets.ExceptionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	date, ok := parseDate(request.Date)
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid date, expected YYYY-MM-DD"}
	}
	if request.OverrideVideoID != nil && request.OverridePlaylistID != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "override_video_id and override_playlist_id are mutually exclusive"}
	}

	exception, err := sc.store.CreateScheduleException(model.ScheduleException{
		ScheduleID:         id,
		ExceptionDate:      date,
		ExceptionType:      request.Type,
		OverrideVideoID:    request.OverrideVideoID,
		OverridePlaylistID: request.OverridePlaylistID,
		Reason:             request.Reason,
		CreatedBy:          &user.ID,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create exception"}
	}

	sc.notifyScheduleTargets(s)

	return exception, nil
}

// DELETE /api/admin/schedules/exceptions/:id
func (sc *ScheduleController) deleteException(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := sc.store.DeleteScheduleException(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete exception"}
	}
	return gin.H{"message": "exception deleted"}, nil
}
