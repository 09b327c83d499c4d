package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/db"
	"github.com/Luxview-Media/luxview/internal/http/api"
	"github.com/Luxview-Media/luxview/internal/http/api/admin/control/packets"
	"github.com/Luxview-Media/luxview/internal/model"
	"github.com/Luxview-Media/luxview/internal/mqtt"
)

type AssignmentController struct {
	store db.Store
}

// AssignmentModule mounts all authenticated /assignments endpoints.
func AssignmentModule(store db.Store) api.Module {
	ctl := &AssignmentController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/assignments", ctl.createAssignment)
		c.DELETE("/assignments/:id", ctl.deleteAssignment)
	})
}

// POST /api/admin/assignments
func (a *AssignmentController) createAssignment(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	var request packets.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if (request.VideoID == nil) == (request.PlaylistID == nil) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "exactly one of video_id and playlist_id is required"}
	}

	device, err := a.store.DeviceByID(request.DeviceID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "device not found"}
	}
	if request.VideoID != nil {
		if _, err := a.store.VideoByID(*request.VideoID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "video not found"}
		}
	}
	if request.PlaylistID != nil {
		if _, err := a.store.PlaylistByID(*request.PlaylistID); err != nil {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "playlist not found"}
		}
	}

	assignment, err := a.store.CreateAssignment(model.Assignment{
		DeviceID:   request.DeviceID,
		VideoID:    request.VideoID,
		PlaylistID: request.PlaylistID,
		StartTime:  request.StartTime,
		EndTime:    request.EndTime,
		DaysOfWeek: request.DaysOfWeek,
		Priority:   request.Priority,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create assignment"}
	}

	log.Info().Int("assignment_id", assignment.ID).Int("device_id", device.ID).
		Str("content", assignment.ContentType()).Msg("content assigned")

	mqtt.NotifyContentChanged(device.Serial)

	return assignment, nil
}

// DELETE /api/admin/assignments/:id
func (a *AssignmentController) deleteAssignment(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	assignment, err := a.store.AssignmentByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "assignment not found"}
	}
	if err := a.store.DeleteAssignment(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete assignment"}
	}

	if device, err := a.store.DeviceByID(assignment.DeviceID); err == nil {
		mqtt.NotifyContentChanged(device.Serial)
	}

	return gin.H{"message": "assignment deleted"}, nil
}
