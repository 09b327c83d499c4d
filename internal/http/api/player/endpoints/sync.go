package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/db"
	"github.com/Luxview-Media/luxview/internal/http/api"
	"github.com/Luxview-Media/luxview/internal/http/api/player/packets"
	"github.com/Luxview-Media/luxview/internal/model"
	"github.com/Luxview-Media/luxview/internal/schedule"
)

type SyncController struct {
	store  db.Store
	engine *schedule.Engine
}

// SyncModule mounts device-key-authenticated player endpoints.
func SyncModule(store db.Store, engine *schedule.Engine) api.Module {
	ctl := &SyncController{store: store, engine: engine}
	return api.ModuleFunc(func(c *api.Controller) {
		c.DeviceGET("/sync", ctl.sync)
		c.DevicePOST("/heartbeat", ctl.heartbeat)
	})
}

func (s *SyncController) videoPayload(id int) (*packets.VideoPayload, error) {
	video, err := s.store.VideoByID(id)
	if err != nil {
		return nil, err
	}
	return &packets.VideoPayload{
		ID:       video.ID,
		Title:    video.Title,
		URL:      video.URL,
		Duration: video.Duration,
		Checksum: video.Checksum,
	}, nil
}

func (s *SyncController) playlistPayload(playlistID int) ([]packets.VideoPayload, error) {
	items, err := s.store.PlaylistItems(playlistID)
	if err != nil {
		return nil, err
	}
	out := make([]packets.VideoPayload, 0, len(items))
	for _, item := range items {
		payload, err := s.videoPayload(item.VideoID)
		if err != nil {
			return nil, err
		}
		if item.Duration != nil {
			// per-item duration beats the video's own
			payload.Duration = item.Duration
		}
		out = append(out, *payload)
	}
	return out, nil
}

// GET /api/player/sync
//
// The decision endpoint. A winning schedule is exclusive; only when no
// schedule governs the instant does the assignment list play.
func (s *SyncController) sync(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	now := time.Now()

	decision, err := s.engine.ResolveActiveSchedule(device.ID, now)
	if err != nil {
		log.Error().Err(err).Int("device_id", device.ID).Msg("schedule resolution failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not resolve content"}
	}

	if decision != nil {
		var videos []packets.VideoPayload
		switch {
		case decision.VideoID != nil:
			payload, err := s.videoPayload(*decision.VideoID)
			if err != nil {
				return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load video"}
			}
			videos = []packets.VideoPayload{*payload}
		case decision.PlaylistID != nil:
			videos, err = s.playlistPayload(*decision.PlaylistID)
			if err != nil {
				return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load playlist"}
			}
		}

		until := decision.ActiveUntil.String()
		return packets.SyncResponse{
			Scheduled:    true,
			ScheduleID:   &decision.Schedule.ID,
			ScheduleName: &decision.Schedule.Name,
			ActiveUntil:  &until,
			Overridden:   decision.Overridden,
			Videos:       videos,
		}, nil
	}

	entries, err := s.engine.ActiveAssignments(device.ID, now)
	if err != nil {
		log.Error().Err(err).Int("device_id", device.ID).Msg("assignment aggregation failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not resolve content"}
	}

	videos := make([]packets.VideoPayload, 0, len(entries))
	for _, entry := range entries {
		payload, err := s.videoPayload(entry.VideoID)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load video"}
		}
		videos = append(videos, *payload)
	}

	return packets.SyncResponse{Scheduled: false, Videos: videos}, nil
}

// POST /api/player/heartbeat
func (s *SyncController) heartbeat(ctx *gin.Context, device *model.Device) (any, *api.APIError) {
	var request packets.HeartbeatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	ip := ctx.ClientIP()
	if err := s.store.TouchDevice(device.ID, &ip, request.CurrentVideo); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not record heartbeat"}
	}
	return gin.H{"message": "ok"}, nil
}
