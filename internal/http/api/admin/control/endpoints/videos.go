package endpoints

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/db"
	"github.com/Luxview-Media/luxview/internal/http/api"
	"github.com/Luxview-Media/luxview/internal/http/api/admin/control/packets"
	"github.com/Luxview-Media/luxview/internal/model"
	"github.com/Luxview-Media/luxview/internal/mqtt"
	"github.com/Luxview-Media/luxview/internal/storage"
)

type VideoController struct {
	store   db.Store
	storage storage.Storage
}

// VideoModule mounts all authenticated /videos endpoints.
func VideoModule(store db.Store, st storage.Storage) api.Module {
	ctl := &VideoController{store: store, storage: st}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/videos", ctl.listVideos)
		c.POST("/videos", ctl.uploadVideo)
		c.GET("/videos/:id", ctl.getVideo)
		c.PUT("/videos/:id", ctl.updateVideo)
		c.DELETE("/videos/:id", ctl.deleteVideo)
	})
}

// GET /api/admin/videos
func (v *VideoController) listVideos(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	videos, err := v.store.ListVideos()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list videos"}
	}
	return videos, nil
}

// POST /api/admin/videos
//
// multipart form: "file" (required), "title", "duration".
func (v *VideoController) uploadVideo(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "missing file"}
	}

	title := ctx.PostForm("title")
	if title == "" {
		title = fileHeader.Filename
	}

	var duration *int
	if raw := ctx.PostForm("duration"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid duration"}
		}
		duration = &parsed
	}

	checksum, err := fileChecksum(fileHeader)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("checksum computation failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not read upload"}
	}

	url, err := v.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("video upload failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store file"}
	}

	video, err := v.store.CreateVideo(title, fileHeader.Filename, url, fileHeader.Size, duration, &checksum, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create video"}
	}

	log.Info().Int("video_id", video.ID).Str("title", video.Title).Int64("size", video.Size).
		Msg("video uploaded")

	return video, nil
}

func fileChecksum(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	h := sha256.New()
	if _, err := io.Copy(h, src); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// GET /api/admin/videos/:id
func (v *VideoController) getVideo(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	video, err := v.store.VideoByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "video not found"}
	}
	return video, nil
}

// PUT /api/admin/videos/:id
func (v *VideoController) updateVideo(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateVideoRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := v.store.UpdateVideo(id, request.Title, request.Duration); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update video"}
	}

	video, err := v.store.VideoByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "video not found"}
	}
	return video, nil
}

// DELETE /api/admin/videos/:id
func (v *VideoController) deleteVideo(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := v.store.VideoByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "video not found"}
	}
	if err := v.store.DeleteVideo(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete video"}
	}

	// players caching the file need to drop it
	mqtt.NotifyAllContentChanged()

	return gin.H{"message": "video deleted"}, nil
}
