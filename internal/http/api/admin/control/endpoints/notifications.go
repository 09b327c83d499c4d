package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Luxview-Media/luxview/internal/db"
	"github.com/Luxview-Media/luxview/internal/http/api"
	"github.com/Luxview-Media/luxview/internal/model"
)

type NotificationController struct {
	store db.Store
}

// NotificationModule mounts all authenticated /notifications endpoints.
func NotificationModule(store db.Store) api.Module {
	ctl := &NotificationController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/notifications", ctl.listNotifications)
		c.POST("/notifications/:id/read", ctl.markRead)
	})
}

// GET /api/admin/notifications?unread=true
func (n *NotificationController) listNotifications(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	unreadOnly := ctx.Query("unread") == "true"

	notifications, err := n.store.ListNotifications(unreadOnly)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list notifications"}
	}
	return notifications, nil
}

// POST /api/admin/notifications/:id/read
func (n *NotificationController) markRead(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := n.store.MarkNotificationRead(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not mark notification read"}
	}
	return gin.H{"message": "notification read"}, nil
}
