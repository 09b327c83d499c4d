package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Luxview-Media/luxview/internal/db"
	"github.com/Luxview-Media/luxview/internal/http/api"
	"github.com/Luxview-Media/luxview/internal/http/api/admin/control/packets"
	"github.com/Luxview-Media/luxview/internal/model"
)

const defaultGroupColor = "#1976d2"

type GroupController struct {
	store db.Store
}

// GroupModule mounts all authenticated /groups endpoints.
func GroupModule(store db.Store) api.Module {
	ctl := &GroupController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/groups", ctl.listGroups)
		c.POST("/groups", ctl.createGroup)
		c.GET("/groups/:id", ctl.getGroup)
		c.PUT("/groups/:id", ctl.updateGroup)
		c.DELETE("/groups/:id", ctl.deleteGroup)
		c.GET("/groups/:id/devices", ctl.listGroupDevices)
	})
}

// GET /api/admin/groups
func (g *GroupController) listGroups(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	groups, err := g.store.ListDeviceGroups()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list groups"}
	}
	return groups, nil
}

// POST /api/admin/groups
func (g *GroupController) createGroup(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	var request packets.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	color := request.Color
	if color == "" {
		color = defaultGroupColor
	}

	group, err := g.store.CreateDeviceGroup(request.Name, request.Description, color)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create group"}
	}
	return group, nil
}

// GET /api/admin/groups/:id
func (g *GroupController) getGroup(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	group, err := g.store.DeviceGroupByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "group not found"}
	}
	return group, nil
}

// PUT /api/admin/groups/:id
func (g *GroupController) updateGroup(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	group, err := g.store.UpdateDeviceGroup(id, request.Name, request.Description, request.Color)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "group not found"}
	}
	return group, nil
}

// DELETE /api/admin/groups/:id
//
// Devices in the group are detached, not deleted.
func (g *GroupController) deleteGroup(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := g.store.DeleteDeviceGroup(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "group not found"}
	}
	return gin.H{"message": "group deleted"}, nil
}

// GET /api/admin/groups/:id/devices
func (g *GroupController) listGroupDevices(ctx *gin.Context, _ *model.User) (any, *api.APIError) {
	id, apiErr := pathID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if _, err := g.store.DeviceGroupByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "group not found"}
	}

	devices, err := g.store.ListDevicesInGroup(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list devices"}
	}
	return devices, nil
}
