package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Luxview-Media/luxview/internal/db"
	"github.com/Luxview-Media/luxview/internal/http/api"
	"github.com/Luxview-Media/luxview/internal/schedule"
	"github.com/Luxview-Media/luxview/internal/storage"

	authapi "github.com/Luxview-Media/luxview/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/Luxview-Media/luxview/internal/http/api/admin/control/endpoints"
	playerapi "github.com/Luxview-Media/luxview/internal/http/api/player/endpoints"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, engine *schedule.Engine, storageSystem storage.Storage) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
			"X-Device-Serial",
			"X-Device-Key",
		},
		ExposeHeaders: []string{
			"Content-Length",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
	},
		// control modules
		adminapi.DeviceModule(store, engine),
		adminapi.GroupModule(store),
		adminapi.VideoModule(store, storageSystem),
		adminapi.PlaylistModule(store),
		adminapi.AssignmentModule(store),
		adminapi.ScheduleModule(store, engine),
		adminapi.NotificationModule(store),
		playerapi.AdminPairingModule(store),
		// session endpoints that require auth
		authapi.AuthSessionModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/player",
	},
		playerapi.PairingModule(store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:     "/api/player",
		DeviceAuth: true,
	},
		playerapi.SyncModule(store, engine),
	)

	// Static content
	if !env.UseSpaces {
		r.Static("/uploads", "./uploads")
	}
}
