package endpoints

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/db"
	"github.com/Luxview-Media/luxview/internal/http/api"
	"github.com/Luxview-Media/luxview/internal/http/api/player/packets"
	"github.com/Luxview-Media/luxview/internal/http/middleware"
	"github.com/Luxview-Media/luxview/internal/model"

	redisclient "github.com/Luxview-Media/luxview/internal/redis"
)

const (
	pairingCodeTTL = 15 * time.Minute
	pairingKeyTTL  = 5 * time.Minute
)

func pairingCodeKey(code string) string { return "pairing:code:" + code }
func pairingAPIKey(code string) string  { return "pairing:key:" + code }

type PairingController struct {
	store db.Store
}

// PairingModule mounts the public pairing endpoints players call before they
// hold an API key.
func PairingModule(store db.Store) api.Module {
	ctl := &PairingController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/pair/code", ctl.requestPairingCode)
		c.PUBLIC_GET("/pair/status", ctl.pairingStatus)
	})
}

// AdminPairingModule mounts the claim endpoint under the authenticated admin
// group. Claiming a code registers the device and parks its API key in Redis
// for the player to collect.
func AdminPairingModule(store db.Store) api.Module {
	ctl := &PairingController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/devices/pair", ctl.claimPairingCode)
	})
}

// six digits, shown on the player's screen
func generatePairingCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// POST /api/player/pair/code
func (p *PairingController) requestPairingCode(ctx *gin.Context) (any, *api.APIError) {
	var request packets.PairingCodeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if _, err := p.store.DeviceBySerial(request.Serial); err == nil {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "device already registered"}
	}

	code, err := generatePairingCode()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate pairing code"}
	}

	redisclient.Set(ctx, pairingCodeKey(code), request.Serial, pairingCodeTTL)

	log.Info().Str("serial", request.Serial).Msg("pairing code issued")

	return packets.PairingCodeResponse{
		Code:      code,
		ExpiresIn: int(pairingCodeTTL.Seconds()),
	}, nil
}

// GET /api/player/pair/status?code=NNNNNN
//
// Players poll this until the admin claims the code. The API key is handed
// out once and deleted.
func (p *PairingController) pairingStatus(ctx *gin.Context) (any, *api.APIError) {
	code := ctx.Query("code")
	if code == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "missing code"}
	}

	apiKey, ok := redisclient.Get(ctx, pairingAPIKey(code))
	if !ok {
		return packets.PairingStatusResponse{Paired: false}, nil
	}

	redisclient.Del(ctx, pairingAPIKey(code))
	redisclient.Del(ctx, pairingCodeKey(code))

	return packets.PairingStatusResponse{Paired: true, APIKey: apiKey}, nil
}

// POST /api/admin/devices/pair
func (p *PairingController) claimPairingCode(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ClaimPairingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	serial, ok := redisclient.Get(ctx, pairingCodeKey(request.Code))
	if !ok {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "pairing code not found or expired"}
	}

	apiKey := uuid.NewString()
	hash, err := middleware.HashPassword(apiKey)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate device key"}
	}

	device, err := p.store.CreateDevice(request.Name, serial, hash, request.GroupID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create device"}
	}

	// the player collects the key on its next status poll
	redisclient.Set(ctx, pairingAPIKey(request.Code), apiKey, pairingKeyTTL)

	log.Info().Int("device_id", device.ID).Str("serial", serial).Int("user_id", user.ID).
		Msg("device paired")

	return device, nil
}
