package packets

// body for requesting a pairing code, sent by an unprovisioned player
type PairingCodeRequest struct {
	Serial string `json:"serial" binding:"required"`
}

// body for claiming a pairing code from the admin UI
type ClaimPairingRequest struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	GroupID *int   `json:"group_id"`
}

type HeartbeatRequest struct {
	CurrentVideo *string `json:"current_video"`
}
