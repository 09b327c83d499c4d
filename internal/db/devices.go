package db

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/model"
)

const deviceColumns = `
	id, name, serial, ip_address, api_key_hash, group_id, is_active,
	last_seen, current_video, registered_at, updated_at`

func CreateDevice(name, serial, apiKeyHash string, groupID *int) (model.Device, error) {
	var d model.Device
	q := `
	INSERT INTO devices (name, serial, api_key_hash, group_id, is_active, registered_at, updated_at)
	VALUES ($1, $2, $3, $4, true, now(), now())
	RETURNING ` + deviceColumns + `;`
	if err := DB.Get(&d, q, name, serial, apiKeyHash, groupID); err != nil {
		log.Error().Err(err).Str("serial", serial).Msg("CreateDevice failed")
		return model.Device{}, err
	}
	return d, nil
}

func GetDeviceByID(id int) (model.Device, error) {
	var d model.Device
	err := DB.Get(&d, `SELECT `+deviceColumns+` FROM devices WHERE id = $1;`, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Int("device_id", id).Msg("GetDeviceByID failed")
	}
	return d, err
}

func GetDeviceBySerial(serial string) (model.Device, error) {
	var d model.Device
	err := DB.Get(&d, `SELECT `+deviceColumns+` FROM devices WHERE serial = $1;`, serial)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Str("serial", serial).Msg("GetDeviceBySerial failed")
	}
	return d, err
}

func ListDevices() ([]model.Device, error) {
	var out []model.Device
	err := DB.Select(&out, `SELECT `+deviceColumns+` FROM devices ORDER BY id;`)
	if err != nil {
		log.Error().Err(err).Msg("ListDevices failed")
		return nil, err
	}
	return out, nil
}

func ListDevicesInGroup(groupID int) ([]model.Device, error) {
	var out []model.Device
	err := DB.Select(&out, `SELECT `+deviceColumns+` FROM devices WHERE group_id = $1 ORDER BY id;`, groupID)
	if err != nil {
		log.Error().Err(err).Int("group_id", groupID).Msg("ListDevicesInGroup failed")
		return nil, err
	}
	return out, nil
}

func UpdateDevice(id int, name *string, groupID *int, isActive *bool) error {
	_, err := DB.Exec(`
		UPDATE devices
		SET name = COALESCE($2, name),
		group_id = $3,
		is_active = COALESCE($4, is_active),
		updated_at = now()
		WHERE id = $1;`, id, name, groupID, isActive)
	if err != nil {
		log.Error().Err(err).Int("device_id", id).Msg("UpdateDevice failed")
	}
	return err
}

// TouchDevice records a heartbeat: last_seen, reported IP and the video the
// player claims to be showing.
func TouchDevice(id int, ipAddress, currentVideo *string) error {
	_, err := DB.Exec(`
		UPDATE devices
		SET last_seen = now(),
		ip_address = COALESCE($2, ip_address),
		current_video = COALESCE($3, current_video),
		updated_at = now()
		WHERE id = $1;`, id, ipAddress, currentVideo)
	if err != nil {
		log.Error().Err(err).Int("device_id", id).Msg("TouchDevice failed")
	}
	return err
}

func DeleteDevice(id int) error {
	_, err := DB.Exec(`DELETE FROM devices WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("device_id", id).Msg("DeleteDevice failed")
	}
	return err
}
