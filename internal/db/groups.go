package db

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/model"
)

func CreateDeviceGroup(name string, description *string, color string) (model.DeviceGroup, error) {
	var g model.DeviceGroup
	err := DB.Get(&g, `
		INSERT INTO device_groups (name, description, color, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING id, name, description, color, created_at, updated_at;
	`, name, description, color)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("CreateDeviceGroup failed")
		return model.DeviceGroup{}, err
	}
	return g, nil
}

func GetDeviceGroupByID(id int) (model.DeviceGroup, error) {
	var g model.DeviceGroup
	err := DB.Get(&g, `
		SELECT id, name, description, color, created_at, updated_at
		  FROM device_groups
		 WHERE id = $1;
	`, id)
	return g, err
}

func ListDeviceGroups() ([]model.DeviceGroup, error) {
	var groups []model.DeviceGroup
	err := DB.Select(&groups, `
		SELECT id, name, description, color, created_at, updated_at
		  FROM device_groups
		 ORDER BY name ASC, id ASC;
	`)
	if err != nil {
		log.Error().Err(err).Msg("ListDeviceGroups failed")
		return nil, err
	}
	return groups, nil
}

func UpdateDeviceGroup(id int, name, description *string, color *string) (model.DeviceGroup, error) {
	var g model.DeviceGroup
	err := DB.Get(&g, `
		UPDATE device_groups
		   SET name        = COALESCE($2, name),
		       description = COALESCE($3, description),
		       color       = COALESCE($4, color),
		       updated_at  = now()
		 WHERE id = $1
		RETURNING id, name, description, color, created_at, updated_at;
	`, id, name, description, color)
	if err == sql.ErrNoRows {
		return g, sql.ErrNoRows
	}
	return g, err
}

func DeleteDeviceGroup(id int) error {
	res, err := DB.Exec(`DELETE FROM device_groups WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("group_id", id).Msg("DeleteDeviceGroup failed")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
