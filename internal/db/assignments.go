package db

import (
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/model"
)

const assignmentColumns = `id, device_id, video_id, playlist_id, start_time, end_time, days_of_week, priority, assigned_at`

func CreateAssignment(a model.Assignment) (model.Assignment, error) {
	var out model.Assignment
	q := `
	INSERT INTO assignments (device_id, video_id, playlist_id, start_time, end_time, days_of_week, priority, assigned_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	RETURNING ` + assignmentColumns + `;`
	err := DB.Get(&out, q, a.DeviceID, a.VideoID, a.PlaylistID, a.StartTime, a.EndTime, a.DaysOfWeek, a.Priority)
	if err != nil {
		log.Error().Err(err).Int("device_id", a.DeviceID).Msg("CreateAssignment failed")
		return model.Assignment{}, err
	}
	return out, nil
}

func GetAssignmentByID(id int) (model.Assignment, error) {
	var a model.Assignment
	err := DB.Get(&a, `SELECT `+assignmentColumns+` FROM assignments WHERE id = $1;`, id)
	return a, err
}

// AssignmentsForDevice returns the device's assignments ordered for the
// aggregated playback list: priority descending, then id for determinism.
func AssignmentsForDevice(deviceID int) ([]model.Assignment, error) {
	var out []model.Assignment
	q := `
	SELECT ` + assignmentColumns + `
	  FROM assignments
	 WHERE device_id = $1
	 ORDER BY priority DESC, id ASC;`
	if err := DB.Select(&out, q, deviceID); err != nil {
		log.Error().Err(err).Int("device_id", deviceID).Msg("AssignmentsForDevice failed")
		return nil, err
	}
	return out, nil
}

func DeleteAssignment(id int) error {
	_, err := DB.Exec(`DELETE FROM assignments WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("assignment_id", id).Msg("DeleteAssignment failed")
	}
	return err
}
