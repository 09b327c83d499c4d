package db

import (
	"database/sql"
	"errors"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/model"
)

const scheduleColumns = `
	id, name, description, video_id, playlist_id, device_id, device_group_id,
	start_time, end_time, days_of_week, start_date, end_date, priority,
	is_recurring, recurrence_type, recurrence_interval, recurrence_end_date,
	is_all_day, color, is_active, created_by, created_at, updated_at`

func CreateSchedule(s model.Schedule) (model.Schedule, error) {
	var out model.Schedule
	q := `
	INSERT INTO schedules
	  (name, description, video_id, playlist_id, device_id, device_group_id,
	   start_time, end_time, days_of_week, start_date, end_date, priority,
	   is_recurring, recurrence_type, recurrence_interval, recurrence_end_date,
	   is_all_day, color, is_active, created_by, created_at, updated_at)
	VALUES
	  ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, now(), now())
	RETURNING ` + scheduleColumns + `;`
	err := DB.Get(&out, q,
		s.Name, s.Description, s.VideoID, s.PlaylistID, s.DeviceID, s.DeviceGroupID,
		s.StartTime, s.EndTime, s.DaysOfWeek, s.StartDate, s.EndDate, s.Priority,
		s.IsRecurring, s.RecurrenceType, s.RecurrenceInterval, s.RecurrenceEndDate,
		s.IsAllDay, s.Color, s.IsActive, s.CreatedBy)
	if err != nil {
		log.Error().Err(err).Str("name", s.Name).Msg("CreateSchedule failed")
		return model.Schedule{}, err
	}
	return out, nil
}

func GetSchedule(id int) (model.Schedule, error) {
	var s model.Schedule
	err := DB.Get(&s, `SELECT `+scheduleColumns+` FROM schedules WHERE id = $1;`, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Int("schedule_id", id).Msg("GetSchedule failed")
	}
	return s, err
}

func ListSchedules() ([]model.Schedule, error) {
	var out []model.Schedule
	err := DB.Select(&out, `SELECT `+scheduleColumns+` FROM schedules ORDER BY priority DESC, id ASC;`)
	if err != nil {
		log.Error().Err(err).Msg("ListSchedules failed")
		return nil, err
	}
	return out, nil
}

func UpdateSchedule(s model.Schedule) (model.Schedule, error) {
	var out model.Schedule
	q := `
	UPDATE schedules SET
	  name = $2, description = $3, video_id = $4, playlist_id = $5,
	  device_id = $6, device_group_id = $7, start_time = $8, end_time = $9,
	  days_of_week = $10, start_date = $11, end_date = $12, priority = $13,
	  is_recurring = $14, recurrence_type = $15, recurrence_interval = $16,
	  recurrence_end_date = $17, is_all_day = $18, color = $19, is_active = $20,
	  updated_at = now()
	WHERE id = $1
	RETURNING ` + scheduleColumns + `;`
	err := DB.Get(&out, q, s.ID,
		s.Name, s.Description, s.VideoID, s.PlaylistID, s.DeviceID, s.DeviceGroupID,
		s.StartTime, s.EndTime, s.DaysOfWeek, s.StartDate, s.EndDate, s.Priority,
		s.IsRecurring, s.RecurrenceType, s.RecurrenceInterval, s.RecurrenceEndDate,
		s.IsAllDay, s.Color, s.IsActive)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", s.ID).Msg("UpdateSchedule failed")
		return model.Schedule{}, err
	}
	return out, nil
}

// DeleteSchedule removes the schedule; its exceptions cascade.
func DeleteSchedule(id int) error {
	_, err := DB.Exec(`DELETE FROM schedules WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", id).Msg("DeleteSchedule failed")
	}
	return err
}

// SchedulesActiveOn returns enabled schedules whose start/end dates admit the
// given date. The resolver re-checks every bound in memory, including the
// recurrence end date; this query only narrows the candidate set.
func SchedulesActiveOn(date time.Time) ([]model.Schedule, error) {
	var out []model.Schedule
	q := `
	SELECT ` + scheduleColumns + `
	  FROM schedules
	 WHERE is_active = true
	   AND (start_date IS NULL OR start_date <= $1)
	   AND (end_date IS NULL OR end_date >= $1)
	 ORDER BY priority DESC, id ASC;`
	if err := DB.Select(&out, q, date); err != nil {
		log.Error().Err(err).Time("date", date).Msg("SchedulesActiveOn failed")
		return nil, err
	}
	return out, nil
}

// SchedulesInRange returns enabled schedules whose date bounds overlap
// [from, to], for calendar projection.
func SchedulesInRange(from, to time.Time) ([]model.Schedule, error) {
	var out []model.Schedule
	q := `
	SELECT ` + scheduleColumns + `
	  FROM schedules
	 WHERE is_active = true
	   AND (start_date IS NULL OR start_date <= $2)
	   AND (end_date IS NULL OR end_date >= $1)
	 ORDER BY priority DESC, id ASC;`
	if err := DB.Select(&out, q, from, to); err != nil {
		log.Error().Err(err).Msg("SchedulesInRange failed")
		return nil, err
	}
	return out, nil
}

const exceptionColumns = `
	id, schedule_id, exception_date, exception_type, override_video_id,
	override_playlist_id, reason, created_by, created_at`

func CreateScheduleException(e model.ScheduleException) (model.ScheduleException, error) {
	var out model.ScheduleException
	q := `
	INSERT INTO schedule_exceptions
	  (schedule_id, exception_date, exception_type, override_video_id, override_playlist_id, reason, created_by, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	ON CONFLICT (schedule_id, exception_date) DO UPDATE SET
	  exception_type = EXCLUDED.exception_type,
	  override_video_id = EXCLUDED.override_video_id,
	  override_playlist_id = EXCLUDED.override_playlist_id,
	  reason = EXCLUDED.reason
	RETURNING ` + exceptionColumns + `;`
	err := DB.Get(&out, q, e.ScheduleID, e.ExceptionDate, e.ExceptionType,
		e.OverrideVideoID, e.OverridePlaylistID, e.Reason, e.CreatedBy)
	if err != nil {
		log.Error().Err(err).Int("schedule_id", e.ScheduleID).Msg("CreateScheduleException failed")
		return model.ScheduleException{}, err
	}
	return out, nil
}

func ListScheduleExceptions(scheduleID int) ([]model.ScheduleException, error) {
	var out []model.ScheduleException
	q := `
	SELECT ` + exceptionColumns + `
	  FROM schedule_exceptions
	 WHERE schedule_id = $1
	 ORDER BY exception_date ASC;`
	if err := DB.Select(&out, q, scheduleID); err != nil {
		log.Error().Err(err).Int("schedule_id", scheduleID).Msg("ListScheduleExceptions failed")
		return nil, err
	}
	return out, nil
}

// ExceptionFor fetches the single exception for (schedule, date), nil when
// none is recorded.
func ExceptionFor(scheduleID int, date time.Time) (*model.ScheduleException, error) {
	var e model.ScheduleException
	q := `
	SELECT ` + exceptionColumns + `
	  FROM schedule_exceptions
	 WHERE schedule_id = $1 AND exception_date = $2;`
	err := DB.Get(&e, q, scheduleID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error().Err(err).Int("schedule_id", scheduleID).Msg("ExceptionFor failed")
		return nil, err
	}
	return &e, nil
}

func DeleteScheduleException(id int) error {
	_, err := DB.Exec(`DELETE FROM schedule_exceptions WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("exception_id", id).Msg("DeleteScheduleException failed")
	}
	return err
}
