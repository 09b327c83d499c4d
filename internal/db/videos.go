package db

import (
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/model"
)

const videoColumns = `id, title, filename, url, size, duration, checksum, created_by, created_at, updated_at`

func CreateVideo(title, filename, url string, size int64, duration *int, checksum *string, createdBy int) (model.Video, error) {
	var v model.Video
	q := `
	INSERT INTO videos (title, filename, url, size, duration, checksum, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
	RETURNING ` + videoColumns + `;`
	if err := DB.Get(&v, q, title, filename, url, size, duration, checksum, createdBy); err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("CreateVideo failed")
		return model.Video{}, err
	}
	return v, nil
}

func GetVideoByID(id int) (model.Video, error) {
	var v model.Video
	err := DB.Get(&v, `SELECT `+videoColumns+` FROM videos WHERE id = $1;`, id)
	return v, err
}

func ListVideos() ([]model.Video, error) {
	var out []model.Video
	if err := DB.Select(&out, `SELECT `+videoColumns+` FROM videos ORDER BY id;`); err != nil {
		log.Error().Err(err).Msg("ListVideos failed")
		return nil, err
	}
	return out, nil
}

func UpdateVideo(id int, title *string, duration *int) error {
	_, err := DB.Exec(`
		UPDATE videos
		SET title = COALESCE($2, title),
		duration = COALESCE($3, duration),
		updated_at = now()
		WHERE id = $1;`, id, title, duration)
	if err != nil {
		log.Error().Err(err).Int("video_id", id).Msg("UpdateVideo failed")
	}
	return err
}

func DeleteVideo(id int) error {
	_, err := DB.Exec(`DELETE FROM videos WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("video_id", id).Msg("DeleteVideo failed")
	}
	return err
}
