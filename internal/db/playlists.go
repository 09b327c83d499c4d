package db

import (
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Luxview-Media/luxview/internal/model"
)

func CreatePlaylist(name string, description *string, createdBy int) (model.Playlist, error) {
	var p model.Playlist
	const q = `
	INSERT INTO playlists (name, description, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING id, name, description, created_by, created_at, updated_at;
	`
	if err := DB.Get(&p, q, name, description, createdBy); err != nil {
		log.Error().Err(err).Msg("CreatePlaylist failed")
		return model.Playlist{}, err
	}
	return p, nil
}

func GetPlaylistByID(id int) (model.Playlist, error) {
	var p model.Playlist
	const q = `
	SELECT id, name, description, created_by, created_at, updated_at
	  FROM playlists
	 WHERE id = $1;`
	if err := DB.Get(&p, q, id); err != nil {
		return model.Playlist{}, err
	}

	items, err := ListPlaylistItems(id)
	if err != nil {
		return p, err
	}
	p.Items = items
	return p, nil
}

func ListPlaylists() ([]model.Playlist, error) {
	var out []model.Playlist
	const q = `SELECT id, name, description, created_by, created_at, updated_at FROM playlists ORDER BY id;`
	if err := DB.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListPlaylists failed")
		return nil, err
	}

	for i := range out {
		items, err := ListPlaylistItems(out[i].ID)
		if err != nil {
			log.Error().Err(err).Msgf("ListPlaylists: failed to load items for playlist %d", out[i].ID)
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func UpdatePlaylist(id int, name, description *string) error {
	_, err := DB.Exec(`
		UPDATE playlists
		SET
		name        = COALESCE($2, name),
		description = COALESCE($3, description),
		updated_at  = now()
		WHERE id = $1;`, id, name, description)
	if err != nil {
		log.Error().Err(err).Int("playlist_id", id).Msg("UpdatePlaylist failed")
	}
	return err
}

func DeletePlaylist(id int) error {
	_, err := DB.Exec(`DELETE FROM playlists WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("playlist_id", id).Msg("DeletePlaylist failed")
	}
	return err
}

// ListPlaylistItems returns a playlist's items in stored position order with
// their videos attached. The order is what the assignment aggregator and the
// player sync endpoint replay.
func ListPlaylistItems(playlistID int) ([]model.PlaylistItem, error) {
	var items []model.PlaylistItem
	const q = `
	SELECT id, playlist_id, video_id, position, duration, created_at
	  FROM playlist_items
	 WHERE playlist_id = $1
	 ORDER BY position ASC, id ASC;`
	if err := DB.Select(&items, q, playlistID); err != nil {
		log.Error().Err(err).Int("playlist_id", playlistID).Msg("ListPlaylistItems failed")
		return nil, err
	}

	for i := range items {
		v, err := GetVideoByID(items[i].VideoID)
		if err != nil {
			continue
		}
		video := v
		items[i].Video = &video
	}
	return items, nil
}

func AddItemToPlaylist(playlistID, videoID, position int, duration *int) (model.PlaylistItem, error) {
	var it model.PlaylistItem
	const q = `
	INSERT INTO playlist_items (playlist_id, video_id, position, duration, created_at)
	VALUES ($1, $2, $3, $4, now())
	RETURNING id, playlist_id, video_id, position, duration, created_at;`
	if err := DB.Get(&it, q, playlistID, videoID, position, duration); err != nil {
		log.Error().Err(err).Int("playlist_id", playlistID).Msg("AddItemToPlaylist failed")
		return model.PlaylistItem{}, err
	}
	return it, nil
}

func RemoveItemFromPlaylist(itemID int) error {
	_, err := DB.Exec(`DELETE FROM playlist_items WHERE id = $1;`, itemID)
	if err != nil {
		log.Error().Err(err).Int("item_id", itemID).Msg("RemoveItemFromPlaylist failed")
	}
	return err
}

// ReorderPlaylistItems rewrites positions to match the given item id order.
func ReorderPlaylistItems(playlistID int, itemIDs []int) error {
	tx, err := DB.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// park positions out of range first so the unique constraint does not
	// trip mid-shuffle
	if _, err := tx.Exec(`
		UPDATE playlist_items SET position = position + 10000 WHERE playlist_id = $1;`, playlistID); err != nil {
		return err
	}
	for i, itemID := range itemIDs {
		if _, err := tx.Exec(`
			UPDATE playlist_items SET position = $1 WHERE id = $2 AND playlist_id = $3;`, i, itemID, playlistID); err != nil {
			return err
		}
	}
	return tx.Commit()
}
