// exposes a Store interface that is passed to API calls w/ param requirements
package db

import (
	"time"

	"github.com/Luxview-Media/luxview/internal/model"
	"github.com/Luxview-Media/luxview/internal/schedule"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// device functions
	CreateDevice(name, serial, apiKeyHash string, groupID *int) (model.Device, error)
	DeviceByID(id int) (model.Device, error)
	DeviceBySerial(serial string) (model.Device, error)
	ListDevices() ([]model.Device, error)
	ListDevicesInGroup(groupID int) ([]model.Device, error)
	UpdateDevice(id int, name *string, groupID *int, isActive *bool) error
	TouchDevice(id int, ipAddress, currentVideo *string) error
	DeleteDevice(id int) error

	// device group functions
	CreateDeviceGroup(name string, description *string, color string) (model.DeviceGroup, error)
	DeviceGroupByID(id int) (model.DeviceGroup, error)
	ListDeviceGroups() ([]model.DeviceGroup, error)
	UpdateDeviceGroup(id int, name, description, color *string) (model.DeviceGroup, error)
	DeleteDeviceGroup(id int) error

	// video functions
	CreateVideo(title, filename, url string, size int64, duration *int, checksum *string, createdBy int) (model.Video, error)
	VideoByID(id int) (model.Video, error)
	ListVideos() ([]model.Video, error)
	UpdateVideo(id int, title *string, duration *int) error
	DeleteVideo(id int) error

	// playlist functions
	CreatePlaylist(name string, description *string, createdBy int) (model.Playlist, error)
	PlaylistByID(id int) (model.Playlist, error)
	ListPlaylists() ([]model.Playlist, error)
	UpdatePlaylist(id int, name, description *string) error
	DeletePlaylist(id int) error
	PlaylistItems(playlistID int) ([]model.PlaylistItem, error)
	AddItemToPlaylist(playlistID, videoID, position int, duration *int) (model.PlaylistItem, error)
	RemoveItemFromPlaylist(itemID int) error
	ReorderPlaylistItems(playlistID int, itemIDs []int) error

	// assignment functions
	CreateAssignment(a model.Assignment) (model.Assignment, error)
	AssignmentByID(id int) (model.Assignment, error)
	AssignmentsForDevice(deviceID int) ([]model.Assignment, error)
	DeleteAssignment(id int) error

	// schedule functions
	CreateSchedule(s model.Schedule) (model.Schedule, error)
	ScheduleByID(id int) (model.Schedule, error)
	ListSchedules() ([]model.Schedule, error)
	UpdateSchedule(s model.Schedule) (model.Schedule, error)
	DeleteSchedule(id int) error
	SchedulesActiveOn(date time.Time) ([]model.Schedule, error)
	SchedulesInRange(from, to time.Time) ([]model.Schedule, error)

	// exception functions
	CreateScheduleException(e model.ScheduleException) (model.ScheduleException, error)
	ListScheduleExceptions(scheduleID int) ([]model.ScheduleException, error)
	ExceptionFor(scheduleID int, date time.Time) (*model.ScheduleException, error)
	DeleteScheduleException(id int) error

	// notification functions
	CreateNotification(n model.Notification) (model.Notification, error)
	ListNotifications(unreadOnly bool) ([]model.Notification, error)
	MarkNotificationRead(id int) error
	RecentConflictNotificationExists(title string) (bool, error)
}

type pgStore struct{}

// compile-time check that pgStore implements Store
// required so linter doesn't complain
var _ Store = (*pgStore)(nil)

// pgStore also backs the scheduling engine directly.
var _ schedule.Source = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{}
}

func (p *pgStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	return CreateUser(email, hashedPassword, name)
}
func (p *pgStore) GetUserByEmail(email string) (*model.User, error) { return GetUserByEmail(email) }
func (p *pgStore) GetUserByID(id int) (*model.User, error)          { return GetUserByID(id) }
func (p *pgStore) UpdateUserProfile(id int, email string, name *string) error {
	return UpdateUserProfile(id, email, name)
}

func (p *pgStore) CreateDevice(name, serial, apiKeyHash string, groupID *int) (model.Device, error) {
	return CreateDevice(name, serial, apiKeyHash, groupID)
}
func (p *pgStore) DeviceByID(id int) (model.Device, error)          { return GetDeviceByID(id) }
func (p *pgStore) DeviceBySerial(serial string) (model.Device, error) {
	return GetDeviceBySerial(serial)
}
func (p *pgStore) ListDevices() ([]model.Device, error) { return ListDevices() }
func (p *pgStore) ListDevicesInGroup(groupID int) ([]model.Device, error) {
	return ListDevicesInGroup(groupID)
}
func (p *pgStore) UpdateDevice(id int, name *string, groupID *int, isActive *bool) error {
	return UpdateDevice(id, name, groupID, isActive)
}
func (p *pgStore) TouchDevice(id int, ipAddress, currentVideo *string) error {
	return TouchDevice(id, ipAddress, currentVideo)
}
func (p *pgStore) DeleteDevice(id int) error { return DeleteDevice(id) }

func (p *pgStore) CreateDeviceGroup(name string, description *string, color string) (model.DeviceGroup, error) {
	return CreateDeviceGroup(name, description, color)
}
func (p *pgStore) DeviceGroupByID(id int) (model.DeviceGroup, error) { return GetDeviceGroupByID(id) }
func (p *pgStore) ListDeviceGroups() ([]model.DeviceGroup, error)    { return ListDeviceGroups() }
func (p *pgStore) UpdateDeviceGroup(id int, name, description, color *string) (model.DeviceGroup, error) {
	return UpdateDeviceGroup(id, name, description, color)
}
func (p *pgStore) DeleteDeviceGroup(id int) error { return DeleteDeviceGroup(id) }

func (p *pgStore) CreateVideo(title, filename, url string, size int64, duration *int, checksum *string, createdBy int) (model.Video, error) {
	return CreateVideo(title, filename, url, size, duration, checksum, createdBy)
}
func (p *pgStore) VideoByID(id int) (model.Video, error) { return GetVideoByID(id) }
func (p *pgStore) ListVideos() ([]model.Video, error)    { return ListVideos() }
func (p *pgStore) UpdateVideo(id int, title *string, duration *int) error {
	return UpdateVideo(id, title, duration)
}
func (p *pgStore) DeleteVideo(id int) error { return DeleteVideo(id) }

func (p *pgStore) CreatePlaylist(name string, description *string, createdBy int) (model.Playlist, error) {
	return CreatePlaylist(name, description, createdBy)
}
func (p *pgStore) PlaylistByID(id int) (model.Playlist, error) { return GetPlaylistByID(id) }
func (p *pgStore) ListPlaylists() ([]model.Playlist, error)    { return ListPlaylists() }
func (p *pgStore) UpdatePlaylist(id int, name, description *string) error {
	return UpdatePlaylist(id, name, description)
}
func (p *pgStore) DeletePlaylist(id int) error { return DeletePlaylist(id) }
func (p *pgStore) PlaylistItems(playlistID int) ([]model.PlaylistItem, error) {
	return ListPlaylistItems(playlistID)
}
func (p *pgStore) AddItemToPlaylist(playlistID, videoID, position int, duration *int) (model.PlaylistItem, error) {
	return AddItemToPlaylist(playlistID, videoID, position, duration)
}
func (p *pgStore) RemoveItemFromPlaylist(itemID int) error { return RemoveItemFromPlaylist(itemID) }
func (p *pgStore) ReorderPlaylistItems(playlistID int, itemIDs []int) error {
	return ReorderPlaylistItems(playlistID, itemIDs)
}

func (p *pgStore) CreateAssignment(a model.Assignment) (model.Assignment, error) {
	return CreateAssignment(a)
}
func (p *pgStore) AssignmentByID(id int) (model.Assignment, error) { return GetAssignmentByID(id) }
func (p *pgStore) AssignmentsForDevice(deviceID int) ([]model.Assignment, error) {
	return AssignmentsForDevice(deviceID)
}
func (p *pgStore) DeleteAssignment(id int) error { return DeleteAssignment(id) }

func (p *pgStore) CreateSchedule(s model.Schedule) (model.Schedule, error) { return CreateSchedule(s) }
func (p *pgStore) ScheduleByID(id int) (model.Schedule, error)             { return GetSchedule(id) }
func (p *pgStore) ListSchedules() ([]model.Schedule, error)                { return ListSchedules() }
func (p *pgStore) UpdateSchedule(s model.Schedule) (model.Schedule, error) { return UpdateSchedule(s) }
func (p *pgStore) DeleteSchedule(id int) error                             { return DeleteSchedule(id) }
func (p *pgStore) SchedulesActiveOn(date time.Time) ([]model.Schedule, error) {
	return SchedulesActiveOn(date)
}
func (p *pgStore) SchedulesInRange(from, to time.Time) ([]model.Schedule, error) {
	return SchedulesInRange(from, to)
}

func (p *pgStore) CreateScheduleException(e model.ScheduleException) (model.ScheduleException, error) {
	return CreateScheduleException(e)
}
func (p *pgStore) ListScheduleExceptions(scheduleID int) ([]model.ScheduleException, error) {
	return ListScheduleExceptions(scheduleID)
}
func (p *pgStore) ExceptionFor(scheduleID int, date time.Time) (*model.ScheduleException, error) {
	return ExceptionFor(scheduleID, date)
}
func (p *pgStore) DeleteScheduleException(id int) error { return DeleteScheduleException(id) }

func (p *pgStore) CreateNotification(n model.Notification) (model.Notification, error) {
	return CreateNotification(n)
}
func (p *pgStore) ListNotifications(unreadOnly bool) ([]model.Notification, error) {
	return ListNotifications(unreadOnly)
}
func (p *pgStore) MarkNotificationRead(id int) error { return MarkNotificationRead(id) }
func (p *pgStore) RecentConflictNotificationExists(title string) (bool, error) {
	return RecentConflictNotificationExists(title)
}
