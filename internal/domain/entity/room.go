package entity

import "time"

// Room statuses.
const (
	RoomStatusAvailable   = "AVAILABLE"
	RoomStatusOccupied    = "OCCUPIED"
	RoomStatusMaintenance = "MAINTENANCE"
)

// Room is a hospital room managed by administration.
type Room struct {
	ID         string
	RoomNumber string
	RoomType   string
	Capacity   int
	Status     string
	Equipment  string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
