package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

var _ repository.RoomRepository = (*RoomRepo)(nil)

// RoomRepo persists hospital rooms.
type RoomRepo struct {
	q Querier
}

// NewRoomRepository builds the adapter.
func NewRoomRepository(q Querier) *RoomRepo {
	return &RoomRepo{q: q}
}

// Create persists a room.
func (r *RoomRepo) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, room_number, room_type, capacity, status, equipment, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		room.ID, room.RoomNumber, room.RoomType, room.Capacity, room.Status,
		nullIfEmpty(room.Equipment), nullIfEmpty(room.Notes), room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: room number %s", domain.ErrDuplicate, room.RoomNumber)
		}
		return storageErr("insert room", err)
	}
	return nil
}

// List returns all rooms ordered by number.
func (r *RoomRepo) List(ctx context.Context) ([]*entity.Room, error) {
	query := `
		SELECT id, room_number, room_type, capacity, status, COALESCE(equipment, ''), COALESCE(notes, ''), created_at, updated_at
		FROM rooms ORDER BY room_number`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storageErr("list rooms", err)
	}
	defer rows.Close()

	var out []*entity.Room
	for rows.Next() {
		var room entity.Room
		if err := rows.Scan(
			&room.ID, &room.RoomNumber, &room.RoomType, &room.Capacity, &room.Status,
			&room.Equipment, &room.Notes, &room.CreatedAt, &room.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		out = append(out, &room)
	}
	return out, rows.Err()
}

// UpdateStatus sets status and notes.
func (r *RoomRepo) UpdateStatus(ctx context.Context, id, status, notes string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE rooms SET status = $2, notes = $3, updated_at = $4 WHERE id = $1`,
		id, status, nullIfEmpty(notes), time.Now().UTC(),
	)
	if err != nil {
		return storageErr("update room", err)
	}
	return nil
}
