package facility

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

// RoomUseCase manages hospital rooms.
type RoomUseCase struct {
	roomRepo repository.RoomRepository
}

// NewRoomUseCase builds the use case.
func NewRoomUseCase(roomRepo repository.RoomRepository) *RoomUseCase {
	return &RoomUseCase{roomRepo: roomRepo}
}

// Add registers a room. Status defaults to AVAILABLE.
func (uc *RoomUseCase) Add(ctx context.Context, in dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	if in.RoomNumber == "" || in.RoomType == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.RoomStatusAvailable
	}
	if !validRoomStatus(status) {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, in.Status)
	}

	now := time.Now().UTC()
	room := &entity.Room{
		ID:         uuid.Must(uuid.NewV7()).String(),
		RoomNumber: in.RoomNumber,
		RoomType:   in.RoomType,
		Capacity:   in.Capacity,
		Status:     status,
		Equipment:  in.Equipment,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.roomRepo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("persist room: %w", err)
	}
	return toRoomResponse(room), nil
}

// List returns all rooms.
func (uc *RoomUseCase) List(ctx context.Context) ([]*dto.RoomResponse, error) {
	list, err := uc.roomRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RoomResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRoomResponse(r))
	}
	return out, nil
}

// UpdateStatus changes a room's status and notes.
func (uc *RoomUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateRoomRequest) error {
	if !validRoomStatus(in.Status) {
		return fmt.Errorf("%w: status %q", domain.ErrInvalidInput, in.Status)
	}
	return uc.roomRepo.UpdateStatus(ctx, id, in.Status, in.Notes)
}

func validRoomStatus(s string) bool {
	switch s {
	case entity.RoomStatusAvailable, entity.RoomStatusOccupied, entity.RoomStatusMaintenance:
		return true
	}
	return false
}

func toRoomResponse(r *entity.Room) *dto.RoomResponse {
	return &dto.RoomResponse{
		ID:         r.ID,
		RoomNumber: r.RoomNumber,
		RoomType:   r.RoomType,
		Capacity:   r.Capacity,
		Status:     r.Status,
		Equipment:  r.Equipment,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
	}
}
