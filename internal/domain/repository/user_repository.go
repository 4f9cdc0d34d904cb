package repository

import (
	"context"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

// UserRepository is the persistence port for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// CountPatients counts users holding a patient code; used to assign the
	// next sequential PID.
	CountPatients(ctx context.Context) (int, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
}
