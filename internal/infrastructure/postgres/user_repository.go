package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo persists accounts.
type UserRepo struct {
	q Querier
}

// NewUserRepository builds the adapter.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, full_name, COALESCE(first_name, ''), COALESCE(last_name, ''), email,
	COALESCE(phone, ''), password_hash, role, COALESCE(patient_code, ''),
	COALESCE(address, ''), COALESCE(gender, ''), COALESCE(date_of_birth, ''),
	COALESCE(emergency_contact, ''), COALESCE(emergency_phone, ''),
	COALESCE(medical_conditions, ''), COALESCE(medications, ''), COALESCE(allergies, ''),
	created_at, updated_at`

// Create persists a new account. The unique index on email maps to
// domain.ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, full_name, first_name, last_name, email, phone, password_hash, role, patient_code,
		                   address, gender, date_of_birth, emergency_contact, emergency_phone,
		                   medical_conditions, medications, allergies, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.FullName, nullIfEmpty(u.FirstName), nullIfEmpty(u.LastName), u.Email,
		nullIfEmpty(u.Phone), u.PasswordHash, u.Role, nullIfEmpty(u.PatientCode),
		nullIfEmpty(u.Address), nullIfEmpty(u.Gender), nullIfEmpty(u.DateOfBirth),
		nullIfEmpty(u.EmergencyContact), nullIfEmpty(u.EmergencyPhone),
		nullIfEmpty(u.MedicalConditions), nullIfEmpty(u.Medications), nullIfEmpty(u.Allergies),
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return storageErr("insert user", err)
	}
	return nil
}

// GetByID returns one account, or (nil, nil) when absent.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.scanOne(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// FindByEmail returns the account with the given email, or (nil, nil).
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.scanOne(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// CountPatients counts accounts holding a patient code.
func (r *UserRepo) CountPatients(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE patient_code IS NOT NULL`).Scan(&n)
	if err != nil {
		return 0, storageErr("count patients", err)
	}
	return n, nil
}

// UpdateProfile writes the editable demographic fields.
func (r *UserRepo) UpdateProfile(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users
		SET full_name          = $2,
		    first_name         = $3,
		    last_name          = $4,
		    phone              = $5,
		    address            = $6,
		    emergency_contact  = $7,
		    emergency_phone    = $8,
		    medical_conditions = $9,
		    medications        = $10,
		    allergies          = $11,
		    updated_at         = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.FullName, nullIfEmpty(u.FirstName), nullIfEmpty(u.LastName),
		nullIfEmpty(u.Phone), nullIfEmpty(u.Address),
		nullIfEmpty(u.EmergencyContact), nullIfEmpty(u.EmergencyPhone),
		nullIfEmpty(u.MedicalConditions), nullIfEmpty(u.Medications), nullIfEmpty(u.Allergies),
		u.UpdatedAt,
	)
	if err != nil {
		return storageErr("update user profile", err)
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.FullName, &u.FirstName, &u.LastName, &u.Email,
		&u.Phone, &u.PasswordHash, &u.Role, &u.PatientCode,
		&u.Address, &u.Gender, &u.DateOfBirth,
		&u.EmergencyContact, &u.EmergencyPhone,
		&u.MedicalConditions, &u.Medications, &u.Allergies,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
