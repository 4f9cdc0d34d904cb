package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/repository"
	"github.com/SharuLucky21/Hospital-Management-System/pkg/config"
	"github.com/SharuLucky21/Hospital-Management-System/pkg/jwt"
	"github.com/SharuLucky21/Hospital-Management-System/pkg/logger"
)

// UseCase handles registration, login and profile management.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
	log      *logger.Logger
}

// NewUseCase builds the use case.
func NewUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Register creates an account. Patient accounts get the next sequential
// PID code so staff can reference them without exposing raw ids.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ConfirmPassword != "" && in.Password != in.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", domain.ErrInvalidInput)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: password too short", domain.ErrInvalidInput)
	}

	role := in.Role
	if role == "" {
		role = entity.RolePatient
	}
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, in.Role)
	}

	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	patientCode := ""
	if role == entity.RolePatient {
		n, err := uc.userRepo.CountPatients(ctx)
		if err != nil {
			return nil, fmt.Errorf("next patient code: %w", err)
		}
		patientCode = fmt.Sprintf("PID%04d", n+1)
	}

	first, last := splitName(in.FullName)
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.Must(uuid.NewV7()).String(),
		FullName:     in.FullName,
		FirstName:    first,
		LastName:     last,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         role,
		PatientCode:  patientCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("persist user: %w", err)
	}

	uc.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	return toUserResponse(user), nil
}

// Login verifies the credentials and issues a signed token.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// GetProfile returns the account behind the token.
func (uc *UseCase) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// UpdateProfile lets a user edit their own demographic fields. Empty
// fields in the request leave the stored value untouched.
func (uc *UseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.FullName != "" {
		user.FullName = in.FullName
		user.FirstName, user.LastName = splitName(in.FullName)
	}
	if in.Phone != "" {
		user.Phone = in.Phone
	}
	if in.Address != "" {
		user.Address = in.Address
	}
	if in.EmergencyContact != "" {
		user.EmergencyContact = in.EmergencyContact
	}
	if in.EmergencyPhone != "" {
		user.EmergencyPhone = in.EmergencyPhone
	}
	if in.MedicalConditions != "" {
		user.MedicalConditions = in.MedicalConditions
	}
	if in.Medications != "" {
		user.Medications = in.Medications
	}
	if in.Allergies != "" {
		user.Allergies = in.Allergies
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return toUserResponse(user), nil
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	first = parts[0]
	if len(parts) > 1 {
		last = strings.Join(parts[1:], " ")
	}
	return first, last
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Phone:       u.Phone,
		Role:        u.Role,
		PatientCode: u.PatientCode,
		CreatedAt:   u.CreatedAt,
	}
}
