package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/auth"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/dto"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/pkg/config"
	"github.com/SharuLucky21/Hospital-Management-System/pkg/jwt"
	"github.com/SharuLucky21/Hospital-Management-System/pkg/logger"
)

type mockUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    make(map[string]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (m *mockUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	m.byID[u.ID] = &cp
	m.byEmail[u.Email] = &cp
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return m.byID[id], nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return m.byEmail[email], nil
}

func (m *mockUserRepo) CountPatients(_ context.Context) (int, error) {
	n := 0
	for _, u := range m.byID {
		if u.PatientCode != "" {
			n++
		}
	}
	return n, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, u *entity.User) error {
	cp := *u
	m.byID[u.ID] = &cp
	m.byEmail[u.Email] = &cp
	return nil
}

var testJWT = config.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "test"}

func newUseCase(repo *mockUserRepo) *auth.UseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return auth.NewUseCase(repo, testJWT, log)
}

func TestRegister_PatientGetsSequentialCode(t *testing.T) {
	repo := newMockUserRepo()
	uc := newUseCase(repo)

	first, err := uc.Register(context.Background(), dto.RegisterRequest{
		FullName: "Asha Rao",
		Email:    "Asha@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "PID0001", first.PatientCode)
	assert.Equal(t, entity.RolePatient, first.Role, "role defaults to PATIENT")
	assert.Equal(t, "asha@example.com", first.Email, "email is normalized")

	second, err := uc.Register(context.Background(), dto.RegisterRequest{
		FullName: "Ben Cole",
		Email:    "ben@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "PID0002", second.PatientCode)
}

func TestRegister_StaffGetsNoCode(t *testing.T) {
	uc := newUseCase(newMockUserRepo())

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		FullName: "Dr Vale",
		Email:    "vale@example.com",
		Password: "secret1",
		Role:     entity.RoleDoctor,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.PatientCode)
}

func TestRegister_Rejections(t *testing.T) {
	repo := newMockUserRepo()
	uc := newUseCase(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		FullName: "A", Email: "a@example.com", Password: "secret1", ConfirmPassword: "other",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password confirmation mismatch")

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		FullName: "A", Email: "a@example.com", Password: "short",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password too short")

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		FullName: "A", Email: "a@example.com", Password: "secret1", Role: "SUPERUSER",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unknown role")

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		FullName: "A", Email: "a@example.com", Password: "secret1",
	})
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		FullName: "B", Email: "A@EXAMPLE.COM", Password: "secret1",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists, "case-insensitive duplicate")
}

func TestLogin(t *testing.T) {
	repo := newMockUserRepo()
	uc := newUseCase(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Password: "secret1",
		Role:     entity.RoleBilling,
	})
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, email, role, err := jwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, "asha@example.com", email)
	assert.Equal(t, entity.RoleBilling, role)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ghost@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "unknown email is indistinguishable from bad password")
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	repo := newMockUserRepo()
	uc := newUseCase(repo)

	created, err := uc.Register(context.Background(), dto.RegisterRequest{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "555-0101",
		Password: "secret1",
	})
	require.NoError(t, err)

	updated, err := uc.UpdateProfile(context.Background(), created.ID, dto.UpdateProfileRequest{
		Address:   "14 New Street",
		Allergies: "penicillin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", updated.FullName, "unset fields stay put")
	assert.Equal(t, "555-0101", updated.Phone)

	stored, _ := repo.GetByID(context.Background(), created.ID)
	assert.Equal(t, "14 New Street", stored.Address)
	assert.Equal(t, "penicillin", stored.Allergies)

	_, err = uc.UpdateProfile(context.Background(), "missing", dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRegister_PasswordIsHashed(t *testing.T) {
	repo := newMockUserRepo()
	uc := newUseCase(repo)

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	stored, _ := repo.GetByID(context.Background(), resp.ID)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}
