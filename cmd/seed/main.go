// seed populates a development database with demo accounts, patients,
// claims, inventory and rooms so the API is usable right after startup.
//
// Usage: go run ./cmd/seed
// Re-running is safe: rows that already exist are skipped.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/SharuLucky21/Hospital-Management-System/internal/domain"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
	"github.com/SharuLucky21/Hospital-Management-System/internal/infrastructure/postgres"
	"github.com/SharuLucky21/Hospital-Management-System/pkg/config"
)

const demoPassword = "changeme"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("load configuration", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("PostgreSQL connection", err)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	patients := postgres.NewPatientRepository(pool)
	claims := postgres.NewClaimRepository(pool)
	inventory := postgres.NewInventoryRepository(pool)
	rooms := postgres.NewRoomRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		fail("hash demo password", err)
	}

	now := time.Now().UTC()

	accounts := []*entity.User{
		{FullName: "Alice Admin", Email: "admin@medconnect.local", Role: entity.RoleAdmin},
		{FullName: "Dr. Gregory Park", Email: "gpark@medconnect.local", Role: entity.RoleDoctor},
		{FullName: "Bella Books", Email: "billing@medconnect.local", Role: entity.RoleBilling},
		{FullName: "Pat Morales", Email: "pat@medconnect.local", Role: entity.RolePatient, PatientCode: "PID0001"},
	}
	for _, u := range accounts {
		u.ID = uuid.Must(uuid.NewV7()).String()
		u.PasswordHash = string(hash)
		u.CreatedAt = now
		u.UpdatedAt = now
		if err := users.Create(ctx, u); err != nil {
			if errors.Is(err, domain.ErrEmailAlreadyExists) {
				fmt.Printf("user %s already exists, skipping\n", u.Email)
				continue
			}
			fail("insert user "+u.Email, err)
		}
		fmt.Printf("user %s (%s) created\n", u.Email, u.Role)
	}

	deskPatient := &entity.Patient{
		ID:          uuid.Must(uuid.NewV7()).String(),
		FirstName:   "Diego",
		LastName:    "Fuentes",
		Gender:      "M",
		Age:         54,
		Phone:       "(555) 010-2233",
		Email:       "diego.fuentes@example.com",
		Address:     "44 Elm Street, Medical City",
		InsuranceID: "INS-77812",
		CreatedAt:   now,
	}
	if err := patients.Create(ctx, deskPatient); err != nil {
		fail("insert patient", err)
	}
	fmt.Printf("patient %s %s created (%s)\n", deskPatient.FirstName, deskPatient.LastName, deskPatient.ID)

	demoClaims := []*entity.Claim{
		{
			PatientID:            deskPatient.ID,
			PatientDisplayID:     deskPatient.ID,
			Insurer:              "Acme Health",
			PolicyNumber:         "POL-10044",
			ClaimAmount:          decimal.NewFromInt(250),
			DiagnosisCode:        "J18.9",
			TreatmentDescription: "Pneumonia treatment",
			Status:               entity.ClaimStatusApproved,
			SubmittedAt:          now.Add(-48 * time.Hour),
		},
		{
			PatientID:        deskPatient.ID,
			PatientDisplayID: deskPatient.ID,
			Insurer:          "Acme Health",
			PolicyNumber:     "POL-10044",
			ClaimAmount:      decimal.NewFromInt(90),
			Status:           entity.ClaimStatusPending,
			SubmittedAt:      now.Add(-2 * time.Hour),
		},
	}
	for _, c := range demoClaims {
		c.ID = uuid.Must(uuid.NewV7()).String()
		if err := claims.Create(ctx, c); err != nil {
			fail("insert claim", err)
		}
		fmt.Printf("claim %s (%s, %s) created\n", c.ID, c.Insurer, c.Status)
	}

	items := []*entity.InventoryItem{
		{SKU: "MED-AMOX-500", Name: "Amoxicillin 500mg", Category: "Antibiotics", StockQty: 200,
			UnitCost: decimal.NewFromFloat(0.40), UnitPrice: decimal.NewFromFloat(1.20),
			LowStockThreshold: 50, Supplier: "PharmaDirect", IsDrug: true},
		{SKU: "MED-IBU-200", Name: "Ibuprofen 200mg", Category: "Analgesics", StockQty: 500,
			UnitCost: decimal.NewFromFloat(0.10), UnitPrice: decimal.NewFromFloat(0.50),
			LowStockThreshold: 100, Supplier: "PharmaDirect", IsDrug: true},
		{SKU: "SUP-GLOVES-M", Name: "Nitrile Gloves (M)", Category: "Supplies", StockQty: 40,
			UnitCost: decimal.NewFromFloat(4.00), UnitPrice: decimal.NewFromFloat(7.50),
			LowStockThreshold: 50, Supplier: "MediSupply Co"},
	}
	for _, it := range items {
		it.ID = uuid.Must(uuid.NewV7()).String()
		it.CreatedAt = now
		if err := inventory.Create(ctx, it); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				fmt.Printf("item %s already exists, skipping\n", it.SKU)
				continue
			}
			fail("insert inventory item "+it.SKU, err)
		}
		fmt.Printf("item %s (%s) created\n", it.SKU, it.Name)
	}

	demoRooms := []*entity.Room{
		{RoomNumber: "101", RoomType: "GENERAL", Capacity: 2, Status: entity.RoomStatusAvailable},
		{RoomNumber: "102", RoomType: "GENERAL", Capacity: 2, Status: entity.RoomStatusOccupied},
		{RoomNumber: "201", RoomType: "ICU", Capacity: 1, Status: entity.RoomStatusAvailable,
			Equipment: "Ventilator, cardiac monitor"},
		{RoomNumber: "301", RoomType: "OPERATING", Capacity: 1, Status: entity.RoomStatusMaintenance,
			Notes: "Scheduled deep clean"},
	}
	for _, room := range demoRooms {
		room.ID = uuid.Must(uuid.NewV7()).String()
		room.CreatedAt = now
		room.UpdatedAt = now
		if err := rooms.Create(ctx, room); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				fmt.Printf("room %s already exists, skipping\n", room.RoomNumber)
				continue
			}
			fail("insert room "+room.RoomNumber, err)
		}
		fmt.Printf("room %s (%s) created\n", room.RoomNumber, room.RoomType)
	}

	fmt.Printf("seed complete; demo accounts use password %q\n", demoPassword)
}

func fail(step string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", step, err)
	os.Exit(1)
}
