package entity

import "time"

// Application roles.
const (
	RoleAdmin   = "ADMIN"
	RoleDoctor  = "DOCTOR"
	RoleBilling = "BILLING"
	RolePatient = "PATIENT"
)

// Roles lists every valid role.
var Roles = []string{RoleAdmin, RoleDoctor, RoleBilling, RolePatient}

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// User is an account of any role. Patient accounts carry demographic
// fields and a PatientCode so they can double as patient records.
type User struct {
	ID                string
	FullName          string
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	PasswordHash      string
	Role              string
	PatientCode       string // PID%04d, assigned when registering as PATIENT
	Address           string
	Gender            string
	DateOfBirth       string
	EmergencyContact  string
	EmergencyPhone    string
	MedicalConditions string
	Medications       string
	Allergies         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
