package dto

import "time"

// RegisterRequest creates an account. Role defaults to PATIENT.
type RegisterRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Role            string `json:"role"`
}

// LoginRequest authenticates by email and password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Role        string    `json:"role"`
	PatientCode string    `json:"patient_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginResponse carries the signed token plus the user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateProfileRequest lets a patient edit their own details.
type UpdateProfileRequest struct {
	FullName          string `json:"full_name"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	EmergencyContact  string `json:"emergency_contact"`
	EmergencyPhone    string `json:"emergency_phone"`
	MedicalConditions string `json:"medical_conditions"`
	Medications       string `json:"medications"`
	Allergies         string `json:"allergies"`
}
