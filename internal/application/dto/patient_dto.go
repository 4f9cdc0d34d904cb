package dto

import "time"

// CreatePatientRequest adds a legacy patient record at the desk.
type CreatePatientRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	Age         int    `json:"age"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	InsuranceID string `json:"insurance_id"`
}

// PatientResponse is the unified patient view from either source.
type PatientResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DisplayID   string    `json:"display_id"`
	Gender      string    `json:"gender,omitempty"`
	Age         int       `json:"age,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	InsuranceID string    `json:"insurance_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
