package entity

import "time"

// Complaint statuses and priorities.
const (
	ComplaintStatusPending  = "PENDING"
	ComplaintStatusResolved = "RESOLVED"

	ComplaintPriorityLow    = "LOW"
	ComplaintPriorityMedium = "MEDIUM"
	ComplaintPriorityHigh   = "HIGH"
)

// Complaint is a patient grievance handled by administration.
type Complaint struct {
	ID           string
	PatientName  string
	PatientEmail string
	Subject      string
	Description  string
	Priority     string
	Status       string
	Response     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
