package entity

import "time"

// Appointment statuses. Staff-created appointments are SCHEDULED;
// patient self-service requests start as REQUESTED.
const (
	AppointmentStatusScheduled = "SCHEDULED"
	AppointmentStatusRequested = "REQUESTED"
)

// Appointment links a patient with a doctor on a date/time. Date and Time
// are kept as entered (free text in the legacy records).
type Appointment struct {
	ID           string
	PatientID    string
	PatientEmail string
	PatientName  string
	DoctorName   string
	Date         string
	Time         string
	Reason       string
	Notes        string
	Status       string
	CreatedAt    time.Time
}
