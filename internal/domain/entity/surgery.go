package entity

import "time"

// SurgeryStatusScheduled is the initial status of a scheduled surgery.
const SurgeryStatusScheduled = "SCHEDULED"

// Surgery is a scheduled operation in a given room.
type Surgery struct {
	ID            string
	PatientName   string
	PatientID     string
	SurgeryType   string
	DoctorName    string
	ScheduledDate string
	ScheduledTime string
	RoomNumber    string
	Status        string
	Notes         string
	CreatedAt     time.Time
}
