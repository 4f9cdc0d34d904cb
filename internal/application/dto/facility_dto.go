package dto

import "time"

// CreateAppointmentRequest books an appointment (staff side).
type CreateAppointmentRequest struct {
	PatientID  string `json:"patient_id"`
	DoctorName string `json:"doctor_name"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Notes      string `json:"notes"`
}

// RequestAppointmentRequest is a patient's self-service request.
type RequestAppointmentRequest struct {
	DoctorName    string `json:"doctor_name"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Reason        string `json:"reason"`
}

// AppointmentResponse mirrors a stored appointment.
type AppointmentResponse struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patient_id,omitempty"`
	PatientEmail string    `json:"patient_email"`
	PatientName  string    `json:"patient_name"`
	DoctorName   string    `json:"doctor_name"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Reason       string    `json:"reason,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateComplaintRequest files a complaint.
type CreateComplaintRequest struct {
	PatientName  string `json:"patient_name"`
	PatientEmail string `json:"patient_email"`
	Subject      string `json:"subject"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
}

// UpdateComplaintRequest resolves or annotates a complaint.
type UpdateComplaintRequest struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}

// ComplaintResponse mirrors a stored complaint.
type ComplaintResponse struct {
	ID           string    `json:"id"`
	PatientName  string    `json:"patient_name"`
	PatientEmail string    `json:"patient_email"`
	Subject      string    `json:"subject"`
	Description  string    `json:"description"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	Response     string    `json:"response,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ScheduleSurgeryRequest books an operation.
type ScheduleSurgeryRequest struct {
	PatientName   string `json:"patient_name"`
	PatientID     string `json:"patient_id"`
	SurgeryType   string `json:"surgery_type"`
	DoctorName    string `json:"doctor_name"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	RoomNumber    string `json:"room_number"`
	Notes         string `json:"notes"`
}

// SurgeryResponse mirrors a scheduled surgery.
type SurgeryResponse struct {
	ID            string    `json:"id"`
	PatientName   string    `json:"patient_name"`
	PatientID     string    `json:"patient_id,omitempty"`
	SurgeryType   string    `json:"surgery_type"`
	DoctorName    string    `json:"doctor_name"`
	ScheduledDate string    `json:"scheduled_date"`
	ScheduledTime string    `json:"scheduled_time"`
	RoomNumber    string    `json:"room_number,omitempty"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateRoomRequest registers a hospital room.
type CreateRoomRequest struct {
	RoomNumber string `json:"room_number"`
	RoomType   string `json:"room_type"`
	Capacity   int    `json:"capacity"`
	Status     string `json:"status"`
	Equipment  string `json:"equipment"`
	Notes      string `json:"notes"`
}

// UpdateRoomRequest changes a room's status and notes.
type UpdateRoomRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// RoomResponse mirrors a stored room.
type RoomResponse struct {
	ID         string    `json:"id"`
	RoomNumber string    `json:"room_number"`
	RoomType   string    `json:"room_type"`
	Capacity   int       `json:"capacity"`
	Status     string    `json:"status"`
	Equipment  string    `json:"equipment,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
