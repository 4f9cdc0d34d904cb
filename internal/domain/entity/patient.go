package entity

import "time"

// Patient is a flat patient record from the legacy patients table. Patients
// who self-registered live in users with RolePatient instead; the patient
// directory merges both sources behind one lookup.
type Patient struct {
	ID          string
	FirstName   string
	LastName    string
	FullName    string // populated for user-backed records
	PatientCode string // human-readable id like PID0001, user-backed records only
	Gender      string
	Age         int
	Phone       string
	Email       string
	Address     string
	InsuranceID string
	CreatedAt   time.Time
}

// DisplayName prefers "{first} {last}", falls back to the full name, else empty.
func (p *Patient) DisplayName() string {
	if p.FirstName != "" || p.LastName != "" {
		name := p.FirstName
		if p.LastName != "" {
			if name != "" {
				name += " "
			}
			name += p.LastName
		}
		return name
	}
	return p.FullName
}

// DisplayID prefers the stored patient code, else the raw identifier.
func (p *Patient) DisplayID() string {
	if p.PatientCode != "" {
		return p.PatientCode
	}
	return p.ID
}
