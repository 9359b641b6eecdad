package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment maps to the appointment table. Both foreign references are
// checked at create/update time only; there is no database-level constraint.
type Appointment struct {
	ID              uuid.UUID `db:"id" json:"id"`
	PatientID       uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID        uuid.UUID `db:"doctor_id" json:"doctor_id"`
	AppointmentTime time.Time `db:"appointment_time" json:"appointment_time"`
	Reason          string    `db:"reason" json:"reason"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// WriteRequest is the payload accepted by the create and update endpoints.
type WriteRequest struct {
	PatientID       uuid.UUID `json:"patient_id"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	AppointmentTime time.Time `json:"appointment_time"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
}
