package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when an appointment id does not exist.
	ErrNotFound = errors.New("appointment not found")
	// ErrPatientNotFound is returned when the referenced patient is missing.
	ErrPatientNotFound = errors.New("referenced patient not found")
	// ErrDoctorNotFound is returned when the referenced doctor is missing.
	ErrDoctorNotFound = errors.New("referenced doctor not found")
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Appointment, int, error)
}

// PatientDirectory is the slice of the patient service the appointment
// domain needs for referential checks.
type PatientDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// DoctorDirectory is the slice of the doctor service the appointment domain
// needs for referential checks.
type DoctorDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
