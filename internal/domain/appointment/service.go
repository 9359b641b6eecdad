package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Srikanth-gunja/medical-diagonsis/internal/platform/apperr"
)

const DefaultStatus = "scheduled"

type Service struct {
	appointments Repository
	patients     PatientDirectory
	doctors      DoctorDirectory
}

func NewService(appointments Repository, patients PatientDirectory, doctors DoctorDirectory) *Service {
	return &Service{appointments: appointments, patients: patients, doctors: doctors}
}

// checkReferences verifies that both foreign references exist. The check is
// done at write time only; nothing prevents the referenced records from
// disappearing afterwards.
func (s *Service) checkReferences(ctx context.Context, patientID, doctorID uuid.UUID) error {
	ok, err := s.patients.Exists(ctx, patientID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPatientNotFound
	}
	ok, err = s.doctors.Exists(ctx, doctorID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDoctorNotFound
	}
	return nil
}

func (s *Service) validate(req *WriteRequest) error {
	if req.PatientID == uuid.Nil {
		return apperr.Validation("patient_id is required")
	}
	if req.DoctorID == uuid.Nil {
		return apperr.Validation("doctor_id is required")
	}
	if req.AppointmentTime.IsZero() {
		return apperr.Validation("appointment_time is required")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return apperr.Validation("reason is required")
	}
	return nil
}

func (s *Service) CreateAppointment(ctx context.Context, req *WriteRequest) (*Appointment, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req.PatientID, req.DoctorID); err != nil {
		return nil, err
	}

	a := &Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
		Status:          req.Status,
	}
	if a.Status == "" {
		a.Status = DefaultStatus
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) UpdateAppointment(ctx context.Context, id uuid.UUID, req *WriteRequest) (*Appointment, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req.PatientID, req.DoctorID); err != nil {
		return nil, err
	}

	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.PatientID = req.PatientID
	a.DoctorID = req.DoctorID
	a.AppointmentTime = req.AppointmentTime
	a.Reason = req.Reason
	a.Status = req.Status
	if a.Status == "" {
		a.Status = DefaultStatus
	}
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.appointments.Delete(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.List(ctx, limit, offset)
}
