package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockRepo struct {
	appointments map[uuid.UUID]*Appointment
}

func newMockRepo() *mockRepo {
	return &mockRepo{appointments: make(map[uuid.UUID]*Appointment)}
}

func (m *mockRepo) Create(_ context.Context, a *Appointment) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	m.appointments[a.ID] = a
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

func (m *mockRepo) Update(_ context.Context, a *Appointment) error {
	if _, ok := m.appointments[a.ID]; !ok {
		return ErrNotFound
	}
	m.appointments[a.ID] = a
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.appointments[id]; !ok {
		return ErrNotFound
	}
	delete(m.appointments, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Appointment, int, error) {
	var result []*Appointment
	for _, a := range m.appointments {
		result = append(result, a)
	}
	return result, len(result), nil
}

// mockDirectory knows a fixed set of ids.
type mockDirectory struct {
	known map[uuid.UUID]bool
}

func newMockDirectory(ids ...uuid.UUID) *mockDirectory {
	d := &mockDirectory{known: make(map[uuid.UUID]bool)}
	for _, id := range ids {
		d.known[id] = true
	}
	return d
}

func (m *mockDirectory) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return m.known[id], nil
}

// -- Tests --

func newTestService(patientID, doctorID uuid.UUID) (*Service, *mockRepo) {
	repo := newMockRepo()
	svc := NewService(repo, newMockDirectory(patientID), newMockDirectory(doctorID))
	return svc, repo
}

func validWriteRequest(patientID, doctorID uuid.UUID) *WriteRequest {
	return &WriteRequest{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentTime: time.Now().Add(24 * time.Hour),
		Reason:          "Annual checkup",
	}
}

func TestCreateAppointment(t *testing.T) {
	patientID, doctorID := uuid.New(), uuid.New()
	svc, _ := newTestService(patientID, doctorID)

	a, err := svc.CreateAppointment(context.Background(), validWriteRequest(patientID, doctorID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != DefaultStatus {
		t.Errorf("expected default status %q, got %q", DefaultStatus, a.Status)
	}
}

func TestCreateAppointment_UnknownPatient(t *testing.T) {
	patientID, doctorID := uuid.New(), uuid.New()
	svc, repo := newTestService(patientID, doctorID)

	req := validWriteRequest(uuid.New(), doctorID)
	_, err := svc.CreateAppointment(context.Background(), req)
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
	if len(repo.appointments) != 0 {
		t.Error("expected no appointment written for unknown patient")
	}
}

func TestCreateAppointment_UnknownDoctor(t *testing.T) {
	patientID, doctorID := uuid.New(), uuid.New()
	svc, repo := newTestService(patientID, doctorID)

	req := validWriteRequest(patientID, uuid.New())
	_, err := svc.CreateAppointment(context.Background(), req)
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound, got %v", err)
	}
	if len(repo.appointments) != 0 {
		t.Error("expected no appointment written for unknown doctor")
	}
}

func TestCreateAppointment_ReasonRequired(t *testing.T) {
	patientID, doctorID := uuid.New(), uuid.New()
	svc, _ := newTestService(patientID, doctorID)

	req := validWriteRequest(patientID, doctorID)
	req.Reason = ""
	if _, err := svc.CreateAppointment(context.Background(), req); err == nil {
		t.Error("expected error for missing reason")
	}
}

func TestCreateAppointment_TimeRequired(t *testing.T) {
	patientID, doctorID := uuid.New(), uuid.New()
	svc, _ := newTestService(patientID, doctorID)

	req := validWriteRequest(patientID, doctorID)
	req.AppointmentTime = time.Time{}
	if _, err := svc.CreateAppointment(context.Background(), req); err == nil {
		t.Error("expected error for missing appointment_time")
	}
}

func TestUpdateAppointment(t *testing.T) {
	patientID, doctorID := uuid.New(), uuid.New()
	svc, _ := newTestService(patientID, doctorID)

	a, _ := svc.CreateAppointment(context.Background(), validWriteRequest(patientID, doctorID))

	req := validWriteRequest(patientID, doctorID)
	req.Status = "completed"
	updated, err := svc.UpdateAppointment(context.Background(), a.ID, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != "completed" {
		t.Errorf("expected status 'completed', got %q", updated.Status)
	}
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	patientID, doctorID := uuid.New(), uuid.New()
	svc, _ := newTestService(patientID, doctorID)

	_, err := svc.UpdateAppointment(context.Background(), uuid.New(), validWriteRequest(patientID, doctorID))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAppointment(t *testing.T) {
	patientID, doctorID := uuid.New(), uuid.New()
	svc, _ := newTestService(patientID, doctorID)

	a, _ := svc.CreateAppointment(context.Background(), validWriteRequest(patientID, doctorID))
	if err := svc.DeleteAppointment(context.Background(), a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetAppointment(context.Background(), a.ID); !errors.Is(err, ErrNotFound) {
		t.Error("expected appointment to be gone after delete")
	}
}
