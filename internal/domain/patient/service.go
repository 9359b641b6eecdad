package patient

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Srikanth-gunja/medical-diagonsis/internal/platform/apperr"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) CreatePatient(ctx context.Context, req *CreateRequest) (*Patient, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Validation("name is required")
	}
	if req.Age < 0 {
		return nil, apperr.Validation("age must not be negative")
	}
	if strings.TrimSpace(req.Gender) == "" {
		return nil, apperr.Validation("gender is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperr.Validation("email is required")
	}

	p := &Patient{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Email:          req.Email,
		Phone:          req.Phone,
		MedicalHistory: req.MedicalHistory,
	}
	if p.MedicalHistory == nil {
		p.MedicalHistory = []string{}
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}

// Exists reports whether a patient record exists. Callers performing
// referential checks use this instead of fetching the full record.
func (s *Service) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := s.patients.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
