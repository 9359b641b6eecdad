package diagnosis

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Srikanth-gunja/medical-diagonsis/internal/platform/ai"
	"github.com/Srikanth-gunja/medical-diagonsis/internal/platform/apperr"
)

type Service struct {
	results  Repository
	patients PatientDirectory
	gen      ai.Generator
}

func NewService(results Repository, patients PatientDirectory, gen ai.Generator) *Service {
	return &Service{results: results, patients: patients, gen: gen}
}

func validateSymptoms(symptoms []Symptom) error {
	if len(symptoms) == 0 {
		return apperr.Validation("at least one symptom is required")
	}
	for i, s := range symptoms {
		if strings.TrimSpace(s.Description) == "" {
			return apperr.Validation("symptoms[%d]: description is required", i)
		}
		if s.Severity < 1 || s.Severity > 10 {
			return apperr.Validation("symptoms[%d]: severity must be between 1 and 10", i)
		}
		if strings.TrimSpace(s.Duration) == "" {
			return apperr.Validation("symptoms[%d]: duration is required", i)
		}
	}
	return nil
}

// Diagnose runs the full diagnosis pipeline: patient lookup, prompt
// construction, a single model call, heuristic interpretation of the reply,
// and an append-only write. Every diagnosis gets its own freshly minted
// session id; sessions are never reused across requests.
//
// The patient lookup happens before the model call so an unknown patient_id
// never triggers a generation.
func (s *Service) Diagnose(ctx context.Context, req *Request) (*Result, error) {
	if req.PatientID == uuid.Nil {
		return nil, apperr.Validation("patient_id is required")
	}
	if err := validateSymptoms(req.Symptoms); err != nil {
		return nil, err
	}

	p, err := s.patients.GetPatient(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(p.Age, p.Gender, p.MedicalHistory, req.Symptoms, req.AdditionalInfo)
	reply, err := s.gen.Generate(ctx, SystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	in := Interpret(reply)
	res := &Result{
		PatientID:          req.PatientID,
		Symptoms:           req.Symptoms,
		Diagnosis:          reply,
		Recommendations:    in.Recommendations,
		SeverityAssessment: in.Severity,
		FollowUpNeeded:     in.FollowUpNeeded,
		SessionID:          uuid.New(),
	}
	if err := s.results.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ListByPatient returns a patient's diagnosis history, newest first.
func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Result, int, error) {
	return s.results.ListByPatient(ctx, patientID, limit, offset)
}
