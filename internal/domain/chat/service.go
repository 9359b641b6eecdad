package chat

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Srikanth-gunja/medical-diagonsis/internal/platform/ai"
	"github.com/Srikanth-gunja/medical-diagonsis/internal/platform/apperr"
)

type Service struct {
	messages Repository
	patients PatientDirectory
	gen      ai.Generator
}

func NewService(messages Repository, patients PatientDirectory, gen ai.Generator) *Service {
	return &Service{messages: messages, patients: patients, gen: gen}
}

// Chat runs one conversational turn: resolve the session, gather up to the
// last ten messages for context, call the model, then persist the patient's
// message followed by the AI reply. When no session id is supplied a new
// session is minted, which also makes the context window empty.
func (s *Service) Chat(ctx context.Context, req *Request) (*Response, error) {
	if req.PatientID == uuid.Nil {
		return nil, apperr.Validation("patient_id is required")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperr.Validation("message is required")
	}

	p, err := s.patients.GetPatient(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New()
	if req.SessionID != nil && *req.SessionID != uuid.Nil {
		sessionID = *req.SessionID
	}

	recent, err := s.messages.ListRecent(ctx, sessionID, req.PatientID, ContextWindow)
	if err != nil {
		return nil, err
	}
	// ListRecent is newest first; the prompt wants chronological order.
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}

	prompt := BuildPrompt(p.Name, p.Age, p.Gender, p.MedicalHistory, recent, req.Message)
	reply, err := s.gen.Generate(ctx, SystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	patientMsg := &Message{
		SessionID: sessionID,
		PatientID: req.PatientID,
		Message:   req.Message,
		Sender:    SenderPatient,
	}
	if err := s.messages.Create(ctx, patientMsg); err != nil {
		return nil, err
	}

	aiMsg := &Message{
		SessionID: sessionID,
		PatientID: req.PatientID,
		Message:   reply,
		Sender:    SenderAI,
	}
	if err := s.messages.Create(ctx, aiMsg); err != nil {
		return nil, err
	}

	return &Response{
		Message:    req.Message,
		SessionID:  sessionID,
		AIResponse: reply,
	}, nil
}

// History returns a session's transcript in chronological order.
func (s *Service) History(ctx context.Context, sessionID uuid.UUID) ([]*Message, error) {
	return s.messages.ListBySession(ctx, sessionID, SessionHistoryLimit)
}

// Sessions lists a patient's chat sessions, most recently active first.
func (s *Service) Sessions(ctx context.Context, patientID uuid.UUID) ([]*SessionSummary, error) {
	return s.messages.SessionSummaries(ctx, patientID, SessionListLimit)
}
