package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler(gen *fakeGenerator) (*Handler, *echo.Echo, uuid.UUID) {
	p := testPatient()
	svc := NewService(newMockRepo(), newMockPatients(p), gen)
	h := NewHandler(svc)
	e := echo.New()
	return h, e, p.ID
}

func TestHandler_Chat(t *testing.T) {
	h, e, patientID := newTestHandler(&fakeGenerator{reply: "How can I help?"})

	body := `{"patient_id":"` + patientID.String() + `","message":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Chat(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var res Response
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if res.SessionID == uuid.Nil {
		t.Error("expected session id in response")
	}
	if res.AIResponse != "How can I help?" {
		t.Errorf("unexpected ai_response: %q", res.AIResponse)
	}
	if res.Message != "Hi" {
		t.Errorf("expected original message echoed, got %q", res.Message)
	}
}

func TestHandler_Chat_UnknownPatient(t *testing.T) {
	h, e, _ := newTestHandler(&fakeGenerator{reply: "anything"})

	body := `{"patient_id":"` + uuid.New().String() + `","message":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Chat(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", he.Code)
	}
	if he.Message != "Patient not found" {
		t.Errorf("unexpected detail: %v", he.Message)
	}
}

func TestHandler_Chat_EmptyMessage(t *testing.T) {
	h, e, patientID := newTestHandler(&fakeGenerator{reply: "anything"})

	body := `{"patient_id":"` + patientID.String() + `","message":""}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Chat(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", he.Code)
	}
}

func TestHandler_History(t *testing.T) {
	h, e, patientID := newTestHandler(&fakeGenerator{reply: "Reply"})
	res, _ := h.svc.Chat(nil, &Request{PatientID: patientID, Message: "Hello"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues(res.SessionID.String())

	if err := h.History(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var msgs []*Message
	if err := json.Unmarshal(rec.Body.Bytes(), &msgs); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(msgs) != 2 {
		t.Errorf("expected 2 messages, got %d", len(msgs))
	}
}

func TestHandler_History_EmptySession(t *testing.T) {
	h, e, _ := newTestHandler(&fakeGenerator{reply: "anything"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("session_id")
	c.SetParamValues(uuid.New().String())

	if err := h.History(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for empty session, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty array, got %s", body)
	}
}

func TestHandler_Sessions(t *testing.T) {
	h, e, patientID := newTestHandler(&fakeGenerator{reply: "Reply"})
	h.svc.Chat(nil, &Request{PatientID: patientID, Message: "Hello"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(patientID.String())

	if err := h.Sessions(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var sessions []*SessionSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &sessions); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("expected 1 session, got %d", len(sessions))
	}
}
