package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"triage/internal/conversation"
	"triage/internal/models"
	"triage/internal/session"
	"triage/internal/triage"
)

const (
	// maxBodySize limits the size of request bodies
	maxBodySize = 1 << 20 // 1MB

	// requestTimeout bounds a single triage request end to end
	requestTimeout = 60 * time.Second
)

// TriageHandler handles symptom triage API requests
type TriageHandler struct {
	analyzer     *triage.Analyzer
	recommender  *triage.SpecialtyRecommender
	orchestrator *conversation.Orchestrator
	sessions     session.Store
	logger       *slog.Logger
}

// NewTriageHandler creates a new triage API handler
func NewTriageHandler(
	analyzer *triage.Analyzer,
	recommender *triage.SpecialtyRecommender,
	orchestrator *conversation.Orchestrator,
	sessions session.Store,
	logger *slog.Logger,
) *TriageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TriageHandler{
		analyzer:     analyzer,
		recommender:  recommender,
		orchestrator: orchestrator,
		sessions:     sessions,
		logger:       logger,
	}
}

// RegisterRoutes registers the API routes
func (h *TriageHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/triage/analyze", h.HandleAnalyze)
	mux.HandleFunc("/api/v1/triage/conversation", h.HandleConversation)
	mux.HandleFunc("/api/v1/health", h.HandleHealthCheck)
}

type analyzeRequest struct {
	Symptoms string `json:"symptoms"`
}

// analyzeResponse combines the triage result with the specialty
// recommendation so downstream consumers get both in one payload.
type analyzeResponse struct {
	*models.TriageResult
	RecommendedSpecialties []string `json:"recommended_specialties"`
}

// HandleAnalyze performs a single-shot triage of a symptom description
func (h *TriageHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req analyzeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := triage.ValidateSymptoms(req.Symptoms); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	h.logger.Info("analyzing symptoms", "length", len(req.Symptoms))

	result := h.analyzer.Analyze(ctx, req.Symptoms)

	h.writeJSON(w, http.StatusOK, &analyzeResponse{
		TriageResult:           result,
		RecommendedSpecialties: h.recommender.Recommend(req.Symptoms, result.UrgencyLevel),
	})
}

type conversationRequest struct {
	// SessionID is empty on the first request and required afterwards
	SessionID string `json:"session_id,omitempty"`

	// Complaint starts a new conversation
	Complaint string `json:"complaint,omitempty"`

	// Answers respond to the previously returned questions, in order
	Answers []string `json:"answers,omitempty"`
}

type conversationResponse struct {
	SessionID string              `json:"session_id"`
	Questions *models.QuestionSet `json:"questions,omitempty"`
	Result    *analyzeResponse    `json:"result,omitempty"`
}

// HandleConversation drives the multi-step conversational triage flow.
// The first request carries the initial complaint; each following
// request carries the session ID and the answers to the previous round.
func (h *TriageHandler) HandleConversation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req conversationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if req.SessionID == "" {
		h.startConversation(ctx, w, req)
		return
	}
	h.continueConversation(ctx, w, req)
}

func (h *TriageHandler) startConversation(ctx context.Context, w http.ResponseWriter, req conversationRequest) {
	if err := triage.ValidateSymptoms(req.Complaint); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	questions := h.orchestrator.Start(ctx, req.Complaint)

	sess := &session.Session{
		ID:               uuid.NewString(),
		InitialComplaint: req.Complaint,
		CurrentStep:      questions.Step,
		PendingQuestions: questions.Questions,
	}
	if err := h.sessions.Create(ctx, sess); err != nil {
		h.logger.Error("failed to create session", "error", err)
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, &conversationResponse{
		SessionID: sess.ID,
		Questions: questions,
	})
}

func (h *TriageHandler) continueConversation(ctx context.Context, w http.ResponseWriter, req conversationRequest) {
	sess, err := h.sessions.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			http.Error(w, "Unknown session", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load session", "error", err)
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}

	if len(req.Answers) != len(sess.PendingQuestions) {
		http.Error(w, fmt.Sprintf("Expected %d answers, got %d", len(sess.PendingQuestions), len(req.Answers)), http.StatusBadRequest)
		return
	}
	for i, q := range sess.PendingQuestions {
		sess.History = append(sess.History, models.QAPair{
			Question: q.Question,
			Answer:   req.Answers[i],
		})
	}

	nextStep := sess.CurrentStep + 1
	questions, result, err := h.orchestrator.Continue(ctx, sess.History, nextStep)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if result != nil {
		// Conversation is over, the session is no longer needed
		if err := h.sessions.Delete(ctx, sess.ID); err != nil {
			h.logger.Warn("failed to delete finished session", "session_id", sess.ID, "error", err)
		}
		h.writeJSON(w, http.StatusOK, &conversationResponse{
			SessionID: sess.ID,
			Result: &analyzeResponse{
				TriageResult:           result,
				RecommendedSpecialties: h.recommender.Recommend(result.SymptomsDescription, result.UrgencyLevel),
			},
		})
		return
	}

	sess.CurrentStep = nextStep
	sess.PendingQuestions = questions.Questions
	if err := h.sessions.Update(ctx, sess); err != nil {
		h.logger.Error("failed to update session", "session_id", sess.ID, "error", err)
		http.Error(w, "Failed to update session", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, &conversationResponse{
		SessionID: sess.ID,
		Questions: questions,
	})
}

// HandleHealthCheck provides a basic health check endpoint
func (h *TriageHandler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// decodeJSON parses a JSON request body, writing an HTTP error and
// returning false on failure.
func (h *TriageHandler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read request body: %v", err), http.StatusBadRequest)
		return false
	}
	defer r.Body.Close()

	if err := json.Unmarshal(body, dst); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *TriageHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
