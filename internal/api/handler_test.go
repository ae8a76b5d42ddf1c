package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triage/internal/conversation"
	"triage/internal/models"
	"triage/internal/session"
	"triage/internal/triage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	analyzer := triage.NewAnalyzer(nil, nil)
	handler := NewTriageHandler(
		analyzer,
		triage.NewSpecialtyRecommender(),
		conversation.NewOrchestrator(nil, analyzer, nil),
		session.NewMemoryStore(),
		nil,
	)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHandleAnalyze(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/triage/analyze", analyzeRequest{
		Symptoms: "severe chest pain radiating to my left arm, can't breathe",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeBody[analyzeResponse](t, resp)
	assert.Equal(t, models.UrgencyEmergency, result.UrgencyLevel)
	assert.Equal(t, "Emergency Room", result.ProviderType)
	assert.Equal(t, []string{"Emergency Medicine"}, result.RecommendedSpecialties)
}

func TestHandleAnalyzeRejectsShortInput(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/triage/analyze", analyzeRequest{Symptoms: "headache"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyzeRejectsGet(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/triage/analyze")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestConversationFullFlow(t *testing.T) {
	server := newTestServer(t)
	url := server.URL + "/api/v1/triage/conversation"

	// Start
	resp := postJSON(t, url, conversationRequest{Complaint: "my skin is itchy"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	start := decodeBody[conversationResponse](t, resp)
	require.NotEmpty(t, start.SessionID)
	require.NotNil(t, start.Questions)
	require.Len(t, start.Questions.Questions, 3)
	assert.Equal(t, 1, start.Questions.Step)
	assert.Nil(t, start.Result)

	answers := []string{"itching all over", "about a week", "mostly my arms"}

	// Round 2
	resp = postJSON(t, url, conversationRequest{SessionID: start.SessionID, Answers: answers})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decodeBody[conversationResponse](t, resp)
	require.NotNil(t, second.Questions)
	assert.Equal(t, 2, second.Questions.Step)

	// Round 3
	resp = postJSON(t, url, conversationRequest{SessionID: start.SessionID, Answers: answers})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	third := decodeBody[conversationResponse](t, resp)
	require.NotNil(t, third.Questions)
	assert.Equal(t, 3, third.Questions.Step)

	// Final answers trigger the triage call
	resp = postJSON(t, url, conversationRequest{SessionID: start.SessionID, Answers: answers})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	final := decodeBody[conversationResponse](t, resp)
	assert.Nil(t, final.Questions)
	require.NotNil(t, final.Result)
	assert.True(t, final.Result.IsFinal)
	assert.Len(t, final.Result.ConversationSummary, 9)
	assert.True(t, final.Result.UrgencyLevel.Valid())
	assert.NotNil(t, final.Result.RecommendedSpecialties)

	// The finished session is gone
	resp = postJSON(t, url, conversationRequest{SessionID: start.SessionID, Answers: answers})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestConversationRejectsShortComplaint(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/triage/conversation", conversationRequest{Complaint: "itchy"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConversationRejectsWrongAnswerCount(t *testing.T) {
	server := newTestServer(t)
	url := server.URL + "/api/v1/triage/conversation"

	resp := postJSON(t, url, conversationRequest{Complaint: "my skin is itchy"})
	start := decodeBody[conversationResponse](t, resp)

	resp = postJSON(t, url, conversationRequest{SessionID: start.SessionID, Answers: []string{"only one"}})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConversationUnknownSession(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/triage/conversation", conversationRequest{
		SessionID: "does-not-exist",
		Answers:   []string{"a", "b", "c"},
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleHealthCheck(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/health")
	require.NoError(t, err)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}
