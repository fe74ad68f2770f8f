package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assurscore/adapters/catalog"
	"assurscore/adapters/identity"
	"assurscore/adapters/memory"
	"assurscore/app"
	"assurscore/domain/analysis"
	"assurscore/domain/analysis/strategies"
	"assurscore/internal"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	sessions := memory.NewSessionRepository()
	analyses := memory.NewAnalysisRepository()
	registry := analysis.NewRegistry()
	strategies.RegisterAll(registry)
	engine := analysis.NewEngine(registry, nil)
	return NewApp(
		app.NewQuestionnaireService(sessions, analyses, catalog.New(), engine),
		app.NewAnalysisService(analyses, engine),
		identity.NewHeaderProvider(),
		internal.NewLogger(internal.LogLevelError),
	)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestHealthz(t *testing.T) {
	rec, body := doJSON(t, newTestApp(t).Handler(), http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestStartEndpoint(t *testing.T) {
	h := newTestApp(t).Handler()

	rec, body := doJSON(t, h, http.MethodPost, "/api/questionnaire/start",
		map[string]interface{}{"insuranceType": "auto"}, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, body["sessionId"])
	question := body["question"].(map[string]interface{})
	assert.Equal(t, "vehicule_usage", question["id"])
}

func TestStartEndpoint_UnknownType(t *testing.T) {
	h := newTestApp(t).Handler()

	rec, body := doJSON(t, h, http.MethodPost, "/api/questionnaire/start",
		map[string]interface{}{"insuranceType": "vie"}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

// fullWalk drives an auto questionnaire over HTTP and returns the analysis id.
func fullWalk(t *testing.T, h http.Handler, headers map[string]string) (sessionID, analysisID string) {
	t.Helper()
	answers := map[string]interface{}{
		"vehicule_usage":     "quotidien",
		"age_conducteur":     40,
		"anciennete_permis":  "plus_5_ans",
		"type_couverture":    "tiers_plus",
		"franchise":          300,
		"sinistres_3_ans":    "0",
		"garanties_incluses": []string{"assistance_0km", "protection_juridique"},
		"prime_mensuelle":    45,
	}

	rec, body := doJSON(t, h, http.MethodPost, "/api/questionnaire/start",
		map[string]interface{}{"insuranceType": "auto"}, headers)
	require.Equal(t, http.StatusCreated, rec.Code)
	sessionID = body["sessionId"].(string)
	questionID := body["question"].(map[string]interface{})["id"].(string)

	for i := 0; i < 20; i++ {
		rec, body = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/questionnaire/%s/next", sessionID),
			map[string]interface{}{"questionId": questionID, "answer": answers[questionID]}, headers)
		require.Equal(t, http.StatusOK, rec.Code)
		if body["complete"] == true {
			break
		}
		questionID = body["question"].(map[string]interface{})["id"].(string)
	}

	rec, body = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/questionnaire/%s/complete", sessionID), nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	return sessionID, body["analysisId"].(string)
}

func TestQuestionnaireToAnalysisFlow(t *testing.T) {
	h := newTestApp(t).Handler()
	sessionID, analysisID := fullWalk(t, h, nil)

	// Locked view: headline numbers and teasers, no full insight list.
	rec, body := doJSON(t, h, http.MethodGet, "/api/analysis/"+analysisID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["isUnlocked"])
	assert.NotNil(t, body["score"])
	assert.NotNil(t, body["freeInsights"])
	assert.Nil(t, body["insights"])
	assert.Nil(t, body["savingsBreakdown"])

	// The locked teasers carry rendered markdown.
	free := body["freeInsights"].([]interface{})
	require.NotEmpty(t, free)
	first := free[0].(map[string]interface{})
	assert.Contains(t, first["fullDescriptionHtml"], "<")

	// Lookup by session returns the same analysis.
	rec, body = doJSON(t, h, http.MethodGet, "/api/analysis/by-session/"+sessionID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, analysisID, body["id"])
}

func TestUnlockEndpoint(t *testing.T) {
	h := newTestApp(t).Handler()
	user := map[string]string{"X-User-Id": "user-1"}
	_, analysisID := fullWalk(t, h, user)

	rec, body := doJSON(t, h, http.MethodPost, "/api/analysis/"+analysisID+"/unlock", nil, user)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["isUnlocked"])
	assert.NotNil(t, body["insights"])
	assert.NotNil(t, body["savingsBreakdown"])

	// Replay is harmless.
	rec, _ = doJSON(t, h, http.MethodPost, "/api/analysis/"+analysisID+"/unlock", nil, user)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Another user cannot read the now-bound analysis.
	rec, body = doJSON(t, h, http.MethodGet, "/api/analysis/"+analysisID, nil,
		map[string]string{"X-User-Id": "user-2"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestClaimEndpoint_RequiresAuthentication(t *testing.T) {
	h := newTestApp(t).Handler()
	_, analysisID := fullWalk(t, h, nil)

	rec, body := doJSON(t, h, http.MethodPost, "/api/analysis/"+analysisID+"/claim",
		map[string]interface{}{"insuranceType": "auto"}, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", body["code"])

	rec, body = doJSON(t, h, http.MethodPost, "/api/analysis/"+analysisID+"/claim",
		map[string]interface{}{"insuranceType": "auto"},
		map[string]string{"X-User-Id": "user-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, analysisID, body["id"])
}

func TestSessionEndpoints_OwnershipEnforced(t *testing.T) {
	h := newTestApp(t).Handler()
	owner := map[string]string{"X-User-Id": "user-1"}

	rec, body := doJSON(t, h, http.MethodPost, "/api/questionnaire/start",
		map[string]interface{}{"insuranceType": "auto"}, owner)
	require.Equal(t, http.StatusCreated, rec.Code)
	sessionID := body["sessionId"].(string)

	rec, body = doJSON(t, h, http.MethodGet, "/api/questionnaire/"+sessionID, nil,
		map[string]string{"X-User-Id": "user-2"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", body["code"])

	rec, _ = doJSON(t, h, http.MethodGet, "/api/questionnaire/"+sessionID, nil, owner)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownSessionIs404(t *testing.T) {
	h := newTestApp(t).Handler()

	rec, body := doJSON(t, h, http.MethodGet, "/api/questionnaire/00000000-0000-0000-0000-000000000000", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestPrevAtFirstQuestionIsConflict(t *testing.T) {
	h := newTestApp(t).Handler()

	rec, body := doJSON(t, h, http.MethodPost, "/api/questionnaire/start",
		map[string]interface{}{"insuranceType": "gav"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	sessionID := body["sessionId"].(string)

	rec, body = doJSON(t, h, http.MethodPost, "/api/questionnaire/"+sessionID+"/prev", nil, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_STATE", body["code"])
}

func TestStatsSummaryEndpoint(t *testing.T) {
	h := newTestApp(t).Handler()
	fullWalk(t, h, nil)

	rec, body := doJSON(t, h, http.MethodGet, "/api/stats/summary", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["count"])
	assert.Greater(t, body["meanScore"].(float64), 0.0)
}
