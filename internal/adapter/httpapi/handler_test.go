package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingua/internal/entity"
	"github.com/eslsoft/lingua/internal/repository"
	"github.com/eslsoft/lingua/internal/usecase"
	"github.com/eslsoft/lingua/pkg/grammar"
)

type stubAnswers struct {
	submitted *entity.AnswerEvent
}

func (s *stubAnswers) SubmitAnswer(_ context.Context, event *entity.AnswerEvent, _ entity.UnitType, _ int64) (*entity.AnswerEvent, error) {
	stored := *event
	stored.ID = 1
	stored.CreatedAt = time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	s.submitted = &stored
	return &stored, nil
}

type stubKnowledge struct {
	lastQuery *repository.ListKnowledgeQuery
}

func (s *stubKnowledge) RecordAnswer(_ context.Context, userID int64, unitType entity.UnitType, unitID int64, correct bool) (*entity.UnitKnowledge, error) {
	return &entity.UnitKnowledge{UserID: userID, UnitType: unitType, UnitID: unitID}, nil
}

func (s *stubKnowledge) RecordSessionBatch(_ context.Context, userID int64, unitType entity.UnitType, unitID int64, total, correct int64) (*entity.UnitKnowledge, error) {
	if total <= 0 {
		return nil, entity.ErrInvalidBatchTotal
	}
	return &entity.UnitKnowledge{
		UserID:        userID,
		UnitType:      unitType,
		UnitID:        unitID,
		TotalAttempts: total,
		CorrectCount:  correct,
		State:         entity.KnowledgeStateImproving,
	}, nil
}

func (s *stubKnowledge) ListKnowledge(_ context.Context, query *repository.ListKnowledgeQuery) ([]entity.UnitKnowledge, int64, error) {
	s.lastQuery = query
	return []entity.UnitKnowledge{{ID: 7, UserID: query.UserID, UnitType: entity.UnitTypeSense, UnitID: 3}}, 1, nil
}

type stubSessions struct{}

func (stubSessions) Summarize(_ context.Context, userID int64, sessionID string, kind entity.ExerciseKind) (*entity.SessionSummary, error) {
	if sessionID == "" {
		return nil, entity.ErrInvalidSessionID
	}
	return &entity.SessionSummary{
		SessionID: sessionID,
		Kind:      kind,
		Total:     4,
		Correct:   4,
		Accuracy:  1,
	}, nil
}

type stubRewards struct {
	lastParams usecase.AwardParams
}

func (s *stubRewards) AwardXpAndBadges(_ context.Context, _ int64, params usecase.AwardParams) (*entity.AwardResult, error) {
	s.lastParams = params
	return &entity.AwardResult{XpAwarded: 20, XpTotal: 20, XpToNextLevel: 50}, nil
}

type stubSuggestions struct{}

func (stubSuggestions) Practice(_ context.Context, _ int64) (*entity.PracticeSuggestions, error) {
	return &entity.PracticeSuggestions{}, nil
}

func (stubSuggestions) NextAction(_ context.Context, _ int64) (*entity.Suggestion, error) {
	return &entity.Suggestion{Kind: entity.SuggestionKindBrowse, Title: "Browse vocabulary packs", Href: "/packs"}, nil
}

type testAPI struct {
	handler http.Handler
	rewards *stubRewards
	tracker *stubKnowledge
}

func newTestAPI() *testAPI {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	rewards := &stubRewards{}
	tracker := &stubKnowledge{}
	h := NewHandler(
		&stubAnswers{},
		tracker,
		stubSessions{},
		rewards,
		stubSuggestions{},
		grammar.NewValidator(grammar.NewVerbs()),
		logger,
	)
	return &testAPI{handler: h.Routes(), rewards: rewards, tracker: tracker}
}

func (a *testAPI) do(t *testing.T, method, target, body string, learner string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if learner != "" {
		req.Header.Set("X-User-Id", learner)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func TestSubmitAnswerRequiresLearner(t *testing.T) {
	api := newTestAPI()

	rec := api.do(t, http.MethodPost, "/api/v1/answers", `{"session_id":"s1","correct":true}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	rec = api.do(t, http.MethodPost, "/api/v1/answers", `{"session_id":"s1","correct":true}`, "abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status with bad header = %d, want 400", rec.Code)
	}
}

func TestSubmitAnswerCreated(t *testing.T) {
	api := newTestAPI()

	body := `{"kind":"pack","context_slug":"shop","session_id":"s1","prompt":"bread","expected":"chleb","given":"chleb","correct":true}`
	rec := api.do(t, http.MethodPost, "/api/v1/answers", body, "7")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp answerEventResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 1 || resp.Kind != "pack" || !resp.Correct {
		t.Fatalf("response = %+v", resp)
	}
}

func TestSubmitAnswerRejectsUnknownFields(t *testing.T) {
	api := newTestAPI()

	rec := api.do(t, http.MethodPost, "/api/v1/answers", `{"session_id":"s1","bogus":1}`, "7")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListKnowledgePassesQuery(t *testing.T) {
	api := newTestAPI()

	rec := api.do(t, http.MethodGet,
		"/api/v1/knowledge?filter=state+%3D%3D+%27unstable%27&order_by=wrong_count+desc&page_no=2&page_size=25",
		"", "7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	query := api.tracker.lastQuery
	if query == nil {
		t.Fatal("expected list query to reach the usecase")
	}
	if query.UserID != 7 || query.PageNo != 2 || query.PageSize != 25 {
		t.Fatalf("query = %+v", query)
	}
	if query.Filter != "state == 'unstable'" || query.OrderBy != "wrong_count desc" {
		t.Fatalf("filter/order = %q / %q", query.Filter, query.OrderBy)
	}

	var resp listKnowledgeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.Items) != 1 || resp.Items[0].ID != 7 {
		t.Fatalf("response = %+v", resp)
	}
}

func TestCompleteSessionDerivesPerfect(t *testing.T) {
	api := newTestAPI()

	body := `{"kind":"pack","context_slug":"everyday-basics","dedupe_key":"pack:everyday-basics:all","mode":"all","eligible":true}`
	rec := api.do(t, http.MethodPost, "/api/v1/sessions/s9/complete", body, "7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	params := api.rewards.lastParams
	if !params.Perfect {
		t.Fatalf("expected perfect to be derived from the summary, got %+v", params)
	}
	if params.SessionID != "s9" || params.DedupeKey != "pack:everyday-basics:all" || params.Mode != "all" {
		t.Fatalf("params = %+v", params)
	}

	var resp completeSessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Award.XpAwarded != 20 || resp.Summary.Total != 4 {
		t.Fatalf("response = %+v", resp)
	}
}

func TestGrammarCheck(t *testing.T) {
	api := newTestAPI()

	rec := api.do(t, http.MethodGet, "/api/v1/grammar/check?tense=past-simple&form=went", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp grammarCheckResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Valid {
		t.Fatalf("expected went to satisfy past-simple: %+v", resp)
	}

	rec = api.do(t, http.MethodGet, "/api/v1/grammar/check?tense=no-such-tense&form=went", "", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Valid {
		t.Fatalf("unknown tense must report invalid: %+v", resp)
	}
}

func TestNextActionResponse(t *testing.T) {
	api := newTestAPI()

	rec := api.do(t, http.MethodGet, "/api/v1/suggestions/next", "", "7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp suggestionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Kind != "browse" || resp.Href != "/packs" {
		t.Fatalf("response = %+v", resp)
	}
}
