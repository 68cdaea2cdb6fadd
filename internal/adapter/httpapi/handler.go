// Package httpapi exposes the learning engine as a thin JSON API. Handlers
// only decode, delegate to a usecase, and encode; the learner id comes from
// the X-User-Id header, which an upstream gateway is trusted to have
// authenticated.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/lingua/internal/adapter/mapping"
	"github.com/eslsoft/lingua/internal/entity"
	"github.com/eslsoft/lingua/internal/repository"
	"github.com/eslsoft/lingua/internal/usecase"
	"github.com/eslsoft/lingua/pkg/grammar"
)

const learnerHeader = "X-User-Id"

type Handler struct {
	answers     usecase.AnswerUsecase
	knowledge   usecase.KnowledgeUsecase
	sessions    usecase.SessionUsecase
	rewards     usecase.RewardUsecase
	suggestions usecase.SuggestionUsecase
	validator   *grammar.Validator
	logger      logrus.FieldLogger
}

// NewHandler wires the API handler.
func NewHandler(
	answers usecase.AnswerUsecase,
	knowledge usecase.KnowledgeUsecase,
	sessions usecase.SessionUsecase,
	rewards usecase.RewardUsecase,
	suggestions usecase.SuggestionUsecase,
	validator *grammar.Validator,
	logger logrus.FieldLogger,
) *Handler {
	return &Handler{
		answers:     answers,
		knowledge:   knowledge,
		sessions:    sessions,
		rewards:     rewards,
		suggestions: suggestions,
		validator:   validator,
		logger:      logger,
	}
}

// Routes builds the API mux.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/answers", h.submitAnswer)
	mux.HandleFunc("POST /api/v1/sessions/batch", h.recordBatch)
	mux.HandleFunc("GET /api/v1/sessions/{id}/summary", h.sessionSummary)
	mux.HandleFunc("POST /api/v1/sessions/{id}/complete", h.completeSession)
	mux.HandleFunc("GET /api/v1/knowledge", h.listKnowledge)
	mux.HandleFunc("GET /api/v1/suggestions", h.practiceSuggestions)
	mux.HandleFunc("GET /api/v1/suggestions/next", h.nextAction)
	mux.HandleFunc("GET /api/v1/grammar/check", h.grammarCheck)
	return mux
}

func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, err := learnerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req submitAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	event := &entity.AnswerEvent{
		UserID:      userID,
		Kind:        entity.ParseExerciseKind(req.Kind),
		ContextSlug: req.ContextSlug,
		SessionID:   req.SessionID,
		Prompt:      req.Prompt,
		Expected:    req.Expected,
		Given:       req.Given,
		Correct:     req.Correct,
	}

	created, err := h.answers.SubmitAnswer(r.Context(), event, entity.ParseUnitType(req.UnitType), req.UnitID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toAnswerEventResponse(created))
}

func (h *Handler) recordBatch(w http.ResponseWriter, r *http.Request) {
	userID, err := learnerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req sessionBatchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	knowledge, err := h.knowledge.RecordSessionBatch(
		r.Context(), userID, entity.ParseUnitType(req.UnitType), req.UnitID, req.Total, req.Correct)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toKnowledgeResponse(knowledge))
}

func (h *Handler) sessionSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := learnerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	summary, err := h.sessions.Summarize(
		r.Context(), userID, r.PathValue("id"), entity.ParseExerciseKind(r.URL.Query().Get("kind")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSessionSummaryResponse(summary))
}

func (h *Handler) completeSession(w http.ResponseWriter, r *http.Request) {
	userID, err := learnerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req completeSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	sessionID := r.PathValue("id")
	kind := entity.ParseExerciseKind(req.Kind)

	summary, err := h.sessions.Summarize(r.Context(), userID, sessionID, kind)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	perfect := summary.Total > 0 && summary.Correct == summary.Total
	result, err := h.rewards.AwardXpAndBadges(r.Context(), userID, usecase.AwardParams{
		Source:          req.Kind,
		SourceSlug:      req.ContextSlug,
		SessionID:       sessionID,
		DedupeKey:       req.DedupeKey,
		Mode:            req.Mode,
		Perfect:         perfect,
		Eligible:        req.Eligible,
		RepeatQualified: req.RepeatQualified,
		Meta:            req.Meta,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, completeSessionResponse{
		Summary: toSessionSummaryResponse(summary),
		Award:   toAwardResultResponse(result),
	})
}

func (h *Handler) listKnowledge(w http.ResponseWriter, r *http.Request) {
	userID, err := learnerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	query := &repository.ListKnowledgeQuery{
		Pagination: repository.Pagination{
			PageNo:   int32(queryInt(q.Get("page_no"), 1)),
			PageSize: int32(queryInt(q.Get("page_size"), 50)),
		},
		FilterOrder: repository.FilterOrder{
			Filter:  q.Get("filter"),
			OrderBy: q.Get("order_by"),
		},
		UserID: userID,
	}

	rows, total, err := h.knowledge.ListKnowledge(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	items := make([]knowledgeResponse, 0, len(rows))
	for i := range rows {
		items = append(items, *toKnowledgeResponse(&rows[i]))
	}
	h.writeJSON(w, http.StatusOK, listKnowledgeResponse{Items: items, Total: total})
}

func (h *Handler) practiceSuggestions(w http.ResponseWriter, r *http.Request) {
	userID, err := learnerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	suggestions, err := h.suggestions.Practice(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toPracticeSuggestionsResponse(suggestions))
}

func (h *Handler) nextAction(w http.ResponseWriter, r *http.Request) {
	userID, err := learnerID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	suggestion, err := h.suggestions.NextAction(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSuggestionResponse(*suggestion))
}

func (h *Handler) grammarCheck(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rawTense := q.Get("tense")
	form := q.Get("form")

	tense, known := grammar.ParseTense(rawTense)
	valid := known && h.validator.Validate(tense, form)

	h.writeJSON(w, http.StatusOK, grammarCheckResponse{
		Tense: rawTense,
		Form:  form,
		Valid: valid,
	})
}

func learnerID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.Header.Get(learnerHeader))
	if raw == "" {
		return 0, entity.ErrInvalidLearnerID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, entity.ErrInvalidLearnerID
	}
	return id, nil
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

var errBadRequestBody = errors.New("invalid request body")

func decodeJSON(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return errBadRequestBody
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.WithError(err).Warn("write response failed")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	if !errors.Is(err, errBadRequestBody) {
		status = mapping.ToHTTPStatus(err)
	}
	if status >= http.StatusInternalServerError {
		h.logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}
