package httpapi

import (
	"time"

	"github.com/eslsoft/lingua/internal/entity"
)

type errorResponse struct {
	Error string `json:"error"`
}

type submitAnswerRequest struct {
	Kind        string `json:"kind"`
	ContextSlug string `json:"context_slug"`
	SessionID   string `json:"session_id"`
	Prompt      string `json:"prompt"`
	Expected    string `json:"expected"`
	Given       string `json:"given"`
	Correct     bool   `json:"correct"`
	UnitType    string `json:"unit_type"`
	UnitID      int64  `json:"unit_id"`
}

type answerEventResponse struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	ContextSlug string    `json:"context_slug,omitempty"`
	SessionID   string    `json:"session_id"`
	Prompt      string    `json:"prompt"`
	Expected    string    `json:"expected"`
	Given       string    `json:"given"`
	Correct     bool      `json:"correct"`
	CreatedAt   time.Time `json:"created_at"`
}

type sessionBatchRequest struct {
	UnitType string `json:"unit_type"`
	UnitID   int64  `json:"unit_id"`
	Total    int64  `json:"total"`
	Correct  int64  `json:"correct"`
}

type knowledgeResponse struct {
	ID             int64      `json:"id"`
	UnitType       string     `json:"unit_type"`
	UnitID         int64      `json:"unit_id"`
	TotalAttempts  int64      `json:"total_attempts"`
	CorrectCount   int64      `json:"correct_count"`
	WrongCount     int64      `json:"wrong_count"`
	LastAttemptAt  time.Time  `json:"last_attempt_at"`
	LastCorrectAt  *time.Time `json:"last_correct_at,omitempty"`
	LastWrongAt    *time.Time `json:"last_wrong_at,omitempty"`
	StabilityScore int64      `json:"stability_score"`
	State          string     `json:"state"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type listKnowledgeResponse struct {
	Items []knowledgeResponse `json:"items"`
	Total int64               `json:"total"`
}

type wrongAnswerResponse struct {
	Prompt   string `json:"prompt"`
	Expected string `json:"expected"`
}

type sessionSummaryResponse struct {
	SessionID   string                `json:"session_id"`
	Kind        string                `json:"kind,omitempty"`
	Total       int64                 `json:"total"`
	Correct     int64                 `json:"correct"`
	Wrong       int64                 `json:"wrong"`
	Accuracy    float64               `json:"accuracy"`
	StartedAt   *time.Time            `json:"started_at,omitempty"`
	CompletedAt *time.Time            `json:"completed_at,omitempty"`
	WrongItems  []wrongAnswerResponse `json:"wrong_items"`
}

type completeSessionRequest struct {
	Kind            string            `json:"kind"`
	ContextSlug     string            `json:"context_slug"`
	DedupeKey       string            `json:"dedupe_key"`
	Mode            string            `json:"mode"`
	Eligible        bool              `json:"eligible"`
	RepeatQualified bool              `json:"repeat_qualified"`
	Meta            map[string]string `json:"meta,omitempty"`
}

type badgeResponse struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type awardResultResponse struct {
	XpAwarded     int64           `json:"xp_awarded"`
	XpTotal       int64           `json:"xp_total"`
	Level         int64           `json:"level"`
	XpIntoLevel   int64           `json:"xp_into_level"`
	XpToNextLevel int64           `json:"xp_to_next_level"`
	Badges        []badgeResponse `json:"badges,omitempty"`
}

type completeSessionResponse struct {
	Summary sessionSummaryResponse `json:"summary"`
	Award   awardResultResponse    `json:"award"`
}

type suggestionResponse struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Href        string `json:"href"`
}

type practiceSuggestionsResponse struct {
	IrregularVerbs []suggestionResponse `json:"irregular_verbs"`
	Packs          []suggestionResponse `json:"packs"`
	Clusters       []suggestionResponse `json:"clusters"`
}

type grammarCheckResponse struct {
	Tense string `json:"tense"`
	Form  string `json:"form"`
	Valid bool   `json:"valid"`
}

func toAnswerEventResponse(event *entity.AnswerEvent) answerEventResponse {
	return answerEventResponse{
		ID:          event.ID,
		Kind:        string(event.Kind),
		ContextSlug: event.ContextSlug,
		SessionID:   event.SessionID,
		Prompt:      event.Prompt,
		Expected:    event.Expected,
		Given:       event.Given,
		Correct:     event.Correct,
		CreatedAt:   event.CreatedAt,
	}
}

func toKnowledgeResponse(k *entity.UnitKnowledge) *knowledgeResponse {
	return &knowledgeResponse{
		ID:             k.ID,
		UnitType:       string(k.UnitType),
		UnitID:         k.UnitID,
		TotalAttempts:  k.TotalAttempts,
		CorrectCount:   k.CorrectCount,
		WrongCount:     k.WrongCount,
		LastAttemptAt:  k.LastAttemptAt,
		LastCorrectAt:  k.LastCorrectAt,
		LastWrongAt:    k.LastWrongAt,
		StabilityScore: k.StabilityScore,
		State:          string(k.State),
		UpdatedAt:      k.UpdatedAt,
	}
}

func toSessionSummaryResponse(summary *entity.SessionSummary) sessionSummaryResponse {
	wrong := make([]wrongAnswerResponse, 0, len(summary.WrongItems))
	for _, item := range summary.WrongItems {
		wrong = append(wrong, wrongAnswerResponse{Prompt: item.Prompt, Expected: item.Expected})
	}
	return sessionSummaryResponse{
		SessionID:   summary.SessionID,
		Kind:        string(summary.Kind),
		Total:       summary.Total,
		Correct:     summary.Correct,
		Wrong:       summary.Wrong,
		Accuracy:    summary.Accuracy,
		StartedAt:   summary.StartedAt,
		CompletedAt: summary.CompletedAt,
		WrongItems:  wrong,
	}
}

func toAwardResultResponse(result *entity.AwardResult) awardResultResponse {
	badges := make([]badgeResponse, 0, len(result.Badges))
	for _, badge := range result.Badges {
		badges = append(badges, badgeResponse{
			Slug:        badge.Slug,
			Name:        badge.Name,
			Description: badge.Description,
			Icon:        badge.Icon,
		})
	}
	return awardResultResponse{
		XpAwarded:     result.XpAwarded,
		XpTotal:       result.XpTotal,
		Level:         result.Level,
		XpIntoLevel:   result.XpIntoLevel,
		XpToNextLevel: result.XpToNextLevel,
		Badges:        badges,
	}
}

func toSuggestionResponse(s entity.Suggestion) suggestionResponse {
	return suggestionResponse{
		Kind:        string(s.Kind),
		Title:       s.Title,
		Description: s.Description,
		Href:        s.Href,
	}
}

func toPracticeSuggestionsResponse(p *entity.PracticeSuggestions) practiceSuggestionsResponse {
	mapList := func(items []entity.Suggestion) []suggestionResponse {
		result := make([]suggestionResponse, 0, len(items))
		for _, item := range items {
			result = append(result, toSuggestionResponse(item))
		}
		return result
	}
	return practiceSuggestionsResponse{
		IrregularVerbs: mapList(p.IrregularVerbs),
		Packs:          mapList(p.Packs),
		Clusters:       mapList(p.Clusters),
	}
}
