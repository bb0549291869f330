// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package interview

import (
	"time"

	"github.com/vantagehq/interview-service/internal/types"
)

// AuthRequest carries the public credentials used to bootstrap a token.
type AuthRequest struct {
	InterviewID string `json:"interview_id" validate:"required"`
	Email       string `json:"email" validate:"required"`
	AccessCode  string `json:"access_code" validate:"required"`
}

type AuthResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SubmitResponseRequest struct {
	QuestionKey string `json:"question_key" validate:"required,max=255"`
	Answer      string `json:"answer" validate:"required"`
}

type AmendResponseRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// InterviewPayload is the interview shape returned to public callers. The
// stored access code and the soft-delete flag never leave the service.
type InterviewPayload struct {
	ID              int64     `json:"id"`
	CompanyID       string    `json:"company_id"`
	QuestionnaireID int64     `json:"questionnaire_id"`
	ContactID       int64     `json:"contact_id"`
	IsPublic        bool      `json:"is_public"`
	Enabled         bool      `json:"enabled"`
	CreatedAt       time.Time `json:"created_at"`
}

type ResponsePayload struct {
	ID          int64     `json:"id"`
	InterviewID int64     `json:"interview_id"`
	QuestionKey string    `json:"question_key"`
	Answer      string    `json:"answer"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newInterviewPayload(iv *types.Interview) *InterviewPayload {
	return &InterviewPayload{
		ID:              iv.ID,
		CompanyID:       iv.CompanyID,
		QuestionnaireID: iv.QuestionnaireID,
		ContactID:       iv.ContactID,
		IsPublic:        iv.IsPublic,
		Enabled:         iv.Enabled,
		CreatedAt:       iv.CreatedAt,
	}
}

func newResponsePayload(r *types.Response) *ResponsePayload {
	return &ResponsePayload{
		ID:          r.ID,
		InterviewID: r.InterviewID,
		QuestionKey: r.QuestionKey,
		Answer:      r.Answer,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func newResponsePayloads(rows []*types.Response) []*ResponsePayload {
	payloads := make([]*ResponsePayload, 0, len(rows))
	for _, r := range rows {
		payloads = append(payloads, newResponsePayload(r))
	}

	return payloads
}

type InterviewResponse struct {
	Success   bool              `json:"success"`
	Interview *InterviewPayload `json:"interview"`
}

type ResponseListResponse struct {
	Success   bool               `json:"success"`
	Responses []*ResponsePayload `json:"responses"`
}

type ResponseResponse struct {
	Success  bool             `json:"success"`
	Response *ResponsePayload `json:"response"`
}
