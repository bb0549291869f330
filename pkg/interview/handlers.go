// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package interview

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vantagehq/interview-service/internal/logging"
	"github.com/vantagehq/interview-service/internal/monitoring"
	"github.com/vantagehq/interview-service/internal/storage"
	"github.com/vantagehq/interview-service/internal/tracing"
	"github.com/vantagehq/interview-service/pkg/publicauth"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/v1/public/interviews/auth", a.authenticate)
}

// RegisterProtectedEndpoints mounts the routes that sit behind the public
// access middleware chain. They are registered on the router group so the
// authentication and scope middlewares run first.
func (a *API) RegisterProtectedEndpoints(r chi.Router) {
	r.Get("/v1/public/interviews/{interviewId}", a.getInterview)
	r.Get("/v1/public/interviews/{interviewId}/responses", a.listResponses)
	r.Post("/v1/public/interviews/{interviewId}/responses", a.submitResponse)
	r.Patch("/v1/public/responses/{responseId}", a.amendResponse)
}

func (a *API) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "interview.API.authenticate")
	defer span.End()

	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		publicauth.WriteError(w, publicauth.ErrInvalidFormat, a.logger)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		publicauth.WriteError(w, publicauth.ErrMissingCredentials, a.logger)
		return
	}

	result, authErr := a.service.Authenticate(ctx, req.InterviewID, req.Email, req.AccessCode)
	if authErr != nil {
		publicauth.WriteError(w, authErr, a.logger)
		return
	}

	a.writeJSON(w, http.StatusOK, AuthResponse{
		Success:   true,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}

func (a *API) getInterview(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "interview.API.getInterview")
	defer span.End()

	id, err := strconv.ParseInt(chi.URLParam(r, "interviewId"), 10, 64)
	if err != nil {
		publicauth.WriteError(w, publicauth.ErrInvalidFormat, a.logger)
		return
	}

	iv, err := a.service.GetInterview(ctx, id)
	if err != nil {
		a.writeStorageError(w, err, "get interview")
		return
	}

	a.writeJSON(w, http.StatusOK, InterviewResponse{Success: true, Interview: newInterviewPayload(iv)})
}

func (a *API) listResponses(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "interview.API.listResponses")
	defer span.End()

	id, err := strconv.ParseInt(chi.URLParam(r, "interviewId"), 10, 64)
	if err != nil {
		publicauth.WriteError(w, publicauth.ErrInvalidFormat, a.logger)
		return
	}

	responses, err := a.service.ListResponses(ctx, id)
	if err != nil {
		a.writeStorageError(w, err, "list responses")
		return
	}

	a.writeJSON(w, http.StatusOK, ResponseListResponse{Success: true, Responses: newResponsePayloads(responses)})
}

func (a *API) submitResponse(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "interview.API.submitResponse")
	defer span.End()

	id, err := strconv.ParseInt(chi.URLParam(r, "interviewId"), 10, 64)
	if err != nil {
		publicauth.WriteError(w, publicauth.ErrInvalidFormat, a.logger)
		return
	}

	var req SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		publicauth.WriteError(w, publicauth.ErrInvalidFormat, a.logger)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		publicauth.WriteError(w, publicauth.ErrInvalidFormat, a.logger)
		return
	}

	resp, err := a.service.SubmitResponse(ctx, id, req.QuestionKey, req.Answer)
	if err != nil {
		if storage.IsDuplicateKeyError(err) {
			publicauth.WriteError(w, publicauth.ErrDuplicateResponse, a.logger)
			return
		}

		a.writeStorageError(w, err, "submit response")
		return
	}

	a.writeJSON(w, http.StatusCreated, ResponseResponse{Success: true, Response: newResponsePayload(resp)})
}

func (a *API) amendResponse(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "interview.API.amendResponse")
	defer span.End()

	id, err := strconv.ParseInt(chi.URLParam(r, "responseId"), 10, 64)
	if err != nil {
		publicauth.WriteError(w, publicauth.ErrResponseNotFound, a.logger)
		return
	}

	var req AmendResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		publicauth.WriteError(w, publicauth.ErrInvalidFormat, a.logger)
		return
	}

	if err := a.validate.Struct(req); err != nil {
		publicauth.WriteError(w, publicauth.ErrInvalidFormat, a.logger)
		return
	}

	resp, err := a.service.AmendResponse(ctx, id, req.Answer)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			publicauth.WriteError(w, publicauth.ErrResponseNotFound, a.logger)
			return
		}

		a.writeStorageError(w, err, "amend response")
		return
	}

	a.writeJSON(w, http.StatusOK, ResponseResponse{Success: true, Response: newResponsePayload(resp)})
}

func (a *API) writeStorageError(w http.ResponseWriter, err error, action string) {
	if errors.Is(err, storage.ErrNotFound) {
		publicauth.WriteError(w, publicauth.ErrNotFound, a.logger)
		return
	}

	a.logger.Errorf("failed to %s: %v", action, err)
	publicauth.WriteError(w, publicauth.ErrStorage, a.logger)
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
