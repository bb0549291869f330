// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publicauth

import (
	"errors"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"github.com/vantagehq/interview-service/internal/storage"
)

// EnforceScope confirms that the resource named by the route parameters
// belongs to the authenticated identity's interview. It is a pure
// authorization gate: it reads for verification, never mutates, and the same
// request state always produces the same outcome.
//
// Requests that did not go through the public path pass untouched; ordinary
// row-level security already scopes internal users.
func (m *Middleware) EnforceScope() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "publicauth.Middleware.EnforceScope")
			defer span.End()
			defer m.failClosed(w, "scope enforcement")

			if !IsPublicAccess(ctx) {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			id, ok := IdentityFromContext(ctx)
			if !ok {
				// Misordered middleware chain, fail closed
				WriteError(w, ErrMissingContext, m.logger)
				return
			}

			if param := chi.URLParam(r, "interviewId"); param != "" {
				interviewID, err := strconv.ParseInt(param, 10, 64)
				if err != nil || interviewID != id.InterviewID {
					m.logger.Security().AuthzFailure(id.ContactEmail, "interview_scope")
					WriteError(w, ErrInterviewMismatch, m.logger)
					return
				}
			}

			if param := chi.URLParam(r, "responseId"); param != "" {
				responseID, err := strconv.ParseInt(param, 10, 64)
				if err != nil {
					WriteError(w, ErrResponseNotFound, m.logger)
					return
				}

				response, err := m.storage.GetResponseByID(ctx, responseID)
				if err != nil {
					if errors.Is(err, storage.ErrNotFound) {
						WriteError(w, ErrResponseNotFound, m.logger)
						return
					}
					m.logger.Errorf("response lookup failed: %v", err)
					WriteError(w, ErrStorage, m.logger)
					return
				}

				if response.InterviewID != id.InterviewID {
					m.logger.Security().AuthzFailure(id.ContactEmail, "response_scope")
					WriteError(w, ErrResponseMismatch, m.logger)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
