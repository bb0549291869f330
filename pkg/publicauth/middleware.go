// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publicauth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/vantagehq/interview-service/internal/identity"
	"github.com/vantagehq/interview-service/internal/logging"
	"github.com/vantagehq/interview-service/internal/monitoring"
	"github.com/vantagehq/interview-service/internal/tracing"
)

// Legacy flow credential carriers. Headers are preferred, query parameters
// are the fallback for clients that cannot set headers.
const (
	HeaderInterviewID    = "X-Interview-Id"
	HeaderInterviewEmail = "X-Interview-Email"
	HeaderAccessCode     = "X-Interview-Access-Code"

	queryInterviewID = "interview_id"
	queryEmail       = "email"
	queryAccessCode  = "access_code"
)

// Middleware implements the public interview middleware chain: dual-mode
// authentication (signed token or legacy credential triple), scope
// enforcement, and request-scoped data client binding.
type Middleware struct {
	verifier  TokenVerifierInterface
	validator CredentialValidatorInterface
	storage   StorageInterface
	scopes    ScopeBinderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate authenticates a request through one of two mutually exclusive
// paths. A request carrying an Authorization header takes the token path;
// a request carrying the legacy credential headers or query parameters takes
// the credential path. Internal platform users, identified upstream by the
// gateway, bypass public authentication entirely: row-level security already
// scopes their access.
//
// On success the request context carries the public interview identity, the
// generic user marker, and the public-access flag. On failure the request is
// terminated with the matching taxonomy error; nothing is attached.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "publicauth.Middleware.Authenticate")
			defer span.End()
			defer m.failClosed(w, "authentication")

			if _, ok := identity.UserIDFromContext(ctx); ok {
				// Internal platform user, nothing to do here
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if r.Header.Get("Authorization") == "" && m.hasLegacyCredentials(r) {
				m.authenticateCredentials(w, r.WithContext(ctx), next)
				return
			}

			m.authenticateToken(w, r.WithContext(ctx), next)
		})
	}
}

func (m *Middleware) authenticateToken(w http.ResponseWriter, r *http.Request, next http.Handler) {
	ctx := r.Context()

	token, found := m.getBearerToken(r.Header)
	if !found {
		WriteError(w, ErrMissingAuth, m.logger)
		return
	}

	claims, aerr := m.verifier.VerifyToken(ctx, token)
	if aerr != nil {
		WriteError(w, aerr, m.logger)
		return
	}

	id := identityFromClaims(claims)
	ctx = WithPublicAccess(WithUser(WithIdentity(ctx, id), id.User()))

	m.logger.Infof("public interview access granted: interview %d, contact %s", id.InterviewID, id.ContactEmail)
	m.logger.Security().AuthSuccess(id.ContactEmail, "public_interview_token")

	next.ServeHTTP(w, r.WithContext(ctx))
}

func (m *Middleware) authenticateCredentials(w http.ResponseWriter, r *http.Request, next http.Handler) {
	ctx := r.Context()

	rawID, email, code := m.legacyCredentials(r)

	id, aerr := m.validator.Validate(ctx, rawID, email, code)
	if aerr != nil {
		WriteError(w, aerr, m.logger)
		return
	}

	// The legacy flow predates the questionnaire claim.
	id.Mode = AuthModeCredentials
	id.QuestionnaireID = 0

	ctx = WithPublicAccess(WithUser(WithIdentity(ctx, id), id.User()))

	m.logger.Infof("legacy public interview access granted: interview %d, contact %s", id.InterviewID, id.ContactEmail)
	m.logger.Security().AuthSuccess(id.ContactEmail, "public_interview_credentials")

	next.ServeHTTP(w, r.WithContext(ctx))
}

// BindScope binds the request's data access to the authenticated identity.
// Token-authenticated requests run inside a transaction whose row-level
// security context carries the token's claims. Legacy credential requests
// keep the service role: that flow predates per-request row-level security
// and is deliberately weaker. Runs after the scope enforcer so enforcement
// lookups are not themselves subject to the bound scope.
func (m *Middleware) BindScope() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "publicauth.Middleware.BindScope")
			defer span.End()
			defer m.failClosed(w, "scope binding")

			id, ok := IdentityFromContext(ctx)
			if !ok || !IsPublicAccess(ctx) || id.Mode != AuthModeToken {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			handlerRan := false
			err := m.scopes.WithScope(ctx, id.Scope(), func(scoped context.Context) error {
				handlerRan = true
				rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
				next.ServeHTTP(rw, r.WithContext(scoped))

				if rw.status >= 400 {
					return fmt.Errorf("request failed with status %d", rw.status)
				}
				return nil
			})
			if err != nil {
				if !handlerRan {
					m.logger.Errorf("failed to bind request scope: %v", err)
					WriteError(w, ErrInternal, m.logger)
					return
				}
				m.logger.Debugf("scoped transaction rolled back: %v", err)
			}
		})
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func (m *Middleware) hasLegacyCredentials(r *http.Request) bool {
	rawID, email, code := m.legacyCredentials(r)
	return rawID != "" || email != "" || code != ""
}

func (m *Middleware) legacyCredentials(r *http.Request) (string, string, string) {
	rawID := r.Header.Get(HeaderInterviewID)
	email := r.Header.Get(HeaderInterviewEmail)
	code := r.Header.Get(HeaderAccessCode)

	query := r.URL.Query()
	if rawID == "" {
		rawID = query.Get(queryInterviewID)
	}
	if email == "" {
		email = query.Get(queryEmail)
	}
	if code == "" {
		code = query.Get(queryAccessCode)
	}

	return rawID, email, code
}

// failClosed converts a panic below this middleware into a logged generic
// 500, never a raw stack trace to the client.
func (m *Middleware) failClosed(w http.ResponseWriter, stage string) {
	if rec := recover(); rec != nil {
		m.logger.Errorf("panic during %s: %v", stage, rec)
		WriteError(w, ErrInternal, m.logger)
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func NewMiddleware(
	verifier TokenVerifierInterface,
	validator CredentialValidatorInterface,
	storage StorageInterface,
	scopes ScopeBinderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		verifier:  verifier,
		validator: validator,
		storage:   storage,
		scopes:    scopes,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
