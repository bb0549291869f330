// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vantagehq/interview-service/internal/db"
	"github.com/vantagehq/interview-service/internal/identity"
	"github.com/vantagehq/interview-service/internal/logging"
	"github.com/vantagehq/interview-service/internal/monitoring"
	"github.com/vantagehq/interview-service/internal/storage"
	"github.com/vantagehq/interview-service/internal/tracing"
	"github.com/vantagehq/interview-service/pkg/interview"
	"github.com/vantagehq/interview-service/pkg/metrics"
	"github.com/vantagehq/interview-service/pkg/publicauth"
	"github.com/vantagehq/interview-service/pkg/status"
)

// Config carries the token settings the router needs to build the public
// interview auth components.
type Config struct {
	JWTSigningKey string
	TokenLifetime time.Duration
}

func NewRouter(
	c *Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	validator := publicauth.NewCredentialValidator(s, tracer, monitor, logger)
	issuer := publicauth.NewTokenIssuer(c.JWTSigningKey, c.TokenLifetime, tracer, monitor, logger)
	verifier := publicauth.NewTokenVerifier(c.JWTSigningKey, tracer, monitor, logger)
	authMdw := publicauth.NewMiddleware(verifier, validator, s, dbClient, tracer, monitor, logger)
	identityMdw := identity.NewMiddleware(tracer, monitor, logger)

	interviewAPI := interview.NewAPI(
		interview.NewService(s, validator, issuer, tracer, monitor, logger),
		tracer,
		monitor,
		logger,
	)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	interviewAPI.RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(
			identityMdw.HTTPMiddleware,
			authMdw.Authenticate(),
			authMdw.EnforceScope(),
			authMdw.BindScope(),
			db.TransactionMiddleware(dbClient, logger),
		)

		interviewAPI.RegisterProtectedEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowedHeaders: []string{
				"Accept",
				"Authorization",
				"Content-Type",
				publicauth.HeaderInterviewID,
				publicauth.HeaderInterviewEmail,
				publicauth.HeaderAccessCode,
				identity.HeaderName,
			},
			MaxAge: 300,
		},
	)
}
