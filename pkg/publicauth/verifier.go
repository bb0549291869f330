// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publicauth

import (
	"context"
	"errors"
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/vantagehq/interview-service/internal/logging"
	"github.com/vantagehq/interview-service/internal/monitoring"
	"github.com/vantagehq/interview-service/internal/tracing"
)

var _ TokenVerifierInterface = (*TokenVerifier)(nil)

// TokenVerifier checks signature, expiry and claims of public interview
// tokens against the server-held signing key.
type TokenVerifier struct {
	key []byte

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *TokenVerifier) VerifyToken(ctx context.Context, rawToken string) (*InterviewClaims, *Error) {
	_, span := v.tracer.Start(ctx, "publicauth.TokenVerifier.VerifyToken")
	defer span.End()

	token, err := jwt.ParseWithClaims(
		rawToken,
		&InterviewClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return v.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		// An expired token is a distinct, named condition so clients can
		// prompt re-authentication instead of treating it as tampering.
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		v.logger.Debugf("token verification failed: %v", err)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*InterviewClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.AnonymousRole != PublicIntervieweeRole {
		v.logger.Security().AuthzFailure(claims.Email, "public_interview_token")
		return nil, ErrWrongTokenType
	}

	if !claims.complete() {
		return nil, ErrMissingClaims
	}

	return claims, nil
}

func NewTokenVerifier(signingKey string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *TokenVerifier {
	return &TokenVerifier{
		key:     []byte(signingKey),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
