// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publicauth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vantagehq/interview-service/internal/logging"
	"github.com/vantagehq/interview-service/internal/monitoring"
	"github.com/vantagehq/interview-service/internal/tracing"
)

const tokenIssuer = "vantage-interview-service"

var _ TokenIssuerInterface = (*TokenIssuer)(nil)

// TokenIssuer mints signed public interview tokens after a successful
// credential validation. The signing key is injected at construction time.
type TokenIssuer struct {
	key []byte
	ttl time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (i *TokenIssuer) Issue(ctx context.Context, id *Identity) (string, time.Time, error) {
	_, span := i.tracer.Start(ctx, "publicauth.TokenIssuer.Issue")
	defer span.End()

	now := time.Now()
	expiresAt := now.Add(i.ttl)

	claims := InterviewClaims{
		AnonymousRole:   PublicIntervieweeRole,
		InterviewID:     id.InterviewID,
		Email:           id.ContactEmail,
		ContactID:       id.ContactID,
		CompanyID:       id.CompanyID,
		QuestionnaireID: id.QuestionnaireID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(id.ContactID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, expiresAt, nil
}

func NewTokenIssuer(signingKey string, ttl time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *TokenIssuer {
	return &TokenIssuer{
		key:     []byte(signingKey),
		ttl:     ttl,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
