// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package interview

import (
	"context"
	"time"

	"github.com/vantagehq/interview-service/internal/types"
	"github.com/vantagehq/interview-service/pkg/publicauth"
)

type ServiceInterface interface {
	Authenticate(ctx context.Context, rawInterviewID, email, accessCode string) (*AuthResult, *publicauth.Error)
	GetInterview(ctx context.Context, id int64) (*types.Interview, error)
	ListResponses(ctx context.Context, interviewID int64) ([]*types.Response, error)
	SubmitResponse(ctx context.Context, interviewID int64, questionKey, answer string) (*types.Response, error)
	AmendResponse(ctx context.Context, responseID int64, answer string) (*types.Response, error)
}

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	GetInterviewByID(ctx context.Context, id int64) (*types.Interview, error)
	ListResponsesByInterviewID(ctx context.Context, interviewID int64) ([]*types.Response, error)
	CreateResponse(ctx context.Context, r *types.Response) (*types.Response, error)
	UpdateResponse(ctx context.Context, id int64, answer string) (*types.Response, error)
}

// AuthResult is the outcome of a successful credential bootstrap.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
}
