// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/vantagehq/interview-service/internal/types"
)

type StorageInterface interface {
	GetInterviewByID(ctx context.Context, id int64) (*types.Interview, error)
	GetContactByID(ctx context.Context, id int64) (*types.Contact, error)
	GetResponseByID(ctx context.Context, id int64) (*types.Response, error)
	ListResponsesByInterviewID(ctx context.Context, interviewID int64) ([]*types.Response, error)
	CreateResponse(ctx context.Context, r *types.Response) (*types.Response, error)
	UpdateResponse(ctx context.Context, id int64, answer string) (*types.Response, error)
}
