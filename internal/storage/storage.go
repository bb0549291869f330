// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/vantagehq/interview-service/internal/db"
	"github.com/vantagehq/interview-service/internal/logging"
	"github.com/vantagehq/interview-service/internal/monitoring"
	"github.com/vantagehq/interview-service/internal/tracing"
	"github.com/vantagehq/interview-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// GetInterviewByID returns the interview with the given ID. Soft-deleted
// interviews are treated as absent.
func (s *Storage) GetInterviewByID(ctx context.Context, id int64) (*types.Interview, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInterviewByID")
	defer span.End()

	var i types.Interview
	err := s.db.Statement(ctx).
		Select("id", "company_id", "questionnaire_id", "contact_id", "access_code", "is_public", "enabled", "deleted", "created_at").
		From("interviews").
		Where(sq.Eq{"id": id, "deleted": false}).
		QueryRowContext(ctx).
		Scan(&i.ID, &i.CompanyID, &i.QuestionnaireID, &i.ContactID, &i.AccessCode, &i.IsPublic, &i.Enabled, &i.Deleted, &i.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get interview: %w", err)
	}

	return &i, nil
}

func (s *Storage) GetContactByID(ctx context.Context, id int64) (*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetContactByID")
	defer span.End()

	var c types.Contact
	err := s.db.Statement(ctx).
		Select("id", "company_id", "email", "full_name", "created_at").
		From("contacts").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.CompanyID, &c.Email, &c.FullName, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return &c, nil
}

func (s *Storage) GetResponseByID(ctx context.Context, id int64) (*types.Response, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetResponseByID")
	defer span.End()

	var r types.Response
	err := s.db.Statement(ctx).
		Select("id", "interview_id", "question_key", "answer", "created_at", "updated_at").
		From("responses").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&r.ID, &r.InterviewID, &r.QuestionKey, &r.Answer, &r.CreatedAt, &r.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get response: %w", err)
	}

	return &r, nil
}

func (s *Storage) ListResponsesByInterviewID(ctx context.Context, interviewID int64) ([]*types.Response, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListResponsesByInterviewID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "interview_id", "question_key", "answer", "created_at", "updated_at").
		From("responses").
		Where(sq.Eq{"interview_id": interviewID}).
		OrderBy("id")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer rows.Close()

	var responses []*types.Response
	for rows.Next() {
		var r types.Response
		if err := rows.Scan(&r.ID, &r.InterviewID, &r.QuestionKey, &r.Answer, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return responses, nil
}

func (s *Storage) CreateResponse(ctx context.Context, r *types.Response) (*types.Response, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateResponse")
	defer span.End()

	var created types.Response
	err := s.db.Statement(ctx).
		Insert("responses").
		Columns("interview_id", "question_key", "answer").
		Values(r.InterviewID, r.QuestionKey, r.Answer).
		Suffix("RETURNING id, interview_id, question_key, answer, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.InterviewID, &created.QuestionKey, &created.Answer, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert response: %w", err)
	}

	return &created, nil
}

func (s *Storage) UpdateResponse(ctx context.Context, id int64, answer string) (*types.Response, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateResponse")
	defer span.End()

	var updated types.Response
	err := s.db.Statement(ctx).
		Update("responses").
		Set("answer", answer).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, interview_id, question_key, answer, created_at, updated_at").
		QueryRowContext(ctx).
		Scan(&updated.ID, &updated.InterviewID, &updated.QuestionKey, &updated.Answer, &updated.CreatedAt, &updated.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update response: %w", err)
	}

	return &updated, nil
}
