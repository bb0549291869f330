// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
)

// Scope is the verified identity a request-scoped database client is bound
// to. The row-level security policies shipped in migrations read these values
// back via current_setting('request.*') so that every statement executed
// inside the scope can only see the bound interview's rows.
type Scope struct {
	InterviewID int64
	ContactID   int64
	CompanyID   string
}

// scopedRole is the restricted database role the scoped transaction runs as.
// The pool connects as the table-owning service role, which Postgres exempts
// from row-level security, so the policies only bite after SET LOCAL ROLE
// switches to this non-owner role. Created in migration 00002.
const scopedRole = "interview_public"

// WithScope executes fn inside a transaction whose session settings carry the
// given scope. set_config is called with is_local=true and the role switch
// uses SET LOCAL, so both live and die with the transaction and never leak
// into pooled connections.
//
// This is the hardened counterpart of WithTx: WithTx runs with the service's
// own (unrestricted) database role, WithScope makes row-level security
// evaluate against the token's claims.
func (d *DBClient) WithScope(ctx context.Context, scope Scope, fn func(context.Context) error) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.WithScope")
	defer span.End()

	tx, err := d.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: false})
	if err != nil {
		return fmt.Errorf("failed to begin scoped transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback scoped transaction: %v", err)
			}
		}
	}()

	_, err = tx.ExecContext(ctx,
		`SELECT set_config('request.interview_id', $1, true),
		        set_config('request.contact_id', $2, true),
		        set_config('request.company_id', $3, true)`,
		strconv.FormatInt(scope.InterviewID, 10),
		strconv.FormatInt(scope.ContactID, 10),
		scope.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to bind request scope: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "SET LOCAL ROLE "+scopedRole); err != nil {
		return fmt.Errorf("failed to assume scoped role: %w", err)
	}

	if err := fn(ContextWithTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scoped transaction: %w", err)
	}
	committed = true

	return nil
}
