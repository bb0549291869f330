// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/pressly/goose/v3"

	"github.com/vantagehq/interview-service/internal/db"
	"github.com/vantagehq/interview-service/internal/logging"
	"github.com/vantagehq/interview-service/internal/monitoring"
	"github.com/vantagehq/interview-service/internal/storage"
	"github.com/vantagehq/interview-service/internal/tracing"
	"github.com/vantagehq/interview-service/migrations"
)

// TestWithScopeRestrictsForeignRows needs a live Postgres and is skipped
// unless POSTGRES_TEST_DSN is set. It verifies that a scoped transaction
// runs under the restricted role, so row-level security hides every row
// belonging to an interview other than the one bound to the scope, while the
// unscoped client still sees everything.
func TestWithScopeRestrictsForeignRows(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	ctx := context.Background()

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.EmbedMigrations)
	if err != nil {
		t.Fatalf("failed to create migration provider: %v", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	client, err := db.NewDBClient(
		db.Config{DSN: dsn, MaxConns: 5, MinConns: 1},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
	if err != nil {
		t.Fatalf("failed to create db client: %v", err)
	}
	defer client.Close()

	ownID, foreignID, foreignResponseID := seedScopeFixtures(t, sqlDB)

	store := storage.NewStorage(client, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	// Unscoped reads run as the service role and see both interviews.
	if _, err := store.GetInterviewByID(ctx, foreignID); err != nil {
		t.Fatalf("unscoped read of foreign interview failed: %v", err)
	}

	err = client.WithScope(ctx, db.Scope{InterviewID: ownID, ContactID: 1, CompanyID: "scope-test-co"}, func(ctx context.Context) error {
		if _, err := store.GetInterviewByID(ctx, ownID); err != nil {
			t.Errorf("scoped read of bound interview failed: %v", err)
		}

		if _, err := store.GetInterviewByID(ctx, foreignID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("scoped read of foreign interview: expected ErrNotFound, got %v", err)
		}

		if _, err := store.GetResponseByID(ctx, foreignResponseID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("scoped read of foreign response: expected ErrNotFound, got %v", err)
		}

		responses, err := store.ListResponsesByInterviewID(ctx, foreignID)
		if err != nil {
			t.Errorf("scoped list of foreign responses failed: %v", err)
		}
		if len(responses) != 0 {
			t.Errorf("scoped list of foreign responses: expected 0 rows, got %d", len(responses))
		}

		return nil
	})
	if err != nil {
		t.Fatalf("scoped transaction failed: %v", err)
	}
}

// seedScopeFixtures inserts one company with two public interviews, each
// carrying one response, and returns the two interview ids plus the second
// interview's response id. Rows are removed again via t.Cleanup.
func seedScopeFixtures(t *testing.T, sqlDB *sql.DB) (ownID, foreignID, foreignResponseID int64) {
	t.Helper()

	mustExec(t, sqlDB, `INSERT INTO companies (id, name) VALUES ('scope-test-co', 'Scope Test Co') ON CONFLICT (id) DO NOTHING`)

	var questionnaireID, contactID int64
	mustScan(t, sqlDB, `INSERT INTO questionnaires (company_id, title) VALUES ('scope-test-co', 'scope test') RETURNING id`, &questionnaireID)
	mustScan(t, sqlDB, `INSERT INTO contacts (company_id, email) VALUES ('scope-test-co', 'scope-test@example.com') RETURNING id`, &contactID)

	mustScan(t, sqlDB, `INSERT INTO interviews (company_id, questionnaire_id, contact_id, access_code, is_public, enabled)
		VALUES ('scope-test-co', $1, $2, 'own-code', true, true) RETURNING id`, &ownID, questionnaireID, contactID)
	mustScan(t, sqlDB, `INSERT INTO interviews (company_id, questionnaire_id, contact_id, access_code, is_public, enabled)
		VALUES ('scope-test-co', $1, $2, 'foreign-code', true, true) RETURNING id`, &foreignID, questionnaireID, contactID)

	var ownResponseID int64
	mustScan(t, sqlDB, `INSERT INTO responses (interview_id, question_key, answer) VALUES ($1, 'q1', 'own') RETURNING id`, &ownResponseID, ownID)
	mustScan(t, sqlDB, `INSERT INTO responses (interview_id, question_key, answer) VALUES ($1, 'q1', 'foreign') RETURNING id`, &foreignResponseID, foreignID)

	t.Cleanup(func() {
		mustExec(t, sqlDB, `DELETE FROM responses WHERE interview_id IN ($1, $2)`, ownID, foreignID)
		mustExec(t, sqlDB, `DELETE FROM interviews WHERE id IN ($1, $2)`, ownID, foreignID)
		mustExec(t, sqlDB, `DELETE FROM contacts WHERE id = $1`, contactID)
		mustExec(t, sqlDB, `DELETE FROM questionnaires WHERE id = $1`, questionnaireID)
	})

	return ownID, foreignID, foreignResponseID
}

func mustExec(t *testing.T, sqlDB *sql.DB, query string, args ...any) {
	t.Helper()

	if _, err := sqlDB.Exec(query, args...); err != nil {
		t.Fatalf("exec failed: %v", err)
	}
}

func mustScan(t *testing.T, sqlDB *sql.DB, query string, dest *int64, args ...any) {
	t.Helper()

	if err := sqlDB.QueryRow(query, args...).Scan(dest); err != nil {
		t.Fatalf("query failed: %v", err)
	}
}
