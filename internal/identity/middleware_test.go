// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vantagehq/interview-service/internal/logging"
	"github.com/vantagehq/interview-service/internal/monitoring"
	"github.com/vantagehq/interview-service/internal/tracing"
)

func TestHTTPMiddleware(t *testing.T) {
	mw := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	var gotID string
	var gotOK bool
	handler := mw.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = UserIDFromContext(r.Context())
	}))

	t.Run("header present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderName, "user-123")

		handler.ServeHTTP(httptest.NewRecorder(), req)

		if !gotOK || gotID != "user-123" {
			t.Errorf("expected user-123 in context, got %q (ok=%v)", gotID, gotOK)
		}
	})

	t.Run("header absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		handler.ServeHTTP(httptest.NewRecorder(), req)

		if gotOK {
			t.Errorf("expected no user id in context, got %q", gotID)
		}
	})
}
