// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package publicauth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/vantagehq/interview-service/internal/storage"
	"github.com/vantagehq/interview-service/internal/types"
)

func enforcerRequest(t *testing.T, id *Identity, params map[string]string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)

	if id != nil {
		ctx = WithPublicAccess(WithIdentity(ctx, id))
	}

	return req.WithContext(ctx)
}

func TestMiddleware_EnforceScope(t *testing.T) {
	id := &Identity{
		Mode:         AuthModeToken,
		InterviewID:  42,
		ContactEmail: "contact@example.com",
		ContactID:    7,
		CompanyID:    "company-123",
	}

	testCases := []struct {
		name           string
		identity       *Identity
		params         map[string]string
		setupMocks     func(*MockStorageInterface)
		expectedStatus int
	}{
		{
			name:           "matching interview id",
			identity:       id,
			params:         map[string]string{"interviewId": "42"},
			setupMocks:     func(*MockStorageInterface) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "foreign interview id",
			identity:       id,
			params:         map[string]string{"interviewId": "43"},
			setupMocks:     func(*MockStorageInterface) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "non-integer interview id",
			identity:       id,
			params:         map[string]string{"interviewId": "forty-two"},
			setupMocks:     func(*MockStorageInterface) {},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:     "own response",
			identity: id,
			params:   map[string]string{"responseId": "100"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetResponseByID(gomock.Any(), int64(100)).
					Return(&types.Response{ID: 100, InterviewID: 42}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "response of another interview",
			identity: id,
			params:   map[string]string{"responseId": "100"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetResponseByID(gomock.Any(), int64(100)).
					Return(&types.Response{ID: 100, InterviewID: 43}, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:     "response not found",
			identity: id,
			params:   map[string]string{"responseId": "100"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetResponseByID(gomock.Any(), int64(100)).
					Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-integer response id",
			identity:       id,
			params:         map[string]string{"responseId": "abc"},
			setupMocks:     func(*MockStorageInterface) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:     "response lookup fails",
			identity: id,
			params:   map[string]string{"responseId": "100"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetResponseByID(gomock.Any(), int64(100)).
					Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			// Both parameters present: the interview gate runs first and
			// a match falls through to the response gate.
			name:     "interview and response both match",
			identity: id,
			params:   map[string]string{"interviewId": "42", "responseId": "100"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetResponseByID(gomock.Any(), int64(100)).
					Return(&types.Response{ID: 100, InterviewID: 42}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no route parameters",
			identity:       id,
			params:         nil,
			setupMocks:     func(*MockStorageInterface) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "public access without identity",
			identity:       nil,
			params:         map[string]string{"interviewId": "42"},
			setupMocks:     func(*MockStorageInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newMiddlewareMocks(ctrl)
			tc.setupMocks(mocks.storage)

			handler := mocks.middleware().EnforceScope()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := enforcerRequest(t, tc.identity, tc.params)
			if tc.identity == nil {
				// Flag only, identity missing: a misordered chain.
				req = req.WithContext(WithPublicAccess(req.Context()))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, w.Code)
			}
		})
	}
}

func TestMiddleware_EnforceScopeSkipsInternalRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newMiddlewareMocks(ctrl)

	handlerRan := false
	handler := mocks.middleware().EnforceScope()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
		w.WriteHeader(http.StatusOK)
	}))

	// No public access flag: the request came in through internal auth.
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("interviewId", "43")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if !handlerRan {
		t.Error("expected internal request to pass untouched")
	}
}

func TestMiddleware_EnforceScopeIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newMiddlewareMocks(ctrl)

	id := &Identity{Mode: AuthModeToken, InterviewID: 42, ContactEmail: "contact@example.com"}

	handler := mocks.middleware().EnforceScope()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, enforcerRequest(t, id, map[string]string{"interviewId": "42"}))
		if w.Code != http.StatusOK {
			t.Fatalf("run %d: expected 200, got %d", i, w.Code)
		}
	}
}
