// Copyright 2026 Vantage Analytics Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLoggerIsAlwaysAvailable(t *testing.T) {
	for _, l := range []*Logger{NewLogger("info"), NewNoopLogger()} {
		if l.Security() == nil {
			t.Fatal("expected a non-nil security logger")
		}
		l.Security().AuthSuccess("contact-1", "public_interview_access")
		l.Security().AuthzFailure("contact-1", "public_interview_access")
	}
}
