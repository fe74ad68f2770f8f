package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assurscore/domain/core"
)

func TestFromDomain(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code string
	}{
		{"not found", core.ErrSessionNotFound, CodeNotFound},
		{"validation", core.ErrMissingAnswer, CodeValidationError},
		{"invalid state", core.ErrSessionNotActive, CodeInvalidState},
		{"forbidden", core.NewForbiddenError("session", "s1"), CodeForbidden},
		{"unknown", stderrors.New("boom"), CodeInternalError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := FromDomain(tc.err)
			require.NotNil(t, appErr)
			assert.Equal(t, tc.code, appErr.Code)
			assert.ErrorIs(t, appErr, tc.err, "cause must stay attached")
		})
	}

	assert.Nil(t, FromDomain(nil))
}

func TestFromDomain_SanitizesMessages(t *testing.T) {
	appErr := FromDomain(core.NewForbiddenError("session", "secret-id"))
	assert.Equal(t, "access denied", appErr.Message)
	assert.NotContains(t, appErr.Message, "secret-id")

	appErr = FromDomain(stderrors.New("pq: connection refused on 10.0.0.3"))
	assert.Equal(t, "internal error", appErr.Message)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	inner := New(CodeDatabaseError, "query failed")
	wrapped := Wrap(inner, "saving session")

	assert.Equal(t, CodeDatabaseError, GetCode(wrapped), "wrapping keeps the original code")
	assert.ErrorIs(t, wrapped, inner)

	plain := Wrap(stderrors.New("boom"), "loading config")
	assert.Equal(t, CodeInternalError, GetCode(plain))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("naked")))
}
