package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gethired/internal/apperr"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
		code    string
		bearer  bool
	}{
		{"duplicate", apperr.ErrDuplicateEmail, http.StatusBadRequest, "Email already registered", "DuplicateEmail", false},
		{"weak", apperr.ErrWeakPassword, http.StatusBadRequest, "Password must be at least 6 characters long", "WeakPassword", false},
		{"credentials", apperr.ErrInvalidCredentials, http.StatusUnauthorized, "Incorrect email or password", "InvalidCredentials", false},
		{"disabled", apperr.ErrAccountDisabled, http.StatusUnauthorized, "Account is deactivated", "AccountDisabled", false},
		{"expired", fmt.Errorf("%w: %w", apperr.ErrUnauthorized, apperr.ErrTokenExpired), http.StatusUnauthorized, "Could not validate credentials", "Unauthorized", true},
		{"internal", errors.New("pq: connection refused"), http.StatusInternalServerError, "internal server error", "InternalError", false},
		{"echo", echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"), http.StatusRequestEntityTooLarge, "Request Entity Too Large", "", false},
	}

	handler := ErrorHandler(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, rec := newContext("")
			handler(tc.err, ctx)
			require.Equal(t, tc.status, rec.Code)
			require.Contains(t, rec.Body.String(), tc.message)
			if tc.code != "" {
				require.Contains(t, rec.Body.String(), `"code":"`+tc.code+`"`)
			}
			require.NotContains(t, rec.Body.String(), "connection refused")
			if tc.bearer {
				require.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
			} else {
				require.Empty(t, rec.Header().Get(echo.HeaderWWWAuthenticate))
			}
		})
	}
}

func TestErrorHandlerHeadAndCommitted(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodHead, "/", nil)
	rec := httptest.NewRecorder()
	ErrorHandler(nil)(apperr.ErrDuplicateEmail, e.NewContext(req, rec))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, rec.Body.String())

	ctx, rec := newContext("")
	require.NoError(t, ctx.String(http.StatusOK, "done"))
	ErrorHandler(nil)(apperr.ErrDuplicateEmail, ctx)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "done", rec.Body.String())
}
