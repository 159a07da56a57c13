package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gethired/internal/apperr"
	"gethired/internal/model"
	"gethired/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	AuthenticateFn func(ctx context.Context, token string) (*service.Principal, error)
}

func (f *fakeAuthenticator) Authenticate(ctx context.Context, token string) (*service.Principal, error) {
	if f.AuthenticateFn != nil {
		return f.AuthenticateFn(ctx, token)
	}
	panic("unexpected Authenticate")
}

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func acceptGood() *fakeAuthenticator {
	return &fakeAuthenticator{AuthenticateFn: func(_ context.Context, token string) (*service.Principal, error) {
		if token == "good" {
			return &service.Principal{User: &model.User{ID: "u1"}, TokenID: "t1"}, nil
		}
		return nil, apperr.ErrUnauthorized
	}}
}

func TestBearerToken(t *testing.T) {
	for _, h := range []string{"", "BadHeader", "Basic abc", "Bearer ", "Bearer    "} {
		ctx, _ := newContext(h)
		_, err := bearerToken(ctx)
		require.ErrorIs(t, err, apperr.ErrUnauthorized, h)
	}

	ctx, _ := newContext("bearer tok")
	tok, err := bearerToken(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok", tok)
}

func TestRequireAuth(t *testing.T) {
	a := acceptGood()

	ctx, rec := newContext("Bearer good")
	called := false
	h := RequireAuth(a)(func(c echo.Context) error {
		called = true
		require.Equal(t, "u1", PrincipalFrom(c).User.ID)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, h(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, header := range []string{"", "Bearer bad"} {
		ctx, _ = newContext(header)
		called = false
		err := h(ctx)
		require.ErrorIs(t, err, apperr.ErrUnauthorized)
		require.False(t, called)
	}
}

func TestOptionalAuth(t *testing.T) {
	a := acceptGood()
	var got *service.Principal
	h := OptionalAuth(a)(func(c echo.Context) error {
		got = PrincipalFrom(c)
		return nil
	})

	ctx, _ := newContext("Bearer good")
	require.NoError(t, h(ctx))
	require.NotNil(t, got)

	ctx, _ = newContext("Bearer bad")
	require.NoError(t, h(ctx))
	require.Nil(t, got)

	ctx, _ = newContext("")
	require.NoError(t, h(ctx))
	require.Nil(t, got)

	// 未設定 Authenticate 時不應被呼叫
	ctx, _ = newContext("")
	require.NoError(t, OptionalAuth(&fakeAuthenticator{})(func(echo.Context) error { return nil })(ctx))
}

func TestPrincipalFromWrongType(t *testing.T) {
	ctx, _ := newContext("")
	ctx.Set(ContextPrincipalKey, errors.New("not a principal"))
	require.Nil(t, PrincipalFrom(ctx))
}
