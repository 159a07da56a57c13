package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"gethired/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuerRoundTrip(t *testing.T) {
	t.Cleanup(restoreGlobals)
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return base }
	newTokenID = func() string { return "jti-1" }

	issuer := NewTokenIssuer("s3cret", 30*time.Minute)
	tok, err := issuer.Issue("user-1", 0)
	require.NoError(t, err)
	require.Equal(t, "jti-1", tok.TokenID)
	require.Equal(t, base.Add(30*time.Minute), tok.ExpiresAt)

	claims, err := issuer.Verify(tok.Token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "jti-1", claims.ID)
}

func TestTokenIssuerUniqueIDs(t *testing.T) {
	issuer := NewTokenIssuer("s3cret", time.Minute)
	a, err := issuer.Issue("user-1", 0)
	require.NoError(t, err)
	b, err := issuer.Issue("user-1", 0)
	require.NoError(t, err)
	require.NotEqual(t, a.TokenID, b.TokenID)
	require.NotEqual(t, a.Token, b.Token)
}

func TestTokenIssuerExpiry(t *testing.T) {
	t.Cleanup(restoreGlobals)
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return base }

	issuer := NewTokenIssuer("s3cret", 30*time.Minute)
	tok, err := issuer.Issue("user-1", time.Minute)
	require.NoError(t, err)

	timeNow = func() time.Time { return base.Add(59 * time.Second) }
	_, err = issuer.Verify(tok.Token)
	require.NoError(t, err)

	timeNow = func() time.Time { return base.Add(61 * time.Second) }
	_, err = issuer.Verify(tok.Token)
	require.ErrorIs(t, err, apperr.ErrTokenExpired)
}

func TestTokenIssuerRejects(t *testing.T) {
	issuer := NewTokenIssuer("s3cret", time.Minute)
	tok, err := issuer.Issue("user-1", 0)
	require.NoError(t, err)

	// 簽章被竄改
	parts := strings.Split(tok.Token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	_, err = issuer.Verify(parts[0] + "." + parts[1] + "." + string(sig))
	require.ErrorIs(t, err, apperr.ErrTokenInvalid)

	// 不同金鑰
	_, err = NewTokenIssuer("other", time.Minute).Verify(tok.Token)
	require.ErrorIs(t, err, apperr.ErrTokenInvalid)

	// 格式錯誤
	_, err = issuer.Verify("garbage")
	require.ErrorIs(t, err, apperr.ErrTokenInvalid)

	// alg=none
	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-1",
		ID:        "x",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Verify(unsigned)
	require.ErrorIs(t, err, apperr.ErrTokenInvalid)

	// 缺少 exp
	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject: "user-1",
		ID:      "x",
	}}).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	_, err = issuer.Verify(noExp)
	require.ErrorIs(t, err, apperr.ErrTokenInvalid)
}

func TestTokenIssuerConfigErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	_, err := NewTokenIssuer("", time.Minute).Issue("user-1", 0)
	require.Error(t, err)

	_, err = NewTokenIssuer("s", time.Minute).Issue("", 0)
	require.Error(t, err)

	_, err = NewTokenIssuer("", time.Minute).Verify("x.y.z")
	require.ErrorIs(t, err, apperr.ErrTokenInvalid)

	require.Equal(t, DefaultTokenTTL, NewTokenIssuer("s", 0).TTL())

	parseWithClaims = func(string, jwt.Claims, jwt.Keyfunc, ...jwt.ParserOption) (*jwt.Token, error) {
		return nil, errors.New("parse")
	}
	_, err = NewTokenIssuer("s", time.Minute).Verify("x.y.z")
	require.ErrorIs(t, err, apperr.ErrTokenInvalid)
}
