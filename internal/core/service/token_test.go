package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailnet/pos-admin/internal/core/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "pos-admin", time.Hour)

	token, err := tm.Issue(domain.SessionUser{ID: 42, Name: "Rina", Role: domain.PrivilegedRoleLabel})
	require.NoError(t, err)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "Rina", claims.Name)
	assert.Equal(t, domain.PrivilegedRoleLabel, claims.Role)
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	issued := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	tm := NewTokenManager("secret", "", 0)
	tm.now = fixedClock(issued)

	token, err := tm.Issue(domain.SessionUser{ID: 1})
	require.NoError(t, err)

	tm.now = fixedClock(issued.Add(DefaultTokenTTL - time.Minute))
	_, err = tm.Verify(token)
	assert.NoError(t, err)

	tm.now = fixedClock(issued.Add(DefaultTokenTTL + time.Minute))
	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_RejectsTamperedTokens(t *testing.T) {
	tm := NewTokenManager("secret", "pos-admin", time.Hour)
	valid, err := tm.Issue(domain.SessionUser{ID: 1})
	require.NoError(t, err)

	otherSecret, err := NewTokenManager("other", "pos-admin", time.Hour).Issue(domain.SessionUser{ID: 1})
	require.NoError(t, err)

	otherIssuer, err := NewTokenManager("secret", "someone-else", time.Hour).Issue(domain.SessionUser{ID: 1})
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "1",
		Issuer:    "pos-admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "1",
		Issuer:  "pos-admin",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "rina",
		Issuer:    "pos-admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	cases := map[string]string{
		"garbage":      "not-a-token",
		"truncated":    valid[:len(valid)-4],
		"other secret": otherSecret,
		"other issuer": otherIssuer,
		"hs512":        hs512,
		"no expiry":    noExpiry,
		"bad subject":  badSubject,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tm.Verify(token)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}
