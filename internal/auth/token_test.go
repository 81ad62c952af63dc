package auth

import (
	"testing"
	"time"

	"github.com/franciscosanchezn/dental-scan-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret-key-32-characters"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 0)
	assert.Equal(t, DefaultTokenTTL, issuer.TTL())

	token, err := issuer.Issue(7, models.RoleTechnician)
	require.NoError(t, err)
	assert.Contains(t, token, ".") // JWT format

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.ID)
	assert.Equal(t, models.RoleTechnician, claims.Role)
	assert.True(t, claims.ExpiresAt.Time.Equal(claims.IssuedAt.Add(24*time.Hour)))
}

func TestVerifyExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	token, err := NewTokenIssuer(testSecret, 24*time.Hour).WithClock(fixedClock(issuedAt)).Issue(1, models.RoleDentist)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{name: "just issued", at: issuedAt, wantErr: false},
		{name: "one minute before expiry", at: issuedAt.Add(23*time.Hour + 59*time.Minute), wantErr: false},
		{name: "one minute after expiry", at: issuedAt.Add(24*time.Hour + time.Minute), wantErr: true},
		{name: "a week later", at: issuedAt.Add(7 * 24 * time.Hour), wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			verifier := NewTokenIssuer(testSecret, 24*time.Hour).WithClock(fixedClock(tt.at))
			claims, err := verifier.Verify(token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.RoleDentist, claims.Role)
		})
	}
}

func TestVerifyRejectsUntrustedTokens(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)

	otherSecret, err := NewTokenIssuer("another-secret", time.Hour).Issue(1, models.RoleDentist)
	require.NoError(t, err)

	unknownRole, err := issuer.Issue(1, models.Role("admin"))
	require.NoError(t, err)

	zeroID, err := issuer.Issue(0, models.RoleDentist)
	require.NoError(t, err)

	now := time.Now()
	registered := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{ID: 1, Role: models.RoleDentist, RegisteredClaims: registered}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ID: 1, Role: models.RoleDentist, RegisteredClaims: registered}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{ID: 1, Role: models.RoleDentist}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	testCases := map[string]string{
		"garbage":             "not-a-token",
		"empty":               "",
		"signed with another": otherSecret,
		"unknown role":        unknownRole,
		"zero user id":        zeroID,
		"hs512 algorithm":     hs512,
		"none algorithm":      none,
		"missing expiry":      noExpiry,
	}

	for name, token := range testCases {
		t.Run(name, func(t *testing.T) {
			claims, err := issuer.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
