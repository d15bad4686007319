package jwtmanager

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret-for-codec"

func newTestManager(t *testing.T, now func() time.Time) *JWTManager {
	t.Helper()
	cfg := &config.InternalConfig{JWT: config.AppJWT{Secret: testSecret, ExpTimeInHour: 24}}
	jm, err := NewJWTManager(cfg, zap.NewNop(), WithClock(now))
	require.NoError(t, err)
	return jm
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func signRaw(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestNewJWTManager(t *testing.T) {
	t.Run("Empty secret is rejected", func(t *testing.T) {
		_, err := NewJWTManager(&config.InternalConfig{}, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("Zero lifetime falls back to 24 hours", func(t *testing.T) {
		jm, err := NewJWTManager(&config.InternalConfig{JWT: config.AppJWT{Secret: "s"}}, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, jm.ttl)
	})
}

func TestJWTManager_RoundTrip(t *testing.T) {
	ctx := context.Background()
	issuedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	issuer := newTestManager(t, fixedClock(issuedAt))

	for _, role := range []string{constvars.RoleAdmin, constvars.RoleAssistant, constvars.RoleProfessional} {
		t.Run("Decode returns the issued identity for role "+role, func(t *testing.T) {
			identity := &models.Identity{ID: 42, Email: "someone@clinic.test", Role: role}
			token, err := issuer.Issue(ctx, identity)
			require.NoError(t, err)

			decoder := newTestManager(t, fixedClock(issuedAt.Add(23*time.Hour)))
			decoded, err := decoder.Decode(ctx, token)
			require.NoError(t, err)
			assert.Equal(t, identity, decoded)
		})
	}
}

func TestJWTManager_Expiry(t *testing.T) {
	ctx := context.Background()
	issuedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	identity := &models.Identity{ID: 7, Email: "pro@clinic.test", Role: constvars.RoleProfessional}

	token, err := newTestManager(t, fixedClock(issuedAt)).Issue(ctx, identity)
	require.NoError(t, err)

	t.Run("Valid one second before expiry", func(t *testing.T) {
		decoded, err := newTestManager(t, fixedClock(issuedAt.Add(24*time.Hour-time.Second))).Decode(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, identity.ID, decoded.ID)
	})

	t.Run("Invalid exactly at expiry", func(t *testing.T) {
		_, err := newTestManager(t, fixedClock(issuedAt.Add(24*time.Hour))).Decode(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Invalid after expiry", func(t *testing.T) {
		_, err := newTestManager(t, fixedClock(issuedAt.Add(25*time.Hour))).Decode(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestJWTManager_Tampering(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	jm := newTestManager(t, fixedClock(now))
	token, err := jm.Issue(ctx, &models.Identity{ID: 3, Email: "a@clinic.test", Role: constvars.RoleAssistant})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	flip := func(segment string) string {
		middle := len(segment) / 2
		replacement := byte('A')
		if segment[middle] == 'A' {
			replacement = 'B'
		}
		return segment[:middle] + string(replacement) + segment[middle+1:]
	}

	t.Run("Altered payload is rejected", func(t *testing.T) {
		_, err := jm.Decode(ctx, parts[0]+"."+flip(parts[1])+"."+parts[2])
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Altered signature is rejected", func(t *testing.T) {
		_, err := jm.Decode(ctx, parts[0]+"."+parts[1]+"."+flip(parts[2]))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token signed with another secret is rejected", func(t *testing.T) {
		other, err := NewJWTManager(&config.InternalConfig{JWT: config.AppJWT{Secret: "other-secret"}}, zap.NewNop(), WithClock(fixedClock(now)))
		require.NoError(t, err)
		foreign, err := other.Issue(ctx, &models.Identity{ID: 3, Email: "a@clinic.test", Role: constvars.RoleAdmin})
		require.NoError(t, err)

		_, err = jm.Decode(ctx, foreign)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage is rejected", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "a.b.c", token + "x"} {
			_, err := jm.Decode(ctx, raw)
			assert.ErrorIs(t, err, ErrInvalidToken, raw)
		}
	})
}

func TestJWTManager_ClaimShape(t *testing.T) {
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)
	jm := newTestManager(t, fixedClock(now))

	valid := func(mutate func(c *identityClaims)) *identityClaims {
		c := &identityClaims{
			Email: "x@clinic.test",
			Role:  constvars.RoleProfessional,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   strconv.Itoa(9),
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
		mutate(c)
		return c
	}

	t.Run("Hand-signed well-formed token is accepted", func(t *testing.T) {
		token := signRaw(t, jwt.SigningMethodHS256, []byte(testSecret), valid(func(c *identityClaims) {}))
		identity, err := jm.Decode(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, int64(9), identity.ID)
	})

	cases := map[string]func(c *identityClaims){
		"Unknown role is rejected":        func(c *identityClaims) { c.Role = "superuser" },
		"Missing role is rejected":        func(c *identityClaims) { c.Role = "" },
		"Non numeric subject is rejected": func(c *identityClaims) { c.Subject = "abc" },
		"Missing email is rejected":       func(c *identityClaims) { c.Email = "" },
		"Missing expiry is rejected":      func(c *identityClaims) { c.ExpiresAt = nil },
		"Missing issued at is rejected":   func(c *identityClaims) { c.IssuedAt = nil },
		"Expiry before issue is rejected": func(c *identityClaims) { c.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Hour)) },
		"Zero subject id is rejected":     func(c *identityClaims) { c.Subject = "0" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			token := signRaw(t, jwt.SigningMethodHS256, []byte(testSecret), valid(mutate))
			_, err := jm.Decode(ctx, token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	t.Run("Other HMAC algorithm is rejected", func(t *testing.T) {
		token := signRaw(t, jwt.SigningMethodHS512, []byte(testSecret), valid(func(c *identityClaims) {}))
		_, err := jm.Decode(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Unsigned token is rejected", func(t *testing.T) {
		token := signRaw(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid(func(c *identityClaims) {}))
		_, err := jm.Decode(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestJWTManager_IssueRejectsIncompleteIdentity(t *testing.T) {
	jm := newTestManager(t, time.Now)
	_, err := jm.Issue(context.Background(), &models.Identity{ID: 1, Email: "x@clinic.test", Role: "guest"})
	assert.Error(t, err)

	_, err = jm.Issue(context.Background(), nil)
	assert.Error(t, err)
}
