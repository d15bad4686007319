package jwtmanager

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// ErrInvalidToken is the single outcome of every failed decode. The precise
// reason is only logged.
var ErrInvalidToken = errors.New("invalid token")

const defaultTTL = 24 * time.Hour

// JWTManager issues and decodes HS256 identity tokens.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type identityClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Option customizes a JWTManager.
type Option func(*JWTManager)

// WithClock replaces the wall clock used for iat, exp and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(j *JWTManager) {
		j.now = now
	}
}

// NewJWTManager builds the codec from InternalConfig.JWT. An empty secret is
// a configuration error.
func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger, opts ...Option) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	ttl := defaultTTL
	if cfg.JWT.ExpTimeInHour > 0 {
		ttl = time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour
	}

	jm := &JWTManager{
		log:    log,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(jm)
	}
	return jm, nil
}

// Issue signs a token for identity valid from now until now + ttl.
func (j *JWTManager) Issue(ctx context.Context, identity *models.Identity) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Info("JWTManager.Issue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if identity == nil || identity.ID <= 0 || !utils.IsValidRole(identity.Role) {
		return "", fmt.Errorf("identity is incomplete")
	}

	issuedAt := j.now().Truncate(time.Second)
	claims := identityClaims{
		Email: identity.Email,
		Role:  identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.ID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		j.log.Error("JWTManager.Issue error signing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	j.log.Info("JWTManager.Issue succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingIdentityIDKey, identity.ID),
	)
	return signed, nil
}

// Decode verifies signature, structure and expiry and returns the identity.
// A token is valid only while now < exp.
func (j *JWTManager) Decode(ctx context.Context, tokenString string) (*models.Identity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	identity, reason := j.decode(tokenString)
	if reason != nil {
		j.log.Debug("JWTManager.Decode rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingReasonKey, reason.Error()),
		)
		return nil, ErrInvalidToken
	}
	return identity, nil
}

func (j *JWTManager) decode(tokenString string) (*models.Identity, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	claims := &identityClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("signature not valid")
	}

	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, errors.New("iat or exp missing")
	}
	if !claims.ExpiresAt.Time.After(claims.IssuedAt.Time) {
		return nil, errors.New("exp not after iat")
	}
	if !j.now().Before(claims.ExpiresAt.Time) {
		return nil, errors.New("token expired")
	}

	subjectID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || subjectID <= 0 {
		return nil, fmt.Errorf("subject %q is not a user id", claims.Subject)
	}
	if claims.Email == "" {
		return nil, errors.New("email missing")
	}
	if !utils.IsValidRole(claims.Role) {
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}

	return &models.Identity{
		ID:    subjectID,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
