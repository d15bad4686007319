package session

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"strings"

	"go.uber.org/zap"
)

type sessionService struct {
	TokenManager contracts.TokenManager
	Log          *zap.Logger
}

func NewSessionService(tokenManager contracts.TokenManager, logger *zap.Logger) contracts.SessionResolver {
	return &sessionService{
		TokenManager: tokenManager,
		Log:          logger,
	}
}

// Resolve turns a raw Authorization header into an Identity. The header must
// read exactly "Bearer <token>"; every other shape is unauthenticated.
func (svc *sessionService) Resolve(ctx context.Context, authorizationHeader string) (*models.Identity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	token, ok := extractBearerToken(authorizationHeader)
	if !ok {
		svc.Log.Info("sessionService.Resolve header missing or malformed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrTokenMissing(nil)
	}

	identity, err := svc.TokenManager.Decode(ctx, token)
	if err != nil {
		svc.Log.Info("sessionService.Resolve token rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	return identity, nil
}

func extractBearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(header, constvars.AuthorizationSchemeBearer)
	if !found || token == "" {
		return "", false
	}
	if strings.ContainsAny(token, " \t\r\n") {
		return "", false
	}
	return token, true
}
