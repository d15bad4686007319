package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type TokenManager interface {
	Issue(ctx context.Context, identity *models.Identity) (string, error)
	Decode(ctx context.Context, token string) (*models.Identity, error)
}

type SessionResolver interface {
	Resolve(ctx context.Context, authorizationHeader string) (*models.Identity, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login, clientIP string) (*responses.Login, error)
	Me(ctx context.Context, identity *models.Identity) (*responses.User, error)
}

type LoginLimiter interface {
	Allow(ctx context.Context, subject string) (allowed bool, retryAfterSecs int, err error)
}
