package utils

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
)

func SetIdentityToContext(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_IDENTITY_KEY, identity)
}

func GetIdentityFromContext(ctx context.Context) (*models.Identity, error) {
	identity, ok := ctx.Value(constvars.CONTEXT_IDENTITY_KEY).(*models.Identity)
	if !ok || identity == nil {
		return nil, exceptions.ErrMissingIdentity(nil)
	}
	return identity, nil
}
