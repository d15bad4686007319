package middlewares

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	SessionResolver contracts.SessionResolver
	InternalConfig  *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionResolver contracts.SessionResolver, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:             logger,
		SessionResolver: sessionResolver,
		InternalConfig:  internalConfig,
	}
}
