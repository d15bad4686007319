package auth

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"strings"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	TokenManager   contracts.TokenManager
	LoginLimiter   contracts.LoginLimiter
	Log            *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	tokenManager contracts.TokenManager,
	loginLimiter contracts.LoginLimiter,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		TokenManager:   tokenManager,
		LoginLimiter:   loginLimiter,
		Log:            logger,
	}
}

// Login checks the credentials and issues a token. Unknown email and wrong
// password answer with the same error.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login, clientIP string) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	email := strings.TrimSpace(request.Email)
	if email == "" || request.Password == "" {
		return nil, exceptions.ErrEmailPasswordRequired(nil)
	}

	subject := strings.ToLower(email) + "|" + clientIP
	allowed, retryAfter, err := uc.LoginLimiter.Allow(ctx, subject)
	if err != nil {
		return nil, err
	}
	if !allowed {
		uc.Log.Warn("authUsecase.Login throttled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, email),
		)
		return nil, exceptions.ErrLoginThrottled(nil, subject, retryAfter)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.Log.Info("authUsecase.Login invalid credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := uc.TokenManager.Issue(ctx, &models.Identity{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Type,
	})
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingIdentityRoleKey, user.Type),
	)
	return &responses.Login{
		User:  responses.NewUser(user),
		Token: token,
	}, nil
}

func (uc *authUsecase) Me(ctx context.Context, identity *models.Identity) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Me called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if identity == nil {
		return nil, exceptions.ErrMissingIdentity(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.EntityUser, identity.ID)
	}
	return responses.NewUser(user), nil
}
