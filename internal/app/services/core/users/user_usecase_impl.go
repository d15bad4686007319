package users

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/roles"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

func (uc *userUsecase) FindAll(ctx context.Context, identity *models.Identity) ([]responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationUserList); err != nil {
		return nil, err
	}

	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(users)),
	)
	return responses.NewUsers(users), nil
}

func (uc *userUsecase) FindByID(ctx context.Context, identity *models.Identity, userID int64) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	if err := roles.Require(identity, roles.OperationUserRead); err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.EntityUser, userID)
	}
	return responses.NewUser(user), nil
}

func (uc *userUsecase) Create(ctx context.Context, identity *models.Identity, request *requests.CreateUser) (*responses.Created, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationUserCreate); err != nil {
		return nil, err
	}

	taken, err := uc.UserRepository.EmailTakenByOther(ctx, request.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, exceptions.ErrEmailAlreadyExist(nil, request.Email)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	id, err := uc.UserRepository.Create(ctx, &models.User{
		Name:      request.Name,
		Email:     request.Email,
		Password:  hashedPassword,
		Type:      request.Type,
		Phone:     request.Phone,
		Specialty: request.Specialty,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, id),
	)
	return &responses.Created{ID: id}, nil
}

// Update edits a user. Anyone may edit their own profile; editing others
// needs a staff role. A type sent by a non-staff identity is ignored.
func (uc *userUsecase) Update(ctx context.Context, identity *models.Identity, userID int64, request *requests.UpdateUser) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	if identity == nil {
		return exceptions.ErrMissingIdentity(nil)
	}
	operation := roles.OperationSelfProfile
	if identity.ID != userID {
		operation = roles.OperationUserUpdateOthers
	}
	if err := roles.Require(identity, operation); err != nil {
		return err
	}

	existing, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrRecordNotFound(nil, constvars.EntityUser, userID)
	}

	updateData := make(map[string]interface{})
	if request.Name != nil {
		updateData["name"] = *request.Name
	}
	if request.Email != nil {
		taken, err := uc.UserRepository.EmailTakenByOther(ctx, *request.Email, userID)
		if err != nil {
			return err
		}
		if taken {
			return exceptions.ErrEmailAlreadyExist(nil, *request.Email)
		}
		updateData["email"] = *request.Email
	}
	if request.Password != nil && *request.Password != "" {
		hashedPassword, err := utils.HashPassword(*request.Password)
		if err != nil {
			return exceptions.ErrHashPassword(err)
		}
		updateData["password"] = hashedPassword
	}
	if request.Type != nil && roles.Can(identity, roles.OperationUserChangeType) {
		updateData["type"] = *request.Type
	}
	if request.Phone != nil {
		updateData["phone"] = *request.Phone
	}
	if request.Specialty != nil {
		updateData["specialty"] = *request.Specialty
	}

	if len(updateData) == 0 {
		return exceptions.ErrNoFieldsToUpdate(nil)
	}

	if err := uc.UserRepository.Update(ctx, userID, updateData); err != nil {
		return err
	}

	uc.Log.Info("userUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingFieldsKey, len(updateData)),
	)
	return nil
}

func (uc *userUsecase) Delete(ctx context.Context, identity *models.Identity, userID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	if err := roles.Require(identity, roles.OperationUserDelete); err != nil {
		return err
	}

	existing, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrRecordNotFound(nil, constvars.EntityUser, userID)
	}

	if err := uc.UserRepository.Delete(ctx, userID); err != nil {
		return err
	}

	uc.Log.Info("userUsecase.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
