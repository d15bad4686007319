package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, userID int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	EmailTakenByOther(ctx context.Context, email string, excludeUserID int64) (bool, error)
	Create(ctx context.Context, user *models.User) (int64, error)
	Update(ctx context.Context, userID int64, updateData map[string]interface{}) error
	Delete(ctx context.Context, userID int64) error
}

type UserUsecase interface {
	FindAll(ctx context.Context, identity *models.Identity) ([]responses.User, error)
	FindByID(ctx context.Context, identity *models.Identity, userID int64) (*responses.User, error)
	Create(ctx context.Context, identity *models.Identity, request *requests.CreateUser) (*responses.Created, error)
	Update(ctx context.Context, identity *models.Identity, userID int64, request *requests.UpdateUser) error
	Delete(ctx context.Context, identity *models.Identity, userID int64) error
}
