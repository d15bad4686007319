package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context, predicate models.Predicate) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID int64) (*models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) (int64, error)
	Update(ctx context.Context, appointmentID int64, updateData map[string]interface{}) error
	Delete(ctx context.Context, appointmentID int64) error
}

type AppointmentUsecase interface {
	FindAll(ctx context.Context, identity *models.Identity) ([]models.Appointment, error)
	FindByID(ctx context.Context, identity *models.Identity, appointmentID int64) (*models.Appointment, error)
	Create(ctx context.Context, identity *models.Identity, request *requests.CreateAppointment) (*responses.Created, error)
	Update(ctx context.Context, identity *models.Identity, appointmentID int64, request *requests.UpdateAppointment) error
	Delete(ctx context.Context, identity *models.Identity, appointmentID int64) error
}
