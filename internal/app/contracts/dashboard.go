package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/responses"
	"context"
)

type DashboardRepository interface {
	Count(ctx context.Context, query string, hasWhere bool, predicate models.Predicate, args ...interface{}) (int64, error)
	FindUpcomingAppointments(ctx context.Context, predicate models.Predicate, limit int) ([]responses.UpcomingAppointment, error)
}

type DashboardUsecase interface {
	Stats(ctx context.Context, identity *models.Identity) (*responses.DashboardStats, error)
	UpcomingAppointments(ctx context.Context, identity *models.Identity) ([]responses.UpcomingAppointment, error)
	Alerts(ctx context.Context, identity *models.Identity) ([]responses.Alert, error)
}
