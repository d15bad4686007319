package dashboard

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/roles"
	"clinic-service/internal/app/services/core/scopes"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/queries"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	DashboardRepository contracts.DashboardRepository
	ScopeFilter         contracts.ScopeFilter
	Log                 *zap.Logger
	now                 func() time.Time
}

func NewDashboardUsecase(dashboardRepository contracts.DashboardRepository, scopeFilter contracts.ScopeFilter, logger *zap.Logger) contracts.DashboardUsecase {
	return &dashboardUsecase{
		DashboardRepository: dashboardRepository,
		ScopeFilter:         scopeFilter,
		Log:                 logger,
		now:                 time.Now,
	}
}

// Stats counts clinic-wide for staff and the caller's own records for a
// professional.
func (uc *dashboardUsecase) Stats(ctx context.Context, identity *models.Identity) (*responses.DashboardStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.Stats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationDashboardRead); err != nil {
		return nil, err
	}

	patients := uc.ScopeFilter.Narrow(identity, scopes.Patients)
	appointments := uc.ScopeFilter.Narrow(identity, scopes.Appointments)
	evolutions := uc.ScopeFilter.Narrow(identity, scopes.Evolutions)

	var (
		stats responses.DashboardStats
		err   error
	)
	if stats.TotalPatients, err = uc.DashboardRepository.Count(ctx, queries.CountPatients, false, patients); err != nil {
		return nil, err
	}
	if stats.TotalAppointments, err = uc.DashboardRepository.Count(ctx, queries.CountAppointments, false, appointments); err != nil {
		return nil, err
	}
	if stats.TotalEvolutions, err = uc.DashboardRepository.Count(ctx, queries.CountEvolutions, false, evolutions); err != nil {
		return nil, err
	}
	if stats.CompletedAppointments, err = uc.DashboardRepository.Count(ctx, queries.CountCompletedAppointments, true, appointments); err != nil {
		return nil, err
	}

	uc.Log.Info("dashboardUsecase.Stats succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &stats, nil
}

func (uc *dashboardUsecase) UpcomingAppointments(ctx context.Context, identity *models.Identity) ([]responses.UpcomingAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.UpcomingAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationDashboardRead); err != nil {
		return nil, err
	}
	return uc.DashboardRepository.FindUpcomingAppointments(ctx,
		uc.ScopeFilter.Narrow(identity, scopes.Appointments), constvars.DashboardUpcomingLimit)
}

// Alerts reports today's scheduled appointments for everyone. Professionals
// also get patients without a recent evolution, staff get new patients.
func (uc *dashboardUsecase) Alerts(ctx context.Context, identity *models.Identity) ([]responses.Alert, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.Alerts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := roles.Require(identity, roles.OperationDashboardRead); err != nil {
		return nil, err
	}

	now := uc.now()
	alerts := make([]responses.Alert, 0, 2)
	push := func(alertType, message string) {
		alerts = append(alerts, responses.Alert{
			ID:        len(alerts) + 1,
			Type:      alertType,
			Message:   message,
			CreatedAt: now,
		})
	}

	appointments := uc.ScopeFilter.Narrow(identity, scopes.Appointments)
	today, err := uc.DashboardRepository.Count(ctx, queries.CountTodayScheduledAppointments, true, appointments)
	if err != nil {
		return nil, err
	}

	if roles.IsStaff(identity) {
		if today > 0 {
			push(constvars.AlertTypeInfo, fmt.Sprintf(constvars.AlertTodayAppointments, today))
		}
		recent, err := uc.DashboardRepository.Count(ctx, queries.CountPatientsCreatedSince, true,
			models.Predicate{}, constvars.DashboardRecentPatientDays)
		if err != nil {
			return nil, err
		}
		if recent > 0 {
			push(constvars.AlertTypeInfo, fmt.Sprintf(constvars.AlertRecentPatients, recent))
		}
		return alerts, nil
	}

	if today > 0 {
		push(constvars.AlertTypeInfo, fmt.Sprintf(constvars.AlertOwnTodayAppointments, today))
	}
	inactive, err := uc.DashboardRepository.Count(ctx, queries.CountPatientsWithoutEvolution, true,
		uc.ScopeFilter.Narrow(identity, scopes.Patients), constvars.DashboardInactivePatientDays)
	if err != nil {
		return nil, err
	}
	if inactive > 0 {
		push(constvars.AlertTypeWarning, fmt.Sprintf(constvars.AlertInactivePatients, inactive, constvars.DashboardInactivePatientDays))
	}
	return alerts, nil
}
