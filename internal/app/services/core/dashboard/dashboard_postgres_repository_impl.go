package dashboard

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/queries"
	"clinic-service/internal/pkg/utils"
	"context"
	"database/sql"
	"strconv"

	"go.uber.org/zap"
)

type dashboardPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewDashboardPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.DashboardRepository {
	return &dashboardPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

// Count runs a COUNT query narrowed by predicate. args are the query's own
// placeholders, numbered before the predicate's.
func (r *dashboardPostgresRepository) Count(ctx context.Context, query string, hasWhere bool, predicate models.Predicate, args ...interface{}) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	query, args = utils.ApplyPredicate(query, hasWhere, predicate, args)
	var count int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		r.Log.Error("dashboardPostgresRepository.Count error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueryKey, query),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}

func (r *dashboardPostgresRepository) FindUpcomingAppointments(ctx context.Context, predicate models.Predicate, limit int) ([]responses.UpcomingAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("dashboardPostgresRepository.FindUpcomingAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query, args := utils.ApplyPredicate(queries.GetUpcomingAppointments, true, predicate, nil)
	query += queries.GetUpcomingAppointmentsOrderBy + strconv.Itoa(limit)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.Log.Error("dashboardPostgresRepository.FindUpcomingAppointments error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	appointments := make([]responses.UpcomingAppointment, 0)
	for rows.Next() {
		var appointment responses.UpcomingAppointment
		err := rows.Scan(
			&appointment.ID, &appointment.PatientName, &appointment.ProfessionalName,
			&appointment.TherapyType, &appointment.Date, &appointment.Time, &appointment.Status,
		)
		if err != nil {
			r.Log.Error("dashboardPostgresRepository.FindUpcomingAppointments error scanning row",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		appointments = append(appointments, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return appointments, nil
}
