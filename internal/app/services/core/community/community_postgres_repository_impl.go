package community

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/queries"
	"context"
	"database/sql"

	"go.uber.org/zap"
)

type communityPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewCommunityPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.CommunityRepository {
	return &communityPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *communityPostgresRepository) FindByPatientID(ctx context.Context, patientID int64) ([]models.CommunityMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("communityPostgresRepository.FindByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.GetCommunityMessagesByPatientID, patientID)
	if err != nil {
		r.Log.Error("communityPostgresRepository.FindByPatientID error querying messages",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	messages := make([]models.CommunityMessage, 0)
	for rows.Next() {
		var message models.CommunityMessage
		err := rows.Scan(
			&message.ID, &message.PatientID, &message.ProfessionalID,
			&message.ProfessionalName, &message.ProfessionalSpecialty,
			&message.Message, &message.CreatedAt,
		)
		if err != nil {
			r.Log.Error("communityPostgresRepository.FindByPatientID error scanning message",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	r.Log.Info("communityPostgresRepository.FindByPatientID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(messages)),
	)
	return messages, nil
}

func (r *communityPostgresRepository) Create(ctx context.Context, message *models.CommunityMessage) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("communityPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.InsertCommunityMessage,
		message.PatientID, message.ProfessionalID, message.Message,
	).Scan(&id)
	if err != nil {
		r.Log.Error("communityPostgresRepository.Create error inserting message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}
	return id, nil
}

func (r *communityPostgresRepository) Delete(ctx context.Context, messageID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("communityPostgresRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, messageID),
	)

	if _, err := r.DB.ExecContext(ctx, queries.DeleteCommunityMessageByID, messageID); err != nil {
		r.Log.Error("communityPostgresRepository.Delete error deleting message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}
