package scopes

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"
)

type ownershipPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewOwnershipPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.OwnershipRepository {
	return &ownershipPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

// FindOwner returns nil when the record does not exist and an Ownership with
// a nil OwnerID when it exists without an owning professional.
func (repo *ownershipPostgresRepository) FindOwner(ctx context.Context, family models.ResourceFamily, id int64) (*models.Ownership, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("ownershipPostgresRepository.FindOwner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFamilyKey, family.Name),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)

	var ownerID sql.NullInt64
	err := repo.DB.QueryRowContext(ctx, family.OwnerQuery, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		repo.Log.Error("ownershipPostgresRepository.FindOwner error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	ownership := &models.Ownership{}
	if ownerID.Valid {
		owner := ownerID.Int64
		ownership.OwnerID = &owner
	}
	return ownership, nil
}
