package contracts

import (
	"clinic-service/internal/app/models"
	"context"
)

type ScopeFilter interface {
	Narrow(identity *models.Identity, family models.ResourceFamily) models.Predicate
	CheckRecord(ctx context.Context, identity *models.Identity, family models.ResourceFamily, id int64) error
	CheckPatient(ctx context.Context, identity *models.Identity, patientID int64) error
	ResolveOwner(identity *models.Identity, requestedOwnerID *int64) int64
	CheckAssignee(ctx context.Context, identity *models.Identity, requestedOwnerID *int64) error
}

type OwnershipRepository interface {
	FindOwner(ctx context.Context, family models.ResourceFamily, id int64) (*models.Ownership, error)
}
