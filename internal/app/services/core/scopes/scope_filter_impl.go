package scopes

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/roles"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"

	"go.uber.org/zap"
)

type scopeFilter struct {
	Ownership contracts.OwnershipRepository
	Log       *zap.Logger
}

func NewScopeFilter(ownership contracts.OwnershipRepository, logger *zap.Logger) contracts.ScopeFilter {
	return &scopeFilter{
		Ownership: ownership,
		Log:       logger,
	}
}

// Narrow returns the list predicate for the identity. Staff get an empty
// predicate; professionals are restricted to the rows they own.
func (f *scopeFilter) Narrow(identity *models.Identity, family models.ResourceFamily) models.Predicate {
	if roles.IsStaff(identity) {
		return models.Predicate{}
	}
	predicate := models.Predicate{
		Column:         family.ScopeColumn,
		NullableColumn: family.NullableColumn,
		OwnerID:        -1,
	}
	if identity != nil {
		predicate.OwnerID = identity.ID
	}
	return predicate
}

// CheckRecord resolves the owner of one record and decides access to it.
// Existence is checked before the role so that a missing id is always 404.
func (f *scopeFilter) CheckRecord(ctx context.Context, identity *models.Identity, family models.ResourceFamily, id int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	ownership, err := f.Ownership.FindOwner(ctx, family, id)
	if err != nil {
		return err
	}
	if ownership == nil {
		return exceptions.ErrRecordNotFound(nil, family.Name, id)
	}
	if roles.IsStaff(identity) {
		return nil
	}
	if identity == nil {
		return exceptions.ErrMissingIdentity(nil)
	}

	if ownership.OwnerID == nil {
		if family.UnownedVisible {
			return nil
		}
	} else if *ownership.OwnerID == identity.ID {
		return nil
	}

	f.Log.Info("scopeFilter.CheckRecord denied",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFamilyKey, family.Name),
		zap.Int64(constvars.LoggingRecordIDKey, id),
		zap.Int64(constvars.LoggingIdentityIDKey, identity.ID),
	)
	return exceptions.ErrRecordOutOfScope(nil, family.Name, id)
}

// CheckPatient guards operations that attach data to a patient. A
// professional gets 403 both for a foreign patient and for an id that does
// not exist; staff get 404 for a missing id.
func (f *scopeFilter) CheckPatient(ctx context.Context, identity *models.Identity, patientID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if identity == nil {
		return exceptions.ErrMissingIdentity(nil)
	}

	ownership, err := f.Ownership.FindOwner(ctx, Patients, patientID)
	if err != nil {
		return err
	}

	if roles.IsStaff(identity) {
		if ownership == nil {
			return exceptions.ErrRecordNotFound(nil, Patients.Name, patientID)
		}
		return nil
	}

	if ownership != nil && ownership.OwnerID != nil && *ownership.OwnerID == identity.ID {
		return nil
	}

	f.Log.Info("scopeFilter.CheckPatient denied",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
		zap.Int64(constvars.LoggingIdentityIDKey, identity.ID),
	)
	return exceptions.ErrPatientOutOfScope(nil, patientID, identity.ID)
}

// ResolveOwner picks the owning professional of a record being created.
func (f *scopeFilter) ResolveOwner(identity *models.Identity, requestedOwnerID *int64) int64 {
	if identity == nil {
		return 0
	}
	if !roles.IsStaff(identity) {
		return identity.ID
	}
	if requestedOwnerID != nil && *requestedOwnerID > 0 {
		return *requestedOwnerID
	}
	return identity.ID
}

// CheckAssignee verifies that an owner picked by staff is an existing
// professional. Owners that ResolveOwner ignores are not checked.
func (f *scopeFilter) CheckAssignee(ctx context.Context, identity *models.Identity, requestedOwnerID *int64) error {
	if !roles.IsStaff(identity) || requestedOwnerID == nil || *requestedOwnerID <= 0 {
		return nil
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ownership, err := f.Ownership.FindOwner(ctx, Professionals, *requestedOwnerID)
	if err != nil {
		return err
	}
	if ownership == nil {
		f.Log.Info("scopeFilter.CheckAssignee rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingIdentityIDKey, identity.ID),
			zap.Int64(constvars.LoggingRecordIDKey, *requestedOwnerID),
		)
		return exceptions.ErrInvalidAssignee(nil, *requestedOwnerID)
	}
	return nil
}
