package roles

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityWithRole(role string) *models.Identity {
	return &models.Identity{ID: 1, Email: role + "@clinic.test", Role: role}
}

func TestAllows(t *testing.T) {
	assert.True(t, Allows(constvars.RoleAdmin, staff))
	assert.False(t, Allows(constvars.RoleProfessional, staff))
	assert.False(t, Allows("", allRoles))
	assert.False(t, Allows("superuser", allRoles))
	assert.False(t, Allows(constvars.RoleAdmin, nil))
}

func TestPermissionsTable(t *testing.T) {
	tests := []struct {
		op           Operation
		admin        bool
		assistant    bool
		professional bool
	}{
		{OperationSelfProfile, true, true, true},
		{OperationUserList, true, true, false},
		{OperationUserRead, true, true, false},
		{OperationUserCreate, true, true, false},
		{OperationUserUpdateOthers, true, true, false},
		{OperationUserChangeType, true, true, false},
		{OperationUserDelete, true, true, false},
		{OperationPatientAccess, true, true, true},
		{OperationPatientDelete, true, true, false},
		{OperationAppointmentAccess, true, true, true},
		{OperationAppointmentDelete, true, true, false},
		{OperationAppointmentFullEdit, true, true, false},
		{OperationEvolutionAccess, true, true, true},
		{OperationEvolutionDelete, true, true, true},
		{OperationCompanionDelete, true, true, false},
		{OperationCommunityAccess, true, true, true},
		{OperationMedicalRecordAccess, true, true, true},
		{OperationReferenceDataRead, true, true, true},
		{OperationReferenceDataWrite, true, true, false},
		{OperationPDFConfigManage, true, false, false},
		{OperationDashboardRead, true, true, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.op), func(t *testing.T) {
			assert.Equal(t, tc.admin, Can(identityWithRole(constvars.RoleAdmin), tc.op))
			assert.Equal(t, tc.assistant, Can(identityWithRole(constvars.RoleAssistant), tc.op))
			assert.Equal(t, tc.professional, Can(identityWithRole(constvars.RoleProfessional), tc.op))
		})
	}
}

func TestRequire(t *testing.T) {
	t.Run("Allowed role passes", func(t *testing.T) {
		assert.NoError(t, Require(identityWithRole(constvars.RoleAssistant), OperationUserDelete))
	})

	t.Run("Denied role is forbidden", func(t *testing.T) {
		err := Require(identityWithRole(constvars.RoleProfessional), OperationUserDelete)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientNotAuthorized, customErr.ClientMessage)
	})

	t.Run("Unknown operation is denied to everyone", func(t *testing.T) {
		err := Require(identityWithRole(constvars.RoleAdmin), Operation("drop_database"))
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Missing identity is unauthenticated", func(t *testing.T) {
		err := Require(nil, OperationSelfProfile)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("RequireOrDeny returns the same identity", func(t *testing.T) {
		identity := identityWithRole(constvars.RoleAdmin)
		got, err := RequireOrDeny(identity, admins, OperationPDFConfigManage)
		require.NoError(t, err)
		assert.Same(t, identity, got)
	})
}

func TestIsStaff(t *testing.T) {
	assert.True(t, IsStaff(identityWithRole(constvars.RoleAdmin)))
	assert.True(t, IsStaff(identityWithRole(constvars.RoleAssistant)))
	assert.False(t, IsStaff(identityWithRole(constvars.RoleProfessional)))
	assert.False(t, IsStaff(nil))
}
