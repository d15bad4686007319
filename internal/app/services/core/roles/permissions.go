package roles

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"slices"
)

// Operation names a permission class guarded by a fixed set of roles.
type Operation string

const (
	OperationSelfProfile         Operation = "self_profile"
	OperationUserList            Operation = "user_list"
	OperationUserRead            Operation = "user_read"
	OperationUserCreate          Operation = "user_create"
	OperationUserUpdateOthers    Operation = "user_update_others"
	OperationUserChangeType      Operation = "user_change_type"
	OperationUserDelete          Operation = "user_delete"
	OperationPatientAccess       Operation = "patient_access"
	OperationPatientDelete       Operation = "patient_delete"
	OperationAppointmentAccess   Operation = "appointment_access"
	OperationAppointmentDelete   Operation = "appointment_delete"
	OperationAppointmentFullEdit Operation = "appointment_full_edit"
	OperationEvolutionAccess     Operation = "evolution_access"
	OperationEvolutionDelete     Operation = "evolution_delete"
	OperationEvolutionExport     Operation = "evolution_export"
	OperationCompanionAccess     Operation = "companion_access"
	OperationCompanionDelete     Operation = "companion_delete"
	OperationCommunityAccess     Operation = "community_access"
	OperationMedicalRecordAccess Operation = "medical_record_access"
	OperationReferenceDataRead   Operation = "reference_data_read"
	OperationReferenceDataWrite  Operation = "reference_data_write"
	OperationPDFConfigManage     Operation = "pdf_config_manage"
	OperationDashboardRead       Operation = "dashboard_read"
)

var (
	staff    = []string{constvars.RoleAdmin, constvars.RoleAssistant}
	allRoles = []string{constvars.RoleAdmin, constvars.RoleAssistant, constvars.RoleProfessional}
	admins   = []string{constvars.RoleAdmin}
)

// Permissions is the static operation to role table. Operations open to
// every role are still narrowed by ownership where their resource has an
// owner.
var Permissions = map[Operation][]string{
	OperationSelfProfile:         allRoles,
	OperationUserList:            staff,
	OperationUserRead:            staff,
	OperationUserCreate:          staff,
	OperationUserUpdateOthers:    staff,
	OperationUserChangeType:      staff,
	OperationUserDelete:          staff,
	OperationPatientAccess:       allRoles,
	OperationPatientDelete:       staff,
	OperationAppointmentAccess:   allRoles,
	OperationAppointmentDelete:   staff,
	OperationAppointmentFullEdit: staff,
	OperationEvolutionAccess:     allRoles,
	OperationEvolutionDelete:     allRoles,
	OperationEvolutionExport:     allRoles,
	OperationCompanionAccess:     allRoles,
	OperationCompanionDelete:     staff,
	OperationCommunityAccess:     allRoles,
	OperationMedicalRecordAccess: allRoles,
	OperationReferenceDataRead:   allRoles,
	OperationReferenceDataWrite:  staff,
	OperationPDFConfigManage:     admins,
	OperationDashboardRead:       allRoles,
}

// Allows reports whether role is a member of required.
func Allows(role string, required []string) bool {
	return role != "" && slices.Contains(required, role)
}

// Can reports whether the identity may perform op. Unknown operations are denied.
func Can(identity *models.Identity, op Operation) bool {
	if identity == nil {
		return false
	}
	required, ok := Permissions[op]
	if !ok {
		return false
	}
	return Allows(identity.Role, required)
}

// RequireOrDeny returns the identity untouched when its role is in required.
func RequireOrDeny(identity *models.Identity, required []string, op Operation) (*models.Identity, error) {
	if identity == nil {
		return nil, exceptions.ErrMissingIdentity(nil)
	}
	if !Allows(identity.Role, required) {
		return nil, exceptions.ErrRoleNotAllowed(nil, identity.Role, string(op))
	}
	return identity, nil
}

// Require checks the identity against the table entry of op.
func Require(identity *models.Identity, op Operation) error {
	required, ok := Permissions[op]
	if !ok {
		required = nil
	}
	_, err := RequireOrDeny(identity, required, op)
	return err
}

// IsStaff reports whether the identity sees every record unnarrowed.
func IsStaff(identity *models.Identity) bool {
	return identity != nil && Allows(identity.Role, staff)
}
