package scopes

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/queries"
)

var (
	Patients = models.ResourceFamily{
		Name:        constvars.EntityPatient,
		ScopeColumn: queries.PatientScopeColumn,
		OwnerQuery:  queries.GetPatientOwner,
	}

	Appointments = models.ResourceFamily{
		Name:        constvars.EntityAppointment,
		ScopeColumn: queries.AppointmentScopeColumn,
		OwnerQuery:  queries.GetAppointmentOwner,
	}

	// Evolutions are owned by their author.
	Evolutions = models.ResourceFamily{
		Name:        constvars.EntityEvolution,
		ScopeColumn: queries.EvolutionScopeColumn,
		OwnerQuery:  queries.GetEvolutionOwner,
	}

	// Companions follow the responsible professional of the linked patient.
	// Unlinked companions are visible to everyone.
	Companions = models.ResourceFamily{
		Name:           constvars.EntityCompanion,
		ScopeColumn:    queries.CompanionScopeColumn,
		NullableColumn: queries.CompanionLinkColumn,
		OwnerQuery:     queries.GetCompanionOwner,
		UnownedVisible: true,
	}

	// Professionals resolve to themselves and only exist for users of type
	// professional.
	Professionals = models.ResourceFamily{
		Name:       constvars.EntityProfessional,
		OwnerQuery: queries.GetProfessionalByID,
	}

	// CommunityMessages are only checked record by record, on delete.
	CommunityMessages = models.ResourceFamily{
		Name:       constvars.EntityCommunityMessage,
		OwnerQuery: queries.GetCommunityMessageOwner,
	}
)
