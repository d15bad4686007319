package queries

const (
	companionSelect = `SELECT c.id, c.name, c.phone, c.email, c.patient_id, p.name, c.created_at, c.updated_at
		FROM companions c
		LEFT JOIN patients p ON c.patient_id = p.id`

	GetAllCompanions = companionSelect

	GetAllCompanionsOrderBy = ` ORDER BY c.name ASC`

	GetCompanionByID = companionSelect + ` WHERE c.id = $1`

	// Unlinked companions resolve to a NULL owner.
	GetCompanionOwner = `SELECT p.responsible_id FROM companions c
		LEFT JOIN patients p ON c.patient_id = p.id
		WHERE c.id = $1`

	InsertCompanion = `INSERT INTO companions (name, phone, email, patient_id)
		VALUES ($1, $2, $3, $4) RETURNING id`

	DeleteCompanionByID = `DELETE FROM companions WHERE id = $1`

	CompanionsTable = `companions`

	CompanionScopeColumn = `p.responsible_id`

	CompanionLinkColumn = `c.patient_id`
)
