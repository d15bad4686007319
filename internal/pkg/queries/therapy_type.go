package queries

const (
	therapyTypeColumns = `id, name, description, specialty, created_at, updated_at`

	GetAllTherapyTypes = `SELECT ` + therapyTypeColumns + ` FROM therapy_types ORDER BY specialty ASC, name ASC`

	GetTherapyTypeByID = `SELECT ` + therapyTypeColumns + ` FROM therapy_types WHERE id = $1`

	InsertTherapyType = `INSERT INTO therapy_types (name, description, specialty)
		VALUES ($1, $2, $3) RETURNING id`

	DeleteTherapyTypeByID = `DELETE FROM therapy_types WHERE id = $1`

	TherapyTypesTable = `therapy_types`
)
