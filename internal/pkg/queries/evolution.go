package queries

const (
	evolutionSelect = `SELECT e.id, e.patient_id, COALESCE(p.name, ''), e.professional_id, COALESCE(u.name, ''),
		e.date::text, e.description, e.observations, e.created_at, e.updated_at
		FROM evolutions e
		LEFT JOIN patients p ON e.patient_id = p.id
		LEFT JOIN users u ON e.professional_id = u.id`

	GetAllEvolutions = evolutionSelect

	GetAllEvolutionsOrderBy = ` ORDER BY e.date DESC, e.created_at DESC`

	GetEvolutionByID = evolutionSelect + ` WHERE e.id = $1`

	GetEvolutionsByPatientID = evolutionSelect + ` WHERE e.patient_id = $1` + GetAllEvolutionsOrderBy

	GetEvolutionOwner = `SELECT professional_id FROM evolutions WHERE id = $1`

	InsertEvolution = `INSERT INTO evolutions (patient_id, professional_id, date, description, observations)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	DeleteEvolutionByID = `DELETE FROM evolutions WHERE id = $1`

	EvolutionsTable = `evolutions`

	EvolutionScopeColumn = `e.professional_id`
)
