package queries

const (
	GetCommunityMessagesByPatientID = `SELECT c.id, c.patient_id, c.professional_id, COALESCE(u.name, ''), u.specialty, c.message, c.created_at
		FROM community c
		LEFT JOIN users u ON c.professional_id = u.id
		WHERE c.patient_id = $1
		ORDER BY c.created_at DESC`

	GetCommunityMessageOwner = `SELECT professional_id FROM community WHERE id = $1`

	InsertCommunityMessage = `INSERT INTO community (patient_id, professional_id, message)
		VALUES ($1, $2, $3) RETURNING id`

	DeleteCommunityMessageByID = `DELETE FROM community WHERE id = $1`
)
