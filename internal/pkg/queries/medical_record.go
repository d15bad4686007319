package queries

const (
	GetMedicalRecordsByPatientID = `SELECT mr.id, mr.patient_id, mr.professional_id, COALESCE(u.name, ''), mr.type, mr.title,
		mr.description, mr.file_path, mr.file_name, mr.created_at
		FROM medical_records mr
		LEFT JOIN users u ON mr.professional_id = u.id
		WHERE mr.patient_id = $1
		ORDER BY mr.created_at DESC`

	InsertMedicalRecord = `INSERT INTO medical_records (patient_id, professional_id, type, title, description, file_path, file_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
)
