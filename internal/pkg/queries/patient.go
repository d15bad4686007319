package queries

const (
	patientSelect = `SELECT p.id, p.name, p.birth_date::text, p.category, p.gender, p.phone, p.email, p.address,
		p.responsible_id, u.name, p.insurance_plan_id, ip.name, p.created_at, p.updated_at
		FROM patients p
		LEFT JOIN users u ON p.responsible_id = u.id
		LEFT JOIN insurance_plans ip ON p.insurance_plan_id = ip.id`

	GetAllPatients = patientSelect

	GetAllPatientsOrderBy = ` ORDER BY p.created_at DESC`

	GetPatientByID = patientSelect + ` WHERE p.id = $1`

	GetPatientOwner = `SELECT responsible_id FROM patients WHERE id = $1`

	InsertPatient = `INSERT INTO patients (name, birth_date, category, gender, phone, email, address, responsible_id, insurance_plan_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	DeletePatientByID = `DELETE FROM patients WHERE id = $1`

	PatientsTable = `patients`

	PatientScopeColumn = `p.responsible_id`
)
