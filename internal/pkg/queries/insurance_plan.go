package queries

const (
	insurancePlanColumns = `id, name, psychology_value, physiotherapy_value, occupational_therapy_value, speech_therapy_value,
		phone, email, start_date::text, created_at, updated_at`

	GetAllInsurancePlans = `SELECT ` + insurancePlanColumns + ` FROM insurance_plans ORDER BY name ASC`

	GetInsurancePlanByID = `SELECT ` + insurancePlanColumns + ` FROM insurance_plans WHERE id = $1`

	InsertInsurancePlan = `INSERT INTO insurance_plans (name, psychology_value, physiotherapy_value, occupational_therapy_value,
		speech_therapy_value, phone, email, start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	DeleteInsurancePlanByID = `DELETE FROM insurance_plans WHERE id = $1`

	InsurancePlansTable = `insurance_plans`
)
