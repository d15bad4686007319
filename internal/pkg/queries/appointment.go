package queries

const (
	appointmentSelect = `SELECT a.id, a.patient_id, COALESCE(p.name, ''), a.professional_id, COALESCE(u.name, ''),
		a.therapy_type_id, COALESCE(tt.name, ''), a.date::text, a.time::text, a.frequency, a.status, a.notes,
		a.created_at, a.updated_at
		FROM appointments a
		LEFT JOIN patients p ON a.patient_id = p.id
		LEFT JOIN users u ON a.professional_id = u.id
		LEFT JOIN therapy_types tt ON a.therapy_type_id = tt.id`

	GetAllAppointments = appointmentSelect

	GetAllAppointmentsOrderBy = ` ORDER BY a.date DESC, a.time DESC`

	GetAppointmentByID = appointmentSelect + ` WHERE a.id = $1`

	GetAppointmentOwner = `SELECT professional_id FROM appointments WHERE id = $1`

	InsertAppointment = `INSERT INTO appointments (patient_id, professional_id, therapy_type_id, date, time, frequency, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	DeleteAppointmentByID = `DELETE FROM appointments WHERE id = $1`

	AppointmentsTable = `appointments`

	AppointmentScopeColumn = `a.professional_id`
)
