package queries

const (
	CountPatients                   = `SELECT COUNT(*) FROM patients p`
	CountAppointments               = `SELECT COUNT(*) FROM appointments a`
	CountEvolutions                 = `SELECT COUNT(*) FROM evolutions e`
	CountCompletedAppointments      = `SELECT COUNT(*) FROM appointments a WHERE a.status = 'completed'`
	CountTodayScheduledAppointments = `SELECT COUNT(*) FROM appointments a WHERE a.date = CURRENT_DATE AND a.status = 'scheduled'`
	CountPatientsCreatedSince       = `SELECT COUNT(*) FROM patients p WHERE p.created_at >= NOW() - make_interval(days => $1)`
	CountPatientsWithoutEvolution   = `SELECT COUNT(DISTINCT p.id) FROM patients p
		LEFT JOIN evolutions e ON p.id = e.patient_id AND e.created_at >= NOW() - make_interval(days => $1)
		WHERE e.id IS NULL`

	GetUpcomingAppointments = `SELECT a.id, COALESCE(p.name, ''), COALESCE(u.name, ''), COALESCE(tt.name, ''),
		a.date::text, a.time::text, a.status
		FROM appointments a
		LEFT JOIN patients p ON a.patient_id = p.id
		LEFT JOIN users u ON a.professional_id = u.id
		LEFT JOIN therapy_types tt ON a.therapy_type_id = tt.id
		WHERE a.date >= CURRENT_DATE AND a.status = 'scheduled'`

	GetUpcomingAppointmentsOrderBy = ` ORDER BY a.date ASC, a.time ASC LIMIT `
)
