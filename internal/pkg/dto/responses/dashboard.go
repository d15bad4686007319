package responses

import "time"

type DashboardStats struct {
	TotalPatients         int64 `json:"totalPatients"`
	TotalAppointments     int64 `json:"totalAppointments"`
	TotalEvolutions       int64 `json:"totalEvolutions"`
	CompletedAppointments int64 `json:"completedAppointments"`
}

type UpcomingAppointment struct {
	ID               int64  `json:"id"`
	PatientName      string `json:"patient_name"`
	ProfessionalName string `json:"professional_name"`
	TherapyType      string `json:"therapy_type"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Status           string `json:"status"`
}

type Alert struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
