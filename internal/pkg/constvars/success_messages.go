package constvars

const (
	LoginSuccessMessage      = "login succeeded"
	LogoutSuccessMessage     = "logout succeeded"
	GetProfileSuccessMessage = "profile fetched"

	GetUsersSuccessMessage   = "users fetched"
	GetUserSuccessMessage    = "user fetched"
	CreateUserSuccessMessage = "user created"
	UpdateUserSuccessMessage = "user updated"
	DeleteUserSuccessMessage = "user deleted"

	GetPatientsSuccessMessage   = "patients fetched"
	GetPatientSuccessMessage    = "patient fetched"
	CreatePatientSuccessMessage = "patient created"
	UpdatePatientSuccessMessage = "patient updated"
	DeletePatientSuccessMessage = "patient deleted"

	GetMedicalRecordsSuccessMessage   = "medical records fetched"
	UploadMedicalRecordSuccessMessage = "medical record uploaded"

	GetAppointmentsSuccessMessage   = "appointments fetched"
	GetAppointmentSuccessMessage    = "appointment fetched"
	CreateAppointmentSuccessMessage = "appointment created"
	UpdateAppointmentSuccessMessage = "appointment updated"
	DeleteAppointmentSuccessMessage = "appointment deleted"

	GetEvolutionsSuccessMessage   = "evolutions fetched"
	GetEvolutionSuccessMessage    = "evolution fetched"
	CreateEvolutionSuccessMessage = "evolution created"
	UpdateEvolutionSuccessMessage = "evolution updated"
	DeleteEvolutionSuccessMessage = "evolution deleted"

	GetCompanionsSuccessMessage   = "companions fetched"
	GetCompanionSuccessMessage    = "companion fetched"
	CreateCompanionSuccessMessage = "companion created"
	UpdateCompanionSuccessMessage = "companion updated"
	DeleteCompanionSuccessMessage = "companion deleted"

	GetCommunityMessagesSuccessMessage   = "community messages fetched"
	CreateCommunityMessageSuccessMessage = "community message created"
	DeleteCommunityMessageSuccessMessage = "community message deleted"

	GetInsurancePlansSuccessMessage   = "insurance plans fetched"
	GetInsurancePlanSuccessMessage    = "insurance plan fetched"
	CreateInsurancePlanSuccessMessage = "insurance plan created"
	UpdateInsurancePlanSuccessMessage = "insurance plan updated"
	DeleteInsurancePlanSuccessMessage = "insurance plan deleted"

	GetTherapyTypesSuccessMessage   = "therapy types fetched"
	GetTherapyTypeSuccessMessage    = "therapy type fetched"
	CreateTherapyTypeSuccessMessage = "therapy type created"
	UpdateTherapyTypeSuccessMessage = "therapy type updated"
	DeleteTherapyTypeSuccessMessage = "therapy type deleted"

	GetDashboardStatsSuccessMessage       = "dashboard stats fetched"
	GetUpcomingAppointmentsSuccessMessage = "upcoming appointments fetched"
	GetDashboardAlertsSuccessMessage      = "dashboard alerts fetched"

	GetPDFConfigSuccessMessage    = "pdf configuration fetched"
	UpdatePDFConfigSuccessMessage = "pdf configuration updated"
	UploadLogoSuccessMessage      = "logo uploaded"
)

// Dashboard alert texts
const (
	AlertOwnTodayAppointments = "You have %d appointment(s) scheduled for today"
	AlertTodayAppointments    = "%d appointment(s) scheduled for today"
	AlertInactivePatients     = "%d patient(s) without an evolution in the last %d days"
	AlertRecentPatients       = "%d new patient(s) registered this week"
	AlertTypeInfo             = "info"
	AlertTypeWarning          = "warning"
)
