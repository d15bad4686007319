package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_IDENTITY_KEY             ContextKey = "identity"
)

const (
	REQUEST_ID_PREFIX = "CLNC_SVC_"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

// Roles carried by users.type and the token's role claim.
const (
	RoleAdmin        = "admin"
	RoleAssistant    = "assistant"
	RoleProfessional = "professional"
)

const (
	ResourceAuth           = "auth"
	ResourceUsers          = "users"
	ResourcePatients       = "patients"
	ResourceAppointments   = "appointments"
	ResourceEvolutions     = "evolutions"
	ResourceCompanions     = "companions"
	ResourceCommunity      = "community"
	ResourceMedicalRecords = "medical-records"
	ResourceInsurancePlans = "insurance-plans"
	ResourceTherapyTypes   = "therapy-types"
	ResourceDashboard      = "dashboard"
	ResourcePDFConfig      = "pdf-config"
)

// Entity names used in not found and out of scope messages.
const (
	EntityUser             = "user"
	EntityProfessional     = "professional"
	EntityPatient          = "patient"
	EntityAppointment      = "appointment"
	EntityEvolution        = "evolution"
	EntityCompanion        = "companion"
	EntityCommunityMessage = "community message"
	EntityInsurancePlan    = "insurance plan"
	EntityTherapyType      = "therapy type"
)

const (
	AppointmentFrequencySingle = "single"
	AppointmentStatusScheduled = "scheduled"
	MedicalRecordTypeReport    = "report"
)

const (
	DateFormat = "2006-01-02"
)

const (
	DashboardUpcomingLimit          = 10
	DashboardInactivePatientDays    = 30
	DashboardRecentPatientDays      = 7
	ReferenceDataCacheTTLInMinutes  = 30
	DefaultRequestTimeoutInSeconds  = 10
	MultipartMemoryLimitInMegabytes = 10
)

const (
	RedisKeyLoginThrottleGroup   = "LOGIN"
	RedisKeyInsurancePlansList   = "insurance_plans:list"
	RedisKeyTherapyTypesList     = "therapy_types:list"
	MinioLogoObjectPrefix        = "logos"
	MinioMedicalRecordObjectPath = "medical-records"
)

const (
	PDFConfigDefaultClinicName   = "Clínica Multidisciplinar"
	PDFConfigDefaultFontFamily   = "Arial"
	PDFConfigDefaultFontSize     = 12
	PDFConfigDefaultPrimaryColor = "#2563EB"
)

var ImageAllowedLogoFormats = []string{MIMEImageJPEG, MIMEImagePNG, MIMEImageGIF}
