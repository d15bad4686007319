package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"datetime": "must match the format %s",
	"hexcolor": "must be a valid hex color",
	"role":     "must be one of [admin, assistant, professional]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gt":       true,
	"gte":      true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "authentication required"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientRecordOutOfScope              = "you can't access this record"
	ErrClientPatientOutOfScope             = "the patient is not part of your caseload"
	ErrClientNotFound                      = "%s not found"
	ErrClientInvalidCredentials            = "invalid credentials"
	ErrClientEmailPasswordRequired         = "email and password are required"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientNoFieldsToUpdate              = "no fields to update"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please try again later"
	ErrClientInvalidImageFormat            = "only JPEG, PNG and GIF images are allowed"
	ErrClientFileRequired                  = "a file is required"
	ErrClientFileTooLarge                  = "the uploaded file is too large"
	ErrClientInvalidReference              = "the request refers to a record that does not exist"
	ErrClientInvalidAssignee               = "the assigned professional does not exist"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct"
	ErrDevCannotMarshalJSON        = "cannot convert struct to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevURLParamIDValidation     = "url param %s is not a positive integer"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevMissingIdentity          = "identity missing from context"
	ErrDevAuthTokenMissing         = "authorization header missing or not in 'Bearer <token>' form"
	ErrDevAuthTokenInvalid         = "token failed to decode"
	ErrDevAuthGenerateToken        = "failed to sign token"
	ErrDevRoleNotAllowed           = "role %s is not allowed to perform %s"
	ErrDevRecordOutOfScope         = "%s %d is owned by another professional"
	ErrDevPatientOutOfScope        = "patient %d cannot be resolved into the caseload of user %d"
	ErrDevRecordNotFound           = "%s %d does not exist"
	ErrDevInvalidCredentials       = "email unknown or password mismatch"
	ErrDevHashPassword             = "failed to hash password"
	ErrDevEmailAlreadyExists       = "email %s already used by another user"
	ErrDevNoFieldsToUpdate         = "payload carried no updatable field"
	ErrDevTooManyRequests          = "request rate limit exceeded for client ip"
	ErrDevLoginThrottled           = "login attempts exceeded for %s"
	ErrDevImageValidation          = "unsupported image content type %s"
	ErrDevFileTooLarge             = "file of %d bytes exceeds the %d MB limit"
	ErrDevPostgresFindData         = "failed to query postgres"
	ErrDevPostgresCreateData       = "failed to insert into postgres"
	ErrDevPostgresUpdateData       = "failed to update postgres"
	ErrDevPostgresDeleteData       = "failed to delete from postgres"
	ErrDevRedisGet                 = "failed to get redis key %s"
	ErrDevRedisSet                 = "failed to set redis key"
	ErrDevRedisDelete              = "failed to delete redis key"
	ErrDevRedisIncrement           = "failed to increment redis key"
	ErrDevMinioCreateObject        = "failed to put object into bucket %s"
	ErrDevMinioGetObject           = "failed to get object from bucket %s"
	ErrDevBuildPDF                 = "failed to render pdf document"
	ErrDevPanicRecovered           = "panic recovered"
	ErrDevForeignKeyViolation      = "foreign key constraint %s violated"
	ErrDevInvalidAssignee          = "user %d is not a professional"
)
