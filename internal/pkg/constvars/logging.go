package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingReasonKey       = "reason"
	LoggingCountKey        = "count"
	LoggingIdentityIDKey   = "identity_id"
	LoggingIdentityRoleKey = "identity_role"
	LoggingEmailKey        = "email"
	LoggingOperationKey    = "operation"
	LoggingFamilyKey       = "family"
	LoggingRecordIDKey     = "record_id"
	LoggingUserIDKey       = "user_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingRedisKey        = "redis_key"
	LoggingObjectNameKey   = "object_name"
	LoggingFieldsKey       = "fields"
)
