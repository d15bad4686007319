package constvars

const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationPDF  = "application/pdf"
	MIMEImageJPEG       = "image/jpeg"
	MIMEImagePNG        = "image/png"
	MIMEImageGIF        = "image/gif"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization           = "Authorization"
	HeaderContentType             = "Content-Type"
	HeaderContentDisposition      = "Content-Disposition"
	HeaderContentLength           = "Content-Length"
	HeaderXRequestID              = "X-Request-ID"
	HeaderRetryAfter              = "Retry-After"
	HeaderXContentTypeOptions     = "X-Content-Type-Options"
	HeaderXFrameOptions           = "X-Frame-Options"
	HeaderXXSSProtection          = "X-XSS-Protection"
	HeaderReferrerPolicy          = "Referrer-Policy"
	HeaderContentSecurityPolicy   = "Content-Security-Policy"
	HeaderStrictTransportSecurity = "Strict-Transport-Security"
)

const (
	AuthorizationSchemeBearer = "Bearer "
)
