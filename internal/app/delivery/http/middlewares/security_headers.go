package middlewares

import (
	"clinic-service/internal/pkg/constvars"
	"net/http"
)

func (m *Middlewares) SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set(constvars.HeaderXContentTypeOptions, "nosniff")
		header.Set(constvars.HeaderXFrameOptions, "DENY")
		header.Set(constvars.HeaderXXSSProtection, "1; mode=block")
		header.Set(constvars.HeaderReferrerPolicy, "strict-origin-when-cross-origin")
		header.Set(constvars.HeaderContentSecurityPolicy, "default-src 'self'")
		if m.InternalConfig.App.Env == constvars.AppEnvProduction {
			header.Set(constvars.HeaderStrictTransportSecurity, "max-age=31536000; includeSubDomains")
		}
		next.ServeHTTP(w, r)
	})
}
