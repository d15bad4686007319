package middlewares

import (
	"clinic-service/internal/app/services/core/roles"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into an identity stored on the
// request context. Requests without a valid token stop here with 401.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.SessionResolver.Resolve(r.Context(), r.Header.Get(constvars.HeaderAuthorization))
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.SetIdentityToContext(r.Context(), identity)))
	})
}

// RequireRoles rejects, before any handler work, identities whose role does
// not allow op. Record-level scope is still checked by the usecases.
func (m *Middlewares) RequireRoles(op roles.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, _ := utils.GetIdentityFromContext(r.Context())
			if err := roles.Require(identity, op); err != nil {
				requestID := utils.GetRequestID(r)
				m.Log.Info("Middlewares.RequireRoles denied",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingOperationKey, string(op)),
				)
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
