package controllers

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type requestScope struct {
	ctx       context.Context
	cancel    context.CancelFunc
	requestID string
	identity  *models.Identity
}

// beginRequest reads the request id and, when requireIdentity is set, the
// authenticated identity. On failure it writes the error response and
// returns false.
func beginRequest(log *zap.Logger, w http.ResponseWriter, r *http.Request, method string, requireIdentity bool) (*requestScope, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		log.Error(method+" requestID not found in context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return nil, false
	}
	log.Info(method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var identity *models.Identity
	if requireIdentity {
		var err error
		identity, err = utils.GetIdentityFromContext(r.Context())
		if err != nil {
			log.Error(method+" identity not found in context",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(log, w, err)
			return nil, false
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DefaultRequestTimeoutInSeconds*time.Second)
	return &requestScope{ctx: ctx, cancel: cancel, requestID: requestID, identity: identity}, true
}

// failRequest logs a failed step and writes the error envelope.
func failRequest(log *zap.Logger, w http.ResponseWriter, method, requestID string, err error) {
	log.Error(method+" error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func succeeded(log *zap.Logger, method, requestID string) {
	log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
}
