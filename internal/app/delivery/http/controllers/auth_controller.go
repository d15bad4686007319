package controllers

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/utils"
	"net"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	const method = "AuthController.Login"
	scope, ok := beginRequest(ctrl.Log, w, r, method, false)
	if !ok {
		return
	}
	defer scope.cancel()

	request := new(requests.Login)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	response, err := ctrl.AuthUsecase.Login(scope.ctx, request, clientIP(r))
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, response)
}

// Logout only acknowledges; tokens stay valid until they expire.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	const method = "AuthController.Logout"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	ctrl.Log.Info(method+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, scope.requestID),
		zap.Int64(constvars.LoggingIdentityIDKey, scope.identity.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	const method = "AuthController.Me"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	user, err := ctrl.AuthUsecase.Me(scope.ctx, scope.identity)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, user)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
