package controllers

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type CommunityController struct {
	Log              *zap.Logger
	CommunityUsecase contracts.CommunityUsecase
}

func NewCommunityController(logger *zap.Logger, communityUsecase contracts.CommunityUsecase) *CommunityController {
	return &CommunityController{
		Log:              logger,
		CommunityUsecase: communityUsecase,
	}
}

func (ctrl *CommunityController) FindByPatientID(w http.ResponseWriter, r *http.Request) {
	const method = "CommunityController.FindByPatientID"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	patientID, err := utils.ParseIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	messages, err := ctrl.CommunityUsecase.FindByPatientID(scope.ctx, scope.identity, patientID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCommunityMessagesSuccessMessage, messages)
}

func (ctrl *CommunityController) Create(w http.ResponseWriter, r *http.Request) {
	const method = "CommunityController.Create"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	request := new(requests.CreateCommunityMessage)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	created, err := ctrl.CommunityUsecase.Create(scope.ctx, scope.identity, request)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCommunityMessageSuccessMessage, created)
}

func (ctrl *CommunityController) Delete(w http.ResponseWriter, r *http.Request) {
	const method = "CommunityController.Delete"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	messageID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	if err := ctrl.CommunityUsecase.Delete(scope.ctx, scope.identity, messageID); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteCommunityMessageSuccessMessage, nil)
}
