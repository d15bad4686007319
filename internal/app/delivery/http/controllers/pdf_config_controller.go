package controllers

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type PDFConfigController struct {
	Log              *zap.Logger
	PDFConfigUsecase contracts.PDFConfigUsecase
}

func NewPDFConfigController(logger *zap.Logger, pdfConfigUsecase contracts.PDFConfigUsecase) *PDFConfigController {
	return &PDFConfigController{
		Log:              logger,
		PDFConfigUsecase: pdfConfigUsecase,
	}
}

func (ctrl *PDFConfigController) Get(w http.ResponseWriter, r *http.Request) {
	const method = "PDFConfigController.Get"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	cfg, err := ctrl.PDFConfigUsecase.Get(scope.ctx, scope.identity)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPDFConfigSuccessMessage, cfg)
}

func (ctrl *PDFConfigController) Update(w http.ResponseWriter, r *http.Request) {
	const method = "PDFConfigController.Update"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	request := new(requests.UpdatePDFConfig)
	if err := utils.DecodeAndValidate(r, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	if err := ctrl.PDFConfigUsecase.Update(scope.ctx, scope.identity, request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePDFConfigSuccessMessage, nil)
}

func (ctrl *PDFConfigController) UploadLogo(w http.ResponseWriter, r *http.Request) {
	const method = "PDFConfigController.UploadLogo"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	if err := r.ParseMultipartForm(constvars.MultipartMemoryLimitInMegabytes << 20); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	file, fileHeader, err := r.FormFile(constvars.FormFieldLogo)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, exceptions.ErrFileRequired(err))
		return
	}
	defer file.Close()

	uploaded, err := ctrl.PDFConfigUsecase.UploadLogo(scope.ctx, scope.identity, &requests.UploadLogo{File: file, FileHeader: fileHeader})
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadLogoSuccessMessage, uploaded)
}
