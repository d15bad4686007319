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

type MedicalRecordController struct {
	Log                  *zap.Logger
	MedicalRecordUsecase contracts.MedicalRecordUsecase
}

func NewMedicalRecordController(logger *zap.Logger, medicalRecordUsecase contracts.MedicalRecordUsecase) *MedicalRecordController {
	return &MedicalRecordController{
		Log:                  logger,
		MedicalRecordUsecase: medicalRecordUsecase,
	}
}

func (ctrl *MedicalRecordController) FindByPatientID(w http.ResponseWriter, r *http.Request) {
	const method = "MedicalRecordController.FindByPatientID"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	patientID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	records, err := ctrl.MedicalRecordUsecase.FindByPatientID(scope.ctx, scope.identity, patientID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalRecordsSuccessMessage, records)
}

// Upload reads a multipart form with the file and its type, title and
// description fields.
func (ctrl *MedicalRecordController) Upload(w http.ResponseWriter, r *http.Request) {
	const method = "MedicalRecordController.Upload"
	scope, ok := beginRequest(ctrl.Log, w, r, method, true)
	if !ok {
		return
	}
	defer scope.cancel()

	patientID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	if err := r.ParseMultipartForm(constvars.MultipartMemoryLimitInMegabytes << 20); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	file, fileHeader, err := r.FormFile(constvars.FormFieldFile)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, exceptions.ErrFileRequired(err))
		return
	}
	defer file.Close()

	request := &requests.UploadMedicalRecord{
		PatientID:  patientID,
		Type:       r.FormValue(constvars.FormFieldType),
		Title:      r.FormValue(constvars.FormFieldTitle),
		File:       file,
		FileHeader: fileHeader,
	}
	if description := r.FormValue(constvars.FormFieldDescription); description != "" {
		request.Description = &description
	}
	if err := utils.ValidateStruct(request); err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, exceptions.ErrInputValidation(err))
		return
	}

	uploaded, err := ctrl.MedicalRecordUsecase.Upload(scope.ctx, scope.identity, request)
	if err != nil {
		failRequest(ctrl.Log, w, method, scope.requestID, err)
		return
	}

	succeeded(ctrl.Log, method, scope.requestID)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadMedicalRecordSuccessMessage, uploaded)
}
