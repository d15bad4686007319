package requests

type CreateCommunityMessage struct {
	PatientID int64  `json:"patient_id" validate:"required,gt=0"`
	Message   string `json:"message" validate:"required"`
}
