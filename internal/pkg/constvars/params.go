package constvars

const (
	URLParamID        = "id"
	URLParamPatientID = "patient_id"
)

const (
	FormFieldFile        = "file"
	FormFieldLogo        = "logo"
	FormFieldType        = "type"
	FormFieldTitle       = "title"
	FormFieldDescription = "description"
)
