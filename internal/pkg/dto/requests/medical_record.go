package requests

import (
	"io"
	"mime/multipart"
)

type UploadMedicalRecord struct {
	PatientID   int64
	Type        string `validate:"required,oneof=document report evaluation other"`
	Title       string `validate:"required"`
	Description *string
	File        io.Reader             `validate:"required"`
	FileHeader  *multipart.FileHeader `validate:"required"`
}
