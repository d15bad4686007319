package requests

import (
	"io"
	"mime/multipart"
)

type UpdatePDFConfig struct {
	ClinicName       *string `json:"clinic_name" validate:"omitempty,min=1"`
	ClinicAddress    *string `json:"clinic_address"`
	HeaderText       *string `json:"header_text"`
	FooterText       *string `json:"footer_text"`
	FontFamily       *string `json:"font_family" validate:"omitempty,min=1"`
	FontSize         *int    `json:"font_size" validate:"omitempty,gte=6,lte=72"`
	PrimaryColor     *string `json:"primary_color" validate:"omitempty,hexcolor"`
	ShowDescription  *bool   `json:"show_description"`
	ShowObservations *bool   `json:"show_observations"`
	ShowProfessional *bool   `json:"show_professional"`
	ShowDate         *bool   `json:"show_date"`
}

type UploadLogo struct {
	File       io.Reader
	FileHeader *multipart.FileHeader
}
