package models

import "time"

type PDFConfig struct {
	ID               int64     `json:"id"`
	AdminID          int64     `json:"admin_id"`
	ClinicName       string    `json:"clinic_name"`
	ClinicAddress    *string   `json:"clinic_address"`
	LogoPath         *string   `json:"logo_path"`
	HeaderText       *string   `json:"header_text"`
	FooterText       *string   `json:"footer_text"`
	FontFamily       string    `json:"font_family"`
	FontSize         int       `json:"font_size"`
	PrimaryColor     string    `json:"primary_color"`
	ShowDescription  bool      `json:"show_description"`
	ShowObservations bool      `json:"show_observations"`
	ShowProfessional bool      `json:"show_professional"`
	ShowDate         bool      `json:"show_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
