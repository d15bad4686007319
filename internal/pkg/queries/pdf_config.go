package queries

const (
	pdfConfigColumns = `id, admin_id, clinic_name, clinic_address, logo_path, header_text, footer_text, font_family,
		font_size, primary_color, show_description, show_observations, show_professional, show_date, created_at, updated_at`

	GetPDFConfigByAdminID = `SELECT ` + pdfConfigColumns + ` FROM pdf_config WHERE admin_id = $1`

	GetFirstPDFConfig = `SELECT ` + pdfConfigColumns + ` FROM pdf_config ORDER BY id ASC LIMIT 1`

	InsertDefaultPDFConfig = `INSERT INTO pdf_config (admin_id, clinic_name, font_family, font_size, primary_color,
		show_description, show_observations, show_professional, show_date)
		VALUES ($1, $2, $3, $4, $5, TRUE, TRUE, TRUE, TRUE) RETURNING id`

	PDFConfigTable = `pdf_config`
)
