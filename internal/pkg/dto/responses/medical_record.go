package responses

type UploadedMedicalRecord struct {
	ID       int64  `json:"id"`
	FilePath string `json:"file_path"`
}

type UploadedLogo struct {
	LogoPath string `json:"logo_path"`
}

type PDFDocument struct {
	FileName string
	Content  []byte
}
