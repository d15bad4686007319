package pdf

import (
	"bytes"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

var coreFonts = map[string]string{
	"arial":     "Arial",
	"helvetica": "Helvetica",
	"times":     "Times",
	"courier":   "Courier",
}

type evolutionRenderer struct {
	now func() time.Time
}

func NewEvolutionRenderer() contracts.PDFRenderer {
	return &evolutionRenderer{now: time.Now}
}

// RenderEvolution lays out one evolution as an A4 report. A nil config
// renders with the clinic defaults; logo may be nil.
func (r *evolutionRenderer) RenderEvolution(evolution *models.Evolution, config *models.PDFConfig, logo io.Reader, logoContentType string) ([]byte, error) {
	if config == nil {
		config = DefaultConfig()
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(r.now())
	doc.SetTitle("Evolution report", true)
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	family := fontFamily(config.FontFamily)
	size := float64(config.FontSize)
	if size <= 0 {
		size = constvars.PDFConfigDefaultFontSize
	}
	red, green, blue := parseHexColor(config.PrimaryColor)

	if config.FooterText != nil && *config.FooterText != "" {
		footer := *config.FooterText
		doc.SetFooterFunc(func() {
			doc.SetY(-15)
			doc.SetFont(family, "I", size-3)
			doc.SetTextColor(110, 110, 110)
			doc.CellFormat(0, 8, tr(footer), "", 0, "C", false, 0, "")
		})
	}

	doc.AddPage()

	if logo != nil {
		imageType := imageTypeFor(logoContentType)
		if imageType != "" {
			doc.RegisterImageOptionsReader("logo", fpdf.ImageOptions{ImageType: imageType, ReadDpi: true}, logo)
			if !doc.Err() {
				doc.ImageOptions("logo", 20, 15, 0, 18, false, fpdf.ImageOptions{ImageType: imageType}, 0, "")
				doc.SetY(36)
			}
		}
	}

	doc.SetFont(family, "B", size+6)
	doc.SetTextColor(red, green, blue)
	doc.CellFormat(0, 10, tr(config.ClinicName), "", 1, "L", false, 0, "")

	doc.SetTextColor(60, 60, 60)
	doc.SetFont(family, "", size-2)
	if config.ClinicAddress != nil && *config.ClinicAddress != "" {
		doc.CellFormat(0, 6, tr(*config.ClinicAddress), "", 1, "L", false, 0, "")
	}
	if config.HeaderText != nil && *config.HeaderText != "" {
		doc.MultiCell(0, 6, tr(*config.HeaderText), "", "L", false)
	}

	doc.SetDrawColor(red, green, blue)
	doc.Line(20, doc.GetY()+2, 190, doc.GetY()+2)
	doc.Ln(8)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont(family, "B", size+2)
	doc.CellFormat(0, 8, tr("Evolution Report"), "", 1, "L", false, 0, "")
	doc.Ln(2)

	field := func(label, value string) {
		doc.SetFont(family, "B", size)
		doc.CellFormat(35, 7, tr(label), "", 0, "L", false, 0, "")
		doc.SetFont(family, "", size)
		doc.MultiCell(0, 7, tr(value), "", "L", false)
	}

	field("Patient:", evolution.PatientName)
	if config.ShowProfessional {
		field("Professional:", evolution.ProfessionalName)
	}
	if config.ShowDate {
		field("Date:", formatDate(evolution.Date))
	}

	if config.ShowDescription {
		doc.Ln(4)
		doc.SetFont(family, "B", size)
		doc.CellFormat(0, 7, tr("Description"), "", 1, "L", false, 0, "")
		doc.SetFont(family, "", size)
		doc.MultiCell(0, 6, tr(evolution.Description), "", "J", false)
	}

	if config.ShowObservations && evolution.Observations != nil && *evolution.Observations != "" {
		doc.Ln(4)
		doc.SetFont(family, "B", size)
		doc.CellFormat(0, 7, tr("Observations"), "", 1, "L", false, 0, "")
		doc.SetFont(family, "", size)
		doc.MultiCell(0, 6, tr(*evolution.Observations), "", "J", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DefaultConfig is the layout used before an admin saves a configuration.
func DefaultConfig() *models.PDFConfig {
	return &models.PDFConfig{
		ClinicName:       constvars.PDFConfigDefaultClinicName,
		FontFamily:       constvars.PDFConfigDefaultFontFamily,
		FontSize:         constvars.PDFConfigDefaultFontSize,
		PrimaryColor:     constvars.PDFConfigDefaultPrimaryColor,
		ShowDescription:  true,
		ShowObservations: true,
		ShowProfessional: true,
		ShowDate:         true,
	}
}

// FileName names the attachment after the patient and the export day.
func FileName(patientName string, day time.Time) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '_'
		}
		return -1
	}, patientName)
	if slug == "" {
		slug = "patient"
	}
	return fmt.Sprintf("evolution_%s_%s.pdf", slug, day.Format(constvars.DateFormat))
}

func fontFamily(name string) string {
	if family, ok := coreFonts[strings.ToLower(strings.TrimSpace(name))]; ok {
		return family
	}
	return "Helvetica"
}

func imageTypeFor(contentType string) string {
	switch contentType {
	case constvars.MIMEImageJPEG:
		return "JPG"
	case constvars.MIMEImagePNG:
		return "PNG"
	case constvars.MIMEImageGIF:
		return "GIF"
	}
	return ""
}

func parseHexColor(hex string) (int, int, int) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return parseHexColor(constvars.PDFConfigDefaultPrimaryColor)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return parseHexColor(constvars.PDFConfigDefaultPrimaryColor)
	}
	return int(value >> 16 & 0xFF), int(value >> 8 & 0xFF), int(value & 0xFF)
}

func formatDate(date string) string {
	parsed, err := time.Parse(constvars.DateFormat, date)
	if err != nil {
		return date
	}
	return parsed.Format("02/01/2006")
}
