package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
	"io"
)

type PDFConfigRepository interface {
	FindByAdminID(ctx context.Context, adminID int64) (*models.PDFConfig, error)
	FindFirst(ctx context.Context) (*models.PDFConfig, error)
	CreateDefault(ctx context.Context, adminID int64) (int64, error)
	Update(ctx context.Context, configID int64, updateData map[string]interface{}) error
}

type PDFConfigUsecase interface {
	Get(ctx context.Context, identity *models.Identity) (*models.PDFConfig, error)
	Update(ctx context.Context, identity *models.Identity, request *requests.UpdatePDFConfig) error
	UploadLogo(ctx context.Context, identity *models.Identity, request *requests.UploadLogo) (*responses.UploadedLogo, error)
}

type PDFRenderer interface {
	RenderEvolution(evolution *models.Evolution, config *models.PDFConfig, logo io.Reader, logoContentType string) ([]byte, error)
}
