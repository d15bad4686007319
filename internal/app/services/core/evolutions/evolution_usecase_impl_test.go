package evolutions

import (
	"bytes"
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/models"
	"clinic-service/internal/app/services/core/scopes"
	"clinic-service/internal/app/services/shared/pdf"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockEvolutionRepository struct {
	mock.Mock
}

func (m *MockEvolutionRepository) FindAll(ctx context.Context, predicate models.Predicate) ([]models.Evolution, error) {
	args := m.Called(ctx, predicate)
	evolutions, _ := args.Get(0).([]models.Evolution)
	return evolutions, args.Error(1)
}

func (m *MockEvolutionRepository) FindByPatientID(ctx context.Context, patientID int64) ([]models.Evolution, error) {
	args := m.Called(ctx, patientID)
	evolutions, _ := args.Get(0).([]models.Evolution)
	return evolutions, args.Error(1)
}

func (m *MockEvolutionRepository) FindByID(ctx context.Context, evolutionID int64) (*models.Evolution, error) {
	args := m.Called(ctx, evolutionID)
	evolution, _ := args.Get(0).(*models.Evolution)
	return evolution, args.Error(1)
}

func (m *MockEvolutionRepository) Create(ctx context.Context, evolution *models.Evolution) (int64, error) {
	args := m.Called(ctx, evolution)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEvolutionRepository) Update(ctx context.Context, evolutionID int64, updateData map[string]interface{}) error {
	return m.Called(ctx, evolutionID, updateData).Error(0)
}

func (m *MockEvolutionRepository) Delete(ctx context.Context, evolutionID int64) error {
	return m.Called(ctx, evolutionID).Error(0)
}

type MockPDFConfigRepository struct {
	mock.Mock
}

func (m *MockPDFConfigRepository) FindByAdminID(ctx context.Context, adminID int64) (*models.PDFConfig, error) {
	args := m.Called(ctx, adminID)
	cfg, _ := args.Get(0).(*models.PDFConfig)
	return cfg, args.Error(1)
}

func (m *MockPDFConfigRepository) FindFirst(ctx context.Context) (*models.PDFConfig, error) {
	args := m.Called(ctx)
	cfg, _ := args.Get(0).(*models.PDFConfig)
	return cfg, args.Error(1)
}

func (m *MockPDFConfigRepository) CreateDefault(ctx context.Context, adminID int64) (int64, error) {
	args := m.Called(ctx, adminID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPDFConfigRepository) Update(ctx context.Context, configID int64, updateData map[string]interface{}) error {
	return m.Called(ctx, configID, updateData).Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, file, fileHeader, bucketName, objectName)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, bucketName, objectName)
	object, _ := args.Get(0).(io.ReadCloser)
	return object, args.String(1), args.Error(2)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderEvolution(evolution *models.Evolution, cfg *models.PDFConfig, logo io.Reader, logoContentType string) ([]byte, error) {
	args := m.Called(evolution, cfg, logo, logoContentType)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

type MockOwnershipRepository struct {
	mock.Mock
}

func (m *MockOwnershipRepository) FindOwner(ctx context.Context, family models.ResourceFamily, id int64) (*models.Ownership, error) {
	args := m.Called(ctx, family, id)
	ownership, _ := args.Get(0).(*models.Ownership)
	return ownership, args.Error(1)
}

var (
	adminIdentity        = &models.Identity{ID: 1, Email: "admin@clinic.test", Role: constvars.RoleAdmin}
	professionalIdentity = &models.Identity{ID: 5, Email: "pro@clinic.test", Role: constvars.RoleProfessional}
	internalConfig       = &config.InternalConfig{Minio: config.AppMinio{BucketName: "clinic"}}
)

func ownedBy(id int64) *models.Ownership { return &models.Ownership{OwnerID: &id} }

func int64Ptr(v int64) *int64 { return &v }

func stringPtr(s string) *string { return &s }

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %v", err)
	return customErr.StatusCode
}

type fixture struct {
	evolutions *MockEvolutionRepository
	pdfConfigs *MockPDFConfigRepository
	ownership  *MockOwnershipRepository
	storage    *MockStorage
	renderer   *MockRenderer
}

func newFixture() *fixture {
	return &fixture{
		evolutions: new(MockEvolutionRepository),
		pdfConfigs: new(MockPDFConfigRepository),
		ownership:  new(MockOwnershipRepository),
		storage:    new(MockStorage),
		renderer:   new(MockRenderer),
	}
}

func (f *fixture) usecase() *evolutionUsecase {
	uc := NewEvolutionUsecase(
		f.evolutions, f.pdfConfigs, scopes.NewScopeFilter(f.ownership, zap.NewNop()),
		f.storage, f.renderer, internalConfig, zap.NewNop(),
	).(*evolutionUsecase)
	uc.now = func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestEvolutionUsecase_FindByPatientID(t *testing.T) {
	ctx := context.Background()

	t.Run("Own patient lists every evolution of the patient", func(t *testing.T) {
		f := newFixture()
		f.ownership.On("FindOwner", ctx, scopes.Patients, int64(10)).Return(ownedBy(5), nil)
		f.evolutions.On("FindByPatientID", ctx, int64(10)).Return([]models.Evolution{{ID: 1}, {ID: 2, ProfessionalID: 6}}, nil)

		result, err := f.usecase().FindByPatientID(ctx, professionalIdentity, 10)
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("Foreign patient is forbidden", func(t *testing.T) {
		f := newFixture()
		f.ownership.On("FindOwner", ctx, scopes.Patients, int64(11)).Return(ownedBy(6), nil)

		_, err := f.usecase().FindByPatientID(ctx, professionalIdentity, 11)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
		f.evolutions.AssertNotCalled(t, "FindByPatientID", mock.Anything, mock.Anything)
	})
}

func TestEvolutionUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Professional authors evolution for own patient", func(t *testing.T) {
		f := newFixture()
		f.ownership.On("FindOwner", ctx, scopes.Patients, int64(10)).Return(ownedBy(5), nil)
		f.evolutions.On("Create", ctx, mock.MatchedBy(func(e *models.Evolution) bool { return e.ProfessionalID == 5 })).Return(int64(3), nil)

		created, err := f.usecase().Create(ctx, professionalIdentity, &requests.CreateEvolution{
			PatientID: 10, ProfessionalID: int64Ptr(9), Date: "2026-10-17", Description: "Session notes",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), created.ID)
	})

	t.Run("Unknown patient is forbidden to a professional", func(t *testing.T) {
		f := newFixture()
		f.ownership.On("FindOwner", ctx, scopes.Patients, int64(404)).Return(nil, nil)

		_, err := f.usecase().Create(ctx, professionalIdentity, &requests.CreateEvolution{PatientID: 404, Date: "2026-10-17", Description: "x"})
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
	})

	t.Run("Admin cannot author on behalf of a non professional", func(t *testing.T) {
		f := newFixture()
		f.ownership.On("FindOwner", ctx, scopes.Patients, int64(10)).Return(ownedBy(5), nil)
		f.ownership.On("FindOwner", ctx, scopes.Professionals, int64(2)).Return(nil, nil)

		_, err := f.usecase().Create(ctx, adminIdentity, &requests.CreateEvolution{
			PatientID: 10, ProfessionalID: int64Ptr(2), Date: "2026-10-17", Description: "x",
		})
		assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
		f.evolutions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown patient is not found for admin", func(t *testing.T) {
		f := newFixture()
		f.ownership.On("FindOwner", ctx, scopes.Patients, int64(404)).Return(nil, nil)

		_, err := f.usecase().Create(ctx, adminIdentity, &requests.CreateEvolution{PatientID: 404, Date: "2026-10-17", Description: "x"})
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
		f.evolutions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestEvolutionUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Author deletes own evolution", func(t *testing.T) {
		f := newFixture()
		f.ownership.On("FindOwner", ctx, scopes.Evolutions, int64(3)).Return(ownedBy(5), nil)
		f.evolutions.On("Delete", ctx, int64(3)).Return(nil)

		require.NoError(t, f.usecase().Delete(ctx, professionalIdentity, 3))
	})

	t.Run("Professional cannot delete a colleague's evolution", func(t *testing.T) {
		f := newFixture()
		f.ownership.On("FindOwner", ctx, scopes.Evolutions, int64(4)).Return(ownedBy(6), nil)

		err := f.usecase().Delete(ctx, professionalIdentity, 4)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
		f.evolutions.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestEvolutionUsecase_Update(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.ownership.On("FindOwner", ctx, scopes.Evolutions, int64(3)).Return(ownedBy(5), nil)
	f.evolutions.On("Update", ctx, int64(3), map[string]interface{}{"observations": "calmer"}).Return(nil)

	require.NoError(t, f.usecase().Update(ctx, professionalIdentity, 3, &requests.UpdateEvolution{Observations: stringPtr("calmer")}))

	err := f.usecase().Update(ctx, professionalIdentity, 3, &requests.UpdateEvolution{})
	assert.Equal(t, constvars.StatusBadRequest, statusOf(t, err))
}

func TestEvolutionUsecase_ExportPDF(t *testing.T) {
	ctx := context.Background()
	evolution := &models.Evolution{ID: 3, PatientID: 10, PatientName: "Maria Silva", ProfessionalID: 5, Date: "2026-10-17", Description: "Session"}

	t.Run("Defaults apply without stored configuration", func(t *testing.T) {
		f := newFixture()
		f.ownership.On("FindOwner", ctx, scopes.Evolutions, int64(3)).Return(ownedBy(5), nil)
		f.evolutions.On("FindByID", ctx, int64(3)).Return(evolution, nil)
		f.pdfConfigs.On("FindFirst", ctx).Return(nil, nil)
		f.renderer.On("RenderEvolution", evolution, pdf.DefaultConfig(), nil, "").Return([]byte("%PDF-1.3"), nil)

		document, err := f.usecase().ExportPDF(ctx, professionalIdentity, 3)
		require.NoError(t, err)
		assert.Equal(t, "evolution_Maria_Silva_2026-10-17.pdf", document.FileName)
		assert.Equal(t, []byte("%PDF-1.3"), document.Content)
		f.storage.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Stored logo is fetched from object storage", func(t *testing.T) {
		f := newFixture()
		cfg := pdf.DefaultConfig()
		cfg.LogoPath = stringPtr("logos/logo.png")
		logo := io.NopCloser(bytes.NewReader([]byte("png")))

		f.ownership.On("FindOwner", ctx, scopes.Evolutions, int64(3)).Return(ownedBy(5), nil)
		f.evolutions.On("FindByID", ctx, int64(3)).Return(evolution, nil)
		f.pdfConfigs.On("FindFirst", ctx).Return(cfg, nil)
		f.storage.On("GetObject", ctx, "clinic", "logos/logo.png").Return(logo, "image/png", nil)
		f.renderer.On("RenderEvolution", evolution, cfg, logo, "image/png").Return([]byte("%PDF-1.3"), nil)

		_, err := f.usecase().ExportPDF(ctx, adminIdentity, 3)
		require.NoError(t, err)
		f.renderer.AssertExpectations(t)
	})

	t.Run("Missing logo does not fail the export", func(t *testing.T) {
		f := newFixture()
		cfg := pdf.DefaultConfig()
		cfg.LogoPath = stringPtr("logos/gone.png")

		f.ownership.On("FindOwner", ctx, scopes.Evolutions, int64(3)).Return(ownedBy(5), nil)
		f.evolutions.On("FindByID", ctx, int64(3)).Return(evolution, nil)
		f.pdfConfigs.On("FindFirst", ctx).Return(cfg, nil)
		f.storage.On("GetObject", ctx, "clinic", "logos/gone.png").Return(nil, "", errors.New("no such key"))
		f.renderer.On("RenderEvolution", evolution, cfg, nil, "").Return([]byte("%PDF-1.3"), nil)

		_, err := f.usecase().ExportPDF(ctx, adminIdentity, 3)
		require.NoError(t, err)
	})

	t.Run("Colleague's evolution is forbidden", func(t *testing.T) {
		f := newFixture()
		f.ownership.On("FindOwner", ctx, scopes.Evolutions, int64(3)).Return(ownedBy(6), nil)

		_, err := f.usecase().ExportPDF(ctx, professionalIdentity, 3)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
		f.renderer.AssertNotCalled(t, "RenderEvolution", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Real renderer produces a PDF document", func(t *testing.T) {
		f := newFixture()
		f.ownership.On("FindOwner", ctx, scopes.Evolutions, int64(3)).Return(ownedBy(5), nil)
		f.evolutions.On("FindByID", ctx, int64(3)).Return(evolution, nil)
		f.pdfConfigs.On("FindFirst", ctx).Return(nil, nil)

		uc := f.usecase()
		uc.Renderer = pdf.NewEvolutionRenderer()
		document, err := uc.ExportPDF(ctx, professionalIdentity, 3)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(document.Content, []byte("%PDF")))
	})
}
