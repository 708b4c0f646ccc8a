package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	"vault/internal/domain/service"
	mockRepo "vault/internal/mocks/repository"
	mockService "vault/internal/mocks/service"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// visibilityServiceFixtures holds all test dependencies for visibility
// service tests.
type visibilityServiceFixtures struct {
	service   usecase.VisibilityUsecase
	txManager *mockRepo.MockTransactionManager
	generator *mockService.MockTextGenerator
	fetcher   *mockService.MockSiteFetcher
}

func createTestVisibilityService(t *testing.T) visibilityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	generator := mockService.NewMockTextGenerator(t)
	fetcher := mockService.NewMockSiteFetcher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewVisibilityService(VisibilityServiceParams{
		TxManager: txManager,
		Generator: generator,
		Fetcher:   fetcher,
		Logger:    logger,
	})

	return visibilityServiceFixtures{
		service:   svc,
		txManager: txManager,
		generator: generator,
		fetcher:   fetcher,
	}
}

// expectAuditCollation wires the first audit transaction: profile facts are
// gathered and the check request row is recorded.
func expectAuditCollation(t *testing.T, fx visibilityServiceFixtures, ctx context.Context, business *entity.BusinessProfile, services []*entity.Service, mediaCount int64, feedCount int64) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockMediaRepo := mockRepo.NewMockMediaRepository(t)
			mockFeedRepo := mockRepo.NewMockJsonLDFeedRepository(t)
			mockVisibilityRepo := mockRepo.NewMockVisibilityRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().ServiceRepo().Return(mockServiceRepo)
			mockFactory.EXPECT().MediaRepo().Return(mockMediaRepo)
			mockFactory.EXPECT().JsonLDRepo().Return(mockFeedRepo)
			mockFactory.EXPECT().VisibilityRepo().Return(mockVisibilityRepo)

			mockBusinessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
			mockServiceRepo.EXPECT().FindByBusiness(ctx, business.ID, 0, 0).Return(services, nil)
			mockMediaRepo.EXPECT().CountByBusiness(ctx, business.ID).Return(mediaCount, nil)
			mockFeedRepo.EXPECT().CountByBusiness(ctx, business.ID).Return(feedCount, nil)
			mockVisibilityRepo.EXPECT().
				CreateCheckRequest(ctx, mock.AnythingOfType("*entity.VisibilityCheckRequest")).
				Run(func(ctx context.Context, req *entity.VisibilityCheckRequest) {
					req.ID = uuid.New()
					assert.Equal(t, entity.CheckTypeVisibility, req.CheckType)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()
}

// expectResultPersist wires the second audit transaction that stores the
// result row.
func expectResultPersist(t *testing.T, fx visibilityServiceFixtures, ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockVisibilityRepo := mockRepo.NewMockVisibilityRepository(t)

			mockFactory.EXPECT().VisibilityRepo().Return(mockVisibilityRepo)
			mockVisibilityRepo.EXPECT().
				CreateResult(ctx, mock.AnythingOfType("*entity.VisibilityCheckResult")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil).
		Once()
}

func TestVisibilityService_RunAudit_ModelGrade(t *testing.T) {
	fx := createTestVisibilityService(t)

	ctx := context.Background()
	business := &entity.BusinessProfile{ID: uuid.New(), Name: "Joe's Cafe"}
	services := []*entity.Service{{Name: "Espresso"}}

	expectAuditCollation(t, fx, ctx, business, services, 4, 1)

	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, prompt string) {
			assert.Contains(t, prompt, "Act as a Strict SEO Auditor")
			assert.Contains(t, prompt, "Joe's Cafe, Services: 1, Images: 4, JSON-LD: true")
		}).
		Return(`{"score": 72.5, "bot_analysis": "Schema present", "human_analysis": "Good imagery", "issues": ["Short description"], "recommendations": ["Expand description", "Add alt text"]}`, nil)

	expectResultPersist(t, fx, ctx)

	result, err := fx.service.RunAudit(ctx, business.ID)

	require.NoError(t, err)
	assert.Equal(t, "72.5", result.VisibilityScore.String())
	assert.Equal(t, "Short description", result.IssuesFound)
	assert.Equal(t,
		"[BOTS]: Schema present || [HUMANS]: Good imagery || ACTIONS: Expand description; Add alt text",
		result.Recommendations)
	assert.NotEmpty(t, result.OutputSnapshot)
}

func TestVisibilityService_RunAudit_SnapshotIsBounded(t *testing.T) {
	fx := createTestVisibilityService(t)

	ctx := context.Background()
	business := &entity.BusinessProfile{ID: uuid.New(), Name: "Joe's Cafe"}

	longAnalysis := strings.Repeat("x", 600)
	expectAuditCollation(t, fx, ctx, business, nil, 0, 0)

	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("string")).
		Return(`{"score": 10, "bot_analysis": "`+longAnalysis+`"}`, nil)

	expectResultPersist(t, fx, ctx)

	result, err := fx.service.RunAudit(ctx, business.ID)

	require.NoError(t, err)
	assert.Len(t, result.OutputSnapshot, 500)
}

func TestVisibilityService_RunAudit_SnapshotKeepsRunesIntact(t *testing.T) {
	fx := createTestVisibilityService(t)

	ctx := context.Background()
	business := &entity.BusinessProfile{ID: uuid.New(), Name: "Joe's Cafe"}

	// The two-byte runes are laid out so the byte limit lands mid-rune.
	longAnalysis := strings.Repeat("é", 300)
	expectAuditCollation(t, fx, ctx, business, nil, 0, 0)

	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("string")).
		Return(`{"score": 10, "bot_analysis": "`+longAnalysis+`"}`, nil)

	expectResultPersist(t, fx, ctx)

	result, err := fx.service.RunAudit(ctx, business.ID)

	require.NoError(t, err)
	assert.LessOrEqual(t, len(result.OutputSnapshot), 500)
	assert.True(t, utf8.ValidString(result.OutputSnapshot))
}

func TestVisibilityService_RunAudit_HeuristicFallback(t *testing.T) {
	fx := createTestVisibilityService(t)

	ctx := context.Background()
	business := &entity.BusinessProfile{
		ID:          uuid.New(),
		Name:        "Joe's Cafe",
		Description: strings.Repeat("Great coffee and cozy seating. ", 3),
	}
	services := []*entity.Service{{Name: "Espresso"}}

	// Full marks on every heuristic still caps below a genuine model grade.
	expectAuditCollation(t, fx, ctx, business, services, 5, 2)

	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("string")).
		Return("", errors.New("quota exceeded"))

	expectResultPersist(t, fx, ctx)

	result, err := fx.service.RunAudit(ctx, business.ID)

	require.NoError(t, err)
	assert.Equal(t, "50", result.VisibilityScore.String())
	assert.Contains(t, result.IssuesFound, "AI Error")
	assert.Equal(t, "Check API Quota", result.Recommendations)
}

func TestVisibilityService_RunAudit_HeuristicPartialScore(t *testing.T) {
	fx := createTestVisibilityService(t)

	ctx := context.Background()
	business := &entity.BusinessProfile{ID: uuid.New(), Name: "Bare Profile"}

	// No schema, no services, no media, short description.
	expectAuditCollation(t, fx, ctx, business, nil, 0, 0)

	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("string")).
		Return("not json at all", nil)

	expectResultPersist(t, fx, ctx)

	result, err := fx.service.RunAudit(ctx, business.ID)

	require.NoError(t, err)
	assert.Equal(t, "0", result.VisibilityScore.String())
}

func TestVisibilityService_RunAudit_BusinessNotFound(t *testing.T) {
	fx := createTestVisibilityService(t)

	ctx := context.Background()
	businessID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).
				Return(nil, repository.ErrBusinessNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found"))

	_, err := fx.service.RunAudit(ctx, businessID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestVisibilityService_CreateSuggestion_StartsPending(t *testing.T) {
	fx := createTestVisibilityService(t)

	ctx := context.Background()
	businessID := uuid.New()
	input := &usecase.CreateSuggestionInput{
		BusinessID:     businessID,
		SuggestionType: "metadata_enhancement",
		Title:          "Add alt text to gallery images",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
			mockVisibilityRepo := mockRepo.NewMockVisibilityRepository(t)

			mockFactory.EXPECT().BusinessRepo().Return(mockBusinessRepo)
			mockFactory.EXPECT().VisibilityRepo().Return(mockVisibilityRepo)
			mockBusinessRepo.EXPECT().FindByID(ctx, businessID).
				Return(&entity.BusinessProfile{ID: businessID}, nil)
			mockVisibilityRepo.EXPECT().
				CreateSuggestion(ctx, mock.AnythingOfType("*entity.VisibilitySuggestion")).
				Run(func(ctx context.Context, suggestion *entity.VisibilitySuggestion) {
					suggestion.ID = uuid.New()
					assert.Equal(t, entity.SuggestionStatusPending, suggestion.Status)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	suggestion, err := fx.service.CreateSuggestion(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.SuggestionStatusPending, suggestion.Status)
}

func TestVisibilityService_AuditExternalSite_Success(t *testing.T) {
	fx := createTestVisibilityService(t)

	ctx := context.Background()
	input := &usecase.ExternalAuditInput{URL: "https://joescafe.example.com"}

	snapshot := &service.PageSnapshot{
		URL:             input.URL,
		StatusCode:      200,
		Title:           "Joe's Cafe | Bengaluru",
		MetaDescription: "Espresso bar on MG Road",
		HasJSONLD:       true,
	}

	fx.fetcher.EXPECT().Fetch(ctx, input.URL).Return(snapshot, nil)
	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, prompt string) {
			assert.Contains(t, prompt, "Analyze website SEO")
			assert.Contains(t, prompt, "Title Joe's Cafe | Bengaluru")
			assert.Contains(t, prompt, "JSON-LD true")
		}).
		Return("```json\n{\"score\": 85, \"bot_analysis\": \"Strong\"}\n```", nil)

	report, err := fx.service.AuditExternalSite(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, float64(85), report["score"])
	assert.Equal(t, "Strong", report["bot_analysis"])
}

func TestVisibilityService_AuditExternalSite_ScrapeFailure(t *testing.T) {
	fx := createTestVisibilityService(t)

	ctx := context.Background()
	input := &usecase.ExternalAuditInput{URL: "https://unreachable.example.com"}

	fx.fetcher.EXPECT().
		Fetch(ctx, input.URL).
		Return(nil, errors.New("connection refused"))

	report, err := fx.service.AuditExternalSite(ctx, input)

	// A dead website is a finding, not a server error.
	require.NoError(t, err)
	assert.Contains(t, report["error"], "Scrape Failed")
	assert.Equal(t, 0, report["score"])
	assert.Equal(t, "Unreachable", report["bot_analysis"])
	assert.Equal(t, []string{"Check URL", "Ensure site allows crawlers"}, report["recommendations"])
}

func TestVisibilityService_AuditExternalSite_ModelFailure(t *testing.T) {
	fx := createTestVisibilityService(t)

	ctx := context.Background()
	input := &usecase.ExternalAuditInput{URL: "https://joescafe.example.com"}

	snapshot := &service.PageSnapshot{URL: input.URL, Title: "Joe's Cafe"}

	fx.fetcher.EXPECT().Fetch(ctx, input.URL).Return(snapshot, nil)
	fx.generator.EXPECT().
		Generate(ctx, mock.AnythingOfType("string")).
		Return("", errors.New("quota exceeded"))

	report, err := fx.service.AuditExternalSite(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "AI Analysis Failed", report["error"])
	assert.Contains(t, report["details"], "quota exceeded")
}
