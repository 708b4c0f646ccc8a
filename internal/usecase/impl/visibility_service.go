package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "vault/internal/delivery/context"
	"vault/internal/domain/entity"
	domainerrors "vault/internal/domain/errors"
	"vault/internal/domain/repository"
	"vault/internal/domain/service"
	"vault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// outputSnapshotLimit bounds how much raw model output is persisted with
// an audit result.
const outputSnapshotLimit = 500

// Heuristic fallback scoring, applied when the model is unavailable.
const (
	fallbackJSONLDPoints      = 30
	fallbackServicesPoints    = 20
	fallbackMediaPoints       = 20
	fallbackDescriptionPoints = 10
	fallbackScoreCap          = 50
	fallbackMediaThreshold    = 3
	fallbackDescriptionMinLen = 50
)

// visibilityService implements the VisibilityUsecase interface.
type visibilityService struct {
	txManager repository.TransactionManager
	generator service.TextGenerator
	fetcher   service.SiteFetcher
	logger    *slog.Logger
}

// VisibilityServiceParams defines the dependencies for creating a
// visibilityService.
type VisibilityServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Generator service.TextGenerator
	Fetcher   service.SiteFetcher
	Logger    *slog.Logger
}

// NewVisibilityService is the constructor for visibilityService.
func NewVisibilityService(params VisibilityServiceParams) usecase.VisibilityUsecase {
	return &visibilityService{
		txManager: params.TxManager,
		generator: params.Generator,
		fetcher:   params.Fetcher,
		logger:    params.Logger,
	}
}

func (srv *visibilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCheckRequest logs an audit request for a business.
func (srv *visibilityService) CreateCheckRequest(ctx context.Context, input *usecase.CreateCheckInput) (*entity.VisibilityCheckRequest, error) {
	var created *entity.VisibilityCheckRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireBusiness(ctx, repoFactory, input.BusinessID); err != nil {
			return err
		}

		req := &entity.VisibilityCheckRequest{
			BusinessID: input.BusinessID,
			CheckType:  input.CheckType,
			InputData:  input.InputData,
		}
		if err := repoFactory.VisibilityRepo().CreateCheckRequest(ctx, req); err != nil {
			return errors.Wrap(err, "failed to create check request")
		}
		created = req

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute check request transaction")
	}

	return created, nil
}

// ListCheckRequests retrieves a page of a business's audit requests.
func (srv *visibilityService) ListCheckRequests(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.VisibilityCheckRequest, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	var page []*entity.VisibilityCheckRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requests, err := repoFactory.VisibilityRepo().FindChecksByBusiness(ctx, businessID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list check requests")
		}
		page = requests

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute check request list transaction")
	}

	return page, nil
}

// ListResults retrieves a page of a business's audit results.
func (srv *visibilityService) ListResults(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.VisibilityCheckResult, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	var page []*entity.VisibilityCheckResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		results, err := repoFactory.VisibilityRepo().FindResultsByBusiness(ctx, businessID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list check results")
		}
		page = results

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute check result list transaction")
	}

	return page, nil
}

// CreateSuggestion records an improvement suggestion in the pending state.
func (srv *visibilityService) CreateSuggestion(ctx context.Context, input *usecase.CreateSuggestionInput) (*entity.VisibilitySuggestion, error) {
	var created *entity.VisibilitySuggestion

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireBusiness(ctx, repoFactory, input.BusinessID); err != nil {
			return err
		}

		suggestion := &entity.VisibilitySuggestion{
			BusinessID:     input.BusinessID,
			SuggestionType: input.SuggestionType,
			Title:          input.Title,
			Status:         entity.SuggestionStatusPending,
		}
		if err := repoFactory.VisibilityRepo().CreateSuggestion(ctx, suggestion); err != nil {
			return errors.Wrap(err, "failed to create suggestion")
		}
		created = suggestion

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute suggestion creation transaction")
	}

	return created, nil
}

// ListSuggestions retrieves a page of a business's suggestions.
func (srv *visibilityService) ListSuggestions(ctx context.Context, businessID uuid.UUID, status string, limit, offset int) ([]*entity.VisibilitySuggestion, error) {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}

	var page []*entity.VisibilitySuggestion

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		suggestions, err := repoFactory.VisibilityRepo().FindSuggestionsByBusiness(ctx, businessID, status, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list suggestions")
		}
		page = suggestions

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute suggestion list transaction")
	}

	return page, nil
}

// auditFacts is the profile summary an audit run grades.
type auditFacts struct {
	business     *entity.BusinessProfile
	serviceCount int
	mediaCount   int64
	jsonLDExists bool
}

// RunAudit collates the profile facts, records the request, asks the model
// for a strict visibility grade and persists the result. When the model is
// unavailable it falls back to a deterministic heuristic score, so a result
// row is recorded either way.
func (srv *visibilityService) RunAudit(ctx context.Context, businessID uuid.UUID) (*entity.VisibilityCheckResult, error) {
	srv.log(ctx).Info("Running visibility audit", slog.Any("businessID", businessID))

	var (
		facts auditFacts
		check *entity.VisibilityCheckRequest
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		business, err := repoFactory.BusinessRepo().FindByID(ctx, businessID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
			}

			return errors.Wrap(err, "failed to find business")
		}
		facts.business = business

		services, err := repoFactory.ServiceRepo().FindByBusiness(ctx, businessID, 0, 0)
		if err != nil {
			return errors.Wrap(err, "failed to load services")
		}
		facts.serviceCount = len(services)

		mediaCount, err := repoFactory.MediaRepo().CountByBusiness(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "failed to count media assets")
		}
		facts.mediaCount = mediaCount

		feedCount, err := repoFactory.JsonLDRepo().CountByBusiness(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "failed to count jsonld feeds")
		}
		facts.jsonLDExists = feedCount > 0

		req := &entity.VisibilityCheckRequest{
			BusinessID: businessID,
			CheckType:  entity.CheckTypeVisibility,
			InputData: fmt.Sprintf("Services: %d, Media: %d, JSON-LD: %t",
				facts.serviceCount, facts.mediaCount, facts.jsonLDExists),
		}
		if err := repoFactory.VisibilityRepo().CreateCheckRequest(ctx, req); err != nil {
			return errors.Wrap(err, "failed to create check request")
		}
		check = req

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute audit collation transaction")
	}

	result := srv.gradeProfile(ctx, check, &facts)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.VisibilityRepo().CreateResult(ctx, result); err != nil {
			return errors.Wrap(err, "failed to create check result")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute audit result transaction")
	}

	return result, nil
}

// gradeProfile asks the model for a grade and falls back to the heuristic
// score when the call or its JSON answer fails.
func (srv *visibilityService) gradeProfile(ctx context.Context, check *entity.VisibilityCheckRequest, facts *auditFacts) *entity.VisibilityCheckResult {
	prompt := fmt.Sprintf(
		"Act as a Strict SEO Auditor. Grade this business profile for visibility to AI Agents and Humans.\n"+
			"DATA: %s, Services: %d, Images: %d, JSON-LD: %t.\n"+
			"Base score is 0. Deduct points for missing schema, few images, or short descriptions.\n"+
			"Return JSON with score, bot_analysis, human_analysis, issues, and recommendations.",
		facts.business.Name, facts.serviceCount, facts.mediaCount, facts.jsonLDExists,
	)

	raw, err := srv.generator.Generate(ctx, prompt)
	if err != nil {
		srv.log(ctx).Warn("Visibility grading failed, applying heuristic score", slog.Any("error", err))

		return srv.heuristicResult(check, facts, err)
	}

	cleanText := stripCodeFences(raw)

	var graded map[string]any
	if err := json.Unmarshal([]byte(cleanText), &graded); err != nil {
		srv.log(ctx).Warn("Visibility grade is not valid JSON, applying heuristic score", slog.Any("error", err))

		return srv.heuristicResult(check, facts, err)
	}

	score := decimal.Zero
	if v, ok := graded["score"].(float64); ok {
		score = decimal.NewFromFloat(v)
	}

	snapshot := truncateUTF8(cleanText, outputSnapshotLimit)

	return &entity.VisibilityCheckResult{
		RequestID:       check.ID,
		BusinessID:      check.BusinessID,
		VisibilityScore: score,
		IssuesFound:     joinOrString(graded["issues"], "; "),
		Recommendations: fmt.Sprintf("[BOTS]: %v || [HUMANS]: %v || ACTIONS: %s",
			graded["bot_analysis"], graded["human_analysis"],
			joinOrString(graded["recommendations"], "; ")),
		OutputSnapshot: snapshot,
		CompletedAt:    time.Now().UTC(),
	}
}

// heuristicResult computes the deterministic fallback score from the
// collated facts. The capped score keeps fallback grades clearly below a
// genuine model grade.
func (srv *visibilityService) heuristicResult(check *entity.VisibilityCheckRequest, facts *auditFacts, cause error) *entity.VisibilityCheckResult {
	score := 0
	if facts.jsonLDExists {
		score += fallbackJSONLDPoints
	}
	if facts.serviceCount > 0 {
		score += fallbackServicesPoints
	}
	if facts.mediaCount >= fallbackMediaThreshold {
		score += fallbackMediaPoints
	}
	if len(facts.business.Description) >= fallbackDescriptionMinLen {
		score += fallbackDescriptionPoints
	}
	if score > fallbackScoreCap {
		score = fallbackScoreCap
	}

	return &entity.VisibilityCheckResult{
		RequestID:       check.ID,
		BusinessID:      check.BusinessID,
		VisibilityScore: decimal.NewFromInt(int64(score)),
		IssuesFound:     fmt.Sprintf("AI Error: %v", cause),
		Recommendations: "Check API Quota",
		CompletedAt:     time.Now().UTC(),
	}
}

// AuditExternalSite scrapes a live website and asks the model to grade its
// SEO health. Scrape and model failures come back as structured report
// entries, never as transport or server errors.
func (srv *visibilityService) AuditExternalSite(ctx context.Context, input *usecase.ExternalAuditInput) (usecase.ExternalAuditReport, error) {
	srv.log(ctx).Info("Auditing external site", slog.String("url", input.URL))

	snapshot, err := srv.fetcher.Fetch(ctx, input.URL)
	if err != nil {
		srv.log(ctx).Warn("External site scrape failed", slog.String("url", input.URL), slog.Any("error", err))

		return usecase.ExternalAuditReport{
			"error":           fmt.Sprintf("Scrape Failed: %v", err),
			"score":           0,
			"bot_analysis":    "Unreachable",
			"recommendations": []string{"Check URL", "Ensure site allows crawlers"},
		}, nil
	}

	prompt := fmt.Sprintf("Analyze website SEO: URL %s, Title %s, Description %s, JSON-LD %t. Grade 0-100.",
		input.URL, snapshot.Title, snapshot.MetaDescription, snapshot.HasJSONLD)

	raw, err := srv.generator.Generate(ctx, prompt)
	if err != nil {
		return usecase.ExternalAuditReport{"error": "AI Analysis Failed", "details": err.Error()}, nil
	}

	var report usecase.ExternalAuditReport
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &report); err != nil {
		return usecase.ExternalAuditReport{"error": "AI Analysis Failed", "details": err.Error()}, nil
	}

	return report, nil
}
