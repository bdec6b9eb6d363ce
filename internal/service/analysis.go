package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/modelproof/biasradar-api/internal/analyzer"
	"github.com/modelproof/biasradar-api/internal/api/dto"
	"github.com/modelproof/biasradar-api/internal/config"
	"github.com/modelproof/biasradar-api/internal/domain"
	"github.com/modelproof/biasradar-api/pkg/textutil"
)

//go:generate mockery --name Analyzer --output ../mocks
type Analyzer interface {
	Scan(ctx context.Context, text string, biasTypes []string) (json.RawMessage, error)
	Fix(ctx context.Context, text string, biasTypes []string) (json.RawMessage, error)
}

// AnalysisService is the dispatcher core: it validates and sanitizes input,
// forwards it to the analyzer, meters usage on success and shapes the
// response envelope. Authentication and the quota decision happen before a
// request reaches it.
type AnalysisService struct {
	quota    *QuotaService
	analyzer Analyzer
	cfg      *config.Config
}

func NewAnalysisService(quota *QuotaService, analyzer Analyzer, cfg *config.Config) *AnalysisService {
	return &AnalysisService{
		quota:    quota,
		analyzer: analyzer,
		cfg:      cfg,
	}
}

// Scan forwards text for bias detection, honoring the caller's category
// selection.
func (s *AnalysisService) Scan(ctx context.Context, org *domain.Organization, req dto.ScanRequest) (dto.AnalysisResponse, error) {
	text, err := s.prepareText(org, req.Text)
	if err != nil {
		return dto.AnalysisResponse{}, err
	}

	biasTypes := req.BiasTypes
	if len(biasTypes) == 0 {
		biasTypes = domain.AllBiasTypes
	}

	data, err := s.analyzer.Scan(ctx, text, biasTypes)
	if err != nil {
		return dto.AnalysisResponse{}, upstreamError("Failed to scan text", err)
	}

	return s.metered(ctx, org, data)
}

// Fix forwards text for bias rewriting. The fix endpoint always evaluates
// the full category list.
func (s *AnalysisService) Fix(ctx context.Context, org *domain.Organization, req dto.FixRequest) (dto.AnalysisResponse, error) {
	text, err := s.prepareText(org, req.Text)
	if err != nil {
		return dto.AnalysisResponse{}, err
	}

	data, err := s.analyzer.Fix(ctx, text, domain.AllBiasTypes)
	if err != nil {
		return dto.AnalysisResponse{}, upstreamError("Failed to fix text", err)
	}

	return s.metered(ctx, org, data)
}

// metered records one successful call and builds the response envelope.
// Runs only after downstream success; failed calls are never metered.
func (s *AnalysisService) metered(ctx context.Context, org *domain.Organization, data json.RawMessage) (dto.AnalysisResponse, error) {
	if err := s.quota.Record(ctx, org.ID); err != nil {
		return dto.AnalysisResponse{}, err
	}

	remaining := dto.RequestsRemaining{Unlimited: true}
	if !org.IsPaid {
		remaining = dto.RequestsRemaining{Count: s.quota.Remaining(org, 1)}
	}

	return dto.AnalysisResponse{
		Success:           true,
		Data:              data,
		RequestsRemaining: remaining,
	}, nil
}

// prepareText validates the text field against the plan's character ceiling
// and strips markup before the text leaves the gateway.
func (s *AnalysisService) prepareText(org *domain.Organization, text string) (string, error) {
	if text == "" {
		return "", ErrBadRequest("Text is required")
	}

	limit := s.cfg.FreeTextLimit
	if org.IsPaid {
		limit = s.cfg.PaidTextLimit
	}
	if utf8.RuneCountInString(text) > limit {
		return "", ErrBadRequest(fmt.Sprintf("Text exceeds maximum length of %d characters", limit))
	}

	sanitized := textutil.Sanitize(text)
	if sanitized == "" {
		return "", ErrBadRequest("Text is required")
	}

	return sanitized, nil
}

// upstreamError translates an analyzer failure, preserving the diagnostic
// detail the analysis service supplied.
func upstreamError(message string, err error) *Error {
	var aerr *analyzer.Error
	if errors.As(err, &aerr) {
		return ErrUpstream(message, aerr.Detail)
	}
	return ErrUpstream(message, err.Error())
}
