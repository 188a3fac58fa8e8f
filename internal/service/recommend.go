package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/sweetmoments/storefront/internal/provider"
	apperrors "github.com/sweetmoments/storefront/pkg/errors"
)

const (
	// Fallback copy keeps the assistant friendly when the backend is not
	// cooperating. The storefront never surfaces raw provider errors.
	msgMissingKey  = "I'm currently unable to access my sweet wisdom (API Key missing). Please check the shop collection manually!"
	msgBackendDown = "I'm having a bit of a sugar crash! Let me try again in a moment."
	msgNoMatch     = "I'm sorry, I couldn't find a perfect match. How about our Classic Kaju Katli?"
)

const maxPromptLength = 500

// RecommendService is the sweet assistant. It grounds a text generation
// provider in the live catalog and always answers with usable copy, even
// when the provider fails.
type RecommendService struct {
	generator provider.TextGenerator
	catalog   *CatalogService
	logger    *slog.Logger
}

// NewRecommendService creates the assistant service.
func NewRecommendService(generator provider.TextGenerator, catalog *CatalogService, logger *slog.Logger) *RecommendService {
	return &RecommendService{
		generator: generator,
		catalog:   catalog,
		logger:    logger,
	}
}

// Recommend answers a shopper's request with 1-2 product suggestions. Provider
// failures degrade to canned copy instead of an error; only an unusable
// request is rejected.
func (s *RecommendService) Recommend(ctx context.Context, userPrompt string) (string, error) {
	userPrompt = strings.TrimSpace(userPrompt)
	if userPrompt == "" {
		return "", apperrors.InvalidInput("prompt is required")
	}
	if utf8.RuneCountInString(userPrompt) > maxPromptLength {
		return "", apperrors.InvalidInput(fmt.Sprintf("prompt must be at most %d characters", maxPromptLength))
	}

	text, err := s.generator.GenerateText(ctx, s.buildPrompt(ctx, userPrompt))
	if err != nil {
		if errors.Is(err, provider.ErrMissingAPIKey) {
			s.logger.WarnContext(ctx, "assistant running without api key")
			return msgMissingKey, nil
		}
		s.logger.ErrorContext(ctx, "text generation failed",
			slog.String("error", err.Error()))
		return msgBackendDown, nil
	}
	if strings.TrimSpace(text) == "" {
		return msgNoMatch, nil
	}
	return text, nil
}

func (s *RecommendService) buildPrompt(ctx context.Context, userPrompt string) string {
	var sb strings.Builder
	for _, p := range s.catalog.ListProducts(ctx) {
		fmt.Fprintf(&sb, "%s (%s): %s. Price: ₹%d\n", p.Name, p.Category, p.Description, p.EffectivePrice())
	}

	return fmt.Sprintf(`You are a "Sweet Assistant" for SweetMoments, an artisanal sweet shop.
Here are our products:
%s
User wants: %q

Recommend 1-2 specific products from our list that match their need.
Keep it warm, professional, and slightly poetic about the sweets.
If they ask for something we don't have, politely suggest the closest match.
Use Markdown formatting.`, sb.String(), userPrompt)
}
