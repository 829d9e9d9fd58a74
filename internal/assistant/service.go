package assistant

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
	"github.com/imakhan79/Grocery-Mart/pkg/logger"
	"github.com/imakhan79/Grocery-Mart/pkg/metrics"
)

// FallbackReply is returned whenever the model cannot be reached or answers
// with nothing usable. The endpoint itself never fails.
const FallbackReply = "Assistant currently offline. Try asking about our fresh organic bananas!"

const promptTemplate = "You are an expert grocery assistant for FreshMart Pro. " +
	"Help the user find products or suggest recipes based on available stock: %s. User says: %s"

// Generator produces a model reply for a prompt. Implemented by GeminiClient.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProductNamer lists catalog product names for prompt grounding. Implemented
// by the catalog repository.
type ProductNamer interface {
	ListNames(ctx context.Context) ([]string, error)
}

// Service answers shopper questions about the catalog.
type Service interface {
	Ask(ctx context.Context, message string) (string, error)
}

type service struct {
	generator Generator
	products  ProductNamer
	logg      *logger.Logger
	metrics   *metrics.APIMetrics
}

// NewService wires assistant dependencies.
func NewService(generator Generator, products ProductNamer, logg *logger.Logger, apiMetrics *metrics.APIMetrics) (Service, error) {
	if generator == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "generator required")
	}
	if products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "product namer required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &service{generator: generator, products: products, logg: logg, metrics: apiMetrics}, nil
}

// Ask grounds the prompt on current product names and calls the model. Any
// failure along the way degrades to the canned fallback reply.
func (s *service) Ask(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "message required")
	}

	names, err := s.products.ListNames(ctx)
	if err != nil {
		s.logg.Error(ctx, "assistant could not list products", err)
		s.metrics.IncAssistantOutcome("fallback")
		return FallbackReply, nil
	}

	prompt := fmt.Sprintf(promptTemplate, strings.Join(names, ", "), message)
	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logg.Warn(ctx, fmt.Sprintf("assistant degraded to fallback: %v", err))
		s.metrics.IncAssistantOutcome("fallback")
		return FallbackReply, nil
	}

	s.metrics.IncAssistantOutcome("ok")
	return reply, nil
}
