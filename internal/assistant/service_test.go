package assistant

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
	"github.com/imakhan79/Grocery-Mart/pkg/logger"
	"github.com/imakhan79/Grocery-Mart/pkg/metrics"
)

type stubGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type stubNamer struct {
	names []string
	err   error
}

func (s *stubNamer) ListNames(ctx context.Context) ([]string, error) {
	return s.names, s.err
}

func newTestService(t *testing.T, generator Generator, namer ProductNamer) (Service, *prometheus.Registry) {
	t.Helper()

	registry := prometheus.NewRegistry()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	svc, err := NewService(generator, namer, logg, metrics.NewAPIMetrics(registry))
	require.NoError(t, err)
	return svc, registry
}

func outcomeCount(t *testing.T, registry *prometheus.Registry, outcome string) float64 {
	t.Helper()

	families, err := registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != "assistant_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "outcome" && label.GetValue() == outcome {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestAskGroundsPromptOnCatalog(t *testing.T) {
	generator := &stubGenerator{reply: "Try our Organic Bananas in a smoothie."}
	svc, registry := newTestService(t, generator, &stubNamer{names: []string{"Organic Bananas", "Whole Milk"}})

	reply, err := svc.Ask(context.Background(), "What should I make for breakfast?")
	require.NoError(t, err)
	assert.Equal(t, "Try our Organic Bananas in a smoothie.", reply)

	require.Len(t, generator.prompts, 1)
	assert.Contains(t, generator.prompts[0], "Organic Bananas, Whole Milk")
	assert.Contains(t, generator.prompts[0], "What should I make for breakfast?")
	assert.Equal(t, 1.0, outcomeCount(t, registry, "ok"))
}

func TestAskFallsBackWhenModelFails(t *testing.T) {
	generator := &stubGenerator{err: fmt.Errorf("gemini returned status 503")}
	svc, registry := newTestService(t, generator, &stubNamer{names: []string{"Organic Bananas"}})

	reply, err := svc.Ask(context.Background(), "any deals?")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
	assert.Equal(t, 1.0, outcomeCount(t, registry, "fallback"))
}

func TestAskFallsBackWhenCatalogUnavailable(t *testing.T) {
	generator := &stubGenerator{reply: "unused"}
	svc, _ := newTestService(t, generator, &stubNamer{err: fmt.Errorf("db closed")})

	reply, err := svc.Ask(context.Background(), "any deals?")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
	assert.Empty(t, generator.prompts)
}

func TestAskRejectsEmptyMessage(t *testing.T) {
	svc, _ := newTestService(t, &stubGenerator{}, &stubNamer{})

	_, err := svc.Ask(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}
