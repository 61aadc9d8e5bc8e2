package llm

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog/log"
)

type purposeKey struct{}

// WithPurpose tags ctx so request logs say what the call was for.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}

// LoggingProvider logs every request with its latency and token usage.
type LoggingProvider struct {
	inner Provider
}

func WithLogging(p Provider) Provider {
	return &LoggingProvider{inner: p}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	if err != nil {
		log.Warn().Err(err).
			Str("model", l.inner.ModelID()).
			Str("purpose", PurposeFrom(ctx)).
			Dur("latency", latency).
			Msg("llm_request_failed")
		return nil, err
	}

	log.Info().
		Str("model", resp.Model).
		Str("purpose", PurposeFrom(ctx)).
		Dur("latency", latency).
		Int("input_tokens", resp.Usage.InputTokens).
		Int("output_tokens", resp.Usage.OutputTokens).
		Msg("llm_request")
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// Close releases the wrapped provider's client when it holds one.
func (l *LoggingProvider) Close() error {
	if c, ok := l.inner.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
