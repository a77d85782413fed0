package llm

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/retry"
	"github.com/sirupsen/logrus"
)

// ResilientProvider retries rate limits and server errors and stops calling
// a provider that keeps failing.
type ResilientProvider struct {
	provider       Provider
	circuitBreaker circuitbreaker.CircuitBreaker[string]
	retrier        retry.Retry[string]
}

type ResilientConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	// FailureThreshold is the number of consecutive failures that opens
	// the circuit.
	FailureThreshold uint32
	OpenTimeout      time.Duration
	Log              *logrus.Logger
}

func DefaultResilientConfig() ResilientConfig {
	return ResilientConfig{
		MaxAttempts:      3,
		InitialDelay:     500 * time.Millisecond,
		MaxDelay:         5 * time.Second,
		FailureThreshold: 3,
		OpenTimeout:      60 * time.Second,
	}
}

func NewResilientProvider(provider Provider, cfg ResilientConfig) *ResilientProvider {
	rp := &ResilientProvider{provider: provider}

	rp.circuitBreaker = circuitbreaker.New[string](circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(from, to circuitbreaker.State) {
			if cfg.Log != nil {
				cfg.Log.WithFields(logrus.Fields{
					"provider": provider.Name(),
					"from":     from.String(),
					"to":       to.String(),
				}).Warn("llm circuit breaker state change")
			}
		},
	})

	rp.retrier = retry.New[string](retry.Config{
		MaxAttempts:   cfg.MaxAttempts,
		InitialDelay:  cfg.InitialDelay,
		MaxDelay:      cfg.MaxDelay,
		Multiplier:    2.0,
		BackoffPolicy: retry.BackoffExponential,
		Jitter:        true,
		IsRetryable:   IsRetryable,
	})

	return rp
}

func (p *ResilientProvider) Name() string { return p.provider.Name() }

func (p *ResilientProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	return p.circuitBreaker.Execute(ctx, func(ctx context.Context) (string, error) {
		return p.retrier.Do(ctx, func(ctx context.Context) (string, error) {
			return p.provider.Chat(ctx, messages)
		})
	})
}
