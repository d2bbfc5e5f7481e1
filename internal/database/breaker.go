// Salesdash - Retail Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesdash

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/salesdash/internal/config"
	"github.com/tomtom215/salesdash/internal/logging"
	"github.com/tomtom215/salesdash/internal/metrics"
	"github.com/tomtom215/salesdash/internal/models"
)

// ErrBreakerOpen is returned while the store circuit breaker rejects calls.
// It wraps gobreaker.ErrOpenState or gobreaker.ErrTooManyRequests.
var ErrBreakerOpen = errors.New("fact store circuit breaker open")

// rejectLogInterval is the minimum gap between rejection warnings.
const rejectLogInterval = 10 * time.Second

// Reader is the read side of the fact store.
type Reader interface {
	QuerySales(ctx context.Context, filter models.SalesFilter) ([]models.SalesRecord, error)
	RegionInfo(ctx context.Context) ([]models.RegionInfo, error)
	CategoryInfo(ctx context.Context) ([]models.CategoryInfo, error)
}

// CircuitBreakerStore guards a Reader with a circuit breaker. After
// FailureThreshold consecutive infrastructure failures every read fails
// fast with ErrBreakerOpen until Timeout elapses.
//
// Context cancellation and statement errors (bad SQL, scan failures) do not
// count as store failures.
type CircuitBreakerStore struct {
	next Reader
	cb   *gobreaker.CircuitBreaker[any]
	name string

	// rejectLog limits "request rejected" warnings while open.
	rejectLog *rate.Limiter
}

// NewCircuitBreakerStore wraps next using cfg.
func NewCircuitBreakerStore(next Reader, cfg *config.BreakerConfig) *CircuitBreakerStore {
	name := "fact-store"
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	metrics.BreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return true
			}
			return !isConnectionError(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state transition")
			metrics.BreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &CircuitBreakerStore{
		next:      next,
		cb:        cb,
		name:      name,
		rejectLog: rate.NewLimiter(rate.Every(rejectLogInterval), 1),
	}
}

// State returns the current breaker state.
func (s *CircuitBreakerStore) State() gobreaker.State {
	return s.cb.State()
}

func (s *CircuitBreakerStore) execute(fn func() (any, error)) (any, error) {
	result, err := s.cb.Execute(fn)
	if err == nil {
		metrics.BreakerRequests.WithLabelValues(s.name, "success").Inc()
		return result, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.BreakerRequests.WithLabelValues(s.name, "rejected").Inc()
		if s.rejectLog.Allow() {
			logging.Warn().Err(err).Str("breaker", s.name).Msg("Fact store request rejected")
		}
		return nil, fmt.Errorf("%w: %w", ErrBreakerOpen, err)
	}

	metrics.BreakerRequests.WithLabelValues(s.name, "failure").Inc()
	return nil, err
}

// castResult type-asserts a breaker result.
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// QuerySales implements Reader.
func (s *CircuitBreakerStore) QuerySales(ctx context.Context, filter models.SalesFilter) ([]models.SalesRecord, error) {
	return castResult[[]models.SalesRecord](s.execute(func() (any, error) {
		return s.next.QuerySales(ctx, filter)
	}))
}

// RegionInfo implements Reader.
func (s *CircuitBreakerStore) RegionInfo(ctx context.Context) ([]models.RegionInfo, error) {
	return castResult[[]models.RegionInfo](s.execute(func() (any, error) {
		return s.next.RegionInfo(ctx)
	}))
}

// CategoryInfo implements Reader.
func (s *CircuitBreakerStore) CategoryInfo(ctx context.Context) ([]models.CategoryInfo, error) {
	return castResult[[]models.CategoryInfo](s.execute(func() (any, error) {
		return s.next.CategoryInfo(ctx)
	}))
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
