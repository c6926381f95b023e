// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package poagov

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gridtokenx/poagov/database"
	"github.com/gridtokenx/poagov/event"
)

// Authority identifies a caller. The identity stored in the governance
// config at initialization is the only one permitted to perform
// governance and issuance operations.
type Authority string

const (
	maxCertificateIdLen = 64
	maxSourceNameLen    = 64
	maxContactInfoLen   = 128
)

// Default governance config values applied by Initialize
const (
	DefaultAuthorityName     = "University Engineering Department"
	DefaultContactInfo       = "engineering_erc@utcc.ac.th"
	DefaultMaxErcAmount      = uint64(1_000_000)
	DefaultMinEnergyAmount   = uint64(100)
	DefaultErcValidityPeriod = int64(31_536_000)

	configVersion = uint8(1)
)

// Engine is the process-wide governance handle. All operations are
// methods on Engine taking the caller identity explicitly; there is no
// ambient authority state.
type Engine struct {
	db            *database.Database
	eventBus      *event.EventBus
	metrics       *engineMetrics
	shutdownFuncs []func(context.Context) error
	config        Config
	// opMu serializes mutating operations so that each read-modify-write
	// of the governance config record is a single atomic unit
	opMu         sync.Mutex
	shutdownOnce sync.Once
}

func New(cfg Config) (*Engine, error) {
	e := &Engine{
		config:   cfg,
		eventBus: event.NewEventBus(cfg.promRegistry, cfg.logger),
	}
	// Configure tracing
	if cfg.tracing {
		if err := e.setupTracing(); err != nil {
			return nil, err
		}
	}
	// Load database
	db, err := database.New(&database.Config{
		DataDir:      cfg.dataDir,
		Logger:       cfg.logger,
		PromRegistry: cfg.promRegistry,
	})
	if err != nil {
		if db != nil {
			db.Close() //nolint:errcheck
		}
		var tsErr database.CommitTimestampError
		if errors.As(err, &tsErr) {
			// The stores committed at different times, most likely from a
			// crash mid-commit. There is no replayable history to recover
			// from, so surface it for operator intervention.
			return nil, fmt.Errorf("database needs recovery: %w", err)
		}
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	e.db = db
	if cfg.promRegistry != nil {
		e.initMetrics()
	}
	return e, nil
}

// EventBus returns the engine's event bus for subscribing to audit events
func (e *Engine) EventBus() *event.EventBus {
	return e.eventBus
}

func (e *Engine) Close() error {
	var err error
	e.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(
			context.Background(),
			30*time.Second,
		)
		defer cancel()
		e.eventBus.Stop()
		if e.db != nil {
			if closeErr := e.db.Close(); closeErr != nil {
				err = errors.Join(
					err,
					fmt.Errorf("database close: %w", closeErr),
				)
			}
		}
		for _, fn := range e.shutdownFuncs {
			if fnErr := fn(ctx); fnErr != nil {
				err = errors.Join(err, fmt.Errorf("shutdown function: %w", fnErr))
			}
		}
		e.shutdownFuncs = nil
	})
	return err
}

func (e *Engine) now() time.Time {
	return e.config.clock()
}

// governanceConfig loads the config record, mapping a missing record to
// ErrNotInitialized
func (e *Engine) governanceConfig(
	txn *database.Txn,
) (*database.GovernanceConfig, error) {
	cfg, err := e.db.GetGovernanceConfig(txn)
	if err != nil {
		if errors.Is(err, database.ErrGovernanceConfigNotFound) {
			return nil, ErrNotInitialized
		}
		return nil, err
	}
	return cfg, nil
}

func requireAuthority(
	caller Authority,
	cfg *database.GovernanceConfig,
) error {
	if string(caller) != cfg.Authority {
		return ErrUnauthorized
	}
	return nil
}

// saturatingAdd caps at the maximum representable value instead of wrapping
func saturatingAdd(a uint64, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
