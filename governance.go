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
	"errors"

	"github.com/gridtokenx/poagov/database"
	"github.com/gridtokenx/poagov/event"
)

// GovernanceStats is a read-only snapshot of the governance config.
// Timestamps are unix seconds.
type GovernanceStats struct {
	Authority            string
	AuthorityName        string
	ContactInfo          string
	EmergencyPaused      bool
	EmergencyTimestamp   *int64
	EmergencyReason      string
	ErcValidationEnabled bool
	MaintenanceMode      bool
	MinEnergyAmount      uint64
	MaxErcAmount         uint64
	ErcValidityPeriod    int64
	TotalErcsIssued      uint64
	TotalErcsValidated   uint64
	CreatedAt            int64
	LastUpdated          int64
	Version              uint8
}

// Initialize creates the governance config record exactly once. The
// caller becomes the authority for all subsequent operations; defaults
// cover everything else. Fails with ErrAlreadyInitialized if the record
// already exists.
func (e *Engine) Initialize(caller Authority) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	now := e.now()
	cfg := &database.GovernanceConfig{
		Authority:            string(caller),
		AuthorityName:        DefaultAuthorityName,
		ContactInfo:          DefaultContactInfo,
		ErcValidationEnabled: true,
		MaxErcAmount:         DefaultMaxErcAmount,
		MinEnergyAmount:      DefaultMinEnergyAmount,
		ErcValidityPeriod:    DefaultErcValidityPeriod,
		CreatedAt:            now.Unix(),
		LastUpdated:          now.Unix(),
		Version:              configVersion,
	}
	txn := e.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		return e.db.CreateGovernanceConfig(cfg, txn)
	})
	if err != nil {
		if errors.Is(err, database.ErrGovernanceConfigExists) {
			return ErrAlreadyInitialized
		}
		return err
	}
	e.updateGovernanceMetrics(cfg)
	e.eventBus.Publish(
		event.GovernanceInitializedEventType,
		event.NewEvent(
			event.GovernanceInitializedEventType,
			event.GovernanceInitializedEvent{
				Authority:     cfg.Authority,
				AuthorityName: cfg.AuthorityName,
				ContactInfo:   cfg.ContactInfo,
				Timestamp:     now,
			},
		),
	)
	e.config.logger.Info(
		"governance config initialized",
		"component", "governance",
		"authority", string(caller),
	)
	return nil
}

// EmergencyPause engages the global kill-switch blocking issuance and
// validation. Configuration operations are deliberately not blocked so
// the authority keeps an escape hatch while paused. The reason is
// optional and is cleared on unpause.
func (e *Engine) EmergencyPause(caller Authority, reason string) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	now := e.now()
	var cfg *database.GovernanceConfig
	txn := e.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		var err error
		cfg, err = e.governanceConfig(txn)
		if err != nil {
			return err
		}
		if err := requireAuthority(caller, cfg); err != nil {
			return err
		}
		if cfg.EmergencyPaused {
			return ErrAlreadyPaused
		}
		cfg.EmergencyPaused = true
		ts := now.Unix()
		cfg.EmergencyTimestamp = &ts
		if reason != "" {
			cfg.EmergencyReason = &reason
		}
		return e.db.SetGovernanceConfig(cfg, txn)
	})
	if err != nil {
		return err
	}
	e.updateGovernanceMetrics(cfg)
	e.eventBus.Publish(
		event.GovernancePausedEventType,
		event.NewEvent(
			event.GovernancePausedEventType,
			event.GovernancePausedEvent{
				Authority: cfg.Authority,
				Reason:    reason,
				Timestamp: now,
			},
		),
	)
	e.config.logger.Warn(
		"emergency pause engaged",
		"component", "governance",
		"reason", reason,
	)
	return nil
}

// EmergencyUnpause lifts the emergency pause and clears the pause
// timestamp and reason
func (e *Engine) EmergencyUnpause(caller Authority) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	now := e.now()
	var cfg *database.GovernanceConfig
	txn := e.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		var err error
		cfg, err = e.governanceConfig(txn)
		if err != nil {
			return err
		}
		if err := requireAuthority(caller, cfg); err != nil {
			return err
		}
		if !cfg.EmergencyPaused {
			return ErrNotPaused
		}
		cfg.EmergencyPaused = false
		cfg.EmergencyTimestamp = nil
		cfg.EmergencyReason = nil
		return e.db.SetGovernanceConfig(cfg, txn)
	})
	if err != nil {
		return err
	}
	e.updateGovernanceMetrics(cfg)
	e.eventBus.Publish(
		event.GovernanceUnpausedEventType,
		event.NewEvent(
			event.GovernanceUnpausedEventType,
			event.GovernanceUnpausedEvent{
				Authority: cfg.Authority,
				Timestamp: now,
			},
		),
	)
	e.config.logger.Info(
		"emergency pause lifted",
		"component", "governance",
	)
	return nil
}

// UpdateConfig sets the certificate validation toggle. Not blocked by
// pause or maintenance state.
func (e *Engine) UpdateConfig(
	caller Authority,
	ercValidationEnabled bool,
) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	now := e.now()
	var cfg *database.GovernanceConfig
	var oldValue bool
	txn := e.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		var err error
		cfg, err = e.governanceConfig(txn)
		if err != nil {
			return err
		}
		if err := requireAuthority(caller, cfg); err != nil {
			return err
		}
		oldValue = cfg.ErcValidationEnabled
		cfg.ErcValidationEnabled = ercValidationEnabled
		cfg.LastUpdated = now.Unix()
		return e.db.SetGovernanceConfig(cfg, txn)
	})
	if err != nil {
		return err
	}
	e.updateGovernanceMetrics(cfg)
	e.eventBus.Publish(
		event.GovernanceConfigUpdatedEventType,
		event.NewEvent(
			event.GovernanceConfigUpdatedEventType,
			event.GovernanceConfigUpdatedEvent{
				Authority:               cfg.Authority,
				ErcValidationEnabled:    ercValidationEnabled,
				OldErcValidationEnabled: oldValue,
				Timestamp:               now,
			},
		),
	)
	e.config.logger.Info(
		"validation toggle updated",
		"component", "governance",
		"enabled", ercValidationEnabled,
	)
	return nil
}

// SetMaintenanceMode toggles maintenance mode, a secondary global gate
// with the same blocking effect as the emergency pause. Not blocked by
// pause or maintenance state.
func (e *Engine) SetMaintenanceMode(caller Authority, enabled bool) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	now := e.now()
	var cfg *database.GovernanceConfig
	var oldValue bool
	txn := e.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		var err error
		cfg, err = e.governanceConfig(txn)
		if err != nil {
			return err
		}
		if err := requireAuthority(caller, cfg); err != nil {
			return err
		}
		oldValue = cfg.MaintenanceMode
		cfg.MaintenanceMode = enabled
		cfg.LastUpdated = now.Unix()
		return e.db.SetGovernanceConfig(cfg, txn)
	})
	if err != nil {
		return err
	}
	e.updateGovernanceMetrics(cfg)
	e.eventBus.Publish(
		event.GovernanceMaintenanceEventType,
		event.NewEvent(
			event.GovernanceMaintenanceEventType,
			event.GovernanceMaintenanceEvent{
				Authority:          cfg.Authority,
				MaintenanceMode:    enabled,
				OldMaintenanceMode: oldValue,
				Timestamp:          now,
			},
		),
	)
	e.config.logger.Info(
		"maintenance mode updated",
		"component", "governance",
		"enabled", enabled,
	)
	return nil
}

// UpdateErcLimits overwrites the issuance limits and validity period as
// a single atomic update. Limits apply to future issuance only; existing
// certificates are never retroactively invalidated. Not blocked by pause
// or maintenance state.
func (e *Engine) UpdateErcLimits(
	caller Authority,
	minEnergyAmount uint64,
	maxErcAmount uint64,
	ercValidityPeriod int64,
) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	now := e.now()
	var cfg *database.GovernanceConfig
	var oldMin, oldMax uint64
	var oldValidity int64
	txn := e.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		var err error
		cfg, err = e.governanceConfig(txn)
		if err != nil {
			return err
		}
		if err := requireAuthority(caller, cfg); err != nil {
			return err
		}
		if minEnergyAmount == 0 {
			return ErrInvalidMinimumEnergy
		}
		if maxErcAmount <= minEnergyAmount {
			return ErrInvalidMaximumEnergy
		}
		if ercValidityPeriod <= 0 {
			return ErrInvalidValidityPeriod
		}
		oldMin = cfg.MinEnergyAmount
		oldMax = cfg.MaxErcAmount
		oldValidity = cfg.ErcValidityPeriod
		cfg.MinEnergyAmount = minEnergyAmount
		cfg.MaxErcAmount = maxErcAmount
		cfg.ErcValidityPeriod = ercValidityPeriod
		cfg.LastUpdated = now.Unix()
		return e.db.SetGovernanceConfig(cfg, txn)
	})
	if err != nil {
		return err
	}
	e.updateGovernanceMetrics(cfg)
	e.eventBus.Publish(
		event.GovernanceLimitsUpdatedEventType,
		event.NewEvent(
			event.GovernanceLimitsUpdatedEventType,
			event.GovernanceLimitsUpdatedEvent{
				Authority:            cfg.Authority,
				MinEnergyAmount:      minEnergyAmount,
				OldMinEnergyAmount:   oldMin,
				MaxErcAmount:         maxErcAmount,
				OldMaxErcAmount:      oldMax,
				ErcValidityPeriod:    ercValidityPeriod,
				OldErcValidityPeriod: oldValidity,
				Timestamp:            now,
			},
		),
	)
	e.config.logger.Info(
		"certificate limits updated",
		"component", "governance",
		"min_energy_amount", minEnergyAmount,
		"max_erc_amount", maxErcAmount,
		"validity_period", ercValidityPeriod,
	)
	return nil
}

// UpdateAuthorityInfo overwrites the authority contact info. Not blocked
// by pause or maintenance state.
func (e *Engine) UpdateAuthorityInfo(
	caller Authority,
	contactInfo string,
) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	now := e.now()
	var cfg *database.GovernanceConfig
	var oldContactInfo string
	txn := e.db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		var err error
		cfg, err = e.governanceConfig(txn)
		if err != nil {
			return err
		}
		if err := requireAuthority(caller, cfg); err != nil {
			return err
		}
		if len(contactInfo) > maxContactInfoLen {
			return ErrContactInfoTooLong
		}
		oldContactInfo = cfg.ContactInfo
		cfg.ContactInfo = contactInfo
		cfg.LastUpdated = now.Unix()
		return e.db.SetGovernanceConfig(cfg, txn)
	})
	if err != nil {
		return err
	}
	e.updateGovernanceMetrics(cfg)
	e.eventBus.Publish(
		event.GovernanceAuthorityInfoEventType,
		event.NewEvent(
			event.GovernanceAuthorityInfoEventType,
			event.GovernanceAuthorityInfoEvent{
				Authority:      cfg.Authority,
				ContactInfo:    contactInfo,
				OldContactInfo: oldContactInfo,
				Timestamp:      now,
			},
		),
	)
	e.config.logger.Info(
		"authority contact info updated",
		"component", "governance",
	)
	return nil
}

// Stats returns a read-only snapshot of the governance config. No
// authorization is required.
func (e *Engine) Stats() (*GovernanceStats, error) {
	cfg, err := e.governanceConfig(nil)
	if err != nil {
		return nil, err
	}
	stats := &GovernanceStats{
		Authority:            cfg.Authority,
		AuthorityName:        cfg.AuthorityName,
		ContactInfo:          cfg.ContactInfo,
		EmergencyPaused:      cfg.EmergencyPaused,
		EmergencyTimestamp:   cfg.EmergencyTimestamp,
		ErcValidationEnabled: cfg.ErcValidationEnabled,
		MaintenanceMode:      cfg.MaintenanceMode,
		MinEnergyAmount:      cfg.MinEnergyAmount,
		MaxErcAmount:         cfg.MaxErcAmount,
		ErcValidityPeriod:    cfg.ErcValidityPeriod,
		TotalErcsIssued:      cfg.TotalErcsIssued,
		TotalErcsValidated:   cfg.TotalErcsValidated,
		CreatedAt:            cfg.CreatedAt,
		LastUpdated:          cfg.LastUpdated,
		Version:              cfg.Version,
	}
	if cfg.EmergencyReason != nil {
		stats.EmergencyReason = *cfg.EmergencyReason
	}
	return stats, nil
}
