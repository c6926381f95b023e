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

package database

import (
	"errors"
	"fmt"

	"github.com/gridtokenx/poagov/database/types"
	"github.com/fxamacker/cbor/v2"
)

var (
	ErrGovernanceConfigNotFound = errors.New("governance config not found")
	ErrGovernanceConfigExists   = errors.New("governance config already exists")
)

// GovernanceConfig is the singleton configuration record for the
// proof-of-authority governance engine. It lives at a fixed blob key and
// is created exactly once. Timestamps are unix seconds.
type GovernanceConfig struct {
	Authority            string
	AuthorityName        string
	ContactInfo          string
	EmergencyPaused      bool
	EmergencyTimestamp   *int64
	EmergencyReason      *string
	CreatedAt            int64
	LastUpdated          int64
	ErcValidationEnabled bool
	MaxErcAmount         uint64
	MinEnergyAmount      uint64
	TotalErcsIssued      uint64
	TotalErcsValidated   uint64
	ErcValidityPeriod    int64
	MaintenanceMode      bool
	// Reserved for delegated/oracle validation. No operation acts on
	// these yet; they exist so enabling delegation later is a data
	// migration, not a schema rewrite
	DelegationEnabled bool
	OracleAuthority   *string
	Version           uint8
}

// GetGovernanceConfig returns the governance config record
func (d *Database) GetGovernanceConfig(txn *Txn) (*GovernanceConfig, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	val, err := d.blob.Get(txn.Blob(), types.GovernanceConfigBlobKey())
	if err != nil {
		if errors.Is(err, types.ErrBlobKeyNotFound) {
			return nil, ErrGovernanceConfigNotFound
		}
		return nil, fmt.Errorf("failed to get governance config: %w", err)
	}
	var cfg GovernanceConfig
	if err := cbor.Unmarshal(val, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode governance config: %w", err)
	}
	return &cfg, nil
}

// CreateGovernanceConfig stores the governance config record at its fixed
// blob key. It fails if the record already exists, which makes record
// creation the initialization-once mechanism.
func (d *Database) CreateGovernanceConfig(
	cfg *GovernanceConfig,
	txn *Txn,
) error {
	if cfg == nil {
		return errors.New("governance config cannot be nil")
	}
	owned := false
	if txn == nil {
		txn = d.Transaction(true)
		owned = true
		defer txn.Release()
	}
	// Creation collides with an existing record rather than overwriting it
	_, err := d.blob.Get(txn.Blob(), types.GovernanceConfigBlobKey())
	if err == nil {
		return ErrGovernanceConfigExists
	}
	if !errors.Is(err, types.ErrBlobKeyNotFound) {
		return fmt.Errorf("failed to check governance config: %w", err)
	}
	if err := d.setGovernanceConfig(cfg, txn); err != nil {
		return err
	}
	if owned {
		if err := txn.Commit(); err != nil {
			return fmt.Errorf("failed to commit governance config: %w", err)
		}
	}
	return nil
}

// SetGovernanceConfig overwrites the existing governance config record
func (d *Database) SetGovernanceConfig(
	cfg *GovernanceConfig,
	txn *Txn,
) error {
	if cfg == nil {
		return errors.New("governance config cannot be nil")
	}
	owned := false
	if txn == nil {
		txn = d.Transaction(true)
		owned = true
		defer txn.Release()
	}
	if err := d.setGovernanceConfig(cfg, txn); err != nil {
		return err
	}
	if owned {
		if err := txn.Commit(); err != nil {
			return fmt.Errorf("failed to commit governance config: %w", err)
		}
	}
	return nil
}

func (d *Database) setGovernanceConfig(
	cfg *GovernanceConfig,
	txn *Txn,
) error {
	val, err := cbor.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode governance config: %w", err)
	}
	if err := d.blob.Set(txn.Blob(), types.GovernanceConfigBlobKey(), val); err != nil {
		return fmt.Errorf("failed to set governance config: %w", err)
	}
	return nil
}
