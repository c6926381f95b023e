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
	"time"

	"github.com/gridtokenx/poagov/database"
	"github.com/gridtokenx/poagov/event"
)

// ErcStatus is the stored lifecycle status of a certificate
type ErcStatus = database.ErcStatus

const (
	ErcStatusValid   = database.ErcStatusValid
	ErcStatusExpired = database.ErcStatusExpired
	ErcStatusRevoked = database.ErcStatusRevoked
	ErcStatusPending = database.ErcStatusPending
)

// IssueCertificateParams are the caller-supplied inputs to IssueCertificate
type IssueCertificateParams struct {
	CertificateId   string
	EnergyAmount    uint64
	RenewableSource string
	ValidationData  string
}

// Certificate is a read-only snapshot of a certificate record.
// EffectiveStatus reflects lazy expiry: a Valid certificate past its
// expiry time reports Expired here while the stored status stays Valid.
// Timestamps are unix seconds.
type Certificate struct {
	CertificateId       string
	Authority           string
	EnergyAmount        uint64
	RenewableSource     string
	ValidationData      string
	Status              ErcStatus
	EffectiveStatus     ErcStatus
	ValidatedForTrading bool
	IssuedAt            int64
	ExpiresAt           *int64
	TradingValidatedAt  *int64
}

// IssueCertificate creates a new certificate record. Preconditions are
// checked in a fixed order, each with a distinct error; the first
// violation aborts with no state change. Uniqueness is structural: the
// record's blob key is derived from the identifier, so a second issuance
// under the same identifier fails with ErrCertificateExists rather than
// overwriting.
func (e *Engine) IssueCertificate(
	caller Authority,
	params IssueCertificateParams,
) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	now := e.now()
	var cfg *database.GovernanceConfig
	var cert *database.ErcCertificate
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
			return ErrSystemPaused
		}
		if cfg.MaintenanceMode {
			return ErrMaintenanceMode
		}
		if !cfg.ErcValidationEnabled {
			return ErrErcValidationDisabled
		}
		if params.EnergyAmount < cfg.MinEnergyAmount {
			return ErrBelowMinimumEnergy
		}
		if params.EnergyAmount > cfg.MaxErcAmount {
			return ErrExceedsMaximumEnergy
		}
		if len(params.CertificateId) > maxCertificateIdLen {
			return ErrCertificateIdTooLong
		}
		if len(params.RenewableSource) > maxSourceNameLen {
			return ErrSourceNameTooLong
		}
		expiresAt := now.Unix() + cfg.ErcValidityPeriod
		cert = &database.ErcCertificate{
			CertificateId:   params.CertificateId,
			Authority:       cfg.Authority,
			EnergyAmount:    params.EnergyAmount,
			RenewableSource: params.RenewableSource,
			ValidationData:  params.ValidationData,
			IssuedAt:        now.Unix(),
			ExpiresAt:       &expiresAt,
			Status:          database.ErcStatusValid,
		}
		if err := e.db.CreateCertificate(cert, txn); err != nil {
			if errors.Is(err, database.ErrCertificateExists) {
				return ErrCertificateExists
			}
			return err
		}
		cfg.TotalErcsIssued = saturatingAdd(cfg.TotalErcsIssued, 1)
		cfg.LastUpdated = now.Unix()
		return e.db.SetGovernanceConfig(cfg, txn)
	})
	if err != nil {
		return err
	}
	if e.metrics != nil {
		e.metrics.certificatesIssued.Inc()
	}
	e.updateGovernanceMetrics(cfg)
	e.eventBus.Publish(
		event.CertificateIssuedEventType,
		event.NewEvent(
			event.CertificateIssuedEventType,
			event.CertificateIssuedEvent{
				Authority:       cfg.Authority,
				CertificateId:   cert.CertificateId,
				EnergyAmount:    cert.EnergyAmount,
				RenewableSource: cert.RenewableSource,
				ExpiresAt:       time.Unix(*cert.ExpiresAt, 0),
				Timestamp:       now,
			},
		),
	)
	e.config.logger.Info(
		"certificate issued",
		"component", "certificate",
		"certificate_id", cert.CertificateId,
		"energy_amount", cert.EnergyAmount,
		"renewable_source", cert.RenewableSource,
	)
	return nil
}

// ValidateForTrading marks a certificate eligible for downstream market
// use. The transition is one-way and happens at most once per
// certificate. Expiry is evaluated lazily here: a certificate past its
// expiry time fails with ErrErcExpired even though its stored status
// still reads Valid.
func (e *Engine) ValidateForTrading(
	caller Authority,
	certificateId string,
) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	now := e.now()
	var cfg *database.GovernanceConfig
	var cert *database.ErcCertificate
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
			return ErrSystemPaused
		}
		if cfg.MaintenanceMode {
			return ErrMaintenanceMode
		}
		cert, err = e.db.GetCertificate(certificateId, txn)
		if err != nil {
			if errors.Is(err, database.ErrCertificateNotFound) {
				return ErrCertificateNotFound
			}
			return err
		}
		if cert.Status != database.ErcStatusValid {
			return ErrInvalidErcStatus
		}
		if cert.ValidatedForTrading {
			return ErrAlreadyValidated
		}
		if cert.ExpiresAt != nil && now.Unix() >= *cert.ExpiresAt {
			return ErrErcExpired
		}
		cert.ValidatedForTrading = true
		ts := now.Unix()
		cert.TradingValidatedAt = &ts
		if err := e.db.SetCertificate(cert, txn); err != nil {
			return err
		}
		cfg.TotalErcsValidated = saturatingAdd(cfg.TotalErcsValidated, 1)
		cfg.LastUpdated = now.Unix()
		return e.db.SetGovernanceConfig(cfg, txn)
	})
	if err != nil {
		return err
	}
	if e.metrics != nil {
		e.metrics.certificatesValidated.Inc()
	}
	e.updateGovernanceMetrics(cfg)
	e.eventBus.Publish(
		event.CertificateValidatedEventType,
		event.NewEvent(
			event.CertificateValidatedEventType,
			event.CertificateValidatedEvent{
				Authority:     cfg.Authority,
				CertificateId: cert.CertificateId,
				EnergyAmount:  cert.EnergyAmount,
				Timestamp:     now,
			},
		),
	)
	e.config.logger.Info(
		"certificate validated for trading",
		"component", "certificate",
		"certificate_id", cert.CertificateId,
	)
	return nil
}

// RevokeCertificate permanently revokes a Valid certificate. Like the
// other safety controls it is not blocked by pause or maintenance state.
// A revoked certificate can never be validated for trading.
func (e *Engine) RevokeCertificate(
	caller Authority,
	certificateId string,
	reason string,
) error {
	e.opMu.Lock()
	defer e.opMu.Unlock()
	now := e.now()
	var cfg *database.GovernanceConfig
	var cert *database.ErcCertificate
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
		cert, err = e.db.GetCertificate(certificateId, txn)
		if err != nil {
			if errors.Is(err, database.ErrCertificateNotFound) {
				return ErrCertificateNotFound
			}
			return err
		}
		if cert.Status != database.ErcStatusValid {
			return ErrInvalidErcStatus
		}
		cert.Status = database.ErcStatusRevoked
		if err := e.db.SetCertificate(cert, txn); err != nil {
			return err
		}
		cfg.LastUpdated = now.Unix()
		return e.db.SetGovernanceConfig(cfg, txn)
	})
	if err != nil {
		return err
	}
	if e.metrics != nil {
		e.metrics.certificatesRevoked.Inc()
	}
	e.updateGovernanceMetrics(cfg)
	e.eventBus.Publish(
		event.CertificateRevokedEventType,
		event.NewEvent(
			event.CertificateRevokedEventType,
			event.CertificateRevokedEvent{
				Authority:     cfg.Authority,
				CertificateId: cert.CertificateId,
				Reason:        reason,
				Timestamp:     now,
			},
		),
	)
	e.config.logger.Warn(
		"certificate revoked",
		"component", "certificate",
		"certificate_id", cert.CertificateId,
		"reason", reason,
	)
	return nil
}

// Certificate returns a snapshot of the certificate record for the given
// identifier. No authorization is required.
func (e *Engine) Certificate(certificateId string) (*Certificate, error) {
	cert, err := e.db.GetCertificate(certificateId, nil)
	if err != nil {
		if errors.Is(err, database.ErrCertificateNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, err
	}
	return &Certificate{
		CertificateId:       cert.CertificateId,
		Authority:           cert.Authority,
		EnergyAmount:        cert.EnergyAmount,
		RenewableSource:     cert.RenewableSource,
		ValidationData:      cert.ValidationData,
		Status:              cert.Status,
		EffectiveStatus:     effectiveStatus(cert.Status, cert.ExpiresAt, e.now()),
		ValidatedForTrading: cert.ValidatedForTrading,
		IssuedAt:            cert.IssuedAt,
		ExpiresAt:           cert.ExpiresAt,
		TradingValidatedAt:  cert.TradingValidatedAt,
	}, nil
}

// Certificates returns snapshots of all certificates in issuance order,
// served from the metadata index. The index does not carry the raw
// validation payload; use Certificate for the full record. No
// authorization is required.
func (e *Engine) Certificates() ([]*Certificate, error) {
	rows, err := e.db.GetCertificates(nil)
	if err != nil {
		return nil, err
	}
	now := e.now()
	certs := make([]*Certificate, 0, len(rows))
	for _, row := range rows {
		status := database.ErcStatus(row.Status)
		certs = append(certs, &Certificate{
			CertificateId:       row.CertificateId,
			Authority:           row.Authority,
			EnergyAmount:        row.EnergyAmount,
			RenewableSource:     row.RenewableSource,
			Status:              status,
			EffectiveStatus:     effectiveStatus(status, row.ExpiresAt, now),
			ValidatedForTrading: row.ValidatedForTrading,
			IssuedAt:            row.IssuedAt,
			ExpiresAt:           row.ExpiresAt,
			TradingValidatedAt:  row.TradingValidatedAt,
		})
	}
	return certs, nil
}

// effectiveStatus surfaces lazy expiry on reads. The stored status is
// never rewritten on natural expiry.
func effectiveStatus(
	status ErcStatus,
	expiresAt *int64,
	now time.Time,
) ErcStatus {
	if status == database.ErcStatusValid && expiresAt != nil &&
		now.Unix() >= *expiresAt {
		return database.ErcStatusExpired
	}
	return status
}
