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

	"github.com/gridtokenx/poagov/database/models"
	"github.com/gridtokenx/poagov/database/types"
	"github.com/fxamacker/cbor/v2"
)

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrCertificateExists   = errors.New("certificate already exists")
)

// ErcStatus is the stored lifecycle status of a certificate
type ErcStatus uint8

const (
	ErcStatusValid   ErcStatus = 0
	ErcStatusExpired ErcStatus = 1
	ErcStatusRevoked ErcStatus = 2
	ErcStatusPending ErcStatus = 3
)

func (s ErcStatus) String() string {
	switch s {
	case ErcStatusValid:
		return "valid"
	case ErcStatusExpired:
		return "expired"
	case ErcStatusRevoked:
		return "revoked"
	case ErcStatusPending:
		return "pending"
	default:
		return fmt.Sprintf("unknown (%d)", uint8(s))
	}
}

// ErcCertificate is a renewable-energy certificate record. Each record
// lives at a blob key derived from its certificate identifier, so a
// second issuance under the same identifier collides with the existing
// record. Timestamps are unix seconds.
type ErcCertificate struct {
	CertificateId       string
	Authority           string
	EnergyAmount        uint64
	RenewableSource     string
	ValidationData      string
	IssuedAt            int64
	ExpiresAt           *int64
	Status              ErcStatus
	ValidatedForTrading bool
	TradingValidatedAt  *int64
}

// GetCertificate returns the certificate record for the given identifier
func (d *Database) GetCertificate(
	certificateId string,
	txn *Txn,
) (*ErcCertificate, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	val, err := d.blob.Get(
		txn.Blob(),
		types.CertificateBlobKey(certificateId),
	)
	if err != nil {
		if errors.Is(err, types.ErrBlobKeyNotFound) {
			return nil, ErrCertificateNotFound
		}
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}
	var cert ErcCertificate
	if err := cbor.Unmarshal(val, &cert); err != nil {
		return nil, fmt.Errorf("failed to decode certificate: %w", err)
	}
	return &cert, nil
}

// CreateCertificate stores a new certificate record at its derived blob
// key and mirrors it into the metadata index. It fails if a record
// already exists under the same identifier; the derived key is the
// uniqueness mechanism, there is no separate uniqueness index.
func (d *Database) CreateCertificate(
	cert *ErcCertificate,
	txn *Txn,
) error {
	if cert == nil {
		return errors.New("certificate cannot be nil")
	}
	owned := false
	if txn == nil {
		txn = d.Transaction(true)
		owned = true
		defer txn.Release()
	}
	_, err := d.blob.Get(
		txn.Blob(),
		types.CertificateBlobKey(cert.CertificateId),
	)
	if err == nil {
		return ErrCertificateExists
	}
	if !errors.Is(err, types.ErrBlobKeyNotFound) {
		return fmt.Errorf("failed to check certificate: %w", err)
	}
	if err := d.setCertificate(cert, txn); err != nil {
		return err
	}
	if owned {
		if err := txn.Commit(); err != nil {
			return fmt.Errorf("failed to commit certificate: %w", err)
		}
	}
	return nil
}

// SetCertificate overwrites an existing certificate record and refreshes
// its metadata index row
func (d *Database) SetCertificate(
	cert *ErcCertificate,
	txn *Txn,
) error {
	if cert == nil {
		return errors.New("certificate cannot be nil")
	}
	owned := false
	if txn == nil {
		txn = d.Transaction(true)
		owned = true
		defer txn.Release()
	}
	if err := d.setCertificate(cert, txn); err != nil {
		return err
	}
	if owned {
		if err := txn.Commit(); err != nil {
			return fmt.Errorf("failed to commit certificate: %w", err)
		}
	}
	return nil
}

func (d *Database) setCertificate(cert *ErcCertificate, txn *Txn) error {
	val, err := cbor.Marshal(cert)
	if err != nil {
		return fmt.Errorf("failed to encode certificate: %w", err)
	}
	if err := d.blob.Set(
		txn.Blob(),
		types.CertificateBlobKey(cert.CertificateId),
		val,
	); err != nil {
		return fmt.Errorf("failed to set certificate: %w", err)
	}
	// Mirror into the metadata index within the same transaction
	idxRow := &models.Certificate{
		CertificateId:       cert.CertificateId,
		Authority:           cert.Authority,
		EnergyAmount:        cert.EnergyAmount,
		RenewableSource:     cert.RenewableSource,
		Status:              uint8(cert.Status),
		ValidatedForTrading: cert.ValidatedForTrading,
		IssuedAt:            cert.IssuedAt,
		ExpiresAt:           cert.ExpiresAt,
		TradingValidatedAt:  cert.TradingValidatedAt,
	}
	if err := d.metadata.SetCertificate(idxRow, txn.Metadata()); err != nil {
		return fmt.Errorf("failed to index certificate: %w", err)
	}
	return nil
}

// GetCertificates returns all certificate index rows in issuance order
func (d *Database) GetCertificates(
	txn *Txn,
) ([]*models.Certificate, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	certs, err := d.metadata.GetCertificates(txn.Metadata())
	if err != nil {
		return nil, fmt.Errorf("failed to get certificates: %w", err)
	}
	return certs, nil
}

// GetCertificateCount returns the number of certificate records
func (d *Database) GetCertificateCount(txn *Txn) (int64, error) {
	if txn == nil {
		txn = d.Transaction(false)
		defer txn.Release()
	}
	count, err := d.metadata.GetCertificateCount(txn.Metadata())
	if err != nil {
		return 0, fmt.Errorf("failed to count certificates: %w", err)
	}
	return count, nil
}
