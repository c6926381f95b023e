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

package sqlite

import (
	"errors"
	"fmt"

	"github.com/gridtokenx/poagov/database/models"
	"github.com/gridtokenx/poagov/database/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SetCertificate creates or updates a certificate index row. Conflicts
// on the certificate identifier update the mutable lifecycle columns.
func (d *MetadataStoreSqlite) SetCertificate(
	cert *models.Certificate,
	txn types.Txn,
) error {
	db, err := d.resolveDB(txn)
	if err != nil {
		return err
	}
	result := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "certificate_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status",
			"validated_for_trading",
			"trading_validated_at",
		}),
	}).Create(cert)
	if result.Error != nil {
		return fmt.Errorf("set certificate: %w", result.Error)
	}
	return nil
}

// GetCertificate returns a certificate index row by certificate identifier
func (d *MetadataStoreSqlite) GetCertificate(
	certificateId string,
	txn types.Txn,
) (*models.Certificate, error) {
	db, err := d.resolveDB(txn)
	if err != nil {
		return nil, err
	}
	var cert models.Certificate
	result := db.Where("certificate_id = ?", certificateId).First(&cert)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, models.ErrCertificateNotFound
		}
		return nil, result.Error
	}
	return &cert, nil
}

// GetCertificates returns all certificate index rows in issuance order
func (d *MetadataStoreSqlite) GetCertificates(
	txn types.Txn,
) ([]*models.Certificate, error) {
	db, err := d.resolveDB(txn)
	if err != nil {
		return nil, err
	}
	certs := []*models.Certificate{}
	result := db.Order("issued_at ASC, id ASC").Find(&certs)
	if result.Error != nil {
		return nil, result.Error
	}
	return certs, nil
}

// GetCertificateCount returns the number of certificate index rows
func (d *MetadataStoreSqlite) GetCertificateCount(
	txn types.Txn,
) (int64, error) {
	db, err := d.resolveDB(txn)
	if err != nil {
		return 0, err
	}
	var count int64
	result := db.Model(&models.Certificate{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
