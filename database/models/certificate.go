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

package models

import "errors"

var ErrCertificateNotFound = errors.New("certificate not found")

// Certificate is the queryable index row mirroring a certificate blob
// record. The blob store holds the authoritative record; this row exists
// for listing and aggregate queries and is written in the same
// coordinated transaction.
type Certificate struct {
	ID                  uint   `gorm:"primarykey"`
	CertificateId       string `gorm:"size:64;uniqueIndex;not null"`
	Authority           string `gorm:"size:128;index;not null"`
	EnergyAmount        uint64 `gorm:"not null"`
	RenewableSource     string `gorm:"size:64"`
	Status              uint8  `gorm:"index;not null"`
	ValidatedForTrading bool   `gorm:"index;not null"`
	IssuedAt            int64  `gorm:"index;not null"`
	ExpiresAt           *int64 `gorm:"index"`
	TradingValidatedAt  *int64
}

// TableName returns the table name
func (Certificate) TableName() string {
	return "certificate"
}
