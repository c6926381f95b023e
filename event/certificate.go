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

package event

import "time"

const (
	// CertificateIssuedEventType is emitted when a certificate is issued
	CertificateIssuedEventType = EventType("certificate.issued")
	// CertificateValidatedEventType is emitted when a certificate is
	// validated for trading
	CertificateValidatedEventType = EventType("certificate.validated")
	// CertificateRevokedEventType is emitted when a certificate is revoked
	CertificateRevokedEventType = EventType("certificate.revoked")
)

// CertificateIssuedEvent records the issuance of a new certificate
type CertificateIssuedEvent struct {
	Authority       string
	CertificateId   string
	EnergyAmount    uint64
	RenewableSource string
	ExpiresAt       time.Time
	Timestamp       time.Time
}

// CertificateValidatedEvent records a certificate being validated for trading
type CertificateValidatedEvent struct {
	Authority     string
	CertificateId string
	EnergyAmount  uint64
	Timestamp     time.Time
}

// CertificateRevokedEvent records a certificate being revoked. Reason is
// empty when the caller gave none.
type CertificateRevokedEvent struct {
	Authority     string
	CertificateId string
	Reason        string
	Timestamp     time.Time
}
