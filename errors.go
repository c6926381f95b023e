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

import "errors"

// Operation errors. Each failed precondition maps to exactly one of
// these; the first violated precondition aborts the operation with no
// state change.
var (
	// ErrNotInitialized is returned when an operation runs before
	// Initialize has created the governance config
	ErrNotInitialized = errors.New("governance config not initialized")
	// ErrAlreadyInitialized is returned by Initialize when the governance
	// config record already exists
	ErrAlreadyInitialized = errors.New("governance config already initialized")
	// ErrUnauthorized is returned when the caller identity does not match
	// the configured authority
	ErrUnauthorized = errors.New("caller is not the configured authority")
	// ErrAlreadyPaused is returned by EmergencyPause when already paused
	ErrAlreadyPaused = errors.New("system is already paused")
	// ErrNotPaused is returned by EmergencyUnpause when not paused
	ErrNotPaused = errors.New("system is not paused")
	// ErrSystemPaused is returned by certificate operations while the
	// emergency pause is engaged
	ErrSystemPaused = errors.New("system is emergency paused")
	// ErrMaintenanceMode is returned by certificate operations while
	// maintenance mode is enabled
	ErrMaintenanceMode = errors.New("system is in maintenance mode")
	// ErrErcValidationDisabled is returned by IssueCertificate while the
	// validation toggle is off
	ErrErcValidationDisabled = errors.New("certificate validation is disabled")
	// ErrInvalidErcStatus is returned when a certificate is not in the
	// Valid status required by the operation
	ErrInvalidErcStatus = errors.New("certificate has invalid status")
	// ErrAlreadyValidated is returned by ValidateForTrading when the
	// certificate has already been validated
	ErrAlreadyValidated = errors.New("certificate already validated for trading")
	// ErrBelowMinimumEnergy is returned when the energy amount is below
	// the configured minimum
	ErrBelowMinimumEnergy = errors.New("energy amount below configured minimum")
	// ErrExceedsMaximumEnergy is returned when the energy amount exceeds
	// the configured maximum
	ErrExceedsMaximumEnergy = errors.New("energy amount exceeds configured maximum")
	// ErrCertificateIdTooLong is returned when the certificate identifier
	// exceeds 64 bytes
	ErrCertificateIdTooLong = errors.New("certificate identifier too long")
	// ErrSourceNameTooLong is returned when the renewable source name
	// exceeds 64 bytes
	ErrSourceNameTooLong = errors.New("renewable source name too long")
	// ErrErcExpired is returned by ValidateForTrading when the certificate
	// has passed its expiry time
	ErrErcExpired = errors.New("certificate has expired")
	// ErrInvalidMinimumEnergy is returned by UpdateErcLimits when the
	// minimum energy amount is zero
	ErrInvalidMinimumEnergy = errors.New("invalid minimum energy amount")
	// ErrInvalidMaximumEnergy is returned by UpdateErcLimits when the
	// maximum amount is not greater than the minimum
	ErrInvalidMaximumEnergy = errors.New("invalid maximum certificate amount")
	// ErrInvalidValidityPeriod is returned by UpdateErcLimits when the
	// validity period is not positive
	ErrInvalidValidityPeriod = errors.New("invalid validity period")
	// ErrContactInfoTooLong is returned by UpdateAuthorityInfo when the
	// contact info exceeds 128 bytes
	ErrContactInfoTooLong = errors.New("contact info too long")
	// ErrCertificateExists is returned by IssueCertificate when a record
	// already exists under the same identifier
	ErrCertificateExists = errors.New("certificate already exists")
	// ErrCertificateNotFound is returned when no record exists for the
	// given certificate identifier
	ErrCertificateNotFound = errors.New("certificate not found")
)
