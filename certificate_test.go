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

package poagov_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gridtokenx/poagov"
	"github.com/gridtokenx/poagov/event"
)

func TestIssueAndValidateScenario(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Initialize(testAuthority))
	require.NoError(t, e.IssueCertificate(
		testAuthority,
		poagov.IssueCertificateParams{
			CertificateId:   "C-1",
			EnergyAmount:    500,
			RenewableSource: "solar",
		},
	))
	stats, err := e.Stats()
	require.NoError(t, err)
	require.Equal(t, uint64(1), stats.TotalErcsIssued)
	require.NoError(t, e.ValidateForTrading(testAuthority, "C-1"))
	stats, err = e.Stats()
	require.NoError(t, err)
	require.Equal(t, uint64(1), stats.TotalErcsValidated)
	cert, err := e.Certificate("C-1")
	require.NoError(t, err)
	require.True(t, cert.ValidatedForTrading)
	require.NotNil(t, cert.TradingValidatedAt)
	// The transition is one-way and happens at most once
	require.ErrorIs(
		t,
		e.ValidateForTrading(testAuthority, "C-1"),
		poagov.ErrAlreadyValidated,
	)
	stats, err = e.Stats()
	require.NoError(t, err)
	require.Equal(t, uint64(1), stats.TotalErcsValidated)
}

func TestIssueBelowMinimum(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Initialize(testAuthority))
	err := e.IssueCertificate(testAuthority, poagov.IssueCertificateParams{
		CertificateId:   "C-2",
		EnergyAmount:    50,
		RenewableSource: "wind",
	})
	require.ErrorIs(t, err, poagov.ErrBelowMinimumEnergy)
	// No record was created and the counter is unchanged
	_, err = e.Certificate("C-2")
	require.ErrorIs(t, err, poagov.ErrCertificateNotFound)
	stats, err := e.Stats()
	require.NoError(t, err)
	require.Equal(t, uint64(0), stats.TotalErcsIssued)
}

func TestIssueAboveMaximum(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Initialize(testAuthority))
	err := e.IssueCertificate(testAuthority, poagov.IssueCertificateParams{
		CertificateId: "C-3",
		EnergyAmount:  poagov.DefaultMaxErcAmount + 1,
	})
	require.ErrorIs(t, err, poagov.ErrExceedsMaximumEnergy)
}

func TestIssueLengthLimits(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Initialize(testAuthority))
	err := e.IssueCertificate(testAuthority, poagov.IssueCertificateParams{
		CertificateId: strings.Repeat("x", 65),
		EnergyAmount:  500,
	})
	require.ErrorIs(t, err, poagov.ErrCertificateIdTooLong)
	err = e.IssueCertificate(testAuthority, poagov.IssueCertificateParams{
		CertificateId:   "C-4",
		EnergyAmount:    500,
		RenewableSource: strings.Repeat("x", 65),
	})
	require.ErrorIs(t, err, poagov.ErrSourceNameTooLong)
	// Exactly at the limits is accepted
	require.NoError(t, e.IssueCertificate(
		testAuthority,
		poagov.IssueCertificateParams{
			CertificateId:   strings.Repeat("i", 64),
			EnergyAmount:    500,
			RenewableSource: strings.Repeat("s", 64),
		},
	))
}

func TestIssueDuplicateId(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Initialize(testAuthority))
	require.NoError(t, e.IssueCertificate(
		testAuthority,
		poagov.IssueCertificateParams{
			CertificateId:   "C-5",
			EnergyAmount:    500,
			RenewableSource: "solar",
		},
	))
	// Issuance is not idempotent: a retry with the same identifier fails
	err := e.IssueCertificate(testAuthority, poagov.IssueCertificateParams{
		CertificateId:   "C-5",
		EnergyAmount:    999,
		RenewableSource: "wind",
	})
	require.ErrorIs(t, err, poagov.ErrCertificateExists)
	// The original record was not overwritten
	cert, err := e.Certificate("C-5")
	require.NoError(t, err)
	require.Equal(t, uint64(500), cert.EnergyAmount)
	require.Equal(t, "solar", cert.RenewableSource)
	stats, err := e.Stats()
	require.NoError(t, err)
	require.Equal(t, uint64(1), stats.TotalErcsIssued)
}

func TestIssueBlockedByGates(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Initialize(testAuthority))
	params := poagov.IssueCertificateParams{
		CertificateId: "C-6",
		EnergyAmount:  500,
	}
	// Emergency pause gates issuance
	require.NoError(t, e.EmergencyPause(testAuthority, ""))
	require.ErrorIs(
		t,
		e.IssueCertificate(testAuthority, params),
		poagov.ErrSystemPaused,
	)
	require.NoError(t, e.EmergencyUnpause(testAuthority))
	// Maintenance mode gates issuance
	require.NoError(t, e.SetMaintenanceMode(testAuthority, true))
	require.ErrorIs(
		t,
		e.IssueCertificate(testAuthority, params),
		poagov.ErrMaintenanceMode,
	)
	require.NoError(t, e.SetMaintenanceMode(testAuthority, false))
	// The validation toggle gates issuance
	require.NoError(t, e.UpdateConfig(testAuthority, false))
	require.ErrorIs(
		t,
		e.IssueCertificate(testAuthority, params),
		poagov.ErrErcValidationDisabled,
	)
	require.NoError(t, e.UpdateConfig(testAuthority, true))
	require.NoError(t, e.IssueCertificate(testAuthority, params))
}

func TestValidateBlockedByGates(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Initialize(testAuthority))
	require.NoError(t, e.IssueCertificate(
		testAuthority,
		poagov.IssueCertificateParams{
			CertificateId: "C-7",
			EnergyAmount:  500,
		},
	))
	require.NoError(t, e.EmergencyPause(testAuthority, ""))
	require.ErrorIs(
		t,
		e.ValidateForTrading(testAuthority, "C-7"),
		poagov.ErrSystemPaused,
	)
	require.NoError(t, e.EmergencyUnpause(testAuthority))
	require.NoError(t, e.SetMaintenanceMode(testAuthority, true))
	require.ErrorIs(
		t,
		e.ValidateForTrading(testAuthority, "C-7"),
		poagov.ErrMaintenanceMode,
	)
	require.NoError(t, e.SetMaintenanceMode(testAuthority, false))
	require.NoError(t, e.ValidateForTrading(testAuthority, "C-7"))
}

// Changing limits never retroactively invalidates existing certificates;
// amounts are checked against the limits configured at issuance time
func TestLimitsSnapshotAtIssuance(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Initialize(testAuthority))
	require.NoError(t, e.IssueCertificate(
		testAuthority,
		poagov.IssueCertificateParams{
			CertificateId: "C-8",
			EnergyAmount:  500,
		},
	))
	// Raise the minimum above the issued amount
	require.NoError(t, e.UpdateErcLimits(testAuthority, 600, 2_000_000, 1000))
	// The existing certificate is still valid and validatable
	cert, err := e.Certificate("C-8")
	require.NoError(t, err)
	require.Equal(t, poagov.ErcStatusValid, cert.EffectiveStatus)
	require.NoError(t, e.ValidateForTrading(testAuthority, "C-8"))
	// New issuance uses the new limits
	require.ErrorIs(
		t,
		e.IssueCertificate(testAuthority, poagov.IssueCertificateParams{
			CertificateId: "C-9",
			EnergyAmount:  500,
		}),
		poagov.ErrBelowMinimumEnergy,
	)
}

func TestValidateExpired(t *testing.T) {
	clock := newTestClock()
	e := newTestEngine(t, poagov.WithClock(clock.Now))
	require.NoError(t, e.Initialize(testAuthority))
	require.NoError(t, e.IssueCertificate(
		testAuthority,
		poagov.IssueCertificateParams{
			CertificateId: "C-10",
			EnergyAmount:  500,
		},
	))
	// Move past the validity period
	clock.Advance(
		time.Duration(poagov.DefaultErcValidityPeriod)*time.Second +
			time.Hour,
	)
	// The stored status still reads Valid; expiry only surfaces lazily
	cert, err := e.Certificate("C-10")
	require.NoError(t, err)
	require.Equal(t, poagov.ErcStatusValid, cert.Status)
	require.Equal(t, poagov.ErcStatusExpired, cert.EffectiveStatus)
	require.ErrorIs(
		t,
		e.ValidateForTrading(testAuthority, "C-10"),
		poagov.ErrErcExpired,
	)
	stats, err := e.Stats()
	require.NoError(t, err)
	require.Equal(t, uint64(0), stats.TotalErcsValidated)
}

func TestRevokeCertificate(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Initialize(testAuthority))
	require.NoError(t, e.IssueCertificate(
		testAuthority,
		poagov.IssueCertificateParams{
			CertificateId: "C-11",
			EnergyAmount:  500,
		},
	))
	require.ErrorIs(
		t,
		e.RevokeCertificate(poagov.Authority("intruder"), "C-11", ""),
		poagov.ErrUnauthorized,
	)
	require.NoError(
		t,
		e.RevokeCertificate(testAuthority, "C-11", "metering fraud"),
	)
	cert, err := e.Certificate("C-11")
	require.NoError(t, err)
	require.Equal(t, poagov.ErcStatusRevoked, cert.Status)
	// A revoked certificate can never be validated for trading
	require.ErrorIs(
		t,
		e.ValidateForTrading(testAuthority, "C-11"),
		poagov.ErrInvalidErcStatus,
	)
	// Revoking twice fails for the same reason
	require.ErrorIs(
		t,
		e.RevokeCertificate(testAuthority, "C-11", ""),
		poagov.ErrInvalidErcStatus,
	)
	require.ErrorIs(
		t,
		e.RevokeCertificate(testAuthority, "C-12", ""),
		poagov.ErrCertificateNotFound,
	)
}

// Revocation is a safety control and stays available while paused, like
// the config operations
func TestRevokeWhilePaused(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Initialize(testAuthority))
	require.NoError(t, e.IssueCertificate(
		testAuthority,
		poagov.IssueCertificateParams{
			CertificateId: "C-13",
			EnergyAmount:  500,
		},
	))
	require.NoError(t, e.EmergencyPause(testAuthority, ""))
	require.NoError(t, e.RevokeCertificate(testAuthority, "C-13", ""))
	cert, err := e.Certificate("C-13")
	require.NoError(t, err)
	require.Equal(t, poagov.ErcStatusRevoked, cert.Status)
}

func TestCertificatesListing(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Initialize(testAuthority))
	ids := []string{"C-20", "C-21", "C-22"}
	for _, id := range ids {
		require.NoError(t, e.IssueCertificate(
			testAuthority,
			poagov.IssueCertificateParams{
				CertificateId:   id,
				EnergyAmount:    500,
				RenewableSource: "hydro",
			},
		))
	}
	certs, err := e.Certificates()
	require.NoError(t, err)
	require.Len(t, certs, len(ids))
	for i, cert := range certs {
		require.Equal(t, ids[i], cert.CertificateId)
		require.Equal(t, uint64(500), cert.EnergyAmount)
		require.Equal(t, "hydro", cert.RenewableSource)
		require.Equal(t, poagov.ErcStatusValid, cert.Status)
		require.False(t, cert.ValidatedForTrading)
	}
}

func TestCertificateEvents(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Initialize(testAuthority))
	_, issuedCh := e.EventBus().Subscribe(event.CertificateIssuedEventType)
	_, validatedCh := e.EventBus().Subscribe(event.CertificateValidatedEventType)
	_, revokedCh := e.EventBus().Subscribe(event.CertificateRevokedEventType)
	require.NoError(t, e.IssueCertificate(
		testAuthority,
		poagov.IssueCertificateParams{
			CertificateId:   "C-30",
			EnergyAmount:    750,
			RenewableSource: "solar",
		},
	))
	select {
	case evt := <-issuedCh:
		data, ok := evt.Data.(event.CertificateIssuedEvent)
		require.True(t, ok)
		require.Equal(t, "C-30", data.CertificateId)
		require.Equal(t, uint64(750), data.EnergyAmount)
		require.Equal(t, "solar", data.RenewableSource)
	case <-time.After(1 * time.Second):
		t.Fatalf("timeout waiting for issuance event")
	}
	require.NoError(t, e.ValidateForTrading(testAuthority, "C-30"))
	select {
	case evt := <-validatedCh:
		data, ok := evt.Data.(event.CertificateValidatedEvent)
		require.True(t, ok)
		require.Equal(t, "C-30", data.CertificateId)
	case <-time.After(1 * time.Second):
		t.Fatalf("timeout waiting for validation event")
	}
	require.NoError(t, e.IssueCertificate(
		testAuthority,
		poagov.IssueCertificateParams{
			CertificateId: "C-31",
			EnergyAmount:  500,
		},
	))
	require.NoError(
		t,
		e.RevokeCertificate(testAuthority, "C-31", "duplicate meter"),
	)
	select {
	case evt := <-revokedCh:
		data, ok := evt.Data.(event.CertificateRevokedEvent)
		require.True(t, ok)
		require.Equal(t, "C-31", data.CertificateId)
		require.Equal(t, "duplicate meter", data.Reason)
	case <-time.After(1 * time.Second):
		t.Fatalf("timeout waiting for revocation event")
	}
}
