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

package database_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridtokenx/poagov/database"
)

func newTestDatabase(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.New(&database.Config{
		DataDir: t.TempDir(),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close() //nolint:errcheck
	})
	return db
}

func TestGovernanceConfigRoundTrip(t *testing.T) {
	db := newTestDatabase(t)
	// Missing record
	_, err := db.GetGovernanceConfig(nil)
	require.ErrorIs(t, err, database.ErrGovernanceConfigNotFound)
	// Create and read back
	cfg := &database.GovernanceConfig{
		Authority:            "authority-1",
		AuthorityName:        "Test Authority",
		ContactInfo:          "test@example.com",
		ErcValidationEnabled: true,
		MaxErcAmount:         1_000_000,
		MinEnergyAmount:      100,
		ErcValidityPeriod:    31_536_000,
		CreatedAt:            1000,
		LastUpdated:          1000,
		Version:              1,
	}
	require.NoError(t, db.CreateGovernanceConfig(cfg, nil))
	readCfg, err := db.GetGovernanceConfig(nil)
	require.NoError(t, err)
	require.Equal(t, cfg, readCfg)
	// Creation is once-only
	err = db.CreateGovernanceConfig(cfg, nil)
	require.ErrorIs(t, err, database.ErrGovernanceConfigExists)
	// Overwrite via Set
	cfg.EmergencyPaused = true
	ts := int64(2000)
	cfg.EmergencyTimestamp = &ts
	require.NoError(t, db.SetGovernanceConfig(cfg, nil))
	readCfg, err = db.GetGovernanceConfig(nil)
	require.NoError(t, err)
	require.True(t, readCfg.EmergencyPaused)
	require.NotNil(t, readCfg.EmergencyTimestamp)
	require.Equal(t, ts, *readCfg.EmergencyTimestamp)
}

func TestCertificateRoundTrip(t *testing.T) {
	db := newTestDatabase(t)
	_, err := db.GetCertificate("missing", nil)
	require.ErrorIs(t, err, database.ErrCertificateNotFound)
	expiresAt := int64(2000)
	cert := &database.ErcCertificate{
		CertificateId:   "C-1",
		Authority:       "authority-1",
		EnergyAmount:    500,
		RenewableSource: "solar",
		ValidationData:  "meter-reading-1",
		IssuedAt:        1000,
		ExpiresAt:       &expiresAt,
		Status:          database.ErcStatusValid,
	}
	require.NoError(t, db.CreateCertificate(cert, nil))
	readCert, err := db.GetCertificate("C-1", nil)
	require.NoError(t, err)
	require.Equal(t, cert, readCert)
	// The derived blob key is the uniqueness mechanism
	err = db.CreateCertificate(cert, nil)
	require.ErrorIs(t, err, database.ErrCertificateExists)
}

func TestCertificateIndexMirror(t *testing.T) {
	db := newTestDatabase(t)
	for i, id := range []string{"C-1", "C-2", "C-3"} {
		expiresAt := int64(2000 + i)
		require.NoError(t, db.CreateCertificate(&database.ErcCertificate{
			CertificateId:   id,
			Authority:       "authority-1",
			EnergyAmount:    uint64(100 * (i + 1)),
			RenewableSource: "wind",
			IssuedAt:        int64(1000 + i),
			ExpiresAt:       &expiresAt,
			Status:          database.ErcStatusValid,
		}, nil))
	}
	count, err := db.GetCertificateCount(nil)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
	rows, err := db.GetCertificates(nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// Issuance order
	require.Equal(t, "C-1", rows[0].CertificateId)
	require.Equal(t, "C-2", rows[1].CertificateId)
	require.Equal(t, "C-3", rows[2].CertificateId)
	// Updates refresh the index row
	cert, err := db.GetCertificate("C-2", nil)
	require.NoError(t, err)
	cert.ValidatedForTrading = true
	ts := int64(1500)
	cert.TradingValidatedAt = &ts
	require.NoError(t, db.SetCertificate(cert, nil))
	rows, err = db.GetCertificates(nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.True(t, rows[1].ValidatedForTrading)
	require.NotNil(t, rows[1].TradingValidatedAt)
}

func TestTransactionRollback(t *testing.T) {
	db := newTestDatabase(t)
	expiresAt := int64(2000)
	cert := &database.ErcCertificate{
		CertificateId: "C-rollback",
		Authority:     "authority-1",
		EnergyAmount:  500,
		IssuedAt:      1000,
		ExpiresAt:     &expiresAt,
		Status:        database.ErcStatusValid,
	}
	txn := db.Transaction(true)
	require.NoError(t, db.CreateCertificate(cert, txn))
	require.NoError(t, txn.Rollback())
	txn.Release()
	// Nothing was persisted in either store
	_, err := db.GetCertificate("C-rollback", nil)
	require.ErrorIs(t, err, database.ErrCertificateNotFound)
	count, err := db.GetCertificateCount(nil)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func TestCommitTimestampsMatchAfterCommit(t *testing.T) {
	db := newTestDatabase(t)
	txn := db.Transaction(true)
	err := txn.Do(func(txn *database.Txn) error {
		return db.CreateGovernanceConfig(&database.GovernanceConfig{
			Authority: "authority-1",
			Version:   1,
		}, txn)
	})
	require.NoError(t, err)
	blobTs, err := db.Blob().GetCommitTimestamp()
	require.NoError(t, err)
	metadataTs, err := db.Metadata().GetCommitTimestamp()
	require.NoError(t, err)
	require.Equal(t, blobTs, metadataTs)
	require.Greater(t, blobTs, int64(0))
}
