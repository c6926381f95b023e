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

package sqlite_test

import (
	"testing"

	"github.com/gridtokenx/poagov/database"
	"github.com/gridtokenx/poagov/database/models"
	"github.com/gridtokenx/poagov/database/plugin/metadata/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCertificate(t *testing.T) {
	// Setup database
	db, err := database.New(&database.Config{
		DataDir: t.TempDir(),
	})
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	// Get metadata store and cast to concrete type
	metadataStore := db.Metadata().(*sqlite.MetadataStoreSqlite)

	expiresAt := int64(2000)
	err = metadataStore.SetCertificate(&models.Certificate{
		CertificateId:   "C-1",
		Authority:       "authority-1",
		EnergyAmount:    500,
		RenewableSource: "solar",
		Status:          0,
		IssuedAt:        1000,
		ExpiresAt:       &expiresAt,
	}, nil)
	require.NoError(t, err)

	// Verify the row was created
	cert, err := metadataStore.GetCertificate("C-1", nil)
	require.NoError(t, err)
	require.NotNil(t, cert)
	assert.Equal(t, "C-1", cert.CertificateId)
	assert.Equal(t, uint64(500), cert.EnergyAmount)
	assert.False(t, cert.ValidatedForTrading)
	firstId := cert.ID

	// Setting the same certificate again updates in place
	tradingValidatedAt := int64(1500)
	err = metadataStore.SetCertificate(&models.Certificate{
		CertificateId:       "C-1",
		Authority:           "authority-1",
		EnergyAmount:        500,
		RenewableSource:     "solar",
		Status:              0,
		ValidatedForTrading: true,
		IssuedAt:            1000,
		ExpiresAt:           &expiresAt,
		TradingValidatedAt:  &tradingValidatedAt,
	}, nil)
	require.NoError(t, err)
	cert, err = metadataStore.GetCertificate("C-1", nil)
	require.NoError(t, err)
	assert.Equal(t, firstId, cert.ID)
	assert.True(t, cert.ValidatedForTrading)
	require.NotNil(t, cert.TradingValidatedAt)
	assert.Equal(t, tradingValidatedAt, *cert.TradingValidatedAt)

	// Missing rows return a typed error
	_, err = metadataStore.GetCertificate("C-missing", nil)
	require.ErrorIs(t, err, models.ErrCertificateNotFound)

	// Count and listing
	count, err := metadataStore.GetCertificateCount(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	certs, err := metadataStore.GetCertificates(nil)
	require.NoError(t, err)
	require.Len(t, certs, 1)
}
