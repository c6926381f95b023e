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

package metadata

import (
	"log/slog"

	"github.com/gridtokenx/poagov/database/models"
	"github.com/gridtokenx/poagov/database/plugin/metadata/sqlite"
	"github.com/gridtokenx/poagov/database/types"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type MetadataStore interface {
	// Database
	Close() error
	DB() *gorm.DB
	Transaction() types.Txn
	GetCommitTimestamp() (int64, error)
	SetCommitTimestamp(types.Txn, int64) error

	// Certificate index
	SetCertificate(*models.Certificate, types.Txn) error
	GetCertificate(string, types.Txn) (*models.Certificate, error)
	GetCertificates(types.Txn) ([]*models.Certificate, error)
	GetCertificateCount(types.Txn) (int64, error)
}

// New creates the sqlite-backed metadata store. An empty dataDir selects
// an in-memory database, useful for testing
func New(
	dataDir string,
	logger *slog.Logger,
	promRegistry prometheus.Registerer,
) (MetadataStore, error) {
	return sqlite.New(dataDir, logger, promRegistry)
}
