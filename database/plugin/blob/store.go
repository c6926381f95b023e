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

package blob

import (
	"log/slog"

	"github.com/gridtokenx/poagov/database/plugin/blob/badger"
	"github.com/gridtokenx/poagov/database/types"
	"github.com/prometheus/client_golang/prometheus"
)

// BlobStore is the interface for the addressable record substrate. All
// access happens within a transaction; writes to the same key are
// serialized by the underlying store.
type BlobStore interface {
	Close() error
	NewTransaction(readWrite bool) types.Txn
	Get(txn types.Txn, key []byte) ([]byte, error)
	Set(txn types.Txn, key, val []byte) error
	Delete(txn types.Txn, key []byte) error
	GetCommitTimestamp() (int64, error)
	SetCommitTimestamp(txn types.Txn, timestamp int64) error
}

// New creates the badger-backed blob store. An empty dataDir selects an
// in-memory store, useful for testing
func New(
	dataDir string,
	logger *slog.Logger,
	promRegistry prometheus.Registerer,
) (BlobStore, error) {
	return badger.New(
		badger.WithDataDir(dataDir),
		badger.WithLogger(logger),
		badger.WithPromRegistry(promRegistry),
	)
}
