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

package types

import "errors"

var (
	ErrNilTxn               = errors.New("nil transaction")
	ErrTxnWrongType         = errors.New("transaction is not the expected type")
	ErrTxnFinished          = errors.New("transaction already finished")
	ErrBlobKeyNotFound      = errors.New("blob key not found")
	ErrBlobKeyExists        = errors.New("blob key already exists")
	ErrBlobStoreUnavailable = errors.New("blob store unavailable")
	ErrNoStoreAvailable     = errors.New("no store available for transaction")
)

// Txn is the transaction handle shared by the blob and metadata stores.
// Commit and Rollback are idempotent; calling either on a finished
// transaction is a no-op.
type Txn interface {
	Commit() error
	Rollback() error
}
