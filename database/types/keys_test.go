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

package types_test

import (
	"bytes"
	"testing"

	"github.com/gridtokenx/poagov/database/types"
)

func TestGovernanceConfigBlobKeyFixed(t *testing.T) {
	key1 := types.GovernanceConfigBlobKey()
	key2 := types.GovernanceConfigBlobKey()
	if !bytes.Equal(key1, key2) {
		t.Fatalf("expected fixed config key, got %x and %x", key1, key2)
	}
	if !bytes.Equal(key1, []byte("gov_config")) {
		t.Fatalf("unexpected config key: %s", key1)
	}
}

func TestCertificateBlobKey(t *testing.T) {
	testDefs := []struct {
		certificateId string
		expectedKey   []byte
	}{
		{
			certificateId: "CERT-001",
			expectedKey:   []byte("erc_certificateCERT-001"),
		},
		{
			certificateId: "",
			expectedKey:   []byte("erc_certificate"),
		},
	}
	for _, testDef := range testDefs {
		key := types.CertificateBlobKey(testDef.certificateId)
		if !bytes.Equal(key, testDef.expectedKey) {
			t.Fatalf(
				"did not get expected key: got %s, wanted %s",
				key,
				testDef.expectedKey,
			)
		}
	}
}

func TestCertificateBlobKeyDistinct(t *testing.T) {
	key1 := types.CertificateBlobKey("CERT-001")
	key2 := types.CertificateBlobKey("CERT-002")
	if bytes.Equal(key1, key2) {
		t.Fatalf("expected distinct keys for distinct certificate ids")
	}
}
