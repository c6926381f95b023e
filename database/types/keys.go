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

const (
	GovernanceConfigBlobKeyPrefix = "gov_config"
	CertificateBlobKeyPrefix      = "erc_certificate"
)

// GovernanceConfigBlobKey returns the fixed blob key for the governance
// config singleton record
func GovernanceConfigBlobKey() []byte {
	return []byte(GovernanceConfigBlobKeyPrefix)
}

// CertificateBlobKey returns the blob key for a certificate record. The
// key is derived from a fixed seed prefix plus the certificate identifier,
// which makes the key itself the uniqueness mechanism for issuance.
func CertificateBlobKey(certificateId string) []byte {
	key := []byte(CertificateBlobKeyPrefix)
	key = append(key, certificateId...)
	return key
}
