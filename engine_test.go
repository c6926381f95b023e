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

import (
	"math"
	"testing"
	"time"

	"github.com/gridtokenx/poagov/database"
)

func TestSaturatingAdd(t *testing.T) {
	testDefs := []struct {
		a        uint64
		b        uint64
		expected uint64
	}{
		{0, 0, 0},
		{1, 1, 2},
		{math.MaxUint64, 1, math.MaxUint64},
		{math.MaxUint64 - 1, 1, math.MaxUint64},
		{math.MaxUint64, math.MaxUint64, math.MaxUint64},
	}
	for _, testDef := range testDefs {
		result := saturatingAdd(testDef.a, testDef.b)
		if result != testDef.expected {
			t.Fatalf(
				"saturatingAdd(%d, %d) = %d, expected %d",
				testDef.a,
				testDef.b,
				result,
				testDef.expected,
			)
		}
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour).Unix()
	future := now.Add(time.Hour).Unix()
	testDefs := []struct {
		name      string
		status    database.ErcStatus
		expiresAt *int64
		expected  database.ErcStatus
	}{
		{"valid before expiry", database.ErcStatusValid, &future, database.ErcStatusValid},
		{"valid past expiry", database.ErcStatusValid, &past, database.ErcStatusExpired},
		{"valid without expiry", database.ErcStatusValid, nil, database.ErcStatusValid},
		{"revoked past expiry", database.ErcStatusRevoked, &past, database.ErcStatusRevoked},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			result := effectiveStatus(testDef.status, testDef.expiresAt, now)
			if result != testDef.expected {
				t.Fatalf(
					"effectiveStatus = %s, expected %s",
					result,
					testDef.expected,
				)
			}
		})
	}
}

func TestRequireAuthority(t *testing.T) {
	cfg := &database.GovernanceConfig{Authority: "authority-1"}
	if err := requireAuthority(Authority("authority-1"), cfg); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := requireAuthority(Authority("someone-else"), cfg); err == nil {
		t.Fatalf("expected error for mismatched authority")
	}
}
