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

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func resetGlobalConfig() {
	globalConfig = &Config{
		DataDir:         ".poagov",
		Signer:          "",
		MetricsBindAddr: "127.0.0.1",
		MetricsPort:     12798,
	}
}

func TestLoadConfigFile(t *testing.T) {
	resetGlobalConfig()
	yamlContent := `
dataDir: "/var/lib/poagov"
signer: "authority-1"
metricsBindAddr: "0.0.0.0"
metricsPort: 8088
tracing: true
tracingStdout: true
`
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test-poagov.yaml")
	if err := os.WriteFile(tmpFile, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	expected := &Config{
		DataDir:         "/var/lib/poagov",
		Signer:          "authority-1",
		MetricsBindAddr: "0.0.0.0",
		MetricsPort:     8088,
		Tracing:         true,
		TracingStdout:   true,
	}
	cfg, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg, expected) {
		t.Fatalf("config mismatch\n  got:      %+v\n  expected: %+v", cfg, expected)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	resetGlobalConfig()
	yamlContent := `
signer: "authority-1"
`
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test-poagov.yaml")
	if err := os.WriteFile(tmpFile, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	cfg, err := LoadConfig(tmpFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Signer != "authority-1" {
		t.Fatalf("signer not loaded from file: %+v", cfg)
	}
	if cfg.DataDir != ".poagov" {
		t.Fatalf("default data dir not preserved: %+v", cfg)
	}
	if cfg.MetricsPort != 12798 {
		t.Fatalf("default metrics port not preserved: %+v", cfg)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	resetGlobalConfig()
	// Keep the default config file search away from any real home dir
	t.Setenv("HOME", t.TempDir())
	t.Setenv("POAGOV_DATA_DIR", "/tmp/poagov-env")
	t.Setenv("POAGOV_SIGNER", "env-authority")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataDir != "/tmp/poagov-env" {
		t.Fatalf("env override not applied: %+v", cfg)
	}
	if cfg.Signer != "env-authority" {
		t.Fatalf("env override not applied: %+v", cfg)
	}
}
