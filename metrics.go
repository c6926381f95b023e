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
	"github.com/gridtokenx/poagov/database"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type engineMetrics struct {
	certificatesIssued    prometheus.Counter
	certificatesValidated prometheus.Counter
	certificatesRevoked   prometheus.Counter
	emergencyPaused       prometheus.Gauge
	maintenanceMode       prometheus.Gauge
	totalErcsIssued       prometheus.Gauge
	totalErcsValidated    prometheus.Gauge
}

func (e *Engine) initMetrics() {
	promautoFactory := promauto.With(e.config.promRegistry)
	e.metrics = &engineMetrics{}
	e.metrics.certificatesIssued = promautoFactory.NewCounter(
		prometheus.CounterOpts{
			Name: "poagov_certificates_issued_total",
			Help: "number of certificates issued by this process",
		},
	)
	e.metrics.certificatesValidated = promautoFactory.NewCounter(
		prometheus.CounterOpts{
			Name: "poagov_certificates_validated_total",
			Help: "number of certificates validated for trading by this process",
		},
	)
	e.metrics.certificatesRevoked = promautoFactory.NewCounter(
		prometheus.CounterOpts{
			Name: "poagov_certificates_revoked_total",
			Help: "number of certificates revoked by this process",
		},
	)
	e.metrics.emergencyPaused = promautoFactory.NewGauge(
		prometheus.GaugeOpts{
			Name: "poagov_emergency_paused",
			Help: "1 while the emergency pause is engaged",
		},
	)
	e.metrics.maintenanceMode = promautoFactory.NewGauge(
		prometheus.GaugeOpts{
			Name: "poagov_maintenance_mode",
			Help: "1 while maintenance mode is enabled",
		},
	)
	e.metrics.totalErcsIssued = promautoFactory.NewGauge(
		prometheus.GaugeOpts{
			Name: "poagov_total_ercs_issued",
			Help: "lifetime certificate issuance counter from the governance config",
		},
	)
	e.metrics.totalErcsValidated = promautoFactory.NewGauge(
		prometheus.GaugeOpts{
			Name: "poagov_total_ercs_validated",
			Help: "lifetime certificate validation counter from the governance config",
		},
	)
}

// updateGovernanceMetrics refreshes the config-derived gauges after a
// successful mutation
func (e *Engine) updateGovernanceMetrics(cfg *database.GovernanceConfig) {
	if e.metrics == nil {
		return
	}
	if cfg.EmergencyPaused {
		e.metrics.emergencyPaused.Set(1)
	} else {
		e.metrics.emergencyPaused.Set(0)
	}
	if cfg.MaintenanceMode {
		e.metrics.maintenanceMode.Set(1)
	} else {
		e.metrics.maintenanceMode.Set(0)
	}
	e.metrics.totalErcsIssued.Set(float64(cfg.TotalErcsIssued))
	e.metrics.totalErcsValidated.Set(float64(cfg.TotalErcsValidated))
}
