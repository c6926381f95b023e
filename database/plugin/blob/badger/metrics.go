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

package badger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (d *BlobStoreBadger) registerBlobMetrics() {
	promautoFactory := promauto.With(d.promRegistry)
	promautoFactory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "poagov_blob_lsm_size_bytes",
		Help: "size of the blob store LSM tree in bytes",
	}, func() float64 {
		lsm, _ := d.DB().Size()
		return float64(lsm)
	})
	promautoFactory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "poagov_blob_vlog_size_bytes",
		Help: "size of the blob store value log in bytes",
	}, func() float64 {
		_, vlog := d.DB().Size()
		return float64(vlog)
	})
}
