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

package event

import "time"

const (
	// GovernanceInitializedEventType is emitted once when the governance
	// config record is created
	GovernanceInitializedEventType = EventType("governance.initialized")
	// GovernanceConfigUpdatedEventType is emitted when the validation
	// toggle changes
	GovernanceConfigUpdatedEventType = EventType("governance.config-updated")
	// GovernancePausedEventType is emitted when the emergency pause engages
	GovernancePausedEventType = EventType("governance.paused")
	// GovernanceUnpausedEventType is emitted when the emergency pause lifts
	GovernanceUnpausedEventType = EventType("governance.unpaused")
	// GovernanceMaintenanceEventType is emitted when maintenance mode toggles
	GovernanceMaintenanceEventType = EventType("governance.maintenance")
	// GovernanceLimitsUpdatedEventType is emitted when issuance limits change
	GovernanceLimitsUpdatedEventType = EventType("governance.limits-updated")
	// GovernanceAuthorityInfoEventType is emitted when the authority
	// display info changes
	GovernanceAuthorityInfoEventType = EventType("governance.authority-info")
)

// GovernanceInitializedEvent records the creation of the governance config
type GovernanceInitializedEvent struct {
	Authority     string
	AuthorityName string
	ContactInfo   string
	Timestamp     time.Time
}

// GovernanceConfigUpdatedEvent records a change to the validation toggle
type GovernanceConfigUpdatedEvent struct {
	Authority               string
	ErcValidationEnabled    bool
	OldErcValidationEnabled bool
	Timestamp               time.Time
}

// GovernancePausedEvent records the emergency pause engaging. Reason is
// empty when the caller gave none.
type GovernancePausedEvent struct {
	Authority string
	Reason    string
	Timestamp time.Time
}

// GovernanceUnpausedEvent records the emergency pause lifting
type GovernanceUnpausedEvent struct {
	Authority string
	Timestamp time.Time
}

// GovernanceMaintenanceEvent records a maintenance mode toggle
type GovernanceMaintenanceEvent struct {
	Authority          string
	MaintenanceMode    bool
	OldMaintenanceMode bool
	Timestamp          time.Time
}

// GovernanceLimitsUpdatedEvent records a change to the issuance limits
// and validity period, carrying both the old and new values
type GovernanceLimitsUpdatedEvent struct {
	Authority            string
	MinEnergyAmount      uint64
	OldMinEnergyAmount   uint64
	MaxErcAmount         uint64
	OldMaxErcAmount      uint64
	ErcValidityPeriod    int64
	OldErcValidityPeriod int64
	Timestamp            time.Time
}

// GovernanceAuthorityInfoEvent records a change to the authority contact
// info, carrying both the old and new values
type GovernanceAuthorityInfoEvent struct {
	Authority      string
	ContactInfo    string
	OldContactInfo string
	Timestamp      time.Time
}
