// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Progression is the separately signed summary of a player's lifetime
// counters. It lives beside the sealed save, never inside it, and feeds the
// leaderboard.
//
// Both counters are expected to be non-decreasing over a legitimate
// lifetime. Signature is HMAC-SHA256 over MonstersKilled under the shared
// signature secret.
type Progression struct {
	Owner            string    `json:"username"`
	MonstersKilled   int32     `json:"monsters_killed"`
	DistanceTraveled int32     `json:"distance_traveled"`
	AsOf             time.Time `json:"as_of"`
	Signature        []byte    `json:"signature,omitempty"`
}

// Exceeds reports whether both counters of p are strictly greater than
// those of other.
func (p Progression) Exceeds(other Progression) bool {
	return p.MonstersKilled > other.MonstersKilled && p.DistanceTraveled > other.DistanceTraveled
}

// Regresses reports whether either counter of p is lower than the
// corresponding counter of other.
func (p Progression) Regresses(other Progression) bool {
	return p.MonstersKilled < other.MonstersKilled || p.DistanceTraveled < other.DistanceTraveled
}

// ProgressionPushRequest is the body of a progression update.
type ProgressionPushRequest struct {
	MonstersKilled   int32     `json:"monsters_killed"`
	DistanceTraveled int32     `json:"distance_traveled"`
	AsOf             time.Time `json:"as_of"`
}
