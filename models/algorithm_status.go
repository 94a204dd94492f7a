/*
 *     Copyright 2023 The modelgate Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package models

const (
	// StatusKindTesting represents an algorithm under development evaluation.
	StatusKindTesting = "testing"

	// StatusKindStaging represents an algorithm staged before production.
	StatusKindStaging = "staging"

	// StatusKindProduction represents the algorithm serving production traffic.
	StatusKindProduction = "production"

	// StatusKindABTesting represents an algorithm under active A/B comparison.
	StatusKindABTesting = "ab_testing"
)

// StatusKinds lists every valid status kind.
var StatusKinds = []string{
	StatusKindTesting,
	StatusKindStaging,
	StatusKindProduction,
	StatusKindABTesting,
}

// IsValidStatusKind reports whether kind names a deployment role.
func IsValidStatusKind(kind string) bool {
	for _, k := range StatusKinds {
		if k == kind {
			return true
		}
	}

	return false
}

// AlgorithmStatus is one timestamped assertion of an algorithm's deployment
// role. Rows are appended, never replaced; at most one row per
// (algorithm, status) pair may be active at any time.
type AlgorithmStatus struct {
	BaseModel
	Status      string `gorm:"column:status;type:varchar(256);index:idx_algorithm_status,priority:2;not null;comment:status kind" json:"status"`
	Active      bool   `gorm:"column:active;comment:active flag" json:"active"`
	CreatedBy   string `gorm:"column:created_by;type:varchar(256);comment:creator" json:"created_by"`
	AlgorithmID uint   `gorm:"index:idx_algorithm_status,priority:1;not null;comment:algorithm id" json:"algorithm_id"`
}
