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

import "time"

// ABTest is a timed comparison between exactly two algorithms under the
// same endpoint. EndedAt and Summary stay null while the test is running
// and are written exactly once at stop time.
type ABTest struct {
	BaseModel
	Title        string     `gorm:"column:title;type:varchar(256);not null;comment:title" json:"title"`
	CreatedBy    string     `gorm:"column:created_by;type:varchar(256);comment:creator" json:"created_by"`
	StartedAt    time.Time  `gorm:"column:started_at;type:timestamp;comment:start time" json:"started_at"`
	EndedAt      *time.Time `gorm:"column:ended_at;type:timestamp;comment:end time" json:"ended_at"`
	Summary      JSONMap    `gorm:"column:summary;comment:scoring summary" json:"summary"`
	AlgorithmAID uint       `gorm:"column:algorithm_a_id;not null;comment:algorithm a id" json:"algorithm_a_id"`
	AlgorithmA   Algorithm  `gorm:"foreignKey:AlgorithmAID" json:"algorithm_a"`
	AlgorithmBID uint       `gorm:"column:algorithm_b_id;not null;comment:algorithm b id" json:"algorithm_b_id"`
	AlgorithmB   Algorithm  `gorm:"foreignKey:AlgorithmBID" json:"algorithm_b"`
}
