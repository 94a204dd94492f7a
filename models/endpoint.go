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

// Endpoint is the logical service name grouping algorithm versions.
// Created on first registration under the name, never mutated afterwards
// except for the batch feature column selection.
type Endpoint struct {
	BaseModel
	Name           string      `gorm:"column:name;type:varchar(256);index:uk_endpoint_name,unique;not null;comment:name" json:"name"`
	Owner          string      `gorm:"column:owner;type:varchar(256);comment:owner" json:"owner"`
	FeatureColumns Array       `gorm:"column:feature_columns;comment:ordered feature columns for batch input" json:"feature_columns"`
	Algorithms     []Algorithm `json:"algorithms"`
}
