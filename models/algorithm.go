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

// Algorithm identifies one trained model version under an endpoint.
// The uk_algorithm composite index is the natural key used to avoid
// duplicate rows when the same logical model is re-registered at startup;
// it includes the endpoint so one model name can serve several endpoints.
type Algorithm struct {
	BaseModel
	Name           string            `gorm:"column:name;type:varchar(256);index:uk_algorithm,unique;not null;comment:name" json:"name"`
	Description    string            `gorm:"column:description;type:varchar(256);index:uk_algorithm,unique;comment:description" json:"description"`
	CodeTag        string            `gorm:"column:code_tag;type:varchar(256);comment:opaque code version tag" json:"code_tag"`
	Version        string            `gorm:"column:version;type:varchar(256);index:uk_algorithm,unique;not null;comment:semantic version" json:"version"`
	Owner          string            `gorm:"column:owner;type:varchar(256);index:uk_algorithm,unique;comment:owner" json:"owner"`
	EndpointID     uint              `gorm:"index:uk_algorithm,unique;not null;comment:endpoint id" json:"endpoint_id"`
	Endpoint       Endpoint          `json:"endpoint"`
	Statuses       []AlgorithmStatus `json:"statuses"`
	RequestRecords []RequestRecord   `json:"-"`
}
