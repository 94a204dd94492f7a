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

// RequestRecord is the immutable audit log entry for one served prediction.
// Feedback is filled in later by an external process once ground truth is
// known; it is the sole evidence source for A/B scoring.
type RequestRecord struct {
	BaseModel
	UUID        string  `gorm:"column:uuid;type:varchar(36);index;comment:correlation uuid" json:"uuid"`
	Input       string  `gorm:"column:input;type:text;comment:serialized feature payload" json:"input"`
	Output      string  `gorm:"column:output;type:text;comment:serialized model output" json:"output"`
	Response    string  `gorm:"column:response;type:varchar(256);comment:normalized response value" json:"response"`
	Feedback    *string `gorm:"column:feedback;type:varchar(256);comment:ground truth label" json:"feedback"`
	AlgorithmID uint    `gorm:"index;not null;comment:algorithm id" json:"algorithm_id"`
}
