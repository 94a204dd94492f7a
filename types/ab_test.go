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

package types

type ABTestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type GetABTestsQuery struct {
	Page    int `form:"page" binding:"omitempty,gte=1"`
	PerPage int `form:"per_page" binding:"omitempty,gte=1,lte=1000"`
}

type CreateABTestRequest struct {
	Title        string `json:"title" binding:"required"`
	AlgorithmAID uint   `json:"algorithm_a_id" binding:"required"`
	AlgorithmBID uint   `json:"algorithm_b_id" binding:"required"`
	CreatedBy    string `json:"created_by" binding:"omitempty"`
}

type StopABTestRequest struct {
	CreatedBy string `json:"created_by" binding:"omitempty"`
}
