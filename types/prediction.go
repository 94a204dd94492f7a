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

import "github.com/modelgate/modelgate/prediction"

type PredictParams struct {
	Name string `uri:"name" binding:"required"`
}

type PredictQuery struct {
	Status  string `form:"status" binding:"omitempty,oneof=testing staging production ab_testing"`
	Version string `form:"version" binding:"omitempty"`
}

type PredictRequest struct {
	Features map[string]any `json:"features" binding:"required"`
}

type BatchPredictItem struct {
	Result *prediction.Result `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
}

type BatchPredictResponse struct {
	Items []BatchPredictItem `json:"items"`
}
