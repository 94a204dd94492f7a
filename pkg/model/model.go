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

package model

// FeatureRecord is one normalized feature row, keyed by feature name.
type FeatureRecord map[string]any

// Prediction carries the full model output and the normalized response
// value persisted to the request log and compared against feedback.
type Prediction struct {
	// Value is the normalized response label or value.
	Value string `json:"value"`

	// Output is the full model output.
	Output map[string]any `json:"output"`
}

// Instance is a live, fully constructed model. Instances are stateless
// computation objects and must be safe for concurrent use.
type Instance interface {
	// ComputePrediction computes a prediction from one feature record.
	ComputePrediction(features FeatureRecord) (*Prediction, error)
}

// InstanceFunc adapts a function to the Instance interface.
type InstanceFunc func(features FeatureRecord) (*Prediction, error)

func (f InstanceFunc) ComputePrediction(features FeatureRecord) (*Prediction, error) {
	return f(features)
}
