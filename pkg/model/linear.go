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

import (
	"encoding/json"
	"errors"
	"math/rand"
	"os"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/sjwhitworth/golearn/base"
)

// LinearRegression is the built-in reference model. Its parameters are
// JSON serializable so a fitted model can be shipped as an artifact and
// loaded at registration time.
type LinearRegression struct {
	Fitted                 bool      `json:"fitted"`
	Disturbance            float64   `json:"disturbance"`
	RegressionCoefficients []float64 `json:"regression_coefficients"`
	FeatureNames           []string  `json:"feature_names"`
}

// NewLinearRegression returns an unfitted linear regression model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{Fitted: false}
}

// LoadLinearRegression reads fitted parameters from a JSON artifact.
func LoadLinearRegression(path string) (*LinearRegression, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lr := LinearRegression{}
	if err := json.Unmarshal(b, &lr); err != nil {
		return nil, err
	}

	if !lr.Fitted {
		return nil, errors.New("artifact holds no fitted model")
	}

	return &lr, nil
}

// Save writes fitted parameters to a JSON artifact.
func (lr *LinearRegression) Save(path string) error {
	b, err := json.Marshal(lr)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0644)
}

// Fit trains parameters of the model to fit the data provided.
func (lr *LinearRegression) Fit(inst base.FixedDataGrid, learningRate float64) error {
	_, rows := inst.Size()

	classAttrs := inst.AllClassAttributes()
	if len(classAttrs) != 1 {
		return errors.New("only 1 class variable is permitted")
	}
	classAttrSpecs := base.ResolveAttributes(inst, classAttrs)

	allAttrs := base.NonClassAttributes(inst)
	attrs := make([]base.Attribute, 0)
	for _, a := range allAttrs {
		if _, ok := a.(*base.FloatAttribute); ok {
			attrs = append(attrs, a)
		}
	}
	attrSpecs := base.ResolveAttributes(inst, attrs)

	cols := len(attrs) + 1
	regressionCoefficients := make([]float64, cols)
	for i := 0; i < cols; i++ {
		regressionCoefficients[i] = rand.Float64()
	}

	for i := 0; i < rows; i++ {
		out := regressionCoefficients[0]
		for j := 1; j < cols; j++ {
			out += base.UnpackBytesToFloat(inst.Get(attrSpecs[j-1], i)) * regressionCoefficients[j]
		}
		for j := 1; j < cols; j++ {
			regressionCoefficients[j] += learningRate * (base.UnpackBytesToFloat(inst.Get(classAttrSpecs[0], i)) - out) * base.UnpackBytesToFloat(inst.Get(attrSpecs[j-1], i))
		}
	}

	lr.Disturbance = regressionCoefficients[0]
	lr.RegressionCoefficients = regressionCoefficients[1:]
	lr.FeatureNames = make([]string, len(attrs))
	for idx, a := range attrs {
		lr.FeatureNames[idx] = a.GetName()
	}
	lr.Fitted = true
	return nil
}

// ComputePrediction applies the fitted parameters to one feature record.
func (lr *LinearRegression) ComputePrediction(features FeatureRecord) (*Prediction, error) {
	if !lr.Fitted {
		return nil, errors.New("no fitted model")
	}

	values := map[string]float64{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &values,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(map[string]any(features)); err != nil {
		return nil, err
	}

	out := lr.Disturbance
	for i, name := range lr.FeatureNames {
		v, ok := values[name]
		if !ok {
			return nil, errors.New("missing feature " + name)
		}
		out += lr.RegressionCoefficients[i] * v
	}

	return &Prediction{
		Value: strconv.FormatFloat(out, 'f', -1, 64),
		Output: map[string]any{
			"prediction": out,
		},
	}, nil
}
