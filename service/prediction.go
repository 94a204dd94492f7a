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

package service

import (
	"context"
	"io"

	"github.com/modelgate/modelgate/models"
	"github.com/modelgate/modelgate/normalizer"
	"github.com/modelgate/modelgate/pkg/model"
	"github.com/modelgate/modelgate/prediction"
	"github.com/modelgate/modelgate/types"
)

func (s *service) Predict(ctx context.Context, endpointName string, q types.PredictQuery, json types.PredictRequest) (*prediction.Result, error) {
	status := q.Status
	if status == "" {
		status = models.StatusKindProduction
	}

	return s.router.Route(ctx, endpointName, status, q.Version, model.FeatureRecord(json.Features))
}

func (s *service) PredictBatch(ctx context.Context, endpointName string, q types.PredictQuery, input io.Reader) (*types.BatchPredictResponse, error) {
	status := q.Status
	if status == "" {
		status = models.StatusKindProduction
	}

	endpoint := models.Endpoint{}
	if err := s.db.WithContext(ctx).Where(models.Endpoint{
		Name: endpointName,
	}).First(&endpoint).Error; err != nil {
		return nil, err
	}

	rows, err := normalizer.New(endpoint.FeatureColumns).Normalize(input)
	if err != nil {
		return nil, err
	}

	items, err := s.router.RouteBatch(ctx, endpointName, status, q.Version, rows)
	if err != nil {
		return nil, err
	}

	resp := types.BatchPredictResponse{
		Items: make([]types.BatchPredictItem, len(items)),
	}
	for i, item := range items {
		if item.Err != nil {
			resp.Items[i] = types.BatchPredictItem{Error: item.Err.Error()}
			continue
		}
		resp.Items[i] = types.BatchPredictItem{Result: item.Result}
	}

	return &resp, nil
}
