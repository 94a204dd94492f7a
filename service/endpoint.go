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

	"github.com/modelgate/modelgate/models"
	"github.com/modelgate/modelgate/types"
)

func (s *service) GetEndpoints(ctx context.Context, q types.GetEndpointsQuery) ([]models.Endpoint, int64, error) {
	var count int64
	var endpoints []models.Endpoint
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Find(&endpoints).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return endpoints, count, nil
}

func (s *service) GetEndpoint(ctx context.Context, name string) (*models.Endpoint, error) {
	endpoint := models.Endpoint{}
	if err := s.db.WithContext(ctx).Preload("Algorithms").Where(models.Endpoint{
		Name: name,
	}).First(&endpoint).Error; err != nil {
		return nil, err
	}

	return &endpoint, nil
}

func (s *service) UpdateEndpoint(ctx context.Context, name string, json types.UpdateEndpointRequest) (*models.Endpoint, error) {
	endpoint := models.Endpoint{}
	if err := s.db.WithContext(ctx).Where(models.Endpoint{
		Name: name,
	}).First(&endpoint).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&endpoint).Update("feature_columns", models.Array(json.FeatureColumns)).Error; err != nil {
		return nil, err
	}

	return &endpoint, nil
}
