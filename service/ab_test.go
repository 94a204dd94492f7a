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

func (s *service) CreateABTest(ctx context.Context, json types.CreateABTestRequest) (*models.ABTest, error) {
	return s.controller.Start(ctx, json.Title, json.AlgorithmAID, json.AlgorithmBID, json.CreatedBy)
}

func (s *service) StopABTest(ctx context.Context, id uint, json types.StopABTestRequest) (*models.ABTest, error) {
	return s.controller.Stop(ctx, id, json.CreatedBy)
}

func (s *service) GetABTest(ctx context.Context, id uint) (*models.ABTest, error) {
	abTest := models.ABTest{}
	if err := s.db.WithContext(ctx).
		Preload("AlgorithmA").
		Preload("AlgorithmB").
		First(&abTest, id).Error; err != nil {
		return nil, err
	}

	return &abTest, nil
}

func (s *service) GetABTests(ctx context.Context, q types.GetABTestsQuery) ([]models.ABTest, int64, error) {
	var count int64
	var abTests []models.ABTest
	if err := s.db.WithContext(ctx).Scopes(models.Paginate(q.Page, q.PerPage)).Find(&abTests).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return abTests, count, nil
}
