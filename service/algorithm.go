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

	"gorm.io/gorm"

	"github.com/modelgate/modelgate/models"
	"github.com/modelgate/modelgate/types"
)

func (s *service) GetAlgorithms(ctx context.Context, q types.GetAlgorithmsQuery) ([]models.Algorithm, int64, error) {
	tx := s.db.WithContext(ctx).Model(&models.Algorithm{}).Select("algorithm.*").Preload("Endpoint")
	if q.Endpoint != "" {
		tx = tx.Joins("JOIN endpoint ON endpoint.id = algorithm.endpoint_id").Where("endpoint.name = ?", q.Endpoint)
	}
	if q.Status != "" {
		tx = tx.Joins("JOIN algorithm_status ON algorithm_status.algorithm_id = algorithm.id").
			Where("algorithm_status.status = ? AND algorithm_status.active = ?", q.Status, true)
	}

	var count int64
	var algorithms []models.Algorithm
	if err := tx.Scopes(models.Paginate(q.Page, q.PerPage)).Find(&algorithms).Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	return algorithms, count, nil
}

func (s *service) GetAlgorithm(ctx context.Context, id uint) (*models.Algorithm, error) {
	algorithm := models.Algorithm{}
	if err := s.db.WithContext(ctx).
		Preload("Endpoint").
		Preload("Statuses", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&algorithm, id).Error; err != nil {
		return nil, err
	}

	return &algorithm, nil
}

func (s *service) CreateAlgorithmStatus(ctx context.Context, id uint, json types.CreateAlgorithmStatusRequest) (*models.AlgorithmStatus, error) {
	return s.lifecycle.SetStatus(ctx, id, json.Status, json.Active, json.CreatedBy)
}
