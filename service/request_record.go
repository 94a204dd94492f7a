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

// UpdateRequestFeedback attaches ground truth to a served prediction.
// Overwriting earlier feedback is allowed; the latest label wins.
func (s *service) UpdateRequestFeedback(ctx context.Context, id uint, json types.UpdateFeedbackRequest) (*models.RequestRecord, error) {
	record := models.RequestRecord{}
	if err := s.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&record).Update("feedback", json.Feedback).Error; err != nil {
		return nil, err
	}

	return &record, nil
}
