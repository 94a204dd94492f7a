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

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

package service

import (
	"context"
	"io"

	"gorm.io/gorm"

	"github.com/modelgate/modelgate/abtest"
	"github.com/modelgate/modelgate/lifecycle"
	"github.com/modelgate/modelgate/models"
	"github.com/modelgate/modelgate/prediction"
	"github.com/modelgate/modelgate/registry"
	"github.com/modelgate/modelgate/types"
)

// Service is the REST facade over the registry, lifecycle, router and
// A/B controller.
type Service interface {
	GetEndpoints(ctx context.Context, q types.GetEndpointsQuery) ([]models.Endpoint, int64, error)
	GetEndpoint(ctx context.Context, name string) (*models.Endpoint, error)
	UpdateEndpoint(ctx context.Context, name string, json types.UpdateEndpointRequest) (*models.Endpoint, error)

	GetAlgorithms(ctx context.Context, q types.GetAlgorithmsQuery) ([]models.Algorithm, int64, error)
	GetAlgorithm(ctx context.Context, id uint) (*models.Algorithm, error)
	CreateAlgorithmStatus(ctx context.Context, id uint, json types.CreateAlgorithmStatusRequest) (*models.AlgorithmStatus, error)

	Predict(ctx context.Context, endpointName string, q types.PredictQuery, json types.PredictRequest) (*prediction.Result, error)
	PredictBatch(ctx context.Context, endpointName string, q types.PredictQuery, input io.Reader) (*types.BatchPredictResponse, error)

	UpdateRequestFeedback(ctx context.Context, id uint, json types.UpdateFeedbackRequest) (*models.RequestRecord, error)

	CreateABTest(ctx context.Context, json types.CreateABTestRequest) (*models.ABTest, error)
	StopABTest(ctx context.Context, id uint, json types.StopABTestRequest) (*models.ABTest, error)
	GetABTest(ctx context.Context, id uint) (*models.ABTest, error)
	GetABTests(ctx context.Context, q types.GetABTestsQuery) ([]models.ABTest, int64, error)
}

type service struct {
	db         *gorm.DB
	registry   registry.Registry
	lifecycle  lifecycle.Lifecycle
	router     prediction.Router
	controller abtest.Controller
}

// New service instance.
func New(db *gorm.DB, registry registry.Registry, lifecycle lifecycle.Lifecycle, router prediction.Router, controller abtest.Controller) Service {
	return &service{
		db:         db,
		registry:   registry,
		lifecycle:  lifecycle,
		router:     router,
		controller: controller,
	}
}
