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

//go:generate mockgen -destination mocks/registry_mock.go -source registry.go -package mocks

package registry

import (
	"context"
	"errors"
	"strconv"

	cmap "github.com/orcaman/concurrent-map/v2"
	"gorm.io/gorm"

	"github.com/modelgate/modelgate/internal/mgerrors"
	"github.com/modelgate/modelgate/internal/mglog"
	"github.com/modelgate/modelgate/lifecycle"
	"github.com/modelgate/modelgate/models"
	"github.com/modelgate/modelgate/pkg/model"
)

// RegisterParams describes one model version to load. The instance must be
// fully constructed before registration; the registry performs no artifact I/O.
type RegisterParams struct {
	EndpointName  string
	Instance      model.Instance
	AlgorithmName string
	Status        string
	Version       string
	Owner         string
	Description   string
	CodeTag       string
}

// Registry maps durable algorithm identity to live model instances. The
// in-memory map is rebuilt from scratch on process start and has no
// persistence of its own.
type Registry interface {
	// Register looks up or creates the endpoint and the algorithm row by
	// natural key, appends the initial active status when the algorithm is
	// new, and stores the instance, overwriting any prior one for that id.
	Register(ctx context.Context, params RegisterParams) (*models.Algorithm, error)

	// Lookup returns the live instance loaded for the algorithm id.
	Lookup(algorithmID uint) (model.Instance, error)

	// Deregister drops the live instance for the algorithm id, if any.
	Deregister(algorithmID uint)

	// LoadedCount returns the number of live instances.
	LoadedCount() int
}

type registry struct {
	db        *gorm.DB
	lifecycle lifecycle.Lifecycle
	instances cmap.ConcurrentMap[string, model.Instance]
}

// New registry instance.
func New(db *gorm.DB, lifecycle lifecycle.Lifecycle) Registry {
	return &registry{
		db:        db,
		lifecycle: lifecycle,
		instances: cmap.New[model.Instance](),
	}
}

func (r *registry) Register(ctx context.Context, params RegisterParams) (*models.Algorithm, error) {
	if params.Instance == nil {
		return nil, errors.New("register requires a model instance")
	}

	status := params.Status
	if status == "" {
		status = models.StatusKindTesting
	}
	if !models.IsValidStatusKind(status) {
		return nil, errors.New("unknown status kind " + status)
	}

	endpoint := models.Endpoint{}
	if err := r.db.WithContext(ctx).Where(models.Endpoint{
		Name: params.EndpointName,
	}).Attrs(models.Endpoint{
		Owner: params.Owner,
	}).FirstOrCreate(&endpoint).Error; err != nil {
		return nil, err
	}

	// The natural key avoids duplicate rows when the same logical model
	// is re-registered at startup.
	algorithm := models.Algorithm{}
	tx := r.db.WithContext(ctx).Where(map[string]any{
		"name":        params.AlgorithmName,
		"description": params.Description,
		"version":     params.Version,
		"owner":       params.Owner,
		"endpoint_id": endpoint.ID,
	}).Attrs(models.Algorithm{
		CodeTag: params.CodeTag,
	}).FirstOrCreate(&algorithm)
	if tx.Error != nil {
		return nil, tx.Error
	}

	// The initial status goes through the lifecycle so cached candidate
	// lists for the endpoint are invalidated along the way.
	if tx.RowsAffected > 0 {
		if _, err := r.lifecycle.SetStatus(ctx, algorithm.ID, status, true, params.Owner); err != nil {
			return nil, err
		}
	}

	r.instances.Set(instanceKey(algorithm.ID), params.Instance)
	mglog.WithAlgorithm(algorithm.ID, algorithm.Version).Infof("registered instance under endpoint %s", endpoint.Name)
	return &algorithm, nil
}

func (r *registry) Lookup(algorithmID uint) (model.Instance, error) {
	instance, ok := r.instances.Get(instanceKey(algorithmID))
	if !ok {
		// The id can exist durably while its process-local instance is
		// missing, e.g. after a restart before re-registration.
		return nil, mgerrors.Newf(mgerrors.CodeNotRegistered, "no live instance loaded for algorithm %d", algorithmID)
	}

	return instance, nil
}

func (r *registry) Deregister(algorithmID uint) {
	r.instances.Remove(instanceKey(algorithmID))
}

func (r *registry) LoadedCount() int {
	return r.instances.Count()
}

func instanceKey(algorithmID uint) string {
	return strconv.FormatUint(uint64(algorithmID), 10)
}
