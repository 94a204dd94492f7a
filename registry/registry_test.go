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

package registry

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/modelgate/modelgate/cache"
	"github.com/modelgate/modelgate/config"
	"github.com/modelgate/modelgate/internal/mgerrors"
	"github.com/modelgate/modelgate/lifecycle"
	"github.com/modelgate/modelgate/models"
	"github.com/modelgate/modelgate/pkg/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	path := filepath.Join(t.TempDir(), "registry.db")
	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=10000"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Endpoint{},
		&models.Algorithm{},
		&models.AlgorithmStatus{},
	))
	return db
}

func newTestRegistry(db *gorm.DB) Registry {
	return New(db, lifecycle.New(db))
}

func constantInstance(value string) model.Instance {
	return model.InstanceFunc(func(features model.FeatureRecord) (*model.Prediction, error) {
		return &model.Prediction{Value: value}, nil
	})
}

func TestRegistry_Register(t *testing.T) {
	db := newTestDB(t)
	r := newTestRegistry(db)

	params := RegisterParams{
		EndpointName:  "churn",
		Instance:      constantInstance("yes"),
		AlgorithmName: "tree",
		Version:       "1.0.0",
		Owner:         "alice",
		Description:   "gradient boosted tree",
		CodeTag:       "abc123",
	}

	algorithm, err := r.Register(context.Background(), params)
	require.NoError(t, err)
	assert.NotZero(t, algorithm.ID)
	assert.Equal(t, "tree", algorithm.Name)
	assert.Equal(t, 1, r.LoadedCount())

	// Initial status defaults to active testing.
	status := models.AlgorithmStatus{}
	require.NoError(t, db.Where("algorithm_id = ?", algorithm.ID).First(&status).Error)
	assert.Equal(t, models.StatusKindTesting, status.Status)
	assert.True(t, status.Active)
}

func TestRegistry_RegisterIdempotent(t *testing.T) {
	db := newTestDB(t)
	r := newTestRegistry(db)

	params := RegisterParams{
		EndpointName:  "churn",
		Instance:      constantInstance("yes"),
		AlgorithmName: "tree",
		Version:       "1.0.0",
		Owner:         "alice",
	}

	first, err := r.Register(context.Background(), params)
	require.NoError(t, err)

	// Same natural key resolves to the same durable identity.
	params.Instance = constantInstance("no")
	second, err := r.Register(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var algorithmCount int64
	require.NoError(t, db.Model(&models.Algorithm{}).Count(&algorithmCount).Error)
	assert.Equal(t, int64(1), algorithmCount)

	// Re-registration must not append another initial status.
	var statusCount int64
	require.NoError(t, db.Model(&models.AlgorithmStatus{}).Where("algorithm_id = ?", first.ID).Count(&statusCount).Error)
	assert.Equal(t, int64(1), statusCount)

	// The live instance is overwritten.
	instance, err := r.Lookup(first.ID)
	require.NoError(t, err)
	prediction, err := instance.ComputePrediction(model.FeatureRecord{})
	require.NoError(t, err)
	assert.Equal(t, "no", prediction.Value)
}

func TestRegistry_RegisterDistinctVersions(t *testing.T) {
	db := newTestDB(t)
	r := newTestRegistry(db)

	params := RegisterParams{
		EndpointName:  "churn",
		Instance:      constantInstance("yes"),
		AlgorithmName: "tree",
		Version:       "1.0.0",
		Owner:         "alice",
	}
	first, err := r.Register(context.Background(), params)
	require.NoError(t, err)

	// A new version of the same model is a new algorithm.
	params.Version = "1.1.0"
	second, err := r.Register(context.Background(), params)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, r.LoadedCount())

	// Both live under one endpoint row.
	var endpointCount int64
	require.NoError(t, db.Model(&models.Endpoint{}).Count(&endpointCount).Error)
	assert.Equal(t, int64(1), endpointCount)
}

func TestRegistry_RegisterSharedNaturalKeyAcrossEndpoints(t *testing.T) {
	db := newTestDB(t)
	r := newTestRegistry(db)

	params := RegisterParams{
		EndpointName:  "churn",
		Instance:      constantInstance("yes"),
		AlgorithmName: "tree",
		Version:       "1.0.0",
		Owner:         "alice",
	}
	first, err := r.Register(context.Background(), params)
	require.NoError(t, err)

	// The same logical model name may serve a second endpoint; the
	// natural key includes the endpoint, so this is a distinct algorithm.
	params.EndpointName = "fraud"
	second, err := r.Register(context.Background(), params)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	var endpointCount int64
	require.NoError(t, db.Model(&models.Endpoint{}).Count(&endpointCount).Error)
	assert.Equal(t, int64(2), endpointCount)
}

func TestRegistry_RegisterInvalidatesCandidateCache(t *testing.T) {
	db := newTestDB(t)
	c := cache.New(&config.Config{
		Cache: &config.CacheConfig{
			Local: &config.LocalCacheConfig{
				Size: 1000,
				TTL:  time.Minute,
			},
		},
	}, nil)
	l := lifecycle.New(db, lifecycle.WithCache(c))
	r := New(db, l)

	// Prime the cache with the empty candidate list.
	candidates, err := l.ActiveAlgorithms(context.Background(), "churn", models.StatusKindTesting)
	require.NoError(t, err)
	assert.Empty(t, candidates)

	algorithm, err := r.Register(context.Background(), RegisterParams{
		EndpointName:  "churn",
		Instance:      constantInstance("yes"),
		AlgorithmName: "tree",
		Version:       "1.0.0",
		Owner:         "alice",
	})
	require.NoError(t, err)

	// Registration invalidates the cached list, so the new algorithm is
	// visible immediately instead of after the cache TTL.
	candidates, err = l.ActiveAlgorithms(context.Background(), "churn", models.StatusKindTesting)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, algorithm.ID, candidates[0].ID)
}

func TestRegistry_RegisterValidation(t *testing.T) {
	db := newTestDB(t)
	r := newTestRegistry(db)

	tests := []struct {
		name   string
		params RegisterParams
	}{
		{
			name: "nil instance",
			params: RegisterParams{
				EndpointName:  "churn",
				AlgorithmName: "tree",
				Version:       "1.0.0",
			},
		},
		{
			name: "unknown status kind",
			params: RegisterParams{
				EndpointName:  "churn",
				Instance:      constantInstance("yes"),
				AlgorithmName: "tree",
				Version:       "1.0.0",
				Status:        "retired",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Register(context.Background(), tc.params)
			assert.Error(t, err)
		})
	}
}

func TestRegistry_LookupNotRegistered(t *testing.T) {
	db := newTestDB(t)
	r := newTestRegistry(db)

	_, err := r.Lookup(99)
	assert.True(t, mgerrors.IsCode(err, mgerrors.CodeNotRegistered))
}

func TestRegistry_Deregister(t *testing.T) {
	db := newTestDB(t)
	r := newTestRegistry(db)

	algorithm, err := r.Register(context.Background(), RegisterParams{
		EndpointName:  "churn",
		Instance:      constantInstance("yes"),
		AlgorithmName: "tree",
		Version:       "1.0.0",
	})
	require.NoError(t, err)

	r.Deregister(algorithm.ID)
	assert.Equal(t, 0, r.LoadedCount())

	_, err = r.Lookup(algorithm.ID)
	assert.True(t, mgerrors.IsCode(err, mgerrors.CodeNotRegistered))

	// The durable row survives deregistration.
	var count int64
	require.NoError(t, db.Model(&models.Algorithm{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
