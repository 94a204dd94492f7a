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

//go:generate mockgen -destination mocks/lifecycle_mock.go -source lifecycle.go -package mocks

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/go-redis/cache/v8"
	"gorm.io/gorm"

	pkgcache "github.com/modelgate/modelgate/cache"
	"github.com/modelgate/modelgate/internal/mglog"
	"github.com/modelgate/modelgate/models"
)

// Lifecycle enforces the status state machine. There is no transition
// table between kinds; the only rule is the per-(algorithm, kind)
// single-active invariant over the append-only status log.
type Lifecycle interface {
	// SetStatus appends a new status row. When active is true, every
	// other active row of the same kind for the same algorithm is
	// deactivated first, atomically.
	SetStatus(ctx context.Context, algorithmID uint, kind string, active bool, actor string) (*models.AlgorithmStatus, error)

	// ActiveAlgorithms returns every algorithm under the endpoint whose
	// most recent row of the kind is active, ordered by version descending
	// with algorithm id ascending as tie-break.
	ActiveAlgorithms(ctx context.Context, endpointName, kind string) ([]models.Algorithm, error)
}

type lifecycle struct {
	db    *gorm.DB
	cache *pkgcache.Cache

	// mu serializes deactivate-then-append per (algorithm, kind) key so
	// two concurrent activations cannot both observe "no prior active row".
	mu sync.Map
}

// Option is a functional option for the lifecycle.
type Option func(l *lifecycle)

// WithCache enables candidate list caching.
func WithCache(cache *pkgcache.Cache) Option {
	return func(l *lifecycle) {
		l.cache = cache
	}
}

// New lifecycle instance.
func New(db *gorm.DB, options ...Option) Lifecycle {
	l := &lifecycle{db: db}

	for _, opt := range options {
		opt(l)
	}

	return l
}

func (l *lifecycle) SetStatus(ctx context.Context, algorithmID uint, kind string, active bool, actor string) (*models.AlgorithmStatus, error) {
	if !models.IsValidStatusKind(kind) {
		return nil, errors.New("unknown status kind " + kind)
	}

	algorithm := models.Algorithm{}
	if err := l.db.WithContext(ctx).Preload("Endpoint").First(&algorithm, algorithmID).Error; err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%d:%s", algorithmID, kind)
	mu, _ := l.mu.LoadOrStore(key, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	defer mu.(*sync.Mutex).Unlock()

	status := models.AlgorithmStatus{
		Status:      kind,
		Active:      active,
		CreatedBy:   actor,
		AlgorithmID: algorithmID,
	}
	if err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if active {
			if err := tx.Model(&models.AlgorithmStatus{}).Where(
				"algorithm_id = ? AND status = ? AND active = ?", algorithmID, kind, true,
			).Update("active", false).Error; err != nil {
				return err
			}
		}

		return tx.Create(&status).Error
	}); err != nil {
		return nil, err
	}

	l.invalidate(ctx, algorithm.Endpoint.Name, kind)
	return &status, nil
}

func (l *lifecycle) ActiveAlgorithms(ctx context.Context, endpointName, kind string) ([]models.Algorithm, error) {
	if !models.IsValidStatusKind(kind) {
		return nil, errors.New("unknown status kind " + kind)
	}

	cacheKey := pkgcache.MakeActiveAlgorithmsCacheKey(endpointName, kind)
	if l.cache != nil {
		var cached []models.Algorithm
		if err := l.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	var algorithms []models.Algorithm
	if err := l.db.WithContext(ctx).
		Select("algorithm.*").
		Joins("JOIN endpoint ON endpoint.id = algorithm.endpoint_id").
		Joins("JOIN algorithm_status ON algorithm_status.algorithm_id = algorithm.id").
		Where("endpoint.name = ? AND algorithm_status.status = ? AND algorithm_status.active = ?", endpointName, kind, true).
		Find(&algorithms).Error; err != nil {
		return nil, err
	}

	sort.Slice(algorithms, func(i, j int) bool {
		if c := compareVersions(algorithms[i].Version, algorithms[j].Version); c != 0 {
			return c > 0
		}
		return algorithms[i].ID < algorithms[j].ID
	})

	if l.cache != nil {
		if err := l.cache.Set(&cache.Item{
			Ctx:   ctx,
			Key:   cacheKey,
			Value: algorithms,
			TTL:   l.cache.TTL,
		}); err != nil {
			mglog.Warnf("cache active algorithms %s: %v", cacheKey, err)
		}
	}

	return algorithms, nil
}

func (l *lifecycle) invalidate(ctx context.Context, endpointName, kind string) {
	if l.cache == nil {
		return
	}

	cacheKey := pkgcache.MakeActiveAlgorithmsCacheKey(endpointName, kind)
	if err := l.cache.Delete(ctx, cacheKey); err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		mglog.Warnf("invalidate active algorithms %s: %v", cacheKey, err)
	}
}
