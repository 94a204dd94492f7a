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

package cache

import (
	"fmt"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"

	"github.com/modelgate/modelgate/config"
)

const (
	// ActiveAlgorithmsNamespace prefixes candidate list cache keys.
	ActiveAlgorithmsNamespace = "active-algorithms"
)

// Cache is the cache client for read-mostly routing lookups.
type Cache struct {
	*cache.Cache
	TTL time.Duration
}

// New cache instance over the shared redis client.
func New(cfg *config.Config, rdb *redis.Client) *Cache {
	var localCache *cache.TinyLFU
	if cfg.Cache != nil && cfg.Cache.Local != nil {
		localCache = cache.NewTinyLFU(cfg.Cache.Local.Size, cfg.Cache.Local.TTL)
	}

	var ttl time.Duration
	if cfg.Cache != nil && cfg.Cache.Redis != nil {
		ttl = cfg.Cache.Redis.TTL
	}

	return &Cache{
		Cache: cache.New(&cache.Options{
			Redis:      rdb,
			LocalCache: localCache,
		}),
		TTL: ttl,
	}
}

// Make cache key.
func MakeCacheKey(namespace string, id string) string {
	return fmt.Sprintf("modelgate:%s:%s", namespace, id)
}

// Make cache key for the active algorithm candidates of an endpoint and kind.
func MakeActiveAlgorithmsCacheKey(endpointName, kind string) string {
	return MakeCacheKey(ActiveAlgorithmsNamespace, fmt.Sprintf("%s-%s", endpointName, kind))
}
