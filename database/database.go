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

package database

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/modelgate/modelgate/config"
	"github.com/modelgate/modelgate/models"
)

type Database struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func New(cfg *config.Config) (*Database, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Type {
	case config.DatabaseTypeMysql:
		db, err = newMysql(cfg.Database.Mysql)
	case config.DatabaseTypePostgres:
		db, err = newPostgres(cfg.Database.Postgres)
	case config.DatabaseTypeSqlite:
		db, err = newSqlite(cfg.Database.Sqlite)
	default:
		return nil, fmt.Errorf("unknown database type %s", cfg.Database.Type)
	}
	if err != nil {
		return nil, err
	}

	// Redis is optional; without it the cache layer falls back to the
	// local TinyLFU cache only.
	var rdb *redis.Client
	if cfg.Database.Redis != nil {
		rdb = NewRedis(cfg.Database.Redis)
	}

	return &Database{
		DB:  db,
		RDB: rdb,
	}, nil
}

func NewRedis(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Endpoint{},
		&models.Algorithm{},
		&models.AlgorithmStatus{},
		&models.RequestRecord{},
		&models.ABTest{},
	)
}
