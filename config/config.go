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

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/modelgate/modelgate/models"
)

const (
	// DatabaseTypeMysql is the mysql database type.
	DatabaseTypeMysql = "mysql"

	// DatabaseTypePostgres is the postgres database type.
	DatabaseTypePostgres = "postgres"

	// DatabaseTypeSqlite is the sqlite database type, for development
	// and single node deployments.
	DatabaseTypeSqlite = "sqlite"
)

// DefaultConfigPath is the default config file location.
const DefaultConfigPath = "/etc/modelgate/modelgate.yaml"

type Config struct {
	Server    *ServerConfig      `yaml:"server" mapstructure:"server"`
	Database  *DatabaseConfig    `yaml:"database" mapstructure:"database"`
	Cache     *CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Telemetry *TelemetryConfig   `yaml:"telemetry" mapstructure:"telemetry"`
	Models    []*ModelSeedConfig `yaml:"models" mapstructure:"models"`
	Console   bool               `yaml:"console" mapstructure:"console"`
	Verbose   bool               `yaml:"verbose" mapstructure:"verbose"`
	LogDir    string             `yaml:"logDir" mapstructure:"logDir"`
}

type ServerConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
	IP   string `yaml:"ip" mapstructure:"ip"`
	Port int    `yaml:"port" mapstructure:"port"`

	// BatchConcurrency bounds parallel rows in batch routing.
	BatchConcurrency int `yaml:"batchConcurrency" mapstructure:"batchConcurrency"`
}

type DatabaseConfig struct {
	Type     string          `yaml:"type" mapstructure:"type"`
	Mysql    *MysqlConfig    `yaml:"mysql" mapstructure:"mysql"`
	Postgres *PostgresConfig `yaml:"postgres" mapstructure:"postgres"`
	Sqlite   *SqliteConfig   `yaml:"sqlite" mapstructure:"sqlite"`
	Redis    *RedisConfig    `yaml:"redis" mapstructure:"redis"`
}

type MysqlConfig struct {
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	DBName   string `yaml:"dbname" mapstructure:"dbname"`
	Migrate  bool   `yaml:"migrate" mapstructure:"migrate"`
}

type PostgresConfig struct {
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	DBName   string `yaml:"dbname" mapstructure:"dbname"`
	SSLMode  string `yaml:"sslMode" mapstructure:"sslMode"`
	Timezone string `yaml:"timezone" mapstructure:"timezone"`
	Migrate  bool   `yaml:"migrate" mapstructure:"migrate"`
}

type SqliteConfig struct {
	Path    string `yaml:"path" mapstructure:"path"`
	Migrate bool   `yaml:"migrate" mapstructure:"migrate"`
}

type RedisConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
}

type CacheConfig struct {
	Local *LocalCacheConfig `yaml:"local" mapstructure:"local"`
	Redis *RedisCacheConfig `yaml:"redis" mapstructure:"redis"`
}

type LocalCacheConfig struct {
	Size int           `yaml:"size" mapstructure:"size"`
	TTL  time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type RedisCacheConfig struct {
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

type TelemetryConfig struct {
	Jaeger string `yaml:"jaeger" mapstructure:"jaeger"`
}

// ModelSeedConfig registers one model artifact at process start. The
// in-memory registry has no persistence of its own, so every instance
// the process should serve must be listed here or registered by code.
type ModelSeedConfig struct {
	Endpoint    string `yaml:"endpoint" mapstructure:"endpoint"`
	Name        string `yaml:"name" mapstructure:"name"`
	Description string `yaml:"description" mapstructure:"description"`
	Version     string `yaml:"version" mapstructure:"version"`
	Owner       string `yaml:"owner" mapstructure:"owner"`
	CodeTag     string `yaml:"codeTag" mapstructure:"codeTag"`
	Status      string `yaml:"status" mapstructure:"status"`
	Artifact    string `yaml:"artifact" mapstructure:"artifact"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Server: &ServerConfig{
			Name:             "modelgate",
			IP:               "0.0.0.0",
			Port:             8080,
			BatchConcurrency: 8,
		},
		Database: &DatabaseConfig{
			Type: DatabaseTypeMysql,
			Mysql: &MysqlConfig{
				User:    "root",
				Host:    "127.0.0.1",
				Port:    3306,
				DBName:  "modelgate",
				Migrate: true,
			},
			Redis: &RedisConfig{
				Host: "127.0.0.1",
				Port: 6379,
			},
		},
		Cache: &CacheConfig{
			Local: &LocalCacheConfig{
				Size: 10000,
				TTL:  30 * time.Second,
			},
			Redis: &RedisCacheConfig{
				TTL: 5 * time.Minute,
			},
		},
		Telemetry: &TelemetryConfig{},
		Console:   true,
		LogDir:    "/var/log/modelgate",
	}
}

// Validate checks the configuration.
func (cfg *Config) Validate() error {
	if cfg.Server == nil {
		return errors.New("config requires parameter server")
	}

	if cfg.Server.Port <= 0 {
		return errors.New("server requires parameter port")
	}

	if cfg.Database == nil {
		return errors.New("config requires parameter database")
	}

	switch cfg.Database.Type {
	case DatabaseTypeMysql:
		if cfg.Database.Mysql == nil {
			return errors.New("database requires parameter mysql")
		}
	case DatabaseTypePostgres:
		if cfg.Database.Postgres == nil {
			return errors.New("database requires parameter postgres")
		}
	case DatabaseTypeSqlite:
		if cfg.Database.Sqlite == nil {
			return errors.New("database requires parameter sqlite")
		}
	default:
		return fmt.Errorf("unknown database type %s", cfg.Database.Type)
	}

	for _, m := range cfg.Models {
		if m.Endpoint == "" || m.Name == "" || m.Version == "" {
			return errors.New("model seed requires parameters endpoint, name and version")
		}

		if m.Status != "" && !models.IsValidStatusKind(m.Status) {
			return fmt.Errorf("unknown model seed status %s", m.Status)
		}

		if m.Artifact == "" {
			return errors.New("model seed requires parameter artifact")
		}
	}

	return nil
}
