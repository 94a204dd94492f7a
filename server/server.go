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

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/modelgate/modelgate/abtest"
	"github.com/modelgate/modelgate/cache"
	"github.com/modelgate/modelgate/config"
	"github.com/modelgate/modelgate/database"
	"github.com/modelgate/modelgate/internal/mglog"
	"github.com/modelgate/modelgate/lifecycle"
	"github.com/modelgate/modelgate/pkg/model"
	"github.com/modelgate/modelgate/prediction"
	"github.com/modelgate/modelgate/registry"
	"github.com/modelgate/modelgate/router"
	"github.com/modelgate/modelgate/service"
)

const (
	gracefulStopTimeout = 10 * time.Second
)

type Server struct {
	// Server configuration
	config *config.Config

	// REST server
	restServer *http.Server
}

func New(cfg *config.Config) (*Server, error) {
	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	// Initialize cache
	cache := cache.New(cfg, db.RDB)

	// Initialize registry and router
	lifecycle := lifecycle.New(db.DB, lifecycle.WithCache(cache))
	registry := registry.New(db.DB, lifecycle)
	predictionRouter := prediction.New(db.DB, registry, lifecycle,
		prediction.WithBatchConcurrency(cfg.Server.BatchConcurrency))
	controller := abtest.New(db.DB, lifecycle)

	// Load configured model artifacts
	if err := seedModels(context.Background(), cfg, registry); err != nil {
		return nil, err
	}

	// Initialize REST server
	restService := service.New(db.DB, registry, lifecycle, predictionRouter, controller)
	router, err := router.Init(cfg, restService)
	if err != nil {
		return nil, err
	}
	restServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.IP, cfg.Server.Port),
		Handler: router,
	}

	return &Server{
		config:     cfg,
		restServer: restServer,
	}, nil
}

// seedModels loads every artifact listed in the configuration and registers
// it. The registry is process local, so each start re-registers the full set.
func seedModels(ctx context.Context, cfg *config.Config, registry registry.Registry) error {
	for _, seed := range cfg.Models {
		instance, err := model.LoadLinearRegression(seed.Artifact)
		if err != nil {
			return fmt.Errorf("load artifact %s: %w", seed.Artifact, err)
		}

		algorithm, err := registry.Register(ctx, seedParams(seed, instance))
		if err != nil {
			return fmt.Errorf("register model %s: %w", seed.Name, err)
		}
		mglog.WithAlgorithm(algorithm.ID, algorithm.Version).Infof("seeded model for endpoint %s", seed.Endpoint)
	}

	return nil
}

func seedParams(seed *config.ModelSeedConfig, instance model.Instance) registry.RegisterParams {
	return registry.RegisterParams{
		EndpointName:  seed.Endpoint,
		Instance:      instance,
		AlgorithmName: seed.Name,
		Status:        seed.Status,
		Version:       seed.Version,
		Owner:         seed.Owner,
		Description:   seed.Description,
		CodeTag:       seed.CodeTag,
	}
}

func (s *Server) Serve() error {
	mglog.Infof("started rest server at %s", s.restServer.Addr)
	if err := s.restServer.ListenAndServe(); err != nil {
		if err == http.ErrServerClosed {
			return nil
		}
		mglog.Errorf("rest server closed unexpect: %+v", err)
		return err
	}

	return nil
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulStopTimeout)
	defer cancel()

	if err := s.restServer.Shutdown(ctx); err != nil {
		mglog.Errorf("rest server failed to stop: %+v", err)
		return
	}
	mglog.Info("rest server closed under request")
}
