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

//go:generate mockgen -destination mocks/router_mock.go -source router.go -package mocks

package prediction

import (
	"context"
	"encoding/json"
	"math/rand"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/modelgate/modelgate/internal/mgerrors"
	"github.com/modelgate/modelgate/internal/mglog"
	"github.com/modelgate/modelgate/lifecycle"
	"github.com/modelgate/modelgate/models"
	"github.com/modelgate/modelgate/normalizer"
	"github.com/modelgate/modelgate/pkg/model"
	"github.com/modelgate/modelgate/registry"
)

const defaultBatchConcurrency = 8

// Result is one served prediction. RequestID is zero when the audit
// record could not be written; the prediction is still returned.
type Result struct {
	RequestID        uint              `json:"request_id"`
	UUID             string            `json:"uuid"`
	AlgorithmID      uint              `json:"algorithm_id"`
	AlgorithmVersion string            `json:"algorithm_version"`
	Prediction       *model.Prediction `json:"prediction"`
}

// BatchItem is one slot of a batch result, in input row order.
type BatchItem struct {
	Result *Result
	Err    error
}

// Router resolves an endpoint name and routing hints to eligible
// algorithms, invokes their live instances and logs the outcome.
type Router interface {
	// Route serves one prediction.
	Route(ctx context.Context, endpointName, kind, versionHint string, features model.FeatureRecord) (*Result, error)

	// RouteBatch serves one prediction per row. Candidates are resolved
	// once for the whole batch; in ab_testing mode the random choice is
	// drawn independently per row. A failed row carries an error marker
	// in its slot, preserving row order and count.
	RouteBatch(ctx context.Context, endpointName, kind, versionHint string, rows []normalizer.Row) ([]BatchItem, error)
}

type router struct {
	db          *gorm.DB
	registry    registry.Registry
	lifecycle   lifecycle.Lifecycle
	concurrency int
}

// Option is a functional option for the router.
type Option func(r *router)

// WithBatchConcurrency bounds parallel rows in batch routing.
func WithBatchConcurrency(n int) Option {
	return func(r *router) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// New router instance.
func New(db *gorm.DB, registry registry.Registry, lifecycle lifecycle.Lifecycle, options ...Option) Router {
	r := &router{
		db:          db,
		registry:    registry,
		lifecycle:   lifecycle,
		concurrency: defaultBatchConcurrency,
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

func (r *router) Route(ctx context.Context, endpointName, kind, versionHint string, features model.FeatureRecord) (*Result, error) {
	candidates, err := r.resolve(ctx, endpointName, kind, versionHint)
	if err != nil {
		return nil, err
	}

	return r.invoke(ctx, choose(candidates, kind), features)
}

func (r *router) RouteBatch(ctx context.Context, endpointName, kind, versionHint string, rows []normalizer.Row) ([]BatchItem, error) {
	candidates, err := r.resolve(ctx, endpointName, kind, versionHint)
	if err != nil {
		return nil, err
	}

	items := make([]BatchItem, len(rows))
	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)
	for i := range rows {
		// Coarse cancellation: stop issuing new rows, let in-flight
		// rows complete.
		if err := ctx.Err(); err != nil {
			items[i] = BatchItem{Err: err}
			continue
		}

		i := i
		g.Go(func() error {
			row := rows[i]
			if row.Err != nil {
				items[i] = BatchItem{Err: row.Err}
				return nil
			}

			result, err := r.invoke(ctx, choose(candidates, kind), row.Record)
			items[i] = BatchItem{Result: result, Err: err}
			return nil
		})
	}

	g.Wait() // nolint: errcheck
	return items, nil
}

// resolve runs candidate resolution and the ambiguity rules once for a
// request or a whole batch.
func (r *router) resolve(ctx context.Context, endpointName, kind, versionHint string) ([]models.Algorithm, error) {
	candidates, err := r.lifecycle.ActiveAlgorithms(ctx, endpointName, kind)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, mgerrors.Newf(mgerrors.CodeNotFound, "no active %s algorithm under endpoint %s", kind, endpointName)
	}

	if versionHint != "" {
		filtered := candidates[:0:0]
		for _, candidate := range candidates {
			if candidate.Version == versionHint {
				filtered = append(filtered, candidate)
			}
		}
		if len(filtered) == 0 {
			return nil, mgerrors.Newf(mgerrors.CodeAmbiguousVersion, "version %s matches no active %s algorithm under endpoint %s", versionHint, kind, endpointName)
		}
		candidates = filtered
	}

	if kind == models.StatusKindABTesting {
		// A deliberate refusal to guess: more than two sides means the
		// comparison invariant is broken.
		if len(candidates) > 2 {
			return nil, mgerrors.Newf(mgerrors.CodeAmbiguousSelection, "%d algorithms under ab testing for endpoint %s, expected two", len(candidates), endpointName)
		}
		return candidates, nil
	}

	if len(candidates) > 1 {
		return nil, mgerrors.Newf(mgerrors.CodeAmbiguousSelection, "%d active %s algorithms under endpoint %s, supply an explicit version", len(candidates), kind, endpointName)
	}

	return candidates, nil
}

// choose picks the serving algorithm. In ab_testing mode with two sides
// the draw is an independent coin flip per call, not sticky per client,
// so the test measures per-request outcome distribution.
func choose(candidates []models.Algorithm, kind string) models.Algorithm {
	if kind == models.StatusKindABTesting && len(candidates) == 2 {
		return candidates[rand.Intn(2)]
	}

	return candidates[0]
}

func (r *router) invoke(ctx context.Context, algorithm models.Algorithm, features model.FeatureRecord) (*Result, error) {
	instance, err := r.registry.Lookup(algorithm.ID)
	if err != nil {
		return nil, err
	}

	prediction, err := instance.ComputePrediction(features)
	if err != nil {
		// Model invocation is deterministic and side effect free, so a
		// retry with the same input is not expected to help.
		return nil, mgerrors.Newf(mgerrors.CodePredictionFailed, "algorithm %d: %v", algorithm.ID, err)
	}

	result := &Result{
		UUID:             uuid.NewString(),
		AlgorithmID:      algorithm.ID,
		AlgorithmVersion: algorithm.Version,
		Prediction:       prediction,
	}

	input, err := json.Marshal(features)
	if err != nil {
		mglog.WithAlgorithm(algorithm.ID, algorithm.Version).Warnf("serialize request payload: %v", err)
		return result, nil
	}
	output, err := json.Marshal(prediction.Output)
	if err != nil {
		mglog.WithAlgorithm(algorithm.ID, algorithm.Version).Warnf("serialize model output: %v", err)
		return result, nil
	}

	record := models.RequestRecord{
		UUID:        result.UUID,
		Input:       string(input),
		Output:      string(output),
		Response:    prediction.Value,
		AlgorithmID: algorithm.ID,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		// Losing one audit record is preferable to losing a served answer.
		mglog.WithAlgorithm(algorithm.ID, algorithm.Version).Warnf("request log write failed: %v", err)
		return result, nil
	}

	result.RequestID = record.ID
	return result, nil
}
