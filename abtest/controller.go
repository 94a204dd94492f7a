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

//go:generate mockgen -destination mocks/controller_mock.go -source controller.go -package mocks

package abtest

import (
	"context"
	"fmt"
	"time"

	"github.com/montanaflynn/stats"
	"gorm.io/gorm"

	"github.com/modelgate/modelgate/internal/mgerrors"
	"github.com/modelgate/modelgate/internal/mglog"
	"github.com/modelgate/modelgate/lifecycle"
	"github.com/modelgate/modelgate/models"
)

const (
	// DecisionPromoteA means side A won and was promoted to production.
	DecisionPromoteA = "promote_a"

	// DecisionPromoteB means side B won and was promoted to production.
	DecisionPromoteB = "promote_b"

	// DecisionInconclusive means no promotion happened; the summary
	// reason says why.
	DecisionInconclusive = "inconclusive"
)

// Controller orchestrates A/B comparisons: starting one mutates statuses
// through the lifecycle, stopping one scores the request log and promotes
// the winner.
type Controller interface {
	// Start begins a comparison of two algorithms under one endpoint.
	Start(ctx context.Context, title string, algorithmAID, algorithmBID uint, actor string) (*models.ABTest, error)

	// Stop ends a comparison, scores both sides over the test window and
	// applies the decision policy.
	Stop(ctx context.Context, id uint, actor string) (*models.ABTest, error)
}

type controller struct {
	db        *gorm.DB
	lifecycle lifecycle.Lifecycle
}

// New controller instance.
func New(db *gorm.DB, lifecycle lifecycle.Lifecycle) Controller {
	return &controller{
		db:        db,
		lifecycle: lifecycle,
	}
}

func (c *controller) Start(ctx context.Context, title string, algorithmAID, algorithmBID uint, actor string) (*models.ABTest, error) {
	if algorithmAID == algorithmBID {
		return nil, mgerrors.Newf(mgerrors.CodeInvalidPair, "algorithm %d cannot be compared with itself", algorithmAID)
	}

	algorithmA := models.Algorithm{}
	if err := c.db.WithContext(ctx).First(&algorithmA, algorithmAID).Error; err != nil {
		return nil, err
	}

	algorithmB := models.Algorithm{}
	if err := c.db.WithContext(ctx).First(&algorithmB, algorithmBID).Error; err != nil {
		return nil, err
	}

	if algorithmA.EndpointID != algorithmB.EndpointID {
		return nil, mgerrors.Newf(mgerrors.CodeInvalidPair, "algorithms %d and %d do not share an endpoint", algorithmAID, algorithmBID)
	}

	if _, err := c.lifecycle.SetStatus(ctx, algorithmAID, models.StatusKindABTesting, true, actor); err != nil {
		return nil, err
	}
	if _, err := c.lifecycle.SetStatus(ctx, algorithmBID, models.StatusKindABTesting, true, actor); err != nil {
		return nil, err
	}

	abTest := models.ABTest{
		Title:        title,
		CreatedBy:    actor,
		StartedAt:    time.Now(),
		AlgorithmAID: algorithmAID,
		AlgorithmBID: algorithmBID,
	}
	if err := c.db.WithContext(ctx).Create(&abTest).Error; err != nil {
		return nil, err
	}

	mglog.Infof("started ab test %d: algorithm %d vs %d", abTest.ID, algorithmAID, algorithmBID)
	return &abTest, nil
}

func (c *controller) Stop(ctx context.Context, id uint, actor string) (*models.ABTest, error) {
	abTest := models.ABTest{}
	if err := c.db.WithContext(ctx).First(&abTest, id).Error; err != nil {
		return nil, err
	}

	if abTest.EndedAt != nil {
		return nil, mgerrors.Newf(mgerrors.CodeAlreadyStopped, "ab test %d already stopped at %s", id, abTest.EndedAt)
	}

	// Claim the end time first so concurrent stops race on one row
	// update; the loser observes zero affected rows and never scores
	// or promotes.
	now := time.Now()
	claim := c.db.WithContext(ctx).Model(&models.ABTest{}).Where(
		"id = ? AND ended_at IS NULL", id,
	).Update("ended_at", now)
	if claim.Error != nil {
		return nil, claim.Error
	}
	if claim.RowsAffected == 0 {
		return nil, mgerrors.Newf(mgerrors.CodeAlreadyStopped, "ab test %d already stopped", id)
	}

	sideA, err := c.score(ctx, abTest.AlgorithmAID, abTest.StartedAt, now)
	if err != nil {
		return nil, err
	}
	sideB, err := c.score(ctx, abTest.AlgorithmBID, abTest.StartedAt, now)
	if err != nil {
		return nil, err
	}

	decision, reason := decide(sideA, sideB)
	switch decision {
	case DecisionPromoteA:
		if err := c.promote(ctx, abTest.AlgorithmAID, abTest.AlgorithmBID, actor); err != nil {
			return nil, err
		}
	case DecisionPromoteB:
		if err := c.promote(ctx, abTest.AlgorithmBID, abTest.AlgorithmAID, actor); err != nil {
			return nil, err
		}
	}

	summary := models.JSONMap{
		"side_a":   sideA.summary(),
		"side_b":   sideB.summary(),
		"decision": decision,
		"reason":   reason,
	}
	if err := c.db.WithContext(ctx).Model(&abTest).Update("summary", summary).Error; err != nil {
		return nil, err
	}

	mglog.Infof("stopped ab test %d: %s (%s)", id, decision, reason)
	abTest.EndedAt = &now
	abTest.Summary = summary
	return &abTest, nil
}

// promote moves the winner to production and the loser back to testing,
// ending the comparison for both sides.
func (c *controller) promote(ctx context.Context, winnerID, loserID uint, actor string) error {
	if _, err := c.lifecycle.SetStatus(ctx, winnerID, models.StatusKindABTesting, false, actor); err != nil {
		return err
	}
	if _, err := c.lifecycle.SetStatus(ctx, loserID, models.StatusKindABTesting, false, actor); err != nil {
		return err
	}
	if _, err := c.lifecycle.SetStatus(ctx, winnerID, models.StatusKindProduction, true, actor); err != nil {
		return err
	}
	if _, err := c.lifecycle.SetStatus(ctx, loserID, models.StatusKindTesting, true, actor); err != nil {
		return err
	}

	return nil
}

type sideScore struct {
	algorithmID uint
	requests    int
	samples     int
	accuracy    float64
	defined     bool
}

func (s sideScore) summary() map[string]any {
	summary := map[string]any{
		"algorithm_id":      s.algorithmID,
		"requests":          s.requests,
		"samples":           s.samples,
		"insufficient_data": !s.defined,
	}
	if s.defined {
		summary["accuracy"] = s.accuracy
	}

	return summary
}

// score computes one side's accuracy over the feedback-bearing records in
// the test window. With no feedback the accuracy is undefined, not zero.
func (c *controller) score(ctx context.Context, algorithmID uint, start, end time.Time) (sideScore, error) {
	var records []models.RequestRecord
	if err := c.db.WithContext(ctx).Where(
		"algorithm_id = ? AND created_at >= ? AND created_at < ?", algorithmID, start, end,
	).Find(&records).Error; err != nil {
		return sideScore{}, err
	}

	indicators := []float64{}
	for _, record := range records {
		if record.Feedback == nil {
			continue
		}
		if *record.Feedback == record.Response {
			indicators = append(indicators, 1)
		} else {
			indicators = append(indicators, 0)
		}
	}

	score := sideScore{
		algorithmID: algorithmID,
		requests:    len(records),
		samples:     len(indicators),
	}
	if len(indicators) == 0 {
		return score, nil
	}

	accuracy, err := stats.Mean(indicators)
	if err != nil {
		return sideScore{}, err
	}

	score.accuracy = accuracy
	score.defined = true
	return score, nil
}

// decide applies the promotion policy. Promotion happens only when both
// sides have a defined accuracy and one is strictly higher; absence of
// evidence never promotes.
func decide(sideA, sideB sideScore) (string, string) {
	switch {
	case sideA.defined && sideB.defined:
		if sideA.accuracy > sideB.accuracy {
			return DecisionPromoteA, fmt.Sprintf("side a accuracy %.4f exceeds side b %.4f", sideA.accuracy, sideB.accuracy)
		}
		if sideB.accuracy > sideA.accuracy {
			return DecisionPromoteB, fmt.Sprintf("side b accuracy %.4f exceeds side a %.4f", sideB.accuracy, sideA.accuracy)
		}
		return DecisionInconclusive, fmt.Sprintf("both sides tied at accuracy %.4f", sideA.accuracy)
	case sideA.defined:
		return DecisionInconclusive, "side b has insufficient data, manual decision required"
	case sideB.defined:
		return DecisionInconclusive, "side a has insufficient data, manual decision required"
	default:
		return DecisionInconclusive, "neither side has feedback bearing records"
	}
}
