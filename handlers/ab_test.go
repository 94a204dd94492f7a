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

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelgate/modelgate/types"
)

// @Summary Create AB Test
// @Description Start an A/B test over two algorithms of one endpoint
// @Tags ABTest
// @Accept json
// @Produce json
// @Param ABTest body types.CreateABTestRequest true "ABTest"
// @Success 200 {object} models.ABTest
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /ab-tests [post]
func (h *Handlers) CreateABTest(ctx *gin.Context) {
	var json types.CreateABTestRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	abTest, err := h.service.CreateABTest(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, abTest)
}

// @Summary Stop AB Test
// @Description Stop an A/B test, score both sides and maybe promote
// @Tags ABTest
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Stop body types.StopABTestRequest true "Stop"
// @Success 200 {object} models.ABTest
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /ab-tests/{id}/stop [post]
func (h *Handlers) StopABTest(ctx *gin.Context) {
	var params types.ABTestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.StopABTestRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	abTest, err := h.service.StopABTest(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, abTest)
}

// @Summary Get AB Test
// @Description Get AB Test by id
// @Tags ABTest
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.ABTest
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /ab-tests/{id} [get]
func (h *Handlers) GetABTest(ctx *gin.Context) {
	var params types.ABTestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	abTest, err := h.service.GetABTest(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, abTest)
}

// @Summary Get AB Tests
// @Description Get AB Tests
// @Tags ABTest
// @Accept json
// @Produce json
// @Param page query int false "current page" default(1)
// @Param per_page query int false "return max item count, default 10, max 1000" default(10)
// @Success 200 {object} []models.ABTest
// @Failure 400
// @Failure 500
// @Router /ab-tests [get]
func (h *Handlers) GetABTests(ctx *gin.Context) {
	var query types.GetABTestsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}
	h.setPaginationDefault(&query.Page, &query.PerPage)

	abTests, count, err := h.service.GetABTests(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, abTests)
}
