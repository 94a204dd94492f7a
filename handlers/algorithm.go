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

// @Summary Get Algorithms
// @Description Get Algorithms with filter
// @Tags Algorithm
// @Accept json
// @Produce json
// @Param endpoint query string false "endpoint name"
// @Param status query string false "active status kind"
// @Param page query int false "current page" default(1)
// @Param per_page query int false "return max item count, default 10, max 1000" default(10)
// @Success 200 {object} []models.Algorithm
// @Failure 400
// @Failure 500
// @Router /algorithms [get]
func (h *Handlers) GetAlgorithms(ctx *gin.Context) {
	var query types.GetAlgorithmsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}
	h.setPaginationDefault(&query.Page, &query.PerPage)

	algorithms, count, err := h.service.GetAlgorithms(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, algorithms)
}

// @Summary Get Algorithm
// @Description Get Algorithm by id
// @Tags Algorithm
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Success 200 {object} models.Algorithm
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /algorithms/{id} [get]
func (h *Handlers) GetAlgorithm(ctx *gin.Context) {
	var params types.AlgorithmParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	algorithm, err := h.service.GetAlgorithm(ctx.Request.Context(), params.ID)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, algorithm)
}

// @Summary Create Algorithm Status
// @Description Append a status entry and activate or deactivate it
// @Tags Algorithm
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Status body types.CreateAlgorithmStatusRequest true "Status"
// @Success 200 {object} models.AlgorithmStatus
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /algorithms/{id}/statuses [post]
func (h *Handlers) CreateAlgorithmStatus(ctx *gin.Context) {
	var params types.AlgorithmParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.CreateAlgorithmStatusRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	status, err := h.service.CreateAlgorithmStatus(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, status)
}
