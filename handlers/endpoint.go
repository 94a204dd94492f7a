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

// @Summary Get Endpoints
// @Description Get Endpoints
// @Tags Endpoint
// @Accept json
// @Produce json
// @Param page query int false "current page" default(1)
// @Param per_page query int false "return max item count, default 10, max 1000" default(10)
// @Success 200 {object} []models.Endpoint
// @Failure 400
// @Failure 500
// @Router /endpoints [get]
func (h *Handlers) GetEndpoints(ctx *gin.Context) {
	var query types.GetEndpointsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}
	h.setPaginationDefault(&query.Page, &query.PerPage)

	endpoints, count, err := h.service.GetEndpoints(ctx.Request.Context(), query)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	h.setPaginationLinkHeader(ctx, query.Page, query.PerPage, int(count))
	ctx.JSON(http.StatusOK, endpoints)
}

// @Summary Get Endpoint
// @Description Get Endpoint by name
// @Tags Endpoint
// @Accept json
// @Produce json
// @Param name path string true "name"
// @Success 200 {object} models.Endpoint
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /endpoints/{name} [get]
func (h *Handlers) GetEndpoint(ctx *gin.Context) {
	var params types.EndpointParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	endpoint, err := h.service.GetEndpoint(ctx.Request.Context(), params.Name)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, endpoint)
}

// @Summary Update Endpoint
// @Description Update by json config
// @Tags Endpoint
// @Accept json
// @Produce json
// @Param name path string true "name"
// @Param Endpoint body types.UpdateEndpointRequest true "Endpoint"
// @Success 200 {object} models.Endpoint
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /endpoints/{name} [patch]
func (h *Handlers) UpdateEndpoint(ctx *gin.Context) {
	var params types.EndpointParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdateEndpointRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	endpoint, err := h.service.UpdateEndpoint(ctx.Request.Context(), params.Name, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, endpoint)
}
