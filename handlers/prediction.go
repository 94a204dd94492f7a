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

// @Summary Create Prediction
// @Description Route a feature record to an active algorithm and predict
// @Tags Prediction
// @Accept json
// @Produce json
// @Param name path string true "endpoint name"
// @Param status query string false "status kind, default production"
// @Param version query string false "version hint"
// @Param Prediction body types.PredictRequest true "Prediction"
// @Success 200 {object} prediction.Result
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /endpoints/{name}/predictions [post]
func (h *Handlers) CreatePrediction(ctx *gin.Context) {
	var params types.PredictParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var query types.PredictQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.PredictRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	result, err := h.service.Predict(ctx.Request.Context(), params.Name, query, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// @Summary Create Batch Prediction
// @Description Route each row of an uploaded CSV file and predict
// @Tags Prediction
// @Accept multipart/form-data
// @Produce json
// @Param name path string true "endpoint name"
// @Param status query string false "status kind, default production"
// @Param version query string false "version hint"
// @Param file formData file true "csv file"
// @Success 200 {object} types.BatchPredictResponse
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /endpoints/{name}/predictions/batch [post]
func (h *Handlers) CreateBatchPrediction(ctx *gin.Context) {
	var params types.PredictParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var query types.PredictQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}
	defer file.Close()

	resp, err := h.service.PredictBatch(ctx.Request.Context(), params.Name, query, file)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
