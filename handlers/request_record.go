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

// @Summary Update Request Feedback
// @Description Attach ground truth feedback to a served request
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "id"
// @Param Feedback body types.UpdateFeedbackRequest true "Feedback"
// @Success 200 {object} models.RequestRecord
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /requests/{id}/feedback [patch]
func (h *Handlers) UpdateRequestFeedback(ctx *gin.Context) {
	var params types.RequestRecordParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	var json types.UpdateFeedbackRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	record, err := h.service.UpdateRequestFeedback(ctx.Request.Context(), params.ID, json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, record)
}
