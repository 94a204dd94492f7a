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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/modelgate/modelgate/middlewares"
	"github.com/modelgate/modelgate/models"
	"github.com/modelgate/modelgate/service/mocks"
	"github.com/modelgate/modelgate/types"
)

var (
	mockCreateAlgorithmStatusReqBody = `
		{
			"status": "production",
			"active": true,
			"created_by": "alice"
		}`
	mockCreateAlgorithmStatusRequest = types.CreateAlgorithmStatusRequest{
		Status:    models.StatusKindProduction,
		Active:    true,
		CreatedBy: "alice",
	}
	mockAlgorithmModel = &models.Algorithm{
		BaseModel: models.BaseModel{ID: 2},
		Name:      "tree",
		Version:   "1.0.0",
	}
	mockAlgorithmStatusModel = &models.AlgorithmStatus{
		BaseModel:   models.BaseModel{ID: 7},
		Status:      models.StatusKindProduction,
		Active:      true,
		CreatedBy:   "alice",
		AlgorithmID: 2,
	}
)

func mockAlgorithmRouter(h *Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.Error())
	apiv1 := r.Group("/api/v1")
	a := apiv1.Group("/algorithms")
	a.GET("", h.GetAlgorithms)
	a.GET(":id", h.GetAlgorithm)
	a.POST(":id/statuses", h.CreateAlgorithmStatus)
	return r
}

func TestHandlers_GetAlgorithm(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/algorithms/abc", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "not found",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/algorithms/2", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetAlgorithm(gomock.Any(), gomock.Eq(uint(2))).Return(nil, gorm.ErrRecordNotFound).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusNotFound, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/algorithms/2", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetAlgorithm(gomock.Any(), gomock.Eq(uint(2))).Return(mockAlgorithmModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				algorithm := models.Algorithm{}
				err := json.Unmarshal(w.Body.Bytes(), &algorithm)
				assert.NoError(err)
				assert.Equal(mockAlgorithmModel.ID, algorithm.ID)
				assert.Equal(mockAlgorithmModel.Name, algorithm.Name)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc)
			mockRouter := mockAlgorithmRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetAlgorithms(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "invalid status filter",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/algorithms?status=retired", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/algorithms?endpoint=churn&status=production", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetAlgorithms(gomock.Any(), gomock.Eq(types.GetAlgorithmsQuery{
					Endpoint: "churn",
					Status:   models.StatusKindProduction,
					Page:     1,
					PerPage:  10,
				})).Return([]models.Algorithm{*mockAlgorithmModel}, int64(1), nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				var algorithms []models.Algorithm
				err := json.Unmarshal(w.Body.Bytes(), &algorithms)
				assert.NoError(err)
				assert.Len(algorithms, 1)
				assert.NotEmpty(w.Header().Get("Link"))
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc)
			mockRouter := mockAlgorithmRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_CreateAlgorithmStatus(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/algorithms/2/statuses", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "invalid status kind",
			req: httptest.NewRequest(http.MethodPost, "/api/v1/algorithms/2/statuses",
				strings.NewReader(`{"status": "retired"}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req: httptest.NewRequest(http.MethodPost, "/api/v1/algorithms/2/statuses",
				strings.NewReader(mockCreateAlgorithmStatusReqBody)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.CreateAlgorithmStatus(gomock.Any(), gomock.Eq(uint(2)), gomock.Eq(mockCreateAlgorithmStatusRequest)).
					Return(mockAlgorithmStatusModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				status := models.AlgorithmStatus{}
				err := json.Unmarshal(w.Body.Bytes(), &status)
				assert.NoError(err)
				assert.Equal(mockAlgorithmStatusModel.Status, status.Status)
				assert.True(status.Active)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc)
			mockRouter := mockAlgorithmRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}
