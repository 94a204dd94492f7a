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

	"github.com/modelgate/modelgate/abtest"
	"github.com/modelgate/modelgate/internal/mgerrors"
	"github.com/modelgate/modelgate/middlewares"
	"github.com/modelgate/modelgate/models"
	"github.com/modelgate/modelgate/service/mocks"
	"github.com/modelgate/modelgate/types"
)

var (
	mockCreateABTestReqBody = `
		{
			"title": "tree vs forest",
			"algorithm_a_id": 2,
			"algorithm_b_id": 3,
			"created_by": "alice"
		}`
	mockCreateABTestRequest = types.CreateABTestRequest{
		Title:        "tree vs forest",
		AlgorithmAID: 2,
		AlgorithmBID: 3,
		CreatedBy:    "alice",
	}
	mockABTestModel = &models.ABTest{
		BaseModel:    models.BaseModel{ID: 5},
		Title:        "tree vs forest",
		CreatedBy:    "alice",
		AlgorithmAID: 2,
		AlgorithmBID: 3,
	}
)

func mockABTestRouter(h *Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.Error())
	apiv1 := r.Group("/api/v1")
	ab := apiv1.Group("/ab-tests")
	ab.POST("", h.CreateABTest)
	ab.GET("", h.GetABTests)
	ab.GET(":id", h.GetABTest)
	ab.POST(":id/stop", h.StopABTest)
	return r
}

func TestHandlers_CreateABTest(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/ab-tests", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "invalid pair",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/ab-tests", strings.NewReader(mockCreateABTestReqBody)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.CreateABTest(gomock.Any(), gomock.Eq(mockCreateABTestRequest)).
					Return(nil, mgerrors.New(mgerrors.CodeInvalidPair, "different endpoints")).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/ab-tests", strings.NewReader(mockCreateABTestReqBody)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.CreateABTest(gomock.Any(), gomock.Eq(mockCreateABTestRequest)).Return(mockABTestModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				abTest := models.ABTest{}
				err := json.Unmarshal(w.Body.Bytes(), &abTest)
				assert.NoError(err)
				assert.Equal(mockABTestModel.ID, abTest.ID)
				assert.Equal(mockABTestModel.Title, abTest.Title)
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
			mockRouter := mockABTestRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_StopABTest(t *testing.T) {
	stoppedModel := &models.ABTest{
		BaseModel:    models.BaseModel{ID: 5},
		Title:        "tree vs forest",
		AlgorithmAID: 2,
		AlgorithmBID: 3,
		Summary: models.JSONMap{
			"decision": abtest.DecisionPromoteA,
		},
	}

	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "already stopped",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/ab-tests/5/stop", strings.NewReader(`{"created_by": "alice"}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.StopABTest(gomock.Any(), gomock.Eq(uint(5)), gomock.Eq(types.StopABTestRequest{CreatedBy: "alice"})).
					Return(nil, mgerrors.New(mgerrors.CodeAlreadyStopped, "test over")).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusConflict, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/ab-tests/5/stop", strings.NewReader(`{"created_by": "alice"}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.StopABTest(gomock.Any(), gomock.Eq(uint(5)), gomock.Eq(types.StopABTestRequest{CreatedBy: "alice"})).
					Return(stoppedModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				abTest := models.ABTest{}
				err := json.Unmarshal(w.Body.Bytes(), &abTest)
				assert.NoError(err)
				assert.Equal(abtest.DecisionPromoteA, abTest.Summary["decision"])
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
			mockRouter := mockABTestRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetABTest(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/ab-tests/abc", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodGet, "/api/v1/ab-tests/5", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.GetABTest(gomock.Any(), gomock.Eq(uint(5))).Return(mockABTestModel, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
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
			mockRouter := mockABTestRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}
