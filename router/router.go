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

package router

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/modelgate/modelgate/config"
	"github.com/modelgate/modelgate/handlers"
	"github.com/modelgate/modelgate/internal/mglog"
	"github.com/modelgate/modelgate/middlewares"
	"github.com/modelgate/modelgate/service"
)

const (
	PrometheusSubsystemName = "modelgate"
	OtelServiceName         = "modelgate"
)

func Init(cfg *config.Config, service service.Service) (*gin.Engine, error) {
	// Set mode.
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	h := handlers.New(service)

	// Prometheus metrics.
	p := ginprometheus.NewPrometheus(PrometheusSubsystemName)
	// URL removes query string.
	// Prometheus metrics need to reduce label,
	// refer to https://prometheus.io/docs/practices/instrumentation/#do-not-overuse-labels.
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		return c.Request.URL.Path
	}
	p.Use(r)

	// Opentelemetry
	if cfg.Telemetry.Jaeger != "" {
		r.Use(otelgin.Middleware(OtelServiceName))
	}

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true

	// Middleware
	r.Use(gin.Recovery())
	r.Use(ginzap.Ginzap(mglog.GinLogger.Desugar(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(mglog.GinLogger.Desugar(), true))
	r.Use(middlewares.Error())
	r.Use(cors.New(corsConfig))

	// Router
	apiv1 := r.Group("/api/v1")

	// Endpoint
	e := apiv1.Group("/endpoints")
	e.GET("", h.GetEndpoints)
	e.GET(":name", h.GetEndpoint)
	e.PATCH(":name", h.UpdateEndpoint)
	e.POST(":name/predictions", h.CreatePrediction)
	e.POST(":name/predictions/batch", h.CreateBatchPrediction)

	// Algorithm
	a := apiv1.Group("/algorithms")
	a.GET("", h.GetAlgorithms)
	a.GET(":id", h.GetAlgorithm)
	a.POST(":id/statuses", h.CreateAlgorithmStatus)

	// Request
	rr := apiv1.Group("/requests")
	rr.PATCH(":id/feedback", h.UpdateRequestFeedback)

	// AB Test
	ab := apiv1.Group("/ab-tests")
	ab.POST("", h.CreateABTest)
	ab.GET("", h.GetABTests)
	ab.GET(":id", h.GetABTest)
	ab.POST(":id/stop", h.StopABTest)

	// Health
	r.GET("/healthy", h.GetHealth)

	return r, nil
}
