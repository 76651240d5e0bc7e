package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/dinocatalog-backend/internal/http/handlers"
	httpMW "github.com/yungbote/dinocatalog-backend/internal/http/middleware"
	"github.com/yungbote/dinocatalog-backend/internal/observability"
	"github.com/yungbote/dinocatalog-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	Tracing     bool
	ServiceName string

	DinosaurHandler  *httpH.DinosaurHandler
	ReferenceHandler *httpH.ReferenceHandler
	InfoHandler      *httpH.InfoHandler
	HealthHandler    *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(httpMW.Recovery(cfg.Log))
	if cfg.Tracing {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/health", cfg.HealthHandler.Health)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	if cfg.InfoHandler != nil {
		r.GET("/", cfg.InfoHandler.Root)
		r.GET("/stats", cfg.InfoHandler.Stats)
	}

	// Dinosaurs
	if cfg.DinosaurHandler != nil {
		r.GET("/dinosaurs", cfg.DinosaurHandler.List)
		r.GET("/dinosaurs/search", cfg.DinosaurHandler.Search)
		r.GET("/dinosaurs/search/", cfg.DinosaurHandler.Search)
		r.GET("/dinosaurs/:id", cfg.DinosaurHandler.Get)
	}

	// Reference data
	if cfg.ReferenceHandler != nil {
		r.GET("/periods", cfg.ReferenceHandler.Periods)
		r.GET("/clades", cfg.ReferenceHandler.Clades)
		r.GET("/groups", cfg.ReferenceHandler.Groups)
		r.GET("/diets", cfg.ReferenceHandler.Diets)
		r.GET("/sizes", cfg.ReferenceHandler.Sizes)
		r.GET("/locomotion", cfg.ReferenceHandler.Locomotion)
		r.GET("/habitats", cfg.ReferenceHandler.Habitats)
		r.GET("/fossil-qualities", cfg.ReferenceHandler.FossilQualities)
	}

	return r
}
