package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/GoSim-25-26J-441/biopax-network-mapper/internal/api/http"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/api/http/routes"
	biopaxhttp "github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/http"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int

	DB     httpapi.Pinger
	Redis  httpapi.Pinger
	BioPAX biopaxhttp.Deps
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if len(dep.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     dep.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader, "X-Run-Id", "X-Cache", "X-Relation-Count"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	var limiter *middleware.RateLimiter
	if dep.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(dep.RateLimitRPS, dep.RateLimitBurst)
	}
	routes.RegisterV1(r, routes.V1Deps{BioPAX: dep.BioPAX, Limiter: limiter})

	return r
}
