package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/api/http/middleware"
	biopaxhttp "github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/http"
)

type V1Deps struct {
	BioPAX  biopaxhttp.Deps
	Limiter *middleware.RateLimiter
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())
	if dep.Limiter != nil {
		api.Use(dep.Limiter.Middleware())
	}

	biopaxhttp.New(dep.BioPAX).Register(api.Group("/biopax"))
}
