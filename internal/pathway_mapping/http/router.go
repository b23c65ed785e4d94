package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/networks", h.CreateNetwork)
	rg.POST("/sif", h.ConvertSIF)
	rg.POST("/neo4j", h.PushNeo4j)

	rg.GET("/rules", h.ListRules)
	rg.GET("/styles/:name", h.GetStyle)
	rg.GET("/runs/:id", h.GetRun)
	rg.GET("/runs/:id/network", h.GetRunNetwork)
}
