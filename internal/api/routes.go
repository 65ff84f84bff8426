package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cloudquota/cfpanel/internal/api/handlers"
	"github.com/cloudquota/cfpanel/internal/api/middleware"
	"github.com/cloudquota/cfpanel/internal/session"

	_ "github.com/cloudquota/cfpanel/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, sessions *session.Store) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	api.GET("/health", h.Health)

	api.POST("/session", h.CreateSession)
	api.GET("/session", h.GetSession)
	api.DELETE("/session", h.DeleteSession)

	// Everything touching provider state needs a live session.
	authed := api.Group("")
	authed.Use(middleware.RequireSession(sessions))

	authed.GET("/stats", h.Stats)
	authed.GET("/audit", h.Audit)

	authed.GET("/zones", h.ListZones)
	authed.GET("/zones/:zoneID/records", h.ListRecords)
	authed.POST("/zones/:zoneID/records", h.CreateRecord)
	authed.PUT("/zones/:zoneID/records/:recordID", h.UpdateRecord)
	authed.DELETE("/zones/:zoneID/records/:recordID", h.DeleteRecord)
}
