package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/voltline/backend/internal/config"
	"github.com/voltline/backend/internal/geocode"
	"github.com/voltline/backend/internal/http/handlers"
	"github.com/voltline/backend/internal/http/middleware"
	"github.com/voltline/backend/internal/notify"
	"github.com/voltline/backend/internal/store"

	_ "github.com/voltline/backend/docs"
)

func Router(cfg config.Config, st store.Store, notifier notify.Notifier, geocoder geocode.Geocoder, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Store:     st,
		Validator: validator.New(),
		Logger:    logger,
		Notifier:  notifier,
		Geocoder:  geocoder,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitMax, cfg.RateLimitWindow))

	api.GET("/health", h.Health)
	api.GET("/catalog", h.Catalog)
	api.POST("/auth/register", h.Register)

	// legacy resource routes
	api.POST("/services", h.CreateServiceRequest)
	api.GET("/services", h.ListServiceRequests)
	api.GET("/services/:id", h.GetServiceRequest)
	api.POST("/technicians", h.CreateApplication)
	api.GET("/technicians", h.ListApplications)
	api.GET("/technicians/apply", h.ListApplications)
	api.POST("/technicians/apply", h.CreateApplication)
	api.GET("/technicians/:id", h.GetApplication)

	// filterable request surface
	api.GET("/requests", h.ListRequests)
	api.POST("/requests", h.CreateServiceRequest)
	api.GET("/requests/:id", h.GetServiceRequest)
	api.DELETE("/requests/:id", h.DeleteRequest)
	api.GET("/requests/:id/matches", h.RequestMatches)

	api.GET("/quotes", h.ListQuotes)
	api.POST("/quotes", h.CreateQuote)
	api.GET("/quotes/:id", h.GetQuote)

	// status reviews; open unless an admin key is configured
	review := api.Group("")
	review.Use(middleware.AdminKey(cfg.AdminKey))
	{
		review.PATCH("/services/:id/status", h.UpdateServiceRequestStatus)
		review.PATCH("/technicians/:id/status", h.UpdateApplicationStatus)
		review.PATCH("/requests/:id", h.UpdateServiceRequestStatus)
		review.PATCH("/quotes/:id", h.ReviewQuote)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
