package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"visitnepal/internal/api/controllers"
	"visitnepal/internal/config"
	"visitnepal/pkg/middleware"
)

type Controllers struct {
	Health    *controllers.HealthController
	Catalog   *controllers.CatalogController
	Itinerary *controllers.ItineraryController
	District  *controllers.DistrictController
	Chat      *controllers.ChatController
	Postcard  *controllers.PostcardController
}

func NewRouter(cfg config.ServerConfig, logger *zap.Logger, ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	if cfg.MaxBodyMB > 0 {
		r.Use(middleware.BodyLimit(int64(cfg.MaxBodyMB) << 20))
		r.MaxMultipartMemory = int64(cfg.MaxBodyMB) << 20
	}

	RegisterRoutes(r, ctrl)
	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/healthz", ctrl.Health.Health)

	v1 := r.Group("/api/v1")

	catalogGroup := v1.Group("/catalog")
	catalogGroup.GET("/districts", ctrl.Catalog.ListDistricts)
	catalogGroup.GET("/budgets", ctrl.Catalog.ListBudgets)

	v1.POST("/itineraries", ctrl.Itinerary.GenerateItinerary)

	districtGroup := v1.Group("/districts")
	districtGroup.POST("/details", ctrl.District.GetDistrictDetails)
	districtGroup.POST("/image", ctrl.District.GenerateDistrictImage)
	districtGroup.POST("/explore", ctrl.District.ExploreDistrict)
	districtGroup.POST("/hidden-gems", ctrl.District.SuggestHiddenGems)

	v1.POST("/chat", ctrl.Chat.Chat)

	postcardGroup := v1.Group("/postcards")
	postcardGroup.POST("", ctrl.Postcard.GenerateCaption)
	postcardGroup.POST("/upload", ctrl.Postcard.UploadPostcard)
}
