package controllers

import (
	"github.com/gin-gonic/gin"

	"visitnepal/internal/services"
	"visitnepal/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func (cc *CatalogController) ListDistricts(c *gin.Context) {
	utils.RespondSuccess(c, cc.catalogService.ListDistricts(), "Districts fetched successfully")
}

func (cc *CatalogController) ListBudgets(c *gin.Context) {
	utils.RespondSuccess(c, cc.catalogService.ListBudgets(), "Budget ranges fetched successfully")
}
