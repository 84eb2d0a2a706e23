package services

import (
	"visitnepal/internal/catalog"
	"visitnepal/internal/models/response_models"
)

type CatalogServiceInterface interface {
	ListDistricts() response_models.DistrictCatalogResponse
	ListBudgets() response_models.BudgetCatalogResponse
}

type CatalogService struct{}

func NewCatalogService() CatalogServiceInterface {
	return &CatalogService{}
}

func (s *CatalogService) ListDistricts() response_models.DistrictCatalogResponse {
	return response_models.DistrictCatalogResponse{
		Regions:   catalog.Regions,
		Districts: catalog.Districts(),
	}
}

func (s *CatalogService) ListBudgets() response_models.BudgetCatalogResponse {
	return response_models.BudgetCatalogResponse{Budgets: catalog.BudgetRanges}
}
