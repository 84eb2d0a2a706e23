package response_models

import "visitnepal/internal/catalog"

type DistrictCatalogResponse struct {
	Regions   []catalog.Region `json:"regions"`
	Districts []string         `json:"districts"`
}

type BudgetCatalogResponse struct {
	Budgets []catalog.BudgetRange `json:"budgets"`
}
