package services_fx

import (
	"go.uber.org/fx"

	"visitnepal/internal/services"
)

var Module = fx.Options(
	fx.Provide(services.NewCatalogService),
	fx.Provide(services.NewItineraryService),
	fx.Provide(services.NewDistrictService),
	fx.Provide(services.NewHiddenGemsService),
	fx.Provide(services.NewChatService),
	fx.Provide(services.NewPostcardService),
)
