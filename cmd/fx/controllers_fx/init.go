package controllers_fx

import (
	"go.uber.org/fx"

	"visitnepal/internal/api"
	"visitnepal/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewDistrictController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewPostcardController),
	fx.Provide(provideControllers),
)

type controllersIn struct {
	fx.In

	Health    *controllers.HealthController
	Catalog   *controllers.CatalogController
	Itinerary *controllers.ItineraryController
	District  *controllers.DistrictController
	Chat      *controllers.ChatController
	Postcard  *controllers.PostcardController
}

func provideControllers(in controllersIn) api.Controllers {
	return api.Controllers{
		Health:    in.Health,
		Catalog:   in.Catalog,
		Itinerary: in.Itinerary,
		District:  in.District,
		Chat:      in.Chat,
		Postcard:  in.Postcard,
	}
}
