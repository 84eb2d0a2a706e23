package response_models

type ItineraryDay struct {
	Day                  int      `json:"day" validate:"min=1"`
	Location             string   `json:"location" validate:"required"`
	Activities           []string `json:"activities" validate:"min=1,dive,required"`
	HotelRecommendations []string `json:"hotelRecommendations,omitempty" validate:"omitempty,dive,required"`
}

type Itinerary struct {
	Itinerary []ItineraryDay `json:"itinerary" validate:"min=1,dive"`
}
