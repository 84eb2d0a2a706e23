package request_models

import "visitnepal/internal/models/response_models"

const (
	ItineraryTypeCustom = "custom"
	ItineraryTypeRandom = "random"
)

// ItineraryRequest drives the itinerary flow. A non-empty PreviousItinerary
// switches the flow from generate to modify mode.
type ItineraryRequest struct {
	ItineraryType       string                         `json:"itineraryType" validate:"required,oneof=custom random"`
	Interests           *string                        `json:"interests,omitempty"`
	Duration            int                            `json:"duration" validate:"min=1,max=30"`
	Budget              string                         `json:"budget" validate:"required"`
	StartPoint          string                         `json:"startPoint" validate:"required,max=100"`
	EndPoint            *string                        `json:"endPoint,omitempty" validate:"omitempty,max=100"`
	MustVisitPlaces     *string                        `json:"mustVisitPlaces,omitempty" validate:"omitempty,max=500"`
	PreviousItinerary   []response_models.ItineraryDay `json:"previousItinerary,omitempty" validate:"omitempty,max=30,dive"`
	ModificationRequest *string                        `json:"modificationRequest,omitempty" validate:"omitempty,min=10,max=500"`
}

func (r *ItineraryRequest) IsModification() bool {
	return len(r.PreviousItinerary) > 0
}
