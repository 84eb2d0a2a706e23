package services

import (
	"context"
	"fmt"
	"strings"

	"visitnepal/internal/catalog"
	"visitnepal/internal/flow"
	"visitnepal/internal/models/request_models"
	"visitnepal/internal/models/response_models"
	"visitnepal/internal/prompts"
	"visitnepal/pkg/utils"
)

const FlowItinerary = "itinerary"

type ItineraryServiceInterface interface {
	// GenerateItinerary creates a new plan, or rewrites PreviousItinerary
	// according to ModificationRequest when one is given.
	GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	runner *flow.Runner
	flow   *flow.Flow[request_models.ItineraryRequest, response_models.Itinerary]
}

func NewItineraryService(runner *flow.Runner) ItineraryServiceInterface {
	return &ItineraryService{
		runner: runner,
		flow: &flow.Flow[request_models.ItineraryRequest, response_models.Itinerary]{
			Name:        FlowItinerary,
			Schema:      itinerarySchema,
			Temperature: utils.Float32(0.8),
			Prepare:     PrepareItineraryRequest,
			Render: func(in request_models.ItineraryRequest) (utils.GenerateRequest, error) {
				prompt, err := prompts.Itinerary(in)
				return utils.GenerateRequest{Prompt: prompt}, err
			},
			Repair: func(_ request_models.ItineraryRequest, out *response_models.Itinerary) {
				for i := range out.Itinerary {
					day := &out.Itinerary[i]
					day.Location = strings.TrimSpace(day.Location)
					day.Activities = flow.TrimList(day.Activities)
					day.HotelRecommendations = flow.TrimList(day.HotelRecommendations)
					if len(day.HotelRecommendations) == 0 {
						day.HotelRecommendations = nil
					}
				}
			},
			Check: checkItinerary,
		},
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.ItineraryRequest) (*response_models.Itinerary, error) {
	return s.flow.Run(ctx, s.runner, req)
}

// PrepareItineraryRequest trims the request, drops blank optional fields and
// applies the rules that depend on the itinerary type and mode.
func PrepareItineraryRequest(in *request_models.ItineraryRequest) error {
	in.ItineraryType = strings.ToLower(strings.TrimSpace(in.ItineraryType))
	in.Budget = strings.TrimSpace(in.Budget)
	in.StartPoint = strings.TrimSpace(in.StartPoint)
	in.Interests = flow.OptionalText(in.Interests)
	in.EndPoint = flow.OptionalText(in.EndPoint)
	in.MustVisitPlaces = flow.OptionalText(in.MustVisitPlaces)
	in.ModificationRequest = flow.OptionalText(in.ModificationRequest)

	switch in.ItineraryType {
	case request_models.ItineraryTypeRandom:
		in.Interests = nil
		in.EndPoint = nil
		in.MustVisitPlaces = nil
	case request_models.ItineraryTypeCustom:
		if flow.TextLen(in.Interests) < 10 {
			return flow.Invalid("interests (at least 10 characters) are required for a custom itinerary")
		}
	}

	if in.Budget != "" && !catalog.IsBudgetLabel(in.Budget) {
		return flow.Invalid("budget must be one of: %s", strings.Join(catalog.BudgetLabels(), ", "))
	}

	if in.IsModification() {
		if in.ModificationRequest == nil {
			return flow.Invalid("modificationRequest is required when modifying an itinerary")
		}
		if err := checkDaySequence(in.PreviousItinerary); err != nil {
			return flow.Invalid("previousItinerary: %v", err)
		}
	} else if in.ModificationRequest != nil {
		return flow.Invalid("modificationRequest requires a previousItinerary")
	}

	return nil
}

func checkItinerary(in request_models.ItineraryRequest, out *response_models.Itinerary) error {
	if err := checkDaySequence(out.Itinerary); err != nil {
		return err
	}
	if !in.IsModification() && len(out.Itinerary) != in.Duration {
		return fmt.Errorf("expected %d days, got %d", in.Duration, len(out.Itinerary))
	}
	return nil
}

func checkDaySequence(days []response_models.ItineraryDay) error {
	for i, day := range days {
		if day.Day != i+1 {
			return fmt.Errorf("day numbers must run 1..%d without gaps, found day %d at position %d", len(days), day.Day, i+1)
		}
	}
	return nil
}

var itinerarySchema = &utils.Schema{
	Type:     utils.SchemaObject,
	Order:    []string{"itinerary"},
	Required: []string{"itinerary"},
	Properties: map[string]*utils.Schema{
		"itinerary": {
			Type:        utils.SchemaArray,
			Description: "The day-by-day travel plan.",
			Items: &utils.Schema{
				Type:     utils.SchemaObject,
				Order:    []string{"day", "location", "activities", "hotelRecommendations"},
				Required: []string{"day", "location", "activities"},
				Properties: map[string]*utils.Schema{
					"day":      {Type: utils.SchemaInteger, Description: "Day number, starting at 1."},
					"location": {Type: utils.SchemaString, Description: "Where the day is spent."},
					"activities": {
						Type:        utils.SchemaArray,
						Description: "Distinct activities for the day.",
						Items:       &utils.Schema{Type: utils.SchemaString},
					},
					"hotelRecommendations": {
						Type:        utils.SchemaArray,
						Description: "2-3 hotels with a category, for overnight stays.",
						Items:       &utils.Schema{Type: utils.SchemaString},
					},
				},
			},
		},
	},
}
