package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitnepal/internal/models/request_models"
	"visitnepal/internal/models/response_models"
)

func strPtr(s string) *string { return &s }

func TestItinerary_Custom(t *testing.T) {
	prompt, err := Itinerary(request_models.ItineraryRequest{
		ItineraryType:   request_models.ItineraryTypeCustom,
		Interests:       strPtr("temples and mountain views"),
		Duration:        5,
		Budget:          "$500 - $1000 USD",
		StartPoint:      "Kathmandu",
		MustVisitPlaces: strPtr("Pokhara"),
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Custom plan")
	assert.Contains(t, prompt, "Interests: temples and mountain views")
	assert.Contains(t, prompt, "Must-visit places or regions: Pokhara")
	assert.Contains(t, prompt, "Generate exactly 5 days")
	assert.NotContains(t, prompt, "End point")
	assert.NotContains(t, prompt, "Random adventure")
	assert.Contains(t, prompt, `"itinerary": [`)
}

func TestItinerary_Random(t *testing.T) {
	prompt, err := Itinerary(request_models.ItineraryRequest{
		ItineraryType: request_models.ItineraryTypeRandom,
		Duration:      3,
		Budget:        "< $500 USD",
		StartPoint:    "Pokhara",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Random adventure")
	assert.Contains(t, prompt, "starting from Pokhara")
	assert.NotContains(t, prompt, "Interests:")
}

func TestItinerary_Modify(t *testing.T) {
	prompt, err := Itinerary(request_models.ItineraryRequest{
		ItineraryType: request_models.ItineraryTypeRandom,
		Duration:      2,
		Budget:        "< $500 USD",
		StartPoint:    "Kathmandu",
		PreviousItinerary: []response_models.ItineraryDay{
			{Day: 1, Location: "Kathmandu", Activities: []string{"Visit Swayambhunath"}, HotelRecommendations: []string{"Hotel A", "Hotel B"}},
			{Day: 2, Location: "Bhaktapur", Activities: []string{"Durbar Square"}},
		},
		ModificationRequest: strPtr("Add a day in Nagarkot for sunrise"),
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Day 1: Kathmandu")
	assert.Contains(t, prompt, "  - Visit Swayambhunath")
	assert.Contains(t, prompt, "Hotels: Hotel A, Hotel B")
	assert.Contains(t, prompt, "Day 2: Bhaktapur")
	assert.Contains(t, prompt, "Requested change: Add a day in Nagarkot for sunrise")
	assert.Contains(t, prompt, "COMPLETE updated itinerary")
}

func TestHiddenGems_Preferences(t *testing.T) {
	with, err := HiddenGems(request_models.HiddenGemsRequest{DistrictName: "Kaski", UserPreferences: strPtr("birdwatching")})
	require.NoError(t, err)
	assert.Contains(t, with, "Their interests: birdwatching")

	without, err := HiddenGems(request_models.HiddenGemsRequest{DistrictName: "Kaski"})
	require.NoError(t, err)
	assert.Contains(t, without, "no particular interests")
	assert.Contains(t, without, "hidden gems in Kaski")
}

func TestDistrictPrompts(t *testing.T) {
	details, err := DistrictDetails("Mustang")
	require.NoError(t, err)
	assert.Contains(t, details, `name: exactly "Mustang"`)

	image, err := DistrictImage("Mustang")
	require.NoError(t, err)
	assert.Contains(t, image, "the Mustang district in Nepal")
	assert.Contains(t, image, "No text")
}

func TestTourGuideChat(t *testing.T) {
	prompt, err := TourGuideChat(request_models.ChatRequest{
		History: []request_models.ChatTurn{
			{Role: request_models.ChatRoleUser, Content: "Namaste!"},
			{Role: request_models.ChatRoleAssistant, Content: "Namaste, how can I help?"},
		},
		UserMessage: "When should I trek to Everest base camp?",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "You are Pasang")
	assert.Contains(t, prompt, "User: Namaste!\nPasang: Namaste, how can I help?\n")
	assert.Contains(t, prompt, "User: When should I trek to Everest base camp?")

	empty, err := TourGuideChat(request_models.ChatRequest{UserMessage: "Hi"})
	require.NoError(t, err)
	assert.NotContains(t, empty, "Conversation so far")
}

func TestPostcardCaption(t *testing.T) {
	prompt, err := PostcardCaption("Phewa Lake", nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Location: Phewa Lake")
	assert.NotContains(t, prompt, "Traveller's note")

	prompt, err = PostcardCaption("Phewa Lake", strPtr("sunset boat ride"))
	require.NoError(t, err)
	assert.Contains(t, prompt, "Traveller's note: sunset boat ride")
}
