// Package prompts renders the model prompts from embedded templates.
package prompts

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"visitnepal/internal/flow"
	"visitnepal/internal/models/request_models"
	"visitnepal/internal/models/response_models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("prompts").Funcs(template.FuncMap{
	"join":    strings.Join,
	"speaker": speaker,
}).ParseFS(templateFS, "templates/*.tmpl"))

type itineraryData struct {
	Custom              bool
	Interests           string
	Duration            int
	Budget              string
	StartPoint          string
	EndPoint            string
	MustVisitPlaces     string
	PreviousItinerary   []response_models.ItineraryDay
	ModificationRequest string
}

// Itinerary renders the generate prompt, or the modify prompt when the
// request carries a previous itinerary.
func Itinerary(req request_models.ItineraryRequest) (string, error) {
	data := itineraryData{
		Custom:              req.ItineraryType == request_models.ItineraryTypeCustom,
		Interests:           flow.Value(req.Interests),
		Duration:            req.Duration,
		Budget:              req.Budget,
		StartPoint:          req.StartPoint,
		EndPoint:            flow.Value(req.EndPoint),
		MustVisitPlaces:     flow.Value(req.MustVisitPlaces),
		PreviousItinerary:   req.PreviousItinerary,
		ModificationRequest: flow.Value(req.ModificationRequest),
	}
	if req.IsModification() {
		return render("itinerary_modify", data)
	}
	return render("itinerary_generate", data)
}

func DistrictDetails(districtName string) (string, error) {
	return render("district_details", struct{ DistrictName string }{districtName})
}

func DistrictImage(districtName string) (string, error) {
	return render("district_image", struct{ DistrictName string }{districtName})
}

func HiddenGems(req request_models.HiddenGemsRequest) (string, error) {
	return render("hidden_gems", struct {
		DistrictName    string
		UserPreferences string
	}{req.DistrictName, flow.Value(req.UserPreferences)})
}

func TourGuideChat(req request_models.ChatRequest) (string, error) {
	return render("tour_guide_chat", req)
}

func PostcardCaption(location string, description *string) (string, error) {
	return render("postcard_caption", struct {
		Location    string
		Description string
	}{location, flow.Value(description)})
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func speaker(role string) string {
	if role == request_models.ChatRoleUser {
		return "User"
	}
	return "Pasang"
}
