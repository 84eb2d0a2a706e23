package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"visitnepal/internal/models/request_models"
	"visitnepal/internal/models/response_models"
	"visitnepal/internal/services"
	"visitnepal/pkg/utils"
)

var (
	itineraryType string
	interests     string
	days          int
	budget        string
	startPoint    string
	endPoint      string
	mustVisit     string
	previousFile  string
	changeRequest string
	preferences   string
	explore       bool
	imageOut      string
	historyFile   string
	location      string
	description   string
)

var itineraryCmd = &cobra.Command{
	Use:   "itinerary",
	Short: "Generate an itinerary, or modify one with --previous and --change",
	Example: `  flowctl itinerary --type custom --interests "temples and mountain views" --days 5 --budget "$500 - $1000 USD" --start Kathmandu
  flowctl itinerary --type random --days 3 --budget "< $500 USD" --start Pokhara
  flowctl itinerary --previous plan.json --change "Add a day in Nagarkot" --days 5 --budget "< $500 USD" --start Kathmandu`,
	RunE: runItinerary,
}

var gemsCmd = &cobra.Command{
	Use:   "gems <district>",
	Short: "Suggest hidden gems in a district",
	Args:  cobra.ExactArgs(1),
	RunE:  runGems,
}

var districtCmd = &cobra.Command{
	Use:   "district <district>",
	Short: "Describe a district (with --explore, also generate its image)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDistrict,
}

var imageCmd = &cobra.Command{
	Use:   "image <district>",
	Short: "Generate an image of a district",
	Args:  cobra.ExactArgs(1),
	RunE:  runImage,
}

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask Pasang, the tour guide",
	Args:  cobra.ExactArgs(1),
	RunE:  runChat,
}

var postcardCmd = &cobra.Command{
	Use:   "postcard <image-file>",
	Short: "Write a postcard caption for a photo",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostcard,
}

var districtsCmd = &cobra.Command{
	Use:   "districts",
	Short: "List the districts of Nepal by province",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd.OutOrStdout(), services.NewCatalogService().ListDistricts())
	},
}

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "List the accepted budget ranges",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd.OutOrStdout(), services.NewCatalogService().ListBudgets())
	},
}

func init() {
	f := itineraryCmd.Flags()
	f.StringVar(&itineraryType, "type", request_models.ItineraryTypeRandom, "Itinerary type: custom or random")
	f.StringVar(&interests, "interests", "", "Interests (custom only, at least 10 characters)")
	f.IntVar(&days, "days", 3, "Trip duration in days (1-30)")
	f.StringVar(&budget, "budget", "", `Total budget label, e.g. "$500 - $1000 USD"`)
	f.StringVar(&startPoint, "start", "Kathmandu", "Start point")
	f.StringVar(&endPoint, "end", "", "End point (custom only)")
	f.StringVar(&mustVisit, "must-visit", "", "Places that must be included (custom only)")
	f.StringVar(&previousFile, "previous", "", "JSON file with the itinerary to modify")
	f.StringVar(&changeRequest, "change", "", "Modification request (with --previous)")

	gemsCmd.Flags().StringVar(&preferences, "prefs", "", "Optional interests to tailor suggestions")
	districtCmd.Flags().BoolVar(&explore, "explore", false, "Also generate the district image")
	imageCmd.Flags().StringVarP(&imageOut, "out", "o", "", "Write the image to this file instead of printing a data URI")
	chatCmd.Flags().StringVar(&historyFile, "history", "", "JSON file with previous turns ([{\"role\":\"user\",\"content\":\"...\"}])")
	postcardCmd.Flags().StringVar(&location, "location", "", "Where the photo was taken")
	postcardCmd.Flags().StringVar(&description, "description", "", "Optional note about the photo")
}

func runItinerary(cmd *cobra.Command, _ []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.Close()

	req := request_models.ItineraryRequest{
		ItineraryType:       itineraryType,
		Interests:           optional(interests),
		Duration:            days,
		Budget:              budget,
		StartPoint:          startPoint,
		EndPoint:            optional(endPoint),
		MustVisitPlaces:     optional(mustVisit),
		ModificationRequest: optional(changeRequest),
	}
	if previousFile != "" {
		var previous response_models.Itinerary
		if err := readJSON(previousFile, &previous); err != nil {
			return err
		}
		req.PreviousItinerary = previous.Itinerary
	}

	out, err := services.NewItineraryService(rt.runner).GenerateItinerary(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func runGems(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.Close()

	out, err := services.NewHiddenGemsService(rt.runner).SuggestHiddenGems(cmd.Context(), request_models.HiddenGemsRequest{
		DistrictName:    args[0],
		UserPreferences: optional(preferences),
	})
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func runDistrict(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.Close()

	svc := services.NewDistrictService(rt.runner, rt.cache, rt.logger)
	req := request_models.DistrictRequest{DistrictName: args[0]}

	if explore {
		out, err := svc.ExploreDistrict(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	}

	out, err := svc.GetDistrictDetails(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func runImage(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.Close()

	out, err := services.NewDistrictService(rt.runner, rt.cache, rt.logger).
		GenerateDistrictImage(cmd.Context(), request_models.DistrictImageRequest{DistrictName: args[0]})
	if err != nil {
		return err
	}
	if imageOut == "" {
		return printJSON(cmd.OutOrStdout(), out)
	}

	img, err := utils.ParseDataURI(out.ImageURL)
	if err != nil {
		return err
	}
	if err := os.WriteFile(imageOut, img.Data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %d bytes)\n", imageOut, img.MIMEType, len(img.Data))
	return nil
}

func runChat(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.Close()

	req := request_models.ChatRequest{UserMessage: args[0]}
	if historyFile != "" {
		if err := readJSON(historyFile, &req.History); err != nil {
			return err
		}
	}

	out, err := services.NewChatService(rt.runner).Chat(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func runPostcard(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	mimeType, _, _ := strings.Cut(http.DetectContentType(data), ";")

	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.Close()

	out, err := services.NewPostcardService(rt.runner).
		GenerateCaptionFromUpload(cmd.Context(), mimeType, data, location, optional(description))
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
