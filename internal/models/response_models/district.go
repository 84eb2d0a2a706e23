package response_models

type DistrictDetailsResponse struct {
	Name           string   `json:"name" validate:"required"`
	Tagline        string   `json:"tagline" validate:"required"`
	Attractions    []string `json:"attractions" validate:"min=1,dive,required"`
	Accommodations []string `json:"accommodations" validate:"min=1,dive,required"`
	Activities     []string `json:"activities" validate:"min=1,dive,required"`
	Food           []string `json:"food" validate:"min=1,dive,required"`
}

type DistrictImageResponse struct {
	// ImageURL is a data URI: data:<mime>;base64,<payload>.
	ImageURL string `json:"imageUrl"`
}

type HiddenGemsResponse struct {
	HiddenGems []string `json:"hiddenGems" validate:"min=3,max=5,dive,required"`
}

// DistrictOverview is the details of a district plus its generated image.
// ImageError is set instead of ImageURL when only the image failed.
type DistrictOverview struct {
	Details    *DistrictDetailsResponse `json:"details"`
	ImageURL   string                   `json:"imageUrl,omitempty"`
	ImageError string                   `json:"imageError,omitempty"`
}
