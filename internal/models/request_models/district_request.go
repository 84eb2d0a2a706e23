package request_models

type DistrictRequest struct {
	DistrictName string `json:"districtName" validate:"required"`
}

type HiddenGemsRequest struct {
	DistrictName    string  `json:"districtName" validate:"required"`
	UserPreferences *string `json:"userPreferences,omitempty" validate:"omitempty,max=500"`
}

type (
	DistrictDetailsRequest = DistrictRequest
	DistrictImageRequest   = DistrictRequest
)
