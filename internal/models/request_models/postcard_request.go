package request_models

type PostcardRequest struct {
	// ImageDataURI is data:<mime>;base64,<payload>.
	ImageDataURI string  `json:"imageDataUri" validate:"required"`
	Location     string  `json:"location" validate:"required,min=3,max=100"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
}
