package response_models

type ChatResponse struct {
	Response string `json:"response" validate:"required"`
}

type PostcardResponse struct {
	Caption string `json:"caption" validate:"required"`
}
