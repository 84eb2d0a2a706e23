package controllers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"visitnepal/internal/models/request_models"
	"visitnepal/internal/services"
	"visitnepal/pkg/utils"
)

type PostcardController struct {
	postcardService services.PostcardServiceInterface
	logger          *zap.Logger
}

func NewPostcardController(postcardService services.PostcardServiceInterface, logger *zap.Logger) *PostcardController {
	return &PostcardController{
		postcardService: postcardService,
		logger:          logger,
	}
}

func (pc *PostcardController) GenerateCaption(c *gin.Context) {
	var req request_models.PostcardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	caption, err := pc.postcardService.GenerateCaption(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, pc.logger, err)
		return
	}
	utils.RespondSuccess(c, caption, "Caption generated successfully")
}

// UploadPostcard godoc
// @Summary Caption an uploaded photo
// @Tags Postcards
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "JPEG, PNG or WebP, at most 5 MB"
// @Param location formData string true "Where the photo was taken"
// @Param description formData string false "Optional note"
// @Success 200 {object} response_models.PostcardResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/postcards/upload [post]
func (pc *PostcardController) UploadPostcard(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "image file is required")
		return
	}
	if fileHeader.Size > services.MaxPostcardImageBytes {
		utils.RespondError(c, http.StatusBadRequest, "Image is larger than 5 MB")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read image")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, services.MaxPostcardImageBytes+1))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read image")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}
	mimeType, _, _ = strings.Cut(mimeType, ";")

	var description *string
	if d, ok := c.GetPostForm("description"); ok {
		description = &d
	}

	caption, err := pc.postcardService.GenerateCaptionFromUpload(c.Request.Context(), mimeType, data, c.PostForm("location"), description)
	if err != nil {
		utils.HandleServiceError(c, pc.logger, err)
		return
	}
	utils.RespondSuccess(c, caption, "Caption generated successfully")
}
