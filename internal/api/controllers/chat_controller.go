package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"visitnepal/internal/models/request_models"
	"visitnepal/internal/services"
	"visitnepal/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
	logger      *zap.Logger
}

func NewChatController(chatService services.ChatServiceInterface, logger *zap.Logger) *ChatController {
	return &ChatController{
		chatService: chatService,
		logger:      logger,
	}
}

// Chat godoc
// @Summary Ask Pasang, the tour guide
// @Description The caller keeps the conversation and sends it back as history on every turn.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "History and latest message"
// @Success 200 {object} response_models.ChatResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/chat [post]
func (cc *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reply, err := cc.chatService.Chat(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}
	utils.RespondSuccess(c, reply, "")
}
