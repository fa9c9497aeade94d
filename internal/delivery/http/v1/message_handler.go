package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	msgUC domain.MessageUsecase
}

func NewMessageHandler(protected *gin.RouterGroup, msgUC domain.MessageUsecase) {
	handler := &MessageHandler{msgUC: msgUC}

	protected.POST("/messages", handler.Send)
	protected.GET("/conversations", handler.ListConversations)
	protected.GET("/conversations/:userId", handler.GetThread)
	protected.PUT("/conversations/:userId/read", handler.MarkRead)
}

type SendMessageRequest struct {
	ReceiverID int64  `json:"receiver_id" binding:"required,min=1"`
	Content    string `json:"content" binding:"required,max=5000"`
	JobID      *int64 `json:"job_id" binding:"omitempty,min=1"`
}

// Send godoc
// @Summary      Send a message
// @Description  Send a message to a user on the other side of the marketplace, optionally tied to a job
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body      SendMessageRequest  true  "Message payload"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /messages [post]
// @Security     BearerAuth
func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	msg, err := h.msgUC.SendMessage(c.Request.Context(), userID, req.ReceiverID, req.Content, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent", msg)
}

// ListConversations godoc
// @Summary      List conversations
// @Description  List conversation partners with the latest message and unread count
// @Tags         messages
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /conversations [get]
// @Security     BearerAuth
func (h *MessageHandler) ListConversations(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	convs, err := h.msgUC.ListConversations(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", convs)
}

// GetThread godoc
// @Summary      Get a conversation thread
// @Description  Return every message with the given user, oldest first; marks their messages as read
// @Tags         messages
// @Produce      json
// @Param        userId  path      int  true  "Other user ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /conversations/{userId} [get]
// @Security     BearerAuth
func (h *MessageHandler) GetThread(c *gin.Context) {
	otherID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	msgs, err := h.msgUC.GetThread(c.Request.Context(), userID, otherID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "OK", msgs)
}

// MarkRead godoc
// @Summary      Mark a conversation as read
// @Description  Mark every message from the given user to the caller as read
// @Tags         messages
// @Produce      json
// @Param        userId  path      int  true  "Other user ID"
// @Success      200     {object}  response.Response
// @Router       /conversations/{userId}/read [put]
// @Security     BearerAuth
func (h *MessageHandler) MarkRead(c *gin.Context) {
	otherID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.msgUC.MarkRead(c.Request.Context(), userID, otherID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Conversation marked as read", nil)
}
