package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wanderlustbites/content-service/internal/constant"
	"github.com/wanderlustbites/content-service/internal/mailer"
	"github.com/wanderlustbites/content-service/internal/model/response"
)

type ContactHandler struct {
	mailer mailer.Mailer
	log    *zap.Logger
}

func NewContactHandler(m mailer.Mailer, log *zap.Logger) *ContactHandler {
	if log == nil {
		log = zap.L()
	}
	return &ContactHandler{mailer: m, log: log}
}

type ContactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Send godoc
//
//	@Summary		Send contact message
//	@Description	Forwards a contact-form submission to the site owner's inbox
//	@Tags			Contact
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ContactRequest	true	"Contact payload"
//	@Success		200		{object}	response.ResponseData
//	@Failure		400		{object}	response.ResponseData
//	@Router			/contact [post]
func (h *ContactHandler) Send(c *gin.Context) {
	body := c.MustGet("validatedBody").(ContactRequest)

	id, err := h.mailer.SendContactMessage(c.Request.Context(), mailer.ContactMessage{
		Name:    body.Name,
		Email:   body.Email,
		Message: body.Message,
	})
	if err != nil {
		h.log.Error("contact mail failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, constant.MAIL_SEND_FAILED)
		return
	}

	c.JSON(http.StatusOK, response.ResponseData{
		Ec:   http.StatusOK,
		Msg:  "Email sent successfully",
		Data: gin.H{"id": id},
	})
}
