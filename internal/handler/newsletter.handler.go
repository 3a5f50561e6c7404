package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wanderlustbites/content-service/internal/cms"
	"github.com/wanderlustbites/content-service/internal/constant"
	"github.com/wanderlustbites/content-service/internal/model/response"
)

type NewsletterHandler struct {
	cms *cms.Client
	log *zap.Logger
}

func NewNewsletterHandler(client *cms.Client, log *zap.Logger) *NewsletterHandler {
	if log == nil {
		log = zap.L()
	}
	return &NewsletterHandler{cms: client, log: log}
}

type SubscribeRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Subscribe godoc
//
//	@Summary		Subscribe to newsletter
//	@Description	Registers a newsletter subscriber. An already-subscribed email is rejected.
//	@Tags			Newsletter
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SubscribeRequest	true	"Subscribe payload"
//	@Success		200		{object}	response.ResponseData
//	@Failure		400		{object}	response.ResponseData
//	@Router			/newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	body := c.MustGet("validatedBody").(SubscribeRequest)
	ctx := c.Request.Context()

	_, err := h.cms.GetSubscriberByEmail(ctx, body.Email)
	if err == nil {
		c.JSON(http.StatusBadRequest, constant.EMAIL_ALREADY_SUBSCRIBED)
		return
	}
	if !errors.Is(err, cms.ErrNotFound) {
		h.log.Error("subscriber lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, constant.SUBSCRIBE_FAILED)
		return
	}

	if _, err := h.cms.CreateSubscriber(ctx, body.Name, body.Email); err != nil {
		h.log.Error("subscriber create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, constant.SUBSCRIBE_FAILED)
		return
	}

	c.JSON(http.StatusOK, response.ResponseData{
		Ec:  http.StatusOK,
		Msg: "Successfully subscribed to newsletter",
	})
}
