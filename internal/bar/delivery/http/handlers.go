package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"autonomous-barman/pkg/response"
)

// Chat godoc
// @Summary     Chat with the barman
// @Description Answers one customer message. When the order is confirmed the drink is sent to the dispenser in the same request.
// @Tags        Bar
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and prior conversation"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.ErrorBody "Message missing"
// @Failure     429 {object} response.ErrorBody "Too many requests"
// @Failure     502 {object} response.ErrorBody "Language model unavailable"
// @Failure     500 {object} response.ErrorBody "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.BareError(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.BareError(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}

// ListCocktails godoc
// @Summary     List cocktails
// @Description Returns the menu in presentation order with per-ingredient pump availability.
// @Tags        Bar
// @Produce     json
// @Success     200 {object} listCocktailsResp
// @Router      /api/v1/cocktails [GET]
func (h *handler) ListCocktails(c *gin.Context) {
	response.OK(c, h.newListCocktailsResp(h.uc.ListCocktails(c.Request.Context())))
}

// DispenserStatus godoc
// @Summary     Dispenser status
// @Description Proxies the controller queue and health. An unreachable controller is reported as offline, not as an error.
// @Tags        Bar
// @Produce     json
// @Success     200 {object} dispenserStatusResp
// @Router      /api/v1/dispenser/status [GET]
func (h *handler) DispenserStatus(c *gin.Context) {
	response.OK(c, h.newDispenserStatusResp(h.uc.DispenserStatus(c.Request.Context()), time.Now()))
}
