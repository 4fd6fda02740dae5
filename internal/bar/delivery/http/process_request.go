package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds and validates the chat request body.
// A body that is not JSON is reported the same way as a missing message.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "bar.delivery.http.processChatReq: %v", err)
		return req, errMessageRequired
	}
	return req, req.validate()
}
