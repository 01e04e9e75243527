package handler

import "github.com/gin-gonic/gin"

// Envelope is the uniform response shape for every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

func okMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: true, Message: message})
}

func okMessageData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Message: message})
}

// bindJSON decodes the request body into req. A missing or malformed body is
// not an error here: req stays zero-valued and the handler's own field
// validation produces the message.
func bindJSON(c *gin.Context, req any) {
	_ = c.ShouldBindJSON(req)
}
