package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-ID"

// responder writes JSON when the client accepts it and plain text otherwise.
// A request id, once attached, is echoed in the X-Request-ID header and the body.
type responder struct {
	c         *gin.Context
	requestID string
}

func (r responder) withRequestID(id string) responder {
	r.requestID = id
	r.c.Header(requestIDHeader, id)
	return r
}

func (r responder) wantsJSON() bool {
	return strings.Contains(strings.ToLower(r.c.GetHeader("Accept")), "application/json")
}

func (r responder) err(status int, msg string) {
	if r.wantsJSON() {
		r.c.JSON(status, gin.H{"error": msg})
		return
	}
	r.c.String(status, msg)
}

func (r responder) ok(text string, payload gin.H) {
	if !r.wantsJSON() {
		if r.requestID != "" {
			text += "\nrequest_id: " + r.requestID
		}
		r.c.String(http.StatusOK, text)
		return
	}

	out := make(gin.H, len(payload)+1)
	for k, v := range payload {
		out[k] = v
	}
	if r.requestID != "" {
		out["request_id"] = r.requestID
	}
	r.c.JSON(http.StatusOK, out)
}
