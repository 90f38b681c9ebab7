package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lost-woods/mechanica/src/rng"
)

type Handlers struct {
	src    rng.Source
	health *rng.Health
	log    *zap.SugaredLogger
}

func NewHandlers(src rng.Source, h *rng.Health, log *zap.SugaredLogger) *Handlers {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Handlers{src: src, health: h, log: log}
}

func (h *Handlers) rngOK(c *gin.Context) bool {
	if h.health == nil {
		responder{c: c}.err(http.StatusServiceUnavailable, "RNG unhealthy: missing health monitor")
		return false
	}

	ok, msg, _ := h.health.Snapshot()
	if ok {
		return true
	}

	responder{c: c}.err(http.StatusServiceUnavailable, "RNG unhealthy: "+msg)
	return false
}

/*
handleRNG enforces:
1. RNG health check
2. Outcome computation (no request id yet)
3. Error handling
4. Request id drawn only after success
5. JSON vs plaintext response
*/
func (h *Handlers) handleRNG(
	c *gin.Context,
	work func() (text string, payload gin.H, status int, errMsg string),
) {
	if !h.rngOK(c) {
		return
	}

	text, payload, status, errMsg := work()
	if errMsg != "" {
		responder{c: c}.err(status, errMsg)
		return
	}

	requestID, err := rng.NewUUID(h.src)
	if err != nil {
		h.log.Errorw("request id generation failed", "error", err)
		responder{c: c}.err(http.StatusInternalServerError, "Error generating request id.")
		return
	}

	responder{c: c}.withRequestID(requestID).ok(text, payload)
}

func (h *Handlers) entropyFailed(err error) (string, gin.H, int, string) {
	h.log.Errorw("entropy source failed", "error", err)
	return "", nil, http.StatusInternalServerError, "Error fetching random bytes."
}

func CheckHeader(headerName, expectedValue string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Auth disabled if not configured
		if expectedValue == "" {
			c.Next()
			return
		}

		if c.GetHeader(headerName) != expectedValue {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
