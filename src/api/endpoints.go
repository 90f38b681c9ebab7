package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lost-woods/mechanica/src/rng"
)

const (
	maxBytes      = 256
	maxStringSize = 256
	maxItems      = 1000
)

// RandomNumber draws an integer of the requested width from [min, max).
func (h *Handlers) RandomNumber(c *gin.Context) {
	typ := c.DefaultQuery("type", "int")
	minStr := c.DefaultQuery("min", "0")
	maxStr := c.DefaultQuery("max", "100")

	draw, err := lookupDraw(typ)
	if err != nil {
		responder{c: c}.err(http.StatusBadRequest, badRequestMessages[err])
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		lo, hi, n, err := draw(h.src, minStr, maxStr)
		if msg, ok := badRequestMessages[err]; ok {
			return "", nil, http.StatusBadRequest, msg
		}
		if err != nil {
			return h.entropyFailed(err)
		}

		return fmt.Sprintf("%d", n),
			gin.H{"number": n, "type": typ, "min": lo, "max": hi},
			0, ""
	})
}

func (h *Handlers) RandomBytes(c *gin.Context) {
	size, err := strconv.Atoi(c.DefaultQuery("size", "1"))
	if err != nil || size < 1 || size > maxBytes {
		responder{c: c}.err(http.StatusBadRequest,
			fmt.Sprintf("Size must be an integer between 1 and %d.", maxBytes))
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		buf, err := rng.Bytes(h.src, size)
		if err != nil {
			return h.entropyFailed(err)
		}

		hex := fmt.Sprintf("%x", buf)
		return hex, gin.H{"bytes": hex, "size": size}, 0, ""
	})
}

func (h *Handlers) RandomStrings(c *gin.Context) {
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 || size > maxStringSize {
		responder{c: c}.err(http.StatusBadRequest, "Invalid size.")
		return
	}

	flags := map[string]bool{}
	for _, name := range []string{"lowercase", "uppercase", "numbers", "symbols"} {
		v, err := strconv.ParseBool(c.DefaultQuery(name, "true"))
		if err != nil {
			responder{c: c}.err(http.StatusBadRequest, "Invalid "+name+" flag.")
			return
		}
		flags[name] = v
	}

	charset := rng.BuildCharset(flags["lowercase"], flags["uppercase"], flags["numbers"], flags["symbols"])
	if len(charset) == 0 {
		responder{c: c}.err(http.StatusBadRequest, "At least one flag must be set.")
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		s, err := rng.String(h.src, charset, size)
		if err != nil {
			return h.entropyFailed(err)
		}

		return s, gin.H{
			"string":    s,
			"size":      size,
			"lowercase": flags["lowercase"],
			"uppercase": flags["uppercase"],
			"numbers":   flags["numbers"],
			"symbols":   flags["symbols"],
		}, 0, ""
	})
}

// RandomShuffle picks count items (default: all) from a comma separated list, without replacement.
func (h *Handlers) RandomShuffle(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("items"))
	if raw == "" {
		responder{c: c}.err(http.StatusBadRequest, "At least one item is required.")
		return
	}

	items := strings.Split(raw, ",")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	if len(items) > maxItems {
		responder{c: c}.err(http.StatusBadRequest, fmt.Sprintf("At most %d items are allowed.", maxItems))
		return
	}

	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(len(items))))
	if err != nil || count < 1 {
		responder{c: c}.err(http.StatusBadRequest, "Invalid count.")
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		picked, err := rng.Sample(h.src, items, count)
		if errors.Is(err, rng.ErrSampleSize) {
			return "", nil, http.StatusBadRequest,
				"There are more items to pick than items in the list."
		}
		if err != nil {
			return h.entropyFailed(err)
		}

		return strings.Join(picked, "\n"), gin.H{
			"items": len(items),
			"count": count,
			"drawn": picked,
		}, 0, ""
	})
}

func (h *Handlers) RandomPercent(c *gin.Context) {
	percentStr := c.DefaultQuery("percent", "25")

	h.handleRNG(c, func() (string, gin.H, int, string) {
		num, den, err := rng.ParsePercentExact(percentStr)
		if err != nil {
			return "", nil, http.StatusBadRequest, err.Error()
		}

		roll, pass, err := rng.Chance(h.src, num, den)
		if err != nil {
			return h.entropyFailed(err)
		}

		result := "Fail"
		if pass {
			result = "Pass"
		}

		text := fmt.Sprintf("Rolled %d from %d/%d\n%s", roll, num, den, result)
		return text, gin.H{
			"percent": percentStr,
			"success": num,
			"out_of":  den,
			"roll":    roll,
			"pass":    pass,
		}, 0, ""
	})
}

func (h *Handlers) RandomUUID(c *gin.Context) {
	h.handleRNG(c, func() (string, gin.H, int, string) {
		id, err := rng.NewUUID(h.src)
		if err != nil {
			return h.entropyFailed(err)
		}
		return id, gin.H{"uuid": id}, 0, ""
	})
}

func (h *Handlers) Health(c *gin.Context) {
	if h.health == nil {
		responder{c: c}.err(http.StatusServiceUnavailable, "UNHEALTHY: missing health monitor")
		return
	}

	ok, msg, t := h.health.Snapshot()
	if ok {
		responder{c: c}.ok(
			fmt.Sprintf("OK (last checked %s)", t.Format(time.RFC3339)),
			gin.H{"ok": true, "last_checked": t.Format(time.RFC3339)},
		)
		return
	}

	responder{c: c}.err(http.StatusServiceUnavailable,
		fmt.Sprintf("UNHEALTHY: %s (last checked %s)", msg, t.Format(time.RFC3339)))
}
