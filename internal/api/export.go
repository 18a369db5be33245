package api

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"

	"github.com/GriffinCanCode/asymintervals/ain"
)

// defaultExportCount applies when the count query parameter is absent.
const defaultExportCount = 1000

func queryFloat(c *gin.Context, key string) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, fmt.Errorf("%s query parameter required", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return v, nil
}

// ExportSamples streams CSV draws from an interval distribution.
// The interval comes from lower, upper and optional expected query
// parameters; count and seed control the draw. Responses are gzipped
// when the client accepts it.
func (h *Handlers) ExportSamples(c *gin.Context) {
	lower, err := queryFloat(c, "lower")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	upper, err := queryFloat(c, "upper")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var x ain.AIN
	if raw := c.Query("expected"); raw != "" {
		expected, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expected must be a number"})
			return
		}
		x, err = ain.New(lower, upper, expected)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		x, err = ain.NewMidpoint(lower, upper)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	count := defaultExportCount
	if raw := c.Query("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a positive integer"})
			return
		}
	}
	if count > h.maxSamples {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("count %d exceeds limit %d", count, h.maxSamples)})
		return
	}

	var rng *rand.Rand
	if raw := c.Query("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		rng = rand.New(rand.NewSource(seed))
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="samples.csv"`)

	var out io.Writer = c.Writer
	if strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
		c.Header("Content-Encoding", "gzip")
		c.Header("Vary", "Accept-Encoding")
		gz := gzip.NewWriter(c.Writer)
		defer gz.Close()
		out = gz
	}
	c.Status(http.StatusOK)

	w := csv.NewWriter(out)
	w.Write([]string{"index", "value"})
	for i := 0; i < count; i++ {
		w.Write([]string{
			strconv.Itoa(i),
			strconv.FormatFloat(x.Rand(rng), 'g', -1, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		c.Error(err)
		return
	}

	h.metrics.AddSamples(count)
}
