package handlers

import (
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/motifworks/motif-api/internal/actions"
	"github.com/motifworks/motif-api/internal/compiler"
	"github.com/motifworks/motif-api/internal/config"
	"github.com/motifworks/motif-api/internal/logger"
	"github.com/motifworks/motif-api/internal/metrics"
	"github.com/motifworks/motif-api/internal/plan"
)

type CompileHandler struct {
	cfg *config.Config
	cw  *metrics.Client
}

func NewCompileHandler(cfg *config.Config, cw *metrics.Client) *CompileHandler {
	return &CompileHandler{cfg: cfg, cw: cw}
}

// Compile turns a free-text prompt plus editor context into a validated
// action sequence. The response shape is fixed: {summary, actions}, with
// actions empty but present even when everything goes wrong.
func (h *CompileHandler) Compile(c *gin.Context) {
	// The compiler itself is total; this guard covers everything else in
	// the handler so the caller always gets the contract shape back.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Compile: PANIC recovered: %v", r)
			log.Printf("   Stack trace:\n%s", string(debug.Stack()))
			log.Printf("   Request ID: %s", c.GetString("request_id"))
			c.JSON(http.StatusOK, compiler.Response{
				Summary: "Something went wrong while building your animation.",
				Actions: []actions.Action{},
			})
		}
	}()

	var req plan.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ Compile: JSON binding error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.Printf("📨 Compile: Received request")
	log.Printf("   Text length: %d", len(req.Text))
	log.Printf("   Context elements: %d (selected: %v)", len(req.Elements), req.Selected != nil)

	if len(req.Text) > h.cfg.MaxTextLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "text too long",
			"limit": h.cfg.MaxTextLength,
		})
		return
	}

	start := time.Now()
	resp := compiler.Compile(req)
	duration := time.Since(start)

	logger.LogCompileRequest(c, duration, len(resp.Actions), logger.Fields{
		"text_length": len(req.Text),
		"archetype":   string(resp.Archetype),
	})
	h.cw.RecordCompile(string(resp.Archetype), len(resp.Actions), duration, len(resp.Actions) > 0)

	log.Printf("✅ Compile: %d action(s) in %dms", len(resp.Actions), duration.Milliseconds())
	c.JSON(http.StatusOK, resp)
}
