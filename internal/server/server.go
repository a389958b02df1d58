// Package server exposes the CSTV driver over HTTP: a POST endpoint runs an
// election and returns the funded projects, a GET endpoint replays a past
// run from the store (when one is configured), and a websocket stream
// narrates a run's driver-loop trace as it happens.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pbvote/cstv/cstv"
	"github.com/pbvote/cstv/internal/applog"
	"github.com/pbvote/cstv/internal/electionio"
	"github.com/pbvote/cstv/internal/store"
	"github.com/pbvote/cstv/numeric"
	"github.com/pbvote/cstv/tiebreak"
)

// Handler holds the dependencies every route needs.
type Handler struct {
	hub   *Hub
	store *store.Store
}

// NewRouter builds the gin engine and wires every route. store may be nil,
// in which case GET /api/v1/elections/:id responds 503.
func NewRouter(st *store.Store) (*gin.Engine, *Hub) {
	hub := NewHub()
	go hub.Run()

	h := &Handler{hub: hub, store: st}

	r := gin.Default()
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", h.handleHealth)
		v1.GET("/stream", hub.Subscribe)
		v1.POST("/elections", h.handleRunElection)
		v1.GET("/elections/:id", h.handleGetElection)
	}
	return r, hub
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "operational",
		"storeEnabled": h.store != nil,
		"numericMode":  numericModeName(),
	})
}

func numericModeName() string {
	if numeric.CurrentMode() == numeric.ModeFloat {
		return "float"
	}
	return "exact"
}

func (h *Handler) handleRunElection(c *gin.Context) {
	log := applog.For("server")

	var req electionio.Spec
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	combination, err := cstv.ParseCombination(req.Combination)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	instance, profile, err := req.Build()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := cstv.Cstv(instance, profile,
		cstv.WithCombination(combination),
		cstv.WithTieBreaker(tiebreak.Default),
		cstv.WithTrace(h.hub.Trace),
	)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	names := make([]string, len(result))
	for i, id := range result {
		names[i] = instance.ByID(id).Name
	}

	response := gin.H{"selected": names}

	if h.store != nil {
		runID, err := h.store.SaveRun(c.Request.Context(), combination.String(), names)
		if err != nil {
			log.Warn("failed to persist run", "error", err)
		} else {
			response["runId"] = runID.String()
		}
	}

	c.JSON(http.StatusOK, response)
}

func (h *Handler) handleGetElection(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no run store configured"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid run id"})
		return
	}

	run, err := h.store.GetRun(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"runId":       run.ID.String(),
		"combination": run.Combination,
		"selected":    run.ProjectNames,
		"createdAt":   run.CreatedAt,
	})
}
