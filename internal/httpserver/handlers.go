// Package httpserver mounts the node's HTTP surface: the public kv routes
// and internal-kv routes (both gated by the bouncer), and the unguarded
// sync plane used for cluster bootstrapping.
package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spalhad/kvstore/internal/bouncer"
	"github.com/spalhad/kvstore/internal/key"
	"github.com/spalhad/kvstore/internal/kverrors"
)

// Handler holds what the routes need: the bouncer handle gating this node's
// storage and coordinator, and this process's run id served on
// /sync/run_id.
type Handler struct {
	bouncer *bouncer.Handle
	runID   key.RunId
}

// New builds a Handler.
func New(bouncerHandle *bouncer.Handle, runID key.RunId) *Handler {
	return &Handler{bouncer: bouncerHandle, runID: runID}
}

// Register mounts every route on r.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/kv/:key", h.getPublic)
	r.PUT("/kv/:key", h.putPublic)

	r.GET("/internal-kv/:key", h.getInternal)
	r.PUT("/internal-kv/:key", h.putInternal)

	r.GET("/sync/run_id", h.syncRunID)
	r.POST("/sync/activate", h.syncActivate)
	r.GET("/sync/active", h.syncActive)

	r.GET("/health", h.health)
}

type putRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

func parseKey(c *gin.Context) (key.Key, bool) {
	k, err := key.FromHex(c.Param("key"))
	if err != nil {
		writeError(c, err)
		return key.Key{}, false
	}
	return k, true
}

func (h *Handler) getPublic(c *gin.Context) {
	k, ok := parseKey(c)
	if !ok {
		return
	}
	value, found, err := bouncer.Get(c.Request.Context(), h.bouncer, k)
	h.writeGetResult(c, k, value, found, err)
}

func (h *Handler) putPublic(c *gin.Context) {
	k, ok := parseKey(c)
	if !ok {
		return
	}
	var body putRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"trace": []string{err.Error()}})
		return
	}
	isNew, err := bouncer.Put(c.Request.Context(), h.bouncer, k, body.Value)
	h.writePutResult(c, isNew, err)
}

func (h *Handler) getInternal(c *gin.Context) {
	k, ok := parseKey(c)
	if !ok {
		return
	}
	value, found, err := bouncer.GetLocal(c.Request.Context(), h.bouncer, k)
	h.writeGetResult(c, k, value, found, err)
}

func (h *Handler) putInternal(c *gin.Context) {
	k, ok := parseKey(c)
	if !ok {
		return
	}
	var body putRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"trace": []string{err.Error()}})
		return
	}
	isNew, err := bouncer.PutLocal(c.Request.Context(), h.bouncer, k, body.Value)
	h.writePutResult(c, isNew, err)
}

func (h *Handler) writeGetResult(c *gin.Context, k key.Key, value json.RawMessage, found bool, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		writeError(c, kverrors.KeyNotFound{Key: k.String()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": value})
}

func (h *Handler) writePutResult(c *gin.Context, isNew bool, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"new": isNew})
}

// syncRunID handles GET /sync/run_id. Deliberately not bouncer-gated: a
// node must be identifiable before it is active, both to peers and to its
// own self-activation check.
func (h *Handler) syncRunID(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"run_id": h.runID.String()})
}

// syncActivate handles POST /sync/activate.
func (h *Handler) syncActivate(c *gin.Context) {
	var body struct {
		RunID string `json:"run_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"trace": []string{err.Error()}})
		return
	}

	runID, err := key.RunIdFromHex(body.RunID)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := bouncer.Activate(c.Request.Context(), h.bouncer, runID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_active": true})
}

// syncActive handles GET /sync/active.
func (h *Handler) syncActive(c *gin.Context) {
	active, err := bouncer.IsActive(c.Request.Context(), h.bouncer)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_active": active})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
