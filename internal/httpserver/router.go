package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/spalhad/kvstore/internal/bouncer"
	"github.com/spalhad/kvstore/internal/key"
	"github.com/spalhad/kvstore/internal/metrics"
)

// NewRouter builds the gin.Engine for one node: logging and panic-recovery
// middleware, the kv/internal-kv/sync routes, and a Prometheus /metrics
// endpoint.
func NewRouter(bouncerHandle *bouncer.Handle, runID key.RunId) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(Recovery(), Logger())

	New(bouncerHandle, runID).Register(r)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	return r
}
