package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spalhad/kvstore/internal/kverrors"
)

// writeError renders err as {"trace": [...]} and picks a status code per
// its type: bouncer errors are client errors (the caller is hitting the
// node too early or with a bad run id), a missing key is 404, and anything
// else — including a failed quorum — is a 500.
func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"trace": kverrors.Trace(err)})
}

func statusFor(err error) int {
	var (
		notActive     kverrors.NotActive
		alreadyActive kverrors.AlreadyActive
		badRunID      kverrors.BadRunId
		notFound      kverrors.KeyNotFound
	)
	switch {
	case errors.As(err, &notActive), errors.As(err, &alreadyActive), errors.As(err, &badRunID):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
