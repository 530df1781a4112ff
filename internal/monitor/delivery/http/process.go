package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"monitor-srv/internal/model"
	pkgErrors "monitor-srv/pkg/errors"
)

const (
	headerOrgID  = "X-Org-ID"
	headerUserID = "X-User-ID"
)

var errOrgRequired = pkgErrors.NewHTTPError(40001, "organization id is required", http.StatusBadRequest)

// processScope resolves the caller identity from the gateway headers.
// The upstream API gateway authenticates the user and forwards these.
func processScope(c *gin.Context) (model.Scope, error) {
	orgID := c.GetHeader(headerOrgID)
	if orgID == "" {
		return model.Scope{}, errOrgRequired
	}
	return model.Scope{
		OrgID:  orgID,
		UserID: c.GetHeader(headerUserID),
	}, nil
}
