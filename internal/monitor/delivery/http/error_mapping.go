package http

import (
	"net/http"

	"monitor-srv/internal/monitor"
	pkgErrors "monitor-srv/pkg/errors"
	"monitor-srv/pkg/response"
)

var errorMapping = response.ErrorMapping{
	monitor.ErrTriggerNotFound:      pkgErrors.NewHTTPError(40401, "trigger not found", http.StatusNotFound),
	monitor.ErrAlertNotFound:        pkgErrors.NewHTTPError(40402, "alert not found", http.StatusNotFound),
	monitor.ErrAlertNotAcknowledged: pkgErrors.NewHTTPError(40901, "alert must be acknowledged first", http.StatusConflict),
	monitor.ErrInvalidCondition:     pkgErrors.NewHTTPError(40002, "invalid trigger condition", http.StatusBadRequest),
	monitor.ErrInvalidAction:        pkgErrors.NewHTTPError(40003, "invalid trigger action", http.StatusBadRequest),
	monitor.ErrInvalidPriority:      pkgErrors.NewHTTPError(40004, "invalid trigger priority", http.StatusBadRequest),
	monitor.ErrNameRequired:         pkgErrors.NewHTTPError(40005, "trigger name is required", http.StatusBadRequest),
	monitor.ErrNoAccounts:           pkgErrors.NewHTTPError(40006, "account list is empty", http.StatusBadRequest),
}
