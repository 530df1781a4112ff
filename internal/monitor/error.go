package monitor

import "errors"

var (
	ErrTriggerNotFound      = errors.New("trigger not found")
	ErrAlertNotFound        = errors.New("alert not found")
	ErrAlertNotAcknowledged = errors.New("alert not acknowledged")
	ErrInvalidCondition     = errors.New("invalid trigger condition")
	ErrInvalidAction        = errors.New("invalid trigger action")
	ErrInvalidPriority      = errors.New("invalid trigger priority")
	ErrNameRequired         = errors.New("trigger name is required")
	ErrNoAccounts           = errors.New("account list is empty")
)
