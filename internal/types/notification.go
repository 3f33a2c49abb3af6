package types

import (
	ierr "github.com/facturio/facturio/internal/errors"
)

// NotificationKind classifies a user-facing notice for rendering purposes
type NotificationKind string

const (
	NotificationKindSuccess NotificationKind = "success"
	NotificationKindInfo    NotificationKind = "info"
	NotificationKindWarning NotificationKind = "warning"
	NotificationKindError   NotificationKind = "error"
)

func (k NotificationKind) String() string {
	return string(k)
}

func (k NotificationKind) Validate() error {
	allowed := []NotificationKind{
		NotificationKindSuccess,
		NotificationKindInfo,
		NotificationKindWarning,
		NotificationKindError,
	}
	for _, kind := range allowed {
		if k == kind {
			return nil
		}
	}
	return ierr.NewError("invalid notification kind").
		WithHintf("Notification kind must be one of %v", allowed).
		Mark(ierr.ErrValidation)
}
