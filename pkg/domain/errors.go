package domain

import "studiohub/pkg/serrors"

// Validation failures. All of them are ErrBadRequest kinds.
var (
	ErrGalleryCodeEmpty         = serrors.With(serrors.ErrBadRequest, "gallery code is empty")
	ErrGalleryCodeInvalidFormat = serrors.With(serrors.ErrBadRequest, "gallery code must be 4-12 letters or digits")
	ErrSlugInvalid              = serrors.With(serrors.ErrBadRequest,
		"slug must be 3-63 lowercase letters, digits or single hyphens")
	ErrSlugReserved      = serrors.With(serrors.ErrBadRequest, "slug is reserved")
	ErrEmailInvalid      = serrors.With(serrors.ErrBadRequest, "email address is invalid")
	ErrTierInvalid       = serrors.With(serrors.ErrBadRequest, "unknown subscription tier")
	ErrRoleInvalid       = serrors.With(serrors.ErrBadRequest, "unknown role")
	ErrNegativePrice     = serrors.With(serrors.ErrBadRequest, "price must not be negative")
	ErrQuantityInvalid   = serrors.With(serrors.ErrBadRequest, "quantity must be between 1 and 10000")
	ErrAmountOverflow    = serrors.With(serrors.ErrBadRequest, "order amount is too large")
	ErrNoOrderItems      = serrors.With(serrors.ErrBadRequest, "order has no items")
	ErrTitleRequired     = serrors.With(serrors.ErrBadRequest, "title is required")
	ErrVisibilityInvalid = serrors.With(serrors.ErrBadRequest, "unknown gallery visibility")
	ErrIDInvalid         = serrors.With(serrors.ErrBadRequest, "malformed identifier")
)

// Conflicts with current state.
var (
	// ErrCodeGenerationExhausted means every generated gallery code collided.
	// It is safe to retry the request.
	ErrCodeGenerationExhausted = serrors.With(serrors.ErrConflict,
		"could not allocate a unique gallery code, please retry")
	ErrInvalidTransition = serrors.With(serrors.ErrConflict, "status transition is not allowed")
)

// Missing or invisible entities.
var (
	ErrTenantNotFound  = serrors.With(serrors.ErrNotFound, "studio not found")
	ErrGalleryNotFound = serrors.With(serrors.ErrNotFound, "gallery not found")
	ErrPhotoNotFound   = serrors.With(serrors.ErrNotFound, "photo not found")
	ErrProductNotFound = serrors.With(serrors.ErrNotFound, "product not found")
	ErrOrderNotFound   = serrors.With(serrors.ErrNotFound, "order not found")
	ErrUserNotFound    = serrors.With(serrors.ErrNotFound, "user not found")
)
