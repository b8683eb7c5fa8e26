package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPendingApproval signals correct credentials on an account whose role
	// still awaits admin approval. Deliberately distinct from
	// ErrInvalidCredentials so a legitimate unapproved partner is not
	// confused with a typo'd password.
	ErrPendingApproval       = errors.New("account awaiting admin approval")
	ErrInvalidToken          = errors.New("invalid token")
	ErrForbidden             = errors.New("access forbidden")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidRole           = errors.New("role not allowed for registration")
	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidApprovalTarget = errors.New("account role does not require approval")

	ErrClothNotFound        = errors.New("cloth not found")
	ErrWardrobeItemNotFound = errors.New("wardrobe item not found")
	ErrOccasionNotFound     = errors.New("occasion not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrWeatherNotFound      = errors.New("no cached weather for location")
)
