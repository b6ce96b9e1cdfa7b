package store

import "errors"

// Sentinel errors for comparison using errors.Is()
var (
	// ErrNoActiveSession is returned by PlaceOrder when nobody is
	// logged in. Callers should prompt for login and retry.
	ErrNoActiveSession = errors.New("no active session")

	// ErrEmptyCart is returned by PlaceOrder when the cart has no lines.
	ErrEmptyCart = errors.New("cart is empty")
)
