package ens

import (
	"errors"
	"fmt"
)

var (
	// ErrNoNetwork denotes that no network is selected and no registry
	// override was given, so there is no registry to query.
	ErrNoNetwork = errors.New("no network selected and no registry override")
	// ErrUnknownName denotes that the name or address could not be
	// resolved: the registry lookup failed, the wildcard fallback chain
	// was exhausted, or an unrecognized failure occurred downstream.
	ErrUnknownName = errors.New("unknown name")
	// ErrInvalidInput denotes a malformed name or address.
	ErrInvalidInput = errors.New("invalid name or address")
	// ErrDecode denotes that a contract response could not be decoded.
	ErrDecode = errors.New("couldn't decode contract response")
	// ErrTooManyRedirections denotes that an offchain lookup needed more
	// gateway redirects than the configured maximum.
	ErrTooManyRedirections = errors.New("too many offchain redirections")
)

func isResolutionErr(err error) bool {
	return errors.Is(err, ErrNoNetwork) ||
		errors.Is(err, ErrUnknownName) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrDecode) ||
		errors.Is(err, ErrTooManyRedirections)
}

// coerceErr makes sure callers only ever observe the error kinds above:
// recognized errors pass through unchanged, anything else becomes
// ErrUnknownName with the cause kept in the message.
func coerceErr(err error) error {
	if err == nil {
		return nil
	}
	if isResolutionErr(err) {
		return err
	}
	return fmt.Errorf("%w: %s", ErrUnknownName, err)
}
