package auth

import (
	"fmt"
	"time"
)

// Credentials is the opaque payload forwarded to the identity
// provider.
type Credentials struct {
	Email    string
	Password string
}

// Identity is what the provider returns on a successful login.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// Session is a signed token the dashboard hands back to the caller.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// FailureKind categorizes a provider-raised failure.
type FailureKind int

const (
	// FailureInvalidCredentials is a credential mismatch: the user
	// can correct and resubmit.
	FailureInvalidCredentials FailureKind = iota

	// FailureUnavailable covers every other failure the provider
	// raised or the transport produced reaching it.
	FailureUnavailable
)

// ProviderError marks a failure as originating from the identity
// provider. Errors that are not ProviderErrors are defects and must
// not be presented as form errors.
type ProviderError struct {
	Kind FailureKind
	Err  error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// LoginError carries the single user-facing message a classified
// login failure maps to.
type LoginError struct {
	Message string
}

func (e *LoginError) Error() string { return e.Message }
