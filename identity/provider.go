// Package identity is the boundary to the external identity provider.
// The rest of the server only sees two capabilities: resolving a
// bearer credential to a verified subject identifier, and verifying a
// signed webhook event. Everything provider-specific stays behind
// these interfaces.
package identity

import (
	"context"
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated means the credential is missing, malformed,
	// expired, or otherwise not attributable to a subject.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrMissingHeaders means the webhook request lacks one of the
	// three signature headers.
	ErrMissingHeaders = errors.New("missing webhook signature headers")

	// ErrInvalidSignature means the webhook payload failed
	// verification against the shared secret.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// Profile is the provider's view of a user, fetched on demand.
type Profile struct {
	ID    string
	Name  string
	Email string
}

// Provider resolves callers and fetches their profiles.
type Provider interface {
	// ResolveCaller verifies a bearer credential and returns the
	// subject identifier it belongs to, or ErrUnauthenticated.
	ResolveCaller(ctx context.Context, credential string) (string, error)

	// FetchProfile retrieves the provider-side profile for a subject.
	FetchProfile(ctx context.Context, subjectID string) (Profile, error)
}

// WebhookVerifier checks the signature on an inbound lifecycle event.
type WebhookVerifier interface {
	Verify(payload []byte, headers http.Header) (Event, error)
}

// Event is a verified user-lifecycle event from the provider.
type Event struct {
	Type string    `json:"type"`
	Data EventUser `json:"data"`
}

// EventUser is the user object embedded in lifecycle events.
type EventUser struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// PrimaryEmail returns the first email address on the event, or "".
func (u EventUser) PrimaryEmail() string {
	if len(u.EmailAddresses) == 0 {
		return ""
	}
	return u.EmailAddresses[0].EmailAddress
}

// FullName joins first and last name, falling back to whichever is
// present, then to a placeholder for users who set neither.
func (u EventUser) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return "New User"
	}
}
