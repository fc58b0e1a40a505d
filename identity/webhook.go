package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Webhook deliveries older or newer than this are rejected to limit
// replay windows.
const webhookTolerance = 5 * time.Minute

// SvixVerifier checks the svix-style signature Clerk puts on webhook
// deliveries: HMAC-SHA256 over "<id>.<timestamp>.<body>" keyed with
// the base64 portion of the "whsec_…" secret.
type SvixVerifier struct {
	key []byte
	now func() time.Time
}

// NewSvixVerifier decodes the shared secret. The "whsec_" prefix is
// optional.
func NewSvixVerifier(secret string) (*SvixVerifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("webhook secret not set")
	}
	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "whsec_"))
	if err != nil {
		return nil, fmt.Errorf("malformed webhook secret: %w", err)
	}
	return &SvixVerifier{key: key, now: time.Now}, nil
}

// Verify checks the three signature headers against the raw payload
// and, on success, decodes the event.
func (v *SvixVerifier) Verify(payload []byte, headers http.Header) (Event, error) {
	id := headers.Get("svix-id")
	timestamp := headers.Get("svix-timestamp")
	signatures := headers.Get("svix-signature")
	if id == "" || timestamp == "" || signatures == "" {
		return Event{}, ErrMissingHeaders
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return Event{}, ErrInvalidSignature
	}
	age := v.now().Sub(time.Unix(ts, 0))
	if age > webhookTolerance || age < -webhookTolerance {
		return Event{}, ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, v.key)
	fmt.Fprintf(mac, "%s.%s.", id, timestamp)
	mac.Write(payload)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	// The header carries a space-separated list of "v1,<sig>" entries
	// so the secret can be rotated without dropping deliveries.
	valid := false
	for _, entry := range strings.Split(signatures, " ") {
		version, sig, found := strings.Cut(entry, ",")
		if !found || version != "v1" {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(expected)) {
			valid = true
		}
	}
	if !valid {
		return Event{}, ErrInvalidSignature
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return Event{}, fmt.Errorf("failed to parse webhook payload: %w", err)
	}
	return event, nil
}
