package encoding

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Signer produces tamper-proof tokens of msgpack-encoded values. Tokens are
// visible to clients (base64 payload + truncated HMAC-SHA256) but cannot be
// altered without the key.
type Signer struct {
	key []byte
}

// NewSigner creates a signer. Keys shorter than 32 bytes are stretched with
// SHA-256.
func NewSigner(key []byte) *Signer {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}
	return &Signer{key: key}
}

// Sign encodes v with msgpack and returns payload.signature.
func (s *Signer) Sign(v any) (string, error) {
	packed, err := msgpack.Marshal(v)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(packed)
	sig := base64.RawURLEncoding.EncodeToString(s.mac(packed))
	return payload + "." + sig, nil
}

// Verify checks a token produced by Sign and decodes its payload into v.
func (s *Signer) Verify(token string, v any) error {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok {
		return fmt.Errorf("%w: missing signature", ErrInvalidFormat)
	}
	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if !hmac.Equal(got, s.mac(data)) {
		return ErrSignatureInvalid
	}
	if err := msgpack.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

func (s *Signer) mac(data []byte) []byte {
	m := hmac.New(sha256.New, s.key)
	m.Write(data)
	return m.Sum(nil)[:16]
}
