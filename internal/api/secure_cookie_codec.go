package api

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	secureCookieVersion  = "v1"
	secureCookieKeyLabel = "portal.secure-cookie.v1"
	secureCookieAADLabel = "portal.cookie."
)

var errInvalidSecureCookieValue = errors.New("invalid secure cookie value")

// secureCookieCodec seals msgpack-encoded values with AES-GCM. The purpose
// is bound as additional data, so a value sealed for one cookie cannot be
// replayed into another.
type secureCookieCodec struct {
	aead cipher.AEAD
}

func newSecureCookieCodec(secretKey []byte) (*secureCookieCodec, error) {
	if len(secretKey) == 0 {
		return nil, errors.New("secure cookie secret key is required")
	}

	material := append([]byte(secureCookieKeyLabel), secretKey...)
	derivedKey := sha256.Sum256(material)
	block, err := aes.NewCipher(derivedKey[:])
	if err != nil {
		return nil, fmt.Errorf("init secure cookie cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init secure cookie aead: %w", err)
	}
	return &secureCookieCodec{aead: aead}, nil
}

func (codec *secureCookieCodec) seal(purpose string, value any) (string, error) {
	aad, err := secureCookieAAD(purpose)
	if err != nil {
		return "", err
	}

	plaintext, err := msgpack.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode secure cookie: %w", err)
	}

	nonce := make([]byte, codec.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate secure cookie nonce: %w", err)
	}
	sealed := codec.aead.Seal(nonce, nonce, plaintext, aad)
	return secureCookieVersion + "." + base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (codec *secureCookieCodec) open(purpose string, rawValue string, out any) error {
	aad, err := secureCookieAAD(purpose)
	if err != nil {
		return err
	}

	version, encoded, found := strings.Cut(strings.TrimSpace(rawValue), ".")
	if !found || version != secureCookieVersion || encoded == "" {
		return errInvalidSecureCookieValue
	}
	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return errInvalidSecureCookieValue
	}

	nonceSize := codec.aead.NonceSize()
	if len(payload) <= nonceSize {
		return errInvalidSecureCookieValue
	}
	plaintext, err := codec.aead.Open(nil, payload[:nonceSize], payload[nonceSize:], aad)
	if err != nil {
		return errInvalidSecureCookieValue
	}
	if err := msgpack.Unmarshal(plaintext, out); err != nil {
		return errInvalidSecureCookieValue
	}
	return nil
}

func secureCookieAAD(purpose string) ([]byte, error) {
	trimmed := strings.TrimSpace(purpose)
	if trimmed == "" {
		return nil, errors.New("secure cookie purpose is required")
	}
	return []byte(secureCookieAADLabel + trimmed), nil
}
