// Package credcrypt decrypts the credential fields the commerce backend returns
// encrypted inside order-creation responses.
//
// Each field is base64(nonce || AES-256-GCM ciphertext) under a key derived from
// the application key with HKDF-SHA256.
package credcrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"storefront-bff/internal/pkg/errs"

	"golang.org/x/crypto/hkdf"
)

const keyInfo = "storefront/payment-creds"

var (
	ErrEmptyKey         = errors.New("application key is empty")
	ErrMalformedField   = errors.New("encrypted field is malformed")
	ErrDecryptionFailed = errors.New("encrypted field could not be decrypted")
)

type Decrypter struct {
	aead cipher.AEAD
}

func NewDecrypter(appKey string) (*Decrypter, error) {
	if appKey == "" {
		return nil, ErrEmptyKey
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(appKey), nil, []byte(keyInfo)), key); err != nil {
		return nil, errs.Wrap(err, "derive credential key")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errs.Wrap(err, "init cipher")
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errs.Wrap(err, "init gcm")
	}
	return &Decrypter{aead: aead}, nil
}

func (d *Decrypter) Decrypt(field string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(field)
	if err != nil {
		return "", errs.Mark(err, ErrMalformedField)
	}
	ns := d.aead.NonceSize()
	if len(raw) <= ns {
		return "", ErrMalformedField
	}
	plain, err := d.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", errs.Mark(err, ErrDecryptionFailed)
	}
	return string(plain), nil
}

// DecryptOptional leaves absent fields absent
func (d *Decrypter) DecryptOptional(field *string) (*string, error) {
	if field == nil || *field == "" {
		return nil, nil
	}
	v, err := d.Decrypt(*field)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Encrypt produces the wire form. The backend owns encryption; this exists for fixtures and fakes.
func (d *Decrypter) Encrypt(plain string) (string, error) {
	nonce := make([]byte, d.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", errs.Wrap(err, "nonce")
	}
	sealed := d.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}
