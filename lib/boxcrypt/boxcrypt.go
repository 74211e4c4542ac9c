// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package boxcrypt provides NaCl box decryption for marketplace cluster
// credentials. It wraps golang.org/x/crypto/nacl/box for the specific
// operations volt needs: generate keypairs, and open credential payloads
// encrypted by the marketplace to the holder's public key.
//
// The server encrypts each credential secret with an ephemeral sender
// keypair; the credential record carries the ciphertext, the 24-byte
// nonce, and the ephemeral public key, all base64-encoded. The base64
// handling lives here — callers pass the record's string fields in and
// get plaintext out.
//
// Private keys and decrypted plaintext are returned as *secret.Buffer
// values, which are backed by mmap memory outside the Go heap (locked
// against swap, excluded from core dumps, zeroed on close).
package boxcrypt

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/nacl/box"

	"github.com/voltmarket/volt/lib/secret"
)

// Keypair holds an x25519 keypair for the NaCl box construction. The
// private key is stored in a secret.Buffer (mmap-backed, locked against
// swap, excluded from core dumps). The public key is a plain base64
// string, safe to publish to the marketplace API.
//
// The caller must call Close when the keypair is no longer needed.
type Keypair struct {
	// PrivateKey is the base64-encoded 32-byte secret key, stored in
	// mmap memory outside the Go heap. Must never be logged or included
	// in CLI arguments.
	PrivateKey *secret.Buffer

	// PublicKey is the base64-encoded 32-byte public key. The
	// marketplace encrypts cluster credentials to this key.
	PublicKey string
}

// Close releases the private key memory (zeros, unlocks, unmaps).
// Idempotent — safe to call multiple times.
func (k *Keypair) Close() error {
	if k.PrivateKey != nil {
		return k.PrivateKey.Close()
	}
	return nil
}

// DecryptionError indicates that a ciphertext failed authenticated
// decryption: the payload was tampered with, or it was encrypted to a
// different key. Callers distinguish this from malformed-input errors
// (bad base64, wrong key length) with errors.As — a DecryptionError on
// one credential record is expected and non-fatal, while malformed
// input usually points at a corrupt key file.
type DecryptionError struct {
	Reason string
}

func (e *DecryptionError) Error() string {
	return "boxcrypt: " + e.Reason
}

// GenerateKeypair generates a new x25519 keypair. The private key is
// returned in a secret.Buffer holding its base64 encoding, matching the
// on-disk key format.
//
// The caller must call Close on the returned Keypair when done.
func GenerateKeypair() (*Keypair, error) {
	publicKey, privateKey, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating box keypair: %w", err)
	}

	// Move the private key into mmap-backed memory immediately.
	// NewFromBytes zeros the heap copy.
	encoded := []byte(base64.StdEncoding.EncodeToString(privateKey[:]))
	secret.Zero(privateKey[:])
	buffer, err := secret.NewFromBytes(encoded)
	if err != nil {
		return nil, fmt.Errorf("protecting private key: %w", err)
	}

	return &Keypair{
		PrivateKey: buffer,
		PublicKey:  base64.StdEncoding.EncodeToString(publicKey[:]),
	}, nil
}

// Decrypt opens a NaCl box credential payload. All four inputs are
// base64 strings: the ciphertext, the 24-byte nonce, the sender's
// ephemeral public key (both from the credential record), and the
// recipient's private key. Returns the plaintext in a secret.Buffer
// (mmap-backed, zeroed on close).
//
// Authentication failures return a *DecryptionError. Malformed inputs
// (invalid base64, wrong key or nonce length) return ordinary errors.
//
// The private key is borrowed and is NOT closed by this function. The
// caller must call Close on the returned buffer.
func Decrypt(ciphertext, nonce, senderPublicKey string, privateKey *secret.Buffer) (*secret.Buffer, error) {
	rawCiphertext, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 ciphertext: %w", err)
	}

	rawNonce, err := base64.StdEncoding.DecodeString(nonce)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 nonce: %w", err)
	}
	if len(rawNonce) != 24 {
		return nil, fmt.Errorf("nonce is %d bytes, want 24", len(rawNonce))
	}

	rawSenderKey, err := base64.StdEncoding.DecodeString(senderPublicKey)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 sender public key: %w", err)
	}
	if len(rawSenderKey) != 32 {
		return nil, fmt.Errorf("sender public key is %d bytes, want 32", len(rawSenderKey))
	}

	// Decode the private key at the API boundary — box.Open needs the
	// raw 32 bytes. The heap copy is zeroed before returning.
	rawPrivateKey, err := base64.StdEncoding.DecodeString(privateKey.String())
	if err != nil {
		return nil, fmt.Errorf("decoding base64 private key: %w", err)
	}
	if len(rawPrivateKey) != 32 {
		secret.Zero(rawPrivateKey)
		return nil, fmt.Errorf("private key is %d bytes, want 32", len(rawPrivateKey))
	}

	var nonceArray [24]byte
	var senderKeyArray, privateKeyArray [32]byte
	copy(nonceArray[:], rawNonce)
	copy(senderKeyArray[:], rawSenderKey)
	copy(privateKeyArray[:], rawPrivateKey)
	secret.Zero(rawPrivateKey)
	defer secret.Zero(privateKeyArray[:])

	plaintext, ok := box.Open(nil, rawCiphertext, &nonceArray, &senderKeyArray, &privateKeyArray)
	if !ok {
		return nil, &DecryptionError{Reason: "authentication failed (tampered payload or wrong key)"}
	}

	// Move the decrypted plaintext into mmap-backed memory immediately.
	// NewFromBytes zeros the heap copy.
	buffer, err := secret.NewFromBytes(plaintext)
	if err != nil {
		secret.Zero(plaintext)
		return nil, fmt.Errorf("protecting decrypted plaintext: %w", err)
	}
	return buffer, nil
}

// Encrypt seals plaintext to a recipient public key using a fresh
// ephemeral sender keypair, mirroring what the marketplace server does.
// Returns the base64 ciphertext, nonce, and ephemeral public key — the
// three fields of a credential record. Used by tests and by local
// credential tooling; the CLI itself only decrypts.
func Encrypt(plaintext []byte, recipientPublicKey string) (ciphertext, nonce, senderPublicKey string, err error) {
	rawRecipient, err := base64.StdEncoding.DecodeString(recipientPublicKey)
	if err != nil {
		return "", "", "", fmt.Errorf("decoding base64 recipient public key: %w", err)
	}
	if len(rawRecipient) != 32 {
		return "", "", "", fmt.Errorf("recipient public key is %d bytes, want 32", len(rawRecipient))
	}

	ephemeralPublic, ephemeralPrivate, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return "", "", "", fmt.Errorf("generating ephemeral keypair: %w", err)
	}
	defer secret.Zero(ephemeralPrivate[:])

	var nonceArray [24]byte
	if _, err := rand.Read(nonceArray[:]); err != nil {
		return "", "", "", fmt.Errorf("generating nonce: %w", err)
	}

	var recipientArray [32]byte
	copy(recipientArray[:], rawRecipient)

	sealed := box.Seal(nil, plaintext, &nonceArray, &recipientArray, ephemeralPrivate)

	return base64.StdEncoding.EncodeToString(sealed),
		base64.StdEncoding.EncodeToString(nonceArray[:]),
		base64.StdEncoding.EncodeToString(ephemeralPublic[:]),
		nil
}
