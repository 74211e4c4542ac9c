// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package boxcrypt

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestGenerateKeypair(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()

	rawPublic, err := base64.StdEncoding.DecodeString(keypair.PublicKey)
	if err != nil {
		t.Fatalf("PublicKey is not valid base64: %v", err)
	}
	if len(rawPublic) != 32 {
		t.Errorf("PublicKey decodes to %d bytes, want 32", len(rawPublic))
	}

	rawPrivate, err := base64.StdEncoding.DecodeString(keypair.PrivateKey.String())
	if err != nil {
		t.Fatalf("PrivateKey is not valid base64: %v", err)
	}
	if len(rawPrivate) != 32 {
		t.Errorf("PrivateKey decodes to %d bytes, want 32", len(rawPrivate))
	}
}

func TestGenerateKeypair_Unique(t *testing.T) {
	keypair1, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair1.Close()
	keypair2, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair2.Close()

	if keypair1.PublicKey == keypair2.PublicKey {
		t.Error("two generated keypairs have identical public keys")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()

	plaintext := []byte("bearer-token-for-cluster-auth")
	ciphertext, nonce, senderKey, err := Encrypt(append([]byte(nil), plaintext...), keypair.PublicKey)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	decrypted, err := Decrypt(ciphertext, nonce, senderKey, keypair.PrivateKey)
	if err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}
	defer decrypted.Close()

	if decrypted.String() != string(plaintext) {
		t.Errorf("Decrypt() = %q, want %q", decrypted.String(), plaintext)
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()
	wrongKeypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer wrongKeypair.Close()

	ciphertext, nonce, senderKey, err := Encrypt([]byte("secret"), keypair.PublicKey)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	_, err = Decrypt(ciphertext, nonce, senderKey, wrongKeypair.PrivateKey)
	if err == nil {
		t.Fatal("Decrypt() with wrong key should return error")
	}
	var decryptionErr *DecryptionError
	if !errors.As(err, &decryptionErr) {
		t.Errorf("error = %T, want *DecryptionError", err)
	}
}

func TestDecrypt_CorruptedNonce(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()

	ciphertext, _, senderKey, err := Encrypt([]byte("secret"), keypair.PublicKey)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	wrongNonce := base64.StdEncoding.EncodeToString(make([]byte, 24))
	_, err = Decrypt(ciphertext, wrongNonce, senderKey, keypair.PrivateKey)
	if err == nil {
		t.Fatal("Decrypt() with corrupted nonce should return error")
	}
	var decryptionErr *DecryptionError
	if !errors.As(err, &decryptionErr) {
		t.Errorf("error = %T, want *DecryptionError", err)
	}
}

func TestDecrypt_InvalidBase64(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()

	nonce := base64.StdEncoding.EncodeToString(make([]byte, 24))
	senderKey := base64.StdEncoding.EncodeToString(make([]byte, 32))

	_, err = Decrypt("not-valid-base64!!!", nonce, senderKey, keypair.PrivateKey)
	if err == nil {
		t.Fatal("Decrypt() with invalid base64 ciphertext should return error")
	}
	if !strings.Contains(err.Error(), "decoding base64") {
		t.Errorf("error = %v, want 'decoding base64'", err)
	}
	// Malformed input is not an authentication failure.
	var decryptionErr *DecryptionError
	if errors.As(err, &decryptionErr) {
		t.Error("invalid base64 should not be a *DecryptionError")
	}
}

func TestDecrypt_WrongNonceLength(t *testing.T) {
	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair() error: %v", err)
	}
	defer keypair.Close()

	ciphertext, _, senderKey, err := Encrypt([]byte("secret"), keypair.PublicKey)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	shortNonce := base64.StdEncoding.EncodeToString(make([]byte, 12))
	_, err = Decrypt(ciphertext, shortNonce, senderKey, keypair.PrivateKey)
	if err == nil {
		t.Fatal("Decrypt() with 12-byte nonce should return error")
	}
	if !strings.Contains(err.Error(), "want 24") {
		t.Errorf("error = %v, want nonce length message", err)
	}
}

func TestEncrypt_InvalidRecipient(t *testing.T) {
	_, _, _, err := Encrypt([]byte("data"), "not-a-key")
	if err == nil {
		t.Error("Encrypt() with invalid recipient key should return error")
	}
}
