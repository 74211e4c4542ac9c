// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package credential classifies and decrypts marketplace credential
// records. Records arrive from the API as heterogeneous JSON objects;
// a valid record carries an encrypted bearer token or an encrypted
// embedded kubeconfig, sealed to the local account keypair. Everything
// here is best-effort per record: a malformed or undecryptable record
// is skipped (and logged when structurally valid), never fatal to the
// batch.
package credential

import (
	"log/slog"

	"github.com/voltmarket/volt/lib/boxcrypt"
	"github.com/voltmarket/volt/lib/secret"
)

// ObjectKubernetesCredential is the object tag the API puts on
// Kubernetes credential records.
const ObjectKubernetesCredential = "k8s_credential"

// ClusterRef is the cluster summary nested inside a credential record.
type ClusterRef struct {
	Name                string `json:"name"`
	KubernetesAPIURL    string `json:"kubernetes_api_url"`
	KubernetesCACert    string `json:"kubernetes_ca_cert,omitempty"`
	KubernetesNamespace string `json:"kubernetes_namespace,omitempty"`
}

// Encrypted is a credential record as fetched from the API. Exactly
// one of EncryptedToken or EncryptedKubeconfig should be present; a
// record carrying neither fails IsValid and is dropped. The nonce and
// ephemeral pubkey are base64, per the sealed-box wire format.
type Encrypted struct {
	ID              string      `json:"id"`
	Object          string      `json:"object"`
	Nonce           string      `json:"nonce"`
	EphemeralPubkey string      `json:"ephemeral_pubkey"`
	Username        string      `json:"username,omitempty"`
	Cluster         *ClusterRef `json:"cluster,omitempty"`
	ClusterType     string      `json:"cluster_type,omitempty"`

	EncryptedToken      *string `json:"encrypted_token,omitempty"`
	EncryptedKubeconfig *string `json:"encrypted_kubeconfig,omitempty"`
}

// IsValid reports whether the record has the shape required for
// decryption: the Kubernetes credential object tag, an id, the sealed
// box parameters, and at least one encrypted payload field.
func (e *Encrypted) IsValid() bool {
	if e.Object != ObjectKubernetesCredential {
		return false
	}
	if e.ID == "" || e.Nonce == "" || e.EphemeralPubkey == "" {
		return false
	}
	return e.EncryptedToken != nil || e.EncryptedKubeconfig != nil
}

// IsToken reports whether the record carries an encrypted bearer
// token. A record with both payload fields decrypts as a token: the
// token path has priority.
func (e *Encrypted) IsToken() bool {
	return e.EncryptedToken != nil
}

// IsKubeconfig reports whether the record carries an encrypted
// embedded kubeconfig document.
func (e *Encrypted) IsKubeconfig() bool {
	return e.EncryptedKubeconfig != nil
}

// Kind selects which payload shape a Filter matches.
type Kind string

const (
	KindToken      Kind = "token"
	KindKubeconfig Kind = "kubeconfig"
	KindAny        Kind = "any"
)

// Filter narrows a record batch before decryption. Zero-valued fields
// are unset; set fields must all match (conjunction).
type Filter struct {
	ClusterName  string
	Username     string
	CredentialID string
	Type         Kind
}

func (f *Filter) matches(record *Encrypted) bool {
	if f == nil {
		return true
	}
	if f.ClusterName != "" && (record.Cluster == nil || record.Cluster.Name != f.ClusterName) {
		return false
	}
	if f.Username != "" && record.Username != f.Username {
		return false
	}
	if f.CredentialID != "" && record.ID != f.CredentialID {
		return false
	}
	switch f.Type {
	case KindToken:
		return record.IsToken()
	case KindKubeconfig:
		return record.IsKubeconfig()
	}
	return true
}

// Decrypted is the plaintext form of one credential record. Exactly
// one of Token or Kubeconfig is populated, mirroring the source
// record. Decrypted values are ephemeral: produced, fed to the
// kubeconfig builder, and discarded within one command run.
type Decrypted struct {
	ID         string
	Username   string
	Cluster    string
	Token      string
	Kubeconfig string
}

// tryDecrypt recovers the plaintext of one record. It returns nil,
// without logging, for records that fail the shape check; a
// structurally valid record whose payload fails to decrypt is logged
// with its id and also returns nil. It never returns an error: a bad
// record must not abort the rest of the batch.
func tryDecrypt(record *Encrypted, privateKey *secret.Buffer, logger *slog.Logger) *Decrypted {
	if !record.IsValid() {
		return nil
	}

	payload := record.EncryptedKubeconfig
	if record.IsToken() {
		payload = record.EncryptedToken
	}

	plaintext, err := boxcrypt.Decrypt(*payload, record.Nonce, record.EphemeralPubkey, privateKey)
	if err != nil {
		logger.Warn("skipping credential that failed to decrypt",
			"credential", record.ID, "error", err)
		return nil
	}
	defer plaintext.Close()

	decrypted := &Decrypted{
		ID:       record.ID,
		Username: record.Username,
	}
	if record.Cluster != nil {
		decrypted.Cluster = record.Cluster.Name
	}
	if record.IsToken() {
		decrypted.Token = plaintext.String()
	} else {
		decrypted.Kubeconfig = plaintext.String()
	}
	return decrypted
}

// FilterAndDecrypt applies the filter to every valid record and
// decrypts the survivors with the local private key. Output order
// follows input order. Records that fail validation, filtering, or
// decryption are omitted; decryption failures are logged with the
// record id.
func FilterAndDecrypt(records []Encrypted, privateKey *secret.Buffer, filter *Filter, logger *slog.Logger) []Decrypted {
	if logger == nil {
		logger = slog.Default()
	}

	var decrypted []Decrypted
	for i := range records {
		record := &records[i]
		if !record.IsValid() || !filter.matches(record) {
			continue
		}
		if plain := tryDecrypt(record, privateKey, logger); plain != nil {
			decrypted = append(decrypted, *plain)
		}
	}
	return decrypted
}
