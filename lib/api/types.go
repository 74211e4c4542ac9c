// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"time"

	"github.com/voltmarket/volt/lib/credential"
)

// list is the envelope the API wraps collection responses in.
type list[T any] struct {
	Object string `json:"object"`
	Data   []T    `json:"data"`
}

// Order is one buy or sell order on the marketplace order book.
type Order struct {
	ID           string    `json:"id"`
	Object       string    `json:"object"`
	Side         string    `json:"side"` // "buy" or "sell"
	Status       string    `json:"status"`
	InstanceType string    `json:"instance_type"`
	Quantity     int       `json:"quantity"`
	// PriceCents is the price per GPU-hour in US cents.
	PriceCents int64     `json:"price_cents"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderRequest creates a new order.
type OrderRequest struct {
	Side         string     `json:"side"`
	InstanceType string     `json:"instance_type"`
	Quantity     int        `json:"quantity"`
	PriceCents   int64      `json:"price_cents"`
	StartAt      *time.Time `json:"start_at,omitempty"`
	EndAt        *time.Time `json:"end_at,omitempty"`
}

// Procurement is an auto-scaling buy policy: the marketplace keeps the
// given quantity of an instance type provisioned, buying at or below
// the price ceiling.
type Procurement struct {
	ID              string `json:"id"`
	Object          string `json:"object"`
	Status          string `json:"status"`
	InstanceType    string `json:"instance_type"`
	Quantity        int    `json:"quantity"`
	MaxPriceCents   int64  `json:"max_price_cents"`
	CurrentQuantity int    `json:"current_quantity"`
}

// ProcurementRequest creates or updates a procurement.
type ProcurementRequest struct {
	InstanceType  string `json:"instance_type,omitempty"`
	Quantity      *int   `json:"quantity,omitempty"`
	MaxPriceCents *int64 `json:"max_price_cents,omitempty"`
}

// Node is one provisioned compute node.
type Node struct {
	ID           string    `json:"id"`
	Object       string    `json:"object"`
	Name         string    `json:"name"`
	Status       string    `json:"status"`
	InstanceType string    `json:"instance_type"`
	GPUCount     int       `json:"gpu_count"`
	ClusterName  string    `json:"cluster_name,omitempty"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
}

// Cluster is one Kubernetes cluster the account can hold credentials
// for.
type Cluster struct {
	Name                string `json:"name"`
	KubernetesAPIURL    string `json:"kubernetes_api_url"`
	KubernetesNamespace string `json:"kubernetes_namespace,omitempty"`
	KubernetesCACert    string `json:"kubernetes_ca_cert,omitempty"`
}

// CredentialRequest registers a new cluster user. The marketplace
// provisions the user and returns its secret encrypted to PublicKey.
type CredentialRequest struct {
	Username  string `json:"username"`
	Cluster   string `json:"cluster,omitempty"`
	PublicKey string `json:"pubkey"`
}

// Balance is the account's funds in US cents.
type Balance struct {
	AvailableCents int64 `json:"available_cents"`
	ReservedCents  int64 `json:"reserved_cents"`
}

// Account identifies the authenticated account.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Reexport the credential record type under the name callers see in
// API responses.
type Credential = credential.Encrypted
