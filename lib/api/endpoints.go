// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Whoami returns the account the client's token authenticates as.
func (c *Client) Whoami(ctx context.Context) (*Account, error) {
	var account Account
	if err := c.get(ctx, "/v0/me", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Balance returns the account's available and reserved funds.
func (c *Client) Balance(ctx context.Context) (*Balance, error) {
	var balance Balance
	if err := c.get(ctx, "/v0/balance", nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

// ListOrders returns the account's orders, newest first.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var envelope list[Order]
	if err := c.get(ctx, "/v0/orders", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// GetOrder returns one order by id.
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	var order Order
	if err := c.get(ctx, "/v0/orders/"+url.PathEscape(id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder places a buy or sell order.
func (c *Client) CreateOrder(ctx context.Context, request OrderRequest) (*Order, error) {
	var order Order
	if err := c.post(ctx, "/v0/orders", request, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder cancels an open order.
func (c *Client) CancelOrder(ctx context.Context, id string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, "/v0/orders/"+url.PathEscape(id), nil, nil)
	return err
}

// ListProcurements returns the account's procurements.
func (c *Client) ListProcurements(ctx context.Context) ([]Procurement, error) {
	var envelope list[Procurement]
	if err := c.get(ctx, "/v0/procurements", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// CreateProcurement creates an auto-scaling buy policy.
func (c *Client) CreateProcurement(ctx context.Context, request ProcurementRequest) (*Procurement, error) {
	if request.InstanceType == "" {
		return nil, fmt.Errorf("api: procurement requires an instance type")
	}
	var procurement Procurement
	if err := c.post(ctx, "/v0/procurements", request, &procurement); err != nil {
		return nil, err
	}
	return &procurement, nil
}

// UpdateProcurement changes a procurement's quantity or price ceiling.
func (c *Client) UpdateProcurement(ctx context.Context, id string, request ProcurementRequest) (*Procurement, error) {
	var procurement Procurement
	if err := c.post(ctx, "/v0/procurements/"+url.PathEscape(id), request, &procurement); err != nil {
		return nil, err
	}
	return &procurement, nil
}

// ListNodes returns the account's provisioned nodes.
func (c *Client) ListNodes(ctx context.Context) ([]Node, error) {
	var envelope list[Node]
	if err := c.get(ctx, "/v0/nodes", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// ListClusters returns the clusters the account can hold credentials
// for.
func (c *Client) ListClusters(ctx context.Context) ([]Cluster, error) {
	var envelope list[Cluster]
	if err := c.get(ctx, "/v0/clusters", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// ListCredentials returns the account's encrypted credential records.
// Decryption is the caller's job (lib/credential).
func (c *Client) ListCredentials(ctx context.Context) ([]Credential, error) {
	var envelope list[Credential]
	if err := c.get(ctx, "/v0/credentials", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// CreateCredential asks the marketplace to provision a cluster user
// whose secret is encrypted to the given public key. The credential
// becomes available from ListCredentials once provisioned.
func (c *Client) CreateCredential(ctx context.Context, request CredentialRequest) error {
	if request.Username == "" {
		return fmt.Errorf("api: credential requires a username")
	}
	if request.PublicKey == "" {
		return fmt.Errorf("api: credential requires a public key")
	}
	return c.post(ctx, "/v0/credentials", request, nil)
}
