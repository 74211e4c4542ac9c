// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package kubeconfig

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

// ClusterInput describes one marketplace cluster to include in the
// built document.
type ClusterInput struct {
	// Name becomes the cluster entry name and, paired with a user,
	// the context name.
	Name string

	// KubernetesAPIURL is the cluster's API server address.
	KubernetesAPIURL string

	// CertificateAuthorityData is the base64 CA bundle, if the cluster
	// publishes one.
	CertificateAuthorityData string

	// Namespace is the default namespace for the generated context.
	Namespace string
}

// UserInput describes one decrypted credential to include. Exactly one
// of Token or Kubeconfig should be set: Token is a bearer token for a
// plain user entry, Kubeconfig is a complete embedded kubeconfig
// document to be decomposed into the built document.
type UserInput struct {
	Name       string
	Token      string
	Kubeconfig string
}

// CurrentContext selects which generated context the built document
// should activate.
type CurrentContext struct {
	ClusterName string
	UserName    string
}

// ContextName returns the canonical "{cluster}@{user}" context name.
func ContextName(clusterName, userName string) string {
	return fmt.Sprintf("%s@%s", clusterName, userName)
}

// Build assembles a candidate kubeconfig from cluster records and
// decrypted credentials:
//
//  1. Users carrying an embedded kubeconfig are decomposed first, in
//     input order: their clusters and users are taken verbatim (the
//     first source to claim a name wins), their contexts are appended
//     as-is, and the last embedded current-context is adopted. An
//     unparsable embedded kubeconfig is logged and skipped — it never
//     aborts the build.
//  2. Remaining cluster inputs become cluster entries; remaining token
//     users become user entries.
//  3. Every cluster without a context gets one, paired with the
//     same-named user when present, otherwise the first input user.
//     No context is created when the chosen user never made it into
//     the document (for example its embedded kubeconfig failed to
//     parse).
//  4. An explicit current context always wins; otherwise the first
//     context is activated when nothing else claimed the slot.
func Build(clusters []ClusterInput, users []UserInput, current *CurrentContext, logger *slog.Logger) *Config {
	if logger == nil {
		logger = slog.Default()
	}

	built := New()

	// Step 1: decompose embedded kubeconfig documents.
	for _, user := range users {
		if user.Kubeconfig == "" {
			continue
		}

		var embedded Config
		if err := yaml.Unmarshal([]byte(user.Kubeconfig), &embedded); err != nil {
			logger.Warn("skipping unparsable embedded kubeconfig",
				"user", user.Name, "error", err)
			continue
		}

		for _, cluster := range embedded.Clusters {
			if !built.HasCluster(cluster.Name) {
				built.Clusters = append(built.Clusters, cluster)
			}
		}
		for _, embeddedUser := range embedded.Users {
			if !built.HasUser(embeddedUser.Name) {
				built.Users = append(built.Users, embeddedUser)
			}
		}
		// Contexts are carried verbatim; name collisions collapse later
		// under Merge's by-name semantics.
		built.Contexts = append(built.Contexts, embedded.Contexts...)
		if embedded.CurrentContext != "" {
			built.CurrentContext = embedded.CurrentContext
		}
	}

	// Step 2: plain cluster records and token users, skipping names an
	// embedded kubeconfig already claimed.
	for _, cluster := range clusters {
		if built.HasCluster(cluster.Name) {
			continue
		}
		built.Clusters = append(built.Clusters, NamedCluster{
			Name: cluster.Name,
			Cluster: Cluster{
				Server:                   cluster.KubernetesAPIURL,
				CertificateAuthorityData: cluster.CertificateAuthorityData,
			},
		})
	}
	for _, user := range users {
		if user.Kubeconfig != "" || built.HasUser(user.Name) {
			continue
		}
		built.Users = append(built.Users, NamedUser{
			Name: user.Name,
			User: User{Token: user.Token},
		})
	}

	// Step 3: a context for every cluster that doesn't have one.
	for _, cluster := range clusters {
		if built.hasContextForCluster(cluster.Name) {
			continue
		}

		userName, ok := pairUser(cluster.Name, users)
		if !ok {
			continue
		}
		if !built.HasUser(userName) {
			// The chosen user never made it into the document (its
			// embedded kubeconfig failed to parse). A context pointing
			// at a missing user would be broken; skip it.
			continue
		}

		built.Contexts = append(built.Contexts, NamedContext{
			Name: ContextName(cluster.Name, userName),
			Context: Context{
				Cluster:   cluster.Name,
				User:      userName,
				Namespace: cluster.Namespace,
			},
		})
	}

	// Step 4: current context. An explicit selection always wins, even
	// over a current-context declared by an embedded kubeconfig.
	if current != nil {
		built.CurrentContext = ContextName(current.ClusterName, current.UserName)
	} else if built.CurrentContext == "" && len(built.Contexts) > 0 {
		built.CurrentContext = built.Contexts[0].Name
	}

	return built
}

// pairUser picks the user for a cluster's generated context: the
// same-named user when one exists, otherwise the first user. Returns
// false when there are no users at all.
func pairUser(clusterName string, users []UserInput) (string, bool) {
	for _, user := range users {
		if user.Name == clusterName {
			return user.Name, true
		}
	}
	if len(users) > 0 {
		return users[0].Name, true
	}
	return "", false
}
