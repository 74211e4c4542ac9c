// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

// Package kubeconfig assembles, merges, and persists Kubernetes client
// configuration for marketplace clusters.
//
// The package is built around three layers:
//
//   - [Config] and friends model the standard kubeconfig document with
//     the hyphenated wire keys (certificate-authority-data,
//     current-context) that kubectl and client-go expect. Entry lists
//     are ordered; names are unique within each list.
//   - [Build] constructs a candidate Config from cluster records and
//     decrypted credentials, including decomposing credentials whose
//     secret is itself a complete embedded kubeconfig document.
//   - [Merge] reconciles a candidate against the user's existing
//     on-disk document without destroying entries they added by hand:
//     per-list merge by name with the new side winning on collision,
//     stable first-insertion ordering, and additive preferences.
//     [Sync] is the sole mutating entry point (load, merge, write).
//
// Build and Merge are pure; all I/O lives in Load and Sync. Per-item
// failures during Build (an unparsable embedded kubeconfig) are logged
// and skipped — assembly is best-effort, and one broken credential must
// not take down the rest.
package kubeconfig
