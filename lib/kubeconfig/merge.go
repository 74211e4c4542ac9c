// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package kubeconfig

import "maps"

// mergeByName merges two entry lists keyed by name. Existing entries
// are inserted first in their original order, then updated entries: a
// name already present overwrites the prior value in place (keeping its
// original slot), a new name is appended. Duplicate names within either
// input collapse the same way, last value wins. The result is
// deterministic and order-stable; merging an empty update is a no-op.
func mergeByName[T any](existing, updated []T, name func(T) string) []T {
	merged := make([]T, 0, len(existing)+len(updated))
	position := make(map[string]int, len(existing)+len(updated))

	insert := func(entry T) {
		key := name(entry)
		if at, seen := position[key]; seen {
			merged[at] = entry
			return
		}
		position[key] = len(merged)
		merged = append(merged, entry)
	}

	for _, entry := range existing {
		insert(entry)
	}
	for _, entry := range updated {
		insert(entry)
	}
	return merged
}

// MergeClusters merges cluster entry lists by name, update side winning
// on collision. See mergeByName for ordering semantics.
func MergeClusters(existing, updated []NamedCluster) []NamedCluster {
	return mergeByName(existing, updated, func(e NamedCluster) string { return e.Name })
}

// MergeUsers merges user entry lists by name, update side winning on
// collision.
func MergeUsers(existing, updated []NamedUser) []NamedUser {
	return mergeByName(existing, updated, func(e NamedUser) string { return e.Name })
}

// MergeContexts merges context entry lists by name, update side winning
// on collision.
func MergeContexts(existing, updated []NamedContext) []NamedContext {
	return mergeByName(existing, updated, func(e NamedContext) string { return e.Name })
}

// Merge reconciles an existing kubeconfig with an update, favoring the
// update without destroying anything only the existing side has:
//
//   - clusters, contexts, users: merged by name, update wins per entry,
//     existing order preserved, new names appended. An empty list on
//     the update side never erases existing entries.
//   - apiVersion, kind, current-context: the update's value when
//     non-empty, otherwise the existing value.
//   - preferences: shallow union, update keys win on collision,
//     existing-only keys retained.
//
// A nil update returns the existing document unchanged. Merge is pure:
// neither input is modified.
func Merge(existing Config, update *Config) Config {
	if update == nil {
		return existing
	}

	merged := Config{
		APIVersion:     preferNonEmpty(update.APIVersion, existing.APIVersion),
		Kind:           preferNonEmpty(update.Kind, existing.Kind),
		CurrentContext: preferNonEmpty(update.CurrentContext, existing.CurrentContext),
		Clusters:       MergeClusters(existing.Clusters, update.Clusters),
		Contexts:       MergeContexts(existing.Contexts, update.Contexts),
		Users:          MergeUsers(existing.Users, update.Users),
		Preferences:    make(map[string]any, len(existing.Preferences)+len(update.Preferences)),
	}

	maps.Copy(merged.Preferences, existing.Preferences)
	maps.Copy(merged.Preferences, update.Preferences)

	return merged
}

func preferNonEmpty(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}
