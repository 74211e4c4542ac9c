// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package kubeconfig

import (
	"reflect"
	"testing"
)

func sampleConfig() Config {
	return Config{
		APIVersion: "v1",
		Kind:       "Config",
		Clusters: []NamedCluster{
			{Name: "c1", Cluster: Cluster{Server: "https://one.example", CertificateAuthorityData: "AAA"}},
			{Name: "c2", Cluster: Cluster{Server: "https://two.example"}},
		},
		Users: []NamedUser{
			{Name: "u1", User: User{Token: "tok-1"}},
		},
		Contexts: []NamedContext{
			{Name: "c1@u1", Context: Context{Cluster: "c1", User: "u1"}},
		},
		CurrentContext: "c1@u1",
		Preferences:    map[string]any{"colors": true},
	}
}

func TestMerge_NilUpdateReturnsExisting(t *testing.T) {
	existing := sampleConfig()
	merged := Merge(existing, nil)
	if !reflect.DeepEqual(merged, existing) {
		t.Errorf("Merge(existing, nil) = %+v, want existing unchanged", merged)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	existing := sampleConfig()
	update := sampleConfig()
	merged := Merge(existing, &update)
	if !reflect.DeepEqual(merged, existing) {
		t.Errorf("Merge(K, K) = %+v, want K", merged)
	}
}

func TestMerge_RightBiasOnNameCollision(t *testing.T) {
	existing := sampleConfig()
	update := Config{
		Clusters: []NamedCluster{
			{Name: "c1", Cluster: Cluster{Server: "https://new.example", CertificateAuthorityData: "BBB"}},
		},
	}

	merged := Merge(existing, &update)

	var matches []NamedCluster
	for _, cluster := range merged.Clusters {
		if cluster.Name == "c1" {
			matches = append(matches, cluster)
		}
	}
	if len(matches) != 1 {
		t.Fatalf("merged has %d clusters named c1, want exactly 1", len(matches))
	}
	if matches[0].Cluster.Server != "https://new.example" {
		t.Errorf("c1 server = %q, want update's value", matches[0].Cluster.Server)
	}

	// The overwritten entry keeps its original slot.
	if merged.Clusters[0].Name != "c1" {
		t.Errorf("first cluster = %q, want c1 (position preserved)", merged.Clusters[0].Name)
	}
}

func TestMerge_EmptyUpdateListsPreserveExisting(t *testing.T) {
	existing := sampleConfig()
	update := Config{
		APIVersion: "v1",
		Kind:       "Config",
		Clusters:   []NamedCluster{},
		Contexts:   []NamedContext{},
		Users:      []NamedUser{},
	}

	merged := Merge(existing, &update)

	if !reflect.DeepEqual(merged.Clusters, existing.Clusters) {
		t.Errorf("clusters = %+v, want existing preserved", merged.Clusters)
	}
	if !reflect.DeepEqual(merged.Contexts, existing.Contexts) {
		t.Errorf("contexts = %+v, want existing preserved", merged.Contexts)
	}
	if !reflect.DeepEqual(merged.Users, existing.Users) {
		t.Errorf("users = %+v, want existing preserved", merged.Users)
	}
	if merged.CurrentContext != existing.CurrentContext {
		t.Errorf("current-context = %q, want %q", merged.CurrentContext, existing.CurrentContext)
	}
}

func TestMerge_UnionOnDisjointNames(t *testing.T) {
	existing := Config{
		Clusters: []NamedCluster{{Name: "a", Cluster: Cluster{Server: "https://a"}}},
	}
	update := Config{
		Clusters: []NamedCluster{{Name: "b", Cluster: Cluster{Server: "https://b"}}},
	}

	merged := Merge(existing, &update)

	if len(merged.Clusters) != 2 {
		t.Fatalf("merged has %d clusters, want 2", len(merged.Clusters))
	}
	if merged.Clusters[0].Name != "a" || merged.Clusters[1].Name != "b" {
		t.Errorf("cluster order = [%s, %s], want [a, b]",
			merged.Clusters[0].Name, merged.Clusters[1].Name)
	}
}

func TestMerge_PreferencesShallowUnionNewWins(t *testing.T) {
	existing := Config{Preferences: map[string]any{"color": "blue", "fontSize": 12}}
	update := Config{Preferences: map[string]any{"theme": "dark", "fontSize": 14}}

	merged := Merge(existing, &update)

	want := map[string]any{"color": "blue", "theme": "dark", "fontSize": 14}
	if !reflect.DeepEqual(merged.Preferences, want) {
		t.Errorf("preferences = %v, want %v", merged.Preferences, want)
	}
}

func TestMerge_CurrentContextPrefersUpdate(t *testing.T) {
	existing := sampleConfig()
	update := Config{CurrentContext: "c2@u1"}

	merged := Merge(existing, &update)
	if merged.CurrentContext != "c2@u1" {
		t.Errorf("current-context = %q, want update's value", merged.CurrentContext)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	existing := sampleConfig()
	existingSnapshot := sampleConfig()
	update := Config{
		Clusters:    []NamedCluster{{Name: "c1", Cluster: Cluster{Server: "https://changed"}}},
		Preferences: map[string]any{"colors": false},
	}

	_ = Merge(existing, &update)

	if !reflect.DeepEqual(existing, existingSnapshot) {
		t.Error("Merge modified the existing input")
	}
}

func TestMergeClusters_DuplicatesInExistingCollapseLastWins(t *testing.T) {
	existing := []NamedCluster{
		{Name: "dup", Cluster: Cluster{Server: "https://first"}},
		{Name: "other", Cluster: Cluster{Server: "https://other"}},
		{Name: "dup", Cluster: Cluster{Server: "https://second"}},
	}

	merged := MergeClusters(existing, nil)

	if len(merged) != 2 {
		t.Fatalf("merged has %d entries, want 2", len(merged))
	}
	if merged[0].Name != "dup" || merged[0].Cluster.Server != "https://second" {
		t.Errorf("merged[0] = %+v, want dup with last value in first slot", merged[0])
	}
}
