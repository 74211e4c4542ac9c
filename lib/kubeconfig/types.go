// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package kubeconfig

// Config is a Kubernetes client configuration document. Field names on
// the wire use the hyphenated keys kubectl expects; entry lists keep
// their on-disk order so merges do not reshuffle a user's file.
type Config struct {
	APIVersion     string         `yaml:"apiVersion"`
	Kind           string         `yaml:"kind"`
	Clusters       []NamedCluster `yaml:"clusters"`
	Contexts       []NamedContext `yaml:"contexts"`
	Users          []NamedUser    `yaml:"users"`
	CurrentContext string         `yaml:"current-context"`
	Preferences    map[string]any `yaml:"preferences"`
}

// NamedCluster is one entry in the clusters list.
type NamedCluster struct {
	Name    string  `yaml:"name"`
	Cluster Cluster `yaml:"cluster"`
}

// Cluster describes how to reach a Kubernetes API server.
type Cluster struct {
	Server                   string `yaml:"server"`
	CertificateAuthorityData string `yaml:"certificate-authority-data,omitempty"`
}

// NamedUser is one entry in the users list.
type NamedUser struct {
	Name string `yaml:"name"`
	User User   `yaml:"user"`
}

// User holds client credentials: a bearer token, or a TLS client
// certificate pair carried over from an embedded kubeconfig.
type User struct {
	Token                 string `yaml:"token,omitempty"`
	ClientCertificateData string `yaml:"client-certificate-data,omitempty"`
	ClientKeyData         string `yaml:"client-key-data,omitempty"`
}

// NamedContext is one entry in the contexts list.
type NamedContext struct {
	Name    string  `yaml:"name"`
	Context Context `yaml:"context"`
}

// Context pairs a cluster with a user and an optional default namespace.
type Context struct {
	Cluster   string `yaml:"cluster"`
	User      string `yaml:"user"`
	Namespace string `yaml:"namespace,omitempty"`
}

// New returns an empty well-formed kubeconfig document: the standard
// apiVersion/kind pair, empty entry lists, no current context.
func New() *Config {
	return &Config{
		APIVersion:  "v1",
		Kind:        "Config",
		Clusters:    []NamedCluster{},
		Contexts:    []NamedContext{},
		Users:       []NamedUser{},
		Preferences: map[string]any{},
	}
}

// HasCluster reports whether a cluster entry with the given name exists.
func (c *Config) HasCluster(name string) bool {
	for _, entry := range c.Clusters {
		if entry.Name == name {
			return true
		}
	}
	return false
}

// HasUser reports whether a user entry with the given name exists.
func (c *Config) HasUser(name string) bool {
	for _, entry := range c.Users {
		if entry.Name == name {
			return true
		}
	}
	return false
}

// hasContextForCluster reports whether any context references the given
// cluster name.
func (c *Config) hasContextForCluster(clusterName string) bool {
	for _, entry := range c.Contexts {
		if entry.Context.Cluster == clusterName {
			return true
		}
	}
	return false
}
