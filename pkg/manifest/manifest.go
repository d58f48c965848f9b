// Package manifest provides types and utilities for working with
// plugin manifest files, which describe CLAP plugins and their metadata.
package manifest

// Manifest represents the complete structure of a plugin manifest file.
// Tagged for both JSON (the on-disk host-facing format) and YAML (an
// additive export for a developer-facing sidecar, see yaml.go).
type Manifest struct {
	SchemaVersion string      `json:"schemaVersion" yaml:"schemaVersion"`
	Plugin        PluginInfo  `json:"plugin" yaml:"plugin"`
	Build         BuildInfo   `json:"build" yaml:"build"`
	Extensions    []Extension `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	Parameters    []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// PluginInfo contains the core metadata about a plugin.
type PluginInfo struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Vendor      string   `json:"vendor" yaml:"vendor"`
	Version     string   `json:"version" yaml:"version"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	ManualURL   string   `json:"manualUrl,omitempty" yaml:"manualUrl,omitempty"`
	SupportURL  string   `json:"supportUrl,omitempty" yaml:"supportUrl,omitempty"`
	Features    []string `json:"features,omitempty" yaml:"features,omitempty"`
}

// BuildInfo contains information related to building and loading the plugin.
type BuildInfo struct {
	GoSharedLibrary string   `json:"goSharedLibrary" yaml:"goSharedLibrary"`
	EntryPoint      string   `json:"entryPoint,omitempty" yaml:"entryPoint,omitempty"`
	Dependencies    []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Extension represents a CLAP extension supported by the plugin.
type Extension struct {
	ID        string `json:"id" yaml:"id"`
	Supported bool   `json:"supported" yaml:"supported"`
}

// Parameter describes a plugin parameter.
type Parameter struct {
	ID           uint32   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	MinValue     float64  `json:"minValue" yaml:"minValue"`
	MaxValue     float64  `json:"maxValue" yaml:"maxValue"`
	DefaultValue float64  `json:"defaultValue" yaml:"defaultValue"`
	Flags        []string `json:"flags,omitempty" yaml:"flags,omitempty"`
}