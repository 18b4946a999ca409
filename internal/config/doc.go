// Package config provides configuration loading, merging, and validation
// facilities for the days-together client.
//
// Configuration is assembled from multiple sources. When two sources set the
// same field the earlier one in this list wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetClientConfig] for the validated client view.
package config
