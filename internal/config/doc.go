// Package config provides configuration loading, merging, and validation
// for the prompt-keeper server and client.
//
// Configuration is assembled from several sources; earlier sources win for
// fields they set:
//  1. Environment variables
//  2. Command-line flags (server only; the client CLI owns its flags)
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
