// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package source

import "context"

// AWSSource, GCPSource and AzureSource are named per spec.md §6's
// source-binding flags but return ErrUnimplementedProvider: see
// DESIGN.md's dropped-dependency entry for why this module does not
// wire the teacher's AWS/GCP/Azure SDKs into a log-fetch implementation.
// The contract (Source interface) is real; only these three bodies are
// stubs, matching spec.md §1's "contract, not implementation" framing.

// AWSSource would read CloudWatch Logs for a log group/stream.
type AWSSource struct {
	Profile, Region, LogGroup, LogStream string
}

// Label identifies the requested CloudWatch log stream.
func (s AWSSource) Label() string { return "aws:" + s.LogGroup + "/" + s.LogStream }

// Lines always returns ErrUnimplementedProvider.
func (s AWSSource) Lines(ctx context.Context) ([]string, error) {
	return nil, ErrUnimplementedProvider
}

// GCPSource would read Cloud Logging entries for a project/log name.
type GCPSource struct {
	Project, LogName string
}

// Label identifies the requested Cloud Logging log.
func (s GCPSource) Label() string { return "gcp:" + s.Project + "/" + s.LogName }

// Lines always returns ErrUnimplementedProvider.
func (s GCPSource) Lines(ctx context.Context) ([]string, error) {
	return nil, ErrUnimplementedProvider
}

// AzureSource would read Azure Monitor logs for a workspace/table.
type AzureSource struct {
	Workspace, Table string
}

// Label identifies the requested Azure Monitor table.
func (s AzureSource) Label() string { return "azure:" + s.Workspace + "/" + s.Table }

// Lines always returns ErrUnimplementedProvider.
func (s AzureSource) Lines(ctx context.Context) ([]string, error) {
	return nil, ErrUnimplementedProvider
}
