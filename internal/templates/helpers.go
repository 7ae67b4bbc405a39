// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package templates

import (
	"context"

	"github.com/bigfanoftim/blog/internal/assetpath"
	"github.com/bigfanoftim/blog/internal/ctxkeys"
)

// WithDeployment returns a copy of ctx carrying dc.
func WithDeployment(ctx context.Context, dc assetpath.DeploymentContext) context.Context {
	return context.WithValue(ctx, ctxkeys.Deployment{}, dc)
}

// Deployment returns the deployment context from ctx.
// Without one, the zero value (development) is returned.
func Deployment(ctx context.Context) assetpath.DeploymentContext {
	if dc, ok := ctx.Value(ctxkeys.Deployment{}).(assetpath.DeploymentContext); ok {
		return dc
	}
	return assetpath.DeploymentContext{}
}

// AssetPath resolves ref against the deployment context in ctx.
func AssetPath(ctx context.Context, ref string) (string, error) {
	return Deployment(ctx).Resolve(ref)
}

// mustAssetPath resolves a reference that is a constant in the source.
func mustAssetPath(ctx context.Context, ref string) string {
	return assetpath.MustResolve(Deployment(ctx), ref)
}
