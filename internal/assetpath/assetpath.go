// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package assetpath resolves static asset references against a deployment context.
//
// In development a reference is returned as-is so the site works on localhost.
// In production it is prefixed with the configured base URL so the statically
// exported pages load their assets from the hosting origin.
package assetpath

import (
	"fmt"
	"net/url"
	"strings"
)

const separator = "/"

// Environment selects how asset references are resolved.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// ParseEnvironment maps an environment name to an Environment.
// An empty name means development.
func ParseEnvironment(name string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "development", "dev", "test":
		return Development, nil
	case "production", "prod":
		return Production, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
}

func (e Environment) String() string {
	return string(e)
}

// DeploymentContext holds the settings asset paths are resolved against.
// It is immutable and safe for concurrent use.
type DeploymentContext struct {
	env    Environment
	prefix string
}

// New builds a DeploymentContext.
// Trailing slashes are stripped from prefix. In development the prefix is dropped.
func New(env Environment, prefix string) (DeploymentContext, error) {
	switch env {
	case Development:
		return DeploymentContext{env: Development}, nil
	case Production:
	default:
		return DeploymentContext{}, fmt.Errorf("%w: %q", ErrUnknownEnvironment, string(env))
	}

	prefix = strings.TrimRight(strings.TrimSpace(prefix), separator)
	if prefix != "" {
		if err := validatePrefix(prefix); err != nil {
			return DeploymentContext{}, err
		}
	}

	return DeploymentContext{env: Production, prefix: prefix}, nil
}

func validatePrefix(prefix string) error {
	u, err := url.Parse(prefix)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidPrefix, prefix, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q: scheme must be http or https", ErrInvalidPrefix, prefix)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q: missing host", ErrInvalidPrefix, prefix)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("%w: %q: query and fragment are not allowed", ErrInvalidPrefix, prefix)
	}
	return nil
}

// Environment returns the deployment environment.
// The zero DeploymentContext reports development.
func (d DeploymentContext) Environment() Environment {
	if d.env == "" {
		return Development
	}
	return d.env
}

// BasePrefix returns the asset prefix without a trailing slash.
func (d DeploymentContext) BasePrefix() string {
	return d.prefix
}

// IsProduction reports whether references get prefixed.
func (d DeploymentContext) IsProduction() bool {
	return d.env == Production
}

// Resolve is shorthand for Resolve(d, ref).
func (d DeploymentContext) Resolve(ref string) (string, error) {
	return Resolve(d, ref)
}

// Resolve returns the path or URL the rendering layer should emit for ref.
// ref must start with exactly one "/"; anything else is rejected with
// ErrInvalidReference in every environment.
func Resolve(d DeploymentContext, ref string) (string, error) {
	if err := ValidateReference(ref); err != nil {
		return "", err
	}
	if !d.IsProduction() {
		return ref, nil
	}
	return d.prefix + ref, nil
}

// MustResolve is like Resolve but panics on an invalid reference.
// Use it for references that are constants in the source.
func MustResolve(d DeploymentContext, ref string) string {
	resolved, err := Resolve(d, ref)
	if err != nil {
		panic(err)
	}
	return resolved
}

// ValidateReference checks the leading-separator convention.
func ValidateReference(ref string) error {
	if !strings.HasPrefix(ref, separator) || strings.HasPrefix(ref, separator+separator) {
		return fmt.Errorf("%w: %q must start with a single %q", ErrInvalidReference, ref, separator)
	}
	return nil
}
