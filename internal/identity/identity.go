// Package identity derives deterministic kernel identities from notebook
// paths. Two requests for the same canonical path and kernel type always
// resolve to the same identity, which is what lets independent clients
// converge on one running kernel.
package identity

import (
	"os"

	"github.com/google/uuid"
)

// DefaultNamespace partitions identity space when no namespace is configured.
var DefaultNamespace = uuid.MustParse("f2a57b34-7b27-43e9-87fd-1b7e9f9d5d6a")

// NamespaceEnvVar names the environment variable holding a UUID-formatted
// namespace override. Separate deployments set distinct namespaces so their
// identities never collide even for identical paths.
const NamespaceEnvVar = "DARKPYONIX_NAMESPACE"

// NamespaceSource supplies the namespace for a single resolution. Sources are
// consulted on every request, never cached, so a namespace change takes effect
// on the next start.
type NamespaceSource func() uuid.UUID

// EnvNamespace reads NamespaceEnvVar from the process environment. Absent or
// malformed values fall back to DefaultNamespace without surfacing an error.
func EnvNamespace() uuid.UUID {
	return ParseNamespace(os.Getenv(NamespaceEnvVar))
}

// ParseNamespace parses a UUID-formatted namespace string, falling back to
// DefaultNamespace when v is empty or malformed.
func ParseNamespace(v string) uuid.UUID {
	if v == "" {
		return DefaultNamespace
	}
	ns, err := uuid.Parse(v)
	if err != nil {
		return DefaultNamespace
	}
	return ns
}

// Resolve derives the kernel identity for a canonical notebook path and
// kernel name under the given namespace (UUIDv5 over "path|kernel"). The
// derivation is deliberately user-agnostic: every caller referencing the same
// file gets the same identity, regardless of who they are.
func Resolve(absPath, kernelName string, ns uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(ns, []byte(absPath+"|"+kernelName))
}
