// Package main is the entry point for the Gridfall layout scaffolder.
//
// The scaffolder resolves the project root, creates every standard layout
// directory that is missing, and can emit the resolved layout as a YAML
// manifest for build and deployment tooling.
//
// Configuration:
//   - Environment variables (12-factor): GRIDFALL_ROOT, PATHS_STRICT,
//     LOG_LEVEL, LOG_DEV
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Create missing directories under the discovered root
//	./scaffold
//
//	# Pin the root explicitly and emit the manifest for the build scripts
//	./scaffold -root /srv/gridfall -manifest paths.yml
//
//	# Verify an existing checkout without touching it
//	PATHS_STRICT=true ./scaffold -tree
package main
