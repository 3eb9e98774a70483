// Package paths provides standardized filesystem paths.
//
// This package defines the canonical directory structure for the whole
// Gridfall checkout. All components that touch the tree should resolve
// locations through a Layout rather than joining strings themselves.
//
// # Directory Structure
//
//	<root>/
//	  ├── src/
//	  │   ├── backend/          (API routes and services)
//	  │   │   └── Dockerfile
//	  │   ├── frontend/
//	  │   │   └── build/
//	  │   │       └── static/
//	  │   │           ├── css/  (built stylesheets)
//	  │   │           └── js/   (built scripts)
//	  │   ├── database/         (models and migrations)
//	  │   └── tests/
//	  │       ├── unit/
//	  │       └── integration/
//	  ├── scripts/              (maintenance scripts)
//	  └── docker-compose.yml
//
// # Usage
//
//	import "github.com/gridfall/backend/internal/shared/paths"
//
//	layout, err := paths.Discover()
//	if err != nil { ... }
//
//	// Resolve locations
//	assets := layout.StaticDir()
//	unit := layout.TestDir(paths.TestUnit)
//
//	// Create missing directories
//	dir, err := paths.EnsureDir(layout.FrontendBuild())
package paths
