// Package paths provides standardized filesystem paths for consistent access across the backend.
//
// This package encodes the Gridfall project tree so that the route layer, the
// test runner, and the build tooling all resolve resources from one table
// instead of hard-coding directory strings.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Name identifies one entry in the project layout.
type Name string

// Layout entries
const (
	ProjectRoot      Name = "project_root"
	Src              Name = "src"
	Backend          Name = "backend"
	Frontend         Name = "frontend"
	FrontendBuild    Name = "frontend_build"
	FrontendStatic   Name = "frontend_static"
	FrontendCSS      Name = "frontend_css"
	FrontendJS       Name = "frontend_js"
	Database         Name = "database"
	Scripts          Name = "scripts"
	Tests            Name = "tests"
	UnitTests        Name = "unit_tests"
	IntegrationTests Name = "integration_tests"
	Dockerfile       Name = "dockerfile"
	DockerCompose    Name = "docker_compose"
)

// suffixes maps each entry to its slash-separated location below the root.
// ProjectRoot is absent on purpose: it is the root itself.
var suffixes = map[Name]string{
	Src:              "src",
	Backend:          "src/backend",
	Frontend:         "src/frontend",
	FrontendBuild:    "src/frontend/build",
	FrontendStatic:   "src/frontend/build/static",
	FrontendCSS:      "src/frontend/build/static/css",
	FrontendJS:       "src/frontend/build/static/js",
	Database:         "src/database",
	Scripts:          "scripts",
	Tests:            "src/tests",
	UnitTests:        "src/tests/unit",
	IntegrationTests: "src/tests/integration",
	Dockerfile:       "src/backend/Dockerfile",
	DockerCompose:    "docker-compose.yml",
}

// Layout resolves project locations from a single root anchor.
//
// A Layout is constructed once and passed to whichever component needs path
// resolution; every accessor is a pure function of the root.
type Layout struct {
	root string
}

// New creates a layout anchored at root. Construction is pure path
// arithmetic and performs no filesystem access.
func New(root string) *Layout {
	return &Layout{root: filepath.Clean(root)}
}

// rootMarkers identify the top of a checkout when no explicit root is given.
var rootMarkers = []string{"docker-compose.yml", ".git"}

// Discover locates the project root by walking up from the working directory
// until a root marker is found.
func Discover() (*Layout, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	return DiscoverFrom(wd)
}

// DiscoverFrom locates the project root by walking up from start.
func DiscoverFrom(start string) (*Layout, error) {
	dir := filepath.Clean(start)
	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return New(dir), nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("no project root found above %s", start)
		}
		dir = parent
	}
}

// resolve joins a slash-separated suffix onto the root.
func (l *Layout) resolve(suffix string) string {
	return filepath.Join(l.root, filepath.FromSlash(suffix))
}

// Root returns the project root.
func (l *Layout) Root() string { return l.root }

// Src returns the source tree directory.
func (l *Layout) Src() string { return l.resolve(suffixes[Src]) }

// Backend returns the backend route/service directory.
func (l *Layout) Backend() string { return l.resolve(suffixes[Backend]) }

// Frontend returns the frontend source directory.
func (l *Layout) Frontend() string { return l.resolve(suffixes[Frontend]) }

// FrontendBuild returns the frontend build output directory.
func (l *Layout) FrontendBuild() string { return l.resolve(suffixes[FrontendBuild]) }

// StaticDir returns the frontend static-assets directory.
func (l *Layout) StaticDir() string { return l.resolve(suffixes[FrontendStatic]) }

// StaticCSS returns the built stylesheet directory.
func (l *Layout) StaticCSS() string { return l.resolve(suffixes[FrontendCSS]) }

// StaticJS returns the built script directory.
func (l *Layout) StaticJS() string { return l.resolve(suffixes[FrontendJS]) }

// DatabaseDir returns the database model directory.
func (l *Layout) DatabaseDir() string { return l.resolve(suffixes[Database]) }

// ScriptsDir returns the maintenance scripts directory.
func (l *Layout) ScriptsDir() string { return l.resolve(suffixes[Scripts]) }

// TestsDir returns the top-level tests directory.
func (l *Layout) TestsDir() string { return l.resolve(suffixes[Tests]) }

// UnitTestsDir returns the unit test directory.
func (l *Layout) UnitTestsDir() string { return l.resolve(suffixes[UnitTests]) }

// IntegrationTestsDir returns the integration test directory.
func (l *Layout) IntegrationTestsDir() string { return l.resolve(suffixes[IntegrationTests]) }

// DockerfilePath returns the backend Dockerfile.
func (l *Layout) DockerfilePath() string { return l.resolve(suffixes[Dockerfile]) }

// ComposeFile returns the docker-compose file at the project root.
func (l *Layout) ComposeFile() string { return l.resolve(suffixes[DockerCompose]) }

// Entries returns the full mapping from symbolic names to resolved
// locations. The result is rebuilt from the root on each call, so callers
// may mutate the returned map freely.
func (l *Layout) Entries() map[Name]string {
	entries := make(map[Name]string, len(suffixes)+1)
	entries[ProjectRoot] = l.root
	for name, suffix := range suffixes {
		entries[name] = l.resolve(suffix)
	}
	return entries
}

// TestKind selects a test directory category.
type TestKind int

// Test directory categories. TestAny is the zero value and names the
// generic top-level tests directory; unrecognized kinds resolve to it.
const (
	TestAny TestKind = iota
	TestUnit
	TestIntegration
)

// ParseTestKind maps a category string to its TestKind. Anything other
// than "unit" or "integration" parses as TestAny.
func ParseTestKind(s string) TestKind {
	switch s {
	case "unit":
		return TestUnit
	case "integration":
		return TestIntegration
	default:
		return TestAny
	}
}

// TestDir returns the test directory for kind. Unknown kinds fall back to
// the generic tests directory rather than failing; callers that care about
// typos should go through ParseTestKind and check for TestAny themselves.
func (l *Layout) TestDir(kind TestKind) string {
	switch kind {
	case TestUnit:
		return l.UnitTestsDir()
	case TestIntegration:
		return l.IntegrationTestsDir()
	default:
		return l.TestsDir()
	}
}

// StandardDirectories returns all layout directories that should exist,
// in creation order. File entries (Dockerfile, compose file) are excluded.
func (l *Layout) StandardDirectories() []string {
	return []string{
		l.Src(),
		l.Backend(),
		l.Frontend(),
		l.FrontendBuild(),
		l.StaticDir(),
		l.StaticCSS(),
		l.StaticJS(),
		l.DatabaseDir(),
		l.ScriptsDir(),
		l.TestsDir(),
		l.UnitTestsDir(),
		l.IntegrationTestsDir(),
	}
}

// IsProjectPath checks if path is within the project tree.
func (l *Layout) IsProjectPath(path string) bool {
	rel, err := filepath.Rel(l.root, filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// EnsureDir creates dir and any missing parents, returning dir for
// chaining. Creation is idempotent: an already-existing directory is
// success, including one created concurrently by another caller.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return dir, fmt.Errorf("create directory %s: %w", dir, err)
	}
	return dir, nil
}
