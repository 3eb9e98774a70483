package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesContainedInRoot(t *testing.T) {
	layout := New("/proj")

	entries := layout.Entries()
	assert.Equal(t, len(suffixes)+1, len(entries))

	for name, location := range entries {
		if name == ProjectRoot {
			assert.Equal(t, "/proj", location)
			continue
		}
		assert.True(t, layout.IsProjectPath(location), "entry %s escapes root: %s", name, location)
		assert.NotEqual(t, layout.Root(), location, "entry %s resolved to the root itself", name)
	}
}

func TestLiteralJoins(t *testing.T) {
	layout := New("/proj")

	assert.Equal(t, "/proj/src/frontend/build/static/js", layout.StaticJS())
	assert.Equal(t, "/proj/src/frontend/build/static/css", layout.StaticCSS())
	assert.Equal(t, "/proj/src/frontend/build/static", layout.StaticDir())
	assert.Equal(t, "/proj/src/backend", layout.Backend())
	assert.Equal(t, "/proj/src/backend/Dockerfile", layout.DockerfilePath())
	assert.Equal(t, "/proj/docker-compose.yml", layout.ComposeFile())
}

func TestRootIsStable(t *testing.T) {
	layout := New("/proj/")

	assert.Equal(t, "/proj", layout.Root())
	assert.Equal(t, layout.Root(), layout.Root())
	assert.Equal(t, layout.Entries(), layout.Entries())
}

// TestTestDirFallback pins the silent-fallback policy: anything that is not
// a recognized category resolves to the generic tests directory.
func TestTestDirFallback(t *testing.T) {
	layout := New("/proj")

	assert.Equal(t, "/proj/src/tests/unit", layout.TestDir(TestUnit))
	assert.Equal(t, "/proj/src/tests/integration", layout.TestDir(TestIntegration))
	assert.Equal(t, "/proj/src/tests", layout.TestDir(TestAny))
	assert.Equal(t, "/proj/src/tests", layout.TestDir(TestKind(42)))
	assert.Equal(t, "/proj/src/tests", layout.TestDir(ParseTestKind("bogus")))
}

func TestParseTestKind(t *testing.T) {
	assert.Equal(t, TestUnit, ParseTestKind("unit"))
	assert.Equal(t, TestIntegration, ParseTestKind("integration"))
	assert.Equal(t, TestAny, ParseTestKind(""))
	assert.Equal(t, TestAny, ParseTestKind("bogus"))
}

func TestStandardDirectoriesAreDirectories(t *testing.T) {
	layout := New("/proj")

	dirs := layout.StandardDirectories()
	assert.Len(t, dirs, 12)
	assert.NotContains(t, dirs, layout.DockerfilePath())
	assert.NotContains(t, dirs, layout.ComposeFile())
}

func TestIsProjectPath(t *testing.T) {
	layout := New("/proj")

	assert.True(t, layout.IsProjectPath("/proj"))
	assert.True(t, layout.IsProjectPath("/proj/src/backend"))
	assert.False(t, layout.IsProjectPath("/proj2/src"))
	assert.False(t, layout.IsProjectPath("/etc"))
	assert.False(t, layout.IsProjectPath("/proj/../etc"))
}

func TestEnsureDirCreatesNested(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "a", "b", "c")

	got, err := EnsureDir(target)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDirIdempotent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out")

	first, err := EnsureDir(target)
	require.NoError(t, err)

	second, err := EnsureDir(target)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEnsureDirFileCollision(t *testing.T) {
	target := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(target, []byte("not a directory"), 0o644))

	_, err := EnsureDir(target)
	assert.Error(t, err)
}

func TestDiscoverFrom(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "docker-compose.yml"), []byte("services: {}\n"), 0o644))

	nested := filepath.Join(root, "src", "backend")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	layout, err := DiscoverFrom(nested)
	require.NoError(t, err)
	assert.Equal(t, root, layout.Root())
}

func TestDiscoverFromNoMarker(t *testing.T) {
	_, err := DiscoverFrom(t.TempDir())
	assert.Error(t, err)
}
