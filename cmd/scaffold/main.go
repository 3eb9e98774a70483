package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/gridfall/backend/internal/infrastructure/config"
	"github.com/gridfall/backend/internal/logging"
	"github.com/gridfall/backend/internal/manifest"
	"github.com/gridfall/backend/internal/shared/paths"
)

func main() {
	// Parse flags
	root := flag.String("root", "", "Project root (default: discover from the working directory)")
	manifestOut := flag.String("manifest", "", "Write the layout manifest YAML to this path")
	tree := flag.Bool("tree", false, "Print the project tree after scaffolding")
	flag.Parse()

	cfg := config.LoadOrDefault()

	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}
	defer logger.Sync()

	layout, err := resolveLayout(*root, cfg)
	if err != nil {
		log.Fatalf("Failed to resolve project root: %v", err)
	}
	logger.Info("resolved project layout", zap.String("root", layout.Root()))

	for _, dir := range layout.StandardDirectories() {
		if cfg.Paths.Strict {
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				logger.Fatal("missing layout directory", zap.String("dir", dir))
			}
			continue
		}
		if _, err := paths.EnsureDir(dir); err != nil {
			logger.Fatal("scaffold failed", zap.String("dir", dir), zap.Error(err))
		}
	}
	logger.Info("layout directories ready", zap.Int("count", len(layout.StandardDirectories())))

	if *manifestOut != "" {
		if err := manifest.FromLayout(layout).Write(*manifestOut); err != nil {
			logger.Fatal("manifest write failed", zap.Error(err))
		}
		logger.Info("wrote layout manifest", zap.String("path", *manifestOut))
	}

	if *tree {
		rendered, err := paths.Tree(layout.Root(), 0)
		if err != nil {
			logger.Fatal("tree render failed", zap.Error(err))
		}
		fmt.Print(rendered)
	}
}

// resolveLayout picks the root in precedence order: flag, environment,
// marker discovery.
func resolveLayout(flagRoot string, cfg *config.Config) (*paths.Layout, error) {
	switch {
	case flagRoot != "":
		return paths.New(flagRoot), nil
	case cfg.Paths.Root != "":
		return paths.New(cfg.Paths.Root), nil
	default:
		return paths.Discover()
	}
}
