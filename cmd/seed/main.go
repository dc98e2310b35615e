// Seeds the item catalog from configs/items/catalog.json. Safe to
// rerun: entries upsert by item name and keep their ids.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lootgrid/lootgrid/internal/config"
	"github.com/lootgrid/lootgrid/internal/database"
	"github.com/lootgrid/lootgrid/internal/database/postgres"
	"github.com/lootgrid/lootgrid/internal/domain"
	"github.com/lootgrid/lootgrid/internal/logger"
)

type catalogEntry struct {
	Name           string `json:"name"`
	PointValue     int    `json:"point_value"`
	ReferenceImage string `json:"reference_image"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("Seed failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)

	entries, err := loadCatalog(config.ConfigPathItemCatalog)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := database.Migrate(ctx, cfg.GetDBConnString()); err != nil {
		return err
	}

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(),
		database.DefaultMaxConnections, 30*time.Minute, time.Hour)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	items := postgres.NewItemRepository(dbPool)
	for _, entry := range entries {
		id, err := items.InsertItem(ctx, &domain.Item{
			Name:           entry.Name,
			PointValue:     entry.PointValue,
			ReferenceImage: entry.ReferenceImage,
		})
		if err != nil {
			return fmt.Errorf("failed to seed item %q: %w", entry.Name, err)
		}
		slog.Info("Seeded item", "id", id, "name", entry.Name, "points", entry.PointValue)
	}

	slog.Info("Catalog seed complete", "items", len(entries))
	return nil
}

// loadCatalog reads and validates the catalog file. Relative image
// paths are resolved against the images directory so the bot can load
// them without knowing where the seed ran from.
func loadCatalog(path string) ([]catalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var entries []catalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(entries))
	for i, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		if entry.PointValue < 0 {
			return nil, fmt.Errorf("item %q has negative point value", entry.Name)
		}
		if entry.ReferenceImage == "" {
			return nil, fmt.Errorf("item %q has no reference image", entry.Name)
		}
		if seen[entry.Name] {
			return nil, fmt.Errorf("duplicate catalog entry %q", entry.Name)
		}
		seen[entry.Name] = true

		if !filepath.IsAbs(entry.ReferenceImage) && !isURL(entry.ReferenceImage) {
			entries[i].ReferenceImage = filepath.Join(config.ConfigPathItemImagesDir, entry.ReferenceImage)
		}
	}
	return entries, nil
}

func isURL(ref string) bool {
	return len(ref) > 8 && (ref[:7] == "http://" || ref[:8] == "https://")
}
