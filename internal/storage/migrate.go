package storage

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// Migrate applies every *.sql file under dir in lexical order. A failing
// file is logged and skipped so a re-run against an already migrated
// database does not abort startup.
func (g *Gateway) Migrate(ctx context.Context, dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Printf("migration %s: read error: %v", file, err)
			continue
		}
		g.mu.Lock()
		_, err = g.conn.Exec(ctx, string(content))
		g.mu.Unlock()
		if err != nil {
			log.Printf("migration %s failed: %v", file, err)
			continue
		}
		log.Printf("migration %s applied", file)
	}
	return nil
}
