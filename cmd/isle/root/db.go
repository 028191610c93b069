package root

import (
	"context"
	"strings"

	"github.com/aa0979783096-byte/hamster-island/internal/config"
	"github.com/aa0979783096-byte/hamster-island/internal/engine"
	"github.com/aa0979783096-byte/hamster-island/internal/storage"
)

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg := config.Load()

	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}

	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return engine.NewService(ctx, db, cfg.ProfileName), cleanup, nil
}

// resolveTaskID matches a full task id or a unique id prefix. Returns ""
// when nothing (or more than one task) matches.
func resolveTaskID(svc *engine.Service, input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	match := ""
	for _, t := range svc.Tasks() {
		if t.ID == input {
			return t.ID
		}
		if strings.HasPrefix(t.ID, input) {
			if match != "" {
				return ""
			}
			match = t.ID
		}
	}
	return match
}
