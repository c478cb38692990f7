// Package commands implements the planner CLI subcommands. Every
// command hydrates the local snapshot store before acting, so the CLI
// and any other process sharing the data directory see the same state.
package commands

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/benvon/zen-planner/internal/config"
	"github.com/benvon/zen-planner/internal/store"
)

// openStore loads configuration and hydrates the snapshot store from
// the configured data directory.
func openStore() (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	persistence, err := store.NewDiskvPersistence(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open data directory %s: %w", cfg.DataDir, err)
	}

	st := store.New(persistence)
	if err := st.Hydrate(); err != nil {
		return nil, nil, err
	}
	return st, cfg, nil
}

// resolveID matches an id argument against a list of entity ids. A full
// uuid matches exactly; anything shorter matches as a unique prefix.
func resolveID(arg string, ids []uuid.UUID) (uuid.UUID, error) {
	if id, err := uuid.Parse(arg); err == nil {
		return id, nil
	}

	var matched []uuid.UUID
	for _, id := range ids {
		if strings.HasPrefix(id.String(), strings.ToLower(arg)) {
			matched = append(matched, id)
		}
	}
	switch len(matched) {
	case 1:
		return matched[0], nil
	case 0:
		return uuid.Nil, fmt.Errorf("no entry matches id %q", arg)
	default:
		return uuid.Nil, fmt.Errorf("id %q is ambiguous (%d matches)", arg, len(matched))
	}
}

// shortID renders the first uuid segment, enough to disambiguate in
// small collections.
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
