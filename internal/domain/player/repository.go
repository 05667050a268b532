package player

import "context"

// Repository describes player persistence needs from use cases. It is the
// closed, typed surface over the document store: scan, indexed lookups,
// insert, sparse patch, delete. Nothing dispatches on table names at runtime.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id string) (Player, bool, error)
	GetByExternalID(ctx context.Context, externalID string) (Player, bool, error)
	// GetByName uses the exact name index; FindByNameInsensitive falls back
	// to a full case-insensitive scan.
	GetByName(ctx context.Context, name string) (Player, bool, error)
	FindByNameInsensitive(ctx context.Context, name string) (Player, bool, error)
	Insert(ctx context.Context, item Player) error
	Patch(ctx context.Context, id string, patch Patch) error
	Delete(ctx context.Context, id string) error
}
