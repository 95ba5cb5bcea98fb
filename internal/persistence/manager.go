package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/tindwyr/crafthall/internal/catalog"
	"github.com/tindwyr/crafthall/internal/inventory"
	"github.com/tindwyr/crafthall/internal/logger"
	"github.com/tindwyr/crafthall/internal/recipebook"
)

// Manager ties the snapshot store to the live services. Save captures their
// state; Load validates a stored snapshot and applies it, falling back to
// the starter state whenever the save is missing or fails validation.
type Manager struct {
	store   Store
	recipes *catalog.RecipeCatalog
	bag     inventory.Service
	book    recipebook.Service
	now     func() time.Time
}

// NewManager creates a new persistence manager
func NewManager(store Store, recipes *catalog.RecipeCatalog, bag inventory.Service, book recipebook.Service) *Manager {
	return &Manager{
		store:   store,
		recipes: recipes,
		bag:     bag,
		book:    book,
		now:     time.Now,
	}
}

// Save captures the current ledger and book state and persists it
func (m *Manager) Save(ctx context.Context) error {
	log := logger.FromContext(ctx)

	snapshot := &Snapshot{
		Version: SnapshotVersion,
		SavedAt: m.now(),
		Stacks:  m.bag.Stacks(),
		Gold:    m.bag.Gold(),
		Entries: m.book.Entries(),
	}

	data, err := Serialize(snapshot)
	if err != nil {
		return err
	}
	if err := m.store.Save(ctx, data); err != nil {
		return err
	}

	log.Info(LogMsgSnapshotSaved, "stacks", len(snapshot.Stacks), "gold", snapshot.Gold, "entries", len(snapshot.Entries))
	return nil
}

// Load restores state from the store. A missing save starts fresh; a save
// that fails decoding or validation is rejected in full, never partially
// applied, and the starter state is used instead.
func (m *Manager) Load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	data, err := m.store.Load(ctx)
	if errors.Is(err, ErrNoSave) {
		log.Info(LogMsgNoSaveFound)
		m.apply(Starter(m.recipes, m.now()))
		return nil
	}
	if err != nil {
		return err
	}

	snapshot, err := Deserialize(data)
	if err != nil {
		log.Warn(LogMsgSnapshotRejected, "error", err)
		m.apply(Starter(m.recipes, m.now()))
		return nil
	}

	if issues := Validate(snapshot, m.recipes); len(issues) > 0 {
		log.Warn(LogMsgSnapshotRejected, "issues", issues)
		m.apply(Starter(m.recipes, m.now()))
		return nil
	}

	m.apply(snapshot)
	log.Info(LogMsgSnapshotLoaded, "stacks", len(snapshot.Stacks), "gold", snapshot.Gold, "entries", len(snapshot.Entries))
	return nil
}

func (m *Manager) apply(s *Snapshot) {
	m.bag.Restore(s.Stacks, s.Gold)
	m.book.Restore(s.Entries)
}
