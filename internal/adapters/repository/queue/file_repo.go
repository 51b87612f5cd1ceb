package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/safevoice-org/voicebridge/internal/config"
	"github.com/safevoice-org/voicebridge/internal/domain"
	"github.com/safevoice-org/voicebridge/internal/domain/models"
	"github.com/safevoice-org/voicebridge/internal/usecase"
)

const (
	QueueFile    = "queue.json"
	SnapshotFile = "snapshot.json"
)

// FileRepository stores the transaction outbox and the last balance snapshot
// as JSON files in the data directory. Entries are ordered by insertion; a
// fresh repository over the same directory restores the full queue.
type FileRepository struct {
	dataDir  string
	mu       sync.RWMutex
	entries  []*models.QueuedTransaction
	byID     map[string]int
	snapshot *models.BalanceSnapshot
}

// NewFileRepository creates a repository rooted at dataDir, loading any
// previously persisted state.
func NewFileRepository(dataDir string) (*FileRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	r := &FileRepository{
		dataDir: dataDir,
		byID:    make(map[string]int),
	}

	if err := r.load(); err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}

	return r, nil
}

// NewFileRepositoryFromConfig creates a FileRepository from RuntimeConfig
func NewFileRepositoryFromConfig(cfg *config.RuntimeConfig) (*FileRepository, error) {
	return NewFileRepository(cfg.DataDir)
}

func (r *FileRepository) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadFile(QueueFile, &r.entries); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := r.loadFile(SnapshotFile, &r.snapshot); err != nil && !os.IsNotExist(err) {
		return err
	}

	r.rebuildIndex()
	return nil
}

func (r *FileRepository) loadFile(filename string, v any) error {
	data, err := os.ReadFile(filepath.Join(r.dataDir, filename))
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (r *FileRepository) saveFile(filename string, v any) error {
	path := filepath.Join(r.dataDir, filename)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	// Write to temp file first, then atomic rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func (r *FileRepository) rebuildIndex() {
	r.byID = make(map[string]int, len(r.entries))
	for i, e := range r.entries {
		r.byID[e.ID] = i
	}
}

// Append creates a new pending entry, assigns a unique id, persists the
// queue, and returns a copy of the entry. The metadata kind must match the
// entry type.
func (r *FileRepository) Append(ctx context.Context, txType models.TxType, chainID uint64, md models.Metadata, opt *models.OptimisticUpdate) (*models.QueuedTransaction, error) {
	if md.Kind != txType {
		return nil, domain.ErrMetadataMismatch
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry := &models.QueuedTransaction{
		ID:         fmt.Sprintf("tx-%s", uuid.NewString()),
		Type:       txType,
		Status:     models.StatusPending,
		ChainID:    chainID,
		Metadata:   md,
		Optimistic: opt,
		CreatedAt:  time.Now().UTC(),
	}

	r.entries = append(r.entries, entry)
	r.byID[entry.ID] = len(r.entries) - 1

	if err := r.saveFile(QueueFile, r.entries); err != nil {
		return nil, err
	}

	clone := *entry
	return &clone, nil
}

// Update merges patch fields into an existing entry and re-persists. Unknown
// ids are a silent no-op. Status changes must follow the lifecycle; hash is
// write-once.
func (r *FileRepository) Update(ctx context.Context, id string, patch models.TransactionPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil
	}
	entry := r.entries[idx]

	if patch.Status != nil && *patch.Status != entry.Status {
		if !entry.Status.CanTransition(*patch.Status) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, entry.Status, *patch.Status)
		}
		entry.Status = *patch.Status
	}
	if patch.Hash != nil && entry.Hash == "" {
		entry.Hash = *patch.Hash
	}
	if patch.Receipt != nil {
		entry.Receipt = patch.Receipt
	}
	if patch.Error != nil {
		entry.Error = *patch.Error
	}
	if patch.ConfirmedAt != nil {
		entry.ConfirmedAt = patch.ConfirmedAt
	}

	return r.saveFile(QueueFile, r.entries)
}

// Get retrieves an entry by id.
func (r *FileRepository) Get(ctx context.Context, id string) (*models.QueuedTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	clone := *r.entries[idx]
	return &clone, nil
}

// List returns all entries in insertion order.
func (r *FileRepository) List(ctx context.Context) ([]*models.QueuedTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.entries, func(e *models.QueuedTransaction, _ int) *models.QueuedTransaction {
		clone := *e
		return &clone
	}), nil
}

// ListPending returns entries still awaiting a final outcome, in insertion
// order.
func (r *FileRepository) ListPending(ctx context.Context) ([]*models.QueuedTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	open := lo.Filter(r.entries, func(e *models.QueuedTransaction, _ int) bool {
		return e.Open()
	})
	return lo.Map(open, func(e *models.QueuedTransaction, _ int) *models.QueuedTransaction {
		clone := *e
		return &clone
	}), nil
}

// Clear empties the queue and persists the empty state. Calling it on an
// already-empty queue is not an error.
func (r *FileRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.byID = make(map[string]int)
	return r.saveFile(QueueFile, []*models.QueuedTransaction{})
}

// SaveSnapshot overwrites the persisted balance snapshot.
func (r *FileRepository) SaveSnapshot(ctx context.Context, snap *models.BalanceSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot = snap
	return r.saveFile(SnapshotFile, snap)
}

// GetSnapshot returns the last persisted balance snapshot.
func (r *FileRepository) GetSnapshot(ctx context.Context) (*models.BalanceSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.snapshot == nil {
		return nil, domain.ErrNotFound
	}

	clone := *r.snapshot
	return &clone, nil
}

var _ usecase.TransactionQueue = (*FileRepository)(nil)
var _ usecase.SnapshotStore = (*FileRepository)(nil)
