package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/carstorage/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/carstorage/internal/common"
)

// TokenSlot is the single process-wide place the token is persisted.
// Load returns "" when the slot is empty.
type TokenSlot interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type MemorySlot struct {
	mu    sync.Mutex
	token string
}

func NewMemorySlot() *MemorySlot { return &MemorySlot{} }

func (m *MemorySlot) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemorySlot) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemorySlot) Clear(context.Context) error {
	return m.Save(context.Background(), "")
}

const tokenKey = "token"

// MetadataSlot keeps the token in the local metadata table.
type MetadataSlot struct {
	repo metadata.Repository
}

func NewMetadataSlot(repo metadata.Repository) *MetadataSlot {
	return &MetadataSlot{repo: repo}
}

func (m *MetadataSlot) Load(ctx context.Context) (string, error) {
	v, err := m.repo.Get(ctx, tokenKey)
	if errors.Is(err, common.ErrorNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (m *MetadataSlot) Save(ctx context.Context, token string) error {
	return m.repo.Put(ctx, tokenKey, []byte(token))
}

func (m *MetadataSlot) Clear(ctx context.Context) error {
	return m.repo.Delete(ctx, tokenKey)
}
