package store

import (
	"context"
	"sync"
)

// Backend persists the raw document. Read returns ErrDocumentNotExist when
// nothing has been written yet.
type Backend interface {
	Name() string
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// MemoryBackend keeps the document in process memory
type MemoryBackend struct {
	sync.Mutex
	data []byte
}

func NewMemoryBackend(initial []byte) *MemoryBackend {
	b := &MemoryBackend{}
	if initial != nil {
		b.data = append([]byte{}, initial...)
	}
	return b
}

func (b *MemoryBackend) Name() string { return "memory" }

func (b *MemoryBackend) Read(ctx context.Context) ([]byte, error) {
	b.Lock()
	defer b.Unlock()
	if b.data == nil {
		return nil, ErrDocumentNotExist
	}
	return append([]byte{}, b.data...), nil
}

func (b *MemoryBackend) Write(ctx context.Context, data []byte) error {
	b.Lock()
	defer b.Unlock()
	b.data = append([]byte{}, data...)
	return nil
}

func (b *MemoryBackend) Ping(ctx context.Context) error { return nil }

func (b *MemoryBackend) Close(ctx context.Context) error { return nil }
