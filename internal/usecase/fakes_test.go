package usecase

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

type memProfiles struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Profile
	err   error
}

func newMemProfiles() *memProfiles {
	return &memProfiles{items: map[uuid.UUID]domain.Profile{}}
}

func (m *memProfiles) Create(_ context.Context, p *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[p.ID] = *p
	return nil
}

func (m *memProfiles) Fetch(_ context.Context, id uuid.UUID) (domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok {
		return domain.Profile{}, domain.ErrNotFound
	}
	return p, nil
}

type memUsers struct {
	mu    sync.Mutex
	items map[string]domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{items: map[string]domain.User{}}
}

func (m *memUsers) Create(_ context.Context, u domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[u.Email]; ok {
		return domain.ErrEmailTaken
	}
	m.items[u.Email] = u
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.items[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

// fakeRenderer returns a deterministic PDF-looking body that changes on
// every call, like a real converter stamping a creation date.
type fakeRenderer struct {
	calls int
	err   error
	raw   []byte
}

func (f *fakeRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.raw != nil {
		return f.raw, nil
	}
	return []byte(fmt.Sprintf("%%PDF-1.4\n%% call %d\n%x", f.calls, sha256.Sum256([]byte(html)))), nil
}

type memArchive struct {
	items map[string][]byte
	puts  int
}

func newMemArchive() *memArchive { return &memArchive{items: map[string][]byte{}} }

func (a *memArchive) Get(_ context.Context, key string) ([]byte, error) {
	b, ok := a.items[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (a *memArchive) Put(_ context.Context, key string, data []byte, _ string) error {
	if !strings.HasPrefix(key, "renders/") {
		return fmt.Errorf("unexpected key %q", key)
	}
	a.puts++
	a.items[key] = data
	return nil
}
