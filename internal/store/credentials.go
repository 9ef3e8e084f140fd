package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/kavyabhat/scanlate/internal/domain"
)

// CredentialStore keeps every chat's named Gemini API keys with a single
// active pointer per chat. Every mutation rewrites the whole backing
// document synchronously before returning. A single mutex serializes
// mutations, so two near-simultaneous commands for the same chat cannot
// race-overwrite each other's snapshot.
type CredentialStore struct {
	mu   sync.Mutex
	path string
	data map[int64]*domain.CredentialSet
}

// LoadCredentialStore reads the backing document, treating a missing or
// corrupt file as an empty store.
func LoadCredentialStore(path string) *CredentialStore {
	s := &CredentialStore{
		path: path,
		data: make(map[int64]*domain.CredentialSet),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("read credentials file", "path", path, "error", err)
		}
		return s
	}

	var doc map[string]*domain.CredentialSet
	if err := json.Unmarshal(raw, &doc); err != nil {
		slog.Error("corrupt credentials file, starting empty", "path", path, "error", err)
		return s
	}

	for cid, set := range doc {
		id, err := strconv.ParseInt(cid, 10, 64)
		if err != nil || set == nil {
			continue
		}
		if set.Keys == nil {
			set.Keys = make(map[string]string)
		}
		s.data[id] = set
	}
	slog.Info("loaded credential store", "chats", len(s.data))
	return s
}

// GetActive returns the chat's active key secret, or "" if none is set.
func (s *CredentialStore) GetActive(chatID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.data[chatID]
	if !ok || set.Active == "" {
		return ""
	}
	return set.Keys[set.Active]
}

// Add stores a key under name, overwriting silently on collision. The
// first key added to an empty set becomes active.
func (s *CredentialStore) Add(chatID int64, name, secret string) error {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return domain.Validationf("API key cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.ensure(chatID)
	set.Keys[name] = secret
	if set.Active == "" {
		set.Active = name
	}
	return s.persist()
}

// SetActive marks name as the chat's active key. Returns false (no-op)
// if the name is unknown.
func (s *CredentialStore) SetActive(chatID int64, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.ensure(chatID)
	if _, ok := set.Keys[name]; !ok {
		return false
	}
	set.Active = name
	if err := s.persist(); err != nil {
		slog.Error("persist credentials", "error", err)
	}
	return true
}

// Delete removes a key. If it was active, an arbitrary remaining key is
// promoted, or the active pointer is cleared when none remain.
func (s *CredentialStore) Delete(chatID int64, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.ensure(chatID)
	if _, ok := set.Keys[name]; !ok {
		return false
	}
	delete(set.Keys, name)
	if set.Active == name {
		set.Active = ""
		for remaining := range set.Keys {
			set.Active = remaining
			break
		}
	}
	if err := s.persist(); err != nil {
		slog.Error("persist credentials", "error", err)
	}
	return true
}

// Rename moves a key to a new name, keeping the active pointer correct.
// The new name is trimmed; a blank one is rejected.
func (s *CredentialStore) Rename(chatID int64, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return domain.Validationf("Key name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.ensure(chatID)
	if _, taken := set.Keys[newName]; taken {
		return domain.ErrNameTaken
	}
	secret, ok := set.Keys[oldName]
	if !ok {
		return domain.ErrKeyNotFound
	}

	delete(set.Keys, oldName)
	set.Keys[newName] = secret
	if set.Active == oldName {
		set.Active = newName
	}
	return s.persist()
}

// List returns the chat's key names sorted ascending, with the active
// one flagged. Sorted output keeps menu rendering stable.
func (s *CredentialStore) List(chatID int64) []domain.KeyInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.data[chatID]
	if !ok {
		return nil
	}
	infos := make([]domain.KeyInfo, 0, len(set.Keys))
	for name := range set.Keys {
		infos = append(infos, domain.KeyInfo{Name: name, Active: name == set.Active})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Has reports whether the chat owns a key with the given name.
func (s *CredentialStore) Has(chatID int64, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.data[chatID]
	if !ok {
		return false
	}
	_, found := set.Keys[name]
	return found
}

func (s *CredentialStore) ensure(chatID int64) *domain.CredentialSet {
	set, ok := s.data[chatID]
	if !ok {
		set = &domain.CredentialSet{Keys: make(map[string]string)}
		s.data[chatID] = set
	}
	return set
}

// persist rewrites the whole document. Callers hold s.mu. The write goes
// through a temp file and rename so a crash mid-write cannot leave a
// truncated snapshot behind.
func (s *CredentialStore) persist() error {
	doc := make(map[string]*domain.CredentialSet, len(s.data))
	for id, set := range s.data {
		doc[strconv.FormatInt(id, 10)] = set
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace credentials: %w", err)
	}
	return nil
}
