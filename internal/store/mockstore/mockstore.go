package mockstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/pkg/config"
)

// Collection document keys. The prefix is kept stable so snapshots written by
// older deployments keep loading.
const (
	keyUsers          = "isfdyt26_users"
	keyEvents         = "isfdyt26_events"
	keyNotifications  = "isfdyt26_notifications"
	keyJustifications = "isfdyt26_justifications"
	keyCareers        = "isfdyt26_careers"
	keyMessages       = "isfdyt26_messages"
	keyGroups         = "isfdyt26_groups"
	keyClassrooms     = "isfdyt26_classrooms"
	keyBlocked        = "isfdyt26_blocked"
	keyFinals         = "isfdyt26_finals"
)

// Mock is the in-process backend. Each collection is stored as one JSON
// document under its key; reads decode the whole document and writes replace
// it. A single mutex serialises everything, which is plenty for the demo
// dataset this backend exists to serve.
type Mock struct {
	mu       sync.Mutex
	docs     map[string][]byte
	dataFile string
	catalog  *CourseCatalog
	logger   *zap.Logger
}

// New builds the mock backend. Courses are served by the shared catalog.
func New(cfg config.MockConfig, catalog *CourseCatalog, logger *zap.Logger) *Mock {
	return &Mock{
		docs:     make(map[string][]byte),
		dataFile: cfg.DataFile,
		catalog:  catalog,
		logger:   logger,
	}
}

// Initialize loads the snapshot when configured and seeds any collection
// whose key is absent. Seeding is keyed on presence, not content: an empty
// document is respected, a missing one is filled.
func (m *Mock) Initialize(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dataFile != "" {
		if err := m.loadSnapshot(); err != nil {
			return fmt.Errorf("load mock snapshot: %w", err)
		}
	}

	m.seedMissing()

	if m.dataFile != "" {
		if err := m.saveSnapshot(); err != nil {
			return fmt.Errorf("persist mock snapshot: %w", err)
		}
	}

	m.logger.Info("mock backend ready", zap.Int("collections", len(m.docs)))
	return nil
}

// read decodes the collection document under key into out. Missing keys
// leave out untouched.
func (m *Mock) read(key string, out interface{}) error {
	raw, ok := m.docs[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// write replaces the collection document under key and persists the snapshot
// when one is configured.
func (m *Mock) write(key string, in interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	m.docs[key] = raw

	if m.dataFile != "" {
		if err := m.saveSnapshot(); err != nil {
			m.logger.Warn("snapshot write failed", zap.Error(err))
		}
	}
	return nil
}

func (m *Mock) loadSnapshot() error {
	raw, err := os.ReadFile(m.dataFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	snapshot := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return err
	}
	for key, doc := range snapshot {
		m.docs[key] = doc
	}
	return nil
}

func (m *Mock) saveSnapshot() error {
	snapshot := make(map[string]json.RawMessage, len(m.docs))
	for key, doc := range m.docs {
		snapshot[key] = doc
	}
	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.dataFile, raw, 0o644)
}
