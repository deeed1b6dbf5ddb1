package hook

import (
	"fmt"
	"os"
	"sync"

	"github.com/echo-launcher/echolauncher/pkg/errors"
)

// DefaultManager is the default implementation of Manager.
type DefaultManager struct {
	executor *TengoExecutor
	mutex    sync.RWMutex
}

// NewManager creates a new hook manager.
func NewManager() *DefaultManager {
	return &DefaultManager{
		executor: NewTengoExecutor(),
	}
}

// Execute runs the specified hook type with the given context.
func (m *DefaultManager) Execute(hookType Type, ctx Context) error {
	if !m.HasHook(hookType) {
		return nil
	}
	if ctx.Vars == nil {
		ctx.Vars = make(map[string]interface{})
	}
	return m.executor.Execute(hookType, ctx)
}

// AddHook registers or replaces a hook.
func (m *DefaultManager) AddHook(h Hook) error {
	if h.Type == "" {
		return errors.Wrap(errors.ErrHookScript, "hook type cannot be empty")
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.executor.AddScript(h.Type, h.Content)
	return nil
}

// HasHook checks if a hook of the specified type exists.
func (m *DefaultManager) HasHook(hookType Type) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.executor.HasScript(hookType)
}

// LoadHookFile registers the script at path for the given hook type.
func (m *DefaultManager) LoadHookFile(hookType Type, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to load hook %s", path)
	}
	return m.AddHook(Hook{Type: hookType, Content: string(content)})
}

// HookFileName returns the conventional script filename for a hook type,
// e.g. post-fetch.tengo.
func HookFileName(hookType Type) string {
	return fmt.Sprintf("%s.tengo", hookType)
}
