// Package hook runs user-supplied Tengo scripts around acquisition runs.
// Hooks are a reporting and customization point only; a failing hook never
// undoes completed fetch work.
package hook

// Type identifies when a hook fires.
type Type string

// Supported hook types.
const (
	PreFetch  Type = "pre-fetch"
	PostFetch Type = "post-fetch"
)

// Hook is a script bound to a hook type.
type Hook struct {
	Type    Type
	Content string
}

// Context carries the run information exposed to hook scripts as
// variables.
type Context struct {
	VersionID string
	GameDir   string
	Succeeded int
	Failed    int
	Vars      map[string]interface{}
}

// Manager defines the interface for registering and running hooks.
type Manager interface {
	// Execute runs the hook of the given type, if any is registered.
	Execute(hookType Type, ctx Context) error

	// AddHook registers or replaces a hook.
	AddHook(h Hook) error

	// HasHook checks if a hook of the specified type exists.
	HasHook(hookType Type) bool
}
