package stack

// Context is the session-scoped state shared by the manipulations of one
// code generation unit. Manipulations that do not need cross-cutting state
// must not touch it.
type Context interface {
	// Register stores value under key, replacing any previous value.
	Register(key string, value any)

	// Lookup returns the value stored under key.
	Lookup(key string) (any, bool)
}

// Session is a map-backed Context. Not safe for concurrent use.
type Session struct {
	values map[string]any
}

// NewSession creates an empty Session.
func NewSession() *Session {
	return &Session{values: make(map[string]any)}
}

// Register implements Context.
func (s *Session) Register(key string, value any) {
	s.values[key] = value
}

// Lookup implements Context.
func (s *Session) Lookup(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Len returns the number of registered keys.
func (s *Session) Len() int {
	return len(s.values)
}
