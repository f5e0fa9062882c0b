package module

import "sync"

// process wide registry for cross wiring ports during bootstrap
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores a port set under a module name
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// PortsAs fetches and asserts the port set registered for name
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	out, ok2 := v.(T)
	return out, ok && ok2
}

// Reset clears the registry
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
