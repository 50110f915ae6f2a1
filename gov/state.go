package gov

import "strconv"

// State is the durable key-value store backing the engine, provided by the
// host. Every mapping and counter the engine owns lives behind this
// interface; nothing else may mutate it.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// MemState is an in-memory State for tests and development hosts.
type MemState struct {
	db map[string]string
}

func NewMemState() *MemState {
	return &MemState{db: make(map[string]string)}
}

func (m *MemState) Set(key, value string) {
	m.db[key] = value
}

func (m *MemState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MemState) Delete(key string) {
	delete(m.db, key)
}

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func (e *Engine) getCount(key string) uint64 {
	ptr := e.state.Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func (e *Engine) setCount(key string, n uint64) {
	e.state.Set(key, strconv.FormatUint(n, 10))
}
