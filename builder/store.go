package builder

import (
	"sync"
	"time"
)

// Store keeps live wizard sessions in memory. Abandoned sessions are swept
// out after the TTL; nothing is persisted until checkout.
type Store struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*storeEntry
}

type storeEntry struct {
	sess     *Session
	lastSeen time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]*storeEntry),
	}
}

// Run sweeps expired sessions until the process exits. Start it with `go`.
func (st *Store) Run() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		st.sweep(time.Now())
	}
}

func (st *Store) sweep(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for token, e := range st.sessions {
		if now.Sub(e.lastSeen) > st.ttl {
			delete(st.sessions, token)
		}
	}
}

func (st *Store) Put(sess *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[sess.Token] = &storeEntry{sess: sess, lastSeen: time.Now()}
}

func (st *Store) Get(token string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[token]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.sess, true
}

func (st *Store) Delete(token string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, token)
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
