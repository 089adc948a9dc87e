package intro

import "sync"

// ScrollLocker is the shared scroll-lock service. It is shared with
// consumers outside this subsystem, so locks are held under a named owner
// key and both calls are idempotent per owner.
type ScrollLocker interface {
	Lock(owner string)
	Unlock(owner string)
}

// LockTable is the in-process ScrollLocker. Scrolling is locked while any
// owner holds a lock.
type LockTable struct {
	mu     sync.Mutex
	owners map[string]struct{}
}

func NewLockTable() *LockTable {
	return &LockTable{owners: map[string]struct{}{}}
}

func (t *LockTable) Lock(owner string) {
	if owner == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.owners[owner] = struct{}{}
}

func (t *LockTable) Unlock(owner string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.owners, owner)
}

// Locked reports whether any owner currently holds the lock.
func (t *LockTable) Locked() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.owners) > 0
}

// Bridge mirrors the store's lock and chrome flags onto external
// collaborators: the shared scroll-lock service and an optional chrome
// visibility signal. Close unconditionally releases the scroll lock —
// a session torn down mid-gate must never leave the page un-scrollable.
type Bridge struct {
	store  *Store
	locker ScrollLocker
	owner  string
	chrome func(visible bool)
	cancel CancelFunc
	closed bool
}

func NewBridge(store *Store, locker ScrollLocker, owner string, chrome func(visible bool)) *Bridge {
	b := &Bridge{store: store, locker: locker, owner: owner, chrome: chrome}
	b.apply(store.State())
	b.cancel = store.Subscribe(b.apply)
	return b
}

func (b *Bridge) apply(st State) {
	if b.closed {
		return
	}
	if b.locker != nil {
		if st.ScrollLocked {
			b.locker.Lock(b.owner)
		} else {
			b.locker.Unlock(b.owner)
		}
	}
	if b.chrome != nil {
		b.chrome(st.ChromeVisible)
	}
}

func (b *Bridge) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.cancel()
	if b.locker != nil {
		b.locker.Unlock(b.owner)
	}
}
