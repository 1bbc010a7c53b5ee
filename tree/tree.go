package tree

import (
	"sync"

	"github.com/cosmos/iavl"
	"github.com/pkg/errors"
	dbm "github.com/tendermint/tm-db"
)

// Dirty is a state object that flushes its pending writes on Commit and
// switches to the last saved immutable tree afterwards.
type Dirty interface {
	Commit(db *iavl.MutableTree, version int64) error
	SetImmutableTree(immutableTree *iavl.ImmutableTree)
}

type ReadOnlyTree interface {
	Get(key []byte) (index int64, value []byte)
	Version() int64
	Hash() []byte
	Iterate(fn func(key []byte, value []byte) bool) (stopped bool)
}

type MTree interface {
	ReadOnlyTree
	AvailableVersions() []int
	Set(key, value []byte) bool
	Remove(key []byte) ([]byte, bool)
	LoadVersion(targetVersion int64) (int64, error)
	LazyLoadVersion(targetVersion int64) (int64, error)
	Commit(objects ...Dirty) (hash []byte, version int64, err error)
	DeleteVersionIfExists(version int64) error
	GetLastImmutable() *iavl.ImmutableTree
	GetImmutableAtHeight(version int64) (*iavl.ImmutableTree, error)
}

// If you want to get read-only state, you should use height = 0 and LazyLoadVersion (version), see NewImmutableTree
func NewMutableTree(height uint64, db dbm.DB, cacheSize int, initialVersion uint64) (MTree, error) {
	tree, err := iavl.NewMutableTreeWithOpts(db, cacheSize, &iavl.Options{InitialVersion: initialVersion})
	if err != nil {
		return nil, err
	}

	if height == 0 {
		if _, err := tree.Load(); err != nil {
			return nil, errors.Wrap(err, "can't load last version")
		}
	} else {
		if _, err := tree.LoadVersionForOverwriting(int64(height)); err != nil {
			return nil, errors.Wrapf(err, "can't load version %d", height)
		}
	}

	return &mutableTree{tree: tree}, nil
}

type mutableTree struct {
	tree *iavl.MutableTree
	lock sync.RWMutex
}

func (t *mutableTree) Commit(objects ...Dirty) (hash []byte, version int64, err error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	nextVersion := t.tree.Version() + 1
	for _, object := range objects {
		if err := object.Commit(t.tree, nextVersion); err != nil {
			return nil, 0, err
		}
	}

	hash, version, err = t.tree.SaveVersion()
	if err != nil {
		return hash, version, err
	}

	for _, object := range objects {
		object.SetImmutableTree(t.tree.ImmutableTree)
	}

	return hash, version, nil
}

func (t *mutableTree) GetLastImmutable() *iavl.ImmutableTree {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.ImmutableTree
}

func (t *mutableTree) GetImmutableAtHeight(version int64) (*iavl.ImmutableTree, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.GetImmutable(version)
}

func (t *mutableTree) Iterate(fn func(key []byte, value []byte) bool) (stopped bool) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.Iterate(fn)
}

func (t *mutableTree) Hash() []byte {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.Hash()
}

func (t *mutableTree) Version() int64 {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.Version()
}

func (t *mutableTree) Get(key []byte) (index int64, value []byte) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.Get(key)
}

func (t *mutableTree) Set(key, value []byte) bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.tree.Set(key, value)
}

func (t *mutableTree) Remove(key []byte) ([]byte, bool) {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.tree.Remove(key)
}

func (t *mutableTree) LoadVersion(targetVersion int64) (int64, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.tree.LoadVersion(targetVersion)
}

func (t *mutableTree) LazyLoadVersion(targetVersion int64) (int64, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.tree.LazyLoadVersion(targetVersion)
}

func (t *mutableTree) DeleteVersionIfExists(version int64) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if !t.tree.VersionExists(version) {
		return nil
	}

	return t.tree.DeleteVersion(version)
}

func (t *mutableTree) AvailableVersions() []int {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.tree.AvailableVersions()
}

// NewImmutableTree returns a read-only tree at the given height.
// Warning: returns the MTree interface, but you should only use ReadOnlyTree
func NewImmutableTree(height uint64, db dbm.DB) (MTree, error) {
	tree, err := NewMutableTree(0, db, 1024, 0)
	if err != nil {
		return nil, err
	}

	if _, err := tree.LazyLoadVersion(int64(height)); err != nil {
		return nil, err
	}

	return tree, nil
}
