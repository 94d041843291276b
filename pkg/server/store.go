package server

import (
	"fmt"
	"sync"

	"github.com/intmat/intmat/pkg/sparse"
	"github.com/intmat/intmat/pkg/util"
)

// NotFoundError signals that no matrix is stored under the given id.
type NotFoundError struct {
	Id string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no matrix named %q", e.Id)
}

// StoredMatrix pairs a matrix with the mutex that serializes access to
// it.  The core matrix type mutates its arrays without synchronization,
// so every read or write of a stored matrix goes through LockAndRun.
type StoredMatrix struct {
	matrix *sparse.Matrix
	mutex  sync.Mutex
}

// NewStoredMatrix wraps m for shared use.
// It takes ownership of m; the caller must not use m anymore.
func NewStoredMatrix(m *sparse.Matrix) *StoredMatrix {
	return &StoredMatrix{matrix: m}
}

// LockAndRun runs f with exclusive access to the stored matrix.
func (sm *StoredMatrix) LockAndRun(f func(m *sparse.Matrix) error) error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	return f(sm.matrix)
}

// NamedMatrices stores matrices under caller-chosen names.
type NamedMatrices struct {
	util.SyncMap[string, *StoredMatrix]
}

// Set stores m under the given id, replacing any previous matrix.
// It takes ownership of m; the caller must not use m anymore.
func (nm *NamedMatrices) Set(id string, m *sparse.Matrix) (created bool) {
	_, loaded := nm.Swap(id, NewStoredMatrix(m))
	return !loaded
}

// Get returns the matrix stored under the given id.
func (nm *NamedMatrices) Get(id string) (*StoredMatrix, error) {
	sm, ok := nm.Load(id)
	if !ok {
		return nil, NotFoundError{Id: id}
	}
	return sm, nil
}

// Remove deletes the matrix stored under the given id.
func (nm *NamedMatrices) Remove(id string) error {
	if _, deleted := nm.LoadAndDelete(id); !deleted {
		return NotFoundError{Id: id}
	}
	return nil
}

// WithPair runs f with exclusive access to the two stored matrices.
// Locks are taken in id order so that concurrent pair operations cannot
// deadlock; the same id on both sides is locked once and f receives the
// same matrix twice.
func (nm *NamedMatrices) WithPair(
	aId, bId string, f func(a, b *sparse.Matrix) error,
) error {
	sa, err := nm.Get(aId)
	if err != nil {
		return err
	}
	sb, err := nm.Get(bId)
	if err != nil {
		return err
	}
	if sa == sb {
		return sa.LockAndRun(func(m *sparse.Matrix) error {
			return f(m, m)
		})
	}
	first, second := sa, sb
	if bId < aId {
		first, second = sb, sa
	}
	first.mutex.Lock()
	defer first.mutex.Unlock()
	second.mutex.Lock()
	defer second.mutex.Unlock()
	return f(sa.matrix, sb.matrix)
}
