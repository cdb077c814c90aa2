// Package memory keeps all aggregates in process memory. It backs the
// development mode and the workflow tests.
//
// Units of work are serialized: Begin waits until no other unit of work is
// open, then works on a snapshot of the committed state. Commit publishes the
// snapshot, Rollback drops it. Lock* methods are plain reads since the open
// unit of work already excludes every other writer.
package memory

import (
	"context"
	"errors"
	"sync"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

var (
	ErrNoTransaction = errors.New("no active transaction")
	ErrDuplicateKey  = errors.New("duplicate key")
)

type state struct {
	trucks      map[kernel.UUID]truckRecord
	warehouses  map[kernel.UUID]*warehouse.Warehouse
	lines       map[kernel.UUID]lineRecord
	transfers   map[kernel.UUID]transferRecord
	assignments map[kernel.UUID]assignmentRecord
	shipments   map[kernel.UUID]shipmentRecord
}

func newState() state {
	return state{
		trucks:      make(map[kernel.UUID]truckRecord),
		warehouses:  make(map[kernel.UUID]*warehouse.Warehouse),
		lines:       make(map[kernel.UUID]lineRecord),
		transfers:   make(map[kernel.UUID]transferRecord),
		assignments: make(map[kernel.UUID]assignmentRecord),
		shipments:   make(map[kernel.UUID]shipmentRecord),
	}
}

func (s state) clone() state {
	return state{
		trucks:      cloneMap(s.trucks),
		warehouses:  cloneMap(s.warehouses),
		lines:       cloneMap(s.lines),
		transfers:   cloneMap(s.transfers),
		assignments: cloneMap(s.assignments),
		shipments:   cloneMap(s.shipments),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Store is the committed state shared by all units of work.
type Store struct {
	writer chan struct{}
	mu     sync.RWMutex
	data   state
}

func NewStore() *Store {
	return &Store{
		writer: make(chan struct{}, 1),
		data:   newState(),
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.writer <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.writer
}

func (s *Store) snapshot() state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.clone()
}

func (s *Store) publish(st state) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = st
}

// access runs repository bodies either against a transaction snapshot or,
// outside a unit of work, directly against the committed state.
type access interface {
	read(fn func(st *state) error) error
	write(ctx context.Context, fn func(st *state) error) error
}

type txAccess struct {
	st *state
}

func (a txAccess) read(fn func(st *state) error) error {
	return fn(a.st)
}

func (a txAccess) write(_ context.Context, fn func(st *state) error) error {
	return fn(a.st)
}

type directAccess struct {
	store *Store
}

func (a directAccess) read(fn func(st *state) error) error {
	a.store.mu.RLock()
	defer a.store.mu.RUnlock()
	return fn(&a.store.data)
}

// write outside a unit of work still waits for open units of work, whose
// commit would otherwise overwrite it.
func (a directAccess) write(ctx context.Context, fn func(st *state) error) error {
	if err := a.store.acquire(ctx); err != nil {
		return err
	}
	defer a.store.release()

	st := a.store.snapshot()
	if err := fn(&st); err != nil {
		return err
	}
	a.store.publish(st)
	return nil
}
