package datalog

import (
	"fmt"

	"github.com/arloliu/wpilog/errs"
)

// correlationTable maintains the binding from transient numeric entry IDs to
// entries over a single forward pass. The format permits an ID to be reused
// by a new Start after a Finish, but this decoder deliberately does not
// implement reuse: a closed binding stays in the table so any rebind fails.
type correlationTable struct {
	bindings map[uint32]*tableBinding
}

type tableBinding struct {
	entry  *Entry
	closed bool
}

func newCorrelationTable() *correlationTable {
	return &correlationTable{
		bindings: make(map[uint32]*tableBinding),
	}
}

// bind registers a Start control record's ID-to-entry binding.
// Fails with errs.ErrUnsupportedRebinding if the ID was ever bound in this
// pass, whether or not the earlier binding has been finished.
func (t *correlationTable) bind(id uint32, entry *Entry) error {
	if _, ok := t.bindings[id]; ok {
		return fmt.Errorf("%w: entry ID %d already bound", errs.ErrUnsupportedRebinding, id)
	}

	t.bindings[id] = &tableBinding{entry: entry}

	return nil
}

// resolve returns the entry currently bound to id. A closed binding is not
// live: referencing it fails the same way an unknown ID does.
func (t *correlationTable) resolve(id uint32) (*Entry, error) {
	b, ok := t.bindings[id]
	if !ok || b.closed {
		return nil, fmt.Errorf("%w: entry ID %d", errs.ErrUnboundEntryReference, id)
	}

	return b.entry, nil
}

// finish closes the live binding for id and marks its entry finished.
func (t *correlationTable) finish(id uint32) error {
	entry, err := t.resolve(id)
	if err != nil {
		return err
	}

	entry.finished = true
	t.bindings[id].closed = true

	return nil
}
