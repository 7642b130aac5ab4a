package viewmodel

import (
	"context"
	"errors"
	"sync"
)

// ErrNoEdit is returned by Save when no create or edit is in progress.
var ErrNoEdit = errors.New("nothing is being edited")

// Saver persists a draft. id is 0 for a create.
type Saver[D any] interface {
	Create(ctx context.Context, d D) error
	Update(ctx context.Context, id int64, d D) error
}

// EditBuffer is the unsaved draft of the record being created or edited.
// It is discarded on Cancel and after a successful Save; a failed Save
// leaves it in place so the user can correct it.
type EditBuffer[D any] struct {
	saver Saver[D]

	mu     sync.Mutex
	active bool
	id     int64
	draft  D
}

func NewEditBuffer[D any](saver Saver[D]) *EditBuffer[D] {
	return &EditBuffer[D]{saver: saver}
}

func (e *EditBuffer[D]) BeginCreate(initial D) {
	e.begin(0, initial)
}

func (e *EditBuffer[D]) BeginEdit(id int64, draft D) {
	e.begin(id, draft)
}

func (e *EditBuffer[D]) begin(id int64, d D) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = true
	e.id = id
	e.draft = d
}

// Draft returns a copy of the draft, the id being edited (0 for a create)
// and whether an edit is in progress.
func (e *EditBuffer[D]) Draft() (D, int64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft, e.id, e.active
}

// Modify applies fn to the draft in place.
func (e *EditBuffer[D]) Modify(fn func(d *D)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active {
		fn(&e.draft)
	}
}

func (e *EditBuffer[D]) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	var zero D
	e.active = false
	e.id = 0
	e.draft = zero
}

func (e *EditBuffer[D]) Save(ctx context.Context) error {
	d, id, ok := e.Draft()
	if !ok {
		return ErrNoEdit
	}

	var err error
	if id == 0 {
		err = e.saver.Create(ctx, d)
	} else {
		err = e.saver.Update(ctx, id, d)
	}
	if err != nil {
		return err
	}
	e.Cancel()
	return nil
}
