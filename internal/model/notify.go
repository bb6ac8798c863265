package model

// Notifier receives bracketed change announcements around every structural
// mutation of the model. It is implemented by the presentation layer (or a
// recorder in tests) and injected at construction time.
//
// Brackets are strict: the Begin call happens before the model mutates and
// the End call after. BeginMoveRows may refuse by returning false, in which
// case the model aborts the move with no side effect.
type Notifier interface {
	BeginInsertRows(first, last int)
	EndInsertRows()
	BeginRemoveRows(first, last int)
	EndRemoveRows()
	BeginMoveRows(first, last, dest int) bool
	EndMoveRows()
	DataChanged(first, last int)
}

// nopNotifier accepts every change and announces nothing.
type nopNotifier struct{}

func (nopNotifier) BeginInsertRows(first, last int) {}

func (nopNotifier) EndInsertRows() {}

func (nopNotifier) BeginRemoveRows(first, last int) {}

func (nopNotifier) EndRemoveRows() {}

func (nopNotifier) BeginMoveRows(first, last, dest int) bool { return true }

func (nopNotifier) EndMoveRows() {}

func (nopNotifier) DataChanged(first, last int) {}
