package cart

// Event names delivered to subscribers. They drive notifications and badge
// updates in the presentation layer and carry no cart state beyond the
// affected product name.
const (
	EventItemAdded   = "item-added"
	EventItemRemoved = "item-removed"
	EventCartCleared = "cart-cleared"
)

type Event struct {
	Name string
	Item string // product name for item events, empty for cart-cleared
}

// Events is a minimal observer registry. Listeners run synchronously in
// subscription order on the mutating goroutine, after the mutation has
// been persisted.
type Events struct {
	listeners []func(Event)
}

func NewEvents() *Events {
	return &Events{}
}

func (e *Events) Subscribe(fn func(Event)) {
	e.listeners = append(e.listeners, fn)
}

func (e *Events) emit(ev Event) {
	for _, fn := range e.listeners {
		fn(ev)
	}
}
