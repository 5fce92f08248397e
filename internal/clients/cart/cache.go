package cart

import (
	"sync"

	"github.com/shopilens/storefront-api/internal/domains/cart/adapters/http/mapper"
)

// State is a snapshot of the client-side cart store. Items always reflects
// the last response the server sent; Err holds the message of the last
// failure while Items keeps the stale-but-usable cart.
type State struct {
	Items   []mapper.LineItem
	IsOpen  bool
	Loading bool
	Err     string
}

// ItemCount sums the quantities across all line items.
func (s State) ItemCount() int64 {
	var count int64
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}

// Total sums price times quantity across all line items.
func (s State) Total() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func (s State) clone() State {
	items := make([]mapper.LineItem, len(s.Items))
	copy(items, s.Items)
	s.Items = items
	return s
}

// Cache is the observable cart store. All mutations replace the item list
// wholesale; subscribers receive a snapshot after every change.
type Cache struct {
	mu          sync.Mutex
	state       State
	nextSubID   int
	subscribers map[int]func(State)
}

func NewCache() *Cache {
	return &Cache{
		state:       State{Items: []mapper.LineItem{}},
		subscribers: map[int]func(State){},
	}
}

// State returns a snapshot of the current store.
func (c *Cache) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Subscribe registers a listener for state changes and returns its
// unsubscribe function. Listeners are called with a snapshot; mutating it
// does not affect the store.
func (c *Cache) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// Replace swaps the item list wholesale with the server's response and
// clears any pending loading flag or error.
func (c *Cache) Replace(items []mapper.LineItem) {
	c.update(func(s *State) {
		if items == nil {
			items = []mapper.LineItem{}
		}
		s.Items = items
		s.Loading = false
		s.Err = ""
	})
}

// Fail records a failed request. The stale item list stays in place so the
// UI keeps rendering the last known cart.
func (c *Cache) Fail(message string) {
	c.update(func(s *State) {
		s.Loading = false
		s.Err = message
	})
}

// Begin marks a request in flight.
func (c *Cache) Begin() {
	c.update(func(s *State) {
		s.Loading = true
	})
}

// Toggle flips the cart drawer.
func (c *Cache) Toggle() {
	c.update(func(s *State) { s.IsOpen = !s.IsOpen })
}

// Open shows the cart drawer.
func (c *Cache) Open() {
	c.update(func(s *State) { s.IsOpen = true })
}

// Close hides the cart drawer.
func (c *Cache) Close() {
	c.update(func(s *State) { s.IsOpen = false })
}

func (c *Cache) update(mutate func(*State)) {
	c.mu.Lock()
	mutate(&c.state)
	snapshot := c.state.clone()
	listeners := make([]func(State), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}
