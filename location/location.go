// Package location holds the selected delivery address for a session.
// Checkout and pricing read it to decide delivery eligibility.
package location

import "sync"

type Location struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// DefaultLocation seeds every new session.
var DefaultLocation = Location{
	Address: "London ,UK",
	Lat:     6.9271,
	Lng:     80.6005,
}

type Context struct {
	mu        sync.Mutex
	locations map[string]Location
}

func NewContext() *Context {
	return &Context{locations: make(map[string]Location)}
}

// Selected returns the session's delivery address, falling back to the
// default seed.
func (c *Context) Selected(sessionID string) Location {
	c.mu.Lock()
	defer c.mu.Unlock()

	if loc, ok := c.locations[sessionID]; ok {
		return loc
	}
	return DefaultLocation
}

func (c *Context) Update(sessionID string, loc Location) {
	c.mu.Lock()
	c.locations[sessionID] = loc
	c.mu.Unlock()
}

func (c *Context) Drop(sessionID string) {
	c.mu.Lock()
	delete(c.locations, sessionID)
	c.mu.Unlock()
}
