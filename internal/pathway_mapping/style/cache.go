package style

import (
	"fmt"
	"sort"
	"sync"
)

var builders = map[string]func() *Style{
	BioPAX:    newBioPAX,
	BioPAXSIF: newBioPAXSIF,
}

// Names lists the styles a Cache can build.
func Names() []string {
	out := make([]string, 0, len(builders))
	for n := range builders {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Cache builds each named style once and hands out the same instance
// afterwards. Pass it to whoever needs styles; it is safe for concurrent use.
type Cache struct {
	mu     sync.Mutex
	styles map[string]*Style
}

func NewCache() *Cache {
	return &Cache{styles: map[string]*Style{}}
}

func (c *Cache) Get(name string) (*Style, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.styles[name]; ok {
		return s, nil
	}
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("style %q not found", name)
	}
	s := build()
	c.styles[name] = s
	return s, nil
}

// ForNetworkType picks the style matching a network's BIOPAX_NETWORK value.
func (c *Cache) ForNetworkType(networkType string) (*Style, error) {
	if networkType == "SIF" {
		return c.Get(BioPAXSIF)
	}
	return c.Get(BioPAX)
}
