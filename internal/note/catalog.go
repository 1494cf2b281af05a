package note

import "sync"

// Catalog is the globally shared set of known tags. The editor only reads it;
// new tags reach it through the host's OnAddTag handler.
type Catalog struct {
	mu   sync.RWMutex
	tags []Tag
	ids  map[string]struct{}
}

// NewCatalog returns a catalog seeded with the given tags. Tags sharing an
// id with an earlier entry are dropped.
func NewCatalog(seed ...Tag) *Catalog {
	c := &Catalog{ids: make(map[string]struct{}, len(seed))}
	for _, tag := range seed {
		c.add(tag)
	}
	return c
}

// SeedCatalog builds a catalog with a fresh tag for every label.
func SeedCatalog(labels []string, newID IDFunc) *Catalog {
	c := NewCatalog()
	for _, label := range labels {
		c.add(NewTag(label, newID))
	}
	return c
}

// Tags returns the catalog contents in insertion order.
func (c *Catalog) Tags() []Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CloneTags(c.tags)
}

// Len reports the number of tags in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tags)
}

// Add folds a tag into the catalog. It returns false when a tag with the same
// id is already known; equal labels with distinct ids are both kept.
func (c *Catalog) Add(tag Tag) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.add(tag)
}

func (c *Catalog) add(tag Tag) bool {
	if tag.ID == "" {
		return false
	}
	if _, ok := c.ids[tag.ID]; ok {
		return false
	}
	c.ids[tag.ID] = struct{}{}
	c.tags = append(c.tags, tag)
	return true
}
