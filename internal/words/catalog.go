// Package words provides the word source (categories of words), the
// letter folding used to turn words into gaps, and the shuffled word queue.
package words

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog maps category names to ordered word lists.
// Category order is preserved as loaded so menus list them as authored.
// A Catalog is treated as read-only once a session starts.
type Catalog struct {
	order []string
	lists map[string][]string
}

// Rejected describes a word dropped by Sanitize.
type Rejected struct {
	Category string
	Word     string
}

// ErrMalformedCatalog is returned when a word file has no usable structure.
var ErrMalformedCatalog = errors.New("words: malformed word catalog")

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{lists: make(map[string][]string)}
}

// Add appends words to a category, creating it if needed.
func (c *Catalog) Add(category string, words ...string) {
	if _, ok := c.lists[category]; !ok {
		c.order = append(c.order, category)
		c.lists[category] = []string{}
	}
	c.lists[category] = append(c.lists[category], words...)
}

// Categories returns category names in load order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Has reports whether the category exists.
func (c *Catalog) Has(category string) bool {
	_, ok := c.lists[category]
	return ok
}

// Words returns a copy of the category's word list.
func (c *Catalog) Words(category string) []string {
	list := c.lists[category]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.order)
}

// TotalWords returns the number of words across all categories.
func (c *Catalog) TotalWords() int {
	n := 0
	for _, list := range c.lists {
		n += len(list)
	}
	return n
}

// Sanitize trims surrounding whitespace from every word and drops words
// that contain no letters under f. Such words would decompose into zero
// gaps, so they are rejected here instead of reaching a round.
// Categories are kept even if they end up empty.
func (c *Catalog) Sanitize(f *Folder) []Rejected {
	var rejected []Rejected
	for _, name := range c.order {
		kept := c.lists[name][:0]
		for _, w := range c.lists[name] {
			w = strings.TrimSpace(w)
			if f.CountLetters(w) == 0 {
				rejected = append(rejected, Rejected{Category: name, Word: w})
				continue
			}
			kept = append(kept, w)
		}
		c.lists[name] = kept
	}
	return rejected
}

// ParseCatalog decodes a word file. YAML and JSON are both accepted.
//
// Recognized shapes:
//
//	lists:  {Category: [word, ...], ...}
//	listas: {Category: [word, ...], ...}
//	{Category: [word, ...], ...}
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("words: cannot parse catalog: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedCatalog)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrMalformedCatalog)
	}

	// Unwrap the lists/listas envelope if present
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		if key == "lists" || key == "listas" {
			root = root.Content[i+1]
			if root.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("%w: %s must be a mapping", ErrMalformedCatalog, key)
			}
			break
		}
	}

	c := NewCatalog()
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		var list []string
		if err := root.Content[i+1].Decode(&list); err != nil {
			return nil, fmt.Errorf("%w: category %q: %v", ErrMalformedCatalog, name, err)
		}
		c.Add(name, list...)
	}
	return c, nil
}

// Encode writes the catalog as a YAML word file under a lists key,
// keeping category and word order. ParseCatalog reads it back.
func (c *Catalog) Encode() ([]byte, error) {
	lists := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range c.order {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, w := range c.lists[name] {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: w})
		}
		lists.Content = append(lists.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			seq,
		)
	}
	root := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Tag: "!!str", Value: "lists"},
		lists,
	}}
	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("words: cannot encode catalog: %w", err)
	}
	return data, nil
}
