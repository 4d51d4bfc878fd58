package sitenav

// Item represents one entry in the site navigation tree. An item maps 1:1
// to a content-bearing directory unless Group is set, in which case it only
// exists to organize its children and is excluded from direct navigation.
type Item struct {
	Title    string  `json:"title" yaml:"title"`
	Href     string  `json:"href" yaml:"href"`
	Children []*Item `json:"children,omitempty" yaml:"children,omitempty"`

	// Order is the explicit rank from page front matter. Nil means the
	// page declared no order and sorts after ordered siblings.
	Order *int `json:"order,omitempty" yaml:"order,omitempty"`

	// Expanded is only meaningful on trees returned by MarkExpanded.
	Expanded bool `json:"isExpanded,omitempty" yaml:"-"`

	// Group marks a container directory without a page of its own.
	Group bool `json:"group,omitempty" yaml:"group,omitempty"`
}

// Validate returns an error if the item contains invalid fields.
func (it *Item) Validate() error {
	if it.Title == "" {
		return Errorf(EINVALID, "item title required")
	}
	if it.Href == "" {
		return Errorf(EINVALID, "item href required")
	}
	return nil
}

// Clone returns a deep copy of the item and its subtree.
func (it *Item) Clone() *Item {
	if it == nil {
		return nil
	}
	out := &Item{
		Title:    it.Title,
		Href:     it.Href,
		Expanded: it.Expanded,
		Group:    it.Group,
	}
	if it.Order != nil {
		n := *it.Order
		out.Order = &n
	}
	if len(it.Children) > 0 {
		out.Children = make([]*Item, len(it.Children))
		for i, child := range it.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

// Section represents a fixed top-level grouping of navigation items.
// Sections are synthesized once per build; a section only appears in the
// output when it holds at least one item.
type Section struct {
	Title string  `json:"title" yaml:"title"`
	Items []*Item `json:"items" yaml:"items"`
}

// Validate returns an error if the section contains invalid fields.
func (s *Section) Validate() error {
	if s.Title == "" {
		return Errorf(EINVALID, "section title required")
	}
	for _, it := range s.Items {
		if err := it.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of the section.
func (s Section) Clone() Section {
	out := Section{Title: s.Title}
	if len(s.Items) > 0 {
		out.Items = make([]*Item, len(s.Items))
		for i, it := range s.Items {
			out.Items[i] = it.Clone()
		}
	}
	return out
}

// CloneSections returns a deep copy of a full sectioned navigation.
func CloneSections(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = s.Clone()
	}
	return out
}

// Flatten returns every navigable item in the sections in display order,
// depth-first. Group items are skipped (they are not pages), but their
// children are visited.
func Flatten(sections []Section) []*Item {
	var out []*Item
	var walk func(items []*Item)
	walk = func(items []*Item) {
		for _, it := range items {
			if !it.Group {
				out = append(out, it)
			}
			walk(it.Children)
		}
	}
	for _, s := range sections {
		walk(s.Items)
	}
	return out
}
