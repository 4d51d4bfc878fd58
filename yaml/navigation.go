// Package yaml loads hand-authored navigation structures from YAML files.
// Such files override the compiled-in fallback navigation:
//
//	- title: Fundamentals
//	  items:
//	    - title: Introduction
//	      href: /
//	    - title: API Design
//	      href: /api-design
//	      children:
//	        - title: REST
//	          href: /api-design/rest
package yaml

import (
	"os"

	"gopkg.in/yaml.v3"

	"sitenav"
)

// LoadNavigation reads and parses the navigation file at path.
func LoadNavigation(path string) ([]sitenav.Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sitenav.Errorf(sitenav.ENOTFOUND, "read navigation file %s: %v", path, err)
	}
	return ParseNavigation(data)
}

// ParseNavigation parses a YAML navigation document. The document must hold
// at least one section, every section at least one item, and every item a
// title and an href.
func ParseNavigation(data []byte) ([]sitenav.Section, error) {
	var sections []sitenav.Section
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return nil, sitenav.Errorf(sitenav.EINVALID, "parse navigation: %v", err)
	}
	if len(sections) == 0 {
		return nil, sitenav.Errorf(sitenav.EINVALID, "navigation file defines no sections")
	}
	for _, s := range sections {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if len(s.Items) == 0 {
			return nil, sitenav.Errorf(sitenav.EINVALID, "section %q has no items", s.Title)
		}
	}
	return sections, nil
}
