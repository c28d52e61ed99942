package templates

import (
	"iter"
	"sort"
)

// Library is the merged, read-only, process-wide index of templates. A
// type bucket declared in the user index entirely replaces (never merges
// with) the base bucket of the same type, so a client asking for templates
// of type X always sees exactly one source for X.
type Library struct {
	byType map[string][]*Template
}

// newLibrary builds a Library from an already-merged type -> templates map.
func newLibrary(byType map[string][]*Template) *Library {
	for _, list := range byType {
		sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}
	return &Library{byType: byType}
}

// Types returns the set of type names present in the library.
func (l *Library) Types() []string {
	out := make([]string, 0, len(l.byType))
	for t := range l.byType {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Len returns the total template count across all types.
func (l *Library) Len() int {
	n := 0
	for _, list := range l.byType {
		n += len(list)
	}
	return n
}

// Filter restricts a Query to a subset of the library.
type Filter struct {
	TypeFilter       []string
	TemplateFilter   []string
	ExcludeTemplates []string
	AgeMin, AgeMax   *float64
}

func setOf(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

func (f Filter) matches(t *Template) bool {
	if types := setOf(f.TypeFilter); types != nil && !types[t.Type] {
		return false
	}
	if include := setOf(f.TemplateFilter); include != nil && !include[t.Name] {
		return false
	}
	if exclude := setOf(f.ExcludeTemplates); exclude != nil && exclude[t.Name] {
		return false
	}
	if f.AgeMin != nil && t.AgeDays < *f.AgeMin {
		return false
	}
	if f.AgeMax != nil && t.AgeDays > *f.AgeMax {
		return false
	}
	return true
}

// Query returns an iterator over templates matching f. The store never
// mutates or copies templates into a slice unless the caller ranges them
// into one itself.
func (l *Library) Query(f Filter) iter.Seq[*Template] {
	return func(yield func(*Template) bool) {
		types := l.Types()
		if len(f.TypeFilter) > 0 {
			types = f.TypeFilter
		}
		for _, typ := range types {
			for _, t := range l.byType[typ] {
				if !f.matches(t) {
					continue
				}
				if !yield(t) {
					return
				}
			}
		}
	}
}
