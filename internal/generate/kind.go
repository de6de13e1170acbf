package generate

import (
	"fmt"
	"strings"
)

// Kind selects what a generator produces.
type Kind int

const (
	Feature Kind = iota
	Component
	Page
	API
	Store
	Hook
)

// Kinds lists every generator kind in help order.
func Kinds() []Kind {
	return []Kind{Feature, Component, Page, API, Store, Hook}
}

func (k Kind) String() string {
	switch k {
	case Feature:
		return "feature"
	case Component:
		return "component"
	case Page:
		return "page"
	case API:
		return "api"
	case Store:
		return "store"
	case Hook:
		return "hook"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Alias is the one-letter shorthand accepted on the command line.
func (k Kind) Alias() string {
	return k.String()[:1]
}

// Summary is the one-line description shown in help.
func (k Kind) Summary() string {
	switch k {
	case Feature:
		return "Feature module with components, hooks, types"
	case Component:
		return "React component"
	case Page:
		return "Route page component"
	case API:
		return "API client module"
	case Store:
		return "Zustand store"
	case Hook:
		return "Custom React hook"
	}
	return ""
}

// ParseKind accepts a kind name or its one-letter alias.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if s == k.String() || s == k.Alias() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown generator type %q", s)
}

// Part is one optional folder of a generated feature.
type Part string

const (
	PartComponents Part = "components"
	PartHooks      Part = "hooks"
	PartAPI        Part = "api"
	PartStore      Part = "store"
	PartTypes      Part = "types"
)

// AllParts returns every feature part in generation order.
func AllParts() []Part {
	return []Part{PartComponents, PartHooks, PartAPI, PartStore, PartTypes}
}

// Hint describes a part for the interactive picker.
func (p Part) Hint() string {
	switch p {
	case PartComponents:
		return "Feature-specific components"
	case PartHooks:
		return "Custom hooks"
	case PartAPI:
		return "API client functions"
	case PartStore:
		return "Zustand store"
	case PartTypes:
		return "TypeScript types"
	}
	return ""
}

// ParseParts validates part names, keeping generation order and dropping
// duplicates.
func ParseParts(names []string) ([]Part, error) {
	want := make(map[Part]bool, len(names))
	for _, n := range names {
		p := Part(strings.ToLower(strings.TrimSpace(n)))
		if p.Hint() == "" {
			return nil, fmt.Errorf("unknown feature part %q", n)
		}
		want[p] = true
	}
	var out []Part
	for _, p := range AllParts() {
		if want[p] {
			out = append(out, p)
		}
	}
	return out, nil
}
