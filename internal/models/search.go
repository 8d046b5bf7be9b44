// internal/models/search.go
package models

import "strconv"

// ResultKind tags one command-palette search result. Adding a kind here
// requires a case in RouteFor below; the exhaustive switch keeps a new
// variant from slipping through unrendered.
type ResultKind string

const (
	KindPage    ResultKind = "page"
	KindAction  ResultKind = "action"
	KindProject ResultKind = "project"
	KindTask    ResultKind = "task"
	KindPrompt  ResultKind = "prompt"
	KindAccount ResultKind = "account"
)

// SearchResult is the tagged union rendered by the command palette.
type SearchResult struct {
	Kind     ResultKind `json:"kind"`
	ID       int64      `json:"id,omitempty"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	Route    string     `json:"route"`
}

// RouteFor resolves the navigation target for an entity result. Static
// page and action entries carry their routes verbatim and never pass
// through here.
func RouteFor(kind ResultKind, id int64) string {
	switch kind {
	case KindProject:
		return "/projects/" + itoa(id)
	case KindTask:
		return "/tasks/" + itoa(id)
	case KindPrompt:
		return "/prompts/" + itoa(id)
	case KindAccount:
		return "/accounts/" + itoa(id)
	case KindPage, KindAction:
		return "/"
	}
	return "/"
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
