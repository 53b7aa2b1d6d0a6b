package models

import "html/template"

// HTMLData contains the fields rendered by the index page.
// It is exported so that the HTML template engine can render it.
type HTMLData struct {
	Loading        HTMLElement
	Error          HTMLElement
	Networks       HTMLElement
	LastUpdate     string
	RefreshSeconds int
	RootURL        string
}

// HTMLElement is the state of a page container.
type HTMLElement struct {
	Hidden  bool
	Content template.HTML
}

// PageState is the state of the page containers after a render.
type PageState struct {
	Loading  HTMLElement
	Error    HTMLElement
	Networks HTMLElement
}
