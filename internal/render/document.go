package render

import (
	"errors"
	"html/template"
	"strings"

	"github.com/checker-network/leaderboard/internal/models"
)

// Identifiers of the page containers the renderer needs.
const (
	LoadingID  = "loading"
	ErrorID    = "error"
	NetworksID = "networks"
)

var ErrElementNotFound = errors.New("element not found")

// Document is the page the renderer writes to.
type Document interface {
	ElementByID(id string) (element Element, ok bool)
}

// Element is a page container holding blocks of HTML.
type Element interface {
	SetHidden(hidden bool)
	Blocks() []template.HTML
	SetBlocks(blocks []template.HTML)
}

// Page is an in-memory Document. It is not safe for concurrent use.
type Page struct {
	elements map[string]*PageElement
}

// NewPage creates a page with the given element identifiers,
// defaulting to the loading, error and networks containers.
// Only the loading element is visible initially.
func NewPage(ids ...string) *Page {
	if len(ids) == 0 {
		ids = []string{LoadingID, ErrorID, NetworksID}
	}
	page := &Page{
		elements: make(map[string]*PageElement, len(ids)),
	}
	for _, id := range ids {
		page.elements[id] = &PageElement{hidden: id != LoadingID}
	}
	return page
}

func (p *Page) ElementByID(id string) (element Element, ok bool) {
	pageElement, ok := p.elements[id]
	if !ok {
		return nil, false
	}
	return pageElement, true
}

// State returns a copy of the state of the page containers.
func (p *Page) State() (state models.PageState) {
	return models.PageState{
		Loading:  p.elements[LoadingID].toHTMLElement(),
		Error:    p.elements[ErrorID].toHTMLElement(),
		Networks: p.elements[NetworksID].toHTMLElement(),
	}
}

type PageElement struct {
	hidden bool
	blocks []template.HTML
}

func (e *PageElement) SetHidden(hidden bool) { e.hidden = hidden }

func (e *PageElement) Hidden() bool { return e.hidden }

func (e *PageElement) Blocks() []template.HTML {
	blocks := make([]template.HTML, len(e.blocks))
	copy(blocks, e.blocks)
	return blocks
}

func (e *PageElement) SetBlocks(blocks []template.HTML) { e.blocks = blocks }

// HTML returns the blocks of the element joined together.
func (e *PageElement) HTML() template.HTML {
	var builder strings.Builder
	for _, block := range e.blocks {
		builder.WriteString(string(block))
	}
	return template.HTML(builder.String()) //nolint:gosec
}

func (e *PageElement) toHTMLElement() models.HTMLElement {
	if e == nil {
		return models.HTMLElement{Hidden: true}
	}
	return models.HTMLElement{
		Hidden:  e.hidden,
		Content: e.HTML(),
	}
}
