// Package render turns a leaderboard into HTML fragments and
// writes them to the page containers.
package render

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/checker-network/leaderboard/internal/models"
)

type Style string

const (
	// StyleRing shows each success rate inside a conic progress ring.
	StyleRing Style = "ring"
	// StyleBadge shows each success rate as a colored text badge.
	StyleBadge Style = "badge"
)

type Mode string

const (
	// ModeReplace replaces the previous leaderboard with the new one.
	ModeReplace Mode = "replace"
	// ModePrepend inserts the new leaderboard before the previous ones.
	ModePrepend Mode = "prepend"
)

type Settings struct {
	Style        Style
	Mode         Mode
	Decimals     uint
	PrependLimit uint
}

type Renderer struct {
	style        Style
	mode         Mode
	decimals     uint
	prependLimit int
}

func New(settings Settings) *Renderer {
	return &Renderer{
		style:        settings.Style,
		mode:         settings.Mode,
		decimals:     settings.Decimals,
		prependLimit: int(settings.PrependLimit),
	}
}

// Render writes the leaderboard to the networks element, shows it
// and hides the loading and error elements.
// It returns an error wrapping ErrElementNotFound if one of the
// elements is missing, in which case the document is left untouched.
func (r *Renderer) Render(document Document, board models.Leaderboard) (err error) {
	elements, err := lookupElements(document)
	if err != nil {
		return err
	}

	block := r.Fragment(board)
	switch r.mode {
	case ModePrepend:
		blocks := append([]template.HTML{block}, elements.networks.Blocks()...)
		if r.prependLimit > 0 && len(blocks) > r.prependLimit {
			blocks = blocks[:r.prependLimit]
		}
		elements.networks.SetBlocks(blocks)
	default:
		elements.networks.SetBlocks([]template.HTML{block})
	}

	elements.loading.SetHidden(true)
	elements.errorElement.SetHidden(true)
	elements.networks.SetHidden(false)
	return nil
}

// RenderFailure shows the error element with the cause of the failure,
// and hides and empties the networks element.
func (r *Renderer) RenderFailure(document Document, cause error) (err error) {
	elements, err := lookupElements(document)
	if err != nil {
		return err
	}

	message := `<p class="error-message">Failed to load network data.</p>`
	if cause != nil {
		message += `<p class="error-detail">` + template.HTMLEscapeString(cause.Error()) + `</p>`
	}

	elements.loading.SetHidden(true)
	elements.networks.SetHidden(true)
	elements.networks.SetBlocks(nil)
	elements.errorElement.SetBlocks([]template.HTML{template.HTML(message)}) //nolint:gosec
	elements.errorElement.SetHidden(false)
	return nil
}

// Fragment returns the HTML block of the leaderboard, made of
// one item per entry in rank order.
func (r *Renderer) Fragment(board models.Leaderboard) template.HTML {
	var builder strings.Builder
	builder.WriteString(`<div class="leaderboard" data-time="` +
		board.Time.UTC().Format(time.RFC3339) + `">`)
	for _, entry := range board.Entries {
		builder.WriteString(r.entryHTML(entry))
	}
	builder.WriteString(`</div>`)
	return template.HTML(builder.String()) //nolint:gosec
}

func (r *Renderer) entryHTML(entry models.Entry) string {
	network := entry.Result.Network
	rate := entry.Result.SuccessRate
	level := Level(rate)
	rank := strconv.Itoa(entry.Rank)

	var indicator string
	switch r.style {
	case StyleBadge:
		indicator = `<span class="success-rate badge ` + level + `">` +
			FormatRate(rate, r.decimals) + `</span>`
	default:
		indicator = fmt.Sprintf(`<div class="progress-ring %s" `+
			`style="background: conic-gradient(var(--%s) %.2f%%, var(--track) 0)">`+
			`<span class="success-rate">%s</span></div>`,
			level, level, rate, FormatRate(rate, r.decimals))
	}

	return `<div class="network-item ` + level + `" data-rank="` + rank + `">` +
		`<span class="network-rank">#` + rank + `</span>` +
		`<span class="network-name">` + template.HTMLEscapeString(network.ID) + `</span>` +
		`<span class="network-symbol">` + template.HTMLEscapeString(network.Symbol) + `</span>` +
		indicator +
		`</div>`
}

type elements struct {
	loading      Element
	errorElement Element
	networks     Element
}

func lookupElements(document Document) (e elements, err error) {
	targets := map[string]*Element{
		LoadingID:  &e.loading,
		ErrorID:    &e.errorElement,
		NetworksID: &e.networks,
	}
	var missing []string
	for _, id := range []string{LoadingID, ErrorID, NetworksID} {
		element, ok := document.ElementByID(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		*targets[id] = element
	}

	if len(missing) > 0 {
		return e, fmt.Errorf("%w: %s", ErrElementNotFound, strings.Join(missing, ", "))
	}
	return e, nil
}
