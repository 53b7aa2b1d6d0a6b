package config

import (
	"errors"
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Render struct {
	Style        string
	Mode         string
	PrependLimit *uint
	Decimals     *uint
}

func (r *Render) setDefaults() {
	r.Style = gosettings.DefaultComparable(r.Style, "ring")
	r.Mode = gosettings.DefaultComparable(r.Mode, "replace")
	const defaultPrependLimit = 10
	r.PrependLimit = gosettings.DefaultPointer(r.PrependLimit, defaultPrependLimit)
	const defaultDecimals = 2
	r.Decimals = gosettings.DefaultPointer(r.Decimals, defaultDecimals)
}

var ErrDecimalsTooHigh = errors.New("decimals is too high")

func (r Render) Validate() (err error) {
	err = validate.IsOneOf(r.Style, "ring", "badge")
	if err != nil {
		return fmt.Errorf("style: %w", err)
	}

	err = validate.IsOneOf(r.Mode, "replace", "prepend")
	if err != nil {
		return fmt.Errorf("mode: %w", err)
	}

	const maxDecimals = 6
	if *r.Decimals > maxDecimals {
		return fmt.Errorf("%w: %d must be at most %d",
			ErrDecimalsTooHigh, *r.Decimals, maxDecimals)
	}
	return nil
}

func (r Render) String() string {
	return r.toLinesNode().String()
}

func (r Render) toLinesNode() *gotree.Node {
	node := gotree.New("Render")
	node.Appendf("Style: %s", r.Style)
	if r.Mode == "prepend" {
		node.Appendf("Mode: prepend, keeping %d leaderboard(s)", *r.PrependLimit)
	} else {
		node.Appendf("Mode: %s", r.Mode)
	}
	node.Appendf("Decimals: %d", *r.Decimals)
	return node
}

func (r *Render) read(reader *reader.Reader) (err error) {
	r.Style = reader.String("RENDER_STYLE")
	r.Mode = reader.String("RENDER_MODE")

	r.PrependLimit, err = readUintPtr(reader, "RENDER_PREPEND_LIMIT")
	if err != nil {
		return err
	}

	r.Decimals, err = readUintPtr(reader, "RENDER_DECIMALS")
	return err
}
