package models

// Network is a statically configured network whose
// retrieval success rate is tracked.
type Network struct {
	ID     string `json:"id" yaml:"id"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

func (n Network) String() string {
	if n.Symbol == "" {
		return n.ID
	}
	return n.ID + " (" + n.Symbol + ")"
}
