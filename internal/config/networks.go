package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/checker-network/leaderboard/internal/models"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"gopkg.in/yaml.v2"
)

// Networks contains the networks ranked on the leaderboard,
// in the order used to break ties.
type Networks struct {
	List []models.Network
	// File is the path of an optional YAML file listing the networks,
	// which takes precedence over the List read from the environment.
	File *string
	// URLs maps network identifiers to their stats API base URL
	// as set in the networks file.
	URLs map[string]string
}

func (n *Networks) setDefaults() {
	n.List = gosettings.DefaultSlice(n.List, []models.Network{
		{ID: "arweave", Symbol: "AR"},
		{ID: "filecoin", Symbol: "FIL"},
		{ID: "walrus", Symbol: "WAL"},
	})
	n.File = gosettings.DefaultPointer(n.File, "")
}

var (
	ErrNetworksEmpty      = errors.New("no network is set")
	ErrNetworkIDNotValid  = errors.New("network id is not valid")
	ErrNetworkIDDuplicate = errors.New("network id is duplicated")
)

var regexNetworkID = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

func (n Networks) Validate() (err error) {
	if len(n.List) == 0 {
		return ErrNetworksEmpty
	}

	seen := make(map[string]struct{}, len(n.List))
	for _, network := range n.List {
		if !regexNetworkID.MatchString(network.ID) {
			return fmt.Errorf("%w: %q must match %s",
				ErrNetworkIDNotValid, network.ID, regexNetworkID)
		}
		_, duplicate := seen[network.ID]
		if duplicate {
			return fmt.Errorf("%w: %s", ErrNetworkIDDuplicate, network.ID)
		}
		seen[network.ID] = struct{}{}
	}

	for networkID, url := range n.URLs {
		err = validateHTTPURL(url)
		if err != nil {
			return fmt.Errorf("url for network %s: %w", networkID, err)
		}
	}
	return nil
}

func (n Networks) String() string {
	return n.toLinesNode().String()
}

func (n Networks) toLinesNode() *gotree.Node {
	node := gotree.New("Networks")
	if *n.File != "" {
		node.Appendf("File: %s", *n.File)
	}
	for _, network := range n.List {
		url, ok := n.URLs[network.ID]
		if ok {
			node.Appendf("%s: %s", network, url)
			continue
		}
		node.Appendf("%s", network)
	}
	return node
}

var ErrNetworkMalformed = errors.New("network is malformed")

func (n *Networks) read(r *reader.Reader, warner Warner) (err error) {
	n.File = r.Get("NETWORKS_FILE", reader.ForceLowercase(false))
	if n.File != nil && *n.File != "" {
		if r.Get("NETWORKS") != nil {
			warnIgnored(warner, "NETWORKS", "NETWORKS_FILE")
		}
		n.List, n.URLs, err = readNetworksFile(*n.File)
		if err != nil {
			return fmt.Errorf("reading networks file: %w", err)
		}
		return nil
	}

	networks := r.CSV("NETWORKS", reader.ForceLowercase(false))
	if networks == nil {
		return nil
	}
	n.List = make([]models.Network, len(networks))
	for i, s := range networks {
		id, symbol, _ := strings.Cut(s, ":")
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			return fmt.Errorf("environment variable NETWORKS: %w: %q "+
				"must be in the form id or id:SYMBOL", ErrNetworkMalformed, s)
		}
		n.List[i] = models.Network{
			ID:     id,
			Symbol: strings.TrimSpace(symbol),
		}
	}
	return nil
}

type networksFile struct {
	Networks []networkEntry `yaml:"networks"`
}

type networkEntry struct {
	ID     string `yaml:"id"`
	Symbol string `yaml:"symbol"`
	URL    string `yaml:"url"`
}

func readNetworksFile(path string) (networks []models.Network,
	urls map[string]string, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var file networksFile
	err = yaml.UnmarshalStrict(b, &file)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding yaml: %w", err)
	}

	networks = make([]models.Network, len(file.Networks))
	urls = make(map[string]string)
	for i, entry := range file.Networks {
		networks[i] = models.Network{
			ID:     strings.ToLower(entry.ID),
			Symbol: entry.Symbol,
		}
		if entry.URL != "" {
			urls[networks[i].ID] = entry.URL
		}
	}
	return networks, urls, nil
}
