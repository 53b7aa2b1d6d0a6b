// Package shoutrrr sends leaderboard notifications through shoutrrr services.
package shoutrrr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/checker-network/leaderboard/internal/models"
	"github.com/checker-network/leaderboard/internal/render"
	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
	"github.com/containrrr/shoutrrr/pkg/types"
)

type Client struct {
	serviceRouter *router.ServiceRouter
	serviceNames  []string
	defaultTitle  string
	decimals      uint
	logger        Erroer
}

func New(settings Settings) (client *Client, err error) {
	settings.setDefaults()
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	addresses := make([]string, len(settings.Addresses))
	serviceNames := make([]string, len(settings.Addresses))
	for i, address := range settings.Addresses {
		addresses[i] = addDefaultTitle(address, settings.DefaultTitle)
		serviceNames[i] = strings.Split(address, ":")[0]
	}

	serviceRouter, err := shoutrrr.CreateSender(addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	return &Client{
		serviceRouter: serviceRouter,
		serviceNames:  serviceNames,
		defaultTitle:  settings.DefaultTitle,
		decimals:      *settings.Decimals,
		logger:        settings.Logger,
	}, nil
}

// Notify sends a message with the default title.
func (c *Client) Notify(message string) {
	c.send("", message)
}

// NotifyLaunched announces the networks the program ranks.
func (c *Client) NotifyLaunched(networks []models.Network) {
	c.send("started", launchedMessage(networks))
}

// NotifyUnavailable reports a cycle where no network could be fetched.
func (c *Client) NotifyUnavailable(cause error) {
	c.send("unavailable", "No network data could be fetched: "+cause.Error())
}

// NotifyRecovered reports the leaderboard of the first successful
// cycle following a failed one.
func (c *Client) NotifyRecovered(board models.Leaderboard) {
	c.send("recovered", rankingMessage(board, c.decimals))
}

func (c *Client) send(event, message string) {
	var params *types.Params
	if event != "" {
		params = &types.Params{"title": c.defaultTitle + ": " + event}
	}

	errs := c.serviceRouter.Send(message, params)
	for i, err := range errs {
		if err != nil {
			c.logger.Error(c.serviceNames[i] + ": " + err.Error())
		}
	}
}

func launchedMessage(networks []models.Network) string {
	names := make([]string, len(networks))
	for i, network := range networks {
		names[i] = network.String()
	}
	return "Ranking " + strings.Join(names, ", ")
}

func rankingMessage(board models.Leaderboard, decimals uint) string {
	lines := make([]string, 0, len(board.Entries)+1)
	for _, entry := range board.Entries {
		lines = append(lines, fmt.Sprintf("#%d %s %s", entry.Rank,
			entry.Result.Network.ID, render.FormatRate(entry.Result.SuccessRate, decimals)))
	}

	if len(board.Unavailable) > 0 {
		ids := make([]string, len(board.Unavailable))
		for i, network := range board.Unavailable {
			ids[i] = network.ID
		}
		lines = append(lines, "Unavailable: "+strings.Join(ids, ", "))
	}
	return strings.Join(lines, "\n")
}

func addDefaultTitle(address, defaultTitle string) (updatedAddress string) {
	u, err := url.Parse(address)
	if err != nil {
		// address should already be validated
		panic(fmt.Sprintf("parsing address as url: %s", err))
	}

	urlValues := u.Query()
	if urlValues.Has("title") {
		return address
	}

	urlValues.Set("title", defaultTitle)
	u.RawQuery = urlValues.Encode()
	return u.String()
}
