package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Client   Client
	API      API
	Networks Networks
	Update   Update
	Render   Render
	Resolver Resolver
	Server   Server
	Health   Health
	Paths    Paths
	Backup   Backup
	Logger   Logger
	Shoutrrr Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.API.setDefaults()
	c.Networks.setDefaults()
	c.Update.setDefaults()
	c.Render.setDefaults()
	c.Resolver.setDefaults()
	c.Server.setDefaults()
	c.Health.SetDefaults()
	c.Paths.setDefaults()
	c.Backup.setDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":   &c.Client,
		"api":      &c.API,
		"networks": &c.Networks,
		"update":   &c.Update,
		"render":   &c.Render,
		"resolver": &c.Resolver,
		"server":   &c.Server,
		"health":   &c.Health,
		"paths":    &c.Paths,
		"backup":   &c.Backup,
		"logger":   &c.Logger,
		"shoutrrr": &c.Shoutrrr,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

// LegacyURLs returns the stats API base URLs of the networks not using
// the default base URL, the URLs of the networks file taking precedence.
func (c Config) LegacyURLs() (urls map[string]string) {
	urls = make(map[string]string, len(c.API.LegacyURLs)+len(c.Networks.URLs))
	for networkID, url := range c.API.LegacyURLs {
		urls[networkID] = url
	}
	for networkID, url := range c.Networks.URLs {
		urls[networkID] = url
	}
	return urls
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.API.toLinesNode())
	node.AppendNode(c.Networks.toLinesNode())
	node.AppendNode(c.Update.toLinesNode())
	node.AppendNode(c.Render.toLinesNode())
	node.AppendNode(c.Resolver.ToLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Paths.toLinesNode())
	node.AppendNode(c.Backup.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.ToLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader,
	warner Warner) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	err = c.API.read(reader)
	if err != nil {
		return fmt.Errorf("reading api settings: %w", err)
	}

	err = c.Networks.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading networks settings: %w", err)
	}

	err = c.Update.read(reader, warner)
	if err != nil {
		return fmt.Errorf("reading update settings: %w", err)
	}

	err = c.Render.read(reader)
	if err != nil {
		return fmt.Errorf("reading render settings: %w", err)
	}

	err = c.Resolver.read(reader)
	if err != nil {
		return fmt.Errorf("reading resolver settings: %w", err)
	}

	err = c.Server.read(reader)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	c.Health.Read(reader)

	err = c.Paths.read(reader)
	if err != nil {
		return fmt.Errorf("reading paths settings: %w", err)
	}

	err = c.Backup.read(reader)
	if err != nil {
		return fmt.Errorf("reading backup settings: %w", err)
	}

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(reader)

	return nil
}
