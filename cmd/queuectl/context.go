package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"arcade_queue/internal/client"
	"arcade_queue/internal/geofence"
)

type commandContext struct {
	serverFlag *string
	configFlag *string
	latFlag    *float64
	lonFlag    *float64
	forceFlag  *bool

	// set from the root command once flags are parsed
	locationFromFlags bool

	settingsOnce sync.Once
	settings     settings
	settingsErr  error
}

func newCommandContext(serverFlag, configFlag *string, lat, lon *float64, force *bool) *commandContext {
	return &commandContext{
		serverFlag: serverFlag,
		configFlag: configFlag,
		latFlag:    lat,
		lonFlag:    lon,
		forceFlag:  force,
	}
}

func (c *commandContext) ensureSettings() (settings, error) {
	c.settingsOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.settings, c.settingsErr = loadSettings(path)
	})
	return c.settings, c.settingsErr
}

func (c *commandContext) serverURL() (string, error) {
	if c.serverFlag != nil && strings.TrimSpace(*c.serverFlag) != "" {
		return strings.TrimSpace(*c.serverFlag), nil
	}
	s, err := c.ensureSettings()
	if err != nil {
		return "", err
	}
	return s.Server, nil
}

func (c *commandContext) client() (*client.Client, error) {
	server, err := c.serverURL()
	if err != nil {
		return nil, err
	}
	return client.New(server, nil)
}

func (c *commandContext) withClient(fn func(*client.Client) error) error {
	cl, err := c.client()
	if err != nil {
		return err
	}
	return fn(cl)
}

// location is where the operator stands, from flags or the config file.
func (c *commandContext) location() (*geofence.Coordinate, error) {
	if c.locationFromFlags {
		at := geofence.Coordinate{Lat: *c.latFlag, Lon: *c.lonFlag}
		if err := at.Validate(); err != nil {
			return nil, err
		}
		return &at, nil
	}
	s, err := c.ensureSettings()
	if err != nil {
		return nil, err
	}
	return s.Location, nil
}

// checkGate refuses edits away from the venue unless --force is set. It is
// a convenience for operators, not an access control.
func (c *commandContext) checkGate() error {
	if c.forceFlag != nil && *c.forceFlag {
		return nil
	}
	at, err := c.location()
	if err != nil {
		return err
	}
	if at == nil {
		return errors.New("location unknown: pass --lat and --lon, set [location] in the config, or use --force")
	}
	s, err := c.ensureSettings()
	if err != nil {
		return err
	}
	d := s.gate().Check(*at)
	if !d.CanEdit {
		return fmt.Errorf("editing disabled: %.2f km from the venue (limit %.2f km); use --force to override", d.DistanceKm, d.RadiusKm)
	}
	return nil
}

func (c *commandContext) bindLocationFlags(cmd *cobra.Command) error {
	latSet := cmd.Flags().Changed("lat")
	lonSet := cmd.Flags().Changed("lon")
	if latSet != lonSet {
		return errors.New("--lat and --lon must be given together")
	}
	c.locationFromFlags = latSet
	return nil
}
