package cmd

import (
	"context"

	"github.com/yacchi/kasane"
)

// loadStore builds the store for this invocation: defaults, discovered
// files, --config files, then overrides. Broken files are reported and
// skipped; rejected overrides are returned as an error.
func (c *cli) loadStore(ctx context.Context) (*kasane.Store, error) {
	if c.store != nil {
		return c.store, nil
	}

	store := kasane.New(kasane.WithLogger(c.logger))

	var files []string
	if !c.noDiscover {
		paths, err := kasane.DiscoverPaths(c.app)
		if err != nil {
			c.logger.Warn().Err(err).Msg("configuration discovery failed")
		} else {
			files = append(files, paths.ConfigFiles()...)
		}
	}
	files = append(files, c.configs...)

	if err := store.LoadLayers(ctx, files...); err != nil {
		c.logger.Warn().Err(err).Msg("some configuration layers were skipped")
	}

	if err := store.ApplyOverrides(c.overrides); err != nil {
		return nil, err
	}

	c.store = store
	return store, nil
}
