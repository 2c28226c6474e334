package bootstrap

import (
	"time"

	"edubrief/config"
	"edubrief/driver"
	"edubrief/logger"

	"github.com/cenkalti/backoff/v5"
)

// initSearchDriver connects to the search index with retry. The index is
// a hard dependency of federated search; the process does not come up
// without it.
func initSearchDriver(cfg *config.Config) (*driver.SearchIndexDriver, error) {
	const maxAttempts = 5

	logger.Logger.Info("Connecting to search index", "url", cfg.Search.URL())

	client := driver.NewSearchIndexClient(cfg.Search.URL(), cfg.Search.APIKey, cfg.Search.Timeout)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 30 * time.Second
	bo.Multiplier = 2

	var healthErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if _, healthErr = client.Health(); healthErr == nil {
			logger.Logger.Info("Search index connection established")
			return driver.NewSearchIndexDriver(client), nil
		}

		logger.Logger.Warn("Search index not ready, retrying",
			"attempt", attempt, "max", maxAttempts, "err", healthErr)
		if attempt < maxAttempts {
			time.Sleep(bo.NextBackOff())
		}
	}

	return nil, healthErr
}
