package lambda

import (
	"github.com/sirupsen/logrus"

	"vibestore-api/internal/config"
	"vibestore-api/pkg/server"
)

// WithContainer opens the dependency container for exactly one invocation,
// runs fn, and closes the container on every exit path. The deferred close is
// the cleanup guarantee: the database connection is released whether fn
// returns a response, a validation response, or an error that will propagate
// to the runtime.
func WithContainer(cfg *config.Config, logger *logrus.Logger, fn func(c *server.Container) (*Response, error)) (*Response, error) {
	container, err := server.NewContainer(cfg, logger)
	if err != nil {
		return nil, err
	}
	defer container.Close()

	return fn(container)
}
