package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const connectTimeout = 10 * time.Second

type Options struct {
	URI      string
	User     string
	Password string
	// Database is the target database; empty selects the server default.
	Database string
}

// NewDriver creates a driver and verifies that the server accepts the credentials.
func NewDriver(ctx context.Context, opts Options) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(opts.URI, neo4j.BasicAuth(opts.User, opts.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4j: create driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(context.Background())
		return nil, fmt.Errorf("neo4j: verify connectivity: %w", err)
	}

	return driver, nil
}
