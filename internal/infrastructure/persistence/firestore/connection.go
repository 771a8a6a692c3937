package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"jobskills/internal/config"
)

type Client struct {
	client *firestore.Client
}

func Connect(ctx context.Context, cfg config.StoreConfig) (*Client, error) {
	c, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return &Client{client: c}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
