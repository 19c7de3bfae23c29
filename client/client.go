// Package client connects to a Bigtable instance and hands out tables whose
// rows can be mutated with the row package.
package client

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigtable/apiv2/bigtablepb"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	gtransport "google.golang.org/api/transport/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const userAgent = "litetable-bigtable"

// Client holds the connection shared by every table it opens.
type Client struct {
	project  string
	instance string
	timeout  time.Duration

	conn     *grpc.ClientConn
	ownsConn bool
	data     bigtablepb.BigtableClient
}

// New resolves the project and dials the instance. When an emulator host is
// configured the connection is unauthenticated.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	project, err := ResolveProject(ctx, cfg.Project)
	if err != nil {
		return nil, err
	}

	conn, err := dial(ctx, cfg)
	if err != nil {
		return nil, err
	}

	c := newClient(project, cfg, conn)
	c.ownsConn = true
	return c, nil
}

// NewWithConn returns a client that sends requests over conn. The caller
// keeps ownership of conn; Close does not close it.
func NewWithConn(cfg *Config, conn *grpc.ClientConn) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Project == "" {
		return nil, fmt.Errorf("project required with a caller supplied connection")
	}
	if conn == nil {
		return nil, fmt.Errorf("connection required")
	}
	return newClient(cfg.Project, cfg, conn), nil
}

func newClient(project string, cfg *Config, conn *grpc.ClientConn) *Client {
	return &Client{
		project:  project,
		instance: cfg.Instance,
		timeout:  cfg.timeout(),
		conn:     conn,
		data:     bigtablepb.NewBigtableClient(conn),
	}
}

func dial(ctx context.Context, cfg *Config) (*grpc.ClientConn, error) {
	if host := cfg.emulatorHost(); host != "" {
		log.Info().Msgf("connecting to Bigtable emulator at %s", host)
		conn, err := grpc.NewClient(host, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to emulator %s: %w", host, err)
		}
		return conn, nil
	}

	endpoint := cfg.endpoint()
	log.Info().Msgf("connecting to Bigtable at %s", endpoint)
	conn, err := gtransport.Dial(ctx,
		option.WithEndpoint(endpoint),
		option.WithScopes(cfg.Scopes()...),
		option.WithUserAgent(userAgent),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", endpoint, err)
	}
	return conn, nil
}

// Close releases the connection if the client opened it.
func (c *Client) Close() error {
	if !c.ownsConn {
		return nil
	}
	return c.conn.Close()
}

func (c *Client) Project() string { return c.project }

// ProjectName is the resource name projects/{project}.
func (c *Client) ProjectName() string {
	return "projects/" + c.project
}

// InstanceName is the resource name projects/{project}/instances/{instance}.
func (c *Client) InstanceName() string {
	return c.ProjectName() + "/instances/" + c.instance
}

// Open returns a handle to table id. It does not contact the server.
func (c *Client) Open(id string) *Table {
	return &Table{
		id:     id,
		client: c,
	}
}
