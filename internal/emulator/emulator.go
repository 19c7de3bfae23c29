// Package emulator runs an in-memory Bigtable server for local development
// and tests, and creates the tables it is configured with.
package emulator

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net"
	"slices"
	"strconv"
	"sync"
	"time"

	"cloud.google.com/go/bigtable"
	"cloud.google.com/go/bigtable/bttest"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const provisionTimeout = 30 * time.Second

// Server implements the app.Dependency interface for the emulator.
type Server struct {
	project  string
	instance string
	laddr    string
	tables   map[string][]string

	mu  sync.Mutex
	srv *bttest.Server
}

type Config struct {
	Project  string
	Instance string
	Address  string
	// Port 0 picks a free port.
	Port int
	// Tables maps table IDs to the column families to create.
	Tables map[string][]string
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Project == "" {
		errGrp = append(errGrp, fmt.Errorf("project required"))
	}
	if c.Instance == "" {
		errGrp = append(errGrp, fmt.Errorf("instance required"))
	}
	if c.Address == "" {
		errGrp = append(errGrp, fmt.Errorf("address required"))
	}
	if c.Port < 0 {
		errGrp = append(errGrp, fmt.Errorf("port must not be negative"))
	}

	return errors.Join(errGrp...)
}

// New returns an emulator that listens once started.
func New(cfg *Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Server{
		project:  cfg.Project,
		instance: cfg.Instance,
		laddr:    net.JoinHostPort(cfg.Address, strconv.Itoa(cfg.Port)),
		tables:   maps.Clone(cfg.Tables),
	}, nil
}

// Start begins serving and creates the configured tables. It returns once
// the tables exist.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return errors.New("emulator already started")
	}

	srv, err := bttest.NewServer(s.laddr)
	if err != nil {
		return fmt.Errorf("failed to start emulator on %s: %w", s.laddr, err)
	}
	s.srv = srv
	log.Info().Msgf("Bigtable emulator listening at %s", srv.Addr)

	ctx, cancel := context.WithTimeout(context.Background(), provisionTimeout)
	defer cancel()

	if err := s.provision(ctx); err != nil {
		return err
	}
	return nil
}

func (s *Server) provision(ctx context.Context) error {
	if len(s.tables) == 0 {
		return nil
	}

	// The admin client closes the connection it is given.
	conn, err := s.dial()
	if err != nil {
		return err
	}
	admin, err := bigtable.NewAdminClient(ctx, s.project, s.instance, option.WithGRPCConn(conn))
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer admin.Close()

	tables := make([]string, 0, len(s.tables))
	for table := range s.tables {
		tables = append(tables, table)
	}
	slices.Sort(tables)
	for _, table := range tables {
		if err := admin.CreateTable(ctx, table); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table, err)
		}
		for _, family := range s.tables[table] {
			if err := admin.CreateColumnFamily(ctx, table, family); err != nil {
				return fmt.Errorf("failed to create column family %s in table %s: %w", family, table, err)
			}
		}
		log.Info().
			Str("table", table).
			Strs("families", s.tables[table]).
			Msg("table created")
	}
	return nil
}

// Stop shuts the server down. All data is lost.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv == nil {
		return nil
	}
	s.srv.Close()
	s.srv = nil
	log.Info().Msg("Bigtable emulator stopped")
	return nil
}

func (s *Server) Name() string {
	return "Bigtable Emulator"
}

// Addr is the host:port the emulator listens on, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv == nil {
		return ""
	}
	return s.srv.Addr
}

// Dial opens an unauthenticated connection to the running emulator. The
// caller closes it.
func (s *Server) Dial() (*grpc.ClientConn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dial()
}

func (s *Server) dial() (*grpc.ClientConn, error) {
	if s.srv == nil {
		return nil, errors.New("emulator not started")
	}
	conn, err := grpc.NewClient(s.srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to emulator: %w", err)
	}
	return conn, nil
}

func (s *Server) Project() string  { return s.project }
func (s *Server) Instance() string { return s.instance }
