package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination=./app_mock.go -package=app -source=app.go

// Dependency is a long-lived component run by the App, such as the emulator.
type Dependency interface {
	// Start brings the dependency up. It may block until Stop is called.
	Start() error
	// Stop releases everything Start acquired.
	Stop() error
	// Name is used for logging only.
	Name() string
}

type App struct {
	serviceName string
	deps        []Dependency
	// depFailChan receives at most one error per dependency.
	depFailChan chan error
	// signals is the first OS signal that ends Run.
	signals     chan os.Signal
	runCalled   *atomic.Bool
	stopTimeout time.Duration
}

type Config struct {
	ServiceName string
	StopTimeout time.Duration
}

func (c *Config) validate() error {
	var errs []error
	if c.ServiceName == "" {
		errs = append(errs, errors.New("service name is required"))
	}
	if c.StopTimeout <= 0 {
		errs = append(errs, errors.New("stop timeout must be positive"))
	}
	return errors.Join(errs...)
}

// CreateApp creates a new application with the provided dependencies.
func CreateApp(cfg *Config, deps ...Dependency) (*App, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &App{
		serviceName: cfg.ServiceName,
		deps:        deps,
		stopTimeout: cfg.StopTimeout,
		runCalled:   &atomic.Bool{},
		depFailChan: make(chan error, len(deps)),
		signals:     make(chan os.Signal, 1),
	}, nil
}

// Run starts every dependency and blocks until ctx is done, a dependency
// fails to start or the process receives SIGINT/SIGTERM. It then stops the
// dependencies in reverse order. Run may only be called once.
func (a *App) Run(ctx context.Context) error {
	if !a.runCalled.CompareAndSwap(false, true) {
		return errors.New("run has already been called")
	}

	signal.Notify(a.signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(a.signals)

	log.Info().Msgf("starting %s", a.serviceName)
	for _, dep := range a.deps {
		go a.start(dep)
	}

	select {
	case <-ctx.Done():
		log.Info().Msg("context cancelled: shutting down")
	case err := <-a.depFailChan:
		log.Error().Err(err).Msg("dependency failed to start")
	case sig := <-a.signals:
		log.Info().Msgf("%s received: shutting down", sig)
	}

	if err := a.stop(); err != nil {
		log.Error().Err(err).Msg("error stopping application")
		return err
	}
	return nil
}

func (a *App) start(dep Dependency) {
	defer func() {
		if r := recover(); r != nil {
			a.depFailChan <- fmt.Errorf("panic in Start() for dependency %s: %v", dep.Name(), r)
		}
	}()

	log.Info().Msgf("starting dependency: %s", dep.Name())
	if err := dep.Start(); err != nil {
		a.depFailChan <- fmt.Errorf("failure in Start() for dependency %s: %w", dep.Name(), err)
	}
}

// stop stops dependencies last-started first and gives up after stopTimeout.
func (a *App) stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.stopTimeout)
	defer cancel()

	var (
		mu   sync.Mutex
		errs []error
		done = make(chan struct{})
	)

	go func() {
		defer close(done)
		for i := len(a.deps) - 1; i >= 0; i-- {
			dep := a.deps[i]
			log.Info().Msgf("stopping dependency: %s", dep.Name())
			if err := dep.Stop(); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("failure in Stop() for dependency %s: %w", dep.Name(), err))
				mu.Unlock()
			}
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		mu.Lock()
		errs = append(errs, fmt.Errorf("stopping %s: %w", a.serviceName, ctx.Err()))
		mu.Unlock()
	}

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(errs...)
}
