package serve

import (
	"context"
	"github.com/bokysan/radixace/internal/args"
	"github.com/bokysan/radixace/internal/logging"
	"github.com/bokysan/radixace/internal/server"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"os"
	"os/signal"
	"syscall"
)

// Command runs the HTTP API until interrupted
type Command struct {
	Listen string `short:"L" long:"listen" env:"LISTEN" description:"Address to listen on" default:"127.0.0.1:8064" yaml:"listen"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) Execute(_ []string) error {
	logging.SetupLogging()

	a, err := args.Alphabet.Build()
	if err != nil {
		return err
	}

	srv := server.NewHttpServer(c.Listen, a)
	if err := srv.Startup(); err != nil {
		return err
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	return run(srv, interrupted)
}

// run waits until the server fails or a signal arrives, and shuts the server down either way
func run(srv *server.HttpServer, interrupted <-chan os.Signal) error {
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		for err := range srv.Done() {
			if err != nil {
				return err
			}
		}
		return nil
	})

	g.Go(func() error {
		select {
		case sig := <-interrupted:
			log.Infof("Received %v, stopping", sig)
		case <-ctx.Done():
		}
		return srv.Shutdown()
	})

	return g.Wait()
}
