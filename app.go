package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"robocompany/config"
	"robocompany/navigation"
	"robocompany/robotapi"
	"robocompany/ui"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type App struct {
	Config    *config.Config
	Client    *robotapi.Client
	Navigator *navigation.Navigator
	Loop      *ui.Loop
}

func NewApp(generalConfig *config.Config, in io.Reader, out io.Writer) (*App, error) {
	client, err := robotapi.New(generalConfig.BaseURL(), robotapi.WithTimeout(generalConfig.FetchTimeout()))
	if err != nil {
		return nil, err
	}

	navigator := navigation.NewNavigator()
	loop := ui.NewLoop(navigator, client, in, out)

	return &App{
		Config:    generalConfig,
		Client:    client,
		Navigator: navigator,
		Loop:      loop,
	}, nil
}

// Run blocks until the user leaves the app, the input ends, ctx is done or
// the process receives an interrupt.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer cancel()
		return app.Loop.Run(groupCtx)
	})

	group.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			log.Info().Str("signal", sig.String()).Msg("received signal, shutting down")
			cancel()
		case <-groupCtx.Done():
		}

		return nil
	})

	return group.Wait()
}
