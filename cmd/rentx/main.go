// Command rentx is a terminal client for the RentX API.
//
//	rentx cars
//	rentx login -email ana@example.com -password secret123
//	rentx book -car <id> -from 2022-05-10 -to 2022-05-12
//	rentx mine
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"rentx/internal/client"
	"rentx/internal/config"
)

const usage = `usage: rentx <command> [flags]

commands:
  cars      list the cars for rent
  register  create an account
  login     print a token for RENTX_TOKEN and RENTX_USER_ID
  book      reserve a car for a date range
  mine      list your reservations
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.NewClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zap.L().Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	api := client.New(cfg.APIURL,
		client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		client.WithToken(cfg.Token),
	)
	app := &app{api: api, cfg: cfg, out: os.Stdout, errOut: os.Stderr}

	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type app struct {
	api    *client.Client
	cfg    *config.ClientConfig
	out    io.Writer
	errOut io.Writer
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "cars":
		return a.cars(ctx)
	case "register":
		return a.register(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "book":
		return a.book(ctx, args)
	case "mine":
		return a.mine(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.errOut, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
