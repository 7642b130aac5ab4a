// Command makeadmin grants (or with -revoke, removes) admin rights for an
// existing account:
//
//	makeadmin -email someone@example.com [-revoke] [-d dsn]
//
// It exits non-zero when the account cannot be updated.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/carstorage/internal/flagx"
	"github.com/dmitrijs2005/carstorage/internal/logging"
	"github.com/dmitrijs2005/carstorage/internal/server"
	"github.com/dmitrijs2005/carstorage/internal/server/config"
)

type adminStore interface {
	SetAdmin(ctx context.Context, email string, isAdmin bool) error
	Close() error
}

type appStore struct {
	*server.App
}

func (a appStore) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	return a.Users().SetAdmin(ctx, email, isAdmin)
}

// openStore is a seam for tests.
var openStore = func(ctx context.Context) (adminStore, error) {
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg, logging.NewTextLogger(os.Stderr, cfg.LogLevel))
	if err != nil {
		return nil, err
	}
	return appStore{app}, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var email string
	var revoke bool

	fs := flag.NewFlagSet("makeadmin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&email, "email", "", "email of the account")
	fs.BoolVar(&revoke, "revoke", false, "remove admin rights instead of granting them")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-email", "-revoke"})); err != nil {
		return 2
	}

	if email == "" {
		fmt.Fprintln(stderr, "usage: makeadmin -email <address> [-revoke]")
		return 2
	}

	store, err := openStore(ctx)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer store.Close()

	if err := store.SetAdmin(ctx, email, !revoke); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if revoke {
		fmt.Fprintf(stdout, "%s is no longer an admin\n", email)
	} else {
		fmt.Fprintf(stdout, "%s is now an admin\n", email)
	}
	return 0
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
