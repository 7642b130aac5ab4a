package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/carstorage/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Reload(ctx context.Context) error

	ListCars(ctx context.Context) error
	Sort(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Scope(ctx context.Context, args []string) error
	AddCar(ctx context.Context) error
	EditCar(ctx context.Context, args []string) error
	DeleteCar(ctx context.Context, args []string) error
	Export(ctx context.Context) error

	Users(ctx context.Context) error
	Profile(ctx context.Context, args []string) error
	EditProfile(ctx context.Context) error
	AddUser(ctx context.Context) error
	DeleteUser(ctx context.Context) error

	Tasks(ctx context.Context, args []string) error
}

const (
	helpAnonymous = "Available commands: register, login, exit"
	helpMember    = "Available commands: (c)ars, sort <field>, filter [text], add, edit <id>, delete <id>, export, " +
		"profile, editprofile, tasks [add <title> | done <id> | rm <id>], reload, logout, exit"
	helpAdmin = helpMember + "\nAdmin commands: scope [all|<user id>], users, profile <user id>, adduser, deluser"
)

// runREPL reads one command per line from in and dispatches it to a. The
// loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by handlers are shown to the user and never end the loop.
// Commands that need a session are refused while logged out.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cs %s> ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("Error:", describe(err))
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		switch {
		case a.isAdmin():
			printlnFn(helpAdmin)
		case a.isLoggedIn():
			printlnFn(helpMember)
		default:
			printlnFn(helpAnonymous)
		}
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	}

	if !a.isLoggedIn() {
		printlnFn("Unknown command:", cmd)
		return nil
	}

	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "reload":
		return a.Reload(ctx)
	case "c", "cars":
		return a.ListCars(ctx)
	case "sort":
		return a.Sort(ctx, args)
	case "filter":
		return a.Filter(ctx, args)
	case "scope":
		return a.Scope(ctx, args)
	case "add":
		return a.AddCar(ctx)
	case "edit":
		return a.EditCar(ctx, args)
	case "delete":
		return a.DeleteCar(ctx, args)
	case "export":
		return a.Export(ctx)
	case "users":
		return a.Users(ctx)
	case "profile":
		return a.Profile(ctx, args)
	case "editprofile":
		return a.EditProfile(ctx)
	case "adduser":
		return a.AddUser(ctx)
	case "deluser":
		return a.DeleteUser(ctx)
	case "tasks":
		return a.Tasks(ctx, args)
	}
	printlnFn("Unknown command:", cmd)
	return nil
}

// errForbidden is returned by admin commands on a member session.
var errForbidden = fmt.Errorf("%w: admin only", common.ErrorForbidden)
