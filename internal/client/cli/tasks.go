package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
)

const tasksUsage = "tasks [add <title> | done <id> | rm <id>]"

func (a *App) Tasks(ctx context.Context, args []string) error {
	var err error
	switch {
	case len(args) == 0:
		err = a.tasks.Load(ctx)
	case args[0] == "add":
		err = a.tasks.Create(ctx, models.TaskDraft{Title: strings.Join(args[1:], " ")})
	case args[0] == "done":
		var id int64
		if id, err = parseID(args[1:], "tasks done <id>"); err == nil {
			err = a.tasks.Toggle(ctx, id)
		}
	case args[0] == "rm":
		var id int64
		if id, err = parseID(args[1:], "tasks rm <id>"); err == nil {
			err = a.tasks.Remove(ctx, id)
		}
	default:
		a.notify("usage: %s", tasksUsage)
		return nil
	}
	if err != nil {
		return err
	}
	renderTasks(a.out, a.tasks.Derived())
	return nil
}
