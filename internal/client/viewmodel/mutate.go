package viewmodel

import (
	"context"
	"fmt"
)

// afterMutation reloads the list once the server accepted a change. The
// mutation itself has happened even if the reload fails.
func afterMutation(ctx context.Context, op string, reload func(context.Context) error) error {
	if err := reload(ctx); err != nil {
		return fmt.Errorf("%s succeeded, reload failed: %w", op, err)
	}
	return nil
}
