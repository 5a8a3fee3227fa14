package console

import (
	"context"
)

// runTasks is the single-shot variant: description in, plain task list out
func (r *Runner) runTasks(ctx context.Context) error {
	description, err := r.askDescription()
	if err != nil {
		return err
	}

	r.println("\nGenerating the task list...")

	tasks, err := r.uc.GenerateTaskList(ctx, description)
	if err != nil {
		r.printf("\n❌ Error: %v\n", err)
		return err
	}

	r.println("")
	r.println(tasks)

	return nil
}
