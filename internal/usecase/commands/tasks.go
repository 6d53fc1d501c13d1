package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"guardbot/internal/domain"
)

type TaskAssignCommand struct {
	tasks *TaskService
}

func NewTaskAssignCommand(tasks *TaskService) *TaskAssignCommand {
	return &TaskAssignCommand{tasks: tasks}
}

func (c *TaskAssignCommand) Name() string {
	return "task_assign"
}

func (c *TaskAssignCommand) Aliases() []string {
	return nil
}

func (c *TaskAssignCommand) Description() string {
	return "Assign a task to a role."
}

func (c *TaskAssignCommand) Options() []Option {
	return []Option{
		{Name: "role", Description: "Role the task is for", Kind: OptionRole, Required: true},
		{Name: "due", Description: "Due date, YYYY-MM-DD", Kind: OptionString, Required: true},
		{Name: "description", Description: "What needs doing", Kind: OptionText, Required: true},
	}
}

func (c *TaskAssignCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	due := cmdCtx.String("due")
	if _, err := time.Parse(domain.DueLayout, due); err != nil {
		return domain.NewError(domain.ErrCodeInvalid, "⚠️ Due date must look like YYYY-MM-DD.")
	}

	task, err := c.tasks.Assign(ctx,
		cmdCtx.String("role"),
		cmdCtx.String("description"),
		due,
		cmdCtx.Invocation.UserID,
	)
	if err != nil {
		return err
	}

	return cmdCtx.Reply(ctx, fmt.Sprintf("✅ Task #%d assigned to <@&%s>: %s (due %s)",
		task.ID, task.RoleID, task.Description, task.Due))
}

type TaskCompleteCommand struct {
	tasks *TaskService
}

func NewTaskCompleteCommand(tasks *TaskService) *TaskCompleteCommand {
	return &TaskCompleteCommand{tasks: tasks}
}

func (c *TaskCompleteCommand) Name() string {
	return "task_complete"
}

func (c *TaskCompleteCommand) Aliases() []string {
	return nil
}

func (c *TaskCompleteCommand) Description() string {
	return "Mark a task as done."
}

func (c *TaskCompleteCommand) Options() []Option {
	return []Option{
		{Name: "task_id", Description: "Id of the task", Kind: OptionInt, Required: true},
	}
}

func (c *TaskCompleteCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	task, err := c.tasks.Complete(ctx, cmdCtx.Int("task_id"), cmdCtx.Invocation.UserID)
	if err != nil {
		return err
	}
	return cmdCtx.Reply(ctx, fmt.Sprintf("✅ Task #%d marked complete.", task.ID))
}

type TaskListCommand struct {
	tasks *TaskService
}

func NewTaskListCommand(tasks *TaskService) *TaskListCommand {
	return &TaskListCommand{tasks: tasks}
}

func (c *TaskListCommand) Name() string {
	return "task_list"
}

func (c *TaskListCommand) Aliases() []string {
	return nil
}

func (c *TaskListCommand) Description() string {
	return "List open tasks."
}

func (c *TaskListCommand) Options() []Option {
	return nil
}

func (c *TaskListCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	pending, err := c.tasks.Pending(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return cmdCtx.Reply(ctx, "No open tasks.")
	}

	lines := make([]string, 0, len(pending))
	for _, t := range pending {
		lines = append(lines, fmt.Sprintf("#%d <@&%s> %s (due %s)", t.ID, t.RoleID, t.Description, t.Due))
	}
	return cmdCtx.Reply(ctx, strings.Join(lines, "\n"))
}
