package commands

import (
	"context"
	"sync"
	"time"

	"guardbot/internal/domain"
)

// TaskService owns the load-modify-save cycle over the task store. The
// mutex keeps one writer at a time within this process; concurrent
// modification of the backing file by other processes is undefined
// behavior.
type TaskService struct {
	repo domain.TaskRepository

	mu  sync.Mutex
	now func() time.Time
}

func NewTaskService(repo domain.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
		now:  time.Now,
	}
}

// Assign appends a new task with the next free id and persists the
// whole store.
func (s *TaskService) Assign(ctx context.Context, roleID, description, due, createdBy string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:          domain.NextTaskID(tasks),
		RoleID:      roleID,
		Description: description,
		Due:         due,
		CreatedBy:   createdBy,
	}

	if err := s.repo.SaveAll(ctx, append(tasks, task)); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Complete flips the completion flag and re-stamps completer and time on
// every call, then persists the whole store.
func (s *TaskService) Complete(ctx context.Context, id int, completedBy string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	idx := -1
	for i := range tasks {
		if tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	stamp := s.now().UTC()
	tasks[idx].Completed = true
	tasks[idx].CompletedBy = completedBy
	tasks[idx].CompletedAt = &stamp

	if err := s.repo.SaveAll(ctx, tasks); err != nil {
		return domain.Task{}, err
	}
	return tasks[idx], nil
}

// Pending returns the tasks not yet completed.
func (s *TaskService) Pending(ctx context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	var pending []domain.Task
	for _, t := range tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	return pending, nil
}
