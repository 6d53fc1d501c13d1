package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"guardbot/internal/domain"
)

// TaskStore persists the whole task list as one human-readable JSON
// array. Access is assumed single-process and sequential; concurrent
// modification of the file by another process is undefined behavior.
type TaskStore struct {
	path string
}

func NewTaskStore(path string) (*TaskStore, error) {
	if path == "" {
		return nil, fmt.Errorf("jsonfile: empty store path")
	}
	return &TaskStore{path: path}, nil
}

// LoadAll returns an empty list when the backing file does not exist.
func (s *TaskStore) LoadAll(ctx context.Context) ([]domain.Task, error) {
	_ = ctx

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, domain.WrapError(domain.ErrCodeStoreRead, "reading task store", err)
	}

	var tasks []domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, domain.WrapError(domain.ErrCodeStoreCorrupt, "parsing task store", err)
	}
	return tasks, nil
}

// SaveAll rewrites the entire store through a temp file and a rename,
// so a failed write leaves the previous contents observable.
func (s *TaskStore) SaveAll(ctx context.Context, tasks []domain.Task) error {
	_ = ctx

	if tasks == nil {
		tasks = []domain.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return domain.WrapError(domain.ErrCodeStoreWrite, "encoding task store", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return domain.WrapError(domain.ErrCodeStoreWrite, "creating temp task store", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return domain.WrapError(domain.ErrCodeStoreWrite, "writing task store", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return domain.WrapError(domain.ErrCodeStoreWrite, "closing task store", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return domain.WrapError(domain.ErrCodeStoreWrite, "replacing task store", err)
	}
	return nil
}
