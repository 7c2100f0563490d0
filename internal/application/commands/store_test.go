package commands

import (
	"errors"
	"sort"

	"taskjournal/internal/domain"
)

// fakeStore is an in-memory ports.OperationStore
type fakeStore struct {
	tasks  map[string]map[string]string
	log    []domain.Operation
	opsErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{tasks: make(map[string]map[string]string)}
}

func (s *fakeStore) GetTask(uuid string) (*domain.Task, error) {
	props, ok := s.tasks[uuid]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	copied := make(map[string]string, len(props))
	for k, v := range props {
		copied[k] = v
	}
	return &domain.Task{UUID: uuid, Properties: copied}, nil
}

func (s *fakeStore) ListTasks() ([]domain.Task, error) {
	ids := make([]string, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	tasks := make([]domain.Task, 0, len(ids))
	for _, id := range ids {
		t, _ := s.GetTask(id)
		tasks = append(tasks, *t)
	}
	return tasks, nil
}

func (s *fakeStore) GetTaskOperations(uuid string) ([]domain.Operation, error) {
	if s.opsErr != nil {
		return nil, s.opsErr
	}
	var ops []domain.Operation
	for _, op := range s.log {
		if op.UUID == uuid {
			ops = append(ops, op)
		}
	}
	return ops, nil
}

func (s *fakeStore) GetUndoOperations() ([]domain.Operation, error) {
	for i := len(s.log) - 1; i >= 0; i-- {
		if s.log[i].Kind == domain.OpUndoPoint {
			return s.log[i:], nil
		}
	}
	return s.log, nil
}

func (s *fakeStore) CommitOperations(ops []domain.Operation) error {
	s.log = append(s.log, domain.Operation{Kind: domain.OpUndoPoint})
	for _, op := range ops {
		if err := op.Validate(); err != nil {
			return err
		}
		s.log = append(s.log, op)
		switch op.Kind {
		case domain.OpCreate:
			s.tasks[op.UUID] = make(map[string]string)
		case domain.OpDelete:
			delete(s.tasks, op.UUID)
		case domain.OpUpdate:
			props, ok := s.tasks[op.UUID]
			if !ok {
				return errors.New("update of unknown task")
			}
			if op.Value == nil {
				delete(props, op.Property)
			} else {
				props[op.Property] = *op.Value
			}
		}
	}
	return nil
}
