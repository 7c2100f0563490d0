package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"taskjournal/internal/application"
	"taskjournal/internal/domain"
	"taskjournal/internal/ports"
)

// InfoCommand gathers attributes and the change journal for one or more tasks
type InfoCommand struct {
	store          ports.OperationStore
	presenter      domain.Presenter
	logger         *slog.Logger
	UUIDs          []string
	JournalEnabled bool
}

// NewInfoCommand creates a new InfoCommand
func NewInfoCommand(store ports.OperationStore, presenter domain.Presenter, logger *slog.Logger, journalEnabled bool, uuids ...string) *InfoCommand {
	if logger == nil {
		logger = slog.Default()
	}
	return &InfoCommand{
		store:          store,
		presenter:      presenter,
		logger:         logger,
		UUIDs:          uuids,
		JournalEnabled: journalEnabled,
	}
}

// Validate checks that every requested ID is a UUID
func (c *InfoCommand) Validate() error {
	if len(c.UUIDs) == 0 {
		return &application.ValidationError{
			Field:   "taskUUID",
			Message: "at least one task UUID is required",
		}
	}
	for i, id := range c.UUIDs {
		canonical, err := application.ValidateUUID("taskUUID", id)
		if err != nil {
			return err
		}
		c.UUIDs[i] = canonical
	}
	return nil
}

// Execute runs the info command. Unknown UUIDs are skipped; ErrNoMatches is
// returned when none of them exist. A journal failure is recorded on the
// affected TaskInfo rather than returned.
func (c *InfoCommand) Execute(ctx context.Context) ([]application.TaskInfo, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var infos []application.TaskInfo
	for _, id := range c.UUIDs {
		task, err := c.store.GetTask(id)
		if errors.Is(err, application.ErrNotFound) {
			c.logger.Debug("task not found", "uuid", id)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load task %s: %w", id, err)
		}

		info := application.TaskInfo{Task: *task}
		if c.JournalEnabled {
			info.Journal, info.JournalErr = TaskJournal(c.store, c.presenter, *task)
			if info.JournalErr != nil {
				c.logger.Warn("journal unavailable", "uuid", id, "error", info.JournalErr)
			}
		}
		infos = append(infos, info)
	}

	if len(infos) == 0 {
		return nil, application.ErrNoMatches
	}
	return infos, nil
}

// TaskJournal replays a task's stored operations into its journal, seeding
// the replay from the task's current start value
func TaskJournal(store ports.OperationStore, presenter domain.Presenter, task domain.Task) ([]domain.Entry, error) {
	ops, err := store.GetTaskOperations(task.UUID)
	if err != nil {
		return nil, &application.JournalError{UUID: task.UUID, Err: err}
	}
	if len(ops) == 0 {
		return nil, nil
	}

	seed := domain.SeedReplayState(task.Properties, presenter)
	entries, err := domain.BuildJournal(ops, seed, presenter)
	if err != nil {
		return nil, &application.JournalError{UUID: task.UUID, Err: err}
	}
	return entries, nil
}
