package views

import "taskjournal/internal/domain"

// ViewState holds the size and status line shared by the view models
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets the status line
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// SwitchToInfoMsg opens the info view for a task
type SwitchToInfoMsg struct {
	UUID string
}

// SwitchToListMsg returns to the task list
type SwitchToListMsg struct{}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

type tasksLoadedMsg struct {
	tasks []domain.Task
}

type errMsg struct {
	err error
}
