package editor

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Composer collects free text from the user's editor through a draft file
type Composer struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewComposer creates a composer using $EDITOR, $VISUAL or a common editor
func NewComposer() *Composer {
	return &Composer{
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
	}
}

// Command returns an exec.Cmd editing the draft at path, for use with
// bubbletea's ExecProcess
func (c *Composer) Command(path string) (*exec.Cmd, error) {
	editor := c.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func (c *Composer) findEditor() string {
	if editor := c.getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := c.getenv("VISUAL"); visual != "" {
		return visual
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := c.lookPath(editor); err == nil {
			return path
		}
	}
	return ""
}

// NewDraft writes a draft file holding the hint as a comment line and
// returns its path
func NewDraft(hint string) (string, error) {
	f, err := os.CreateTemp("", "taskjournal-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create draft: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n# %s\n# Lines starting with # are ignored; an empty draft cancels.\n", hint); err != nil {
		return "", fmt.Errorf("failed to write draft: %w", err)
	}
	return f.Name(), nil
}

// ReadDraft returns the draft text without comment lines, joined on one
// line, and removes the file
func ReadDraft(path string) (string, error) {
	defer os.Remove(path)

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read draft: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read draft: %w", err)
	}
	return strings.Join(words, " "), nil
}
