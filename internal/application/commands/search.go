package commands

import (
	"context"
	"sort"
	"strings"

	"taskjournal/internal/domain"
	"taskjournal/internal/ports"
)

// SearchResult is a task with its relevance score
type SearchResult struct {
	domain.Task
	Score int
}

// SearchTasksCommand searches task descriptions, projects and tags with
// fuzzy matching
type SearchTasksCommand struct {
	store ports.OperationStore
	Query string
}

// NewSearchTasksCommand creates a new SearchTasksCommand
func NewSearchTasksCommand(store ports.OperationStore, query string) *SearchTasksCommand {
	return &SearchTasksCommand{
		store: store,
		Query: query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchTasksCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}

	tasks, err := c.store.ListTasks()
	if err != nil {
		return nil, err
	}

	return FuzzySort(tasks, c.Query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		// Bonus if it starts with query
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '.' || target[i-1] == '-') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort ranks tasks by relevance to the query, dropping non-matches
func FuzzySort(tasks []domain.Task, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(tasks))

	for _, t := range tasks {
		project, _ := t.Get(domain.PropProject)
		best := max(
			FuzzyScore(t.Description(), query),
			FuzzyScore(project, query),
			FuzzyScore(strings.Join(t.Tags(), " "), query),
		)

		if best > 0 {
			scored = append(scored, SearchResult{
				Task:  t,
				Score: best,
			})
		}
	}

	// Sort by score descending, keeping store order for ties
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
