package usecase

import (
	"strings"
	"time"

	"tax-practice-management/internal/task"
)

// draftDateLayouts are accepted in validation, most specific first.
var draftDateLayouts = []string{time.RFC3339, "2006-01-02"}

// ValidateSet checks a set of draft tasks. Each draft records at most its
// first violation, keyed by the draft's ID (falling back to its title).
// The checks run in a fixed order per draft: required, date, duplicate,
// dependency, circular.
func (uc *implUseCase) ValidateSet(drafts []task.Draft) task.Issues {
	issues := make(task.Issues)

	record := func(key string, t task.IssueType, msg string) {
		if _, exists := issues[key]; !exists {
			issues[key] = task.Issue{Type: t, Message: msg}
		}
	}

	// keys and titles seen so far, for duplicate and dependency checks
	keys := make(map[string]int, len(drafts))
	titles := make(map[string]int)
	for i, d := range drafts {
		keys[draftKey(d)] = i
		titles[strings.ToLower(strings.TrimSpace(d.Title))]++
	}

	for _, d := range drafts {
		key := draftKey(d)

		if strings.TrimSpace(d.Title) == "" {
			record(key, task.IssueRequired, "title is required")
			continue
		}

		start, startErr := parseDraftDate(d.StartDate)
		due, dueErr := parseDraftDate(d.DueDate)
		if startErr != nil || dueErr != nil {
			record(key, task.IssueDate, "date is not parseable")
			continue
		}
		if !start.IsZero() && !due.IsZero() && start.After(due) {
			record(key, task.IssueDate, "start date must not be after due date")
			continue
		}

		if titles[strings.ToLower(strings.TrimSpace(d.Title))] > 1 {
			record(key, task.IssueDuplicate, "duplicate task title")
			continue
		}

		if dep, ok := unresolvedDependency(d, keys, drafts); ok {
			record(key, task.IssueDependency, "unknown dependency: "+dep)
			continue
		}
	}

	// Cycle detection runs over the whole graph after per-draft checks so a
	// draft already flagged for a cheaper violation keeps that issue.
	for _, key := range findCycles(drafts) {
		record(key, task.IssueCircular, "dependency cycle detected")
	}

	return issues
}

func draftKey(d task.Draft) string {
	if d.ID != "" {
		return d.ID
	}
	return d.Title
}

func parseDraftDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	var lastErr error
	for _, layout := range draftDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// unresolvedDependency returns the first dependency that matches neither a
// draft key nor a draft title in the set.
func unresolvedDependency(d task.Draft, keys map[string]int, drafts []task.Draft) (string, bool) {
	for _, dep := range d.Dependencies {
		if _, ok := keys[dep]; ok {
			continue
		}
		found := false
		for _, other := range drafts {
			if other.Title == dep && draftKey(other) != draftKey(d) {
				found = true
				break
			}
		}
		if !found {
			return dep, true
		}
	}
	return "", false
}

// findCycles returns the keys of every draft on a dependency cycle,
// detected with a three-color depth-first search.
func findCycles(drafts []task.Draft) []string {
	byKey := make(map[string]task.Draft, len(drafts))
	byTitle := make(map[string]string)
	for _, d := range drafts {
		byKey[draftKey(d)] = d
		byTitle[d.Title] = draftKey(d)
	}

	resolve := func(dep string) (string, bool) {
		if _, ok := byKey[dep]; ok {
			return dep, true
		}
		key, ok := byTitle[dep]
		return key, ok
	}

	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int, len(drafts))
	onCycle := make(map[string]bool)

	var visit func(key string, stack []string)
	visit = func(key string, stack []string) {
		color[key] = gray
		stack = append(stack, key)

		for _, dep := range byKey[key].Dependencies {
			depKey, ok := resolve(dep)
			if !ok {
				continue
			}
			switch color[depKey] {
			case white:
				visit(depKey, stack)
			case gray:
				// Everything from the first occurrence of depKey on the
				// stack is part of the cycle.
				for i := len(stack) - 1; i >= 0; i-- {
					onCycle[stack[i]] = true
					if stack[i] == depKey {
						break
					}
				}
			}
		}
		color[key] = black
	}

	for _, d := range drafts {
		if color[draftKey(d)] == white {
			visit(draftKey(d), nil)
		}
	}

	keys := make([]string, 0, len(onCycle))
	for _, d := range drafts {
		if onCycle[draftKey(d)] {
			keys = append(keys, draftKey(d))
		}
	}
	return keys
}
