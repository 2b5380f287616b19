package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// intentTask is one packing run's task description. Bulk mode (intent
// argument is a directory) yields one task per file; otherwise there is a
// single task, possibly with no text.
type intentTask struct {
	Name string
	Text string
}

// resolveIntent interprets the --intent argument: empty means no intent, a
// directory means bulk mode (one task per file inside, sorted by name), a
// file means its content, anything else is taken as literal text.
func resolveIntent(arg string) ([]intentTask, error) {
	if arg == "" {
		return []intentTask{{}}, nil
	}

	info, err := os.Stat(arg)
	if err != nil {
		// Not a path: literal intent text.
		return []intentTask{{Text: arg}}, nil
	}

	if !info.IsDir() {
		content, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("read intent file: %w", err)
		}
		return []intentTask{{Text: strings.TrimSpace(string(content))}}, nil
	}

	entries, err := os.ReadDir(arg)
	if err != nil {
		return nil, fmt.Errorf("read intent directory: %w", err)
	}

	var tasks []intentTask
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(arg, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read intent task %s: %w", entry.Name(), err)
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		tasks = append(tasks, intentTask{Name: name, Text: strings.TrimSpace(string(content))})
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("intent directory %s contains no task files", arg)
	}

	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Name < tasks[j].Name })
	return tasks, nil
}

// buildIntentPreamble wraps the user's task in the phase-appropriate
// instruction. Without a focus set the document is a survey: the reader is
// asked to propose which files need full text. With a focus set the reader
// has full text for the relevant files and is asked to do the work.
func buildIntentPreamble(text string, hasFocus bool) string {
	if text == "" {
		return ""
	}

	if !hasFocus {
		return "Task:\n" + text + "\n\n" +
			"This document is a survey pass: most files are shown as structural " +
			"skeletons. Study the structure and reply with the list of file paths " +
			"(as --focus glob arguments) whose full text is needed to complete the " +
			"task, plus any --ignore patterns for irrelevant files. Do not attempt " +
			"the task yet."
	}

	return "Task:\n" + text + "\n\n" +
		"Files relevant to the task are included with their full text; the rest " +
		"of the repository is shown as structural skeletons for context. Complete " +
		"the task using the full-text files."
}

// taskOutputPath derives the per-task output path in bulk mode by inserting
// the task name before the extension.
func taskOutputPath(base, taskName string) string {
	if taskName == "" {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + taskName + ext
}
