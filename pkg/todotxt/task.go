// Package todotxt implements reading and writing tasks in the todo.txt
// format: one task per line, with an optional completion marker ("x" plus
// completion date), an optional priority ("(A)".."(Z)"), a creation date,
// the description, and trailing "@context" / "+project" markers.
package todotxt

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/thoas/go-funk"

	"github.com/taskenv/cli/internal/locale"
)

// DateLayout is the date format the todo.txt format uses throughout
const DateLayout = "2006-01-02"

var taskPattern = regexp.MustCompile(
	`^(?P<completed>x\s+)?(?P<completed_date>\d{4}-\d{2}-\d{2}\s+)?(?P<priority>\([A-Z]\)\s+)?(?P<created_date>\d{4}-\d{2}-\d{2}\s+)?(?P<description>.+)$`,
)

var contextPattern = regexp.MustCompile(`(^|\s)@(\w+)`)
var projectPattern = regexp.MustCompile(`(^|\s)\+(\w+)`)
var markerPattern = regexp.MustCompile(`\s*[@+]\w+`)

// Task is a single line of a todo.txt file
type Task struct {
	Description   string
	Completed     bool
	Priority      string // single letter A-Z, empty for none
	CreatedDate   string // YYYY-MM-DD
	CompletedDate string // YYYY-MM-DD, only set when completed
	Contexts      []string
	Projects      []string
}

// NewTask creates a pending task with the creation date stamped to today
func NewTask(description string) *Task {
	return &Task{
		Description: description,
		CreatedDate: time.Now().Format(DateLayout),
	}
}

// Parse parses a single todo.txt line
func Parse(line string) (*Task, error) {
	line = strings.TrimSpace(line)
	match := taskPattern.FindStringSubmatch(line)
	if match == nil || line == "" {
		return nil, locale.NewInputError("err_task_parse", "Invalid task line format: {{.V0}}", line)
	}

	groups := map[string]string{}
	for i, name := range taskPattern.SubexpNames() {
		if name != "" {
			groups[name] = strings.TrimSpace(match[i])
		}
	}

	task := &Task{
		Completed:     groups["completed"] != "",
		CompletedDate: groups["completed_date"],
		CreatedDate:   groups["created_date"],
		Priority:      strings.Trim(groups["priority"], "()"),
	}

	// A date on a pending task is its creation date; the pattern can only
	// tell the two dates apart when the completion marker is present.
	if !task.Completed && task.CompletedDate != "" {
		if task.CreatedDate == "" {
			task.CreatedDate = task.CompletedDate
		}
		task.CompletedDate = ""
	}

	description := groups["description"]
	for _, m := range contextPattern.FindAllStringSubmatch(description, -1) {
		task.AddContext(m[2])
	}
	for _, m := range projectPattern.FindAllStringSubmatch(description, -1) {
		task.AddProject(m[2])
	}
	task.Description = strings.TrimSpace(markerPattern.ReplaceAllString(description, ""))

	if task.Description == "" {
		return nil, locale.NewInputError("err_task_empty", "Task line has no description: {{.V0}}", line)
	}

	return task, nil
}

// String serializes the task back to a todo.txt line
func (t *Task) String() string {
	var sb strings.Builder
	if t.Completed {
		sb.WriteString("x ")
		if t.CompletedDate != "" {
			sb.WriteString(t.CompletedDate + " ")
		}
	}
	if t.Priority != "" {
		sb.WriteString("(" + t.Priority + ") ")
	}
	if t.CreatedDate != "" {
		sb.WriteString(t.CreatedDate + " ")
	}
	sb.WriteString(t.Description)
	for _, context := range t.Contexts {
		sb.WriteString(" @" + context)
	}
	for _, project := range t.Projects {
		sb.WriteString(" +" + project)
	}
	return sb.String()
}

// MarkCompleted flags the task as done and stamps the completion date
func (t *Task) MarkCompleted() {
	t.Completed = true
	t.CompletedDate = time.Now().Format(DateLayout)
}

// AddContext adds a context unless the task already carries it
func (t *Task) AddContext(context string) {
	if !funk.ContainsString(t.Contexts, context) {
		t.Contexts = append(t.Contexts, context)
	}
}

// AddProject adds a project unless the task already carries it
func (t *Task) AddProject(project string) {
	if !funk.ContainsString(t.Projects, project) {
		t.Projects = append(t.Projects, project)
	}
}

// SetPriority sets the priority, which must be a single letter A-Z or empty
func (t *Task) SetPriority(priority string) error {
	priority = strings.TrimSpace(priority)
	if priority != "" && (len(priority) != 1 || priority[0] < 'A' || priority[0] > 'Z') {
		return locale.NewInputError("err_task_priority", "Priority must be a single uppercase letter (A-Z) or empty, got: {{.V0}}", priority)
	}
	t.Priority = priority
	return nil
}

// Status returns a human readable status marker
func (t *Task) Status() string {
	if t.Completed {
		return fmt.Sprintf("[SUCCESS]%s Completed[/RESET]", "✔")
	}
	return fmt.Sprintf("[ERROR]%s Pending[/RESET]", "✖")
}
