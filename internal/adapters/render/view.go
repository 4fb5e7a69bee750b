package render

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bnema/clickup-cli/internal/application"
	"github.com/bnema/clickup-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	descriptionPreviewRunes = 80
	dateTimeLayout          = "2006-01-02 15:04"
	dateLayout              = "2006-01-02"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

type Options struct {
	Now      time.Time
	Location *time.Location
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

func Tasks(title string, tasks []domain.Task, opts Options) (string, error) {
	return run(func(s styles) string {
		return taskListView(title, tasks, opts, s)
	})
}

func Task(task domain.Task, opts Options) (string, error) {
	return run(func(s styles) string {
		return taskDetailView(task, opts, s)
	})
}

func Teams(teams []domain.Team) (string, error) {
	return run(func(s styles) string {
		return teamsView(teams, s)
	})
}

func Spaces(teamID string, spaces []domain.Space) (string, error) {
	return run(func(s styles) string {
		return spacesView(teamID, spaces, s)
	})
}

func Lists(spaceID string, lists []domain.List) (string, error) {
	return run(func(s styles) string {
		return listsView(spaceID, lists, s)
	})
}

func User(user domain.User) (string, error) {
	return run(func(s styles) string {
		return userView(user, s)
	})
}

func AuthStatus(status application.AuthStatus) (string, error) {
	return run(func(s styles) string {
		return authStatusView(status, s)
	})
}

func Credentials(path string, creds domain.Credentials) (string, error) {
	return run(func(s styles) string {
		return credentialsView(path, creds, s)
	})
}

func taskListView(title string, tasks []domain.Task, opts Options, s styles) string {
	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("tasks: %d", len(tasks))),
	}

	if len(tasks) == 0 {
		lines = append(lines, s.empty.Render("No tasks found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, task := range tasks {
		lines = append(lines, s.section.Render(taskSummary(i+1, task, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func taskSummary(index int, task domain.Task, opts Options, s styles) string {
	parts := []string{
		s.item.Render(fmt.Sprintf("%d. [%s] %s", index, task.StatusName(), task.Name)),
		s.detail.Render(fmt.Sprintf("   ID: %s | Priority: %s", task.ID, domain.PriorityLabel(task.PriorityLevel()))),
	}

	if preview := descriptionPreview(task.Description); preview != "" {
		parts = append(parts, s.detail.Render("   "+preview))
	}
	if names := task.AssigneeNames(); len(names) > 0 {
		parts = append(parts, s.detail.Render("   Assignees: "+strings.Join(names, ", ")))
	}
	if due := dueLine(task, opts, s); due != "" {
		parts = append(parts, "   "+due)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func taskDetailView(task domain.Task, opts Options, s styles) string {
	lines := []string{s.title.Render(task.Name)}

	fields := [][2]string{
		{"ID", task.ID},
		{"Custom ID", task.CustomID},
		{"Status", task.StatusName()},
		{"Priority", domain.PriorityLabel(task.PriorityLevel())},
	}
	if task.List != nil {
		fields = append(fields, [2]string{"List", listLabel(task.List)})
	}
	fields = append(fields,
		[2]string{"Assignees", strings.Join(task.AssigneeNames(), ", ")},
		[2]string{"Start", formatTimestamp(task.StartDate, dateTimeLayout, opts)},
		[2]string{"Created", formatTimestamp(task.DateCreated, dateLayout, opts)},
		[2]string{"URL", task.URL},
	)

	for _, field := range fields {
		if field[1] == "" {
			continue
		}
		lines = append(lines, keyValue(field[0], field[1], s))
	}
	if due := dueLine(task, opts, s); due != "" {
		lines = append(lines, due)
	}

	if description := strings.TrimSpace(task.Description); description != "" {
		lines = append(lines, s.section.Render(s.key.Render("Description")), s.detail.Render(description))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func teamsView(teams []domain.Team, s styles) string {
	lines := []string{
		s.title.Render("Workspaces"),
		s.header.Render(fmt.Sprintf("workspaces: %d", len(teams))),
	}

	if len(teams) == 0 {
		lines = append(lines, s.empty.Render("No workspaces found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, team := range teams {
		lines = append(lines, fmt.Sprintf("%s %s", s.item.Render(team.Name), s.detail.Render(fmt.Sprintf("(ID: %s, members: %d)", team.ID, len(team.Members)))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func spacesView(teamID string, spaces []domain.Space, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Spaces in workspace %s", teamID)),
		s.header.Render(fmt.Sprintf("spaces: %d", len(spaces))),
	}

	if len(spaces) == 0 {
		lines = append(lines, s.empty.Render("No spaces found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, space := range spaces {
		label := fmt.Sprintf("(ID: %s)", space.ID)
		if space.Private {
			label = fmt.Sprintf("(ID: %s, private)", space.ID)
		}
		lines = append(lines, fmt.Sprintf("%s %s", s.item.Render(space.Name), s.detail.Render(label)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func listsView(spaceID string, lists []domain.List, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Lists in space %s", spaceID)),
		s.header.Render(fmt.Sprintf("lists: %d", len(lists))),
	}

	if len(lists) == 0 {
		lines = append(lines, s.empty.Render("No lists found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, list := range lists {
		meta := fmt.Sprintf("ID: %s", list.ID)
		if list.TaskCount != nil {
			meta += fmt.Sprintf(", tasks: %d", *list.TaskCount)
		}
		if list.Folder != nil && list.Folder.Name != "" && !list.Folder.Hidden {
			meta += fmt.Sprintf(", folder: %s", list.Folder.Name)
		}
		lines = append(lines, fmt.Sprintf("%s %s", s.item.Render(list.Name), s.detail.Render("("+meta+")")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func userView(user domain.User, s styles) string {
	lines := []string{
		s.title.Render(user.DisplayName()),
		keyValue("ID", fmt.Sprintf("%d", user.ID), s),
	}
	if user.Username != "" {
		lines = append(lines, keyValue("Username", user.Username, s))
	}
	if user.Email != "" {
		lines = append(lines, keyValue("Email", user.Email, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func authStatusView(status application.AuthStatus, s styles) string {
	switch status.State {
	case application.AuthStateAuthenticated:
		lines := []string{s.success.Render("Authenticated")}
		if status.User != nil {
			lines = append(lines, keyValue("User", status.User.DisplayName(), s))
			if status.User.Email != "" {
				lines = append(lines, keyValue("Email", status.User.Email, s))
			}
		}
		lines = append(lines, keyValue("Token", status.MaskedToken, s), keyValue("Source", string(status.Source), s))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	case application.AuthStateExpired:
		return lipgloss.JoinVertical(lipgloss.Left,
			s.warning.Render("Token rejected by ClickUp"),
			keyValue("Token", status.MaskedToken, s),
			keyValue("Source", string(status.Source), s),
			s.detail.Render("Run `clickup auth login` to store a new token."),
		)
	default:
		return lipgloss.JoinVertical(lipgloss.Left,
			s.warning.Render("Not authenticated"),
			s.detail.Render("Run `clickup auth login` or set CLICKUP_API_TOKEN."),
		)
	}
}

func credentialsView(path string, creds domain.Credentials, s styles) string {
	lines := []string{s.title.Render("Configuration"), s.header.Render(path)}
	for _, key := range domain.CredentialKeys() {
		value, _ := creds.Value(key)
		if value == "" {
			value = s.empty.Render("(not set)")
		}
		lines = append(lines, keyValue(string(key), value, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func dueLine(task domain.Task, opts Options, s styles) string {
	if task.DueDate == nil || task.DueDate.IsZero() {
		return ""
	}

	line := keyValue("Due", formatTimestamp(task.DueDate, dateTimeLayout, opts), s)
	if isOverdue(task, opts.Now) {
		line += " " + s.warning.Render("OVERDUE")
	}
	return line
}

func isOverdue(task domain.Task, now time.Time) bool {
	if now.IsZero() || task.DueDate == nil || task.DueDate.IsZero() {
		return false
	}
	if task.Status != nil && (task.Status.Type == "closed" || strings.EqualFold(task.Status.Status, domain.StatusComplete)) {
		return false
	}
	return task.DueDate.Time().Before(now)
}

func keyValue(key, value string, s styles) string {
	return s.key.Render(key+":") + " " + s.detail.Render(value)
}

func formatTimestamp(ts *domain.Timestamp, layout string, opts Options) string {
	if ts == nil || ts.IsZero() {
		return ""
	}
	return ts.Time().In(opts.location()).Format(layout)
}

func listLabel(list *domain.TaskListRef) string {
	if list.Name == "" {
		return list.ID
	}
	return fmt.Sprintf("%s (%s)", list.Name, list.ID)
}

// descriptionPreview flattens a description to one line without markup.
func descriptionPreview(description string) string {
	flat := strings.Join(strings.Fields(htmlTagPattern.ReplaceAllString(description, "")), " ")
	runes := []rune(flat)
	if len(runes) <= descriptionPreviewRunes {
		return flat
	}
	return string(runes[:descriptionPreviewRunes]) + "..."
}
