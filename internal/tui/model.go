package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-course-catalog/internal/adapter"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

const maxTitleWidth = 60

// writeClipboard is swapped in tests; CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll

type courseModel struct {
	ctx     context.Context
	adapter adapter.CourseAdapter
	logger  *logger.Logger

	screen  screen
	spinner spinner.Model
	loading bool

	version string
	courses []models.Course
	cursor  int
	detail  models.Course

	status string
	err    error
}

func newCourseModel(ctx context.Context, courseAdapter adapter.CourseAdapter, log *logger.Logger) courseModel {
	if log == nil {
		log = logger.Nop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return courseModel{
		ctx:     ctx,
		adapter: courseAdapter,
		logger:  log,
		screen:  screenList,
		spinner: sp,
		loading: true,
	}
}

func (m courseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadCourses(), m.cmdLoadVersion())
}

func (m courseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case coursesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("error loading courses")
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.courses = msg.courses
		if m.cursor >= len(m.courses) {
			m.cursor = max(len(m.courses)-1, 0)
		}
		return m, nil

	case courseLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("error loading course")
			m.err = msg.err
			m.screen = screenList
			return m, nil
		}
		m.err = nil
		m.detail = msg.course
		m.screen = screenDetail
		return m, nil

	case versionLoadedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("server version is unavailable")
			return m, nil
		}
		m.version = msg.version
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = fmt.Sprintf("Copied %q", fitText(msg.text, maxTitleWidth))
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m courseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.loading {
		return m, nil
	}

	if m.screen == screenDetail {
		switch {
		case key.Matches(msg, keys.esc):
			m.screen = screenList
			m.err = nil
		case key.Matches(msg, keys.copy):
			return m, cmdCopyToClipboard(m.detail.Title)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.courses)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.enter):
		if len(m.courses) == 0 {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadCourse(m.courses[m.cursor].ID))
	case key.Matches(msg, keys.copy):
		if len(m.courses) == 0 {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.courses[m.cursor].Title)
	case key.Matches(msg, keys.reload):
		m.loading = true
		m.err = nil
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadCourses())
	}

	return m, nil
}

func (m courseModel) View() string {
	if m.loading {
		return appStyle.Render(m.spinner.View() + " Loading...")
	}

	if m.screen == screenDetail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m courseModel) viewList() string {
	title := "Courses"
	if m.version != "" {
		title = fmt.Sprintf("Courses (server %s)", m.version)
	}

	var b strings.Builder
	if len(m.courses) == 0 {
		b.WriteString("No courses yet\n")
	}
	for i, c := range m.courses {
		line := fmt.Sprintf("ID: %d Title: %s", c.ID, fitText(c.Title, maxTitleWidth))
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	m.writeFooter(&b)

	return renderPage(title, b.String(), "↑/↓ move • enter open • c copy title • r reload • q quit")
}

func (m courseModel) viewDetail() string {
	c := m.detail

	var b strings.Builder
	fmt.Fprintf(&b, "ID:               %d\n", c.ID)
	fmt.Fprintf(&b, "Title:            %s\n", c.Title)
	fmt.Fprintf(&b, "Description:      %s\n", c.Description)
	fmt.Fprintf(&b, "Estimated time:   %s\n", valueOrDash(c.EstimatedTime))
	fmt.Fprintf(&b, "Materials needed: %s\n", valueOrDash(c.MaterialsNeeded))
	if c.User != nil {
		fmt.Fprintf(&b, "Owner:            %s %s <%s>\n", c.User.FirstName, c.User.LastName, c.User.EmailAddress)
	}
	m.writeFooter(&b)

	return renderPage("Course", b.String(), "c copy title • esc back • q quit")
}

func (m courseModel) writeFooter(b *strings.Builder) {
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + humanizeError(m.err)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}
}

func (m courseModel) cmdLoadCourses() tea.Cmd {
	return func() tea.Msg {
		courses, err := m.adapter.ListCourses(m.ctx)
		return coursesLoadedMsg{courses: courses, err: err}
	}
}

func (m courseModel) cmdLoadCourse(id int64) tea.Cmd {
	return func() tea.Msg {
		course, err := m.adapter.GetCourse(m.ctx, id)
		return courseLoadedMsg{course: course, err: err}
	}
}

func (m courseModel) cmdLoadVersion() tea.Cmd {
	return func() tea.Msg {
		version, err := m.adapter.GetVersion(m.ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{text: text}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
