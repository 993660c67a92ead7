package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// barWidth is the rendered width of the progress bar above the file list.
const barWidth = 40

// NewFileProgress returns a FileProgress writing to w (nil means os.Stdout).
// The animated file list is used only when w is a terminal and color is
// enabled; otherwise one line is logged per written file.
func NewFileProgress(theme *Theme, hm *HeadlessManager, w io.Writer) FileProgress {
	if w == nil {
		w = os.Stdout
	}
	if theme.NoColor || !hm.CanDraw(w) {
		return &fileLog{w: w}
	}
	return &fileList{theme: theme, w: w}
}

// fileLog prints "[n/total] path" for every written file.
type fileLog struct {
	w     io.Writer
	total int
	count int
}

func (l *fileLog) Planned(paths []string) {
	l.total = len(paths)
}

func (l *fileLog) Written(path string) {
	l.count++
	_, _ = fmt.Fprintf(l.w, "[%d/%d] %s\n", l.count, l.total, path)
}

func (l *fileLog) Done() {}

// fileWrittenMsg marks one planned path as written.
type fileWrittenMsg string

// fileListDoneMsg ends the program.
type fileListDoneMsg struct{}

// fileListModel renders a bar over the planned files, each marked as
// written or pending.
type fileListModel struct {
	bar     progress.Model
	paths   []string
	written map[string]bool
	done    bool

	doneStyle    lipgloss.Style
	pendingStyle lipgloss.Style
}

func newFileListModel(theme *Theme, paths []string) fileListModel {
	return fileListModel{
		bar: progress.New(
			progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		),
		paths:        paths,
		written:      make(map[string]bool, len(paths)),
		doneStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Success)),
		pendingStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Muted)),
	}
}

func (m fileListModel) Init() tea.Cmd {
	return nil
}

func (m fileListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileWrittenMsg:
		m.written[string(msg)] = true
	case fileListDoneMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View is empty once done; the summary printed afterwards lists the files.
func (m fileListModel) View() string {
	if m.done {
		return ""
	}

	pct := 0.0
	if len(m.paths) > 0 {
		pct = float64(len(m.written)) / float64(len(m.paths))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d/%d\n", m.bar.ViewAs(pct), len(m.written), len(m.paths))
	for _, p := range m.paths {
		if m.written[p] {
			b.WriteString(m.doneStyle.Render("  ✓ "+p) + "\n")
		} else {
			b.WriteString(m.pendingStyle.Render("  ○ "+p) + "\n")
		}
	}
	return b.String()
}

// fileList drives a fileListModel in a tea.Program on its own goroutine.
type fileList struct {
	theme   *Theme
	w       io.Writer
	program *tea.Program
	exited  chan struct{}
	once    sync.Once
}

func (l *fileList) Planned(paths []string) {
	l.program = tea.NewProgram(newFileListModel(l.theme, paths),
		tea.WithOutput(l.w),
		tea.WithInput(nil),
	)
	l.exited = make(chan struct{})
	go func() {
		defer close(l.exited)
		_, _ = l.program.Run()
	}()
}

func (l *fileList) Written(path string) {
	if l.program != nil {
		l.program.Send(fileWrittenMsg(path))
	}
}

// Done stops the program and waits for its final frame.
func (l *fileList) Done() {
	l.once.Do(func() {
		if l.program == nil {
			return
		}
		l.program.Send(fileListDoneMsg{})
		<-l.exited
	})
}
