package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stepquest/internal/engine"
	"stepquest/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	state engine.State

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	state engine.State
	err   error
}

type completedMsg struct {
	id  string
	res *engine.CompleteResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{state: m.svc.Store().Snapshot()}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteQuest(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.state = msg.state
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		switch msg.res.Outcome {
		case engine.OutcomeCompleted:
			m.lastLog = fmt.Sprintf("Completed: %s (level %d → %d)",
				ui.FormatReward(msg.res.ExpAwarded), msg.res.LevelBefore, msg.res.LevelAfter)
			if msg.res.LevelUp {
				m.lastLog += " " + ui.BadgeLevelUp
			}
		case engine.OutcomeAlreadyCompleted:
			m.lastLog = "Already completed."
		case engine.OutcomeNotFound:
			m.lastLog = "Quest not found."
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			lines := m.questLines()
			if m.selected < len(lines)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			lines := m.questLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			if line.header {
				m.lastLog = "Select a quest to complete."
				return m, nil
			}
			m.lastLog = "Completing…"
			return m, m.completeCmd(line.id)
		}
	}
	return m, nil
}

type questLine struct {
	id       string
	header   bool
	category engine.Category
	title    string
	reward   engine.Reward
	stars    string
}

// questLines flattens the active set into category headers and quest rows.
func (m *boardModel) questLines() []questLine {
	var out []questLine
	for _, cat := range engine.AllCategories() {
		var rows []questLine
		for _, q := range m.state.Active {
			if q.Category != cat {
				continue
			}
			rows = append(rows, questLine{
				id:       q.ID,
				category: cat,
				title:    q.Title,
				reward:   q.Reward,
				stars:    ui.DifficultyStars(q.Difficulty),
			})
		}
		if len(rows) == 0 {
			continue
		}
		out = append(out, questLine{header: true, category: cat})
		out = append(out, rows...)
	}
	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.state.User == nil {
		return "StepQuest — loading…"
	}
	u := m.state.User
	total := u.TotalExp()
	bar := progressBar(engine.CurrentLevelExp(total), engine.ExpPerLevel, 30)
	return fmt.Sprintf("StepQuest | %s | Level %d | EXP %d %s", u.Nickname, u.Level, total, bar)
}

func (m boardModel) renderSidebar() string {
	if m.state.User == nil {
		return "Stats\n\nLoading…"
	}
	u := m.state.User
	checker := engine.NewAchievementChecker(u, m.state.Completed, m.state.Records)
	lines := []string{
		"Stats",
		fmt.Sprintf("💪 용기: %d", u.CourageExp),
		fmt.Sprintf("🤝 사회성: %d", u.SocialExp),
		fmt.Sprintf("✅ 완료: %d", u.CompletedQuests),
		fmt.Sprintf("🏆 성취: %d/%d", checker.CountEarned(), checker.CountTotal()),
		"",
		"Keys",
		"↑/↓ move",
		"c complete",
		"r refresh",
		"q quit",
	}
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	lines := m.questLines()
	if len(lines) == 0 {
		return ui.Muted.Render("No active quests. Run `sq new` to generate today's set.")
	}

	var b strings.Builder
	for i, line := range lines {
		if line.header {
			b.WriteString(ui.H2.Render(ui.CategoryIcon(line.category) + " " + ui.CategoryName(line.category)))
			b.WriteString("\n")
			continue
		}
		row := fmt.Sprintf("  %s %s %s", line.stars, line.title, ui.Muted.Render(ui.FormatReward(line.reward)))
		if i == m.selected {
			row = ui.SelectedRow.Render("▸" + row[1:])
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

func (m boardModel) renderFooter() string {
	return "\n" + ui.Muted.Render(m.lastLog) + "\n"
}

func progressBar(current, max, width int) string {
	if max <= 0 {
		max = 1
	}
	if current < 0 {
		current = 0
	}
	if current > max {
		current = max
	}
	filled := current * width / max
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
