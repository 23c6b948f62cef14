package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"bendor/internal/logging"
	"bendor/internal/stack"
)

func main() {
	config := loadConfig()
	if config.LogFile != "" {
		f, err := tea.LogToFile(config.LogFile, "bendor")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logging.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: logging.ParseLevel(config.LogLevel),
		})))
	}

	m := initialModel(config, os.Args[1:])
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if m.pendingPath == stdinPath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		m.piped = data
		opts = append(opts, tea.WithInputTTY())
	}

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel(config *Config, args []string) model {
	input := textinput.New()
	input.Placeholder = "~/Pictures/photo.png"
	input.Prompt = "Image: "
	input.CharLimit = 512
	input.Width = 50
	input.Focus()

	m := model{
		mode:   ModeStartup,
		stack:  stack.New(),
		input:  input,
		config: config,
	}
	if !config.StartMenu {
		m.mode = ModeNormal
	}
	if len(args) > 0 {
		m.pendingPath = args[0]
	}
	return m
}

func (m model) Init() tea.Cmd {
	if load := m.initialLoad(); load != nil {
		return tea.Batch(textinput.Blink, load)
	}
	return textinput.Blink
}

// initialLoad opens the image named on the command line, if any.
func (m model) initialLoad() tea.Cmd {
	switch m.pendingPath {
	case "":
		return nil
	case stdinPath:
		return decodeImage("stdin", m.piped, m.config.MaxDimension)
	default:
		return loadImage(m.pendingPath, m.config.MaxDimension)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case imageLoadedMsg:
		m.pendingPath = ""
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			return m, nil
		}
		m.attachImage(msg.path, msg.image)
		m.mode = ModeNormal
		m.input.Reset()
		m.clearMessages()
		m.successMessage = "Opened " + msg.path + ", press n for a layer"
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("%s export failed: %v", msg.kind, msg.err)
			return m, nil
		}
		m.copyPath(msg.path)
		return m, nil

	case tea.KeyMsg:
		if m.help && m.mode != ModeStartup {
			return m.updateHelp(msg)
		}
		switch m.mode {
		case ModeStartup, ModeFileInput:
			return m.updateInput(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		case ModeTrace:
			return m.updateTrace(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	if m.mode == ModeStartup || m.mode == ModeFileInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		visibleHeight := max(1, m.height-1)
		maxScroll := max(0, len(helpLines())-visibleHeight)
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
	return m, nil
}

func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.input.Reset()
		m.errorMessage = ""
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			m.errorMessage = "Enter the path of an image"
			return m, nil
		}
		m.errorMessage = ""
		m.pendingPath = path
		return m, loadImage(path, m.config.MaxDimension)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmDeleteLayer:
			m.deleteLayer()
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmOpenImage:
			return m, m.startOpen()
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

func (m model) updateTrace(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, keys.Cancel):
		m.trace = nil
		m.drawTrace()
		m.mode = ModeNormal
	case key.Matches(msg, keys.Close):
		m.closeTrace()
		m.mode = ModeNormal
	case key.Matches(msg, keys.Trace):
		m.addTracePoint()
	default:
		m.handleNavigation(msg)
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavigation(msg) {
		return m, nil
	}
	m.clearMessages()

	switch {
	case key.Matches(msg, keys.Quit):
		if !m.config.Confirmations || msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmQuit
	case key.Matches(msg, keys.Help):
		m.help = !m.help
	case key.Matches(msg, keys.Open):
		if m.stack.Len() > 0 && m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmOpenImage
			return m, nil
		}
		return m, m.startOpen()
	case m.canvas == nil:
		m.errorMessage = "Open an image first (o)"

	case key.Matches(msg, keys.NewLayer):
		i := m.newLayer()
		m.successMessage = fmt.Sprintf("Layer %d created, t to trace a selection", i)
	case key.Matches(msg, keys.NextLayer):
		m.selectRelative(1)
	case key.Matches(msg, keys.PrevLayer):
		m.selectRelative(-1)
	case key.Matches(msg, keys.MoveUp):
		m.moveLayer(stack.Up)
	case key.Matches(msg, keys.MoveDown):
		m.moveLayer(stack.Down)
	case key.Matches(msg, keys.Duplicate):
		m.duplicateLayer()
	case key.Matches(msg, keys.Delete):
		if m.stack.CurrentLayer() == nil {
			m.errorMessage = "No layer selected"
			break
		}
		if !m.config.Confirmations {
			m.deleteLayer()
			break
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDeleteLayer

	case key.Matches(msg, keys.Trace):
		if m.stack.CurrentLayer() == nil {
			m.newLayer()
		}
		m.mode = ModeTrace
		m.trace = nil
		m.addTracePoint()
	case key.Matches(msg, keys.NextFilter):
		m.cycleFilter(true)
	case key.Matches(msg, keys.PrevFilter):
		m.cycleFilter(false)
	case key.Matches(msg, keys.NextField):
		m.stepField(1)
	case key.Matches(msg, keys.PrevField):
		m.stepField(-1)
	case key.Matches(msg, keys.Increase):
		m.stepConfig(1)
	case key.Matches(msg, keys.Decrease):
		m.stepConfig(-1)

	case key.Matches(msg, keys.Undo):
		m.undo()
	case key.Matches(msg, keys.Redo):
		m.redo()
	case key.Matches(msg, keys.Refresh):
		m.rerender()
		m.successMessage = "Re-rendered"

	case key.Matches(msg, keys.ExportPNG):
		m.exportPNG()
	case key.Matches(msg, keys.ExportGIF):
		return m, m.exportGIF()
	case key.Matches(msg, keys.ExportMap):
		m.exportLayerMap()
	}
	return m, nil
}

func (m *model) startOpen() tea.Cmd {
	m.mode = ModeFileInput
	m.input.Reset()
	m.input.Focus()
	return textinput.Blink
}

func (m *model) deleteLayer() {
	i := m.stack.Selected()
	if !m.stack.DeleteLayer(i) {
		return
	}
	m.configField = 0
	m.rerender()
	m.successMessage = fmt.Sprintf("Layer %d deleted", i)
}

func (m *model) moveLayer(dir stack.Direction) {
	to, ok := m.stack.MoveLayer(m.stack.Selected(), dir)
	if !ok {
		m.errorMessage = "Layer cannot move " + dir.String()
		return
	}
	m.rerender()
	m.successMessage = fmt.Sprintf("Layer moved to %d", to)
}

func (m *model) duplicateLayer() {
	j := m.stack.DuplicateLayer(m.stack.Selected())
	if j < 0 {
		m.errorMessage = "No layer selected"
		return
	}
	m.attachOverlay(j)
	m.configField = 0
	m.rerender()
	m.successMessage = fmt.Sprintf("Layer duplicated as %d", j)
}

func (m model) View() string {
	if m.help && m.mode != ModeStartup {
		return m.helpView()
	}
	if m.mode == ModeStartup {
		return m.startupView()
	}

	preview := strings.Join(m.renderPreview(), "\n")
	body := lipgloss.JoinHorizontal(lipgloss.Top, preview, m.renderPanel())
	return body + "\n" + m.statusLine()
}

func (m model) startupView() string {
	lines := []string{
		titleStyle.Render("bendor"),
		"glitch art for the terminal",
		"",
		"Open an image to start (png, jpeg, gif, bmp, webp).",
		"",
		m.input.View(),
		"",
	}
	if m.pendingPath != "" {
		lines = append(lines, dimStyle.Render("Loading "+m.pendingPath+"..."))
	}
	if m.errorMessage != "" {
		lines = append(lines, errorStyle.Render("ERROR: "+m.errorMessage))
	}
	lines = append(lines, dimStyle.Render("enter=open  esc=skip  ctrl+c=quit"))
	box := panelStyle.Width(60).Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m model) statusLine() string {
	var status string
	switch m.mode {
	case ModeTrace:
		status = fmt.Sprintf("Mode: TRACE | %d points | hjkl/arrows=extend, t=add point, Enter=close, Esc=cancel", len(m.trace))
	case ModeFileInput:
		status = "Mode: FILE | " + m.input.View() + " | Enter=open, Esc=cancel"
		if m.pendingPath != "" {
			status += " | loading..."
		}
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmDeleteLayer:
			message = fmt.Sprintf("Delete layer %d? (y/n)", m.stack.Selected())
		case ConfirmQuit:
			message = "Quit bendor? (y/n)"
		case ConfirmOpenImage:
			message = "Open another image? Current layers will be lost. (y/n)"
		}
		status = "Mode: CONFIRM | " + message
	default:
		status = fmt.Sprintf("Mode: %s | Cursor: (%d,%d)", m.modeString(), m.cursorX, m.cursorY)
		if m.exporting {
			status += " | exporting..."
		}
	}

	if m.successMessage != "" {
		status += " | " + successStyle.Render(m.successMessage)
	}
	if m.errorMessage != "" {
		status += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	} else if m.successMessage == "" && m.mode == ModeNormal {
		status += " | ? for help | q to quit"
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeStartup:
		return "STARTUP"
	case ModeNormal:
		return "NORMAL"
	case ModeTrace:
		return "TRACE"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func helpLines() []string {
	lines := []string{
		"bendor help",
		"===========",
		"",
		"Layers are applied top to bottom over the original image. A layer",
		"without a traced selection covers the whole image.",
		"",
	}
	for _, section := range keys.helpSections() {
		lines = append(lines, section.title+":", strings.Repeat("-", len(section.title)+1))
		for _, b := range section.bindings {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %-16s %s", h.Key, h.Desc))
		}
		lines = append(lines, "")
	}
	lines = append(lines,
		"Filters: None, As Sound, Fractal Pixel Sort, Brightness, Tint, Grayscale.",
		"As Sound and Fractal Pixel Sort are random; r renders a new variation.",
		"",
		"Settings live in ~/.bendorrc (savedirectory, confirmations, startmenu,",
		"maxdimension, frames, framerate, colorrange, quality, gifwidth,",
		"logfile, loglevel).",
		"",
		"Start with `bendor -` to read the image from standard input.",
	)
	return lines
}

func (m model) helpView() string {
	lines := helpLines()

	visibleHeight := max(1, m.height-1)
	startLine := m.helpScroll
	if startLine >= len(lines) {
		startLine = max(0, len(lines)-visibleHeight)
	}
	endLine := min(startLine+visibleHeight, len(lines))

	result := strings.Join(lines[startLine:endLine], "\n")
	result += "\n" + fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(lines))
	return result
}
