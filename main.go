package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zalando/go-keyring"
	"golang.org/x/term"

	"github.com/aschmelyun/tcaption/internal/config"
	"github.com/aschmelyun/tcaption/internal/format"
	"github.com/aschmelyun/tcaption/internal/logging"
	"github.com/aschmelyun/tcaption/internal/project"
	"github.com/aschmelyun/tcaption/internal/projectfile"
	"github.com/aschmelyun/tcaption/internal/transcribe"
	"github.com/aschmelyun/tcaption/internal/uistate"
)

const VERSION = "1.0.0"

const previewHeight = 5

func (i item) FilterValue() string { return i.caption.Text }

func (d itemDelegate) Height() int                             { return 2 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	marker := "○"
	if d.activeIndex != nil && d.activeIndex() == i.index {
		marker = "●"
	}

	timestampLine := TimestampStyle.Render(format.FormatTime(i.caption.Start) + " - " + format.FormatTime(i.caption.End))
	str := fmt.Sprintf("%s %s", marker, i.caption.Text)

	fn := ItemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return SelectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	} else if marker == "●" {
		fn = ActiveItemStyle.Render
	}

	fmt.Fprintf(w, "%s\n%s\n", timestampLine, fn(str))
}

func newCaptionList(ed *editor) list.Model {
	delegate := itemDelegate{activeIndex: func() int { return ed.active.Get().CaptionIndex }}
	l := list.New(captionItems(ed.projects.Get()), delegate, 64, 16)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("pgup/u", "prev page"))
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next page"))

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jump")),
			key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
			key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "preset")),
			key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),
		}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "seek")),
			key.NewBinding(key.WithKeys("*"), key.WithHelp("*", "keyword")),
			key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "emoji")),
			key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "edit text")),
			key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "highlight")),
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "word by word")),
			key.NewBinding(key.WithKeys("b", "d"), key.WithHelp("b/d", "add/remove b-roll")),
			key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "move b-roll")),
			key.NewBinding(key.WithKeys("-", "="), key.WithHelp("-/=", "b-roll length")),
			key.NewBinding(key.WithKeys("z", "Z"), key.WithHelp("z/Z", "add/remove zoom")),
			key.NewBinding(key.WithKeys(",", "."), key.WithHelp(",/.", "zoom scale")),
			key.NewBinding(key.WithKeys("f", "F", "m"), key.WithHelp("f/F/m", "add/remove/mute sound")),
			key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "sidebar tab")),
			key.NewBinding(key.WithKeys("tab", "v"), key.WithHelp("tab/v", "sidebar/preview")),
		}
	}
	return l
}

func (m model) Init() tea.Cmd {
	if m.loading {
		return tea.Batch(
			m.spinner.Tick,
			extractAudioCmd(m.ed),
			tickCmd(m.ed.cfg.Tick()),
		)
	}
	return tickCmd(m.ed.cfg.Tick())
}

// syncList rebuilds the caption list when the project snapshot changed.
func (m *model) syncList() {
	p := m.ed.projects.Get()
	if p == m.listSource {
		return
	}
	idx := m.list.Index()
	m.list.SetItems(captionItems(p))
	if p != nil && idx < len(p.Captions) {
		m.list.Select(idx)
	}
	m.listSource = p
}

func (m *model) status(s string) {
	m.statuses = append(m.statuses, s)
}

func (m model) startEdit(mode editMode) (model, tea.Cmd) {
	a := m.ed.active.Get()
	switch mode {
	case editEmoji:
		if a.Caption == nil || a.Word == nil {
			m.status("No word under the playhead.")
			return m, nil
		}
		m.editTarget, m.editWord = a.Caption.ID, a.WordIndex
		m.input.Placeholder = "emoji for \"" + a.Word.Text + "\" (empty clears)"
		m.input.SetValue("")
		if a.Word.Emoji != nil {
			m.input.SetValue(*a.Word.Emoji)
		}
	case editText:
		selected, ok := m.list.SelectedItem().(item)
		if !ok {
			return m, nil
		}
		m.editTarget = selected.caption.ID
		m.input.Placeholder = "caption text"
		m.input.SetValue(selected.caption.Text)
	}
	m.editing = mode
	return m, m.input.Focus()
}

func (m model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = editNone
		m.input.Blur()
		return m, nil
	case "enter":
		switch m.editing {
		case editEmoji:
			m.ed.setEmoji(m.editTarget, m.editWord, m.input.Value())
		case editText:
			m.ed.setCaptionText(m.editTarget, m.input.Value())
		}
		m.editing = editNone
		m.input.Blur()
		m.syncList()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ed := m.ed

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.list.SetSize(min(64, msg.Width), max(6, msg.Height-previewHeight-10))
		return m, nil

	case tea.KeyMsg:
		if m.editing != editNone {
			return m.updateEditing(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			if err := ed.save(); err != nil {
				m.status(err.Error())
			} else if ed.projects.Get() != nil {
				m.status("Saved project to " + ed.file.Path())
			}
			m.quitting = true
			return m, tea.Quit
		}

		if m.loading || ed.projects.Get() == nil {
			return m, nil
		}

		switch msg.String() {
		case " ":
			ed.player.TogglePlay()
		case "left":
			ed.seek(-seekStep)
		case "right":
			ed.seek(seekStep)
		case "enter":
			if selected, ok := m.list.SelectedItem().(item); ok {
				ed.ui.SelectCaption(selected.caption.ID)
				ed.player.SetCurrentTime(selected.caption.Start)
			}
		case "p":
			if selected, ok := m.list.SelectedItem().(item); ok {
				return m, previewCmd(ed, selected.caption.Start, selected.caption.End)
			}
		case "s":
			m.status("Applied preset " + ed.cyclePreset() + ".")
		case "*":
			if !ed.toggleKeyword() {
				m.status("No word under the playhead.")
			}
		case "e":
			return m.startEdit(editEmoji)
		case "t":
			return m.startEdit(editText)
		case "h":
			ed.toggleHighlight()
		case "r":
			ed.toggleWordByWord()
		case "b":
			ed.addBRoll()
		case "d":
			ed.removeBRoll()
		case "[":
			ed.nudgeBRoll(-brollNudge)
		case "]":
			ed.nudgeBRoll(brollNudge)
		case "-":
			ed.resizeBRoll(-brollNudge)
		case "=", "+":
			ed.resizeBRoll(brollNudge)
		case "z":
			ed.addZoom()
		case "Z":
			ed.removeLastZoom()
		case ",":
			ed.scaleLastZoom(-0.1)
		case ".":
			ed.scaleLastZoom(0.1)
		case "f":
			ed.addSound()
		case "F":
			ed.removeLastSound()
		case "m":
			ed.toggleLastSoundMute()
		case "1":
			ed.ui.SetActiveTab(uistate.TabCaptions)
		case "2":
			ed.ui.SetActiveTab(uistate.TabStyle)
		case "3":
			ed.ui.SetActiveTab(uistate.TabEffects)
		case "tab":
			ed.ui.ToggleSidebar()
		case "v":
			ed.ui.TogglePreview()
		case "w":
			return m, saveCmd(ed)
		case "x":
			if ed.ui.Get().IsExporting {
				return m, nil
			}
			ed.ui.SetExport(true, 0)
			m.status("Exporting video with ffmpeg...")
			return m, exportCmd(ed)
		default:
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		m.syncList()
		return m, nil

	case tickMsg:
		before := ed.active.Get().CaptionIndex
		ed.player.Advance(ed.cfg.Tick().Seconds())
		if after := ed.active.Get().CaptionIndex; ed.player.Get().IsPlaying && after >= 0 && after != before {
			m.list.Select(after)
		}
		return m, tickCmd(ed.cfg.Tick())

	case audioExtractedMsg:
		m.status("Audio extracted from ffmpeg.")
		m.loadingMsg = "Transcribing with OpenAI Whisper..."
		return m, transcribeAudioCmd(ed, msg.audioFile)

	case transcriptionDoneMsg:
		p := ed.newProjectFromTranscript(msg.response)
		ed.load(p)
		m.loading = false
		m.syncList()
		m.status(fmt.Sprintf("Transcription finished with %d captions.", len(p.Captions)))
		return m, saveCmd(ed)

	case savedMsg:
		m.status("Saved project to " + msg.path)
		return m, nil

	case exportDoneMsg:
		ed.ui.SetExport(false, 100)
		ed.log.WithField("output", msg.outputFile).Info("export finished")
		m.status("Exported video to " + msg.outputFile)
		return m, nil

	case exportErrorMsg:
		ed.log.WithError(msg.err).Error("export failed")
		ed.ui.SetExport(false, ed.ui.Get().ExportProgress)
		m.status(msg.err.Error())
		return m, nil

	case previewErrorMsg:
		ed.log.WithError(msg.err).Warn("preview failed")
		m.status(msg.err.Error())
		return m, nil

	case errorMsg:
		ed.log.WithError(msg.err).Error("editor error")
		m.status(msg.err.Error())
		if m.loading {
			m.loading = false
			m.errorMsg = msg.err.Error()
		}
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return styleOutput(m.statuses)
	}

	if m.errorMsg != "" {
		return styleOutput(m.statuses) + "\nPress 'q' to quit"
	} else if m.loading {
		loadingText := fmt.Sprintf("%s%s", m.spinner.View(), m.loadingMsg)
		if len(m.statuses) > 0 {
			return styleOutput(m.statuses) + loadingText
		}
		return loadingText
	}

	ed := m.ed
	p := ed.projects.Get()
	if p == nil {
		return styleOutput(m.statuses) + "No project loaded"
	}
	if len(p.Captions) == 0 {
		return styleOutput(m.statuses) + "No captions found"
	}

	state := ed.player.Get()
	ui := ed.ui.Get()
	width := m.width
	if width <= 0 {
		width = 80
	}

	icon := "⏸"
	if state.IsPlaying {
		icon = "▶"
	}
	header := fmt.Sprintf("  %s %s  %s / %s\n", TitleStyle.Render(p.Name), icon, format.FormatTime(state.CurrentTime), format.FormatDuration(state.Duration))

	var b strings.Builder
	b.WriteString(header)

	if ui.ShowPreview {
		caption := renderCaption(p.Style, ed.active.Get())
		box := lipgloss.Place(width-4, previewHeight, horizontalPosition(p.Style.Alignment), verticalPosition(p.Style.Position), caption)
		b.WriteString(PreviewStyle.Render(box) + "\n")
	}

	body := m.list.View()
	if ui.SidebarOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, SidebarStyle.Render(m.sidebar(p, ui)))
	}
	b.WriteString(body + "\n")

	if ui.IsExporting {
		b.WriteString(SpinnerStyle.Render(fmt.Sprintf("  Exporting... %.0f%%", ui.ExportProgress)) + "\n")
	}
	if m.editing != editNone {
		b.WriteString("  " + m.input.View() + "\n")
	}

	statuses := m.statuses
	if len(statuses) > 3 {
		statuses = statuses[len(statuses)-3:]
	}
	if len(statuses) > 0 {
		b.WriteString(styleOutput(statuses))
	}
	return b.String()
}

func (m model) sidebar(p *project.Project, ui uistate.State) string {
	row := func(label, value string) string {
		return LabelStyle.Render(label) + TextStyle.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(ui.ActiveTab) + "\n")

	switch ui.ActiveTab {
	case uistate.TabStyle:
		s := p.Style
		preset := "custom"
		for _, name := range project.PresetNames {
			if style, _ := project.PresetStyle(name); style == s {
				preset = name
			}
		}
		b.WriteString(row("preset", preset))
		b.WriteString(row("font", fmt.Sprintf("%s %s %gpx", s.FontFamily, s.FontWeight, s.FontSize)))
		b.WriteString(row("color", s.Color))
		b.WriteString(row("shadow", format.TextShadowCSS(s.TextShadow)))
		b.WriteString(row("animation", format.AnimationCSS(s.Animation)))
		b.WriteString(row("position", s.Position+" / "+s.Alignment))
		highlight := "off"
		if s.HighlightWords {
			highlight = "on " + s.HighlightColor
		}
		b.WriteString(row("highlight", highlight))
		b.WriteString(row("word/word", fmt.Sprintf("%t", s.WordByWord)))

	case uistate.TabEffects:
		b.WriteString(DimTextStyle.Render("b-roll") + "\n")
		for _, c := range p.BRollClips {
			b.WriteString(row(format.FormatTime(c.Start), fmt.Sprintf("+%.1fs %s", c.Duration, c.Keyword)))
		}
		b.WriteString(DimTextStyle.Render("zoom") + "\n")
		for _, e := range p.ZoomEffects {
			b.WriteString(row(format.FormatTime(e.Start), fmt.Sprintf("x%.1f", e.Params["scale"])))
		}
		b.WriteString(DimTextStyle.Render("sound") + "\n")
		for _, e := range p.SoundEffects {
			b.WriteString(row(format.FormatTime(e.Start), fmt.Sprintf("%v @%v", e.Params["name"], e.Params["volume"])))
		}

	default:
		a := m.ed.active.Get()
		if a.Caption == nil {
			b.WriteString(DimTextStyle.Render("no active caption") + "\n")
			break
		}
		for i, w := range a.Caption.Words {
			text := w.Text
			if w.Emoji != nil {
				text += " " + *w.Emoji
			}
			if w.IsKeyword {
				text += " *"
			}
			if i == ui.ActiveWordIndex {
				text = SelectedItemStyle.Render(text)
			}
			b.WriteString(row(format.FormatTime(w.Start), text))
		}
	}
	return b.String()
}

func main() {
	fmt.Println(BulletStyle.Render("┌") + TitleStyle.Render("tcaption"))

	var lang string
	var prompt string
	var preset string
	var configPath string
	var help bool
	var version bool

	flag.StringVar(&lang, "lang", "", "Language for transcription (e.g. en, es, fr)")
	flag.StringVar(&prompt, "prompt", "", "Optional prompt used to create a more accurate transcription")
	flag.StringVar(&preset, "preset", "", "Caption style preset for new projects")
	flag.StringVar(&configPath, "config", "", "Path to config.toml")
	flag.BoolVar(&help, "help", false, "Show usage info")
	flag.BoolVar(&version, "version", false, "Show version info")
	flag.Usage = func() {
		fmt.Println(BulletStyle.Render("├") + TextStyle.Render("Usage: tcaption [options] <input-file>"))
		fmt.Println(BulletStyle.Render("│"))
		fmt.Println(BulletStyle.Render("├") + TextStyle.Render("Options:"))
		fmt.Println(BulletStyle.Render("├────") + TextStyle.Render("--lang") + DimTextStyle.Render("    language for transcription (e.g. en, es, fr)"))
		fmt.Println(BulletStyle.Render("├────") + TextStyle.Render("--prompt") + DimTextStyle.Render("  optional prompt used to create a more accurate transcription"))
		fmt.Println(BulletStyle.Render("├────") + TextStyle.Render("--preset") + DimTextStyle.Render("  "+strings.Join(project.PresetNames, ", ")))
		fmt.Println(BulletStyle.Render("├────") + TextStyle.Render("--config") + DimTextStyle.Render("  path to config.toml"))
		fmt.Println(BulletStyle.Render("│"))
		fmt.Println(BulletStyle.Render("├") + TextStyle.Render("Requirements:"))

		dependencies := []string{"ffmpeg", "mpv"}
		for _, dependency := range dependencies {
			status := "✔ installed"
			if !checkDependency(dependency) {
				status = "✗ missing"
			}
			spaces := strings.Repeat(" ", 10-len(dependency))
			fmt.Println(BulletStyle.Render("├────") + TextStyle.Render(dependency) + DimTextStyle.Render(spaces+status))
		}

		fmt.Println(BulletStyle.Render("│"))
		fmt.Println(BulletStyle.Render("└") + TextStyle.Render("Supported formats:") + DimTextStyle.Render(" .mp4, .avi, .mov, .mkv, .m4v"))
	}

	flag.Parse()

	if help {
		flag.Usage()
		os.Exit(0)
	}

	if version {
		fmt.Println(BulletStyle.Render("└") + TextStyle.Render(VERSION))
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(0)
	}

	inputFile := args[0]
	if inputFile == "help" {
		flag.Usage()
		os.Exit(0)
	}

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		fmt.Printf(BulletStyle.Render("└")+TextStyle.Render("Error: file '%s' does not exist.")+"\n", inputFile)
		os.Exit(1)
	}

	validExtensions := []string{".mp4", ".avi", ".mov", ".mkv", ".m4v"}
	fileExt := strings.ToLower(filepath.Ext(inputFile))

	if !slices.Contains(validExtensions, fileExt) {
		fmt.Printf(BulletStyle.Render("└")+TextStyle.Render("Error: file '%s' is not a valid video file.")+"\n", inputFile)
		os.Exit(1)
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Println(BulletStyle.Render("└") + ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}

	cfg, _, err := config.Load(configPath)
	if err != nil {
		fmt.Println(BulletStyle.Render("└") + ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
	if lang != "" {
		cfg.Language = lang
	}
	if prompt != "" {
		cfg.Prompt = prompt
	}
	if preset != "" {
		if _, ok := project.Preset(preset); !ok {
			fmt.Printf(BulletStyle.Render("└")+TextStyle.Render("Error: unknown preset '%s'.")+"\n", preset)
			os.Exit(1)
		}
		cfg.DefaultPreset = preset
	}

	log, logCloser, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Println(BulletStyle.Render("└") + ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
	defer logCloser.Close()

	file, err := projectfile.Open(projectfile.ProjectPath(inputFile))
	if err != nil {
		if errors.Is(err, projectfile.ErrLocked) {
			fmt.Println(BulletStyle.Render("└") + TextStyle.Render("This video is already open in another tcaption session."))
		} else {
			fmt.Println(BulletStyle.Render("└") + ErrorStyle.Render(err.Error()))
		}
		os.Exit(1)
	}

	var apiKey string
	if !file.Exists() {
		apiKey, err = resolveAPIKey()
		if err != nil {
			fmt.Println(BulletStyle.Render("└") + ErrorStyle.Render(err.Error()))
			file.Close()
			os.Exit(1)
		}
	}

	ed := newEditor(cfg, log, file, transcribe.NewClient(cfg.OpenAIBaseURL, apiKey, cfg.TranscriptionModel), inputFile)
	defer ed.close()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	input := textinput.New()
	input.CharLimit = 200
	input.Width = 48

	initialModel := model{
		ed:         ed,
		spinner:    s,
		loading:    true,
		loadingMsg: "Extracting audio with ffmpeg...",
		input:      input,
	}

	if file.Exists() {
		p, err := file.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, BulletStyle.Render("└")+TextStyle.Render("There was a problem reading the existing project: %v")+"\n", err)
			ed.close()
			os.Exit(1)
		}
		ed.load(p)
		initialModel.loading = false
		initialModel.statuses = append(initialModel.statuses, "Project already exists locally")
	}

	initialModel.list = newCaptionList(ed)
	initialModel.listSource = ed.projects.Get()

	p := tea.NewProgram(
		initialModel,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		log.WithError(err).Error("program exited with error")
		fmt.Printf("Error running program: %v", err)
		return
	}
	if fm, ok := finalModel.(model); ok {
		fmt.Print(styleOutput(fm.statuses))
	}
}

// resolveAPIKey checks the environment, then the system keyring, then asks.
func resolveAPIKey() (string, error) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key, nil
	}

	username := getSystemUser()

	apiKey, err := keyring.Get("tcaption", username)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("error reading API key: %w", err)
	}
	if apiKey != "" {
		fmt.Println(BulletStyle.Render("├") + TextStyle.Render("API key set for this session."))
		return apiKey, nil
	}

	fmt.Print(BulletStyle.Render("├") + TextStyle.Render("OPENAI_API_KEY not found, enter one: "))

	byteApiKey, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("error reading API key: %w", err)
	}

	fmt.Println()
	apiKey = strings.TrimSpace(string(byteApiKey))

	if apiKey == "" {
		return "", fmt.Errorf("an OpenAI API key is required to transcribe a new video")
	}

	if err := keyring.Set("tcaption", username, apiKey); err != nil {
		return "", fmt.Errorf("error saving API key: %w", err)
	}

	fmt.Println(BulletStyle.Render("├") + TextStyle.Render("API key set for this session."))
	return apiKey, nil
}
