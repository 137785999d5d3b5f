package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sdahlbac/palettegen/clipboard"
	"github.com/sdahlbac/palettegen/codec"
	"github.com/sdahlbac/palettegen/colorspace"
	"github.com/sdahlbac/palettegen/export"
	"github.com/sdahlbac/palettegen/palette"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(Subtext0)
	promptStyle = lipgloss.NewStyle().Foreground(Text)
)

// Services are the collaborators the app delegates to. Nil fields get
// defaults.
type Services struct {
	Generator *palette.Generator
	Codec     *codec.Codec
	Copier    *clipboard.Copier
	Logger    *slog.Logger
}

// App represents the main application state
type App struct {
	state     AppState
	list      list.Model
	input     textinput.Model
	help      help.Model
	keys      keyMap
	status    statusModel
	palette   palette.Palette
	request   palette.Request
	format    export.Format
	largeText bool
	err       error
	pending   tea.Cmd

	gen    *palette.Generator
	codec  *codec.Codec
	copier *clipboard.Copier
	logger *slog.Logger
}

// CopiedMsg is sent when a clipboard write has been attempted
type CopiedMsg struct {
	Label string
	OK    bool
}

// NewApp creates a new application instance with a first palette
// generated from cfg.
func NewApp(cfg Config, svc Services) *App {
	if svc.Generator == nil {
		svc.Generator = palette.New()
	}
	if svc.Logger == nil {
		svc.Logger = slog.Default()
	}
	if svc.Codec == nil {
		svc.Codec = codec.New(svc.Logger)
	}
	if svc.Copier == nil {
		svc.Copier = clipboard.New(nil, svc.Logger)
	}

	app := &App{
		state:     StateBrowsing,
		keys:      newKeyMap(),
		help:      help.New(),
		request:   cfg.Request(),
		format:    cfg.Format(),
		largeText: cfg.LargeText,
		gen:       svc.Generator,
		codec:     svc.Codec,
		copier:    svc.Copier,
		logger:    svc.Logger,
	}

	app.initializeList()
	app.initializeInput()
	app.setPalette(app.gen.Generate(app.request))

	return app
}

// initializeList sets up the palette list
func (app *App) initializeList() {
	l := list.New([]list.Item{}, swatchDelegate{largeText: app.largeText}, 0, 0)
	l.Title = AppTitle
	l.KeyMap = listKeyMap()
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)

	l.Styles.Title = l.Styles.Title.
		Foreground(Text).
		Background(Mantle).
		BorderBottomBackground(ActiveBorder).
		Margin(0).
		Padding(1, 0, 0, 0)

	app.list = l
}

// initializeInput sets up the text input shared by the base and import
// prompts
func (app *App) initializeInput() {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.PromptStyle = ti.PromptStyle.Foreground(Rosewater)
	ti.Cursor.Style = ti.Cursor.Style.Foreground(Rosewater)
	ti.Width = 48
	app.input = ti
}

// Import replaces the palette with the one in a share code once the
// program starts.
func (app *App) Import(code string) {
	app.pending = app.importCode(code)
}

// Init implements tea.Model interface
func (app *App) Init() tea.Cmd {
	return app.pending
}

// Update implements tea.Model interface
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return app.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return app.handleWindowSizeMsg(msg)
	case CopiedMsg:
		return app, app.handleCopied(msg)
	case timer.TimeoutMsg:
		if app.status.owns(msg.ID) {
			app.status = statusModel{}
		}
		return app, nil
	case timer.TickMsg, timer.StartStopMsg:
		var cmd tea.Cmd
		app.status, cmd = app.status.Update(msg)
		return app, cmd
	}

	return app.updateSubComponents(msg)
}

// handleKeyMsg processes keyboard input
func (app *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return app, tea.Quit
	}

	switch app.state {
	case StateEditingBase, StateImporting:
		return app, app.handleInputKey(msg)
	case StateError:
		switch {
		case key.Matches(msg, app.keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, app.keys.Back, app.keys.Submit):
			app.err = nil
			app.state = StateBrowsing
		}
		return app, nil
	}

	return app, app.handleBrowsingKey(msg)
}

func (app *App) handleBrowsingKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, app.keys.Quit):
		return tea.Quit
	case key.Matches(msg, app.keys.Regenerate):
		return app.regenerate()
	case key.Matches(msg, app.keys.Lock):
		return app.toggleLock()
	case key.Matches(msg, app.keys.Strategy):
		return app.cycleStrategy()
	case key.Matches(msg, app.keys.Mood):
		return app.cycleMood()
	case key.Matches(msg, app.keys.Base):
		return app.startInput(StateEditingBase, app.request.Base, BasePlaceholder)
	case key.Matches(msg, app.keys.Import):
		return app.startInput(StateImporting, "", ImportPlaceholder)
	case key.Matches(msg, app.keys.Copy):
		return app.copySelected()
	case key.Matches(msg, app.keys.Share):
		return app.share()
	case key.Matches(msg, app.keys.Export):
		return app.exportPalette()
	case key.Matches(msg, app.keys.LargeText):
		return app.toggleLargeText()
	case key.Matches(msg, app.keys.Help):
		app.help.ShowAll = !app.help.ShowAll
		app.resizeList()
		return nil
	case key.Matches(msg, app.keys.Back):
		app.help.ShowAll = false
		app.resizeList()
		return nil
	}

	var cmd tea.Cmd
	app.list, cmd = app.list.Update(msg)
	return cmd
}

func (app *App) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, app.keys.Back):
		app.input.Blur()
		app.state = StateBrowsing
		return nil
	case key.Matches(msg, app.keys.Submit):
		value := app.input.Value()
		app.input.Blur()
		if app.state == StateEditingBase {
			return app.applyBase(value)
		}
		return app.importCode(value)
	}

	var cmd tea.Cmd
	app.input, cmd = app.input.Update(msg)
	return cmd
}

// handleWindowSizeMsg processes window resize events
func (app *App) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	width, height = msg.Width, msg.Height

	h, _ := docStyle.GetFrameSize()
	app.help.Width = msg.Width - h
	app.resizeList()

	return app, nil
}

// resizeList gives the list whatever height the document margins and the
// chrome below it leave free.
func (app *App) resizeList() {
	h, v := docStyle.GetFrameSize()
	chrome := lipgloss.Height(app.chromeView())
	app.list.SetSize(width-h, max(height-v-chrome, 0))
}

// handleCopied reports the outcome of a clipboard write
func (app *App) handleCopied(msg CopiedMsg) tea.Cmd {
	if !msg.OK {
		err := fmt.Errorf("%w: %s", ErrClipboard, msg.Label)
		if app.state != StateBrowsing {
			// Keep the prompt and whatever has been typed into it.
			app.logger.Warn("copy failed", "state", app.state, "err", err)
			return app.flash("Could not copy "+msg.Label, statusWarning)
		}
		return app.fail(err)
	}
	return app.flash("Copied "+msg.Label, statusSuccess)
}

// updateSubComponents updates child components
func (app *App) updateSubComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch app.state {
	case StateBrowsing:
		app.list, cmd = app.list.Update(msg)
	case StateEditingBase, StateImporting:
		app.input, cmd = app.input.Update(msg)
	}
	return app, cmd
}

// Palette actions

// setPalette replaces the palette and the list items, keeping the cursor
// within range.
func (app *App) setPalette(p palette.Palette) tea.Cmd {
	app.palette = p

	items := make([]list.Item, len(p))
	for i, e := range p {
		items[i] = entryItem{e}
	}
	cmd := app.list.SetItems(items)
	if app.list.Index() >= len(p) {
		app.list.Select(max(len(p)-1, 0))
	}
	return cmd
}

// selected returns the entry under the cursor
func (app *App) selected() (palette.Entry, bool) {
	i := app.list.Index()
	if i < 0 || i >= len(app.palette) {
		return palette.Entry{}, false
	}
	return app.palette[i], true
}

func (app *App) regenerate() tea.Cmd {
	app.logger.Debug("regenerating palette",
		"strategy", app.request.Strategy,
		"base", app.request.Base,
		"locked", app.palette.Locked())
	return app.setPalette(app.gen.Regenerate(app.palette, app.request))
}

func (app *App) toggleLock() tea.Cmd {
	i := app.list.Index()
	if i < 0 || i >= len(app.palette) {
		return nil
	}
	app.palette[i].Locked = !app.palette[i].Locked
	return app.list.SetItem(i, entryItem{app.palette[i]})
}

func (app *App) cycleStrategy() tea.Cmd {
	app.request.Strategy = next(palette.Strategies, app.request.Strategy)
	return tea.Batch(
		app.regenerate(),
		app.flash("Strategy: "+displayName(string(app.request.Strategy)), statusInfo),
	)
}

// cycleMood selects the next mood and switches to mood generation. The
// first press keeps the current mood.
func (app *App) cycleMood() tea.Cmd {
	if app.request.Strategy == palette.StrategyMood {
		app.request.Mood = next(palette.Moods, app.request.Mood)
	}
	app.request.Strategy = palette.StrategyMood
	return tea.Batch(
		app.regenerate(),
		app.flash("Mood: "+displayName(string(app.request.Mood)), statusInfo),
	)
}

func (app *App) toggleLargeText() tea.Cmd {
	app.largeText = !app.largeText
	app.list.SetDelegate(swatchDelegate{largeText: app.largeText})
	if app.largeText {
		return app.flash("Scoring for large text", statusInfo)
	}
	return app.flash("Scoring for normal text", statusInfo)
}

func (app *App) startInput(state AppState, value, placeholder string) tea.Cmd {
	app.state = state
	app.input.Reset()
	app.input.Placeholder = placeholder
	app.input.SetValue(value)
	app.input.CursorEnd()
	return app.input.Focus()
}

// applyBase sets the base colour. Strategies that ignore the base switch
// to analogous so the change is visible.
func (app *App) applyBase(value string) tea.Cmd {
	hex, ok := colorspace.Canonical(value)
	if !ok {
		return app.fail(fmt.Errorf("%w: %q", ErrInvalidBase, value))
	}

	app.state = StateBrowsing
	app.request.Base = hex
	if !app.request.Strategy.NeedsBase() {
		app.request.Strategy = palette.StrategyAnalogous
	}
	return tea.Batch(app.regenerate(), app.flash("Base colour "+hex, statusInfo))
}

// importCode replaces the palette with the colours of a share code
func (app *App) importCode(code string) tea.Cmd {
	hexes, ok := app.codec.Decode(code)
	if !ok {
		return app.fail(ErrInvalidShareCode)
	}
	p, invalid := app.gen.FromHexes(hexes)
	if len(p) == 0 {
		return app.fail(fmt.Errorf("%w: no valid colours in share code", ErrEmptyPalette))
	}
	if len(invalid) > 0 {
		app.logger.Warn("skipped invalid colours", "values", invalid)
	}

	app.state = StateBrowsing
	text, kind := fmt.Sprintf("Imported %d colours", len(p)), statusSuccess
	if len(invalid) > 0 {
		text += fmt.Sprintf(", skipped %d invalid", len(invalid))
		kind = statusWarning
	}
	return tea.Batch(app.setPalette(p), app.flash(text, kind))
}

func (app *App) copySelected() tea.Cmd {
	e, ok := app.selected()
	if !ok {
		return nil
	}
	return app.copyCmd(e.Hex, e.Hex)
}

func (app *App) share() tea.Cmd {
	if len(app.palette) == 0 {
		return app.fail(ErrEmptyPalette)
	}
	return app.copyCmd("share code", app.codec.Encode(app.palette))
}

func (app *App) exportPalette() tea.Cmd {
	if len(app.palette) == 0 {
		return app.fail(ErrEmptyPalette)
	}
	out, err := export.String(app.palette, app.format)
	if err != nil {
		return app.fail(err)
	}
	return app.copyCmd(string(app.format)+" export", out)
}

// copyCmd copies text off the update loop, reporting back with CopiedMsg
func (app *App) copyCmd(label, text string) tea.Cmd {
	copier := app.copier
	return func() tea.Msg {
		return CopiedMsg{Label: label, OK: copier.Copy(text)}
	}
}

func (app *App) flash(text string, kind statusKind) tea.Cmd {
	app.status = newStatusModel(text, kind)
	return app.status.Init()
}

func (app *App) fail(err error) tea.Cmd {
	app.logger.Warn("action failed", "state", app.state, "err", err)
	app.err = err
	app.state = StateError
	return nil
}

// next returns the element after cur, wrapping around. An unknown cur
// yields the first element.
func next[T comparable](all []T, cur T) T {
	i := slices.Index(all, cur)
	return all[(i+1)%len(all)]
}

func displayName(s string) string {
	return cases.Title(language.English).String(s)
}

// View implements tea.Model interface
func (app *App) View() string {
	switch app.state {
	case StateBrowsing:
		return app.browsingView()
	case StateEditingBase:
		return app.inputView("Base colour")
	case StateImporting:
		return app.inputView("Share code")
	case StateError:
		return app.errorView()
	default:
		return "Unknown state"
	}
}

// browsingView renders the palette screen
func (app *App) browsingView() string {
	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		app.list.View(),
		app.chromeView(),
	))
}

// chromeView renders everything drawn below the list
func (app *App) chromeView() string {
	var accents string
	if e, ok := app.selected(); ok {
		accents = accentsView(app.gen.Accents(e.Hex))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		app.headerView(),
		accents,
		app.status.View(),
		app.help.View(app.keys),
	)
}

// headerView describes the current request
func (app *App) headerView() string {
	r := app.request
	desc := displayName(string(r.Strategy))
	switch {
	case r.Strategy == palette.StrategyMood:
		desc += " · " + displayName(string(r.Mood))
	case r.Strategy.NeedsBase():
		desc += " · base " + r.Base
	}

	size := "normal text"
	if app.largeText {
		size = "large text"
	}
	return headerStyle.Render(fmt.Sprintf("%s · %d locked · %s", desc, app.palette.Locked(), size))
}

// inputView renders the base colour and share code prompts
func (app *App) inputView(label string) string {
	content := fmt.Sprintf(
		"%s\n\n%s\n\n↵ Press 'enter' to apply • ← Press 'esc' to cancel",
		label,
		app.input.View(),
	)
	return app.centeredView(promptStyle.Render(content), Text)
}

// errorView renders the error screen
func (app *App) errorView() string {
	if app.err == nil {
		return app.centeredView("", Error)
	}
	appErr := classifyError(app.err)
	content := fmt.Sprintf(
		"❌ %s\n\n💡 %s\n\n← Press 'esc' to go back • Press 'q' to quit",
		appErr.Err.Error(),
		appErr.Suggestion,
	)
	return app.centeredView(content, Error)
}

// centeredView creates a centered view with the given content and color
func (app *App) centeredView(content string, color lipgloss.Color) string {
	return lipgloss.NewStyle().
		Height(height).
		Width(width).
		Foreground(color).
		AlignVertical(lipgloss.Center).
		AlignHorizontal(lipgloss.Center).
		Render(content)
}
