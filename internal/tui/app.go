package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"shoutbox/internal/api"
	"shoutbox/internal/board"
	"shoutbox/internal/browser"
	"shoutbox/internal/history"
	"shoutbox/internal/update"
)

// searchDebounce is how long the search field stays quiet before its
// value is committed to the filter state.
const searchDebounce = 300 * time.Millisecond

// Client is the slice of the board API the interface needs. *api.Client
// satisfies it; tests swap in their own.
type Client interface {
	ListUsers(ctx context.Context) ([]string, error)
	ListSentences(ctx context.Context, f board.Filters) ([]board.Sentence, error)
	CreateSentence(ctx context.Context, d board.Draft) error
	DeleteSentence(ctx context.Context, id string) error
	LoginURL() string
}

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeFilter
	modeCompose
	modeConfirmDelete
	modeHelp
)

type App struct {
	client Client
	store  *history.Store
	log    zerolog.Logger

	// filters is the single source of truth for what the feed shows;
	// every fetch derives its query from it.
	filters   board.Filters
	sentences []board.Sentence
	users     []string
	seen      map[string]bool
	cursor    int
	mode      mode

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	textInput   textinput.Model
	nameInput   textinput.Model
	spinner     spinner.Model

	// Compose state
	composeFocus int
	catCursor    int
	submitting   bool

	// Delete state
	confirm  confirmModal
	deleting bool

	// Filter editor state
	filterRow int

	// Request ordering. Each fetch kind has a sequence counter and each
	// response echoes the number it was issued under; only the newest
	// is applied. searchGen plays the same role for debounce timers.
	sentenceSeq int
	userSeq     int
	searchGen   int

	loading     bool
	loadErr     error
	notice      notice
	streak      int
	currentDate string
	version     string
	newVersion  string
	timeout     time.Duration

	// openURL is swapped out in tests so no browser ever launches.
	openURL func(string) error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Client  Client
	Store   *history.Store
	Log     zerolog.Logger
	Name    string
	Streak  int
	Timeout time.Duration
	Version string
}

func NewApp(opts RunOpts) *App {
	si := textinput.New()
	si.Placeholder = "Search sentences..."
	si.Prompt = searchPromptStyle.Render("/ ")
	si.CharLimit = 100

	ti := textinput.New()
	ti.Placeholder = "What do you want to say?"
	ti.CharLimit = board.MaxTextLen

	ni := textinput.New()
	ni.Placeholder = "your name"
	ni.CharLimit = board.MaxNameLen
	ni.SetValue(opts.Name)

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &App{
		client:      opts.Client,
		store:       opts.Store,
		log:         opts.Log,
		filters:     board.DefaultFilters(),
		seen:        map[string]bool{},
		searchInput: si,
		textInput:   ti,
		nameInput:   ni,
		spinner:     sp,
		streak:      opts.Streak,
		currentDate: time.Now().Format("Jan 2"),
		version:     opts.Version,
		timeout:     timeout,
		openURL:     browser.Open,
	}
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.loadUsersCmd(), a.loadSentencesCmd(), a.spinner.Tick}
	if a.version != "" {
		cmds = append(cmds, checkUpdateCmd(a.version))
	}
	return tea.Batch(cmds...)
}

// loadSentencesCmd captures the current filters and a fresh sequence
// number into the closure. The response is applied only while that
// number is still the newest, so a slow reply cannot clobber a later
// request.
func (a *App) loadSentencesCmd() tea.Cmd {
	a.sentenceSeq++
	a.loading = true
	seq := a.sentenceSeq
	f := a.filters
	client := a.client
	timeout := a.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		sentences, err := client.ListSentences(ctx, f)
		if err != nil {
			return sentencesErrMsg{seq: seq, err: err}
		}
		return sentencesLoadedMsg{seq: seq, sentences: sentences}
	}
}

func (a *App) loadUsersCmd() tea.Cmd {
	a.userSeq++
	seq := a.userSeq
	client := a.client
	timeout := a.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		users, err := client.ListUsers(ctx)
		if err != nil {
			return usersErrMsg{seq: seq, err: err}
		}
		return usersLoadedMsg{seq: seq, users: users}
	}
}

// reloadAllCmd refreshes the user list and the feed together, which is
// what a successful create or delete calls for.
func (a *App) reloadAllCmd() tea.Cmd {
	return tea.Batch(a.loadUsersCmd(), a.loadSentencesCmd())
}

func (a *App) createCmd(d board.Draft) tea.Cmd {
	client := a.client
	timeout := a.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return createDoneMsg{err: client.CreateSentence(ctx, d)}
	}
}

func (a *App) deleteCmd(id string) tea.Cmd {
	client := a.client
	timeout := a.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return deleteDoneMsg{id: id, err: client.DeleteSentence(ctx, id)}
	}
}

// debounceCmd starts a fresh countdown for the current search text.
// Every keystroke bumps the generation, so when an old timer fires its
// tick no longer matches and falls through.
func (a *App) debounceCmd() tea.Cmd {
	a.searchGen++
	gen := a.searchGen
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchTickMsg{gen: gen}
	})
}

func (a *App) openLoginCmd() tea.Cmd {
	open := a.openURL
	loginURL := a.client.LoginURL()
	log := a.log
	return func() tea.Msg {
		if err := open(loginURL); err != nil {
			log.Error().Err(err).Str("url", loginURL).Msg("opening login page")
			return noticeMsg{level: noticeWarn, text: "log in at " + loginURL}
		}
		return nil
	}
}

func (a *App) markSeenCmd(ids []string) tea.Cmd {
	if a.store == nil || len(ids) == 0 {
		return nil
	}
	store := a.store
	log := a.log
	return func() tea.Msg {
		if err := store.MarkSeen(ids); err != nil {
			log.Warn().Err(err).Msg("marking sentences seen")
		}
		return nil
	}
}

func checkUpdateCmd(version string) tea.Cmd {
	return func() tea.Msg {
		res := update.Check(context.Background(), version)
		if res == nil {
			return nil
		}
		return updateAvailableMsg{version: res.LatestVersion}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		inner := composeBoxWidth(a.width) - 6
		a.textInput.Width = inner
		a.nameInput.Width = inner
		return a, nil

	case tea.KeyMsg:
		// Flash notices clear on any keypress
		a.notice = notice{}
		return a.handleKey(msg)

	case sentencesLoadedMsg:
		if msg.seq != a.sentenceSeq {
			return a, nil // a newer request superseded this one
		}
		a.loading = false
		a.loadErr = nil
		a.sentences = msg.sentences
		if a.cursor >= len(a.sentences) {
			a.cursor = max(0, len(a.sentences)-1)
		}
		return a, a.refreshSeen()

	case sentencesErrMsg:
		if msg.seq != a.sentenceSeq {
			return a, nil
		}
		a.loading = false
		a.loadErr = msg.err
		a.log.Error().Err(msg.err).Msg("loading sentences")
		return a, nil

	case usersLoadedMsg:
		if msg.seq != a.userSeq {
			return a, nil
		}
		a.users = msg.users
		return a, nil

	case usersErrMsg:
		if msg.seq != a.userSeq {
			return a, nil
		}
		// The user filter just keeps its current options
		a.log.Warn().Err(msg.err).Msg("loading user list")
		return a, nil

	case searchTickMsg:
		if msg.gen != a.searchGen {
			return a, nil // superseded by a newer keystroke
		}
		return a, a.commitSearch()

	case createDoneMsg:
		return a.handleCreateDone(msg)

	case deleteDoneMsg:
		return a.handleDeleteDone(msg)

	case noticeMsg:
		a.notice = notice{level: msg.level, text: msg.text}
		return a, nil

	case updateAvailableMsg:
		a.newVersion = msg.version
		return a, nil

	case spinner.TickMsg:
		if a.loading || a.submitting || a.deleting {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

// refreshSeen snapshots which of the freshly loaded sentences were
// already known, then records the rest in the background. Snapshot
// first, so the marker survives the write that retires it.
func (a *App) refreshSeen() tea.Cmd {
	if a.store == nil {
		return nil
	}
	ids := make([]string, len(a.sentences))
	for i, s := range a.sentences {
		ids[i] = s.ID
	}
	seen, err := a.store.SeenSet(ids)
	if err != nil {
		a.log.Warn().Err(err).Msg("querying seen sentences")
		return nil
	}
	a.seen = seen
	return a.markSeenCmd(ids)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeCompose:
		return a.handleComposeKey(msg)
	case modeConfirmDelete:
		return a.handleConfirmKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = modeBrowse
		}
		return a, nil
	}

	// Browse mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.cursor < len(a.sentences)-1 {
			a.cursor++
		}
		return a, nil
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "g", "home":
		a.cursor = 0
		return a, nil
	case "G", "end":
		a.cursor = max(0, len(a.sentences)-1)
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "f":
		a.mode = modeFilter
		return a, nil
	case "n":
		a.mode = modeCompose
		a.composeFocus = composeFocusText
		return a, a.focusComposeField()
	case "d":
		return a.startDelete()
	case "x":
		return a.clearFilters()
	case "r":
		return a, a.loadSentencesCmd()
	case "o":
		return a, a.openLoginCmd()
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeBrowse
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.searchGen++ // orphan any pending timer
		if a.filters.Search != "" {
			a.filters.Search = ""
			a.cursor = 0
			return a, a.loadSentencesCmd()
		}
		return a, nil
	case "enter":
		a.mode = modeBrowse
		a.searchInput.Blur()
		a.searchGen++ // commit now; the pending timer loses
		return a, a.commitSearch()
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	if a.searchInput.Value() == before {
		// Cursor movement and the like, no new countdown
		return a, cmd
	}
	return a, tea.Batch(cmd, a.debounceCmd())
}

// commitSearch applies the search field to the filter state and
// re-fetches, unless nothing actually changed.
func (a *App) commitSearch() tea.Cmd {
	term := a.searchInput.Value()
	if a.filters.Search == term {
		return nil
	}
	a.filters.Search = term
	a.cursor = 0
	return a.loadSentencesCmd()
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f", "enter":
		a.mode = modeBrowse
		return a, nil
	case "up", "k":
		if a.filterRow > 0 {
			a.filterRow--
		}
		return a, nil
	case "down", "j", "tab":
		if a.filterRow < filterRowCount-1 {
			a.filterRow++
		}
		return a, nil
	case "left", "h":
		return a, a.cycleFilter(-1)
	case "right", "l", " ":
		return a, a.cycleFilter(1)
	case "x":
		return a.clearFilters()
	}
	return a, nil
}

// cycleFilter merges the next value for the active row into the filter
// state and re-fetches. Values come from the row's own option list, so
// there is nothing further to validate.
func (a *App) cycleFilter(delta int) tea.Cmd {
	opts := filterOptions(a.filterRow, a.users)
	cur := a.filterValue(a.filterRow)
	next := cycleOption(opts, cur, delta)
	if next == cur {
		return nil
	}
	a.setFilterValue(a.filterRow, next)
	a.cursor = 0
	return a.loadSentencesCmd()
}

func (a *App) filterValue(row int) string {
	switch row {
	case filterRowCategory:
		return string(a.filters.Category)
	case filterRowUser:
		return a.filters.User
	default:
		return string(a.filters.Sort)
	}
}

func (a *App) setFilterValue(row int, v string) {
	switch row {
	case filterRowCategory:
		a.filters.Category = board.Category(v)
	case filterRowUser:
		a.filters.User = v
	default:
		a.filters.Sort = board.SortOrder(v)
	}
}

// clearFilters resets every filter to its default, empties the search
// field and re-fetches.
func (a *App) clearFilters() (tea.Model, tea.Cmd) {
	a.filters = board.DefaultFilters()
	a.searchInput.SetValue("")
	a.searchGen++ // orphan any pending timer
	a.filterRow = 0
	a.cursor = 0
	return a, a.loadSentencesCmd()
}

func (a *App) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.submitting {
		// One create at a time; the form unlocks when it resolves
		return a, nil
	}

	switch msg.String() {
	case "esc":
		a.mode = modeBrowse
		a.blurCompose()
		return a, nil
	case "tab", "down":
		a.composeFocus = (a.composeFocus + 1) % composeFieldCount
		return a, a.focusComposeField()
	case "shift+tab", "up":
		a.composeFocus = (a.composeFocus + composeFieldCount - 1) % composeFieldCount
		return a, a.focusComposeField()
	case "enter":
		return a.submitSentence()
	}

	switch a.composeFocus {
	case composeFocusText:
		var cmd tea.Cmd
		a.textInput, cmd = a.textInput.Update(msg)
		return a, cmd
	case composeFocusName:
		var cmd tea.Cmd
		a.nameInput, cmd = a.nameInput.Update(msg)
		return a, cmd
	default:
		n := len(board.Categories())
		switch msg.String() {
		case "left", "h":
			a.catCursor = (a.catCursor + n - 1) % n
		case "right", "l", " ":
			a.catCursor = (a.catCursor + 1) % n
		}
		return a, nil
	}
}

func (a *App) focusComposeField() tea.Cmd {
	a.textInput.Blur()
	a.nameInput.Blur()
	switch a.composeFocus {
	case composeFocusText:
		a.textInput.Focus()
		return textinput.Blink
	case composeFocusName:
		a.nameInput.Focus()
		return textinput.Blink
	}
	return nil
}

func (a *App) blurCompose() {
	a.textInput.Blur()
	a.nameInput.Blur()
}

// submitSentence validates locally first; a draft that fails never
// touches the network. While a create is in flight the form is locked,
// so mashing enter cannot double-post.
func (a *App) submitSentence() (tea.Model, tea.Cmd) {
	draft := board.Draft{
		Text:     a.textInput.Value(),
		Name:     a.nameInput.Value(),
		Category: board.Categories()[a.catCursor],
	}.Trimmed()

	if err := draft.Validate(); err != nil {
		a.notice = notice{level: noticeWarn, text: err.Error()}
		return a, nil
	}

	a.submitting = true
	return a, tea.Batch(a.createCmd(draft), a.spinner.Tick)
}

func (a *App) handleCreateDone(msg createDoneMsg) (tea.Model, tea.Cmd) {
	a.submitting = false // the form unlocks no matter what came back

	if msg.err == nil {
		a.textInput.SetValue("")
		a.catCursor = 0 // back to thoughts
		a.mode = modeBrowse
		a.blurCompose()
		a.notice = notice{level: noticeInfo, text: "posted"}
		a.log.Info().Msg("sentence posted")
		return a, a.reloadAllCmd()
	}

	a.log.Error().Err(msg.err).Msg("posting sentence")
	a.notice = notice{level: noticeError, text: api.Message(msg.err)}
	if errors.Is(msg.err, api.ErrAuthRequired) {
		return a, a.openLoginCmd()
	}
	return a, nil
}

func (a *App) handleDeleteDone(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	a.deleting = false

	switch {
	case msg.err == nil:
		a.notice = notice{level: noticeInfo, text: "sentence deleted"}
		a.log.Info().Str("id", msg.id).Msg("sentence deleted")
		return a, a.reloadAllCmd()
	case errors.Is(msg.err, api.ErrForbidden):
		// Stay put: no reload, no navigation, the list is unchanged
		a.notice = notice{level: noticeError, text: api.Message(msg.err)}
		return a, nil
	case errors.Is(msg.err, api.ErrAuthRequired):
		a.notice = notice{level: noticeError, text: api.Message(msg.err)}
		return a, a.openLoginCmd()
	}

	a.log.Error().Err(msg.err).Str("id", msg.id).Msg("deleting sentence")
	a.notice = notice{level: noticeError, text: api.Message(msg.err)}
	return a, nil
}

func (a *App) startDelete() (tea.Model, tea.Cmd) {
	if a.deleting || len(a.sentences) == 0 || a.cursor >= len(a.sentences) {
		return a, nil
	}
	s := a.sentences[a.cursor]
	if !a.owns(s) {
		a.notice = notice{level: noticeWarn, text: "only the author can delete a sentence"}
		return a, nil
	}
	a.confirm = newConfirmModal(s)
	a.mode = modeConfirmDelete
	return a, nil
}

// owns is a display convenience only: it compares the sentence author
// with whatever the name field holds right now. The server stays the
// authority and answers 403 when they disagree.
func (a *App) owns(s board.Sentence) bool {
	return s.Name != "" && s.Name == strings.TrimSpace(a.nameInput.Value())
}

func (a *App) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "n":
		a.mode = modeBrowse
		return a, nil
	case "left", "right", "h", "l", "tab":
		a.confirm.ToggleSelection()
		return a, nil
	case "enter":
		a.mode = modeBrowse
		if !a.confirm.ConfirmSelected() {
			return a, nil
		}
		a.deleting = true
		return a, tea.Batch(a.deleteCmd(a.confirm.id), a.spinner.Tick)
	case "y":
		a.mode = modeBrowse
		a.deleting = true
		return a, tea.Batch(a.deleteCmd(a.confirm.id), a.spinner.Tick)
	}
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  shoutbox")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	if a.mode == modeConfirmDelete {
		return a.confirm.render(a.width, a.height)
	}

	// Layout calculations
	headerHeight := 1
	barHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - barHeight - statusHeight - 4 // borders

	listWidth := int(float64(a.width) * 0.45)
	detailWidth := a.width - listWidth - 1 // gap

	if contentHeight < 3 {
		contentHeight = 3
	}

	// Header
	headerLeft := headerStyle.Render("shoutbox")
	rightText := a.currentDate
	if a.newVersion != "" {
		rightText = "v" + a.newVersion + " available · " + rightText
	}
	headerRight := headerDateStyle.Render(rightText)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// Bar slot: category tabs, or the search field, or the filter editor
	bar := renderCategoryTabs(a.filters.Category, a.width)
	switch a.mode {
	case modeSearch:
		bar = a.searchInput.View()
	case modeFilter:
		bar = renderFilterEditor(a.filterRow, a.filterValue(a.filterRow), a.users, a.width)
	}

	var content string
	if a.mode == modeCompose {
		content = a.renderCompose(a.width, contentHeight+2)
	} else {
		// List pane
		innerListW := listWidth - 4 // border + padding
		var listContent string
		if a.loadErr != nil {
			listContent = renderLoadError(a.loadErr, innerListW, contentHeight)
		} else {
			listContent = renderList(a.sentences, a.cursor, a.seen, a.owns, contentHeight, innerListW)
		}
		listPane := listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)

		// Detail pane
		var selected *board.Sentence
		if a.loadErr == nil && len(a.sentences) > 0 && a.cursor < len(a.sentences) {
			selected = &a.sentences[a.cursor]
		}
		innerDetailW := detailWidth - 4
		var owned bool
		if selected != nil {
			owned = a.owns(*selected)
		}
		detailContent := renderDetail(selected, owned, innerDetailW, contentHeight)
		detailPane := detailPaneStyle.Width(detailWidth - 2).Height(contentHeight).Render(detailContent)

		content = lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
	}

	// Status bar, or the notice that takes its place
	status := renderStatusBar(
		len(a.sentences),
		a.filters.Summary(),
		a.streak,
		a.width,
		a.mode,
		a.loading || a.submitting || a.deleting,
		a.spinner.View(),
	)
	if a.notice.text != "" {
		status = renderNotice(a.notice, a.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, bar, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("shoutbox")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Move through the feed\n" +
		"  g/G           Jump to top/bottom\n\n" +
		dim.Render("Actions") + "\n" +
		"  n             Post a new sentence\n" +
		"  d             Delete the selected sentence (yours only)\n" +
		"  r             Reload the feed\n" +
		"  o             Open the login page\n" +
		"  /             Search sentences\n" +
		"  f             Edit filters\n" +
		"  x             Clear all filters\n\n" +
		dim.Render("Filter Mode") + "\n" +
		"  ↑/↓, j/k     Move between rows\n" +
		"  ←/→, h/l     Change the value\n" +
		"  esc, f        Exit filter mode\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
