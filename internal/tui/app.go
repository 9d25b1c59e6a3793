package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Chackochi310/News/internal/browser"
	"github.com/Chackochi310/News/internal/feed"
	"github.com/Chackochi310/News/internal/logger"
	"github.com/Chackochi310/News/internal/news"
	"github.com/Chackochi310/News/internal/pager"
)

const fetchTimeout = 30 * time.Second

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeHelp
)

type App struct {
	fetcher feed.Fetcher
	query   feed.Query
	log     logger.Logger
	open    func(string) error

	pager  *pager.Pager
	cursor int
	focus  focusPane
	mode   mode

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model

	// State
	loading       bool
	previewScroll int
	currentDate   string
	err           error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Fetcher  feed.Fetcher
	Query    feed.Query
	PageSize int
	Log      logger.Logger
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search here..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}

	return &App{
		fetcher:     opts.Fetcher,
		query:       opts.Query.Normalize(),
		log:         log,
		open:        browser.Open,
		pager:       pager.New(opts.PageSize),
		searchInput: ti,
		spinner:     sp,
		loading:     true,
		currentDate: time.Now().Format("Jan 2"),
	}
}

// Init issues the single fetch for this session.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.fetchCmd(), a.spinner.Tick)
}

func (a *App) fetchCmd() tea.Cmd {
	fetcher := a.fetcher
	q := a.query
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		articles, err := fetcher.Fetch(ctx, q)
		if err != nil {
			return fetchFailedMsg{err: err}
		}
		return articlesLoadedMsg{articles: articles}
	}
}

func (a *App) openCmd(url string) tea.Cmd {
	open := a.open
	return func() tea.Msg {
		if err := open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case articlesLoadedMsg:
		a.loading = false
		a.pager.SetArticles(msg.articles)
		a.resetCursor()
		a.log.Info("Articles loaded", logger.Int("count", len(msg.articles)))
		return a, nil

	case fetchFailedMsg:
		a.loading = false
		a.pager.SetArticles(nil)
		a.resetCursor()
		if errors.Is(msg.err, feed.ErrEmptyResult) {
			a.log.Warn("No articles found in the response", logger.String("query", a.query.Query))
		} else {
			a.log.Error("Error fetching the news", logger.Error(msg.err))
		}
		return a, nil

	case openErrMsg:
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) resetCursor() {
	a.cursor = 0
	a.previewScroll = 0
}

func (a *App) selected() *news.Article {
	page := a.pager.CurrentPage()
	if a.cursor < 0 || a.cursor >= len(page) {
		return nil
	}
	return &page[a.cursor]
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// Nothing is interactive until the fetch settles
	if a.loading {
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, nil
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	// Normal mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.focus == focusList && a.cursor < len(a.pager.CurrentPage())-1 {
			a.cursor++
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.previewScroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		} else if a.focus == focusPreview && a.previewScroll > 0 {
			a.previewScroll--
		}
		return a, nil
	case "n", "right", "l":
		if a.pager.NextPage() {
			a.resetCursor()
		}
		return a, nil
	case "p", "left", "h":
		if a.pager.PreviousPage() {
			a.resetCursor()
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
		return a, nil
	case "o", "enter":
		if art := a.selected(); art != nil {
			return a, a.openCmd(art.URL)
		}
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "esc":
		if a.pager.SearchTerm() != "" {
			a.setSearchTerm("")
		}
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.Blur()
		a.setSearchTerm("")
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// Only re-filter on actual value changes, not cursor moves etc.
	if v := a.searchInput.Value(); v != a.pager.SearchTerm() {
		a.pager.SetSearchTerm(v)
		a.resetCursor()
	}
	return a, cmd
}

func (a *App) setSearchTerm(term string) {
	a.searchInput.SetValue(term)
	a.pager.SetSearchTerm(term)
	a.resetCursor()
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  newsdesk")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	// Layout calculations
	headerHeight := 1
	searchHeight := 1
	paginationHeight := 1
	statusHeight := 1
	contentHeight := max(a.height-headerHeight-searchHeight-paginationHeight-statusHeight-4, 3) // borders

	listWidth := int(float64(a.width) * 0.4)
	previewWidth := a.width - listWidth - 1 // gap

	// Header
	headerLeft := headerStyle.Render("newsdesk")
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := max(a.width-lipgloss.Width(headerLeft)-lipgloss.Width(headerRight), 0)
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	search := searchHintStyle.Render("press / to search")
	if a.mode == modeSearch || a.pager.SearchTerm() != "" {
		search = a.searchInput.View()
	}

	var content, pagination string
	switch {
	case a.loading:
		content = lipgloss.Place(a.width, contentHeight+2, lipgloss.Center, lipgloss.Center,
			a.spinner.View()+" Loading news...")
	case a.pager.Empty():
		content = lipgloss.Place(a.width, contentHeight+2, lipgloss.Center, lipgloss.Center,
			emptyStyle.Render(emptyMessage(a.pager.SearchTerm())))
	default:
		content = a.renderPanes(listWidth, previewWidth, contentHeight)
		pagination = renderPagination(a.pager.PageIndex(), a.pager.TotalPages(), a.width)
	}

	status := renderStatusBar(
		len(a.pager.Filtered()),
		len(a.pager.Articles()),
		a.width,
		a.mode == modeSearch,
		a.loading,
	)
	if a.err != nil {
		status = errorStyle.Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, search, content, pagination, status)
}

func (a *App) renderPanes(listWidth, previewWidth, contentHeight int) string {
	innerListW := listWidth - 4 // border + padding
	listContent := renderList(a.pager.CurrentPage(), a.cursor, contentHeight, innerListW)

	listStyle := listPaneStyle
	previewStyle := previewPaneActiveStyle
	if a.focus == focusList {
		listStyle = listPaneActiveStyle
		previewStyle = previewPaneStyle
	}
	listPane := listStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)

	previewContent := renderPreview(a.selected(), previewWidth-4, contentHeight, a.previewScroll)
	previewPane := previewStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("newsdesk")
	dim := helpDimStyle

	help := title + dim.Render(" - Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓      Move within the page\n" +
		"  n/p, →/←      Next / previous page\n" +
		"  tab           Switch focus between list and preview\n\n" +
		dim.Render("Actions") + "\n" +
		"  o, enter      Open article in browser\n" +
		"  /             Search articles\n" +
		"  esc           Clear search\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c     Quit"

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

