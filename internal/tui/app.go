package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwatts/fieldset/core"
	"github.com/mwatts/fieldset/core/widgets"
	"github.com/mwatts/fieldset/internal/config"
)

// field is one stop on the focus ring: a pane wrapping a single widget.
type field struct {
	id      string
	scope   string
	jumpKey byte
}

func (f field) ID() string    { return f.id }
func (f field) Scope() string { return f.scope }
func (f field) JumpKey() byte { return f.jumpKey }

// App is the demo form. It hosts three fields on a focus ring:
//
//   - a controlled plan group, whose chosen key lives in app state and is
//     pushed back into the widget on every change notification
//   - an uncontrolled notifications checkbox, indeterminate on startup
//   - an uncontrolled horizontal density group with a default selection
//
// Key events are resolved against the focused field's scope only.
type App struct {
	width  int
	height int

	keys *core.KeyRegistry
	ring core.FocusRing

	plan      *core.ChoiceGroup
	planValue string
	notify    *core.Checkbox
	density   *core.ChoiceGroup

	status   string
	quitting bool
}

func New(cfg config.Config) App {
	glyphs := core.GlyphsUnicode
	if cfg.UI.ASCIIGlyphs {
		glyphs = core.GlyphsASCII
	}
	plan := core.NewControlledChoiceGroup("plan", []core.Option{
		{Key: "starter", Label: "Starter", Description: "one project, community support"},
		{Key: "standard", Label: "Standard", Description: "ten projects, email support"},
		{Key: "enterprise", Label: "Enterprise", Description: "contact sales", Disabled: true},
	}, "starter")
	plan.SetVariant(core.Variant{Intent: core.IntentPrimary})
	plan.SetGlyphs(glyphs)
	if cfg.Orientation() == "horizontal" {
		plan.SetOrientation(core.OrientationHorizontal)
	}

	notify := core.NewCheckbox("notify", "Email me about account activity", false)
	notify.SetIndeterminate(true)
	notify.SetGlyphs(glyphs)

	density := core.NewChoiceGroup("density", []core.Option{
		{Key: "compact", Label: "Compact"},
		{Key: "cozy", Label: "Cozy"},
		{Key: "comfortable", Label: "Comfortable"},
	}, "cozy")
	density.SetOrientation(core.OrientationHorizontal)
	density.SetGlyphs(glyphs)

	ring := core.NewFocusRing(
		field{id: "plan", scope: core.ScopeChoice, jumpKey: 'p'},
		field{id: "notify", scope: core.ScopeCheckbox, jumpKey: 'n'},
		field{id: "density", scope: core.ScopeChoice, jumpKey: 'd'},
	)

	return App{
		width:     80,
		height:    24,
		keys:      core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys)),
		ring:      ring,
		plan:      plan,
		planValue: "starter",
		notify:    notify,
		density:   density,
	}
}

func (m App) Init() tea.Cmd {
	return nil
}

// ActiveScope is the scope key events are currently resolved against.
func (m App) ActiveScope() string {
	return m.ring.Scope()
}

// PlanValue is the app-owned selection backing the controlled plan group.
func (m App) PlanValue() string {
	return m.planValue
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := m.ring.Scope()
	switch m.keys.ActionFor(msg, scope) {
	case "quit":
		m.quitting = true
		return m, tea.Quit
	case "focus-next":
		m.ring.Next()
		m.status = ""
		return m, nil
	case "focus-prev":
		m.ring.Prev()
		m.status = ""
		return m, nil
	case "choice-next", "choice-prev":
		m.routeToChoice(msg.String())
		return m, nil
	case "toggle":
		res := m.notify.HandleKey(msg.String())
		if res.Action == core.CheckActionToggled {
			m.status = fmt.Sprintf("Notifications: %s", m.notify.AccessibleState())
		}
		return m, nil
	case "mixed":
		m.notify.SetIndeterminate(!m.notify.Indeterminate())
		m.status = fmt.Sprintf("Notifications: %s", m.notify.AccessibleState())
		return m, nil
	}

	// unbound single letters fall through to pane jumps
	if key := msg.String(); len(key) == 1 {
		if m.ring.JumpTo(key[0]) {
			m.status = ""
		}
	}
	return m, nil
}

// routeToChoice delivers an arrow key to whichever choice group holds focus.
// The controlled plan group does not move its own selection; the app applies
// the notified value through SetValue.
func (m *App) routeToChoice(keyName string) {
	focused := m.ring.Focused()
	if focused == nil {
		return
	}
	switch focused.ID() {
	case "plan":
		res := m.plan.HandleKey(keyName)
		switch res.Action {
		case core.ChoiceActionSelected:
			m.planValue = res.Key
			m.plan.SetValue(res.Key)
			m.status = fmt.Sprintf("Plan: %s", res.Key)
		case core.ChoiceActionMoved:
			m.status = fmt.Sprintf("Plan: %s is unavailable", res.Key)
		}
	case "density":
		res := m.density.HandleKey(keyName)
		if res.Action == core.ChoiceActionSelected {
			m.status = fmt.Sprintf("Density: %s", res.Key)
		}
	}
}

func (m App) View() string {
	if m.quitting {
		return ""
	}
	width := max(20, m.width)

	sections := []string{renderHeader(width, "fieldset")}
	focusedID := ""
	if f := m.ring.Focused(); f != nil {
		focusedID = f.ID()
	}

	planContent := m.plan.View(focusedID == "plan") +
		"\n\n  Selected: " + m.planValue
	sections = append(sections, widgets.Pane{
		Title:   "Plan",
		JumpKey: 'p',
		Height:  8,
		Content: planContent,
		Focused: focusedID == "plan",
	}.Render(width, m.height))

	notifyContent := m.notify.View(focusedID == "notify") +
		"\n  checked: " + m.notify.AccessibleState()
	sections = append(sections, widgets.Pane{
		Title:   "Notifications",
		JumpKey: 'n',
		Height:  4,
		Content: notifyContent,
		Focused: focusedID == "notify",
	}.Render(width, m.height))

	sections = append(sections, widgets.Pane{
		Title:   "Density",
		JumpKey: 'd',
		Height:  3,
		Content: m.density.View(focusedID == "density"),
		Focused: focusedID == "density",
	}.Render(width, m.height))

	sections = append(sections, renderStatusBar(width, m.status))
	sections = append(sections, renderFooter(width, m.keys.BindingsForScope(m.ring.Scope())))

	body := strings.Join(sections, "\n")
	if m.height > 0 {
		body = fitHeight(body, m.height)
	}
	return appStyle.Render(body)
}
