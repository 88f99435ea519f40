// Package tui is the interactive terminal rendition of the add-product form.
package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/alimikegami/point-of-sales/product-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/product-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/product-admin/internal/form"
	"github.com/alimikegami/point-of-sales/product-admin/internal/infrastructure/imagefile"
	"github.com/alimikegami/point-of-sales/product-admin/internal/service"
	"github.com/alimikegami/point-of-sales/product-admin/pkg/errs"
)

var fieldOrder = []domain.Field{
	domain.FieldName,
	domain.FieldBrand,
	domain.FieldDescription,
	domain.FieldPrice,
	domain.FieldCategory,
	domain.FieldStockQuantity,
	domain.FieldReleaseDate,
	domain.FieldProductAvailable,
	domain.FieldImage,
}

var fieldLabels = map[domain.Field]string{
	domain.FieldName:             "Name",
	domain.FieldBrand:            "Brand",
	domain.FieldDescription:      "Description",
	domain.FieldPrice:            "Price",
	domain.FieldCategory:         "Category",
	domain.FieldStockQuantity:    "Stock",
	domain.FieldReleaseDate:      "Release date",
	domain.FieldProductAvailable: "Available",
	domain.FieldImage:            "Image",
}

var placeholders = map[domain.Field]string{
	domain.FieldName:          "Product name",
	domain.FieldBrand:         "Brand",
	domain.FieldDescription:   "Short description",
	domain.FieldPrice:         "0.00",
	domain.FieldStockQuantity: "0",
	domain.FieldReleaseDate:   "YYYY-MM-DD",
	domain.FieldImage:         "/path/to/image.png",
}

type Options struct {
	// FillFromGenerated keeps the form open after a generation and copies the result into it.
	FillFromGenerated bool
	LoadImage         func(path string) (*domain.ProductImage, error)
}

// Result is what the form ended with.
type Result struct {
	Route        string
	Notification *form.Notification
	Errors       domain.FieldErrors
	Generated    *dto.GeneratedProduct
	Canceled     bool
	Err          error
}

type submitDoneMsg struct{ err error }

type generateDoneMsg struct {
	product *dto.GeneratedProduct
	err     error
}

// inbox collects what the form reports while a command runs off the update loop.
type inbox struct {
	mu            sync.Mutex
	notifications []form.Notification
	routes        []string
}

func (i *inbox) Notify(n form.Notification) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.notifications = append(i.notifications, n)
}

func (i *inbox) Navigate(route string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.routes = append(i.routes, route)
}

func (i *inbox) drain() ([]form.Notification, []string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	n, r := i.notifications, i.routes
	i.notifications, i.routes = nil, nil
	return n, r
}

type Model struct {
	ctx   context.Context
	form  *form.Form
	inbox *inbox
	opts  Options

	inputs   map[domain.Field]textinput.Model
	prompt   textinput.Model
	focus    int
	category int

	busy       bool
	imageNote  string
	notice     *form.Notification
	statusLine string
	result     Result
	done       bool
}

func New(ctx context.Context, svc service.ProductService, opts Options) Model {
	if opts.LoadImage == nil {
		opts.LoadImage = imagefile.Load
	}

	box := &inbox{}
	m := Model{
		ctx:      ctx,
		form:     form.New(svc, box, box),
		inbox:    box,
		opts:     opts,
		inputs:   make(map[domain.Field]textinput.Model),
		category: -1,
	}

	for _, f := range fieldOrder {
		if !isTextField(f) {
			continue
		}
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 256
		in.Width = 48
		in.Placeholder = placeholders[f]
		m.inputs[f] = in
	}

	m.prompt = textinput.New()
	m.prompt.Prompt = ""
	m.prompt.CharLimit = 512
	m.prompt.Width = 56
	m.prompt.Placeholder = "Describe the product to generate"

	m.focusCurrent()
	return m
}

func isTextField(f domain.Field) bool {
	return f != domain.FieldCategory && f != domain.FieldProductAvailable
}

func (m Model) Result() Result { return m.result }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		return m.handleSubmitDone(msg)
	case generateDoneMsg:
		return m.handleGenerateDone(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.result.Canceled = true
			return m.finish()
		}
		if m.form.Snapshot().Modal != form.ModalClosed {
			return m.updateModal(msg)
		}
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := fieldOrder[m.focus]

	switch msg.String() {
	case "tab", "down":
		m.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "ctrl+g":
		m.form.OpenGenerator()
		m.blurAll()
		m.prompt.Focus()
		return m, textinput.Blink
	}

	switch field {
	case domain.FieldCategory:
		switch msg.String() {
		case "left", "h":
			m.cycleCategory(-1)
		case "right", "l", " ":
			m.cycleCategory(1)
		}
		return m, nil
	case domain.FieldProductAvailable:
		if msg.String() == " " || msg.String() == "enter" {
			m.form.SetAvailable(!m.form.Snapshot().Draft.ProductAvailable)
		}
		return m, nil
	case domain.FieldImage:
		if msg.String() == "enter" {
			m.loadImage()
			return m, nil
		}
	}

	in := m.inputs[field]
	var cmd tea.Cmd
	in, cmd = in.Update(msg)
	m.inputs[field] = in

	if field != domain.FieldImage {
		if err := m.form.SetField(field, in.Value()); err != nil {
			log.Error().Err(err).Str("component", "UpdateForm").Msg("")
		}
	}
	return m, cmd
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.form.Snapshot()

	switch msg.String() {
	case "esc":
		if m.form.CancelGenerator() {
			m.prompt.Blur()
			m.focusCurrent()
		}
		return m, nil
	case "enter":
		if state.Modal == form.ModalGenerating {
			return m, nil
		}
		return m, m.generateCmd()
	}

	if state.Modal == form.ModalGenerating {
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	m.form.SetPrompt(m.prompt.Value())
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.notice = nil

	f, ctx := m.form, m.ctx
	return m, func() tea.Msg {
		return submitDoneMsg{err: f.Submit(ctx)}
	}
}

func (m Model) generateCmd() tea.Cmd {
	f, ctx := m.form, m.ctx
	return func() tea.Msg {
		product, err := f.Generate(ctx)
		return generateDoneMsg{product: product, err: err}
	}
}

func (m Model) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	routes := m.collect()

	switch {
	case errors.Is(msg.err, errs.ErrInvalidForm), errors.Is(msg.err, errs.ErrSubmitInFlight):
		return m, nil
	case len(routes) == 0:
		return m, nil
	}

	m.result.Route = routes[len(routes)-1]
	m.result.Err = msg.err
	m.result.Errors = m.form.Snapshot().Errors
	return m.finish()
}

func (m Model) handleGenerateDone(msg generateDoneMsg) (tea.Model, tea.Cmd) {
	routes := m.collect()

	if msg.err != nil {
		if errors.Is(msg.err, errs.ErrEmptyPrompt) {
			m.statusLine = "Enter a prompt to generate a product"
		}
		return m, nil
	}

	m.result.Generated = msg.product
	m.prompt.SetValue("")
	m.prompt.Blur()

	if m.opts.FillFromGenerated {
		m.form.ApplyGenerated(msg.product)
		m.syncInputs()
		m.focusCurrent()
		m.statusLine = "Generated values copied into the form"
		return m, nil
	}

	if len(routes) > 0 {
		m.result.Route = routes[len(routes)-1]
	}
	return m.finish()
}

// collect drains the inbox and keeps the latest notification for display.
func (m *Model) collect() []string {
	notifications, routes := m.inbox.drain()
	if len(notifications) > 0 {
		n := notifications[len(notifications)-1]
		m.notice = &n
		m.result.Notification = &n
	}
	return routes
}

func (m Model) finish() (tea.Model, tea.Cmd) {
	m.done = true
	return m, tea.Quit
}

func (m *Model) loadImage() {
	path := m.inputs[domain.FieldImage].Value()
	if path == "" {
		m.form.SelectImage(nil)
		m.imageNote = ""
		return
	}

	image, err := m.opts.LoadImage(path)
	if err != nil {
		log.Error().Err(err).Str("component", "LoadImage").Msg("")
		m.imageNote = err.Error()
		return
	}

	m.imageNote = ""
	m.form.SelectImage(image)
}

func (m *Model) cycleCategory(step int) {
	n := len(domain.Categories)
	switch {
	case m.category < 0 && step > 0:
		m.category = 0
	case m.category < 0:
		m.category = n - 1
	default:
		m.category = (m.category + step + n) % n
	}
	if err := m.form.SetField(domain.FieldCategory, string(domain.Categories[m.category])); err != nil {
		log.Error().Err(err).Str("component", "CycleCategory").Msg("")
	}
}

func (m *Model) moveFocus(step int) {
	if fieldOrder[m.focus] == domain.FieldImage {
		m.loadImage()
	}
	m.blurAll()
	m.focus = (m.focus + step + len(fieldOrder)) % len(fieldOrder)
	m.focusCurrent()
}

func (m *Model) blurAll() {
	for f, in := range m.inputs {
		in.Blur()
		m.inputs[f] = in
	}
}

func (m *Model) focusCurrent() {
	f := fieldOrder[m.focus]
	if in, ok := m.inputs[f]; ok {
		in.Focus()
		m.inputs[f] = in
	}
}

// syncInputs copies the draft back into the text inputs after an external merge.
func (m *Model) syncInputs() {
	draft := m.form.Snapshot().Draft
	for f, in := range m.inputs {
		if f == domain.FieldImage {
			continue
		}
		in.SetValue(draft.Value(f))
		m.inputs[f] = in
	}

	m.category = -1
	for i, c := range domain.Categories {
		if string(c) == draft.Category {
			m.category = i
		}
	}
}

// Run shows the form until it is submitted, generated from or abandoned.
func Run(ctx context.Context, svc service.ProductService, opts Options) (Result, error) {
	final, err := tea.NewProgram(New(ctx, svc, opts), tea.WithContext(ctx)).Run()
	if err != nil {
		return Result{}, err
	}
	return final.(Model).Result(), nil
}
