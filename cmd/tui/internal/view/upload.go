package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/leasedesk/internal/api"
	"github.com/MrJamesThe3rd/leasedesk/internal/contract"
)

// Extractor reads a candidate contract from a document.
type Extractor interface {
	Extract(ctx context.Context, filename string, r io.Reader) (*api.Extraction, error)
}

type uploadState int

const (
	uploadStateClosed uploadState = iota
	uploadStateOpen
	uploadStateExtracting
	uploadStateExtracted
	uploadStateSubmitting
)

// contractCreatedMsg is sent by every contract dialog after a create succeeds.
type contractCreatedMsg struct {
	id string
}

func contractCreated(id string) tea.Msg {
	return contractCreatedMsg{id: id}
}

// UploadModel is the dialog that turns a document into a prefilled contract
// form: pick a file, analyze it, review the candidate, save.
type UploadModel struct {
	extractor Extractor
	svc       *contract.Service

	state      uploadState
	gen        int64
	picker     filepicker.Model
	spinner    spinner.Model
	file       string
	extraction *api.Extraction
	form       ContractFormModel
	err        string
}

func NewUploadModel(extractor Extractor, svc *contract.Service) UploadModel {
	return UploadModel{
		extractor: extractor,
		svc:       svc,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func newPicker() filepicker.Model {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AllowedTypes = api.AllowedExtensions
	fp.SetHeight(12)

	return fp
}

func (m UploadModel) IsOpen() bool { return m.state != uploadStateClosed }

// Open resets the dialog. Results of anything started before are ignored.
func (m UploadModel) Open() (UploadModel, tea.Cmd) {
	m.state = uploadStateOpen
	m.gen = nextGeneration()
	m.picker = newPicker()
	m.file = ""
	m.extraction = nil
	m.err = ""

	return m, m.picker.Init()
}

func (m UploadModel) Close() UploadModel {
	m.state = uploadStateClosed
	m.gen = nextGeneration()
	m.file = ""
	m.err = ""
	m.extraction = nil
	m.form = ContractFormModel{}

	return m
}

// SelectFile records the document to analyze. Types the extraction pipeline
// cannot read are refused here, before any request.
func (m UploadModel) SelectFile(path string) UploadModel {
	if !api.Allowed(path) {
		m.file = ""
		m.err = fmt.Sprintf("Unsupported file type. Use %s.", strings.Join(api.AllowedExtensions, ", "))

		return m
	}

	m.file = path
	m.err = ""

	return m
}

// Analyze sends the selected file for extraction.
func (m UploadModel) Analyze() (UploadModel, tea.Cmd) {
	if m.file == "" {
		m.err = "Select a file first."
		return m, nil
	}

	m.state = uploadStateExtracting
	m.gen = nextGeneration()
	m.err = ""

	return m, tea.Batch(m.spinner.Tick, m.extractCmd())
}

func (m UploadModel) Update(msg tea.Msg) (UploadModel, tea.Cmd) {
	if m.state == uploadStateClosed {
		return m, nil
	}

	switch msg := msg.(type) {
	case extractedMsg:
		if msg.gen != m.gen || m.state != uploadStateExtracting {
			return m, nil
		}

		if msg.err != nil {
			m.state = uploadStateOpen
			m.err = api.Message(msg.err, "Could not analyze the document.")

			return m, nil
		}

		m.state = uploadStateExtracted
		m.extraction = msg.extraction
		m.form = NewContractFormModel(m.svc, msg.extraction.Contract.CreateParams(), contractCreated)

		return m, m.form.Init()

	case spinner.TickMsg:
		if m.state != uploadStateExtracting && m.state != uploadStateSubmitting {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.Close(), nil
		}
	}

	switch m.state {
	case uploadStateOpen:
		return m.updatePicker(msg)
	case uploadStateExtracted, uploadStateSubmitting:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m UploadModel) updatePicker(msg tea.Msg) (UploadModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "a" {
		return m.Analyze()
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m = m.SelectFile(path)
	}

	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m = m.SelectFile(path)
	}

	return m, cmd
}

func (m UploadModel) updateForm(msg tea.Msg) (UploadModel, tea.Cmd) {
	wasSubmitting := m.form.Submitting()

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	if m.form.Submitting() {
		m.state = uploadStateSubmitting
		if !wasSubmitting {
			cmd = tea.Batch(cmd, m.spinner.Tick)
		}
	} else {
		m.state = uploadStateExtracted
	}

	return m, cmd
}

func (m UploadModel) ShortHelp() string {
	switch m.state {
	case uploadStateOpen:
		return "Enter: select | a: analyze | Esc: cancel"
	case uploadStateExtracted:
		return "Review the fields | Enter: next | Esc: cancel"
	}

	return "Esc: cancel"
}

func (m UploadModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Upload contract"))
	b.WriteString("\n")

	switch m.state {
	case uploadStateOpen:
		b.WriteString(m.picker.View())
		b.WriteString("\n")

		if m.file != "" {
			b.WriteString("Selected: " + activeStyle(filepath.Base(m.file)) + "\n")
		}
	case uploadStateExtracting:
		fmt.Fprintf(&b, "%s Analyzing %s...\n", m.spinner.View(), filepath.Base(m.file))
	case uploadStateExtracted, uploadStateSubmitting:
		if m.extraction != nil && m.extraction.TextPreview != "" {
			preview := m.extraction.TextPreview
			if len([]rune(preview)) > 200 {
				preview = string([]rune(preview)[:200]) + "..."
			}

			b.WriteString(faintStyle.Render(preview))
			b.WriteString("\n\n")
		}

		if m.state == uploadStateSubmitting {
			b.WriteString(m.spinner.View() + " ")
		}

		b.WriteString(m.form.View())
		b.WriteString("\n")
	}

	if m.err != "" {
		b.WriteString("\n" + errorStyle.Render(m.err) + "\n")
	}

	b.WriteString("\n" + faintStyle.Render(m.ShortHelp()))

	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(60).
		Render(b.String())
}

type extractedMsg struct {
	gen        int64
	extraction *api.Extraction
	err        error
}

func (m UploadModel) extractCmd() tea.Cmd {
	gen, path, extractor := m.gen, m.file, m.extractor

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return extractedMsg{gen: gen, err: fmt.Errorf("opening %s: %w", path, err)}
		}
		defer f.Close()

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := extractor.Extract(ctx, filepath.Base(path), f)
		return extractedMsg{gen: gen, extraction: res, err: err}
	}
}
