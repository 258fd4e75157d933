package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mpelleau/cnf2lightswitch/pkg/circuit"
	"github.com/mpelleau/cnf2lightswitch/pkg/dimacs"
	"github.com/mpelleau/cnf2lightswitch/pkg/render"
	"github.com/mpelleau/cnf2lightswitch/pkg/solve"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	solutions    string // solution stream file; empty means run the solver
	maxSolutions int    // cap when solving internally
}

// newPreviewCmd creates the preview command, an interactive terminal walk
// through the deck's slides. Slide 1 shows the neutral circuit; each further
// slide shows one satisfying assignment with its switch positions and lit
// lights.
//
// Assignments come from --solutions when given, otherwise from the embedded
// solver. Stdin stays free for key input either way.
func newPreviewCmd() *cobra.Command {
	opts := previewOpts{maxSolutions: 10}

	cmd := &cobra.Command{
		Use:   "preview [file.cnf]",
		Short: "Step through the deck's slides in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.solutions, "solutions", "s", "", "read solver output from file instead of solving")
	cmd.Flags().IntVarP(&opts.maxSolutions, "max-solutions", "n", opts.maxSolutions, "cap on enumerated assignments (0 = all)")

	return cmd
}

// runPreview builds the deck and hands it to the bubbletea program.
func runPreview(ctx context.Context, input string, opts *previewOpts) error {
	logger := loggerFromContext(ctx)

	f, err := dimacs.ReadFormulaFile(input)
	if err != nil {
		return err
	}
	board := circuit.Build(f)
	deck := render.NewDeck(board)

	if opts.solutions != "" {
		solutions, closeSolutions, err := openSolutions(opts.solutions)
		if err != nil {
			return err
		}
		defer closeSolutions()

		stream := board.Layers(solutions, func(line string, err error) {
			logger.Warn("skipping malformed solution line", "line", line, "err", err)
		})
		for stream.Next() {
			deck.AddLayer(stream.Layer())
		}
		if err := stream.Err(); err != nil {
			return err
		}
	} else {
		ordinal := circuit.FirstLayer
		_, err := solve.Enumerate(ctx, f, opts.maxSolutions, func(a dimacs.Assignment) error {
			deck.AddLayer(board.Layer(ordinal, a))
			ordinal++
			return nil
		})
		if err != nil {
			return err
		}
	}
	logger.Debugf("Previewing %d slides", deck.SlideCount())

	p := tea.NewProgram(newPreviewModel(input, deck))
	_, err = p.Run()
	return err
}

// =============================================================================
// PreviewModel - Interactive slide stepping
// =============================================================================

// previewModel is the bubbletea model for stepping through deck slides.
type previewModel struct {
	Title string
	Deck  *render.Deck
	Slide int // 1-based; slide 1 is the neutral circuit
}

// newPreviewModel creates a preview model positioned on the first slide.
func newPreviewModel(title string, deck *render.Deck) previewModel {
	return previewModel{Title: title, Deck: deck, Slide: 1}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "up", "k":
			if m.Slide > 1 {
				m.Slide--
			}
		case "right", "l", "down", "j", " ", "enter":
			if m.Slide < m.Deck.SlideCount() {
				m.Slide++
			}
		case "home", "g":
			m.Slide = 1
		case "end", "G":
			m.Slide = m.Deck.SlideCount()
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ step  g/G first/last  q quit"))
	b.WriteString("\n\n")

	var layer *circuit.Layer
	if m.Slide >= circuit.FirstLayer {
		l := m.Deck.Layers[m.Slide-circuit.FirstLayer]
		layer = &l
	}

	b.WriteString(lightRow(m.Deck.Clauses, layer))
	b.WriteString("\n")
	b.WriteString(labelRow("c", m.Deck.Clauses))
	b.WriteString("\n\n")
	b.WriteString(switchRow(m.Deck.Vars, layer))
	b.WriteString("\n")
	b.WriteString(labelRow("v", m.Deck.Vars))
	b.WriteString("\n\n")

	if layer == nil {
		b.WriteString(StyleDim.Render("  neutral circuit"))
	} else {
		lit := 0
		for _, on := range layer.Lights {
			if on {
				lit++
			}
		}
		b.WriteString(StyleDim.Render(fmt.Sprintf("  assignment %d: %d/%d clauses satisfied", m.Slide-1, lit, m.Deck.Clauses)))
	}
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Slide, m.Deck.SlideCount())))

	return b.String()
}

// lightRow renders one glyph per clause. On the neutral slide every light is
// unlit; on an assignment slide the satisfied clauses glow.
func lightRow(clauses int, layer *circuit.Layer) string {
	var b strings.Builder
	b.WriteString("  ")
	for c := 0; c < clauses; c++ {
		on := layer != nil && layer.Lights[c]
		if on {
			b.WriteString(styleLightOn.Render("(●)"))
		} else {
			b.WriteString(styleLightOff.Render("(○)"))
		}
		b.WriteString(" ")
	}
	return b.String()
}

// switchRow renders one lever per variable: "│" neutral, "╱" on, "╲" off.
// Variables the layer's assignment leaves out stay neutral.
func switchRow(vars int, layer *circuit.Layer) string {
	states := make(map[int]bool, vars)
	if layer != nil {
		for _, s := range layer.Switches {
			states[s.Variable] = s.On
		}
	}

	var b strings.Builder
	b.WriteString("  ")
	for v := 1; v <= vars; v++ {
		on, set := states[v]
		switch {
		case !set:
			b.WriteString(StyleDim.Render("[│]"))
		case on:
			b.WriteString(styleLeverOn.Render("[╱]"))
		default:
			b.WriteString(styleLeverOff.Render("[╲]"))
		}
		b.WriteString(" ")
	}
	return b.String()
}

// labelRow renders the v1..vn or c1..cm labels under a glyph row.
func labelRow(prefix string, n int) string {
	var b strings.Builder
	b.WriteString("  ")
	for i := 1; i <= n; i++ {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-4s", fmt.Sprintf("%s%d", prefix, i))))
	}
	return b.String()
}
