package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mpelleau/cnf2lightswitch/pkg/dimacs"
	"github.com/mpelleau/cnf2lightswitch/pkg/pipeline"
	"github.com/mpelleau/cnf2lightswitch/pkg/render"
	"github.com/mpelleau/cnf2lightswitch/pkg/render/sink"
	"github.com/mpelleau/cnf2lightswitch/pkg/render/theme"
	"github.com/mpelleau/cnf2lightswitch/pkg/solve"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr         string // listen address
	solutions    string // solution stream file; empty means run the solver
	maxSolutions int    // cap when solving internally
	theme        string // optional TOML theme file
}

// newServeCmd creates the serve command. It renders the deck once and
// serves it over HTTP:
//
//	GET /            interactive SVG deck (click or press space to step layers)
//	GET /layer/{n}   one slide frozen as a standalone SVG (1 = neutral circuit)
//	GET /deck.json   the deck's directive stream as JSON
//	GET /circuit.dot the static circuit as a Graphviz document
//	GET /circuit.png the static circuit rasterized via Graphviz
//	GET /healthz     liveness probe
//
// Responses carry an ETag minted per server start, so reloading the deck in
// the browser is a cheap 304 until the server restarts with new input.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080", maxSolutions: 10}

	cmd := &cobra.Command{
		Use:   "serve [file.cnf]",
		Short: "Serve the interactive SVG deck over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVarP(&opts.solutions, "solutions", "s", "", "read solver output from file instead of solving")
	cmd.Flags().IntVarP(&opts.maxSolutions, "max-solutions", "n", opts.maxSolutions, "cap on enumerated assignments (0 = all)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file overriding glyphs and colors")

	return cmd
}

// runServe renders every served format up front and blocks until ctx is
// cancelled or the listener fails.
func runServe(ctx context.Context, input string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	result, err := buildServedDeck(ctx, input, opts)
	if err != nil {
		return err
	}
	slides, err := renderSlides(result.Deck, opts.theme)
	if err != nil {
		return err
	}

	etag := fmt.Sprintf("%q", uuid.NewString())
	router := newDeckRouter(result.Artifacts, slides, etag, logger)

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Serving %s on %s", input, opts.addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// buildServedDeck runs the pipeline once for every format the server exposes.
func buildServedDeck(ctx context.Context, input string, opts *serveOpts) (*pipeline.Result, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	solutions, closeSolutions, err := serveSolutions(ctx, input, opts)
	if err != nil {
		return nil, err
	}
	defer closeSolutions()

	formula, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer formula.Close()

	popts := pipeline.Options{
		Formats: []string{pipeline.FormatSVG, pipeline.FormatJSON, pipeline.FormatDOT, pipeline.FormatPNG},
		Theme:   opts.theme,
		Logger:  logger,
	}
	result, err := pipeline.NewRunner(logger).Execute(ctx, formula, solutions, popts)
	if err != nil {
		return nil, err
	}

	prog.done(fmt.Sprintf("Rendered %d slides", result.Deck.SlideCount()))
	printStats(result.Stats.Vars, result.Stats.Clauses, result.Stats.Wires, result.Stats.Layers)
	return result, nil
}

// serveSolutions yields the solution stream for the served deck: the
// --solutions file when given, otherwise the embedded solver's models
// buffered as solver lines.
func serveSolutions(ctx context.Context, input string, opts *serveOpts) (io.Reader, func(), error) {
	if opts.solutions != "" {
		return openSolutions(opts.solutions)
	}

	f, err := dimacs.ReadFormulaFile(input)
	if err != nil {
		return nil, nil, err
	}
	var buf bytes.Buffer
	if _, err := solve.Enumerate(ctx, f, opts.maxSolutions, func(a dimacs.Assignment) error {
		_, werr := fmt.Fprintln(&buf, dimacs.FormatSolution(a))
		return werr
	}); err != nil {
		return nil, nil, err
	}
	return &buf, func() {}, nil
}

// renderSlides freezes every slide of the deck as a standalone SVG, index 0
// holding slide 1 (the neutral circuit).
func renderSlides(deck *render.Deck, themePath string) ([][]byte, error) {
	th, err := theme.LoadOrDefault(themePath)
	if err != nil {
		return nil, err
	}
	slides := make([][]byte, deck.SlideCount())
	for i := range slides {
		slides[i], err = sink.RenderSlideSVG(deck, i+1, sink.WithTheme(th))
		if err != nil {
			return nil, err
		}
	}
	return slides, nil
}

// newDeckRouter builds the chi router over the pre-rendered artifacts.
func newDeckRouter(artifacts map[string][]byte, slides [][]byte, etag string, logger *log.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, req)
			logger.Debugf("%s %s (%s)", req.Method, req.URL.Path, time.Since(start).Round(time.Millisecond))
		})
	})

	r.Get("/", serveArtifact(artifacts[pipeline.FormatSVG], "image/svg+xml", etag))
	r.Get("/layer/{n}", func(w http.ResponseWriter, req *http.Request) {
		n, err := strconv.Atoi(chi.URLParam(req, "n"))
		if err != nil || n < 1 || n > len(slides) {
			http.NotFound(w, req)
			return
		}
		serveArtifact(slides[n-1], "image/svg+xml", etag)(w, req)
	})
	r.Get("/deck.json", serveArtifact(artifacts[pipeline.FormatJSON], "application/json", etag))
	r.Get("/circuit.dot", serveArtifact(artifacts[pipeline.FormatDOT], "text/vnd.graphviz", etag))
	r.Get("/circuit.png", serveArtifact(artifacts[pipeline.FormatPNG], "image/png", etag))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

// serveArtifact returns a handler for one immutable pre-rendered artifact.
func serveArtifact(data []byte, contentType, etag string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("ETag", etag)
		if req.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(data)
	}
}
