package viz

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/yezhuoyang/HGPCode/hgp"
	"github.com/yezhuoyang/HGPCode/sim"
)

// ErrNilSession indicates RenderHTML received a nil session.
var ErrNilSession = errors.New("viz: session is nil")

// Lattice cell spacing in chart coordinates and node sizing.
const (
	cellSpacing     = 60.0
	qubitSymbolSize = 22
	checkSymbolSize = 14
)

// Node colors: clean vs error-carrying qubits, quiet vs violated checks.
const (
	colorDataQubit     = "#5470c6"
	colorCheckQubit    = "#91cc75"
	colorErrorX        = "#ee6666"
	colorErrorZ        = "#fac858"
	colorErrorY        = "#9a60b4"
	colorQuietCheck    = "#dddddd"
	colorViolatedCheck = "#c23531"
)

// Option customizes rendering.
type Option func(*config)

type config struct {
	title string
}

// WithTitle overrides the page and chart title.
// Panics on an empty title (options validate, rendering never panics).
func WithTitle(title string) Option {
	if title == "" {
		panic("viz: WithTitle requires a non-empty title")
	}
	return func(c *config) {
		c.title = title
	}
}

// RenderHTML writes a self-contained HTML page visualizing the session's
// code, error pattern, and syndromes.
// Complexity: O(checks·N) (dominated by the syndrome recomputation and
// check-support walks).
func RenderHTML(w io.Writer, sess *sim.Session, options ...Option) error {
	if sess == nil {
		return fmt.Errorf("viz.RenderHTML: %w", ErrNilSession)
	}

	cfg := config{title: fmt.Sprintf("HGP code %s", sess.Code())}
	for _, opt := range options {
		opt(&cfg)
	}

	code := sess.Code()
	xErrs, zErrs := sess.XErrors(), sess.ZErrors()
	xSyn, zSyn, err := sess.Syndromes()
	if err != nil {
		return fmt.Errorf("viz.RenderHTML: %w", err)
	}

	lattice, err := latticeChart(cfg.title, code, xErrs, zErrs, xSyn, zSyn)
	if err != nil {
		return fmt.Errorf("viz.RenderHTML: %w", err)
	}

	page := components.NewPage()
	page.PageTitle = cfg.title
	page.AddCharts(
		lattice,
		syndromeChart("X syndrome (Z-check outcomes, bit-flip errors)", xSyn),
		syndromeChart("Z syndrome (X-check outcomes, phase-flip errors)", zSyn),
	)
	if err = page.Render(w); err != nil {
		return fmt.Errorf("viz.RenderHTML: render: %w", err)
	}

	return nil
}

// WriteHTMLFile renders the session into a file at path.
func WriteHTMLFile(path string, sess *sim.Session, options ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("viz.WriteHTMLFile: %w", err)
	}
	defer f.Close()

	return RenderHTML(f, sess, options...)
}

// latticeChart builds the graph chart on the canonical HGP lattice:
// data qubit (i,j) sits at even-even cell (2j, 2i), check qubit (a,b) at
// odd-odd (2b+1, 2a+1), X-check (a,j) at (2j, 2a+1), Z-check (i,b) at
// (2b+1, 2i). All coordinates are shifted by one cell so none serialize
// as zero (echarts omits zero-valued positions).
func latticeChart(title string, code *hgp.Code, xErrs, zErrs, xSyn, zSyn []byte) (*charts.Graph, error) {
	nodes := make([]opts.GraphNode, 0, code.N+code.NumXChecks+code.NumZChecks)
	links := make([]opts.GraphLink, 0, 4*(code.NumXChecks+code.NumZChecks))

	// Qubit nodes, colored by the error they carry.
	qubitName := make([]string, code.N)
	for q := 0; q < code.N; q++ {
		pos, err := code.QubitToGrid(q)
		if err != nil {
			return nil, err
		}
		var x, y float32
		name := ""
		if pos.Block == hgp.DataBlock {
			name = fmt.Sprintf("d(%d,%d)", pos.Row, pos.Col)
			x, y = float32(2*pos.Col+1)*cellSpacing, float32(2*pos.Row+1)*cellSpacing
		} else {
			name = fmt.Sprintf("c(%d,%d)", pos.Row, pos.Col)
			x, y = float32(2*pos.Col+2)*cellSpacing, float32(2*pos.Row+2)*cellSpacing
		}
		qubitName[q] = name
		nodes = append(nodes, opts.GraphNode{
			Name:       name,
			X:          x,
			Y:          y,
			SymbolSize: qubitSymbolSize,
			ItemStyle:  &opts.ItemStyle{Color: qubitColor(pos.Block, xErrs[q], zErrs[q])},
		})
	}

	// X-check nodes plus their support edges.
	for k := 0; k < code.NumXChecks; k++ {
		a, j := k/code.N2, k%code.N2
		name := fmt.Sprintf("X%d", k)
		nodes = append(nodes, opts.GraphNode{
			Name:       name,
			X:          float32(2*j+1) * cellSpacing,
			Y:          float32(2*a+2) * cellSpacing,
			Symbol:     "rect",
			SymbolSize: checkSymbolSize,
			ItemStyle:  &opts.ItemStyle{Color: checkColor(zSyn[k])},
		})
		support, err := code.XCheckQubits(k)
		if err != nil {
			return nil, err
		}
		for _, q := range support {
			links = append(links, opts.GraphLink{Source: name, Target: qubitName[q]})
		}
	}

	// Z-check nodes plus their support edges.
	for k := 0; k < code.NumZChecks; k++ {
		i, b := k/code.R2, k%code.R2
		name := fmt.Sprintf("Z%d", k)
		nodes = append(nodes, opts.GraphNode{
			Name:       name,
			X:          float32(2*b+2) * cellSpacing,
			Y:          float32(2*i+1) * cellSpacing,
			Symbol:     "diamond",
			SymbolSize: checkSymbolSize,
			ItemStyle:  &opts.ItemStyle{Color: checkColor(xSyn[k])},
		})
		support, err := code.ZCheckQubits(k)
		if err != nil {
			return nil, err
		}
		for _, q := range support {
			links = append(links, opts.GraphLink{Source: name, Target: qubitName[q]})
		}
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d data + %d check qubits, %d X-checks, %d Z-checks", code.DataQubits(), code.CheckQubits(), code.NumXChecks, code.NumZChecks),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "800px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	graph.AddSeries("lattice", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{Layout: "none", Roam: opts.Bool(true)}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	return graph, nil
}

// syndromeChart renders one syndrome vector as a bar chart, one bar per check.
func syndromeChart(title string, syn []byte) *charts.Bar {
	labels := make([]string, len(syn))
	bars := make([]opts.BarData, len(syn))
	violated := 0
	for i, bitVal := range syn {
		labels[i] = fmt.Sprintf("%d", i)
		bars[i] = opts.BarData{Value: int(bitVal)}
		violated += int(bitVal)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d of %d checks violated", violated, len(syn)),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "300px"}),
	)
	bar.SetXAxis(labels).
		AddSeries("violated", bars).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))

	return bar
}

// qubitColor picks the node color from the block and the error bits.
func qubitColor(block hgp.BlockType, xErr, zErr byte) string {
	switch {
	case xErr == 1 && zErr == 1:
		return colorErrorY
	case xErr == 1:
		return colorErrorX
	case zErr == 1:
		return colorErrorZ
	case block == hgp.CheckBlock:
		return colorCheckQubit
	default:
		return colorDataQubit
	}
}

// checkColor highlights a violated check.
func checkColor(synBit byte) string {
	if synBit == 1 {
		return colorViolatedCheck
	}

	return colorQuietCheck
}
