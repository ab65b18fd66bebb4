// Command wininfo prints spectral properties of window functions.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all known window types.
//
// Examples:
//
//	wininfo hann
//	wininfo -size 1024 blackman kaiser
//	wininfo -size 4096 -param 8 kaiser
//	wininfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/AE9RB/dspp/window"
)

type windowEntry struct {
	name     string
	typ      window.Type
	hasParam bool
	defParam float64
	param    func(float64) window.Option
}

var registry = []windowEntry{
	{name: "rectangular", typ: window.TypeRectangular},
	{name: "triangular", typ: window.TypeTriangular},
	{name: "bartlett", typ: window.TypeBartlett},
	{name: "hann", typ: window.TypeHann},
	{name: "hamming", typ: window.TypeHamming},
	{name: "welch", typ: window.TypeWelch},
	{name: "parzen", typ: window.TypeParzen},
	{name: "bohman", typ: window.TypeBohman},
	{name: "blackman", typ: window.TypeBlackman},
	{name: "nuttall", typ: window.TypeNuttall},
	{name: "blackman-nuttall", typ: window.TypeBlackmanNuttall},
	{name: "blackman-harris", typ: window.TypeBlackmanHarris},
	{name: "flat-top", typ: window.TypeFlatTop},
	{name: "barthann", typ: window.TypeBarthann},
	{name: "kaiser", typ: window.TypeKaiser, hasParam: true, defParam: 0.5, param: window.WithBeta},
	{name: "gaussian", typ: window.TypeGaussian, hasParam: true, defParam: 2.5, param: window.WithAlpha},
	{name: "chebyshev", typ: window.TypeChebyshev, hasParam: true, defParam: 100, param: window.WithAttenuation},
}

func main() {
	size := flag.Int("size", 1024, "window length in samples")
	param := flag.Float64("param", math.NaN(), "shape parameter for kaiser (beta), gaussian (alpha), chebyshev (attenuation dB)")
	list := flag.Bool("list", false, "list available window names")
	periodic := flag.Bool("periodic", false, "use periodic (FFT) form instead of symmetric")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints spectral properties of window functions.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all windows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names, *param)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window types\n")
		os.Exit(1)
	}

	var opts []window.Option
	if *periodic {
		opts = append(opts, window.WithPeriodic())
	}

	printAnalysis(entries, *size, opts)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

type resolvedEntry struct {
	windowEntry
	paramValue float64
}

func resolveEntries(names []string, paramFlag float64) []resolvedEntry {
	byName := make(map[string]windowEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []resolvedEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown window %q (use -list to see available)\n", name)
			continue
		}
		p := e.defParam
		if e.hasParam && !math.IsNaN(paramFlag) {
			p = paramFlag
		}
		result = append(result, resolvedEntry{e, p})
	}
	return result
}

func printAnalysis(entries []resolvedEntry, size int, baseOpts []window.Option) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tScallop [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t------------\n")

	for _, e := range entries {
		opts := append([]window.Option(nil), baseOpts...)
		label := e.name
		if e.hasParam {
			opts = append(opts, e.param(e.paramValue))
			label = fmt.Sprintf("%s (%.2f)", e.name, e.paramValue)
		}

		a := window.Analyze(window.Generate[float64](e.typ, size, opts...))
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\n",
			label, size, a.CoherentGain, a.ENBW, a.ScallopLossdB)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
