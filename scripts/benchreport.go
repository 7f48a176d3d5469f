package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// BenchResult represents a parsed benchmark result line.
type BenchResult struct {
	Name        string
	Operation   string
	Variant     string
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
	Relative    float64 // ns/op divided by the fastest variant of the same operation
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	// Read benchmark output
	var scanner *bufio.Scanner
	var inputF *os.File
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		inputF = f
		scanner = bufio.NewScanner(f)
	} else {
		scanner = bufio.NewScanner(os.Stdin)
	}

	results := parseBenchmarks(scanner)

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	rankVariants(results)

	report := generateMarkdownReport(results)

	// Write output
	if *outputFile != "" {
		err := os.WriteFile(*outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			if inputF != nil {
				inputF.Close()
			}
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
		}
	} else {
		fmt.Fprint(os.Stdout, report)
	}

	if inputF != nil {
		inputF.Close()
	}
}

func parseBenchmarks(scanner *bufio.Scanner) []BenchResult {
	var results []BenchResult

	// Regex to parse benchmark output lines
	// BenchmarkScalarInc/current-8    10000    12.4 ns/op    0 B/op    0 allocs/op
	benchmarkRegex := regexp.MustCompile(
		`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+(?:B|MB)/op)?(?:\s+([\d.]+)\s+allocs/op)?`,
	)

	for scanner.Scan() {
		line := scanner.Text()

		// Try to parse as JSON (from -json flag)
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		name := matches[1]
		iterations, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)

		var bytesPerOp int64
		var allocsPerOp int64

		if matches[4] != "" {
			bytesPerOp, _ = strconv.ParseInt(matches[4], 10, 64)
		}
		if matches[5] != "" {
			allocsPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}

		operation, variant := splitBenchName(name)

		results = append(results, BenchResult{
			Name:        name,
			Operation:   operation,
			Variant:     variant,
			Iterations:  iterations,
			NsPerOp:     nsPerOp,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	// Sort by operation then variant for a stable report
	sort.Slice(results, func(i, j int) bool {
		if results[i].Operation != results[j].Operation {
			return results[i].Operation < results[j].Operation
		}
		return results[i].Variant < results[j].Variant
	})

	return results
}

// splitBenchName separates a raw benchmark name into the operation and
// its sub-benchmark variant.
//
//	BenchmarkAccumulate-8              -> ("Accumulate", "")
//	BenchmarkScalarInc/current-8       -> ("ScalarInc", "current")
//	BenchmarkRenderText/nodes=64/16-8  -> ("RenderText", "nodes=64/16")
func splitBenchName(name string) (string, string) {
	parts := strings.Split(name, "/")

	operation := strings.TrimPrefix(parts[0], "Benchmark")
	if len(parts) == 1 {
		return stripProcs(operation), ""
	}

	variant := strings.Join(parts[1:], "/")
	return operation, stripProcs(variant)
}

// stripProcs removes the trailing -N GOMAXPROCS suffix go test appends.
func stripProcs(s string) string {
	dashIdx := strings.LastIndex(s, "-")
	if dashIdx <= 0 {
		return s
	}
	if _, err := strconv.Atoi(s[dashIdx+1:]); err != nil {
		return s
	}
	return s[:dashIdx]
}

// rankVariants fills in Relative: each result's ns/op divided by the
// fastest variant of the same operation, so the best row reads 1.00x.
func rankVariants(results []BenchResult) {
	fastest := make(map[string]float64)
	for _, r := range results {
		if best, ok := fastest[r.Operation]; !ok || r.NsPerOp < best {
			fastest[r.Operation] = r.NsPerOp
		}
	}
	for i := range results {
		if best := fastest[results[i].Operation]; best > 0 {
			results[i].Relative = results[i].NsPerOp / best
		} else {
			results[i].Relative = 1.0
		}
	}
}

func generateMarkdownReport(results []BenchResult) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	operations := make(map[string]bool)
	for _, r := range results {
		operations[r.Operation] = true
	}

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Total benchmarks**: %d\n", len(results)))
	sb.WriteString(fmt.Sprintf("- **Operations**: %d\n", len(operations)))
	sb.WriteString("\n")

	// Detailed results table
	sb.WriteString("## Detailed Results\n\n")
	sb.WriteString("| Operation | Variant | ns/op | vs best | B/op | allocs/op |\n")
	sb.WriteString("|-----------|---------|-------|---------|------|-----------|\n")

	for _, r := range results {
		variant := r.Variant
		if variant == "" {
			variant = "-"
		}

		relative := fmt.Sprintf("%.2fx", r.Relative)
		if r.Relative == 1.0 {
			relative = "**1.00x**"
		}

		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
			r.Operation,
			variant,
			formatNumber(r.NsPerOp),
			relative,
			formatBytes(r.BytesPerOp),
			formatNumber(float64(r.AllocsPerOp)),
		))
	}

	sb.WriteString("\n")

	// Category summaries
	sb.WriteString("## Performance by Category\n\n")

	categories := categorizeOperations(results)
	order := []string{
		"Counter updates",
		"Accumulation",
		"Rendering",
		"Layout & registration",
		"Instances",
		"Other",
	}
	for _, category := range order {
		comps := categories[category]
		if len(comps) == 0 {
			continue
		}

		slowest := comps[0]
		for _, comp := range comps {
			if comp.NsPerOp > slowest.NsPerOp {
				slowest = comp
			}
		}
		sb.WriteString(fmt.Sprintf("- **%s**: %d benchmarks, slowest %s at %s ns/op\n",
			category, len(comps), slowest.Name, formatNumber(slowest.NsPerOp)))
	}

	sb.WriteString("\n")

	// Notes
	sb.WriteString("## Notes\n\n")
	sb.WriteString("- **vs best**: ns/op relative to the fastest variant of the same operation\n")
	sb.WriteString("- **B/op and allocs/op**: present only for benchmarks run with -benchmem or b.ReportAllocs\n")
	sb.WriteString("- Counter update benchmarks should report 0 allocs/op; anything else is a regression\n")

	return sb.String()
}

func categorizeOperations(results []BenchResult) map[string][]BenchResult {
	categories := make(map[string][]BenchResult)

	for _, r := range results {
		op := strings.ToLower(r.Operation)

		var category string
		switch {
		case strings.Contains(op, "inc") || strings.Contains(op, "add") ||
			strings.Contains(op, "dec") || strings.Contains(op, "set") ||
			strings.Contains(op, "scalar") || strings.Contains(op, "array"):
			category = "Counter updates"
		case strings.Contains(op, "accumulate") || strings.Contains(op, "merge"):
			category = "Accumulation"
		case strings.Contains(op, "render") || strings.Contains(op, "dump") ||
			strings.Contains(op, "print") || strings.Contains(op, "emit"):
			category = "Rendering"
		case strings.Contains(op, "layout") || strings.Contains(op, "reserve") ||
			strings.Contains(op, "register") || strings.Contains(op, "seal") ||
			strings.Contains(op, "lookup"):
			category = "Layout & registration"
		case strings.Contains(op, "instance") || strings.Contains(op, "recycle") ||
			strings.Contains(op, "base"):
			category = "Instances"
		default:
			category = "Other"
		}

		categories[category] = append(categories[category], r)
	}

	return categories
}

func formatNumber(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.2fM", n/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.0f", n)
}

func formatBytes(b int64) string {
	if b >= 1024*1024 {
		return fmt.Sprintf("%.2fMB", float64(b)/(1024*1024))
	} else if b >= 1024 {
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	}
	return fmt.Sprintf("%dB", b)
}
