package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	if args[0] == "--help" || args[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if args[0] == "--version" || args[0] == "-v" {
		fmt.Printf("statexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	dumpPath := args[0]

	tree, err := LoadDump(dumpPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m := NewModel(dumpPath, tree)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: statexplorer <dump-file>\n")
	fmt.Fprintf(os.Stderr, "Try 'statexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("statexplorer - Interactive TUI for statistics dumps")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  statexplorer [options] <dump-file>")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Launches an interactive terminal UI for browsing a YAML statistics")
	fmt.Println("  dump produced by statctl or the statkit library.")
	fmt.Println()
	fmt.Println("  Features:")
	fmt.Println("    - Collapsible namespace tree with counter values")
	fmt.Println("    - Keyboard navigation (vim-style keys supported)")
	fmt.Println("    - Search counter names and values (/)")
	fmt.Println("    - Copy counter paths to the clipboard (c)")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Navigate up/down")
	fmt.Println("    →/l, Enter  Expand namespace")
	fmt.Println("    ←/h         Collapse namespace / Go to parent")
	fmt.Println("    E, C        Expand / collapse all")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  statexplorer run.stats.yaml")
	fmt.Println("  statctl demo -f yaml -o demo.yaml && statexplorer demo.yaml")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'statctl' command instead.")
}
