package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bigfatbird/gosub-browser/dom"
	"github.com/bigfatbird/gosub-browser/dom/builder"
	"github.com/bigfatbird/gosub-browser/dom/printer"
	"github.com/bigfatbird/gosub-browser/dom/tasks"
	"github.com/bigfatbird/gosub-browser/dom/walker"
	"github.com/bigfatbird/gosub-browser/internal/script"
)

var (
	treeDeferred bool
	treeLatin1   bool
	treeStats    bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().BoolVar(&treeDeferred, "deferred", false, "Buffer instructions in a task queue and flush once")
	cmd.Flags().BoolVar(&treeLatin1, "latin1", false, "Decode the script from Windows-1252")
	cmd.Flags().BoolVar(&treeStats, "stats", false, "Print node and index counts after the tree")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <script>",
		Short: "Build a document from a script and print it",
		Long: `The tree command parses a build script, constructs the document,
and prints the resulting tree.

Example:
  domctl tree page.dom
  domctl tree page.dom --deferred
  domctl tree legacy.dom --latin1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args[0])
		},
	}
	return cmd
}

func runTree(path string) error {
	printVerbose("Parsing script: %s\n", path)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	ins, err := script.Parse(f, script.Options{Latin1: treeLatin1})
	if err != nil {
		return err
	}
	printVerbose("Parsed %d instructions\n", len(ins))

	doc := builder.NewDocument()

	var taskErrs []string
	if treeDeferred {
		queue := tasks.New(doc)
		if _, err := script.Build(queue, ins); err != nil {
			return err
		}
		printVerbose("Flushing %d queued tasks\n", queue.Len())
		taskErrs = queue.Flush()
	} else {
		taskErrs, err = script.Build(doc, ins)
		if err != nil {
			return err
		}
	}

	for _, msg := range taskErrs {
		fmt.Fprintln(os.Stderr, msg)
	}

	if !quiet {
		fmt.Print(printer.String(doc))
	}

	if treeStats && !quiet {
		doc.Read(func(d *dom.Document) {
			reachable := len(walker.Descendants(d, dom.RootID)) + 1
			fmt.Printf("nodes: %d, reachable: %d, named ids: %d\n",
				d.NodeCount(), reachable, d.NamedIndex().Len())
		})
	}

	return nil
}
