// Package main provides the CLI entry point for xlsxpatch.
package main

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
	"github.com/sci-bots/xlsxpatch/pkg/xlsxpatch"
	"github.com/spf13/cobra"
)

var (
	demoOutputPath string
	dumpIndent     int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlsxpatch",
		Short: "Inspect and demo the xlsxpatch helpers",
		Long: `xlsxpatch ships helpers that ferry extension lists, data validations,
and chart files across a spreadsheet library's save cycle. This tool
builds a sample workbook to experiment on and dumps raw worksheet XML.`,
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a sample workbook with data sheets and a scatter chart",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	demoCmd.Flags().StringVarP(&demoOutputPath, "output", "o", "demo.xlsx", "Output workbook path")

	dumpCmd := &cobra.Command{
		Use:   "dump [input.xlsx] [entry]",
		Short: "Print the XML of one archive entry (default xl/worksheets/sheet1.xml)",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runDump,
	}
	dumpCmd.Flags().IntVar(&dumpIndent, "indent", 2, "Indentation width for XML output")

	rootCmd.AddCommand(demoCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	f, err := xlsxpatch.BuildDemoWorkbook()
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()

	if err := f.SaveAs(demoOutputPath); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	fmt.Printf("wrote %s\n", demoOutputPath)
	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	entryName := "xl/worksheets/sheet1.xml"
	if len(args) > 1 {
		entryName = args[1]
	}

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	root, err := xlsxpatch.WorksheetRoot(inputPath, entryName)
	if err != nil {
		return fmt.Errorf("read entry: %w", err)
	}

	doc := etree.NewDocument()
	doc.SetRoot(root.Copy())
	doc.Indent(dumpIndent)
	out, err := doc.WriteToString()
	if err != nil {
		return fmt.Errorf("serialize entry: %w", err)
	}
	fmt.Print(out)
	return nil
}
