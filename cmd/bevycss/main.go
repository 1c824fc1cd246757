/*
Command bevycss is a small developer tool for styling-rule sheets: it
parses a sheet, prints the resulting rules as a tree together with any
diagnostics, and can keep watching a file and re-print on every change.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/AmonDeShir/tomt-bevycss/style/css"
	"github.com/AmonDeShir/tomt-bevycss/style/cssom"
)

func main() {
	root := &cobra.Command{
		Use:          "bevycss",
		Short:        "inspect styling-rule sheets",
		SilenceUsage: true,
	}
	root.AddCommand(dumpCmd(), watchCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <sheet.css>",
		Short: "parse a sheet and print its rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			sheet, diags := cssom.Parse(string(src))
			printSheet(sheet, diags)
			return nil
		},
	}
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <sheet.css>",
		Short: "watch a sheet file and re-print it on every change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := css.NewEngine(nil)
			watcher, err := css.NewWatcher(engine)
			if err != nil {
				return err
			}
			defer watcher.Close()
			watcher.OnReload = func(path string, diags []cssom.Diagnostic) {
				fmt.Printf("--- %s\n", path)
				printSheet(engine.Sheet(), diags)
			}
			if err := watcher.Add(args[0]); err != nil {
				return err
			}
			printSheet(engine.Sheet(), nil)
			watcher.Start()

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			<-interrupt
			return nil
		},
	}
}

func printSheet(sheet *cssom.StyleSheet, diags []cssom.Diagnostic) {
	fmt.Print(cssom.Dump(sheet))
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}
}
