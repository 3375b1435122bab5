package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/promptwire/agent/internal/intent"
	"github.com/promptwire/agent/internal/wireframe"
)

var (
	spec       bool
	pretty     bool
	maxColumns int
)

func main() {
	// Load .env file if present (silently ignore if not found)
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "wirectl <prompt>",
		Short: "Interpret a prompt and print intents or a wireframe spec",
		Long: `wirectl runs the prompt-to-wireframe pipeline locally: it extracts UI
intents from a natural language prompt and, with --spec, compiles them into a
wireframe specification.

Example:
  wirectl --spec "a dashboard with a navbar and a table of orders"`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().BoolVar(&spec, "spec", false, "Compile intents into a full wireframe spec")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	rootCmd.Flags().IntVar(&maxColumns, "max-columns", wireframe.DefaultMaxColumns, "Maximum columns per layout row")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	intent.Init()
	intents := intent.Interpret(args[0])

	var out any = map[string]any{"intents": intents}
	if spec {
		components, err := wireframe.Map(intents)
		if err != nil {
			return err
		}
		compiler := wireframe.NewCompiler(wireframe.WithMaxColumns(maxColumns))
		out = map[string]any{"wireframe_spec": compiler.Compile(components)}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
