package main

import (
	"fmt"
	"log"
	"os"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"

	"github.com/shreejitmurthy/meta-parser/generator"
	"github.com/shreejitmurthy/meta-parser/parser"
)

func main() {
	log.SetFlags(0)

	app := &cli.App{
		Name:      "meta-parser",
		Usage:     "generate C struct declarations from .meta schema files",
		ArgsUsage: "<input.meta> <output.h>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "load limits and generator options from YAML `FILE`",
			},
			&cli.StringFlag{
				Name:  "dump-model",
				Usage: "write the parsed object model as JSON to `FILE`",
			},
			&cli.BoolFlag{
				Name:  "log",
				Usage: "log unresolved types and exceeded limits to stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Println("Error in code generation.")
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected <input.meta> <output.h>, got %d argument(s)", c.NArg())
	}
	inputPath := c.Args().Get(0)
	outputPath := c.Args().Get(1)

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}

	var warn parser.WarnFunc
	if c.Bool("log") {
		warn = log.Printf
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	p := parser.New(parser.NewRegistry(), parser.Options{
		Limits: cfg.limits(),
		Suffix: cfg.Generator.Suffix,
		Warn:   warn,
	})
	schema, err := p.Parse(in)
	if err != nil {
		return err
	}

	if dumpPath := c.String("dump-model"); dumpPath != "" {
		if err := dumpModel(dumpPath, schema); err != nil {
			return err
		}
	}

	gen := generator.New(cfg.Generator.Suffix, cfg.Generator.HeaderComment, schema)
	content, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Println("Code generation succeeded!")
	return nil
}

// dumpModel writes the parsed schema as indented JSON, a machine-readable
// companion to the inline comments in the generated header.
func dumpModel(path string, schema *parser.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing model dump: %w", err)
	}
	return nil
}
