package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/masumi-network/schema-validator-componenet/pkg/export"
	"github.com/masumi-network/schema-validator-componenet/pkg/renderers/tui"
	"github.com/masumi-network/schema-validator-componenet/pkg/validation"
)

func main() {
	var (
		sourceFlag      = flag.String("source", "", "schema file to validate (JSON or YAML, \"-\" for stdin)")
		interactiveFlag = flag.Bool("interactive", false, "walk the form in the terminal after validation")
		exportFlag      = flag.String("export", "", "export format for an accepted schema (openapi)")
		outputFlag      = flag.String("output", "", "output file for exported or collected data (stdout if empty)")
	)
	flag.Parse()

	if *sourceFlag == "" {
		log.Fatalf("-source is required")
	}

	text, fromYAML, err := readSource(*sourceFlag)
	if err != nil {
		log.Fatalf("read source: %v", err)
	}

	result := validation.Validate(text)
	for _, issue := range result.Errors {
		// YAML input was converted, so its line numbers would mislead
		if issue.Line > 0 && !fromYAML {
			fmt.Fprintf(os.Stderr, "line %d: %s\n", issue.Line, issue.Message)
			continue
		}
		fmt.Fprintln(os.Stderr, issue.Message)
	}
	if !result.Valid {
		log.Fatalf("schema invalid: %d error(s), %d field(s) accepted",
			len(result.Errors), len(result.ParsedSchemas))
	}
	fmt.Fprintf(os.Stderr, "schema valid: %d field(s)\n", len(result.ParsedSchemas))

	switch *exportFlag {
	case "":
	case "openapi":
		doc := export.OpenAPISchema(result.ParsedSchemas)
		raw, err := gojson.MarshalIndent(doc, "", "  ")
		if err != nil {
			log.Fatalf("export openapi: %v", err)
		}
		if err := writeOutput(*outputFlag, append(raw, '\n')); err != nil {
			log.Fatalf("write output: %v", err)
		}
	default:
		log.Fatalf("unknown export format %q (available: openapi)", *exportFlag)
	}

	if *interactiveFlag {
		session := tui.New()
		values, err := session.Run(context.Background(), result.ParsedSchemas)
		if err != nil {
			log.Fatalf("form session: %v", err)
		}
		raw, err := gojson.MarshalIndent(values, "", "  ")
		if err != nil {
			log.Fatalf("encode values: %v", err)
		}
		if err := writeOutput(*outputFlag, append(raw, '\n')); err != nil {
			log.Fatalf("write output: %v", err)
		}
	}
}

// readSource loads the schema text, converting YAML documents to JSON so
// the core only ever sees JSON. The boolean reports whether a conversion
// happened.
func readSource(path string) (string, bool, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return "", false, err
	}

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return "", false, fmt.Errorf("parse yaml: %w", err)
		}
		converted, err := gojson.Marshal(doc)
		if err != nil {
			return "", false, fmt.Errorf("convert yaml: %w", err)
		}
		return string(converted), true, nil
	}
	return string(raw), false, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
