package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	rlcerror "github.com/msto63/nearestrlc/internal/core/error"
	rlclog "github.com/msto63/nearestrlc/internal/core/log"
	"github.com/msto63/nearestrlc/pkg/engnotation"
)

type batchOptions struct {
	tol    string
	series string
	format string
	unit   string
	digits int
}

// batchEntry is one value read from a batch file, with its position for
// error reporting.
type batchEntry struct {
	line  int
	input string
}

func newBatchCmd(a *app) *cobra.Command {
	opts := &batchOptions{}

	batchCmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Quantize every value listed in a file",
		Long: `Reads values from FILE and quantizes them all. FILE may be

  *.yaml, *.yml  a list of values, or a map with a "values" list
  *.toml         values = [ ... ]
  anything else  one value per line; blank lines and # comments are skipped

Use - to read plain text from stdin. Every run is tagged with a run id that
appears in the log output and in the table caption.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, opts, args[0])
		},
	}

	batchCmd.Flags().StringVarP(&opts.tol, "tol", "t", "", "tolerance class")
	batchCmd.Flags().StringVarP(&opts.series, "series", "s", "", "inventory series from the config file")
	batchCmd.Flags().StringVarP(&opts.format, "format", "f", "table", "output format: table, csv, markdown or json")
	batchCmd.Flags().StringVarP(&opts.unit, "unit", "u", "", "unit for the output")
	batchCmd.Flags().IntVarP(&opts.digits, "digits", "d", 0, "significant digits in the output")

	return batchCmd
}

func (a *app) runBatch(cmd *cobra.Command, opts *batchOptions, path string) error {
	switch opts.format {
	case "table", "csv", "markdown", "json":
	default:
		return invalidFlag("format", opts.format, "must be table, csv, markdown or json")
	}

	t, err := a.resolveTarget(opts.tol, opts.series)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	log := a.log.WithCorrelationID(runID)

	entries, err := readBatch(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	log.Info("batch started", rlclog.Fields{
		"file":      path,
		"values":    len(entries),
		"tolerance": t.label,
	})

	unit := a.cfg.Quantize.Unit
	if opts.unit != "" {
		unit = opts.unit
	}
	results := make([]result, 0, len(entries))
	for _, e := range entries {
		value, _, err := engnotation.ParseWithUnit(e.input)
		if err != nil {
			return rlcerror.Wrap(err, fmt.Sprintf("%s:%d", path, e.line)).
				WithDetail("file", path).
				WithDetail("line", e.line)
		}
		r, err := a.quantizeOne(e.input, value, t)
		if err != nil {
			return err
		}
		results = append(results, r)
	}

	if err := a.renderBatch(cmd.OutOrStdout(), opts, runID, unit, results); err != nil {
		return err
	}
	log.Info("batch finished", rlclog.Int("values", len(results)))
	return nil
}

func (a *app) renderBatch(w io.Writer, opts *batchOptions, runID, unit string, results []result) error {
	if opts.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			RunID   string   `json:"run_id"`
			Results []result `json:"results"`
		}{runID, results})
	}

	digits := a.digits(opts.digits)
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(resultHeader)
	for _, r := range results {
		tw.AppendRow(resultRow(r, unit, digits))
	}

	switch opts.format {
	case "csv":
		tw.RenderCSV()
	case "markdown":
		tw.RenderMarkdown()
	default:
		tw.SetCaption("run %s", runID)
		tw.Render()
	}
	return nil
}

// readBatch loads the entries of a batch file; the format follows the
// file extension.
func readBatch(stdin io.Reader, path string) ([]batchEntry, error) {
	var content []byte
	var err error
	if path == "-" {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		code := rlcerror.CodeInvalidInput
		if os.IsNotExist(err) {
			code = rlcerror.CodeNotFound
		}
		return nil, rlcerror.Wrap(err, "failed to read batch file").
			WithCode(code).
			WithOperation("batch.read").
			WithDetail("file", path)
	}

	var entries []batchEntry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		entries, err = parseYAMLBatch(content)
	case ".toml":
		entries, err = parseTOMLBatch(content)
	default:
		entries, err = parseTextBatch(content)
	}
	if err != nil {
		return nil, rlcerror.Wrap(err, "failed to parse batch file").
			WithOperation("batch.read").
			WithDetail("file", path)
	}
	if len(entries) == 0 {
		return nil, rlcerror.New("batch file contains no values").
			WithCode(rlcerror.CodeInvalidInput).
			WithOperation("batch.read").
			WithDetail("file", path)
	}
	return entries, nil
}

func parseTextBatch(content []byte) ([]batchEntry, error) {
	var entries []batchEntry
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		entries = append(entries, batchEntry{line: line, input: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, rlcerror.Wrap(err, "read error").WithCode(rlcerror.CodeInvalidInput)
	}
	return entries, nil
}

func parseYAMLBatch(content []byte) ([]batchEntry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, rlcerror.Wrap(err, "YAML parse error").WithCode(rlcerror.CodeInvalidFormat)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	list := doc.Content[0]
	if list.Kind == yaml.MappingNode {
		list = nil
		for i := 0; i+1 < len(doc.Content[0].Content); i += 2 {
			if doc.Content[0].Content[i].Value == "values" {
				list = doc.Content[0].Content[i+1]
				break
			}
		}
	}
	if list == nil || list.Kind != yaml.SequenceNode {
		return nil, rlcerror.New("expected a list of values or a map with a values list").
			WithCode(rlcerror.CodeInvalidFormat)
	}

	entries := make([]batchEntry, 0, len(list.Content))
	for _, item := range list.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, rlcerror.Newf("line %d: expected a scalar value", item.Line).
				WithCode(rlcerror.CodeInvalidFormat).
				WithDetail("line", item.Line)
		}
		entries = append(entries, batchEntry{line: item.Line, input: item.Value})
	}
	return entries, nil
}

func parseTOMLBatch(content []byte) ([]batchEntry, error) {
	var doc struct {
		Values []interface{} `toml:"values"`
	}
	if _, err := toml.Decode(string(content), &doc); err != nil {
		return nil, rlcerror.Wrap(err, "TOML parse error").WithCode(rlcerror.CodeInvalidFormat)
	}

	entries := make([]batchEntry, 0, len(doc.Values))
	for i, v := range doc.Values {
		var input string
		switch x := v.(type) {
		case string:
			input = x
		case int64:
			input = strconv.FormatInt(x, 10)
		case float64:
			input = strconv.FormatFloat(x, 'g', -1, 64)
		default:
			return nil, rlcerror.Newf("values[%d]: unsupported type %T", i, v).
				WithCode(rlcerror.CodeInvalidFormat).
				WithDetail("index", i)
		}
		// TOML arrays carry no per-element line numbers; report the index
		entries = append(entries, batchEntry{line: i + 1, input: input})
	}
	return entries, nil
}
