package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lowlandresearch/larc"
	"github.com/lowlandresearch/larc/csvrows"
	"github.com/lowlandresearch/larc/dict"
	"github.com/lowlandresearch/larc/errors"
	"github.com/lowlandresearch/larc/ipaddr"
	"github.com/lowlandresearch/larc/maybe"
	"github.com/lowlandresearch/larc/text"
)

// readInput returns the content of the file named by args[i], or of stdin
// when args has no such element or it is "-".
func readInput(args []string, i int, stdin io.Reader) (string, error) {
	if i >= len(args) || args[i] == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.IO("read", "stdin", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(args[i])
	if err != nil {
		return "", errors.IO("read", args[i], err)
	}
	return string(raw), nil
}

func printLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return errors.IO("write", "stdout", err)
		}
	}
	return nil
}

func runIPs(_ *larc.Runtime, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("ips", flag.ContinueOnError)
	sorted := fs.Bool("sort", false, "sort addresses numerically.")
	if err := fs.Parse(args); err != nil {
		return errors.InvalidInput("args", err.Error())
	}
	content, err := readInput(fs.Args(), 0, stdin)
	if err != nil {
		return err
	}
	ips := ipaddr.FromText(content)
	if *sorted {
		if ips, err = ipaddr.Sort(ips); err != nil {
			return err
		}
	}
	return printLines(stdout, ips)
}

func runExpand(_ *larc.Runtime, args []string, stdin io.Reader, stdout io.Writer) error {
	content, err := readInput(args, 0, stdin)
	if err != nil {
		return err
	}
	for _, line := range text.StripComments(text.SplitLines(content)) {
		for _, field := range strings.Fields(line) {
			ips, err := ipaddr.Expand(field)
			if err != nil {
				return err
			}
			if err := printLines(stdout, ips); err != nil {
				return err
			}
		}
	}
	return nil
}

func twoInputs(args []string, stdin io.Reader) (string, string, error) {
	if len(args) != 2 {
		return "", "", errors.InvalidInput("args", "expected two files")
	}
	a, err := readInput(args, 0, stdin)
	if err != nil {
		return "", "", err
	}
	b, err := readInput(args, 1, stdin)
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}

func runDiffLines(_ *larc.Runtime, args []string, stdin io.Reader, stdout io.Writer) error {
	a, b, err := twoInputs(args, stdin)
	if err != nil {
		return err
	}
	return printLines(stdout, text.DiffLines(a, b))
}

func runIntLines(_ *larc.Runtime, args []string, stdin io.Reader, stdout io.Writer) error {
	a, b, err := twoInputs(args, stdin)
	if err != nil {
		return err
	}
	return printLines(stdout, text.IntersectLines(a, b))
}

func decodeJSON(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, errors.InvalidFormat("input", "JSON").WithCause(err)
	}
	return v, nil
}

func runSearch(rt *larc.Runtime, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errors.InvalidInput("args", "expected a JMESPath expression")
	}
	content, err := readInput(args, 1, stdin)
	if err != nil {
		return err
	}

	p := rt.Pipeline("search",
		[]maybe.Stage{maybe.TryThen(decodeJSON), dict.SearchStage(args[0])},
		maybe.WithStageNames("decode", "search"),
	)
	rep := rt.Evaluate(context.Background(), p, content)
	if err := rep.Err(); err != nil {
		return err
	}
	out, err := json.Marshal(rep.Value)
	if err != nil {
		return errors.Internal(err)
	}
	return printLines(stdout, []string{string(out)})
}

func runCSVCut(_ *larc.Runtime, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("csvcut", flag.ContinueOnError)
	columns := fs.String("columns", "", "comma separated columns to keep.")
	if err := fs.Parse(args); err != nil {
		return errors.InvalidInput("args", err.Error())
	}
	if *columns == "" {
		return errors.InvalidInput("columns", "is required")
	}
	content, err := readInput(fs.Args(), 0, stdin)
	if err != nil {
		return err
	}
	rows, err := csvrows.FromString(content)
	if err != nil {
		return err
	}
	anyRows := make([]map[string]any, len(rows))
	for i, r := range rows {
		m := make(map[string]any, len(r))
		for k, v := range r {
			m[k] = v
		}
		anyRows[i] = m
	}
	return csvrows.WriteMaps(stdout, anyRows, csvrows.WithColumns(strings.Split(*columns, ",")...))
}
