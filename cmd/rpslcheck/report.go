package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	"rpslkit/internal/batch"
	"rpslkit/internal/diagnostic"
)

const (
	checkMark = "✓"
	crossMark = "✗"
)

// objectReport is the YAML form of one result.
type objectReport struct {
	Source   string   `yaml:"source"`
	Line     int      `yaml:"line"`
	Class    string   `yaml:"class,omitempty"`
	PK       string   `yaml:"pk,omitempty"`
	Valid    bool     `yaml:"valid"`
	Errors   []string `yaml:"errors,omitempty"`
	Warnings []string `yaml:"warnings,omitempty"`
	Infos    []string `yaml:"infos,omitempty"`
}

func newObjectReport(src string, r batch.Result) objectReport {
	msgs := r.Messages()
	rep := objectReport{
		Source:   src,
		Line:     r.StartLine,
		Valid:    r.Valid(),
		Errors:   diagnosticStrings(msgs.Errors),
		Warnings: diagnosticStrings(msgs.Warnings),
		Infos:    diagnosticStrings(msgs.Infos),
	}

	if r.Object != nil {
		rep.Class = r.Object.Class()
		rep.PK = r.Object.PK()
	}

	return rep
}

func diagnosticStrings(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.String())
	}

	return out
}

func writeReports(w io.Writer, sources []source) error {
	var reports []objectReport

	for _, src := range sources {
		for _, r := range src.results {
			reports = append(reports, newObjectReport(src.name, r))
		}
	}

	if outputFormat == formatYAML {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(reports); err != nil {
			return err
		}

		return enc.Close()
	}

	for _, rep := range reports {
		mark := checkMark
		if !rep.Valid {
			mark = crossMark
		}

		fmt.Fprintf(w, "%s %s:%d %s %s\n", mark, rep.Source, rep.Line, rep.Class, rep.PK)

		for _, e := range rep.Errors {
			fmt.Fprintf(w, "    error: %s\n", e)
		}

		for _, warn := range rep.Warnings {
			fmt.Fprintf(w, "    warning: %s\n", warn)
		}

		for _, info := range rep.Infos {
			fmt.Fprintf(w, "    info: %s\n", info)
		}
	}

	return nil
}

// dumpResults writes the attribute lines and cleaned data of each object.
func dumpResults(w io.Writer, sources []source) {
	dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

	for _, src := range sources {
		for _, r := range src.results {
			if r.Object == nil {
				continue
			}

			fmt.Fprintf(w, "# %s:%d\n", src.name, r.StartLine)
			dumper.Fdump(w, r.Object.Lines(), r.Object.CleanedData())
		}
	}
}
