package main

import (
	"flag"
	"fmt"
	"os"

	"proforma/pkg/core/assumption"
	"proforma/pkg/core/pipeline"
	"proforma/pkg/report"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	years := flag.Int("years", assumption.DefaultYears, "forecast horizon in years")
	configPath := flag.String("config", os.Getenv("PROFORMA_CONFIG"), "optional assumption file (.yaml, .hjson or .json)")
	markdown := flag.Bool("markdown", false, "emit the report as Markdown instead of plain text")
	flag.Parse()

	var (
		m   *pipeline.FinancialModel
		err error
	)
	if *configPath != "" {
		var a assumption.Set
		a, err = assumption.LoadFile(*configPath, *years)
		if err == nil {
			m, err = pipeline.BuildWithAssumptions(a)
		}
	} else {
		m, err = pipeline.Build(*years)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] Model build failed: %v\n", err)
		os.Exit(1)
	}

	if *markdown {
		out, err := report.RenderMarkdown(m)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[FATAL] Report rendering failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
		return
	}
	fmt.Print(report.RenderText(m))
}
