package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"deal-analyzer/config"
	"deal-analyzer/domain"
	"deal-analyzer/logging"
	"deal-analyzer/service"
)

func main() {
	var (
		strategy = flag.String("strategy", "rental", "Investment strategy: rental, flip or brrrr")
		input    = flag.String("input", "-", "Path to the JSON input file, or - for stdin")
		logLevel = flag.String("log-level", "warn", "Log level written to stderr")
	)
	flag.Parse()

	logger := logging.NewWithWriter(os.Stderr, config.LoggingConfig{Level: *logLevel}).
		With("component", "dealcalc")

	raw, err := readInput(*input)
	if err != nil {
		logger.Error("failed to read input", "path", *input, "error", err)
		os.Exit(1)
	}

	calculator := service.NewCalculatorService(logger)
	analysis, err := calculator.Analyze(domain.StrategyType(*strategy), raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, service.ErrInvalidInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(analysis.Result); err != nil {
		logger.Error("failed to write result", "error", err)
		os.Exit(1)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
