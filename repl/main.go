package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"VecKit/config"
	"VecKit/core/calc"
	"VecKit/core/wire"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

func formatResult(val calc.Value, cfg config.Config) (string, error) {
	vec, isVec := val.(calc.VectorValue)
	switch cfg.Format {
	case config.FormatJSON:
		if isVec {
			data, err := wire.MarshalJSON(vec.Vector)
			return string(data), err
		}
		var raw any
		switch v := val.(type) {
		case calc.Scalar:
			raw = float64(v)
		case calc.Bool:
			raw = bool(v)
		default:
			raw = calc.FormatDigits(val, cfg.Precision)
		}
		pbVal, err := structpb.NewValue(raw)
		if err != nil {
			return "", err
		}
		data, err := protojson.Marshal(pbVal)
		return string(data), err
	case config.FormatWire:
		if isVec {
			return hex.EncodeToString(wire.Serialize(vec.Vector)), nil
		}
	}
	return calc.FormatDigits(val, cfg.Precision), nil
}

func evalLine(session *calc.Session, line string, cfg config.Config, out io.Writer) error {
	val, err := session.Eval(line)
	if err != nil {
		return err
	}
	text, err := formatResult(val, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, text)
	return nil
}

// run evaluates each argument as a statement, or reads statements from in
// when there are none. With arguments the first error stops evaluation;
// interactively errors are reported and reading continues.
func run(args []string, in io.Reader, out io.Writer, cfg config.Config) error {
	session := calc.NewSession(cfg.Phase)

	if len(args) > 0 {
		for _, line := range args {
			if err := evalLine(session, line, cfg, out); err != nil {
				return fmt.Errorf("%s: %w", line, err)
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, config.Prompt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
		case line == "vars":
			for _, name := range session.Vars() {
				val, _ := session.Lookup(name)
				fmt.Fprintf(out, "%s = %s\n", name, calc.FormatDigits(val, cfg.Precision))
			}
		case line == "quit" || line == "exit":
			return nil
		default:
			if err := evalLine(session, line, cfg, out); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		}
		fmt.Fprint(out, config.Prompt)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)
	calc.SetLogger(logger)

	slog.Debug("config loaded",
		"phase", cfg.Phase,
		"format", cfg.Format,
		"precision", cfg.Precision,
	)

	if err := run(os.Args[1:], os.Stdin, os.Stdout, cfg); err != nil {
		slog.Error("evaluation failed", "error", err)
		os.Exit(1)
	}
}
