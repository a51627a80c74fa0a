// Copyright (C) 2024 M. Fargo. All Rights Reserved.

// Program jev validates and reformats JSON documents.
//
// With -check, the input is validated and the position of the first
// syntax error (if any) is reported as line:column. Otherwise the
// input is parsed and written back to stdout, indented by default or
// compact with -compact.
package main

import (
	"errors"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mfargo/jev"
	"github.com/mfargo/jev/ast"
)

func main() {
	checkOnly := flag.Bool("check", false, "Validate the input without printing it")
	compact := flag.Bool("compact", false, "Print compact output instead of indented")
	indent := flag.String("indent", "  ", "Indentation unit for indented output")
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal)")
	prettyLogs := flag.Bool("pretty", true, "Enable pretty logging output")
	flag.Parse()

	setupLogging(*logLevel, *prettyLogs)

	data, name, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Str("input", name).Msg("Failed to read input")
	}

	if *checkOnly {
		if err := new(jev.Parser).Parse(data); err != nil {
			fatalSyntax(data, name, err)
		}
		log.Info().Str("input", name).Int("bytes", len(data)).Msg("Input is valid JSON")
		return
	}

	v, err := ast.Parse(data)
	if err != nil {
		fatalSyntax(data, name, err)
	}

	if *compact {
		err = ast.Write(os.Stdout, v)
		if err == nil {
			_, err = os.Stdout.WriteString("\n")
		}
	} else {
		err = ast.WriteIndent(os.Stdout, v, "", *indent)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to write output")
	}
}

func readInput(path string) ([]byte, string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, "stdin", err
	}
	data, err := os.ReadFile(path)
	return data, path, err
}

func fatalSyntax(data []byte, name string, err error) {
	var serr *jev.SyntaxError
	if errors.As(err, &serr) {
		pos := jev.OffsetLineCol(data, serr.Offset)
		log.Fatal().
			Str("input", name).
			Int("offset", serr.Offset).
			Str("position", pos.String()).
			Msg(serr.Message)
	}
	log.Fatal().Err(err).Str("input", name).Msg("Parse failed")
}

func setupLogging(level string, pretty bool) {
	var logLevel zerolog.Level
	switch level {
	case "trace":
		logLevel = zerolog.TraceLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	case "fatal":
		logLevel = zerolog.FatalLevel
	default:
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
