package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/chatexport/internal/export"
	"github.com/danmuck/chatexport/internal/logging"
	"github.com/danmuck/chatexport/internal/record"
)

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "exportdump: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("exportdump", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to TOML config")
	input := fs.String("in", "", "container file to decode (overrides config)")
	kind := fs.String("kind", "", "record kind: group or contact (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := defaultDumpConfig()
	if *configPath != "" {
		loaded, err := loadDumpConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *kind != "" {
		cfg.Kind = strings.ToLower(strings.TrimSpace(*kind))
	}
	if err := validateKind(cfg.Kind); err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("no input file (use -in or config input)")
	}

	buf, err := os.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("read container: %w", err)
	}

	var count int
	switch cfg.Kind {
	case "group":
		count, err = dumpGroups(buf, cfg)
	case "contact":
		count, err = dumpContacts(buf, cfg)
	}
	if err != nil {
		return err
	}

	log.Info().
		Str("kind", cfg.Kind).
		Str("input", cfg.Input).
		Int("records", count).
		Msg("exportdump: done")
	return nil
}

func dumpGroups(buf []byte, cfg dumpConfig) (int, error) {
	stream := export.NewGroupStream(buf, cfg.Limits)
	count := 0
	for rec, err := range stream.Records() {
		if err != nil {
			return count, err
		}
		fmt.Printf("group %q members=%d active=%t attachment=%s\n",
			rec.Name, len(rec.Members), rec.Active, attachmentSummary(rec.Avatar))
		count++
	}
	return count, nil
}

func dumpContacts(buf []byte, cfg dumpConfig) (int, error) {
	stream := export.NewContactStream(buf, cfg.Limits)
	count := 0
	for rec, err := range stream.Records() {
		if err != nil {
			return count, err
		}
		verified := ""
		if rec.Verified != nil {
			verified = rec.Verified.DestinationUUID
		}
		fmt.Printf("contact %q uuid=%s verified=%s attachment=%s\n",
			rec.Name, orDash(rec.UUID), orDash(verified), attachmentSummary(rec.Avatar))
		count++
	}
	return count, nil
}

func attachmentSummary(a *record.Attachment) string {
	if a == nil {
		return "-"
	}
	return fmt.Sprintf("%s/%dB", a.ContentType, len(a.Data))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
