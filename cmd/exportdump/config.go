package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/chatexport/internal/protocol"
)

type dumpConfig struct {
	Kind   string
	Input  string
	Limits protocol.Limits
}

func defaultDumpConfig() dumpConfig {
	return dumpConfig{
		Kind:   "contact",
		Limits: protocol.DefaultLimits(),
	}
}

type fileConfig struct {
	Kind               string `toml:"kind"`
	Input              string `toml:"input"`
	MaxMessageBytes    int64  `toml:"max_message_bytes"`
	MaxAttachmentBytes int64  `toml:"max_attachment_bytes"`
}

func loadDumpConfig(path string) (dumpConfig, error) {
	cfg := defaultDumpConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return dumpConfig{}, fmt.Errorf("load exportdump config: %w", err)
	}

	if meta.IsDefined("kind") {
		cfg.Kind = strings.ToLower(strings.TrimSpace(raw.Kind))
	}
	if meta.IsDefined("input") {
		cfg.Input = strings.TrimSpace(raw.Input)
	}
	if meta.IsDefined("max_message_bytes") {
		if raw.MaxMessageBytes <= 0 {
			return dumpConfig{}, fmt.Errorf("max_message_bytes must be positive: %d", raw.MaxMessageBytes)
		}
		cfg.Limits.MaxMessageBytes = uint64(raw.MaxMessageBytes)
	}
	if meta.IsDefined("max_attachment_bytes") {
		if raw.MaxAttachmentBytes <= 0 {
			return dumpConfig{}, fmt.Errorf("max_attachment_bytes must be positive: %d", raw.MaxAttachmentBytes)
		}
		cfg.Limits.MaxAttachmentBytes = uint64(raw.MaxAttachmentBytes)
	}

	if err := validateKind(cfg.Kind); err != nil {
		return dumpConfig{}, err
	}
	return cfg, nil
}

func validateKind(kind string) error {
	switch kind {
	case "group", "contact":
		return nil
	default:
		return fmt.Errorf("unknown record kind %q (want group or contact)", kind)
	}
}
