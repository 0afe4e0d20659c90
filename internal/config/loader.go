package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var current Settings

func Get() Settings { return current }

// LoadDefaultsAndFiles parses the defaults and overlays each YAML file on top
// of them in lexical order. Later files win for every field they set.
func LoadDefaultsAndFiles(defaultsYAML []byte, files []string) (Settings, error) {
	var base Settings
	if len(defaultsYAML) > 0 {
		if err := decodeStrict(defaultsYAML, &base); err != nil {
			return Settings{}, fmt.Errorf("defaults: %w", err)
		}
	}
	merged := base
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Settings{}, err
		}
		var part Settings
		if err := decodeStrict(b, &part); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", f, err)
		}
		merged = mergeSettings(merged, part)
	}
	current = merged
	return merged, nil
}

func decodeStrict(b []byte, out *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func mergeSettings(base, overlay Settings) Settings {
	out := base
	if overlay.Color != "" {
		out.Color = overlay.Color
	}
	if overlay.Verbose != nil {
		v := *overlay.Verbose
		out.Verbose = &v
	}
	if overlay.LogFile != "" {
		out.LogFile = overlay.LogFile
	}
	return out
}
