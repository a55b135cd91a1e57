package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/younwookim/aquadrift/internal/application/system"
	"github.com/younwookim/aquadrift/internal/infrastructure/settings"
)

// bindFlag collects repeated -bind action=Key1,Key2 overrides
type bindFlag map[string][]string

func (b bindFlag) String() string {
	parts := make([]string, 0, len(b))
	for action, keys := range b {
		parts = append(parts, action+"="+strings.Join(keys, ","))
	}
	return strings.Join(parts, " ")
}

func (b bindFlag) Set(value string) error {
	action, keys, ok := strings.Cut(value, "=")
	action = strings.TrimSpace(action)
	if !ok || action == "" || keys == "" {
		return fmt.Errorf("expected action=Key[,Key], got %q", value)
	}
	var names []string
	for _, k := range strings.Split(keys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			names = append(names, k)
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("no keys for action %q", action)
	}
	b[action] = names
	return nil
}

// resolveBindings layers saved bindings and then flag overrides on top of
// the defaults. Overrides are saved back so they stick for the next run.
// Storage problems are logged and never fatal.
func resolveBindings(store *settings.Settings, overrides bindFlag) (system.Bindings, error) {
	bindings := system.DefaultBindings()

	if store != nil {
		saved, err := store.LoadBindings()
		if err != nil {
			log.Printf("Ignoring saved key bindings: %v", err)
		} else if saved != nil {
			merged, err := bindings.Merge(saved)
			if err != nil {
				log.Printf("Ignoring saved key bindings: %v", err)
			} else {
				bindings = merged
			}
		}
	}

	if len(overrides) == 0 {
		return bindings, nil
	}

	merged, err := bindings.Merge(overrides)
	if err != nil {
		return nil, fmt.Errorf("invalid -bind: %w", err)
	}
	if store != nil {
		if err := store.SaveBindings(merged.Names()); err != nil {
			log.Printf("Failed to save key bindings: %v", err)
		} else {
			log.Printf("Key bindings saved")
		}
	}
	return merged, nil
}
