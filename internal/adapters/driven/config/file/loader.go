package file

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/custodia-labs/roadmap-sync/internal/core/domain"
	"github.com/custodia-labs/roadmap-sync/internal/core/ports/driven"
	"github.com/custodia-labs/roadmap-sync/internal/region"
)

// Configuration keys.
const (
	KeySheetID             = "sheet.id"
	KeySheetName           = "sheet.name"
	KeySheetDelimiter      = "sheet.delimiter"
	KeyDocumentIDs         = "documents.ids"
	KeyDocumentConcurrency = "documents.concurrency"
	KeyRepoPath            = "repo.path"
	KeyPrimaryRemote       = "remotes.primary"
	KeySecondaryRemote     = "remotes.secondary"
	KeyCommitTrailer       = "commit.trailer"
	KeyScheduleEnabled     = "schedule.enabled"
	KeyScheduleInterval    = "schedule.interval"

	targetsPrefix = "targets."
)

// LoadSyncConfig builds the sync configuration from store.
// Keys that are absent keep their default; present keys are validated.
func LoadSyncConfig(store driven.ConfigStore) (domain.SyncConfig, error) {
	cfg := domain.DefaultSyncConfig()
	if store == nil {
		return cfg, nil
	}

	var errs []error
	str := func(key string, dst *string) {
		if v, ok, err := stringValue(store, key); err != nil {
			errs = append(errs, err)
		} else if ok {
			*dst = v
		}
	}

	str(KeySheetID, &cfg.SpreadsheetID)
	str(KeySheetName, &cfg.SheetName)
	str(KeyRepoPath, &cfg.RepoPath)
	str(KeyCommitTrailer, &cfg.CommitTrailer)
	remoteKeys := []string{KeyPrimaryRemote, KeySecondaryRemote}
	for i, key := range remoteKeys {
		if i < len(cfg.Remotes) {
			str(key+".name", &cfg.Remotes[i].Name)
			str(key+".refspec", &cfg.Remotes[i].Refspec)
		}
	}
	if err := validateRemotes(remoteKeys, cfg.Remotes); err != nil {
		errs = append(errs, err)
		cfg.Remotes = domain.DefaultSyncConfig().Remotes
	}

	if v, ok, err := stringValue(store, KeySheetDelimiter); err != nil {
		errs = append(errs, err)
	} else if ok {
		if utf8.RuneCountInString(v) != 1 {
			errs = append(errs, invalid(KeySheetDelimiter, "must be a single character, got %q", v))
		} else {
			cfg.Delimiter, _ = utf8.DecodeRuneInString(v)
		}
	}

	if v, ok, err := stringsValue(store, KeyDocumentIDs); err != nil {
		errs = append(errs, err)
	} else if ok {
		cfg.DocumentIDs = v
	}

	if n, ok, err := intValue(store, KeyDocumentConcurrency); err != nil {
		errs = append(errs, err)
	} else if ok {
		if n <= 0 {
			errs = append(errs, invalid(KeyDocumentConcurrency, "must be a positive integer"))
		} else {
			cfg.DocumentConcurrency = n
		}
	}

	if b, ok, err := boolValue(store, KeyScheduleEnabled); err != nil {
		errs = append(errs, err)
	} else if ok {
		cfg.Schedule.Enabled = b
	}

	if v, ok, err := stringValue(store, KeyScheduleInterval); err != nil {
		errs = append(errs, err)
	} else if ok {
		d, perr := time.ParseDuration(v)
		if perr != nil || d <= 0 {
			errs = append(errs, invalid(KeyScheduleInterval, "must be a positive duration, got %q", v))
		} else {
			cfg.Schedule.Interval = d
		}
	}

	targets, err := loadTargets(store, cfg.Targets)
	if err != nil {
		errs = append(errs, err)
	} else {
		cfg.Targets = targets
	}

	return cfg, errors.Join(errs...)
}

// validateRemotes requires every remote to have a name and a refspec, and no
// two remotes to share a name.
func validateRemotes(keys []string, remotes []domain.Remote) error {
	var errs []error
	seen := make(map[string]string, len(remotes))

	for i, remote := range remotes {
		key := fmt.Sprintf("remotes[%d]", i)
		if i < len(keys) {
			key = keys[i]
		}
		switch {
		case strings.TrimSpace(remote.Name) == "":
			errs = append(errs, invalid(key+".name", "must not be empty"))
		case seen[remote.Name] != "":
			errs = append(errs, invalid(key+".name", "%q is already used by %s", remote.Name, seen[remote.Name]))
		default:
			seen[remote.Name] = key
		}
		if strings.TrimSpace(remote.Refspec) == "" {
			errs = append(errs, invalid(key+".refspec", "must not be empty"))
		}
	}

	return errors.Join(errs...)
}

// loadTargets overrides default targets by logical name and appends new ones.
// New targets are added in name order and must set every field.
func loadTargets(store driven.ConfigStore, defaults []domain.TargetFile) ([]domain.TargetFile, error) {
	targets := append([]domain.TargetFile(nil), defaults...)

	index := make(map[string]int, len(targets))
	for i, t := range targets {
		index[t.LogicalName] = i
	}

	for _, name := range targetNames(store) {
		prefix := targetsPrefix + name + "."

		i, exists := index[name]
		if !exists {
			targets = append(targets, domain.TargetFile{LogicalName: name})
			i = len(targets) - 1
			index[name] = i
		}
		t := &targets[i]

		var rendering string
		for key, dst := range map[string]*string{"path": &t.Path, "pattern": &t.Pattern, "rendering": &rendering} {
			v, ok, err := stringValue(store, prefix+key)
			if err != nil {
				return nil, err
			}
			if ok {
				*dst = v
			}
		}
		if rendering != "" {
			t.Rendering = domain.Rendering(rendering)
		}

		if err := validateTarget(*t); err != nil {
			return nil, err
		}
	}

	return targets, nil
}

func targetNames(store driven.ConfigStore) []string {
	seen := make(map[string]bool)
	var names []string
	for _, key := range store.Keys(targetsPrefix) {
		rest := strings.TrimPrefix(key, targetsPrefix)
		name, _, ok := strings.Cut(rest, ".")
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateTarget(t domain.TargetFile) error {
	key := targetsPrefix + t.LogicalName
	if t.Path == "" {
		return invalid(key+".path", "is required")
	}
	if !t.Rendering.IsValid() {
		return invalid(key+".rendering", "unknown rendering %q", t.Rendering)
	}
	if _, err := region.Compile(t.Pattern); err != nil {
		return fmt.Errorf("config %s.pattern: %w", key, err)
	}
	return nil
}

// stringValue returns the value for key, reporting whether it is set.
// A set value of another type is an error.
func stringValue(store driven.ConfigStore, key string) (string, bool, error) {
	raw, ok := store.Lookup(key)
	if !ok {
		return "", false, nil
	}
	v, isString := raw.(string)
	if !isString {
		return "", false, invalid(key, "must be a string, got %T", raw)
	}
	return v, true, nil
}

// intValue accepts the int64 TOML decodes to as well as plain ints.
func intValue(store driven.ConfigStore, key string) (int, bool, error) {
	raw, ok := store.Lookup(key)
	if !ok {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	default:
		return 0, false, invalid(key, "must be an integer, got %T", raw)
	}
}

func boolValue(store driven.ConfigStore, key string) (bool, bool, error) {
	raw, ok := store.Lookup(key)
	if !ok {
		return false, false, nil
	}
	v, isBool := raw.(bool)
	if !isBool {
		return false, false, invalid(key, "must be true or false, got %T", raw)
	}
	return v, true, nil
}

// stringsValue accepts []string and the []any TOML arrays decode to,
// provided every element is a string.
func stringsValue(store driven.ConfigStore, key string) ([]string, bool, error) {
	raw, ok := store.Lookup(key)
	if !ok {
		return nil, false, nil
	}
	switch v := raw.(type) {
	case []string:
		return append([]string{}, v...), true, nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, isString := item.(string)
			if !isString {
				return nil, false, invalid(key, "element %d must be a string, got %T", i, item)
			}
			out = append(out, s)
		}
		return out, true, nil
	default:
		return nil, false, invalid(key, "must be a list of strings, got %T", raw)
	}
}

func invalid(key, format string, args ...any) error {
	return fmt.Errorf("%w: config %s: %s", domain.ErrInvalidInput, key, fmt.Sprintf(format, args...))
}

// Values renders cfg as dot-notation keys, the inverse of LoadSyncConfig.
func Values(cfg domain.SyncConfig) map[string]any {
	values := map[string]any{
		KeySheetID:             cfg.SpreadsheetID,
		KeySheetName:           cfg.SheetName,
		KeySheetDelimiter:      string(cfg.Delimiter),
		KeyDocumentIDs:         append([]string{}, cfg.DocumentIDs...),
		KeyDocumentConcurrency: cfg.DocumentConcurrency,
		KeyRepoPath:            cfg.RepoPath,
		KeyCommitTrailer:       cfg.CommitTrailer,
		KeyScheduleEnabled:     cfg.Schedule.Enabled,
		KeyScheduleInterval:    cfg.Schedule.Interval.String(),
	}

	for _, t := range cfg.Targets {
		prefix := targetsPrefix + t.LogicalName + "."
		values[prefix+"path"] = t.Path
		values[prefix+"pattern"] = t.Pattern
		values[prefix+"rendering"] = string(t.Rendering)
	}

	for i, key := range []string{KeyPrimaryRemote, KeySecondaryRemote} {
		if i >= len(cfg.Remotes) {
			break
		}
		values[key+".name"] = cfg.Remotes[i].Name
		values[key+".refspec"] = cfg.Remotes[i].Refspec
	}

	return values
}
