package settings

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/vrslev/pi-guard/internal/autonomy"
)

const levelKey = "autonomyLevel"

// EnvOverride is the environment variable that overrides the persisted
// level for reads only (spec.md §4.6, §6).
const EnvOverride = "AUTONOMY_LEVEL"

// Record is the settings store's in-memory value. Level is the effective
// level callers should use for decisions; Persisted is what Save writes to
// disk. They differ only when AUTONOMY_LEVEL overrides the read (DESIGN.md
// Open Question 1: the override is never written back).
type Record struct {
	Level      autonomy.Level
	Persisted  autonomy.Level
	Overridden bool

	preserved map[string]json.RawMessage
}

// Load reads the settings file at path. found is false when no file
// exists yet; callers then fall back to the Decision Engine's own
// first-run behaviour (spec.md §4.8 state machine). Any AUTONOMY_LEVEL
// environment override is applied to the returned Level, never to
// Persisted.
func Load(path string) (rec Record, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		rec = Record{Level: autonomy.High, Persisted: autonomy.High}
		applyEnvOverride(&rec)
		return rec, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Record{}, false, err
	}

	rec = Record{Level: autonomy.High, Persisted: autonomy.High, preserved: raw}
	if lvlRaw, ok := raw[levelKey]; ok {
		var s string
		if err := json.Unmarshal(lvlRaw, &s); err == nil {
			if lvl, err := autonomy.ParseLevel(s); err == nil {
				rec.Level = lvl
				rec.Persisted = lvl
			}
		}
	}

	applyEnvOverride(&rec)
	return rec, true, nil
}

func applyEnvOverride(rec *Record) {
	v := os.Getenv(EnvOverride)
	if v == "" {
		return
	}
	if lvl, err := autonomy.ParseLevel(v); err == nil {
		rec.Level = lvl
		rec.Overridden = true
	}
}

// Save writes Persisted to path, preserving any unrecognised top-level
// keys from the last Load untouched. A failed Save is a PersistFailure
// (spec.md §7): callers must swallow the error and keep the in-memory
// state, only logging a warning.
func (r Record) Save(path string) error {
	out := make(map[string]json.RawMessage, len(r.preserved)+1)
	for k, v := range r.preserved {
		out[k] = v
	}
	levelJSON, err := json.Marshal(r.Persisted.String())
	if err != nil {
		return err
	}
	out[levelKey] = levelJSON

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Escalate raises both Level and Persisted to lvl and returns the updated
// record; it never lowers the level (escalation only raises, per spec.md
// §4.8 step 7).
func (r Record) Escalate(lvl autonomy.Level) Record {
	r.Level = autonomy.Max(r.Level, lvl)
	r.Persisted = autonomy.Max(r.Persisted, lvl)
	r.Overridden = false
	return r
}

// Set explicitly assigns a level (the CLI's `level set`) and clears the
// returned record's Overridden flag. A later Load still applies
// AUTONOMY_LEVEL if it is set.
func (r Record) Set(lvl autonomy.Level) Record {
	r.Level = lvl
	r.Persisted = lvl
	r.Overridden = false
	return r
}
