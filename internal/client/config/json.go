package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations may
// be given as strings like "15s" or as integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL  string   `json:"server_base_url"`
	RequestTimeout Duration `json:"request_timeout"`
	StateDBPath    string   `json:"state_db_path"`
}

// Duration wraps time.Duration with flexible JSON decoding.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case float64:
		d.Duration = time.Duration(val)
		return nil
	case string:
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration value: %v", v)
	}
}

// jsonConfigFile extracts the config file path from the -c/-config flags,
// ignoring every other argument. Returns "" when neither is present.
func jsonConfigFile() string {
	var path string

	args := filterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return path
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c/-config flag. Empty JSON fields leave the current values alone. Panics
// on read or unmarshal errors; intended usage is defaults -> parseJson ->
// parseFlags.
func parseJson(cfg *Config) {
	file := jsonConfigFile()
	if file == "" {
		return
	}

	data, err := os.ReadFile(file)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StateDBPath != "" {
		cfg.StateDBPath = jc.StateDBPath
	}
}
