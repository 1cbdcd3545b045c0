package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// StructuredFileConfig is the layout of JSON and TOML config files.
type StructuredFileConfig struct {
	Realms struct {
		Platform       string   `json:"platform" toml:"platform"`
		Host           string   `json:"host" toml:"host"`
		MaxRetries     *int     `json:"max_retries" toml:"max_retries"`
		RetryBaseDelay Duration `json:"retry_base_delay" toml:"retry_base_delay"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		SkipAuth       bool     `json:"skip_auth" toml:"skip_auth"`
	} `json:"realms,omitempty" toml:"realms"`

	Auth struct {
		XboxUserHash    string `json:"xbox_user_hash" toml:"xbox_user_hash"`
		XSTSToken       string `json:"xsts_token" toml:"xsts_token"`
		JavaAccessToken string `json:"java_access_token" toml:"java_access_token"`
		JavaProfileID   string `json:"java_profile_id" toml:"java_profile_id"`
		JavaProfileName string `json:"java_profile_name" toml:"java_profile_name"`
	} `json:"auth,omitempty" toml:"auth"`

	Download struct {
		Dir string `json:"dir" toml:"dir"`
	} `json:"download,omitempty" toml:"download"`

	Log struct {
		Level string `json:"level" toml:"level"`
	} `json:"log,omitempty" toml:"log"`
}

// parseFile reads a config file. Files ending in .toml are decoded as TOML,
// anything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	var fileCfg StructuredFileConfig

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error reading a json file: %w", err)
		}
		defer f.Close()

		if err = json.NewDecoder(f).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		Realms: Realms{
			Platform:       fileCfg.Realms.Platform,
			Host:           fileCfg.Realms.Host,
			MaxRetries:     fileCfg.Realms.MaxRetries,
			RetryBaseDelay: time.Duration(fileCfg.Realms.RetryBaseDelay),
			RequestTimeout: time.Duration(fileCfg.Realms.RequestTimeout),
			SkipAuth:       fileCfg.Realms.SkipAuth,
		},
		Auth: Auth{
			XboxUserHash:    fileCfg.Auth.XboxUserHash,
			XSTSToken:       fileCfg.Auth.XSTSToken,
			JavaAccessToken: fileCfg.Auth.JavaAccessToken,
			JavaProfileID:   fileCfg.Auth.JavaProfileID,
			JavaProfileName: fileCfg.Auth.JavaProfileName,
		},
		Download: Download{
			Dir: fileCfg.Download.Dir,
		},
		Log: Log{
			Level: fileCfg.Log.Level,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes strings like "1h"
// or "30s" from JSON and TOML, and nanosecond numbers from JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
