package config_test

import (
	"testing"

	"github.com/kelvintaywl/prbot/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{
			name:   "Valid level: debug",
			level:  "debug",
			format: "console",
		},
		{
			name:   "Valid level: DEBUG (case insensitive)",
			level:  "DEBUG",
			format: "console",
		},
		{
			name:   "Valid level: info",
			level:  "info",
			format: "console",
		},
		{
			name:   "Valid level: warn",
			level:  "warn",
			format: "json",
		},
		{
			name:   "Valid level: error",
			level:  "error",
			format: "json",
		},
		{
			name:    "Invalid level",
			level:   "verbose",
			format:  "console",
			wantErr: true,
		},
		{
			name:   "Valid format: JSON (case insensitive)",
			level:  "info",
			format: "JSON",
		},
		{
			name:    "Invalid format",
			level:   "info",
			format:  "logfmt",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Logger{
				Level:  tt.level,
				Format: tt.format,
			}

			logger, err := cfg.Configure()
			if (err != nil) != tt.wantErr {
				t.Errorf("Configure() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && logger == nil {
				t.Error("Configure() returned nil logger")
			}
		})
	}
}
