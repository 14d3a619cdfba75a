package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestPrettyJSONHandler(t *testing.T) {
	tests := []struct {
		name        string
		prettyPrint bool
	}{
		{
			name:        "pretty print enabled",
			prettyPrint: true,
		},
		{
			name:        "pretty print disabled",
			prettyPrint: false,
		},
	}

	fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	expectedData := map[string]interface{}{
		"level": "INFO",
		"msg":   "test message",
		"time":  "2024-01-01T00:00:00Z",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			opts := &PrettyJSONHandlerOptions{
				HandlerOptions: slog.HandlerOptions{
					ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
						if a.Key == "time" {
							return slog.Time(a.Key, fixedTime)
						}
						return a
					},
				},
				PrettyPrint: tt.prettyPrint,
			}

			logger := slog.New(NewPrettyJSONHandler(buf, opts))
			logger.Info("test message")

			got := make(map[string]interface{})
			if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}

			for key, want := range expectedData {
				if got[key] != want {
					t.Errorf("got %q=%v, want %v", key, got[key], want)
				}
			}

			indented := strings.Contains(buf.String(), "\n  ")
			if indented != tt.prettyPrint {
				t.Errorf("got indented=%v, want %v", indented, tt.prettyPrint)
			}
		})
	}
}
