package db

import "testing"

func TestNormalizeDSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"url form untouched", "postgres://u:p@localhost:5432/oferta?sslmode=disable",
			"postgres://u:p@localhost:5432/oferta?sslmode=disable"},
		{"quotes trimmed", `"postgres://u@localhost/oferta"`, "postgres://u@localhost/oferta"},
		{"kv form gets sslmode default", "host=localhost user=oferta dbname=oferta",
			"host=localhost user=oferta dbname=oferta sslmode=disable"},
		{"kv form with sslmode kept", "host=localhost dbname=oferta sslmode=require",
			"host=localhost dbname=oferta sslmode=require"},
		{"spaces collapsed", "host=localhost   dbname=oferta  sslmode=disable",
			"host=localhost dbname=oferta sslmode=disable"},
		{"non-dsn passes through", "oferta.db", "oferta.db"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDSN(tt.in); got != tt.want {
				t.Errorf("NormalizeDSN(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
