package middleware

import "testing"

func TestParseWildcardOrigin(t *testing.T) {
	tests := []struct {
		pattern    string
		wantScheme string
		wantSuffix string
	}{
		{"https://*.workwell.io", "https://", ".workwell.io"},
		{"http://*.workwell.localhost", "http://", ".workwell.localhost"},
		{"https://*.workwell-app.pages.dev", "https://", ".workwell-app.pages.dev"},

		// rejected
		{"*.workwell.io", "", ""},
		{"*", "", ""},
		{"https://workwell.*", "", ""},
		{"https://*.*.workwell.io", "", ""},
		{"https://*workwell.io", "", ""},
		{"https://*.io", "", ""},
		{"https://app.workwell.io", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := parseWildcardOrigin(tt.pattern)
			if tt.wantScheme == "" {
				if got != nil {
					t.Errorf("parseWildcardOrigin(%q) = %+v, want nil", tt.pattern, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("parseWildcardOrigin(%q) = nil", tt.pattern)
			}
			if got.scheme != tt.wantScheme || got.suffix != tt.wantSuffix {
				t.Errorf("got (%q, %q), want (%q, %q)", got.scheme, got.suffix, tt.wantScheme, tt.wantSuffix)
			}
		})
	}
}

func TestWildcardOriginMatches(t *testing.T) {
	preview := parseWildcardOrigin("https://*.workwell-app.pages.dev")
	apex := parseWildcardOrigin("https://*.workwell.io")
	if preview == nil || apex == nil {
		t.Fatal("fixture patterns did not parse")
	}

	tests := []struct {
		name   string
		w      *wildcardOrigin
		origin string
		want   bool
	}{
		{"preview deployment", preview, "https://3f9c2a1b.workwell-app.pages.dev", true},
		{"named subdomain", apex, "https://dashboard.workwell.io", true},
		{"scheme mismatch", apex, "http://dashboard.workwell.io", false},
		{"other domain", apex, "https://dashboard.example.com", false},
		{"two labels deep", apex, "https://a.b.workwell.io", false},
		{"bare apex", apex, "https://workwell.io", false},
		{"lookalike host", apex, "https://evilworkwell.io", false},
		{"suffix smuggled mid-host", apex, "https://app.workwell.io.attacker.net", false},
		{"port after host", apex, "https://app.workwell.io:8443", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.w.matches(tt.origin); got != tt.want {
				t.Errorf("matches(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}
