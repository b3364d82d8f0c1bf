package keywords

import (
	"testing"

	"github.com/nutrireco/go-reco-engine/config"
)

func TestNewMatcher(t *testing.T) {
	t.Run("valid table", func(t *testing.T) {
		m, err := NewMatcher(map[string]string{
			"vitamin_c": `(?:비타민\s*c|vitamin\s*c|ascorbic)`,
			"melatonin": `(?:멜라토닌|melatonin)`,
		})
		if err != nil {
			t.Fatalf("NewMatcher() error = %v", err)
		}
		keys := m.Keys()
		if len(keys) != 2 || keys[0] != "melatonin" || keys[1] != "vitamin_c" {
			t.Errorf("Keys() = %v, want sorted [melatonin vitamin_c]", keys)
		}
	})

	t.Run("empty table", func(t *testing.T) {
		if _, err := NewMatcher(nil); err == nil {
			t.Error("NewMatcher(nil) should fail")
		}
	})

	t.Run("bad pattern", func(t *testing.T) {
		if _, err := NewMatcher(map[string]string{"bad": `(?:unclosed`}); err == nil {
			t.Error("NewMatcher() should reject an invalid pattern")
		}
	})
}

func TestMatch(t *testing.T) {
	m, err := NewMatcher(map[string]string{
		"vitamin_c": `(?:비타민\s*c|vitamin\s*c|ascorbic)`,
		"melatonin": `(?:멜라토닌|melatonin)`,
		"omega3":    `(?:오메가\s*3|omega\s*3|epa|dha)`,
	})
	if err != nil {
		t.Fatalf("NewMatcher() error = %v", err)
	}

	tests := []struct {
		name string
		text string
		want map[string]int
	}{
		{
			name: "korean vitamin c hit",
			text: "고함량 비타민 c 1000mg",
			want: map[string]int{"vitamin_c": 1, "melatonin": 0, "omega3": 0},
		},
		{
			name: "english synonym hit",
			text: "pure ascorbic acid powder",
			want: map[string]int{"vitamin_c": 1, "melatonin": 0, "omega3": 0},
		},
		{
			name: "multiple hits",
			text: "비타민c와 오메가3 epa dha 함유",
			want: map[string]int{"vitamin_c": 1, "melatonin": 0, "omega3": 1},
		},
		{
			name: "no hits",
			text: "칼슘 마그네슘 아연",
			want: map[string]int{"vitamin_c": 0, "melatonin": 0, "omega3": 0},
		},
		{
			name: "empty text",
			text: "",
			want: map[string]int{"vitamin_c": 0, "melatonin": 0, "omega3": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.text)
			for key, want := range tt.want {
				if got[key] != want {
					t.Errorf("Match(%q)[%s] = %d, want %d", tt.text, key, got[key], want)
				}
			}
		})
	}
}

func TestMatch_IndicatorsBinary(t *testing.T) {
	profile := config.DefaultProfiles()["supplement"]
	m, err := NewMatcher(profile.Keywords)
	if err != nil {
		t.Fatalf("NewMatcher() on default table error = %v", err)
	}

	texts := []string{
		"고함량 비타민 c 1000mg",
		"비타민c 비타민c 비타민c", // repeated match must still be 1
		"홍삼 녹차 카테킨 루테인 콜라겐",
		"",
	}
	for _, text := range texts {
		for key, v := range m.Match(text) {
			if v != 0 && v != 1 {
				t.Errorf("indicator for %s on %q = %d, want 0 or 1", key, text, v)
			}
		}
	}
}
