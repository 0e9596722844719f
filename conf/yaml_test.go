package conf

import (
	"strings"
	"testing"
)

func TestYAMLRoundTrip(t *testing.T) {
	s := NewSection()
	s.Set("zeta", 1)
	s.Set("alpha", "two")
	sub := s.CreateSection("nested")
	sub.Set("list", []any{1, 2, 3})
	sub.Set("flag", true)

	d, err := ToYAML(s)
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if !s.Equal(back) {
		t.Fatalf("round trip not equal:\n%s", d)
	}

	// Key order survives the text form.
	keys := back.Keys()
	want := []string{"zeta", "alpha", "nested"}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestFromYAMLIntNormalization(t *testing.T) {
	s, err := FromYAML([]byte("small: 3\nbig: 5000000000\n"))
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if _, ok := s.Get("small").(int); !ok {
		t.Errorf("small = %T, want int", s.Get("small"))
	}
	if _, ok := s.Get("big").(int); !ok {
		t.Errorf("big = %T, want int", s.Get("big"))
	}
}

func TestFromYAMLAcceptsJSON(t *testing.T) {
	s, err := FromYAML([]byte(`{"a": {"b": [1, 2]}, "c": "x"}`))
	if err != nil {
		t.Fatalf("FromYAML(json): %v", err)
	}
	sub := s.GetSection("a")
	if sub == nil {
		t.Fatalf("a should be a section, got %T", s.Get("a"))
	}
	if l, ok := sub.Get("b").([]any); !ok || len(l) != 2 {
		t.Errorf("a.b = %v", sub.Get("b"))
	}
}

func TestFromYAMLRejectsNonStringKeys(t *testing.T) {
	_, err := FromYAML([]byte("1: x\n"))
	if err == nil || !strings.Contains(err.Error(), "non-string key") {
		t.Errorf("FromYAML(int key) = %v, want non-string key error", err)
	}
}

type yamlThing struct {
	Level int32
	Owner string
}

func (y *yamlThing) SerialAlias() string { return "test.Thing" }
func (y *yamlThing) Serialize() map[string]any {
	return map[string]any{"level": y.Level, "owner": y.Owner}
}

func TestYAMLSerializedObject(t *testing.T) {
	s := NewSection()
	s.Set("thing", &yamlThing{Level: 3, Owner: "ada"})

	d, err := ToYAML(s)
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	text := string(d)
	if !strings.Contains(text, MarkerKey) {
		t.Errorf("serialized object should carry marker key:\n%s", text)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	sub := back.GetSection("thing")
	if sub == nil {
		t.Fatalf("thing should load as a plain section")
	}
	if sub.Get(MarkerKey) != "test.Thing" {
		t.Errorf("marker value = %v", sub.Get(MarkerKey))
	}
}

func TestSectionJSONOrdered(t *testing.T) {
	s := NewSection()
	s.Set("z", 1)
	s.Set("a", "x")
	sub := s.CreateSection("m")
	sub.Set("k", []any{true, false})

	d, err := ToJSON(s)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	want := `{"z":1,"a":"x","m":{"k":[true,false]}}`
	if string(d) != want {
		t.Errorf("ToJSON = %s, want %s", d, want)
	}
}
