package loader

import "testing"

func TestEnvLoader_Load(t *testing.T) {
	t.Setenv("VIMMAPPER_OUTPUT", "/tmp/out.vim")
	t.Setenv("VIMMAPPER_DEBOUNCE", "50ms")
	t.Setenv("VIMMAPPER_FORMAT", "")
	t.Setenv("VIMMAPPER_LOG_LEVEL", "")

	config, err := NewEnvLoader().Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if config["output"] != "/tmp/out.vim" {
		t.Errorf("output = %v", config["output"])
	}
	for _, key := range []string{"format", "log_level"} {
		if v, ok := config[key]; ok {
			t.Errorf("%s = %q; empty variables must fall through to lower layers", key, v)
		}
	}
	watch, ok := config["watch"].(map[string]any)
	if !ok || watch["debounce"] != "50ms" {
		t.Errorf("watch = %v", config["watch"])
	}
	if _, ok := config["declaration"]; ok {
		t.Error("unset variable produced a value")
	}
}

func TestEnvLoader_CustomMapping(t *testing.T) {
	loader := NewEnvLoaderWithMapping(map[string]string{"X": "a.b.c"})
	loader.lookup = func(name string) (string, bool) {
		if name == "X" {
			return "v", true
		}
		return "", false
	}

	config, err := loader.Load()
	if err != nil {
		t.Fatal(err)
	}
	b := config["a"].(map[string]any)["b"].(map[string]any)
	if b["c"] != "v" {
		t.Errorf("a.b.c = %v", b["c"])
	}
}
