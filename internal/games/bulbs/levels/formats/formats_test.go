package formats

import (
	"errors"
	"testing"
)

func TestParseSKBHeader(t *testing.T) {
	src := "; id: lvl09\n; name: Corner Case\r\n; author: vk\n; difficulty: hard\n; just a note\n#####\n#a.z#\n#####\n"

	lvl, err := ParseSKB([]byte(src))
	if err != nil {
		t.Fatalf("ParseSKB failed: %v", err)
	}
	if lvl.ID != "lvl09" || lvl.Name != "Corner Case" || lvl.Author != "vk" {
		t.Errorf("header = %q/%q/%q", lvl.ID, lvl.Name, lvl.Author)
	}
	if lvl.Metadata["difficulty"] != "hard" {
		t.Errorf("metadata = %v", lvl.Metadata)
	}
	if string(lvl.Grid) != "#####\n#a.z#\n#####\n" {
		t.Errorf("grid = %q", lvl.Grid)
	}
}

func TestParseSKBWithoutHeader(t *testing.T) {
	lvl, err := ParseSKB([]byte("#a#"))
	if err != nil {
		t.Fatalf("ParseSKB failed: %v", err)
	}
	if lvl.ID != "" || string(lvl.Grid) != "#a#" {
		t.Errorf("got %+v", lvl)
	}
}

func TestParseNoGrid(t *testing.T) {
	testCases := []struct {
		name string
		ext  string
		data string
	}{
		{"skb header only", ".skb", "; name: Nothing\n"},
		{"skb blank", ".skb", "\n\n"},
		{"yaml without grid", ".yaml", "id: x\nname: y\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), tc.ext)
			if !errors.Is(err, ErrNoGrid) {
				t.Errorf("expected ErrNoGrid, got %v", err)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	src := "id: lvl05\nname: Tower\nmetadata:\n  par: \"12\"\ngrid: |\n  #####\n  #a.z#\n  #####\n"

	lvl, err := Parse([]byte(src), ".YML")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if lvl.ID != "lvl05" || lvl.Name != "Tower" {
		t.Errorf("got id %q name %q", lvl.ID, lvl.Name)
	}
	if string(lvl.Grid) != "#####\n#a.z#\n#####\n" {
		t.Errorf("grid = %q", lvl.Grid)
	}
	if lvl.Metadata["par"] != "12" {
		t.Errorf("metadata = %v", lvl.Metadata)
	}
}

func TestParseUnsupported(t *testing.T) {
	if _, err := Parse([]byte("#a#"), ".json"); err == nil {
		t.Error("expected error for .json")
	}
	if Supported(".json") || !Supported(".SKB") {
		t.Error("Supported disagrees with FormatExtensions")
	}
}
