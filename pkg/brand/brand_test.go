package brand

import (
	"reflect"
	"sort"
	"testing"
)

func TestGet(t *testing.T) {
	b, ok := Get("DeWalt")
	if !ok {
		t.Fatal("DeWalt should be registered")
	}
	if b.Palette.Primary != "#febd17" {
		t.Errorf("unexpected DeWalt primary: %s", b.Palette.Primary)
	}

	if _, ok := Get("NotARealBrand"); ok {
		t.Error("unknown brand should not resolve")
	}
}

func TestGetOrDefaultFallsBack(t *testing.T) {
	b := GetOrDefault("NotARealBrand")
	def, _ := Get(DefaultName)
	if !reflect.DeepEqual(b, def) {
		t.Error("unknown brand should fall back to the default brand")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 7 {
		t.Fatalf("expected 7 brands, got %d", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("names should be sorted: %v", names)
	}
}

func TestVoltagesFor(t *testing.T) {
	tests := []struct {
		name    string
		brand   string
		current int
		want    []int
	}{
		{"voltage already offered", "Makita", 18, []int{12, 18, 40}},
		{"legacy voltage kept", "DeWalt", 18, []int{12, 18, 20, 60}},
		{"legacy voltage sorted first", "Hikoki", 12, []int{12, 18, 36}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := Get(tt.brand)
			if !ok {
				t.Fatalf("brand %s not registered", tt.brand)
			}
			got := VoltagesFor(b, tt.current)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("VoltagesFor(%s, %d) = %v, want %v", tt.brand, tt.current, got, tt.want)
			}
		})
	}
}
