package modules

import "testing"

func TestDefaultModules(t *testing.T) {
	t.Parallel()

	want := []string{"public", "gallery", "contact", "preferences"}
	got := Default()
	if len(got) != len(want) {
		t.Fatalf("module count = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID() != id {
			t.Fatalf("module[%d] = %q, want %q", i, got[i].ID(), id)
		}
	}
}
