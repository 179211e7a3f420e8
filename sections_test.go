package fonema

import "testing"

func TestSections(t *testing.T) {
	t.Parallel()

	md := "Resumen inicial.\n\n# Capítulo 1\n\nEl Dr. Gil llegó.\n\n## Parte A\n\nTexto.\n"
	got := Sections(md, 1)

	if len(got) != 2 {
		t.Fatalf("Sections() = %d sections, want 2: %#v", len(got), got)
	}
	if got[0].Level != 0 || got[0].Body != "Resumen inicial." {
		t.Errorf("preamble = %#v", got[0])
	}
	if got[1].Title != "Capítulo 1" || got[1].Level != 1 {
		t.Errorf("section = %#v, want Capítulo 1 at level 1", got[1])
	}

	cleaned, err := Clean(got[1].Body)
	if err != nil {
		t.Fatalf("Clean() unexpected error: %v", err)
	}
	if want := "El Doctor Gil llegó. Parte A Texto."; cleaned != want {
		t.Errorf("Clean(body) = %q, want %q", cleaned, want)
	}
}
