package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/fractals/internal/core"
)

type stubGenerator struct {
	length float64
}

func (s *stubGenerator) ID() string    { return "stub" }
func (s *stubGenerator) Title() string { return "Stub Curve" }
func (s *stubGenerator) Level() int    { return 0 }
func (s *stubGenerator) Generate(level int) ([]core.Segment, error) {
	if level < 0 {
		return nil, core.ErrInvalidLevel
	}
	return []core.Segment{{Length: s.length}}, nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register(Info{ID: "stub-test", InitLength: 7, DefaultLevel: 3}, func(l float64) Generator {
		return &stubGenerator{length: l}
	})

	if !Exists("stub-test") {
		t.Fatal("Exists() = false after Register")
	}

	info, ok := Lookup("stub-test")
	if !ok {
		t.Fatal("Lookup() failed")
	}
	if info.Title != "Stub Curve" {
		t.Errorf("Title = %q, expected title filled from instance", info.Title)
	}

	g, err := Create("stub-test", 0)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	segs, _ := g.Generate(0)
	if segs[0].Length != 7 {
		t.Errorf("default init length = %v, expected 7", segs[0].Length)
	}

	g, _ = Create("stub-test", 2.5)
	segs, _ = g.Generate(0)
	if segs[0].Length != 2.5 {
		t.Errorf("explicit init length = %v, expected 2.5", segs[0].Length)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-curve", 1)
	if err == nil {
		t.Fatal("expected error for unknown curve")
	}
	if !errors.Is(err, core.ErrConfig) {
		t.Errorf("error should be a configuration error, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(l float64) Generator { return &stubGenerator{length: l} }
	Register(Info{ID: "stub-dup", Title: "Dup"}, f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(Info{ID: "stub-dup", Title: "Dup"}, f)
}

func TestListSorted(t *testing.T) {
	f := func(l float64) Generator { return &stubGenerator{length: l} }
	Register(Info{ID: "zz-last", Title: "Z"}, f)
	Register(Info{ID: "aa-first", Title: "A"}, f)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted at %d: %q >= %q", i, list[i-1].ID, list[i].ID)
		}
	}
}
