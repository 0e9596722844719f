package conf

import (
	"errors"
	"testing"
)

func TestSectionOrder(t *testing.T) {
	s := NewSection()
	s.Set("z", 1)
	s.Set("a", 2)
	s.Set("m", 3)
	s.Set("a", 4) // replace keeps position

	want := []string{"z", "a", "m"}
	keys := s.Keys()
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
	if s.Get("a") != 4 {
		t.Errorf("Get(a) = %v, want 4", s.Get("a"))
	}
}

func TestSetNilRemoves(t *testing.T) {
	s := NewSection()
	s.Set("k", "v")
	s.Set("k", nil)
	if s.Has("k") {
		t.Errorf("Set(k, nil) should remove the key")
	}
}

func TestCreateSectionLinksParent(t *testing.T) {
	root := NewSection()
	child := root.CreateSection("wand")
	child.Set("power", int32(9))

	// Writes through the child are visible from the root with no
	// commit step.
	got := root.GetSection("wand")
	if got == nil || got.Get("power") != int32(9) {
		t.Fatalf("write through child not visible from root")
	}
	if child.Parent() != root {
		t.Errorf("child parent not set")
	}
	if child.Path() != "wand" {
		t.Errorf("Path() = %q, want wand", child.Path())
	}
	grand := child.CreateSection("spells")
	if grand.Path() != "wand.spells" {
		t.Errorf("Path() = %q, want wand.spells", grand.Path())
	}
}

func TestSectionEqualHash(t *testing.T) {
	a := NewSection()
	a.Set("x", int32(1))
	sub := a.CreateSection("sub")
	sub.Set("list", []any{"p", "q"})

	b := NewSection()
	bsub := b.CreateSection("sub")
	bsub.Set("list", []any{"p", "q"})
	b.Set("x", int32(1))

	if !a.Equal(b) {
		t.Fatalf("structurally equal sections reported unequal")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("equal sections should hash equal")
	}

	bsub.Set("list", []any{"q", "p"})
	if a.Equal(b) {
		t.Errorf("sequence order should be significant")
	}
}

func TestCloneDetachesAndCopies(t *testing.T) {
	root := NewSection()
	sub := root.CreateSection("sub")
	sub.Set("arr", []byte{1, 2})

	cp := sub.Clone()
	if cp.Parent() != nil {
		t.Errorf("clone should be detached")
	}
	cp.Get("arr").([]byte)[0] = 9
	if sub.Get("arr").([]byte)[0] != 1 {
		t.Errorf("clone shares array with original")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	first := func(data *Section) (Serializable, error) { return nil, errors.New("unused") }
	if err := r.Register("app.Thing", first); err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("duplicate alias", func(t *testing.T) {
		err := r.Register("app.Thing", func(data *Section) (Serializable, error) { return nil, nil })
		var ce *CollisionError
		if !errors.As(err, &ce) {
			t.Fatalf("duplicate Register = %v, want CollisionError", err)
		}
		if ce.Alias != "app.Thing" {
			t.Errorf("CollisionError alias = %q", ce.Alias)
		}
		// First binding stays intact.
		f, ok := r.Lookup("app.Thing")
		if !ok || f == nil {
			t.Fatalf("first binding lost")
		}
		if _, err := f(nil); err == nil || err.Error() != "unused" {
			t.Errorf("lookup returned the second factory")
		}
	})

	t.Run("unknown alias", func(t *testing.T) {
		if _, ok := r.Lookup("app.Other"); ok {
			t.Errorf("Lookup(app.Other) should miss")
		}
	})

	t.Run("empty alias", func(t *testing.T) {
		if err := r.Register("", first); err == nil {
			t.Errorf("empty alias should be rejected")
		}
	})
}
