package customdata

import (
	"errors"
	"testing"

	"github.com/mineworks/tagconf/codec"
	"github.com/mineworks/tagconf/conf"
	"github.com/mineworks/tagconf/tag"
)

var testReserved = Reserved{
	Tree: NewKeySet("display", "ench", "repairCost"),
	Map:  NewKeySet("display-name", "enchants", "repair-cost"),
}

func itemTree() *tag.Node {
	root := tag.NewCompound()
	display := tag.NewCompound()
	display.Set("Name", tag.FromString("Sword"))
	root.Set("display", display)
	root.Set("repairCost", tag.FromInt(3))
	root.Set("mod.power", tag.FromInt(42))
	root.Set("mod.tags", tag.FromString("sharp"))
	return root
}

func TestExtractFromTree(t *testing.T) {
	c := codec.New()
	v, err := ExtractFromTree(c, itemTree(), testReserved.Tree)
	if err != nil {
		t.Fatalf("ExtractFromTree: %v", err)
	}
	if v == nil {
		t.Fatalf("custom keys present, view should not be nil")
	}
	keys := v.Keys()
	want := []string{"mod.power", "mod.tags"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
	if v.Get("mod.power") != int32(42) {
		t.Errorf("mod.power = %v", v.Get("mod.power"))
	}
}

func TestExtractFromTreeEmpty(t *testing.T) {
	c := codec.New()
	root := tag.NewCompound()
	root.Set("display", tag.NewCompound())

	v, err := ExtractFromTree(c, root, testReserved.Tree)
	if err != nil {
		t.Fatalf("ExtractFromTree: %v", err)
	}
	if v != nil {
		t.Errorf("all keys reserved, view should be nil")
	}
}

func TestExtractFromMap(t *testing.T) {
	m := map[string]any{
		conf.MarkerKey: "app.Item",
		"display-name": "Sword",
		"mod.power":    int32(42),
		"mod.inner":    map[string]any{"a": int32(1)},
	}
	v, err := ExtractFromMap(m, testReserved.Map)
	if err != nil {
		t.Fatalf("ExtractFromMap: %v", err)
	}
	if v == nil {
		t.Fatalf("custom keys present, view should not be nil")
	}
	if v.Get("mod.power") != int32(42) {
		t.Errorf("mod.power = %v", v.Get("mod.power"))
	}
	if v.section.Has("display-name") || v.section.Has(conf.MarkerKey) {
		t.Errorf("reserved or marker key leaked into view: %v", v.Keys())
	}
	inner := v.section.GetSection("mod.inner")
	if inner == nil || inner.Get("a") != int32(1) {
		t.Errorf("mod.inner = %v", v.Get("mod.inner"))
	}
}

func TestExtractFromMapCopies(t *testing.T) {
	arr := []byte{1, 2}
	m := map[string]any{"mod.blob": arr}
	v, err := ExtractFromMap(m, testReserved.Map)
	if err != nil {
		t.Fatalf("ExtractFromMap: %v", err)
	}
	arr[0] = 9
	if v.Get("mod.blob").([]byte)[0] != 1 {
		t.Errorf("view aliases caller byte slice")
	}
}

func TestApplyToTree(t *testing.T) {
	c := codec.New()
	root := itemTree()

	v := NewView()
	v.Set("mod.power", int32(100))
	v.Set("mod.label", "renamed")
	v.Set("mod.tags", nil) // absence removes

	if err := v.ApplyToTree(c, root, testReserved.Tree, true); err != nil {
		t.Fatalf("ApplyToTree: %v", err)
	}
	if got := root.Get("mod.power"); got == nil || got.Int != 100 {
		t.Errorf("mod.power = %v", got)
	}
	if got := root.Get("mod.label"); got == nil || got.String != "renamed" {
		t.Errorf("mod.label = %v", got)
	}
	if root.Has("mod.tags") {
		t.Errorf("nil value should remove its key")
	}
	// Reserved keys stay untouched.
	if got := root.Get("repairCost"); got == nil || got.Int != 3 {
		t.Errorf("repairCost = %v", got)
	}
}

func TestSetNilStagesRemoval(t *testing.T) {
	c := codec.New()

	t.Run("removes existing tree key", func(t *testing.T) {
		root := itemTree()
		v := NewView()
		v.Set("mod.power", nil)
		if v.Has("mod.power") {
			t.Errorf("nulled key still visible in view")
		}
		if err := v.ApplyToTree(c, root, testReserved.Tree, true); err != nil {
			t.Fatalf("ApplyToTree: %v", err)
		}
		if root.Has("mod.power") {
			t.Errorf("nulled key should be deleted from the tree")
		}
	})

	t.Run("re-set cancels the deletion", func(t *testing.T) {
		root := itemTree()
		v := NewView()
		v.Set("mod.tags", nil)
		v.Set("mod.tags", "dull")
		if err := v.ApplyToTree(c, root, testReserved.Tree, true); err != nil {
			t.Fatalf("ApplyToTree: %v", err)
		}
		if got := root.Get("mod.tags"); got == nil || got.String != "dull" {
			t.Errorf("mod.tags = %v, want dull", got)
		}
	})

	t.Run("reserved deletion hits the collision guard", func(t *testing.T) {
		root := itemTree()
		before := root.Clone()
		v := NewView()
		v.Set("display", nil)
		err := v.ApplyToTree(c, root, testReserved.Tree, true)
		var ce *CollisionError
		if !errors.As(err, &ce) {
			t.Fatalf("ApplyToTree = %v, want CollisionError", err)
		}
		if !tag.Equal(root, before) {
			t.Errorf("failed apply mutated the tree")
		}
	})
}

func TestApplyToTreeCollision(t *testing.T) {
	c := codec.New()
	root := itemTree()
	before := root.Clone()

	v := NewView()
	v.Set("mod.ok", int32(1))
	v.Set("display", "clobber")

	err := v.ApplyToTree(c, root, testReserved.Tree, true)
	var ce *CollisionError
	if !errors.As(err, &ce) {
		t.Fatalf("ApplyToTree = %v, want CollisionError", err)
	}
	if ce.Key != "display" {
		t.Errorf("CollisionError key = %q", ce.Key)
	}
	if !tag.Equal(root, before) {
		t.Errorf("failed apply mutated the tree")
	}
}

func TestApplyToTreeAtomic(t *testing.T) {
	c := codec.New()
	root := itemTree()
	before := root.Clone()

	v := NewView()
	v.Set("mod.good", int32(1))
	v.Set("mod.bad", struct{ X int }{}) // not encodable

	err := v.ApplyToTree(c, root, testReserved.Tree, true)
	var ee *codec.EncodingError
	if !errors.As(err, &ee) {
		t.Fatalf("ApplyToTree = %v, want EncodingError", err)
	}
	if !tag.Equal(root, before) {
		t.Errorf("partial apply leaked into the tree")
	}
}

func TestViewEqualHash(t *testing.T) {
	a := NewView()
	a.Set("x", int32(1))
	a.Set("y", "s")

	b := NewView()
	b.Set("y", "s")
	b.Set("x", int32(1))

	if !a.Equal(b) {
		t.Fatalf("views with same data should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("equal views should hash equal")
	}
	b.Set("x", int32(2))
	if a.Equal(b) {
		t.Errorf("differing views reported equal")
	}
}

func TestStore(t *testing.T) {
	c := codec.New()

	t.Run("has custom data", func(t *testing.T) {
		s := NewStore(itemTree(), c, testReserved)
		if !s.HasCustomData() {
			t.Errorf("tree has custom keys")
		}
		bare := tag.NewCompound()
		bare.Set("display", tag.NewCompound())
		if NewStore(bare, c, testReserved).HasCustomData() {
			t.Errorf("all-reserved tree reported custom data")
		}
	})

	t.Run("round trip through save", func(t *testing.T) {
		root := itemTree()
		s := NewStore(root, c, testReserved)
		v, err := s.CustomData()
		if err != nil {
			t.Fatalf("CustomData: %v", err)
		}
		v.Set("mod.power", int32(7))
		if err := s.Save(v); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if got := root.Get("mod.power"); got == nil || got.Int != 7 {
			t.Errorf("mod.power = %v", got)
		}
	})

	t.Run("empty view for bare tree", func(t *testing.T) {
		s := NewStore(tag.NewCompound(), c, testReserved)
		v, err := s.CustomData()
		if err != nil {
			t.Fatalf("CustomData: %v", err)
		}
		if !v.IsEmpty() {
			t.Errorf("bare tree should yield an empty view")
		}
	})
}
