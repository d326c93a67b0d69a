package stack

import "testing"

func TestSizeAggregate(t *testing.T) {
	tests := []struct {
		name        string
		a, b        Size
		wantImpact  int
		wantMaximal int
	}{
		{"zero", Zero, Zero, 0, 0},
		{"push then push", NewSize(1, 1), NewSize(2, 2), 3, 3},
		{"push then pop", NewSize(2, 2), NewSize(-1, 0), 1, 2},
		{"pop then push", NewSize(-2, 0), NewSize(1, 1), -1, 0},
		{"peak inside second", NewSize(1, 1), NewSize(0, 3), 1, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Aggregate(tt.b)
			if got.SizeImpact() != tt.wantImpact {
				t.Errorf("SizeImpact() = %d, want %d", got.SizeImpact(), tt.wantImpact)
			}
			if got.MaximalSize() != tt.wantMaximal {
				t.Errorf("MaximalSize() = %d, want %d", got.MaximalSize(), tt.wantMaximal)
			}
		})
	}
}

func TestSizeAggregateAssociative(t *testing.T) {
	sizes := []Size{NewSize(1, 1), NewSize(-2, 0), NewSize(2, 2), NewSize(0, 1), NewSize(-1, 0)}
	for i := range sizes {
		for j := range sizes {
			for k := range sizes {
				a, b, c := sizes[i], sizes[j], sizes[k]
				left := a.Aggregate(b).Aggregate(c)
				right := a.Aggregate(b.Aggregate(c))
				if left != right {
					t.Errorf("(%v+%v)+%v = %v, %v+(%v+%v) = %v", a, b, c, left, a, b, c, right)
				}
			}
		}
	}
}

func TestWidthSizes(t *testing.T) {
	for _, w := range []Width{WidthZero, WidthSingle, WidthDouble} {
		inc := w.ToIncreasingSize()
		if inc.SizeImpact() != w.Size() || inc.MaximalSize() != w.Size() {
			t.Errorf("%v.ToIncreasingSize() = %v", w, inc)
		}
		dec := w.ToDecreasingSize()
		if dec.SizeImpact() != -w.Size() || dec.MaximalSize() != 0 {
			t.Errorf("%v.ToDecreasingSize() = %v", w, dec)
		}
	}
	if WidthSingle.Maximum(WidthDouble) != WidthDouble {
		t.Error("Maximum(single, double) != double")
	}
}

func TestWidthOf(t *testing.T) {
	tests := []struct {
		c    Category
		want Width
	}{
		{Void, WidthZero},
		{Boolean, WidthSingle},
		{Byte, WidthSingle},
		{Char, WidthSingle},
		{Short, WidthSingle},
		{Int, WidthSingle},
		{Float, WidthSingle},
		{Reference, WidthSingle},
		{Long, WidthDouble},
		{Double, WidthDouble},
	}
	for _, tt := range tests {
		if got := WidthOf(tt.c); got != tt.want {
			t.Errorf("WidthOf(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestCategoryNames(t *testing.T) {
	for c := Void; c <= Double; c++ {
		got, ok := ParseCategory(c.String())
		if !ok || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseCategory("int64"); ok {
		t.Error("ParseCategory(int64) should fail")
	}
	if Category(42).String() != "invalid" {
		t.Errorf("Category(42).String() = %q", Category(42).String())
	}
	if Long.Descriptor() != "J" || Reference.Descriptor() != "Ljava/lang/Object;" {
		t.Errorf("descriptors: long=%q reference=%q", Long.Descriptor(), Reference.Descriptor())
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		field string
		want  Category
		ok    bool
	}{
		{"V", Void, true},
		{"I", Int, true},
		{"J", Long, true},
		{"D", Double, true},
		{"Z", Boolean, true},
		{"Ljava/lang/String;", Reference, true},
		{"[J", Reference, true},
		{"", 0, false},
		{"Q", 0, false},
		{"II", 0, false},
	}
	for _, tt := range tests {
		got, ok := CategoryOf(tt.field)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("CategoryOf(%q) = %v, %v, want %v, %v", tt.field, got, ok, tt.want, tt.ok)
		}
	}
}
