package tessel

import "testing"

func TestPositions_Map(t *testing.T) {
	p := Positions{Pt(1, 2), Pt(3, 4), Pt(5, 6)}
	got := p.Map(func(q Point) Point { return q.Mul(2) })
	want := Positions{Pt(2, 4), Pt(6, 8), Pt(10, 12)}
	if got != want {
		t.Errorf("Map = %v, want %v", got, want)
	}
	// Original untouched: Positions is a value type.
	if p != (Positions{Pt(1, 2), Pt(3, 4), Pt(5, 6)}) {
		t.Errorf("Map mutated its receiver: %v", p)
	}
}

func TestSolidTri_Defaults(t *testing.T) {
	pos := Positions{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	tri := SolidTri(pos)

	if tri.Positions != pos {
		t.Errorf("Positions = %v, want %v", tri.Positions, pos)
	}
	if tri.Texcoords != (Positions{}) {
		t.Errorf("Texcoords = %v, want all (0,0)", tri.Texcoords)
	}
	if tri.Color != White {
		t.Errorf("Color = %v, want White", tri.Color)
	}
}

func TestRendTri_MapPositions(t *testing.T) {
	rt := Rend(NewTri(
		Positions{Pt(0, 0), Pt(1, 0), Pt(0, 1)},
		Positions{Pt(0, 0), Pt(1, 0), Pt(0, 1)},
		Red,
	))

	shifted := rt.MapPositions(func(p Point) Point { return p.Add(Pt(10, 20)) })

	want := Positions{Pt(10, 20), Pt(11, 20), Pt(10, 21)}
	if shifted.Tri.Positions != want {
		t.Errorf("positions = %v, want %v", shifted.Tri.Positions, want)
	}
	// Everything else passes through.
	if shifted.Tri.Texcoords != rt.Tri.Texcoords {
		t.Errorf("texcoords changed: %v", shifted.Tri.Texcoords)
	}
	if shifted.Tri.Color != Red {
		t.Errorf("color changed: %v", shifted.Tri.Color)
	}
	if shifted.Texture != nil {
		t.Errorf("texture changed: %v", shifted.Texture)
	}
	// The receiver is a value; the original must be intact.
	if rt.Tri.Positions != (Positions{Pt(0, 0), Pt(1, 0), Pt(0, 1)}) {
		t.Errorf("MapPositions mutated its receiver: %v", rt.Tri.Positions)
	}
}

func TestRendTri_MapTexcoords(t *testing.T) {
	rt := Rend(NewTri(
		Positions{Pt(0, 0), Pt(1, 0), Pt(0, 1)},
		Positions{Pt(0, 0), Pt(1, 0), Pt(0, 1)},
		White,
	))

	flipped := rt.MapTexcoords(func(p Point) Point { return Pt(p.X, 1-p.Y) })

	want := Positions{Pt(0, 1), Pt(1, 1), Pt(0, 0)}
	if flipped.Tri.Texcoords != want {
		t.Errorf("texcoords = %v, want %v", flipped.Tri.Texcoords, want)
	}
	if flipped.Tri.Positions != rt.Tri.Positions {
		t.Errorf("positions changed: %v", flipped.Tri.Positions)
	}
}

func TestRendTri_WithColorWithTexture(t *testing.T) {
	rt := Rend(SolidTri(Positions{Pt(0, 0), Pt(1, 0), Pt(0, 1)}))

	blue := rt.WithColor(Blue)
	if blue.Tri.Color != Blue {
		t.Errorf("WithColor = %v, want Blue", blue.Tri.Color)
	}
	if rt.Tri.Color != White {
		t.Errorf("WithColor mutated its receiver")
	}

	tex := solidTexture(t, 2, 2)
	textured := rt.WithTexture(tex)
	if textured.Texture != tex {
		t.Errorf("WithTexture = %p, want %p", textured.Texture, tex)
	}
	if detached := textured.WithTexture(nil); detached.Texture != nil {
		t.Errorf("WithTexture(nil) left %p", detached.Texture)
	}
}
