package scheduler

import "testing"

func TestNameRoundTrip(t *testing.T) {
	t.Run("x", func(t *testing.T) {
		name := encodeX(12345678, 3, 7)
		eid, d, k, err := parseX(name)
		if err != nil {
			t.Fatalf("parseX(%q): %v", name, err)
		}
		if eid != 12345678 || d != 3 || k != 7 {
			t.Errorf("parseX(%q) = (%d,%d,%d), want (12345678,3,7)", name, eid, d, k)
		}
	})

	t.Run("d", func(t *testing.T) {
		name := encodeD(99, 4)
		eid, d, err := parseD(name)
		if err != nil {
			t.Fatalf("parseD(%q): %v", name, err)
		}
		if eid != 99 || d != 4 {
			t.Errorf("parseD(%q) = (%d,%d), want (99,4)", name, eid, d)
		}
	})

	t.Run("p", func(t *testing.T) {
		name := encodeP(42, 5)
		if name != "p42:5-6" {
			t.Fatalf("encodeP = %q, want p42:5-6", name)
		}
		eid, d, err := parseP(name)
		if err != nil {
			t.Fatalf("parseP(%q): %v", name, err)
		}
		if eid != 42 || d != 5 {
			t.Errorf("parseP(%q) = (%d,%d), want (42,5)", name, eid, d)
		}
	})

	t.Run("w", func(t *testing.T) {
		name := encodeW(7, 2)
		eid, j, err := parseW(name)
		if err != nil {
			t.Fatalf("parseW(%q): %v", name, err)
		}
		if eid != 7 || j != 2 {
			t.Errorf("parseW(%q) = (%d,%d), want (7,2)", name, eid, j)
		}
	})

	t.Run("y", func(t *testing.T) {
		name := encodeY(10, 3)
		d, p, err := parseY(name)
		if err != nil {
			t.Fatalf("parseY(%q): %v", name, err)
		}
		if d != 10 || p != 3 {
			t.Errorf("parseY(%q) = (%d,%d), want (10,3)", name, d, p)
		}
	})
}

func TestParseRejectsWrongTag(t *testing.T) {
	if _, _, _, err := parseX("d1:2:3"); err == nil {
		t.Error("parseX should reject a name carrying the wrong family tag")
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{"x1", "x1:2", "xa:b:c", ""}
	for _, c := range cases {
		if _, _, _, err := parseX(c); err == nil {
			t.Errorf("parseX(%q) should have failed", c)
		}
	}
}
