package level

import "testing"

func TestDeleteSpotlightsNear(t *testing.T) {
	cases := []struct {
		name    string
		at      Position
		removed bool
	}{
		{"inside", Position{X: 199, Y: 100}, true},
		{"just_outside", Position{X: 201, Y: 100}, false},
		{"on_edge", Position{X: 100, Y: 200}, true},
		{"on_top", Position{X: 100, Y: 100}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := NewDefault(16, 12)
			l.PutSpotlight(Position{X: 100, Y: 100}, 9)

			// intensity 9 draws 50px, scaled by 2 gives 100px
			l.DeleteSpotlightsNear(c.at, 2)

			_, ok := l.Spotlight(Position{X: 100, Y: 100})
			if ok == c.removed {
				t.Fatalf("removed=%v, expected %v", !ok, c.removed)
			}
		})
	}
}

func TestDeleteSpotlightsNearKeepsOthers(t *testing.T) {
	l := NewDefault(16, 12)
	l.PutSpotlight(Position{X: 10, Y: 10}, 0)
	l.PutSpotlight(Position{X: 200, Y: 200}, 0)

	l.DeleteSpotlightsNear(Position{X: 12, Y: 12}, 1)

	if _, ok := l.Spotlight(Position{X: 10, Y: 10}); ok {
		t.Fatalf("expected near spotlight removed")
	}
	if _, ok := l.Spotlight(Position{X: 200, Y: 200}); !ok {
		t.Fatalf("expected far spotlight kept")
	}
}

func TestPutSpotlightRejectsIntensity(t *testing.T) {
	l := NewDefault(16, 12)
	l.PutSpotlight(Position{X: 1, Y: 1}, MaxSpotlight+1)
	if len(l.Spotlights) != 0 {
		t.Fatalf("expected no spotlight, got %v", l.Spotlights)
	}
}

func TestSteams(t *testing.T) {
	l := &Level{}
	p := Position{X: 40, Y: 40}
	l.PutSteam(p, Steam{Angle: 90, Range: 3})
	l.PutSteam(Position{X: 0, Y: 0}, Steam{Range: MaxSteamRange + 1})

	s, ok := l.Steam(p)
	if !ok || s.Angle != 90 || s.Range != 3 {
		t.Fatalf("unexpected steam %+v %v", s, ok)
	}
	if len(l.Steams) != 1 {
		t.Fatalf("expected one steam, got %d", len(l.Steams))
	}

	l.DeleteSteamsNear(Position{X: 40, Y: 51}, 2)
	if _, ok := l.Steam(p); !ok {
		t.Fatalf("steam at distance 11 removed with radius 10")
	}
	l.DeleteSteamsNear(Position{X: 40, Y: 50}, 2)
	if _, ok := l.Steam(p); ok {
		t.Fatalf("steam at distance 10 kept with radius 10")
	}
}

func TestDeleteCratesNear(t *testing.T) {
	cases := []struct {
		name       string
		multiplier uint32
		at         Position
		removed    bool
	}{
		{"corner", 1, Position{X: 50, Y: 50}, true},
		{"inside", 1, Position{X: 77, Y: 77}, true},
		{"past_edge", 1, Position{X: 78, Y: 60}, false},
		{"zoomed_inside", 2, Position{X: 63, Y: 63}, true},
		{"zoomed_outside", 2, Position{X: 64, Y: 60}, false},
		{"before", 1, Position{X: 49, Y: 60}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := NewDefault(16, 12)
			l.PutCrate(Position{X: 50, Y: 50}, StaticCrate{Class: Bullet, Type: 2})
			l.DeleteCratesNear(c.at, c.multiplier)
			_, ok := l.Crate(Position{X: 50, Y: 50})
			if ok == c.removed {
				t.Fatalf("removed=%v, expected %v", !ok, c.removed)
			}
		})
	}
}

func TestCrateCatalogue(t *testing.T) {
	if got := len(CratesOf(Weapon)); got != DiffWeapons {
		t.Fatalf("weapons: %d", got)
	}
	if got := len(CratesOf(Bullet)); got != DiffBullets {
		t.Fatalf("bullets: %d", got)
	}
	if got := CratesOf(Energy); len(got) != 1 || got[0] != "energy" {
		t.Fatalf("energy: %v", got)
	}
	c := StaticCrate{Class: Bullet, Type: 2}
	if c.Name() != "shotgun shells (20)" {
		t.Fatalf("unexpected name %q", c.Name())
	}
	if (StaticCrate{Class: Energy, Type: 3}).Name() != "" {
		t.Fatalf("expected empty name for out of range type")
	}
}

func TestCrateSetIndexing(t *testing.T) {
	var s CrateSet
	for i := range AllCrates {
		s.Set(i, uint32(i+1))
	}
	if s.Weapons[0] != 1 || s.Weapons[DiffWeapons-1] != DiffWeapons {
		t.Fatalf("weapons: %v", s.Weapons)
	}
	if s.Bullets[0] != DiffWeapons+1 {
		t.Fatalf("bullets: %v", s.Bullets)
	}
	if s.Energy != uint32(len(AllCrates)) {
		t.Fatalf("energy: %d", s.Energy)
	}
	for i := range AllCrates {
		if s.Get(i) != uint32(i+1) {
			t.Fatalf("Get(%d) = %d", i, s.Get(i))
		}
	}
}
