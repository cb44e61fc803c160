package level

import "github.com/milk9111/utkedit/geom"

const (
	MaxSpotlight  = 9
	MaxSteamRange = 6
)

// SpotlightRadius is the drawn radius of a spotlight of the given intensity.
func SpotlightRadius(intensity uint8) uint32 {
	return uint32(intensity)*5 + 5
}

// SteamRadius is the drawn radius of a steam emitter's origin.
func SteamRadius() uint32 {
	return 5
}

// PutSpotlight stores a spotlight; intensities above MaxSpotlight are ignored.
func (l *Level) PutSpotlight(pos Position, intensity uint8) {
	if intensity > MaxSpotlight {
		return
	}
	if l.Spotlights == nil {
		l.Spotlights = make(map[Position]uint8)
	}
	l.Spotlights[pos] = intensity
}

func (l *Level) Spotlight(pos Position) (uint8, bool) {
	v, ok := l.Spotlights[pos]
	return v, ok
}

// DeleteSpotlightsNear removes every spotlight within its radius, scaled by
// multiplier, of pos.
func (l *Level) DeleteSpotlightsNear(pos Position, multiplier uint32) {
	for p, intensity := range l.Spotlights {
		if geom.Distance(pos, p) <= float64(SpotlightRadius(intensity)*multiplier) {
			delete(l.Spotlights, p)
		}
	}
}

// PutSteam stores a steam emitter; ranges above MaxSteamRange are ignored.
func (l *Level) PutSteam(pos Position, s Steam) {
	if s.Range > MaxSteamRange {
		return
	}
	if l.Steams == nil {
		l.Steams = make(map[Position]Steam)
	}
	l.Steams[pos] = s
}

func (l *Level) Steam(pos Position) (Steam, bool) {
	v, ok := l.Steams[pos]
	return v, ok
}

func (l *Level) DeleteSteamsNear(pos Position, multiplier uint32) {
	limit := float64(SteamRadius() * multiplier)
	for p := range l.Steams {
		if geom.Distance(pos, p) <= limit {
			delete(l.Steams, p)
		}
	}
}

func (l *Level) PutCrate(pos Position, c StaticCrate) {
	if l.Crates.Static == nil {
		l.Crates.Static = make(map[Position]StaticCrate)
	}
	l.Crates.Static[pos] = c
}

func (l *Level) Crate(pos Position) (StaticCrate, bool) {
	v, ok := l.Crates.Static[pos]
	return v, ok
}

// DeleteCratesNear removes every crate whose box contains pos. The box is
// CrateSize screen pixels, so its edge in level pixels shrinks with zoom.
func (l *Level) DeleteCratesNear(pos Position, multiplier uint32) {
	if multiplier == 0 {
		multiplier = 1
	}
	size := CrateSize / multiplier
	for p := range l.Crates.Static {
		if geom.BoxContains(pos, p, size) {
			delete(l.Crates.Static, p)
		}
	}
}
