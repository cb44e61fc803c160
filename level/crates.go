package level

import "fmt"

const (
	DiffWeapons = 11
	DiffBullets = 9
	DiffEnemies = 8
)

// CrateSize is the on-screen edge of a static crate box in pixels.
const CrateSize uint32 = 28

// GameType selects between the normal and deathmatch variants of crates.
type GameType uint8

const (
	Normal GameType = iota
	Deathmatch
)

func (g GameType) String() string {
	if g == Deathmatch {
		return "deathmatch"
	}
	return "normal"
}

type CrateClass uint32

const (
	Weapon CrateClass = iota
	Bullet
	Energy
)

func (c CrateClass) String() string {
	switch c {
	case Weapon:
		return "weapon"
	case Bullet:
		return "bullet"
	case Energy:
		return "energy"
	default:
		return fmt.Sprintf("CrateClass(%d)", uint32(c))
	}
}

// AllCrates lists every crate item: weapons, then bullets, then energy.
var AllCrates = []string{
	"pistol",
	"shotgun",
	"uzi",
	"auto rifle",
	"grenade launcher",
	"auto grenadier",
	"heavy launcher",
	"auto shotgun",
	"c4-activator",
	"flame thrower",
	"mine dropper",
	"9mm bullets (50)",
	"12mm bullets (50)",
	"shotgun shells (20)",
	"light grenades (15)",
	"medium grenades (10)",
	"heavy grenades (5)",
	"c4-explosives (5)",
	"gas (50)",
	"mines (5)",
	"energy",
}

// CratesOf returns the item names of one class.
func CratesOf(class CrateClass) []string {
	switch class {
	case Weapon:
		return AllCrates[:DiffWeapons]
	case Bullet:
		return AllCrates[DiffWeapons : DiffWeapons+DiffBullets]
	default:
		return AllCrates[DiffWeapons+DiffBullets:]
	}
}

// StaticCrate is a crate placed at a fixed position.
type StaticCrate struct {
	Variant GameType
	Class   CrateClass
	Type    uint8
}

// Name is the catalogue name of the crate's item.
func (c StaticCrate) Name() string {
	items := CratesOf(c.Class)
	if int(c.Type) >= len(items) {
		return ""
	}
	return items[c.Type]
}

// CrateSet holds how many of each item may spawn randomly.
type CrateSet struct {
	Weapons [DiffWeapons]uint32
	Bullets [DiffBullets]uint32
	Energy  uint32
}

// Get reads a count by its index in AllCrates.
func (s *CrateSet) Get(index int) uint32 {
	if index < DiffWeapons {
		return s.Weapons[index]
	}
	index -= DiffWeapons
	if index < DiffBullets {
		return s.Bullets[index]
	}
	return s.Energy
}

// Set writes a count by its index in AllCrates.
func (s *CrateSet) Set(index int, value uint32) {
	if index < DiffWeapons {
		s.Weapons[index] = value
		return
	}
	index -= DiffWeapons
	if index < DiffBullets {
		s.Bullets[index] = value
		return
	}
	s.Energy = value
}

type RandomCrates struct {
	Normal     CrateSet
	Deathmatch CrateSet
}

// Set returns the pool for a game type.
func (r *RandomCrates) Set(g GameType) *CrateSet {
	if g == Deathmatch {
		return &r.Deathmatch
	}
	return &r.Normal
}

type Crates struct {
	Random RandomCrates
	Static map[Position]StaticCrate
}
