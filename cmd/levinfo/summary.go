package main

import (
	"encoding/binary"

	"github.com/milk9111/utkedit/level"
)

type point struct {
	X uint32 `yaml:"x"`
	Y uint32 `yaml:"y"`
}

type tileCounts struct {
	Floor   int `yaml:"floor"`
	Walls   int `yaml:"walls"`
	Shadows int `yaml:"shadows"`
}

type info struct {
	Comment   string   `yaml:"comment,omitempty"`
	TimeLimit uint32   `yaml:"time_limit"`
	Enemies   []uint32 `yaml:"enemies"`
}

// summary is the YAML document printed for one level file.
type summary struct {
	File       string                       `yaml:"file"`
	Version    uint32                       `yaml:"version"`
	Width      uint32                       `yaml:"width"`
	Height     uint32                       `yaml:"height"`
	Player1    point                        `yaml:"player1"`
	Player2    point                        `yaml:"player2"`
	Tiles      tileCounts                   `yaml:"tiles"`
	Spotlights int                          `yaml:"spotlights"`
	Steams     int                          `yaml:"steams"`
	Info       info                         `yaml:"info"`
	Random     map[string]map[string]uint32 `yaml:"random_crates,omitempty"`
	Static     map[string]map[string]int    `yaml:"static_crates,omitempty"`
}

// fileVersion reads the version header without decoding the rest.
func fileVersion(data []byte) uint32 {
	if len(data) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(data)
}

func summarize(name string, version uint32, l *level.Level) summary {
	s := summary{
		File:       name,
		Version:    version,
		Width:      l.Width(),
		Height:     l.Height(),
		Player1:    point{l.P1.X, l.P1.Y},
		Player2:    point{l.P2.X, l.P2.Y},
		Spotlights: len(l.Spotlights),
		Steams:     len(l.Steams),
		Info: info{
			Comment:   l.Info.Comment,
			TimeLimit: l.Info.TimeLimit,
			Enemies:   append([]uint32(nil), l.Info.Enemies[:]...),
		},
	}

	for _, row := range l.Tiles {
		for _, t := range row {
			if t.Type == level.Walls {
				s.Tiles.Walls++
			} else {
				s.Tiles.Floor++
			}
			if t.Shadow > 0 {
				s.Tiles.Shadows++
			}
		}
	}

	for _, g := range []level.GameType{level.Normal, level.Deathmatch} {
		set := l.Crates.Random.Set(g)
		for i, name := range level.AllCrates {
			n := set.Get(i)
			if n == 0 {
				continue
			}
			if s.Random == nil {
				s.Random = make(map[string]map[string]uint32)
			}
			if s.Random[g.String()] == nil {
				s.Random[g.String()] = make(map[string]uint32)
			}
			s.Random[g.String()][name] = n
		}
	}

	for _, c := range l.Crates.Static {
		if s.Static == nil {
			s.Static = make(map[string]map[string]int)
		}
		v := c.Variant.String()
		if s.Static[v] == nil {
			s.Static[v] = make(map[string]int)
		}
		s.Static[v][c.Name()]++
	}
	return s
}
