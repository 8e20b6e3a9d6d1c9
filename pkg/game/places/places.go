// Package places is the POI source of the map: named world locations, built
// in or loaded from YAML, plus the player marker.
package places

import (
	"worldmap/pkg/game/poi"
)

// Category groups places that share an icon and zoom threshold.
type Category int

const (
	CategoryTown Category = iota
	CategoryQuest
	CategoryCave
	CategoryShrine
)

// Icons per category. Keys are looked up by the renderers.
var (
	IconTown   = poi.Icon{Key: "town", Width: 18, Height: 18}
	IconQuest  = poi.Icon{Key: "quest", Width: 14, Height: 14}
	IconCave   = poi.Icon{Key: "cave", Width: 12, Height: 12}
	IconShrine = poi.Icon{Key: "shrine", Width: 12, Height: 16}
	IconPlayer = poi.Icon{Key: "player", Width: 14, Height: 14}
)

// Icon returns the icon used for the category
func (c Category) Icon() poi.Icon {
	switch c {
	case CategoryQuest:
		return IconQuest
	case CategoryCave:
		return IconCave
	case CategoryShrine:
		return IconShrine
	default:
		return IconTown
	}
}

// MinZoom returns the zoom at which places of the category are fully shown.
func (c Category) MinZoom() float64 {
	switch c {
	case CategoryQuest:
		return 0.6
	case CategoryCave:
		return 1.0
	case CategoryShrine:
		return 1.5
	default:
		return poi.AlwaysVisible
	}
}

// Place is a named static world location
type Place struct {
	Name     string
	Category Category
	X, Z     float64
}

// Builtin is the stock world atlas
var Builtin = []Place{
	{"Ragni", CategoryTown, -870, -1580},
	{"Detlas", CategoryTown, 450, -1620},
	{"Almuj", CategoryTown, 930, -1900},
	{"Nemract", CategoryTown, 120, -2150},
	{"Troms", CategoryTown, -780, -910},
	{"Cinfras", CategoryTown, -440, -4880},
	{"Nesaak", CategoryTown, 120, -760},
	{"Llevigar", CategoryTown, -2000, -4550},
	{"King's Recruit", CategoryQuest, -820, -1510},
	{"Studying the Corrupt", CategoryQuest, 160, -1480},
	{"Underice", CategoryQuest, 60, -690},
	{"Decrepit Sewers", CategoryCave, -880, -1540},
	{"Nivla Woods Cave", CategoryCave, -270, -1450},
	{"Abandoned Mines", CategoryCave, 520, -1560},
	{"Shrine of the Forest", CategoryShrine, -640, -1730},
	{"Desert Shrine", CategoryShrine, 1060, -1940},
}

// Tracker reports the position of the tracked entity
type Tracker interface {
	Position() (poi.Location, bool)
}

// Options for building an atlas
type Options struct {
	FadeDistance float64
	PlayerName   string
}

// Atlas is an ordered POI source. The player marker, when present, comes last
// so it wins hover ties against the places under it.
type Atlas struct {
	pois []poi.Poi
}

// NewAtlas builds POIs for places, followed by a dynamic marker for tracker.
func NewAtlas(places []Place, tracker Tracker, opts Options) *Atlas {
	a := &Atlas{pois: make([]poi.Poi, 0, len(places)+1)}
	for _, pl := range places {
		a.pois = append(a.pois, poi.New(pl.Name, pl.Category.Icon(), poi.Static(pl.X, pl.Z),
			poi.WithMinZoom(pl.Category.MinZoom()),
			poi.WithFade(opts.FadeDistance),
		))
	}
	if tracker != nil {
		a.pois = append(a.pois, poi.New(opts.PlayerName, IconPlayer, poi.Dynamic(tracker.Position)))
	}
	return a
}

// Pois returns the POIs in priority order, lowest first
func (a *Atlas) Pois() []poi.Poi {
	return a.pois
}

// Len returns the number of POIs
func (a *Atlas) Len() int {
	return len(a.pois)
}
