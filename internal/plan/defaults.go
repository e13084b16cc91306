package plan

// archetypePalettes are the per-archetype default palettes used when the
// request text names no colors.
var archetypePalettes = map[Archetype][]string{
	ArchetypeSunset:   {"#ff7e5f", "#feb47b", "#ffd36e", "#355c7d"},
	ArchetypeOcean:    {"#0f4c81", "#2a9df4", "#7fd8f7", "#f9f7e8"},
	ArchetypeCity:     {"#1b263b", "#415a77", "#778da9", "#ffd166"},
	ArchetypeForest:   {"#1b4332", "#2d6a4f", "#74c69d", "#d8f3dc"},
	ArchetypeMountain: {"#4a5759", "#84a9ac", "#cbd4c2", "#f4f1de"},
	ArchetypeDesert:   {"#e9c46a", "#f4a261", "#e76f51", "#7f5539"},
	ArchetypeSpace:    {"#0b0d2a", "#2e1a47", "#6f2dbd", "#f9f871"},
	ArchetypeNeon:     {"#0d0221", "#ff2a6d", "#05d9e8", "#d1f7ff"},
	ArchetypeMeadow:   {"#80b918", "#aacc00", "#fff275", "#90e0ef"},
	ArchetypeGeneric:  {"#6c91c2", "#a3c4bc", "#f2e9dc"},
}

// DefaultPalette returns the default palette for an archetype. Unknown
// archetypes fall through to the generic palette.
func DefaultPalette(a Archetype) []string {
	if p, ok := archetypePalettes[a]; ok {
		return p
	}
	return archetypePalettes[ArchetypeGeneric]
}
