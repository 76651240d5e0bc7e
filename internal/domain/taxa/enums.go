package taxa

import (
	"fmt"
	"slices"
	"strings"
)

// Period is the geological sub-period a taxon lived in.
type Period string

const (
	EarlyTriassic   Period = "Early Triassic"
	MiddleTriassic  Period = "Middle Triassic"
	LateTriassic    Period = "Late Triassic"
	EarlyJurassic   Period = "Early Jurassic"
	MiddleJurassic  Period = "Middle Jurassic"
	LateJurassic    Period = "Late Jurassic"
	EarlyCretaceous Period = "Early Cretaceous"
	LateCretaceous  Period = "Late Cretaceous"
)

type Diet string

const (
	Herbivore   Diet = "Herbivore"
	Carnivore   Diet = "Carnivore"
	Omnivore    Diet = "Omnivore"
	Piscivore   Diet = "Piscivore"
	Insectivore Diet = "Insectivore"
)

// Size is a relative size category:
// Tiny < 1m, Small 1-3m, Medium 3-10m, Large 10-20m, Massive > 20m.
type Size string

const (
	Tiny    Size = "Tiny"
	Small   Size = "Small"
	Medium  Size = "Medium"
	Large   Size = "Large"
	Massive Size = "Massive"
)

type Clade string

const (
	Ornithischia Clade = "Ornithischia"
	Saurischia   Clade = "Saurischia"
)

// Group is the taxonomic group or family.
type Group string

const (
	// Theropods
	Theropoda         Group = "Theropoda"
	Tyrannosauria     Group = "Tyrannosauria"
	Dromaeosauridae   Group = "Dromaeosauridae"
	Spinosauridae     Group = "Spinosauridae"
	Allosauridae      Group = "Allosauridae"
	Compsognathidae   Group = "Compsognathidae"
	Ornithomimosauria Group = "Ornithomimosauria"
	Therizinosauridae Group = "Therizinosauridae"
	Oviraptorosauria  Group = "Oviraptorosauria"
	Troodontidae      Group = "Troodontidae"

	// Sauropodomorphs
	Sauropodomorpha Group = "Sauropodomorpha"
	Diplodocidae    Group = "Diplodocidae"
	Brachiosauridae Group = "Brachiosauridae"
	Titanosauria    Group = "Titanosauria"
	Camarasauridae  Group = "Camarasauridae"

	// Ornithischians
	Stegosauria        Group = "Stegosauria"
	Ankylosauria       Group = "Ankylosauria"
	Ceratopsia         Group = "Ceratopsia"
	Hadrosauridae      Group = "Hadrosauridae"
	Pachycephalosauria Group = "Pachycephalosauria"
	Ornithopoda        Group = "Ornithopoda"
)

type Locomotion string

const (
	Bipedal     Locomotion = "Bipedal"
	Quadrupedal Locomotion = "Quadrupedal"
	Facultative Locomotion = "Facultative" // switches between two and four legs
)

type Habitat string

const (
	Terrestrial Habitat = "Terrestrial"
	SemiAquatic Habitat = "Semi-aquatic"
	Arboreal    Habitat = "Arboreal"
	Coastal     Habitat = "Coastal"
)

// FossilQuality describes how complete the known remains are.
type FossilQuality string

const (
	Excellent   FossilQuality = "Excellent"
	Good        FossilQuality = "Good"
	Partial     FossilQuality = "Partial"
	Fragmentary FossilQuality = "Fragmentary"
)

var (
	periods = []Period{
		EarlyTriassic, MiddleTriassic, LateTriassic,
		EarlyJurassic, MiddleJurassic, LateJurassic,
		EarlyCretaceous, LateCretaceous,
	}
	diets  = []Diet{Herbivore, Carnivore, Omnivore, Piscivore, Insectivore}
	sizes  = []Size{Tiny, Small, Medium, Large, Massive}
	clades = []Clade{Ornithischia, Saurischia}
	groups = []Group{
		Theropoda, Tyrannosauria, Dromaeosauridae, Spinosauridae, Allosauridae,
		Compsognathidae, Ornithomimosauria, Therizinosauridae, Oviraptorosauria, Troodontidae,
		Sauropodomorpha, Diplodocidae, Brachiosauridae, Titanosauria, Camarasauridae,
		Stegosauria, Ankylosauria, Ceratopsia, Hadrosauridae, Pachycephalosauria, Ornithopoda,
	}
	locomotions     = []Locomotion{Bipedal, Quadrupedal, Facultative}
	habitats        = []Habitat{Terrestrial, SemiAquatic, Arboreal, Coastal}
	fossilQualities = []FossilQuality{Excellent, Good, Partial, Fragmentary}
)

func Periods() []Period { return slices.Clone(periods) }
func Diets() []Diet { return slices.Clone(diets) }
func Sizes() []Size { return slices.Clone(sizes) }
func Clades() []Clade { return slices.Clone(clades) }
func Groups() []Group { return slices.Clone(groups) }
func Locomotions() []Locomotion { return slices.Clone(locomotions) }
func Habitats() []Habitat { return slices.Clone(habitats) }
func FossilQualities() []FossilQuality { return slices.Clone(fossilQualities) }

func (v Period) Valid() bool { return slices.Contains(periods, v) }
func (v Diet) Valid() bool { return slices.Contains(diets, v) }
func (v Size) Valid() bool { return slices.Contains(sizes, v) }
func (v Clade) Valid() bool { return slices.Contains(clades, v) }
func (v Group) Valid() bool { return slices.Contains(groups, v) }
func (v Locomotion) Valid() bool { return slices.Contains(locomotions, v) }
func (v Habitat) Valid() bool { return slices.Contains(habitats, v) }
func (v FossilQuality) Valid() bool { return slices.Contains(fossilQualities, v) }

func ParsePeriod(s string) (Period, error) { return parseLabel("period", s, periods) }
func ParseDiet(s string) (Diet, error) { return parseLabel("diet", s, diets) }
func ParseSize(s string) (Size, error) { return parseLabel("size", s, sizes) }
func ParseClade(s string) (Clade, error) { return parseLabel("clade", s, clades) }
func ParseGroup(s string) (Group, error) { return parseLabel("group", s, groups) }
func ParseLocomotion(s string) (Locomotion, error) { return parseLabel("locomotion", s, locomotions) }
func ParseHabitat(s string) (Habitat, error) { return parseLabel("habitat", s, habitats) }
func ParseFossilQuality(s string) (FossilQuality, error) {
	return parseLabel("fossil_quality", s, fossilQualities)
}

// Labels renders enum members as plain strings, preserving order.
func Labels[T ~string](vals []T) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, string(v))
	}
	return out
}

// parseLabel matches exactly; labels are case and whitespace sensitive.
func parseLabel[T ~string](field, s string, allowed []T) (T, error) {
	for _, v := range allowed {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, ValidationError(field, fmt.Sprintf("%q is not one of [%s]", s, strings.Join(Labels(allowed), ", ")))
}
