package catalog

import (
	"github.com/yungbote/dinocatalog-backend/internal/domain"
	"github.com/yungbote/dinocatalog-backend/internal/domain/taxa"
	"github.com/yungbote/dinocatalog-backend/internal/pkg/pointers"
)

func fixture() []*domain.Dinosaur {
	return []*domain.Dinosaur{
		{
			ID: 1, Name: "Tyrannosaurus Rex", Species: "Tyrannosaurus rex", Genus: "Tyrannosaurus",
			Period: taxa.LateCretaceous, AgeStartMya: pointers.Float64(68), AgeEndMya: pointers.Float64(66),
			Clade: taxa.Saurischia, Group: taxa.Tyrannosauria, Diet: taxa.Carnivore, Size: taxa.Massive,
			LengthMeters: pointers.Float64(12.3), HeightMeters: pointers.Float64(4), WeightKg: pointers.Float64(8400),
			Locomotion: taxa.Bipedal, Habitat: taxa.Terrestrial, FossilQuality: pointers.Ptr(taxa.Excellent),
			Description:      "One of the largest land predators ever known.",
			InterestingFacts: []string{"Had a bite force of over 12,800 pounds", "Lived in family groups"},
			IsValidSpecies:   true,
		},
		{
			ID: 2, Name: "Triceratops", Species: "Triceratops horridus", Genus: "Triceratops",
			Period: taxa.LateCretaceous, AgeStartMya: pointers.Float64(68), AgeEndMya: pointers.Float64(66),
			Clade: taxa.Ornithischia, Group: taxa.Ceratopsia, Diet: taxa.Herbivore, Size: taxa.Large,
			LengthMeters: pointers.Float64(9), HeightMeters: pointers.Float64(3), WeightKg: pointers.Float64(6000),
			Locomotion: taxa.Quadrupedal, Habitat: taxa.Terrestrial, FossilQuality: pointers.Ptr(taxa.Excellent),
			Description:      "A large herbivore with three facial horns and a bony frill.",
			InterestingFacts: []string{"Lived alongside T. rex in the same time and place"},
			IsValidSpecies:   true,
		},
		{
			ID: 3, Name: "Brachiosaurus", Species: "Brachiosaurus altithorax", Genus: "Brachiosaurus",
			Period: taxa.LateJurassic, AgeStartMya: pointers.Float64(156), AgeEndMya: pointers.Float64(145),
			Clade: taxa.Saurischia, Group: taxa.Brachiosauridae, Diet: taxa.Herbivore, Size: taxa.Massive,
			LengthMeters: pointers.Float64(26), HeightMeters: pointers.Float64(12), WeightKg: pointers.Float64(56000),
			Locomotion: taxa.Quadrupedal, Habitat: taxa.Terrestrial, FossilQuality: pointers.Ptr(taxa.Partial),
			Description:      "A massive long-necked dinosaur.",
			InterestingFacts: []string{"Weighed as much as 12 elephants"},
			IsValidSpecies:   true,
		},
		{
			ID: 4, Name: "Velociraptor", Species: "Velociraptor mongoliensis", Genus: "Velociraptor",
			Period: taxa.LateCretaceous, AgeStartMya: pointers.Float64(75), AgeEndMya: pointers.Float64(71),
			Clade: taxa.Saurischia, Group: taxa.Dromaeosauridae, Diet: taxa.Carnivore, Size: taxa.Small,
			LengthMeters: pointers.Float64(2), HeightMeters: pointers.Float64(0.5), WeightKg: pointers.Float64(15),
			Locomotion: taxa.Bipedal, Habitat: taxa.Terrestrial, FossilQuality: pointers.Ptr(taxa.Good),
			Description:      "A small but intelligent pack hunter.",
			InterestingFacts: []string{"Had feathers but couldn't fly"},
			IsValidSpecies:   true,
		},
		{
			ID: 5, Name: "Stegosaurus", Species: "Stegosaurus stenops", Genus: "Stegosaurus",
			Period: taxa.LateJurassic, AgeStartMya: pointers.Float64(155), AgeEndMya: pointers.Float64(150),
			Clade: taxa.Ornithischia, Group: taxa.Stegosauria, Diet: taxa.Herbivore, Size: taxa.Large,
			LengthMeters: pointers.Float64(9), HeightMeters: pointers.Float64(4), WeightKg: pointers.Float64(3500),
			Locomotion: taxa.Quadrupedal, Habitat: taxa.Terrestrial, FossilQuality: pointers.Ptr(taxa.Excellent),
			Description:      "Double rows of plates along its back.",
			InterestingFacts: []string{"The tail spikes are called a 'thagomizer'"},
			IsValidSpecies:   true,
		},
		{
			// Everything optional left unknown.
			ID: 6, Name: "Compsognathus", Species: "Compsognathus longipes", Genus: "Compsognathus",
			Period: taxa.LateJurassic, Clade: taxa.Saurischia, Group: taxa.Compsognathidae,
			Diet: taxa.Carnivore, Size: taxa.Tiny, Locomotion: taxa.Bipedal, Habitat: taxa.Coastal,
			Description:    "A chicken-sized theropod.",
			IsValidSpecies: true,
		},
		{
			ID: 7, Name: "Velociraptor", Species: "Velociraptor mongoliensis", Genus: "Velociraptor",
			Period: taxa.LateCretaceous, AgeStartMya: pointers.Float64(75), AgeEndMya: pointers.Float64(71),
			Clade: taxa.Saurischia, Group: taxa.Dromaeosauridae, Diet: taxa.Carnivore, Size: taxa.Small,
			LengthMeters: pointers.Float64(2), HeightMeters: pointers.Float64(0.5), WeightKg: pointers.Float64(20),
			Locomotion: taxa.Bipedal, Habitat: taxa.Terrestrial, FossilQuality: pointers.Ptr(taxa.Good),
			Description:      "A small but intelligent pack hunter.",
			InterestingFacts: []string{"Hunted in coordinated packs"},
			IsValidSpecies:   true,
		},
		{
			ID: 8, Name: "Stegosaurus", Species: "Stegosaurus stenops", Genus: "Stegosaurus",
			Period: taxa.LateJurassic, AgeStartMya: pointers.Float64(155), AgeEndMya: pointers.Float64(150),
			Clade: taxa.Ornithischia, Group: taxa.Stegosauria, Diet: taxa.Herbivore, Size: taxa.Large,
			LengthMeters: pointers.Float64(9), HeightMeters: pointers.Float64(2.75), WeightKg: pointers.Float64(2300),
			Locomotion: taxa.Quadrupedal, Habitat: taxa.Terrestrial, FossilQuality: pointers.Ptr(taxa.Excellent),
			Description:      "Double rows of plates along its back.",
			InterestingFacts: []string{"Had a brain the size of a walnut"},
			IsValidSpecies:   true,
		},
	}
}

func pick(records []*domain.Dinosaur, ids ...uint) []*domain.Dinosaur {
	byID := make(map[uint]*domain.Dinosaur, len(records))
	for _, d := range records {
		byID[d.ID] = d
	}
	out := make([]*domain.Dinosaur, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out
}

func idsOf(records []*domain.Dinosaur) []uint {
	out := make([]uint, 0, len(records))
	for _, d := range records {
		out = append(out, d.ID)
	}
	return out
}
