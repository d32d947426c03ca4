package catalog

import "github.com/svasisht/prepdash/internal/models"

// DefaultChapters returns the stock syllabus used to seed a new
// installation. Subjects without a seeded list start empty; the student
// fills them in. Difficulty is on the 1..5 scale the priority scorer
// expects.
func DefaultChapters() map[string][]models.Chapter {
	return map[string][]models.Chapter{
		"physics": {
			{Name: "Force", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Work, Power & Energy", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Machines", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Refraction of Light at Plane Surfaces", Status: models.StatusNotStarted, Difficulty: 4},
			{Name: "Refraction Through a Lens", Status: models.StatusNotStarted, Difficulty: 4},
			{Name: "Spectrum", Status: models.StatusNotStarted, Difficulty: 2},
			{Name: "Sound", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Current Electricity", Status: models.StatusNotStarted, Difficulty: 4},
			{Name: "Electrical Power and Household Circuits", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Magnetic Effects of Current", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Calorimetry", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Radioactivity and Nuclear Energy", Status: models.StatusNotStarted, Difficulty: 3},
		},
		"chemistry": {
			{Name: "The Periodic Table", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Chemical Bonding", Status: models.StatusNotStarted, Difficulty: 4},
			{Name: "Acids, Bases and Salts", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Analytical Chemistry", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Electrolysis", Status: models.StatusNotStarted, Difficulty: 4},
			{Name: "Electro Metallurgy", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Study of Compounds - HCl", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Study of Compounds - NH3", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Study of Compounds - HNO3", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Study of Compounds - H2SO4", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Organic Chemistry", Status: models.StatusNotStarted, Difficulty: 4},
		},
		"biology": {
			{Name: "Structure of Chromosomes", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Genetics & Cell Division", Status: models.StatusNotStarted, Difficulty: 4},
			{Name: "Photosynthesis", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Transpiration", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Chemical Coordination in Plants", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Circulatory System", Status: models.StatusNotStarted, Difficulty: 4},
			{Name: "Excretory System", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Nervous System", Status: models.StatusNotStarted, Difficulty: 4},
			{Name: "Endocrine System", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Reproductive System", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Health & Hygiene", Status: models.StatusNotStarted, Difficulty: 2},
			{Name: "Pollution", Status: models.StatusNotStarted, Difficulty: 2},
			{Name: "Population", Status: models.StatusNotStarted, Difficulty: 2},
			{Name: "Human Evolution", Status: models.StatusNotStarted, Difficulty: 3},
		},
		"geography": {
			{Name: "Climate", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Soil", Status: models.StatusNotStarted, Difficulty: 2},
			{Name: "Natural Vegetation", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Water Resources", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Transport", Status: models.StatusNotStarted, Difficulty: 2},
			{Name: "Agriculture Unit 1 - Types & Major Crops", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Agriculture Unit 2 - Climatic & Soil Conditions", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Agriculture Unit 3 - Tools, Techniques, Changes", Status: models.StatusNotStarted, Difficulty: 2},
			{Name: "Agriculture Unit 4 - Problems & Government Measures", Status: models.StatusNotStarted, Difficulty: 2},
			{Name: "Industries - Types, Examples, Factors", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Mineral Resources", Status: models.StatusNotStarted, Difficulty: 3},
			{Name: "Conventional Energy", Status: models.StatusNotStarted, Difficulty: 2},
			{Name: "Non-Conventional Energy", Status: models.StatusNotStarted, Difficulty: 2},
		},
	}
}
