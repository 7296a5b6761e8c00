package catalog

import "github.com/diogochaves123/app-ecogrow/internal/model"

// PlantPreset is a popular-plant quick-add entry from the onboarding flow.
type PlantPreset struct {
	Key      string
	Name     string
	Type     model.PlantType
	Category model.PlantCategory
}

var presets = []PlantPreset{
	{Key: "manjericao", Name: "Manjericão", Type: model.PlantTypeErva, Category: model.CategoryHerb},
	{Key: "costela-de-adao", Name: "Costela-de-Adão", Type: model.PlantTypeOrnamental, Category: model.CategoryIndoor},
	{Key: "suculenta", Name: "Suculenta", Type: model.PlantTypeOrnamental, Category: model.CategoryIndoor},
	{Key: "tomate-cereja", Name: "Tomate Cereja", Type: model.PlantTypeHortalica, Category: model.CategoryVegetable},
	{Key: "arvore-frutifera", Name: "Árvore Frutífera", Type: model.PlantTypeArvoreFrutifera, Category: model.CategoryTree},
	{Key: "lavanda", Name: "Lavanda", Type: model.PlantTypeMedicinal, Category: model.CategoryHerb},
}

// Presets returns the popular-plant quick-add list.
func Presets() []PlantPreset {
	out := make([]PlantPreset, len(presets))
	copy(out, presets)
	return out
}

// PresetByKey resolves one preset; ok is false for unknown keys.
func PresetByKey(key string) (PlantPreset, bool) {
	for _, p := range presets {
		if p.Key == key {
			return p, true
		}
	}
	return PlantPreset{}, false
}
