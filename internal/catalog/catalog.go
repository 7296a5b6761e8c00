// Package catalog holds the static plant-care reference data: the per-type
// care plans, the task-type display order, and the achievement table. All of
// it is immutable after init and safe for concurrent reads.
package catalog

import (
	"errors"
	"fmt"

	"github.com/diogochaves123/app-ecogrow/internal/model"
)

var ErrUnknownPlantType = errors.New("unknown plant type")

var carePlans = map[model.PlantType]model.CarePlan{
	model.PlantTypeHortalica: {
		WateringFrequency:    1,
		FertilizingFrequency: 14,
		PruningFrequency:     21,
		LightRequirement:     model.LightFullSun,
		TemperatureRange:     "18-28°C",
		HumidityLevel:        "60-70%",
		SpecialCare:          []string{"Rega regular", "Solo rico em nutrientes", "Controle de pragas"},
	},
	model.PlantTypeFruta: {
		WateringFrequency:    2,
		FertilizingFrequency: 30,
		PruningFrequency:     90,
		LightRequirement:     model.LightFullSun,
		TemperatureRange:     "20-30°C",
		HumidityLevel:        "50-70%",
		SpecialCare:          []string{"Poda de formação", "Adubação orgânica", "Proteção contra pássaros"},
	},
	model.PlantTypeErva: {
		WateringFrequency:    2,
		FertilizingFrequency: 21,
		LightRequirement:     model.LightPartialSun,
		TemperatureRange:     "15-25°C",
		HumidityLevel:        "50-60%",
		SpecialCare:          []string{"Colheita regular", "Boa drenagem", "Ventilação"},
	},
	model.PlantTypeFlor: {
		WateringFrequency:    2,
		FertilizingFrequency: 14,
		PruningFrequency:     30,
		LightRequirement:     model.LightPartialSun,
		TemperatureRange:     "18-25°C",
		HumidityLevel:        "60-70%",
		SpecialCare:          []string{"Remoção de flores murchas", "Adubação para floração", "Proteção do vento"},
	},
	model.PlantTypeMedicinal: {
		WateringFrequency:    3,
		FertilizingFrequency: 30,
		LightRequirement:     model.LightPartialShade,
		TemperatureRange:     "18-26°C",
		HumidityLevel:        "50-65%",
		SpecialCare:          []string{"Cultivo orgânico", "Colheita no momento certo", "Secagem adequada"},
	},
	model.PlantTypeOrnamental: {
		WateringFrequency:    3,
		FertilizingFrequency: 21,
		PruningFrequency:     60,
		LightRequirement:     model.LightPartialShade,
		TemperatureRange:     "18-28°C",
		HumidityLevel:        "60-80%",
		SpecialCare:          []string{"Limpeza de folhas", "Umidade constante", "Luz indireta"},
	},
	model.PlantTypeArvoreFrutifera: {
		WateringFrequency:    7,
		FertilizingFrequency: 60,
		PruningFrequency:     180,
		LightRequirement:     model.LightFullSun,
		TemperatureRange:     "20-32°C",
		HumidityLevel:        "50-70%",
		SpecialCare:          []string{"Poda anual", "Adubação orgânica", "Controle de pragas e doenças"},
	},
	model.PlantTypeArvoreNativa: {
		WateringFrequency:    7,
		FertilizingFrequency: 90,
		PruningFrequency:     365,
		LightRequirement:     model.LightFullSun,
		TemperatureRange:     "15-30°C",
		HumidityLevel:        "50-80%",
		SpecialCare:          []string{"Adaptada ao clima local", "Pouca manutenção", "Preservação ambiental"},
	},
	model.PlantTypeArvoreOrnamental: {
		WateringFrequency:    7,
		FertilizingFrequency: 60,
		PruningFrequency:     180,
		LightRequirement:     model.LightFullSun,
		TemperatureRange:     "18-30°C",
		HumidityLevel:        "50-70%",
		SpecialCare:          []string{"Poda de formação", "Controle de crescimento", "Estética"},
	},
	model.PlantTypeDomestica: {
		WateringFrequency:    7,
		FertilizingFrequency: 30,
		PruningFrequency:     90,
		LightRequirement:     model.LightPartialShade,
		TemperatureRange:     "18-26°C",
		HumidityLevel:        "60-80%",
		SpecialCare:          []string{"Luz indireta", "Umidade ambiente", "Limpeza de folhas"},
	},
}

// plantTypeOrder fixes the listing order for PlantTypes.
var plantTypeOrder = []model.PlantType{
	model.PlantTypeHortalica,
	model.PlantTypeFruta,
	model.PlantTypeErva,
	model.PlantTypeFlor,
	model.PlantTypeMedicinal,
	model.PlantTypeOrnamental,
	model.PlantTypeArvoreFrutifera,
	model.PlantTypeArvoreNativa,
	model.PlantTypeArvoreOrnamental,
	model.PlantTypeDomestica,
}

// Lookup resolves the care plan for a plant type. There is no fallback entry:
// a type outside the closed set fails with ErrUnknownPlantType.
func Lookup(t model.PlantType) (model.CarePlan, error) {
	plan, ok := carePlans[t]
	if !ok {
		return model.CarePlan{}, fmt.Errorf("lookup care plan for %q: %w", string(t), ErrUnknownPlantType)
	}
	return plan, nil
}

// PlantTypes returns the closed set of known plant types in display order.
func PlantTypes() []model.PlantType {
	out := make([]model.PlantType, len(plantTypeOrder))
	copy(out, plantTypeOrder)
	return out
}

var taskTypeRank = map[model.TaskType]int{
	model.TaskWatering:    0,
	model.TaskFertilizing: 1,
	model.TaskPruning:     2,
	model.TaskPestControl: 3,
	model.TaskHarvesting:  4,
	model.TaskRepotting:   5,
	model.TaskCleaning:    6,
}

// TaskTypeRank returns the display rank of a task type (watering first).
// Unknown types sort last.
func TaskTypeRank(t model.TaskType) int {
	rank, ok := taskTypeRank[t]
	if !ok {
		return len(taskTypeRank)
	}
	return rank
}

// ValidTaskType reports whether t is one of the seven known task types.
func ValidTaskType(t model.TaskType) bool {
	_, ok := taskTypeRank[t]
	return ok
}

var taskTitles = map[model.TaskType]string{
	model.TaskWatering:    "Rega",
	model.TaskFertilizing: "Adubação",
	model.TaskPruning:     "Poda",
	model.TaskPestControl: "Controle de Pragas",
	model.TaskHarvesting:  "Colheita",
	model.TaskRepotting:   "Replantio",
	model.TaskCleaning:    "Limpeza",
}

// TaskTitle returns the display title for a task type.
func TaskTitle(t model.TaskType) string {
	if title, ok := taskTitles[t]; ok {
		return title
	}
	return string(t)
}
