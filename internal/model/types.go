package model

import "time"

type PlantType string

const (
	PlantTypeHortalica        PlantType = "hortalica"
	PlantTypeFruta            PlantType = "fruta"
	PlantTypeErva             PlantType = "erva"
	PlantTypeFlor             PlantType = "flor"
	PlantTypeMedicinal        PlantType = "medicinal"
	PlantTypeOrnamental       PlantType = "ornamental"
	PlantTypeArvoreFrutifera  PlantType = "arvore_frutifera"
	PlantTypeArvoreNativa     PlantType = "arvore_nativa"
	PlantTypeArvoreOrnamental PlantType = "arvore_ornamental"
	PlantTypeDomestica        PlantType = "domestica"
)

type PlantCategory string

const (
	CategoryVegetable  PlantCategory = "vegetable"
	CategoryFruit      PlantCategory = "fruit"
	CategoryHerb       PlantCategory = "herb"
	CategoryFlower     PlantCategory = "flower"
	CategoryMedicinal  PlantCategory = "medicinal"
	CategoryOrnamental PlantCategory = "ornamental"
	CategoryTree       PlantCategory = "tree"
	CategoryIndoor     PlantCategory = "indoor"
)

type TaskType string

const (
	TaskWatering    TaskType = "watering"
	TaskFertilizing TaskType = "fertilizing"
	TaskPruning     TaskType = "pruning"
	TaskPestControl TaskType = "pest_control"
	TaskHarvesting  TaskType = "harvesting"
	TaskRepotting   TaskType = "repotting"
	TaskCleaning    TaskType = "cleaning"
)

type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthFair      HealthStatus = "fair"
	HealthPoor      HealthStatus = "poor"
	HealthCritical  HealthStatus = "critical"
)

type LightLevel string

const (
	LightFullSun      LightLevel = "full_sun"
	LightPartialSun   LightLevel = "partial_sun"
	LightPartialShade LightLevel = "partial_shade"
	LightFullShade    LightLevel = "full_shade"
)

func (l LightLevel) Valid() bool {
	switch l {
	case LightFullSun, LightPartialSun, LightPartialShade, LightFullShade:
		return true
	}
	return false
}

func (h HealthStatus) Valid() bool {
	switch h {
	case HealthExcellent, HealthGood, HealthFair, HealthPoor, HealthCritical:
		return true
	}
	return false
}

// Severity orders health statuses from excellent (0) to critical (4).
func (h HealthStatus) Severity() int {
	switch h {
	case HealthExcellent:
		return 0
	case HealthGood:
		return 1
	case HealthFair:
		return 2
	case HealthPoor:
		return 3
	case HealthCritical:
		return 4
	}
	return 4
}

// CarePlan holds the cadence rules for one plant type. A PruningFrequency of
// zero means pruning does not apply to the type.
type CarePlan struct {
	WateringFrequency    int
	FertilizingFrequency int
	PruningFrequency     int
	LightRequirement     LightLevel
	TemperatureRange     string
	HumidityLevel        string
	SpecialCare          []string
}

type Plant struct {
	ID             string
	UserID         string
	Name           string
	ScientificName string
	Type           PlantType
	Category       PlantCategory
	HealthStatus   HealthStatus
	Location       string
	LightLevel     LightLevel
	Notes          string
	HealthySince   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CareTask struct {
	ID            string
	PlantID       string
	UserID        string
	TaskType      TaskType
	Title         string
	Description   string
	DueDate       time.Time
	Completed     bool
	CompletedAt   *time.Time
	Recurring     bool
	FrequencyDays int
	CreatedAt     time.Time
}

type Achievement struct {
	ID              string
	UserID          string
	AchievementType string
	Title           string
	Description     string
	CoinsReward     int
	PointsReward    int
	UnlockedAt      time.Time
}

type Profile struct {
	ID              string
	FullName        string
	ExperienceLevel string
	QuizCompleted   bool
	Coins           int
	Points          int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CommunityPost struct {
	ID        string
	UserID    string
	PlantID   string
	Title     string
	Content   string
	Likes     int
	CreatedAt time.Time
}
