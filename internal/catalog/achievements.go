package catalog

const (
	AchievementFirstPlant     = "first_plant"
	AchievementWeekStreak     = "week_streak"
	AchievementPlantCollector = "plant_collector"
	AchievementGreenThumb     = "green_thumb"
	AchievementCommunityStar  = "community_star"
)

// AchievementSpec is one row of the achievement table: milestone identity
// plus the coin/point payout applied on unlock.
type AchievementSpec struct {
	Type        string
	Title       string
	Description string
	Coins       int
	Points      int
}

var achievements = []AchievementSpec{
	{
		Type:        AchievementFirstPlant,
		Title:       "Primeira Planta",
		Description: "Cadastrou sua primeira planta",
		Coins:       50,
		Points:      100,
	},
	{
		Type:        AchievementWeekStreak,
		Title:       "Semana Dedicada",
		Description: "Completou tarefas por 7 dias seguidos",
		Coins:       100,
		Points:      200,
	},
	{
		Type:        AchievementPlantCollector,
		Title:       "Colecionador",
		Description: "Possui 10 plantas cadastradas",
		Coins:       200,
		Points:      500,
	},
	{
		Type:        AchievementGreenThumb,
		Title:       "Mão Verde",
		Description: "Manteve uma planta saudável por 30 dias",
		Coins:       150,
		Points:      300,
	},
	{
		Type:        AchievementCommunityStar,
		Title:       "Estrela da Comunidade",
		Description: "Recebeu 50 curtidas em posts",
		Coins:       250,
		Points:      600,
	},
}

// Achievements returns the closed achievement table in unlock-check order.
func Achievements() []AchievementSpec {
	out := make([]AchievementSpec, len(achievements))
	copy(out, achievements)
	return out
}

// AchievementByType resolves one spec; ok is false for unknown types.
func AchievementByType(achievementType string) (AchievementSpec, bool) {
	for _, spec := range achievements {
		if spec.Type == achievementType {
			return spec, true
		}
	}
	return AchievementSpec{}, false
}
