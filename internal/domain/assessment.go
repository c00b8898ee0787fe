package domain

import "time"

// TraitName identifica uno de los cinco perfiles del test de autodescubrimiento.
type TraitName string

const (
	TraitLeadership TraitName = "leadership"
	TraitCreative   TraitName = "creative"
	TraitAnalytical TraitName = "analytical"
	TraitSocial     TraitName = "social"
	TraitService    TraitName = "service"
)

// TraitOrder es el orden fijo de enumeracion; decide los empates.
var TraitOrder = []TraitName{
	TraitLeadership,
	TraitCreative,
	TraitAnalytical,
	TraitSocial,
	TraitService,
}

// Valid indica si el rasgo pertenece a la enumeracion fija.
func (t TraitName) Valid() bool {
	for _, known := range TraitOrder {
		if t == known {
			return true
		}
	}
	return false
}

// Answer es la eleccion libre del usuario para una pregunta.
type Answer struct {
	QuestionID string `json:"question_id"`
	Choice     string `json:"choice"`
}

// TraitTally acumula coincidencias por rasgo durante un calculo.
type TraitTally map[TraitName]int

type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Suggestions []string `json:"suggestions"`
}

// AssessmentResult se guarda una sola vez por usuario y se sobrescribe al repetir el test.
type AssessmentResult struct {
	DominantTrait  TraitName         `json:"dominant_trait"`
	Answers        map[string]string `json:"answers"`
	CompletedAt    time.Time         `json:"completed_at"`
	Recommendation Recommendation    `json:"recommendation"`
}

type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"question"`
	Options []string `json:"options"`
}
