package service

import (
	"strings"
	"time"

	"lifemap/internal/domain"
)

// traitKeywords asocia cada rasgo con los fragmentos que lo suman.
// La comparacion distingue mayusculas, igual que las opciones del test.
var traitKeywords = map[domain.TraitName][]string{
	domain.TraitLeadership: {"Leadership", "business", "Leading"},
	domain.TraitCreative:   {"Creativity", "Arts", "creative"},
	domain.TraitAnalytical: {"Analytical", "Technology", "Science"},
	domain.TraitSocial:     {"Communication", "relationships", "social"},
	domain.TraitService:    {"Helping", "community", "impact"},
}

var recommendations = map[domain.TraitName]domain.Recommendation{
	domain.TraitLeadership: {
		Title:       "Natural Leader",
		Description: "You have strong leadership potential and enjoy inspiring others.",
		Suggestions: []string{
			"Join student government or leadership clubs",
			"Practice public speaking and presentation skills",
			"Read books about leadership and management",
			"Volunteer to lead projects or initiatives",
		},
	},
	domain.TraitCreative: {
		Title:       "Creative Innovator",
		Description: "You have a strong creative side and enjoy artistic expression.",
		Suggestions: []string{
			"Explore different forms of art and creativity",
			"Take courses in design, writing, or music",
			"Join creative communities and workshops",
			"Start a personal creative project",
		},
	},
	domain.TraitAnalytical: {
		Title:       "Problem Solver",
		Description: "You excel at analytical thinking and solving complex problems.",
		Suggestions: []string{
			"Learn programming or data analysis",
			"Join STEM clubs and competitions",
			"Practice logical reasoning and critical thinking",
			"Explore careers in technology or research",
		},
	},
	domain.TraitSocial: {
		Title:       "People Connector",
		Description: "You have strong social skills and enjoy building relationships.",
		Suggestions: []string{
			"Develop communication and interpersonal skills",
			"Join clubs focused on networking and socializing",
			"Practice active listening and empathy",
			"Consider careers in counseling or human resources",
		},
	},
	domain.TraitService: {
		Title:       "Community Builder",
		Description: "You are passionate about helping others and making a positive impact.",
		Suggestions: []string{
			"Volunteer for local community organizations",
			"Join service-oriented clubs and initiatives",
			"Learn about social issues and advocacy",
			"Consider careers in nonprofit or social work",
		},
	},
}

// TallyTraits cuenta cuantas respuestas coinciden con cada rasgo.
// Una respuesta puede sumar a varios rasgos a la vez.
func TallyTraits(answers []domain.Answer) domain.TraitTally {
	tally := make(domain.TraitTally, len(domain.TraitOrder))
	for _, trait := range domain.TraitOrder {
		tally[trait] = 0
	}
	for _, answer := range answers {
		for _, trait := range domain.TraitOrder {
			if containsAny(answer.Choice, traitKeywords[trait]) {
				tally[trait]++
			}
		}
	}
	return tally
}

// DominantTrait devuelve el rasgo con mas coincidencias. En empate gana el
// primero de domain.TraitOrder, asi que una entrada vacia da leadership.
func DominantTrait(tally domain.TraitTally) domain.TraitName {
	dominant := domain.TraitOrder[0]
	for _, trait := range domain.TraitOrder[1:] {
		if tally[trait] > tally[dominant] {
			dominant = trait
		}
	}
	return dominant
}

// RecommendationFor devuelve el paquete fijo del rasgo, o el de service si no existe.
func RecommendationFor(trait domain.TraitName) domain.Recommendation {
	rec, ok := recommendations[trait]
	if !ok {
		rec = recommendations[domain.TraitService]
	}
	rec.Suggestions = append([]string(nil), rec.Suggestions...)
	return rec
}

// ScoreAssessment calcula el resultado del test. No valida la entrada: las
// respuestas faltantes o desconocidas simplemente no suman. Si una pregunta
// aparece repetida se queda la ultima respuesta.
func ScoreAssessment(answers []domain.Answer, completedAt time.Time) domain.AssessmentResult {
	bundled := make(map[string]string, len(answers))
	order := make([]string, 0, len(answers))
	for _, answer := range answers {
		if _, seen := bundled[answer.QuestionID]; !seen {
			order = append(order, answer.QuestionID)
		}
		bundled[answer.QuestionID] = answer.Choice
	}

	deduped := make([]domain.Answer, 0, len(order))
	for _, id := range order {
		deduped = append(deduped, domain.Answer{QuestionID: id, Choice: bundled[id]})
	}

	dominant := DominantTrait(TallyTraits(deduped))
	return domain.AssessmentResult{
		DominantTrait:  dominant,
		Answers:        bundled,
		CompletedAt:    completedAt.UTC(),
		Recommendation: RecommendationFor(dominant),
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
