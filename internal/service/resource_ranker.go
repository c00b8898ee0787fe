package service

import (
	"sort"

	"lifemap/internal/domain"
)

// CategoryAll desactiva el filtro por categoria.
const CategoryAll = "all"

const fallbackPreferredCategory = "personal"

var preferredCategoryByTrait = map[domain.TraitName]string{
	domain.TraitLeadership: "leadership",
	domain.TraitCreative:   "personal",
	domain.TraitAnalytical: "career",
	domain.TraitSocial:     "personal",
	domain.TraitService:    "spiritual",
}

// PreferredCategory traduce un rasgo a la categoria de recursos que prioriza.
func PreferredCategory(trait domain.TraitName) string {
	if category, ok := preferredCategoryByTrait[trait]; ok {
		return category
	}
	return fallbackPreferredCategory
}

// RankResources ordena una copia del catalogo. Sin rasgo devuelve el orden natural.
//
// Con rasgo se aplica un unico comparador estable: la categoria preferida va
// primero y conserva su orden original; el resto se ordena por rating
// descendente. Los preferidos no se reordenan por rating entre si.
func RankResources(catalog []domain.Resource, dominant *domain.TraitName) []domain.Resource {
	ranked := make([]domain.Resource, len(catalog))
	copy(ranked, catalog)
	if dominant == nil {
		return ranked
	}

	preferred := PreferredCategory(*dominant)
	sort.SliceStable(ranked, func(i, j int) bool {
		iPref := ranked[i].Category == preferred
		jPref := ranked[j].Category == preferred
		switch {
		case iPref && !jPref:
			return true
		case jPref && !iPref:
			return false
		case iPref && jPref:
			return false
		default:
			return ranked[i].Rating > ranked[j].Rating
		}
	})
	return ranked
}

// FilterResourcesByCategory se aplica despues de rankear. Una categoria
// desconocida devuelve una lista vacia, no un error.
func FilterResourcesByCategory(ranked []domain.Resource, category string) []domain.Resource {
	if category == "" || category == CategoryAll {
		return ranked
	}
	filtered := make([]domain.Resource, 0, len(ranked))
	for _, r := range ranked {
		if r.Category == category {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
