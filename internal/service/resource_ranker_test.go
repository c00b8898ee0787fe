package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"lifemap/internal/domain"
)

func resourceIDs(resources []domain.Resource) []int {
	ids := make([]int, len(resources))
	for i, r := range resources {
		ids[i] = r.ID
	}
	return ids
}

func TestRankResources_NoTraitKeepsNaturalOrder(t *testing.T) {
	catalog := Catalog()
	ranked := RankResources(catalog, nil)
	if diff := cmp.Diff(resourceIDs(catalog), resourceIDs(ranked)); diff != "" {
		t.Fatalf("order changed (-want +got):\n%s", diff)
	}
}

func TestRankResources_AnalyticalPutsCareerFirst(t *testing.T) {
	catalog := Catalog()
	ranked := RankResources(catalog, traitPtr(domain.TraitAnalytical))
	if len(ranked) != len(catalog) {
		t.Fatalf("ranking changed length: %d vs %d", len(ranked), len(catalog))
	}

	careerCount := 0
	for _, r := range catalog {
		if r.Category == "career" {
			careerCount++
		}
	}
	for i, r := range ranked {
		if i < careerCount && r.Category != "career" {
			t.Fatalf("position %d: expected career, got %s", i, r.Category)
		}
		if i >= careerCount && r.Category == "career" {
			t.Fatalf("position %d: career resource after non-career block", i)
		}
	}
	for i := careerCount + 1; i < len(ranked); i++ {
		if ranked[i].Rating > ranked[i-1].Rating {
			t.Fatalf("ratings increase at %d: %.1f > %.1f", i, ranked[i].Rating, ranked[i-1].Rating)
		}
	}
}

func TestRankResources_PreferredKeepCatalogOrder(t *testing.T) {
	catalog := []domain.Resource{
		{ID: 1, Category: "career", Rating: 4.1},
		{ID: 2, Category: "personal", Rating: 4.9},
		{ID: 3, Category: "career", Rating: 4.9},
		{ID: 4, Category: "academic", Rating: 4.5},
		{ID: 5, Category: "career", Rating: 4.5},
	}
	ranked := RankResources(catalog, traitPtr(domain.TraitAnalytical))
	want := []int{1, 3, 5, 2, 4}
	if diff := cmp.Diff(want, resourceIDs(ranked)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestRankResources_DoesNotMutateInput(t *testing.T) {
	catalog := []domain.Resource{
		{ID: 1, Category: "academic", Rating: 4.0},
		{ID: 2, Category: "spiritual", Rating: 4.8},
	}
	_ = RankResources(catalog, traitPtr(domain.TraitService))
	if catalog[0].ID != 1 || catalog[1].ID != 2 {
		t.Fatalf("input slice reordered: %+v", catalog)
	}
}

func TestPreferredCategory(t *testing.T) {
	cases := map[domain.TraitName]string{
		domain.TraitLeadership: "leadership",
		domain.TraitCreative:   "personal",
		domain.TraitAnalytical: "career",
		domain.TraitSocial:     "personal",
		domain.TraitService:    "spiritual",
		"unknown":              "personal",
	}
	for trait, want := range cases {
		if got := PreferredCategory(trait); got != want {
			t.Fatalf("PreferredCategory(%q) = %q, want %q", trait, got, want)
		}
	}
}

func TestFilterResourcesByCategory(t *testing.T) {
	ranked := RankResources(Catalog(), traitPtr(domain.TraitLeadership))

	if got := FilterResourcesByCategory(ranked, CategoryAll); len(got) != len(ranked) {
		t.Fatalf("all should not filter: %d vs %d", len(got), len(ranked))
	}
	if got := FilterResourcesByCategory(ranked, ""); len(got) != len(ranked) {
		t.Fatalf("empty category should not filter")
	}

	spiritual := FilterResourcesByCategory(ranked, "spiritual")
	if len(spiritual) == 0 {
		t.Fatalf("expected spiritual resources")
	}
	for _, r := range spiritual {
		if r.Category != "spiritual" {
			t.Fatalf("unexpected category %s", r.Category)
		}
	}

	if got := FilterResourcesByCategory(ranked, "astrology"); got == nil || len(got) != 0 {
		t.Fatalf("unknown category should yield empty non-nil slice, got %v", got)
	}
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	c := Catalog()
	c[0].Title = "changed"
	if Catalog()[0].Title == "changed" {
		t.Fatalf("catalog shares backing array")
	}
	if len(ResourceCategories()) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(ResourceCategories()))
	}
}
