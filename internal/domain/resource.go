package domain

type Resource struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Link        string  `json:"link"`
	Duration    string  `json:"duration"`
	Level       string  `json:"level"`
	Rating      float64 `json:"rating"`
}

// ResourceCategory describe un filtro del catalogo.
type ResourceCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
