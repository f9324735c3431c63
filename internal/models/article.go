package models

// Article is a static editorial piece served by the articles section.
type Article struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// Preferences is the small per-client UI state that survives page loads.
type Preferences struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}
