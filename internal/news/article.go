package news

import "time"

type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Article is one news item as returned by the GNews search API.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content,omitempty"`
	URL         string    `json:"url"`
	Image       string    `json:"image"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      Source    `json:"source"`
}

// Response is the search envelope shared by GNews and the /news proxy.
type Response struct {
	TotalArticles int       `json:"totalArticles"`
	Articles      []Article `json:"articles"`
}
