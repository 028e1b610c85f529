package data

type Item struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	ImageName string `json:"image_name"`
}

// Items is the envelope returned by GET /items.
type Items struct {
	Items []Item `json:"items"`
}
