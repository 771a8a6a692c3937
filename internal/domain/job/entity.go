package job

// Posting is an externally sourced job ad. Postings are read fresh from the
// feed on every fetch and never persisted; the only identity they carry is
// the derived Key used for deduplication.
type Posting struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Skills      []string `json:"skills,omitempty"`
	URL         string   `json:"url,omitempty"`
	Source      string   `json:"source,omitempty"`
}

// Key derives the title+company deduplication key. Two distinct postings
// with the same title and company collide; that approximation is accepted.
func (p Posting) Key() string {
	return p.Title + "-" + p.Company
}
