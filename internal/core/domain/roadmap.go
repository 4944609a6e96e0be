package domain

// RoadmapRecord is a single (country, launch date) pair from the roadmap sheet.
// Both fields are non-empty after normalisation. Duplicates are preserved.
type RoadmapRecord struct {
	Country    string `json:"country"`
	LaunchDate string `json:"launchDate"`
}

// ProjectDocument is a project-tracking document fetched for one project ID.
type ProjectDocument struct {
	ProjectID string `json:"projectId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	URL       string `json:"url"`
}

// Ref returns the reporting view of the document (no content).
func (d ProjectDocument) Ref() DocumentRef {
	return DocumentRef{
		ProjectID: d.ProjectID,
		Title:     d.Title,
		URL:       d.URL,
	}
}

// DocumentRef identifies a fetched document in a SyncResult.
type DocumentRef struct {
	ProjectID string `json:"projectId"`
	Title     string `json:"title"`
	URL       string `json:"url"`
}
