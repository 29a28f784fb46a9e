package model

const (
	CategoryIndustry = "industry"
	CategoryCompany  = "company"
)

// Story is one parsed digest item. Rank is 1-based and assigned in parse
// order; Summary, Impact and URL may be empty when the model omitted them.
type Story struct {
	Rank     int
	Category string
	Title    string
	URL      string
	Summary  string
	Impact   string
}
