package model

// APISettings holds the credentials and model for the enhancement pass.
type APISettings struct {
	APIKey string `json:"apiKey"`
	Model  string `json:"model"`
}

// Settings holds the scalar defaults and the template collection.
type Settings struct {
	UserName         string      `json:"userName"`
	DefaultLocation  string      `json:"defaultLocation"`
	DefaultWorkHours WorkHours   `json:"defaultWorkHours"`
	API              APISettings `json:"api"`
	Templates        []Template  `json:"templates"`
}

// Document is the complete persisted state. The store always reads and
// writes it whole, never as a partial patch.
type Document struct {
	Reports  []DailyReport `json:"reports"`
	Settings Settings      `json:"settings"`
}

// Default values seeded into a fresh document.
const (
	DefaultLocation  = "リモート"
	DefaultWorkStart = "09:30"
	DefaultWorkEnd   = "18:30"
	DefaultModel     = "gpt-4o"
)

// DefaultDocument returns the document created on first access when no
// persisted state exists yet.
func DefaultDocument() *Document {
	return &Document{
		Reports: []DailyReport{},
		Settings: Settings{
			DefaultLocation: DefaultLocation,
			DefaultWorkHours: WorkHours{
				Start: DefaultWorkStart,
				End:   DefaultWorkEnd,
			},
			API: APISettings{
				Model: DefaultModel,
			},
			Templates: []Template{},
		},
	}
}
