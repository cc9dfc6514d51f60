package states

// State is a single reference record from the bundled dataset. Funfacts is only
// populated on merged copies handed out by the API layer.
type State struct {
	State           string   `json:"state"`
	Slug            string   `json:"slug"`
	Code            string   `json:"code"`
	Nickname        string   `json:"nickname"`
	AdmissionDate   string   `json:"admission_date"`
	AdmissionNumber int      `json:"admission_number"`
	CapitalCity     string   `json:"capital_city"`
	Population      int      `json:"population"`
	PopulationRank  int      `json:"population_rank"`
	Funfacts        []string `json:"funfacts,omitempty"`
}

// NonContiguous lists the codes excluded by the contiguous filter
var NonContiguous = []string{"AK", "HI"}
