package generation

const (
	TaskProductDescription      = "genProductDescription"
	TaskProductShortDescription = "genProductShortDescription"
	TaskCheckCredits            = "checkCredits"
	TaskAddSite                 = "addWPSiteToAIKTP"
)

// RecordInfo is the flat metadata map sent along with a generation task.
type RecordInfo map[string]string

// Request is the body of a generation call.
type Request struct {
	Task       string     `json:"task"`
	RecordInfo RecordInfo `json:"recordInfo,omitempty"`
}

// ConnectRequest registers this site with the remote account.
type ConnectRequest struct {
	Task    string `json:"task"`
	SiteURL string `json:"wpURL"`
	Token   string `json:"wpToken"`
}

type ConnectResult struct {
	SiteID string `json:"siteId"`
}
