package core

const (
	PixieName      = "PitPixie"
	PixieUserAgent = "PitPixie/0.1"
	PixieVersion   = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GroundingPair is one retrieved (title, snippet) unit used to ground an
// answer in indexed source material. Snippets are capped at retrieval time.
type GroundingPair struct {
	Title   string
	Snippet string
}

// Turn is one completed question/answer exchange. Immutable once appended
// to a session's history.
type Turn struct {
	Question string
	Answer   string
}
