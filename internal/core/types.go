package core

const (
	AppName       = "GroundChat"
	AppUserAgent  = "GroundChat/0.1"
	RepositoryURL = "https://github.com/sandevgo/groundchat"
	AppVersion    = "0.1.0"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one transcript entry. Messages are never mutated after creation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NoContextID is the selection sentinel meaning "answer without grounding".
const NoContextID = ""

// Context is a user-supplied document used to ground the model's answer.
type Context struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Tokens  int    `json:"tokens"`
}
