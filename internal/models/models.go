package models

import "time"

type Language string

const (
	LangJavaScript Language = "javascript"
	LangPython     Language = "python"
	LangJava       Language = "java"
	LangCPP        Language = "cpp"
)

// DefaultLanguage is used when room creation omits a language.
const DefaultLanguage = LangJavaScript

func (l Language) Valid() bool {
	switch l {
	case LangJavaScript, LangPython, LangJava, LangCPP:
		return true
	}
	return false
}

var templates = map[Language]string{
	LangJavaScript: "// Write your code here\nfunction solution() {\n  // your solution\n}\n",
	LangPython:     "# Write your code here\ndef solution():\n    pass\n",
	LangJava:       "// Write your code here\npublic class Main {\n    public static void main(String[] args) {\n    }\n}\n",
	LangCPP:        "// Write your code here\n#include <iostream>\n\nint main() {\n    return 0;\n}\n",
}

// Template returns the starter code for a language, empty if unknown.
func Template(l Language) string { return templates[l] }

type Room struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Language  Language  `json:"language"`
	Task      string    `json:"task"`
	TaskTitle string    `json:"taskTitle"`
	CreatedAt time.Time `json:"createdAt"`
}

type Participant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsOnline bool   `json:"isOnline"`
}

/*** Room channel protocol ***/

// Inbound event types.
const (
	EventCodeUpdate   = "code_update"
	EventTaskUpdate   = "task_update"
	EventJoin         = "join"
	EventChatMessage  = "chat_message"
	EventOutputUpdate = "output_update"
)

// Event is the inbound frame envelope; only the fields for the given
// Type are meaningful. Title is a pointer so an omitted title can be
// told apart from an empty one.
type Event struct {
	Type          string  `json:"type"`
	Code          string  `json:"code"`
	Task          string  `json:"task"`
	Title         *string `json:"title"`
	Name          string  `json:"name"`
	Text          string  `json:"text"`
	Output        string  `json:"output"`
	Error         *string `json:"error"`
	ExecutionTime int     `json:"executionTime"`
}

// Outbound frames. Type is always set by the sender.

type CodeFrame struct {
	Type string `json:"type"` // "code"
	Code string `json:"code"`
}

type TaskFrame struct {
	Type  string  `json:"type"` // "task"
	Task  string  `json:"task"`
	Title *string `json:"title"`
}

type ParticipantsFrame struct {
	Type         string        `json:"type"` // "participants"
	Participants []Participant `json:"participants"`
}

type MeFrame struct {
	Type string `json:"type"` // "me"
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ChatFrame struct {
	Type      string `json:"type"` // "chat"
	UserName  string `json:"userName"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type OutputFrame struct {
	Type          string  `json:"type"` // "output"
	Output        string  `json:"output"`
	Error         *string `json:"error"`
	ExecutionTime int     `json:"executionTime"`
}
