package models

import "time"

// Room is the durable record for one shared document. The id is an opaque
// server-generated key; the store is the authoritative owner of Code once no
// hub is active for the room.
type Room struct {
	ID        string    `json:"roomId" gorm:"primaryKey;column:id"`
	Code      string    `json:"code" gorm:"column:code"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Frame types on the collaboration channel.
const (
	FrameInit       = "init"
	FrameCodeUpdate = "code_update"
	FrameCursor     = "cursor"
)

// WSFrame is one JSON message on the room channel, both directions. Optional
// fields are pointers so the handler can tell a missing field from a zero
// value.
type WSFrame struct {
	Type       string  `json:"type"`
	Code       *string `json:"code,omitempty"`
	ClientID   *string `json:"clientId,omitempty"`
	LineNumber *int    `json:"lineNumber,omitempty"`
	Column     *int    `json:"column,omitempty"`
}

func InitFrame(code string) WSFrame {
	return WSFrame{Type: FrameInit, Code: &code}
}

func CodeUpdateFrame(code string) WSFrame {
	return WSFrame{Type: FrameCodeUpdate, Code: &code}
}

func CursorFrame(clientID string, line, column int) WSFrame {
	return WSFrame{Type: FrameCursor, ClientID: &clientID, LineNumber: &line, Column: &column}
}

type AutocompleteRequest struct {
	Code           string `json:"code"`
	CursorPosition int    `json:"cursorPosition"`
	Language       string `json:"language"`
}

type AutocompleteResponse struct {
	Suggestion string `json:"suggestion"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
