package errcode

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

type codeJSON struct {
	Category string `json:"category"`
	Value    int    `json:"value"`
	Message  string `json:"message"`
}

// MarshalJSON renders c as {"category":...,"value":...,"message":...} where
// message is the resolved Message.
func (c Code[B, I, Cat, Cond]) MarshalJSON() ([]byte, error) {
	return json.Marshal(codeJSON{
		Category: c.CategoryName(),
		Value:    c.Value(),
		Message:  c.Message(),
	})
}

// MarshalZerologObject lets a Code be logged with Event.Object.
func (c Code[B, I, Cat, Cond]) MarshalZerologObject(e *zerolog.Event) {
	e.Str("category", c.CategoryName()).
		Int("value", c.Value()).
		Str("message", c.Message())
}
