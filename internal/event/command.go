package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMalformed reports a frame that is not a JSON object of the expected shape.
	ErrMalformed = errors.New("malformed frame")

	// ErrUnknownType reports a well-formed frame with an unsupported type tag.
	ErrUnknownType = errors.New("unknown frame type")
)

// Command is a client-to-server request. The set of implementations is closed.
type Command interface {
	command()
}

// SendText asks the server to relay Text to the sender's room.
type SendText struct {
	Text string
}

// ChangeNick asks the server to rename the sender.
type ChangeNick struct {
	Nick string
}

func (SendText) command()   {}
func (ChangeNick) command() {}

type envelope struct {
	Type string  `json:"type"`
	Text *string `json:"text"`
	Nick *string `json:"nick"`
}

// Decode parses one inbound frame. Frames that fail to parse, or whose
// payload field is missing or not a string, return ErrMalformed. Frames with
// any other type return ErrUnknownType.
func Decode(raw []byte) (Command, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch env.Type {
	case TypeMsg:
		if env.Text == nil {
			return nil, fmt.Errorf("%w: %s frame without text", ErrMalformed, TypeMsg)
		}
		return SendText{Text: *env.Text}, nil
	case TypeNick:
		if env.Nick == nil {
			return nil, fmt.Errorf("%w: %s frame without nick", ErrMalformed, TypeNick)
		}
		return ChangeNick{Nick: *env.Nick}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, env.Type)
	}
}
