package keyboard

import (
	"fmt"
	"strings"
)

// Callback actions
const (
	ActionStart    = "action"
	ActionOption   = "opt"
	ActionDone     = "done"
	ActionSkip     = "skip"
	ActionGenerate = "gen"
	ActionDownload = "dl"
	ActionConfirm  = "confirm"
)

// CallbackData represents parsed callback data
type CallbackData struct {
	Action string // "action", "opt", "done", "skip", "gen", "dl", "confirm"
	Value  string // The parameter, possibly "questionID:optionID"
}

// ParseCallback parses callback data string
func ParseCallback(data string) (*CallbackData, error) {
	parts := strings.SplitN(data, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid callback format: %s", data)
	}

	return &CallbackData{
		Action: parts[0],
		Value:  parts[1],
	}, nil
}

// EncodeCallback creates callback data string
func EncodeCallback(action, value string) string {
	return fmt.Sprintf("%s:%s", action, value)
}

// SplitValue parses a "questionID:optionID" callback value
func SplitValue(value string) (string, string) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return value, ""
	}
	return parts[0], parts[1]
}
