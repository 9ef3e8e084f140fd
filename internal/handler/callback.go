package handler

import "strings"

// CallbackAction is the closed set of button commands. Wire strings like
// "set|mykey" are decoded here at the transport boundary so the rest of
// the handlers never match on raw callback data.
type CallbackAction int

const (
	ActionUnknown CallbackAction = iota
	ActionSelectModel
	ActionKeyInfo
	ActionSetActive
	ActionDeleteKey
	ActionRenameKey
	ActionAddKey
	ActionRefresh
	ActionBack
)

// CallbackCmd is one decoded button press.
type CallbackCmd struct {
	Action CallbackAction
	Arg    string
}

// ParseCallback decodes an "action|argument" wire string.
func ParseCallback(data string) CallbackCmd {
	action, arg, _ := strings.Cut(data, "|")
	switch action {
	case "model":
		return CallbackCmd{Action: ActionSelectModel, Arg: arg}
	case "keyinfo":
		return CallbackCmd{Action: ActionKeyInfo, Arg: arg}
	case "set":
		return CallbackCmd{Action: ActionSetActive, Arg: arg}
	case "del":
		return CallbackCmd{Action: ActionDeleteKey, Arg: arg}
	case "rename":
		return CallbackCmd{Action: ActionRenameKey, Arg: arg}
	case "add_key":
		return CallbackCmd{Action: ActionAddKey}
	case "refresh":
		return CallbackCmd{Action: ActionRefresh}
	case "back":
		return CallbackCmd{Action: ActionBack}
	default:
		return CallbackCmd{Action: ActionUnknown, Arg: arg}
	}
}
