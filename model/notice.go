package model

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a one-shot message shown to the user on the next page view.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}
