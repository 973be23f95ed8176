package constant

type CommentStatus string

const (
	CommentStatusVisible CommentStatus = "VISIBLE"
	CommentStatusHidden  CommentStatus = "HIDDEN"
)

func (s CommentStatus) Valid() bool {
	return s == CommentStatusVisible || s == CommentStatusHidden
}
