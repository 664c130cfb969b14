package video

import "trustrate-srv/internal/model"

// GetWithCommentsInput bounds one combined fetch. MaxComments <= 0 falls back
// to the usecase default.
type GetWithCommentsInput struct {
	VideoID     string
	MaxComments int
}

// GetWithCommentsOutput carries the video and its comments, already mapped to
// domain models.
type GetWithCommentsOutput struct {
	Video    *model.Video
	Comments []model.Comment
}
