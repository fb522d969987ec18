package services

import (
	"errors"

	"turiapp/internal/apperrors"
	"turiapp/internal/models"
	"turiapp/internal/repository"
	"turiapp/internal/utils"

	"github.com/rs/zerolog"
)

// Moderation actions accepted by Moderate.
const (
	ModerateHide   = "hide"
	ModerateShow   = "show"
	ModerateDelete = "delete"
)

type CommentService struct {
	comments repository.CommentStore
	reviews  repository.ReviewStore
	log      zerolog.Logger
}

func NewCommentService(comments repository.CommentStore, reviews repository.ReviewStore, log zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, reviews: reviews, log: log}
}

// Thread returns the review's comments as a forest of top-level comments
// with nested replies. Hidden comments stay visible to their author and to
// moderators; replies under an invisible comment are dropped with it.
func (s *CommentService) Thread(reviewID uint, viewer *models.User) ([]*models.Comment, error) {
	if _, err := s.reviews.GetReview(reviewID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Review")
		}
		return nil, apperrors.NewInternal(err)
	}

	all, err := s.comments.ListCommentsByReview(reviewID)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}

	visible := make([]models.Comment, 0, len(all))
	for _, c := range all {
		if c.IsPublic || canSeeHidden(viewer, &c) {
			c.ContentHTML = utils.RenderMarkdown(c.Content)
			visible = append(visible, c)
		}
	}
	return buildCommentTree(visible), nil
}

func canSeeHidden(viewer *models.User, c *models.Comment) bool {
	return viewer != nil && (viewer.ID == c.UserID || viewer.IsModerator())
}

// buildCommentTree indexes replies under their parent in one pass; the
// input is already ordered oldest-first, so children stay in posting order.
func buildCommentTree(flat []models.Comment) []*models.Comment {
	byID := make(map[uint]*models.Comment, len(flat))
	for i := range flat {
		byID[flat[i].ID] = &flat[i]
	}
	var roots []*models.Comment
	for i := range flat {
		node := &flat[i]
		if node.ParentID != nil {
			if parent, ok := byID[*node.ParentID]; ok {
				parent.Replies = append(parent.Replies, node)
			}
			continue
		}
		roots = append(roots, node)
	}
	return roots
}

type CommentInput struct {
	ReviewID uint
	ParentID *uint
	Content  string
}

// Create posts a comment. A user gets one top-level comment per review but
// may reply without limit; a reply's parent must sit on the same review.
func (s *CommentService) Create(actor *models.User, input CommentInput) (*models.Comment, error) {
	if _, err := s.reviews.GetReview(input.ReviewID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Review")
		}
		return nil, apperrors.NewInternal(err)
	}

	if input.ParentID != nil {
		parent, err := s.comments.GetComment(*input.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperrors.NewNotFound("Parent comment")
			}
			return nil, apperrors.NewInternal(err)
		}
		if parent.ReviewID != input.ReviewID {
			return nil, apperrors.NewValidation("parent comment does not belong to this review")
		}
	} else {
		commented, err := s.comments.HasTopLevelComment(input.ReviewID, actor.ID)
		if err != nil {
			return nil, apperrors.NewInternal(err)
		}
		if commented {
			return nil, apperrors.NewConflict("You have already commented on this review")
		}
	}

	comment := &models.Comment{
		ReviewID: input.ReviewID,
		UserID:   actor.ID,
		ParentID: input.ParentID,
		Content:  input.Content,
		IsPublic: true,
	}
	if err := s.comments.CreateComment(comment); err != nil {
		return nil, apperrors.NewInternal(err)
	}

	s.log.Info().Uint("comment_id", comment.ID).Uint("review_id", input.ReviewID).Uint("user_id", actor.ID).Msg("comment created")
	return comment, nil
}

// Get returns a single comment. A hidden comment reads as missing to
// everyone but its author and moderators.
func (s *CommentService) Get(id uint, viewer *models.User) (*models.Comment, error) {
	comment, err := s.comments.GetComment(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Comment")
		}
		return nil, apperrors.NewInternal(err)
	}
	if !comment.IsPublic && !canSeeHidden(viewer, comment) {
		return nil, apperrors.NewNotFound("Comment")
	}
	comment.ContentHTML = utils.RenderMarkdown(comment.Content)
	return comment, nil
}

// Update lets only the author edit the text.
func (s *CommentService) Update(actor *models.User, id uint, content string) (*models.Comment, error) {
	comment, err := s.comments.GetComment(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("Comment")
		}
		return nil, apperrors.NewInternal(err)
	}
	if comment.UserID != actor.ID {
		return nil, apperrors.NewForbidden("Unauthorized to update this comment")
	}
	comment.Content = content
	if err := s.comments.UpdateComment(comment); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return comment, nil
}

// Delete is open to the author and to moderators.
func (s *CommentService) Delete(actor *models.User, id uint) error {
	comment, err := s.comments.GetComment(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("Comment")
		}
		return apperrors.NewInternal(err)
	}
	if comment.UserID != actor.ID && !actor.IsModerator() {
		return apperrors.NewForbidden("Unauthorized to delete this comment")
	}
	if err := s.comments.DeleteComment(id); err != nil {
		return apperrors.NewInternal(err)
	}
	s.log.Info().Uint("comment_id", id).Uint("user_id", actor.ID).Msg("comment deleted")
	return nil
}

// Moderate hides, shows or deletes a comment. Role gating happens at the
// route; the service only validates the action.
func (s *CommentService) Moderate(actor *models.User, id uint, action string) error {
	var err error
	switch action {
	case ModerateHide:
		err = s.comments.SetCommentVisibility(id, false)
	case ModerateShow:
		err = s.comments.SetCommentVisibility(id, true)
	case ModerateDelete:
		err = s.comments.DeleteComment(id)
	default:
		return apperrors.NewValidation("action must be one of: hide, show, delete")
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("Comment")
		}
		return apperrors.NewInternal(err)
	}
	s.log.Info().Uint("comment_id", id).Str("action", action).Uint("moderator_id", actor.ID).Msg("comment moderated")
	return nil
}
