package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"yatrasetu/internal/models/db_models"
	"yatrasetu/internal/models/request_models"
	"yatrasetu/pkg/utils"
)

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) CreateReview(ctx context.Context, review *db_models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepo) ListReviews(ctx context.Context, village string, page, pageSize int) ([]db_models.Review, error) {
	args := m.Called(ctx, village, page, pageSize)
	if rows := args.Get(0); rows != nil {
		return rows.([]db_models.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepo) IncrementHelpful(ctx context.Context, id uuid.UUID) (*db_models.Review, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*db_models.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepo) DeleteReview(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestAddReview(t *testing.T) {
	repo := &mockReviewRepo{}
	userID := uuid.New()
	repo.On("CreateReview", mock.Anything, mock.MatchedBy(func(r *db_models.Review) bool {
		return r.UserID == userID && r.Village == "Hodka" && r.Rating == 5 && r.Body == "Stayed in a bhunga"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*db_models.Review).ID = uuid.New()
	}).Return(nil).Once()

	svc := NewReviewService(repo)
	got, err := svc.AddReview(context.Background(), userID, request_models.AddReviewRequest{
		Name:     " Priya ",
		Location: "Pune",
		Village:  "Hodka",
		Rating:   5,
		Review:   "Stayed in a bhunga ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Priya", got.Name)
	assert.Equal(t, userID.String(), got.UserID)
	assert.NotEqual(t, uuid.Nil.String(), got.ID)
	repo.AssertExpectations(t)
}

func TestAddReviewRejectsRating(t *testing.T) {
	repo := &mockReviewRepo{}
	svc := NewReviewService(repo)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.AddReview(context.Background(), uuid.New(), request_models.AddReviewRequest{Village: "x", Rating: rating})
		assert.ErrorIs(t, err, utils.ErrInvalidRating)
	}
	repo.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
}

func TestListReviewsPaging(t *testing.T) {
	repo := &mockReviewRepo{}
	repo.On("ListReviews", mock.Anything, "Bhujodi", 2, 10).Return([]db_models.Review{
		{Village: "Bhujodi", Rating: 4, Body: "Weavers were welcoming", Helpful: 3},
	}, nil).Once()

	svc := NewReviewService(repo)
	page, err := svc.ListReviews(context.Background(), " Bhujodi ", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 3, page.Items[0].Helpful)

	_, err = svc.ListReviews(context.Background(), "", 0, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
	_, err = svc.ListReviews(context.Background(), "", 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
	repo.AssertExpectations(t)
}

func TestListReviewsDatabaseError(t *testing.T) {
	repo := &mockReviewRepo{}
	repo.On("ListReviews", mock.Anything, "", 1, 10).Return(nil, utils.ErrDatabaseError).Once()

	_, err := NewReviewService(repo).ListReviews(context.Background(), "", 1, 10)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestMarkHelpful(t *testing.T) {
	repo := &mockReviewRepo{}
	id := uuid.New()
	repo.On("IncrementHelpful", mock.Anything, id).Return(&db_models.Review{Helpful: 8}, nil).Once()
	missing := uuid.New()
	repo.On("IncrementHelpful", mock.Anything, missing).Return(nil, utils.ErrReviewNotFound).Once()

	svc := NewReviewService(repo)
	got, err := svc.MarkHelpful(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Helpful)

	_, err = svc.MarkHelpful(context.Background(), missing)
	assert.ErrorIs(t, err, utils.ErrReviewNotFound)
}

func TestReviewDateFromCreatedAt(t *testing.T) {
	var r db_models.Review
	assert.Equal(t, "", toReviewResponse(r).Date)

	r.CreatedAt = 1700000000
	assert.Equal(t, "2023-11-14", toReviewResponse(r).Date)
}

func TestRemoveReview(t *testing.T) {
	repo := &mockReviewRepo{}
	id, missing := uuid.New(), uuid.New()
	repo.On("DeleteReview", mock.Anything, id).Return(nil).Once()
	repo.On("DeleteReview", mock.Anything, missing).Return(utils.ErrReviewNotFound).Once()

	svc := NewReviewService(repo)
	require.NoError(t, svc.RemoveReview(context.Background(), id))
	assert.ErrorIs(t, svc.RemoveReview(context.Background(), missing), utils.ErrReviewNotFound)
	repo.AssertExpectations(t)
}
