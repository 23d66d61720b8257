package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"winestudy/internal/model"
	"winestudy/internal/repository"
	"winestudy/internal/service"

	"github.com/stretchr/testify/suite"
)

type TastingServiceTestSuite struct {
	suite.Suite

	tastings service.TastingService
	progress service.ProgressService
	ctx      context.Context
}

func (s *TastingServiceTestSuite) SetupTest() {
	db := newTestDB(s.T())
	progressRepo := repository.NewGormProgressRepository()
	s.tastings = service.NewTastingService(db, repository.NewGormTastingRepository(), progressRepo)
	s.progress = service.NewProgressService(db, progressRepo)
	s.ctx = context.Background()
}

func TestTastingService(t *testing.T) {
	suite.Run(t, new(TastingServiceTestSuite))
}

func (s *TastingServiceTestSuite) create(userID, wineName string) *model.TastingNote {
	note, err := s.tastings.Create(s.ctx, userID, &model.CreateTastingRequest{WineName: wineName})
	s.Require().NoError(err)
	return note
}

func (s *TastingServiceTestSuite) totalTastings(userID string) int {
	progress, err := s.progress.Get(s.ctx, userID)
	s.Require().NoError(err)
	return progress.TotalTastings
}

func (s *TastingServiceTestSuite) TestCreate() {
	producer := "Château Margaux"
	testCases := []struct {
		name        string
		req         *model.CreateTastingRequest
		checkResult func(note *model.TastingNote, err error)
	}{
		{
			name: "Success - サブレコードはそのまま保存される",
			req: &model.CreateTastingRequest{
				WineName:   "  Margaux 2015  ",
				Producer:   &producer,
				Vintage:    intPtr(2015),
				GrapeIDs:   []string{"cabernet_sauvignon", "merlot"},
				Appearance: json.RawMessage(`{"color":"ruby","intensity":"deep"}`),
				Nose:       json.RawMessage(`{"aromas":["blackberry","cedar"]}`),
			},
			checkResult: func(note *model.TastingNote, err error) {
				s.Require().NoError(err)
				s.Regexp(`^tasting_[0-9a-f]{12}$`, note.TastingID)
				s.Equal("Margaux 2015", note.WineName)
				s.Equal([]string{"cabernet_sauvignon", "merlot"}, []string(note.GrapeIDs))
				s.JSONEq(`{"color":"ruby","intensity":"deep"}`, string(note.Appearance))
				s.JSONEq(`{"aromas":["blackberry","cedar"]}`, string(note.Nose))
				s.JSONEq(`{}`, string(note.Palate))
				s.JSONEq(`{}`, string(note.Conclusion))
				s.False(note.CreatedAt.IsZero())
			},
		},
		{
			name: "Success - 省略したフィールドは空で返る",
			req:  &model.CreateTastingRequest{WineName: "Simple", Nose: json.RawMessage(`null`)},
			checkResult: func(note *model.TastingNote, err error) {
				s.Require().NoError(err)
				s.NotNil(note.GrapeIDs)
				s.Empty(note.GrapeIDs)
				s.JSONEq(`{}`, string(note.Nose))
				s.Nil(note.Producer)
			},
		},
		{
			name: "Failure - ワイン名が空白のみ",
			req:  &model.CreateTastingRequest{WineName: "   "},
			checkResult: func(note *model.TastingNote, err error) {
				s.Nil(note)
				s.ErrorIs(err, model.ErrInvalidInput)
			},
		},
		{
			name: "Failure - サブレコードがオブジェクトではない",
			req:  &model.CreateTastingRequest{WineName: "Bad", Palate: json.RawMessage(`["tannic"]`)},
			checkResult: func(note *model.TastingNote, err error) {
				s.Nil(note)
				var appErr *model.AppError
				s.Require().ErrorAs(err, &appErr)
				s.Equal("palate must be an object", appErr.Detail.Message)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			note, err := s.tastings.Create(s.ctx, "user_1", tc.req)
			tc.checkResult(note, err)
		})
	}
}

func (s *TastingServiceTestSuite) TestRoundTrip() {
	created := s.create("user_1", "Barolo")

	got, err := s.tastings.Get(s.ctx, "user_1", created.TastingID)
	s.Require().NoError(err)
	s.Equal(created.TastingID, got.TastingID)
	s.Equal("Barolo", got.WineName)
	s.Equal(1, s.totalTastings("user_1"))

	list, err := s.tastings.List(s.ctx, "user_1")
	s.Require().NoError(err)
	s.Len(list, 1)

	resp, err := s.tastings.Delete(s.ctx, "user_1", created.TastingID)
	s.Require().NoError(err)
	s.Equal("Tasting deleted", resp.Message)
	s.Equal(0, s.totalTastings("user_1"))

	_, err = s.tastings.Get(s.ctx, "user_1", created.TastingID)
	s.ErrorIs(err, model.ErrNotFound)
}

// 他人の記録は存在しないものと同じ 404 になる
func (s *TastingServiceTestSuite) TestOtherUsersTastingIsInvisible() {
	created := s.create("user_1", "Rioja Reserva")

	_, err := s.tastings.Get(s.ctx, "user_2", created.TastingID)
	var appErr *model.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal("Tasting not found", appErr.Detail.Message)

	_, err = s.tastings.Delete(s.ctx, "user_2", created.TastingID)
	s.Require().ErrorAs(err, &appErr)
	s.Equal("Tasting not found", appErr.Detail.Message)

	list, err := s.tastings.List(s.ctx, "user_2")
	s.Require().NoError(err)
	s.NotNil(list)
	s.Empty(list)

	// 持ち主側は影響を受けない
	_, err = s.tastings.Get(s.ctx, "user_1", created.TastingID)
	s.NoError(err)
	s.Equal(1, s.totalTastings("user_1"))
}

func (s *TastingServiceTestSuite) TestListNewestFirst() {
	first := s.create("user_1", "First")
	second := s.create("user_1", "Second")

	list, err := s.tastings.List(s.ctx, "user_1")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal([]string{second.TastingID, first.TastingID}, []string{list[0].TastingID, list[1].TastingID})
}
