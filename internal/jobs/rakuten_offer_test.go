package jobs

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"feed_syncer/internal/domain"
	"feed_syncer/internal/jobs/mocks"
)

type RakutenOfferJobTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockOfferSource
	offers    *mocks.MockOfferStore
	syncState *mocks.MockSyncStateStore
	locker    *mocks.MockLocker
	publisher *mocks.MockPublisher

	job    *RakutenOfferJob
	logger *slog.Logger
}

func (s *RakutenOfferJobTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockOfferSource(s.ctrl)
	s.offers = mocks.NewMockOfferStore(s.ctrl)
	s.syncState = mocks.NewMockSyncStateStore(s.ctrl)
	s.locker = mocks.NewMockLocker(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.job = NewRakutenOfferJob(s.source, s.offers, s.syncState, s.locker, s.publisher, s.logger)
}

func (s *RakutenOfferJobTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRakutenOfferJobTestSuite(t *testing.T) {
	suite.Run(t, new(RakutenOfferJobTestSuite))
}

func (s *RakutenOfferJobTestSuite) expectLock() {
	s.locker.EXPECT().TryLock(gomock.Any(), JobRakutenOffer).Return(true, nil)
	s.locker.EXPECT().Unlock(gomock.Any(), JobRakutenOffer).Return(nil)
}

func (s *RakutenOfferJobTestSuite) TestRun_WalksAllPagesAndResetsCursor() {
	s.expectLock()
	s.source.EXPECT().Authenticate(gomock.Any()).Return(nil)
	s.syncState.EXPECT().Get(gomock.Any(), JobRakutenOffer).
		Return(&domain.SyncState{SourceID: JobRakutenOffer}, nil)

	page1 := &domain.OfferPage{
		Offers:          []domain.Offer{{GOID: 11}, {GOID: 12}},
		Page:            1,
		RecordsReturned: 2,
		Total:           3,
		TotalPages:      2,
	}
	page2 := &domain.OfferPage{
		Offers:          []domain.Offer{{GOID: 13}},
		Page:            2,
		RecordsReturned: 1,
		Total:           3,
		TotalPages:      2,
	}
	s.source.EXPECT().FetchPage(gomock.Any(), 1).Return(page1, nil)
	s.source.EXPECT().FetchPage(gomock.Any(), 2).Return(page2, nil)

	s.offers.EXPECT().Insert(gomock.Any(), &page1.Offers[0]).Return(nil)
	s.offers.EXPECT().Insert(gomock.Any(), &page1.Offers[1]).Return(nil)
	// same goid arrived again on a later page
	s.offers.EXPECT().Insert(gomock.Any(), &page2.Offers[0]).Return(domain.ErrDuplicate)

	s.publisher.EXPECT().Publish(gomock.Any(), EntityOffer, gomock.Any(), true).Return(nil).Times(2)

	var lastState domain.SyncState
	s.syncState.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, state *domain.SyncState) error {
			lastState = *state
			return nil
		},
	).Times(3) // two page checkpoints plus the cursor reset

	res := s.job.Run(context.Background())

	s.True(res.Success)
	s.Equal(3, res.TotalFetched)
	s.Equal(2, res.Inserted)
	s.Equal(1, res.Skipped)
	s.Equal(2, res.Pages)
	s.Equal(0, lastState.LastPage)
	s.Equal(int64(2), lastState.TotalSynced)
}

func (s *RakutenOfferJobTestSuite) TestRun_SkipsFailedPageAndContinues() {
	s.expectLock()
	s.source.EXPECT().Authenticate(gomock.Any()).Return(nil)
	s.syncState.EXPECT().Get(gomock.Any(), JobRakutenOffer).
		Return(&domain.SyncState{SourceID: JobRakutenOffer}, nil)

	page1 := &domain.OfferPage{
		Offers:          []domain.Offer{{GOID: 11}},
		Page:            1,
		RecordsReturned: 1,
		TotalPages:      3,
	}
	page3 := &domain.OfferPage{
		Offers:          []domain.Offer{{GOID: 31}},
		Page:            3,
		RecordsReturned: 1,
		TotalPages:      3,
	}
	s.source.EXPECT().FetchPage(gomock.Any(), 1).Return(page1, nil)
	s.source.EXPECT().FetchPage(gomock.Any(), 2).Return(nil, errors.New("rate limited"))
	s.source.EXPECT().FetchPage(gomock.Any(), 3).Return(page3, nil)

	s.offers.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.publisher.EXPECT().Publish(gomock.Any(), EntityOffer, gomock.Any(), true).Return(nil).Times(2)
	s.syncState.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	res := s.job.Run(context.Background())

	s.True(res.Success)
	s.Equal(2, res.Inserted)
	s.Equal(2, res.Pages)
}

func (s *RakutenOfferJobTestSuite) TestRun_StopsWhenBoundUnknown() {
	s.expectLock()
	s.source.EXPECT().Authenticate(gomock.Any()).Return(nil)
	s.syncState.EXPECT().Get(gomock.Any(), JobRakutenOffer).
		Return(&domain.SyncState{SourceID: JobRakutenOffer}, nil)

	s.source.EXPECT().FetchPage(gomock.Any(), 1).Return(nil, errors.New("boom"))

	res := s.job.Run(context.Background())

	s.True(res.Success)
	s.Equal(0, res.Pages)
	s.Equal(0, res.TotalFetched)
}

func (s *RakutenOfferJobTestSuite) TestRun_WalksUntilEmptyPageWhenTotalUndeclared() {
	s.expectLock()
	s.source.EXPECT().Authenticate(gomock.Any()).Return(nil)
	s.syncState.EXPECT().Get(gomock.Any(), JobRakutenOffer).
		Return(&domain.SyncState{SourceID: JobRakutenOffer}, nil)

	// provider omits the total, so every page reports TotalPages 0
	page1 := &domain.OfferPage{
		Offers:          []domain.Offer{{GOID: 11}},
		Page:            1,
		RecordsReturned: 1,
	}
	page2 := &domain.OfferPage{
		Offers:          []domain.Offer{{GOID: 21}},
		Page:            2,
		RecordsReturned: 1,
	}
	s.source.EXPECT().FetchPage(gomock.Any(), 1).Return(page1, nil)
	s.source.EXPECT().FetchPage(gomock.Any(), 2).Return(page2, nil)
	s.source.EXPECT().FetchPage(gomock.Any(), 3).Return(&domain.OfferPage{Page: 3}, nil)

	s.offers.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.publisher.EXPECT().Publish(gomock.Any(), EntityOffer, gomock.Any(), true).Return(nil).Times(2)

	var lastState domain.SyncState
	s.syncState.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, state *domain.SyncState) error {
			lastState = *state
			return nil
		},
	).Times(3) // two page checkpoints plus the cursor reset

	res := s.job.Run(context.Background())

	s.True(res.Success)
	s.Equal(2, res.Pages)
	s.Equal(2, res.Inserted)
	s.Equal(0, lastState.LastPage)
}

func (s *RakutenOfferJobTestSuite) TestRun_ResumesFromCursor() {
	s.expectLock()
	s.source.EXPECT().Authenticate(gomock.Any()).Return(nil)
	s.syncState.EXPECT().Get(gomock.Any(), JobRakutenOffer).
		Return(&domain.SyncState{SourceID: JobRakutenOffer, LastPage: 4}, nil)

	page5 := &domain.OfferPage{
		Offers:          []domain.Offer{{GOID: 51}},
		Page:            5,
		RecordsReturned: 1,
		TotalPages:      5,
	}
	s.source.EXPECT().FetchPage(gomock.Any(), 5).Return(page5, nil)

	s.offers.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), EntityOffer, gomock.Any(), true).Return(nil)
	s.syncState.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	res := s.job.Run(context.Background())

	s.True(res.Success)
	s.Equal(1, res.Inserted)
}
