//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"feed_syncer/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_taxonomy.up.sql"),
			filepath.Join(migrationsPath, "002_create_articles.up.sql"),
			filepath.Join(migrationsPath, "003_create_coupons.up.sql"),
			filepath.Join(migrationsPath, "004_create_offers.up.sql"),
			filepath.Join(migrationsPath, "005_create_advertisers.up.sql"),
			filepath.Join(migrationsPath, "006_create_sync_state.up.sql"),
			filepath.Join(migrationsPath, "007_create_merchants.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM coupons")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM articles")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM offers")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM advertisers")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM merchants")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sub_categories")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM categories")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM sync_state")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) mustCategory(kind, name string) *domain.Category {
	cat, err := NewTaxonomyStore(s.db).EnsureCategory(s.ctx, kind, name, name)
	s.Require().NoError(err)
	return cat
}

func (s *PostgresIntegrationSuite) mustSubCategory(categoryID int64, name string) *domain.SubCategory {
	sub, err := NewTaxonomyStore(s.db).EnsureSubCategory(s.ctx, categoryID, name, name)
	s.Require().NoError(err)
	return sub
}

func (s *PostgresIntegrationSuite) TestTaxonomyStore_EnsureCategory_Idempotent() {
	store := NewTaxonomyStore(s.db)

	first, err := store.EnsureCategory(s.ctx, domain.CategoryKindFeed, "Technology", "technology")
	s.NoError(err)
	s.Greater(first.ID, int64(0))

	second, err := store.EnsureCategory(s.ctx, domain.CategoryKindFeed, "Technology", "technology")
	s.NoError(err)
	s.Equal(first.ID, second.ID)

	// same name under another kind is a distinct category
	other, err := store.EnsureCategory(s.ctx, domain.CategoryKindCoupon, "Technology", "technology")
	s.NoError(err)
	s.NotEqual(first.ID, other.ID)
}

func (s *PostgresIntegrationSuite) TestTaxonomyStore_EnsureSubCategory_Idempotent() {
	store := NewTaxonomyStore(s.db)
	cat := s.mustCategory(domain.CategoryKindCoupon, "Coupons")

	first, err := store.EnsureSubCategory(s.ctx, cat.ID, "Apparel", "apparel")
	s.NoError(err)
	second, err := store.EnsureSubCategory(s.ctx, cat.ID, "Apparel", "apparel")
	s.NoError(err)
	s.Equal(first.ID, second.ID)
	s.Equal(cat.ID, first.CategoryID)
}

func (s *PostgresIntegrationSuite) TestArticleStore_Insert() {
	cat := s.mustCategory(domain.CategoryKindFeed, "Technology")
	store := NewArticleStore(s.db)

	article := &domain.Article{
		Title:       "Launch day",
		Link:        "https://example.com/launch",
		PubDate:     time.Now().Truncate(time.Microsecond),
		CountryCode: "US",
		CategoryID:  cat.ID,
		Content:     "snippet",
		Source:      "Example",
		ContentType: domain.ContentTypeNews,
	}
	s.NoError(store.Insert(s.ctx, article))
	s.Greater(article.ID, int64(0))
	s.False(article.CreatedAt.IsZero())
}

func (s *PostgresIntegrationSuite) TestArticleStore_Insert_Duplicate() {
	cat := s.mustCategory(domain.CategoryKindFeed, "Technology")
	store := NewArticleStore(s.db)

	article := &domain.Article{
		Title:       "Launch day",
		Link:        "https://example.com/launch",
		PubDate:     time.Now(),
		CountryCode: "US",
		CategoryID:  cat.ID,
	}
	s.NoError(store.Insert(s.ctx, article))

	dup := &domain.Article{
		Title:       "Launch day repost",
		Link:        "https://example.com/launch",
		PubDate:     time.Now(),
		CountryCode: "US",
		CategoryID:  cat.ID,
	}
	s.ErrorIs(store.Insert(s.ctx, dup), domain.ErrDuplicate)

	// same link for another country is a separate article
	other := &domain.Article{
		Title:       "Launch day",
		Link:        "https://example.com/launch",
		PubDate:     time.Now(),
		CountryCode: "GB",
		CategoryID:  cat.ID,
	}
	s.NoError(store.Insert(s.ctx, other))
}

func (s *PostgresIntegrationSuite) newCoupon(categoryID, subCategoryID int64, description string) *domain.Coupon {
	code := "SAVE10"
	return &domain.Coupon{
		CategoryID:       categoryID,
		SubCategoryID:    subCategoryID,
		PromotionType:    "Percentage off",
		OfferDescription: description,
		CouponCode:       &code,
		ClickURL:         "https://click.example.com",
		AdvertiserID:     "100",
		AdvertiserName:   "Shop A",
		Network:          "US Network",
		Reference:        domain.ReferenceRakuten,
		Status:           true,
	}
}

func (s *PostgresIntegrationSuite) TestCouponStore_InsertIfAbsent() {
	cat := s.mustCategory(domain.CategoryKindCoupon, "Coupons")
	sub := s.mustSubCategory(cat.ID, "Apparel")
	store := NewCouponStore(s.db)

	coupon := s.newCoupon(cat.ID, sub.ID, "10% off everything")
	inserted, err := store.InsertIfAbsent(s.ctx, coupon)
	s.NoError(err)
	s.True(inserted)
	s.Greater(coupon.ID, int64(0))

	again := s.newCoupon(cat.ID, sub.ID, "10% off everything")
	inserted, err = store.InsertIfAbsent(s.ctx, again)
	s.NoError(err)
	s.False(inserted)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM coupons"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestCouponStore_InsertIfAbsent_NilCodeKey() {
	cat := s.mustCategory(domain.CategoryKindCoupon, "Coupons")
	sub := s.mustSubCategory(cat.ID, "Apparel")
	store := NewCouponStore(s.db)

	coupon := s.newCoupon(cat.ID, sub.ID, "free shipping")
	coupon.CouponCode = nil
	inserted, err := store.InsertIfAbsent(s.ctx, coupon)
	s.NoError(err)
	s.True(inserted)

	again := s.newCoupon(cat.ID, sub.ID, "free shipping")
	again.CouponCode = nil
	inserted, err = store.InsertIfAbsent(s.ctx, again)
	s.NoError(err)
	s.False(inserted)
}

func (s *PostgresIntegrationSuite) TestCouponStore_PersistsCJAttributes() {
	cat := s.mustCategory(domain.CategoryKindCoupon, "Coupons")
	sub := s.mustSubCategory(cat.ID, "Electronics")
	store := NewCouponStore(s.db)

	coupon := s.newCoupon(cat.ID, sub.ID, "20% off sitewide")
	coupon.Reference = domain.ReferenceCJ
	coupon.CJ = &domain.CJLinkAttributes{
		SaleCommission: 4,
		LinkID:         12345,
		LinkType:       "Text Link",
	}
	inserted, err := store.InsertIfAbsent(s.ctx, coupon)
	s.NoError(err)
	s.True(inserted)

	var linkID int64
	s.NoError(s.db.GetContext(s.ctx, &linkID,
		"SELECT (cj_attributes->>'link_id')::bigint FROM coupons WHERE id = $1", coupon.ID))
	s.Equal(int64(12345), linkID)
}

func (s *PostgresIntegrationSuite) TestOfferStore_Insert_Duplicate() {
	store := NewOfferStore(s.db)

	offer := &domain.Offer{
		GOID:      9001,
		Name:      "Default offer",
		Status:    "active",
		IsActive:  true,
		FetchedAt: time.Now(),
		Advertiser: domain.OfferAdvertiser{
			ID:   100,
			Name: "Shop A",
		},
		OfferRules: []domain.OfferRule{{OID: 5, IsBaseCommission: true}},
	}
	s.NoError(store.Insert(s.ctx, offer))
	s.Greater(offer.ID, int64(0))

	dup := &domain.Offer{GOID: 9001, FetchedAt: time.Now()}
	s.ErrorIs(store.Insert(s.ctx, dup), domain.ErrDuplicate)
}

func (s *PostgresIntegrationSuite) TestAdvertiserStore_Upsert() {
	store := NewAdvertiserStore(s.db)

	adv := &domain.Advertiser{
		AdvertiserID:   "700",
		AdvertiserName: "Shop C",
		ProgramName:    "Shop C Program",
		SevenDayEPC:    11.04,
		NetworkRank:    5,
		LinkTypes:      []string{"Text Link", "Banner"},
		Actions: []domain.AdvertiserAction{
			{Name: "Sale", Type: "sale", ID: "1", Commission: domain.ActionCommission{Default: "4.00%"}},
		},
	}
	isNew, err := store.Upsert(s.ctx, adv)
	s.NoError(err)
	s.True(isNew)
	firstID := adv.ID

	adv.ProgramName = "Shop C Program v2"
	isNew, err = store.Upsert(s.ctx, adv)
	s.NoError(err)
	s.False(isNew)
	s.Equal(firstID, adv.ID)

	var programName string
	s.NoError(s.db.GetContext(s.ctx, &programName,
		"SELECT program_name FROM advertisers WHERE advertiser_id = $1", "700"))
	s.Equal("Shop C Program v2", programName)
}

func (s *PostgresIntegrationSuite) TestMerchantStore_UpsertListing() {
	store := NewMerchantStore(s.db)

	m := &domain.Merchant{AdvertiserID: 38605, Name: "Shop D"}
	isNew, err := store.UpsertListing(s.ctx, m)
	s.NoError(err)
	s.True(isNew)
	firstID := m.ID

	renamed := &domain.Merchant{AdvertiserID: 38605, Name: "Shop D Rebranded"}
	isNew, err = store.UpsertListing(s.ctx, renamed)
	s.NoError(err)
	s.False(isNew)
	s.Equal(firstID, renamed.ID)

	var name string
	s.NoError(s.db.GetContext(s.ctx, &name,
		"SELECT name FROM merchants WHERE advertiser_id = $1", 38605))
	s.Equal("Shop D Rebranded", name)
}

func (s *PostgresIntegrationSuite) TestMerchantStore_DetailsLifecycle() {
	store := NewMerchantStore(s.db)

	m := &domain.Merchant{AdvertiserID: 38605, Name: "Shop D"}
	_, err := store.UpsertListing(s.ctx, m)
	s.NoError(err)

	pending, err := store.ListPendingDetails(s.ctx)
	s.NoError(err)
	s.Len(pending, 1)
	s.Equal(int64(38605), pending[0].AdvertiserID)

	details := &domain.MerchantDetails{
		Name:        "Shop D",
		URL:         "https://shop-d.example",
		Description: "household goods",
		CanPartner:  true,
		Contact:     domain.MerchantContact{Name: "Pat", Email: "pat@shop-d.example"},
		Policies:    []byte(`{"international_capabilities": true}`),
	}
	s.NoError(store.UpdateDetails(s.ctx, 38605, details))

	pending, err = store.ListPendingDetails(s.ctx)
	s.NoError(err)
	s.Empty(pending)

	var url, email string
	s.NoError(s.db.GetContext(s.ctx, &url,
		"SELECT url FROM merchants WHERE advertiser_id = $1", 38605))
	s.Equal("https://shop-d.example", url)
	s.NoError(s.db.GetContext(s.ctx, &email,
		"SELECT contact->>'email' FROM merchants WHERE advertiser_id = $1", 38605))
	s.Equal("pat@shop-d.example", email)

	// a fresh catalog sighting reopens the merchant for enrichment
	_, err = store.UpsertListing(s.ctx, &domain.Merchant{AdvertiserID: 38605, Name: "Shop D"})
	s.NoError(err)
	pending, err = store.ListPendingDetails(s.ctx)
	s.NoError(err)
	s.Len(pending, 1)
}

func (s *PostgresIntegrationSuite) TestMerchantStore_UpdateDetails_Unknown() {
	store := NewMerchantStore(s.db)

	err := store.UpdateDetails(s.ctx, 999999, &domain.MerchantDetails{Name: "Ghost"})
	s.Error(err)
}

func (s *PostgresIntegrationSuite) TestSyncStateStore_GetNew() {
	store := NewSyncStateStore(s.db)

	state, err := store.Get(s.ctx, "new-source")
	s.NoError(err)
	s.NotNil(state)
	s.Equal("new-source", state.SourceID)
	s.True(state.LastSyncedAt.IsZero())
	s.Equal(0, state.LastPage)
	s.Equal(int64(0), state.TotalSynced)
}

func (s *PostgresIntegrationSuite) TestSyncStateStore_UpdateAndGet() {
	store := NewSyncStateStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	state := &domain.SyncState{
		SourceID:     "rakuten-offer",
		LastSyncedAt: now,
		LastPage:     4,
		TotalSynced:  100,
	}
	s.NoError(store.Update(s.ctx, state))

	state.LastPage = 0
	state.TotalSynced = 150
	s.NoError(store.Update(s.ctx, state))

	retrieved, err := store.Get(s.ctx, "rakuten-offer")
	s.NoError(err)
	s.Equal(0, retrieved.LastPage)
	s.Equal(int64(150), retrieved.TotalSynced)
	s.WithinDuration(now, retrieved.LastSyncedAt, time.Second)
}

func (s *PostgresIntegrationSuite) TestTransaction_CommitsCouponsWithCheckpoint() {
	cat := s.mustCategory(domain.CategoryKindCoupon, "Coupons")
	sub := s.mustSubCategory(cat.ID, "Apparel")
	tm := NewTransactionManager(s.db)
	coupons := NewCouponStore(s.db)
	states := NewSyncStateStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, err := coupons.InsertIfAbsent(ctx, s.newCoupon(cat.ID, sub.ID, "10% off")); err != nil {
			return err
		}
		return states.Update(ctx, &domain.SyncState{
			SourceID:     "cj-coupon",
			LastSyncedAt: time.Now(),
			LastPage:     1,
			TotalSynced:  1,
		})
	})
	s.NoError(err)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM coupons"))
	s.Equal(1, count)

	state, err := states.Get(s.ctx, "cj-coupon")
	s.NoError(err)
	s.Equal(1, state.LastPage)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	cat := s.mustCategory(domain.CategoryKindCoupon, "Coupons")
	sub := s.mustSubCategory(cat.ID, "Apparel")
	tm := NewTransactionManager(s.db)
	coupons := NewCouponStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, err := coupons.InsertIfAbsent(ctx, s.newCoupon(cat.ID, sub.ID, "10% off")); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM coupons"))
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestAdvisoryLock() {
	lockA := NewAdvisoryLock(s.db)
	lockB := NewAdvisoryLock(s.db)

	acquired, err := lockA.TryLock(s.ctx, "rakuten-offer")
	s.NoError(err)
	s.True(acquired)

	// a second holder is refused while the lock is live
	acquired, err = lockB.TryLock(s.ctx, "rakuten-offer")
	s.NoError(err)
	s.False(acquired)

	// an unrelated key is free
	acquired, err = lockB.TryLock(s.ctx, "cj-coupon")
	s.NoError(err)
	s.True(acquired)
	s.NoError(lockB.Unlock(s.ctx, "cj-coupon"))

	s.NoError(lockA.Unlock(s.ctx, "rakuten-offer"))

	acquired, err = lockB.TryLock(s.ctx, "rakuten-offer")
	s.NoError(err)
	s.True(acquired)
	s.NoError(lockB.Unlock(s.ctx, "rakuten-offer"))
}
