package taxonomy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"feed_syncer/internal/domain"
	"feed_syncer/internal/jobs/mocks"
)

func TestResolverMemoizesCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaxonomyStore(ctrl)
	r := NewResolver(store)
	ctx := context.Background()

	store.EXPECT().EnsureCategory(ctx, domain.CategoryKindFeed, "Technology", "technology").
		Return(&domain.Category{ID: 7}, nil).
		Times(1)

	for i := 0; i < 3; i++ {
		id, err := r.Category(ctx, domain.CategoryKindFeed, "Technology")
		require.NoError(t, err)
		require.Equal(t, int64(7), id)
	}
}

func TestResolverDistinguishesKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaxonomyStore(ctrl)
	r := NewResolver(store)
	ctx := context.Background()

	store.EXPECT().EnsureCategory(ctx, domain.CategoryKindFeed, "Deals", "deals").
		Return(&domain.Category{ID: 1}, nil)
	store.EXPECT().EnsureCategory(ctx, domain.CategoryKindCoupon, "Deals", "deals").
		Return(&domain.Category{ID: 2}, nil)

	feedID, err := r.Category(ctx, domain.CategoryKindFeed, "Deals")
	require.NoError(t, err)
	couponID, err := r.Category(ctx, domain.CategoryKindCoupon, "Deals")
	require.NoError(t, err)
	require.NotEqual(t, feedID, couponID)
}

func TestResolverSubCategoryCacheKeyedByParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaxonomyStore(ctrl)
	r := NewResolver(store)
	ctx := context.Background()

	store.EXPECT().EnsureSubCategory(ctx, int64(1), "Apparel", "apparel").
		Return(&domain.SubCategory{ID: 10}, nil).
		Times(1)
	store.EXPECT().EnsureSubCategory(ctx, int64(2), "Apparel", "apparel").
		Return(&domain.SubCategory{ID: 20}, nil).
		Times(1)

	id, err := r.SubCategory(ctx, 1, "Apparel")
	require.NoError(t, err)
	require.Equal(t, int64(10), id)

	id, err = r.SubCategory(ctx, 1, " Apparel ") // whitespace normalized
	require.NoError(t, err)
	require.Equal(t, int64(10), id)

	id, err = r.SubCategory(ctx, 2, "Apparel")
	require.NoError(t, err)
	require.Equal(t, int64(20), id)
}

func TestResolverPropagatesStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaxonomyStore(ctrl)
	r := NewResolver(store)
	ctx := context.Background()

	store.EXPECT().EnsureCategory(ctx, domain.CategoryKindCoupon, "Coupons", "coupons").
		Return(nil, errors.New("db down"))

	_, err := r.Category(ctx, domain.CategoryKindCoupon, "Coupons")
	require.Error(t, err)

	_, err = r.Category(ctx, domain.CategoryKindCoupon, "")
	require.Error(t, err)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Technology":        "technology",
		"Home & Garden":     "home-garden",
		"  Baby, Kids  ":    "baby-kids",
		"50% Off!":          "50-off",
		"Électronique":      "lectronique",
		"already-sluggable": "already-sluggable",
	}
	for in, want := range cases {
		require.Equal(t, want, Slugify(in), "input %q", in)
	}
}
