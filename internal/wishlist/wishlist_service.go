package wishlist

import (
	"context"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/catalog"
	"go.uber.org/zap"
)

//go:generate mockgen -source=wishlist_service.go -destination=../mock/wishlist/wishlist_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, userID, productID string) error
	List(ctx context.Context, userID string) (WishlistResponse, error)
	Remove(ctx context.Context, userID, productID string) error
}

type service struct {
	store   Store
	catalog *catalog.Catalog
	logger  *zap.Logger
}

type Deps struct {
	Store   Store
	Catalog *catalog.Catalog
	Logger  *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		store:   deps.Store,
		catalog: deps.Catalog,
		logger:  deps.Logger,
	}
}

// Add saves a product to the user's wishlist. Adding a product twice is
// a conflict, matching the heart-toggle behavior in the app.
func (s *service) Add(ctx context.Context, userID, productID string) error {
	if _, ok := s.catalog.Get(productID); !ok {
		return ErrProductNotFound
	}

	ids, err := s.store.Load(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load wishlist", zap.String("user_id", userID), zap.Error(err))
		return ErrWishlistFailed
	}

	for _, id := range ids {
		if id == productID {
			return ErrItemAlreadyExists
		}
	}

	if err := s.store.Save(ctx, userID, append(ids, productID)); err != nil {
		s.logger.Error("failed to save wishlist", zap.String("user_id", userID), zap.Error(err))
		return ErrWishlistFailed
	}
	return nil
}

// List resolves the saved product IDs against the catalog. IDs that no
// longer resolve are skipped, so a trimmed catalog never breaks the
// saved-items screen.
func (s *service) List(ctx context.Context, userID string) (WishlistResponse, error) {
	ids, err := s.store.Load(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load wishlist", zap.String("user_id", userID), zap.Error(err))
		return WishlistResponse{}, ErrWishlistFailed
	}

	items := make([]WishlistItemResponse, 0, len(ids))
	for _, id := range ids {
		p, ok := s.catalog.Get(id)
		if !ok {
			continue
		}
		items = append(items, toItemResponse(p))
	}

	return WishlistResponse{
		UserID:    userID,
		Items:     items,
		ItemCount: len(items),
	}, nil
}

func (s *service) Remove(ctx context.Context, userID, productID string) error {
	ids, err := s.store.Load(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load wishlist", zap.String("user_id", userID), zap.Error(err))
		return ErrWishlistFailed
	}

	kept := make([]string, 0, len(ids))
	found := false
	for _, id := range ids {
		if id == productID {
			found = true
			continue
		}
		kept = append(kept, id)
	}

	if !found {
		return ErrItemNotFound
	}

	if err := s.store.Save(ctx, userID, kept); err != nil {
		s.logger.Error("failed to save wishlist", zap.String("user_id", userID), zap.Error(err))
		return ErrWishlistFailed
	}
	return nil
}
