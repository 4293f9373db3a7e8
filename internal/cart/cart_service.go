package cart

import (
	"context"
	"encoding/json"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/catalog"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/messaging/kafka/producer"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pricing"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Detail(ctx context.Context, userID string) (CartDetailResponse, error)
	Count(ctx context.Context, userID string) (int, error)
	Lines(ctx context.Context, userID string) ([]Line, error)

	AddItem(ctx context.Context, userID string, req AddItemRequest) (CartDetailResponse, error)
	UpdateQty(ctx context.Context, userID, lineID string, req UpdateQtyRequest) (CartDetailResponse, error)
	Increment(ctx context.Context, userID, lineID string) (CartDetailResponse, error)
	Decrement(ctx context.Context, userID, lineID string) (CartDetailResponse, error)

	RemoveItem(ctx context.Context, userID, lineID string) (CartDetailResponse, error)
	Clear(ctx context.Context, userID string) error
}

type service struct {
	store    Store
	catalog  *catalog.Catalog
	pricer   *pricing.Engine
	events   producer.Sink
	logger   *zap.Logger
	validate *validator.Validate
}

type Deps struct {
	Store   Store
	Catalog *catalog.Catalog
	Pricer  *pricing.Engine
	Events  producer.Sink
	Logger  *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		store:    deps.Store,
		catalog:  deps.Catalog,
		pricer:   deps.Pricer,
		events:   deps.Events,
		logger:   deps.Logger,
		validate: validator.New(),
	}
}

func (s *service) loadLedger(ctx context.Context, userID string) (*Ledger, error) {
	lines, err := s.store.Load(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load cart", zap.String("user_id", userID), zap.Error(err))
		return nil, ErrCartStoreFailed
	}
	return NewLedgerFrom(s.pricer, lines), nil
}

func (s *service) persist(ctx context.Context, userID string, ledger *Ledger) error {
	if err := s.store.Save(ctx, userID, ledger.Lines()); err != nil {
		s.logger.Error("failed to save cart", zap.String("user_id", userID), zap.Error(err))
		return ErrCartStoreFailed
	}
	s.publishUpdated(ctx, userID, ledger)
	return nil
}

// publishUpdated emits a best-effort cart activity event. Publish
// failures are logged inside the sink and never surface to the caller.
func (s *service) publishUpdated(ctx context.Context, userID string, ledger *Ledger) {
	if s.events == nil {
		return
	}

	payload, err := json.Marshal(map[string]any{
		"userId":     userID,
		"totalItems": ledger.TotalItems(),
		"totalPrice": ledger.TotalPrice(),
	})
	if err != nil {
		return
	}

	_ = s.events.Publish(ctx, producer.Event{
		AggregateID:   userID,
		AggregateType: "cart",
		EventType:     "cart.updated",
		Payload:       payload,
	})
}

func (s *service) Detail(ctx context.Context, userID string) (CartDetailResponse, error) {
	ledger, err := s.loadLedger(ctx, userID)
	if err != nil {
		return CartDetailResponse{}, err
	}
	return toDetailResponse(ledger.Snapshot(nil)), nil
}

func (s *service) Count(ctx context.Context, userID string) (int, error) {
	ledger, err := s.loadLedger(ctx, userID)
	if err != nil {
		return 0, err
	}
	return ledger.TotalItems(), nil
}

func (s *service) Lines(ctx context.Context, userID string) ([]Line, error) {
	ledger, err := s.loadLedger(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ledger.Lines(), nil
}

func (s *service) AddItem(ctx context.Context, userID string, req AddItemRequest) (CartDetailResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartDetailResponse{}, ErrInvalidQty.WithReason("Invalid add-to-cart request")
	}

	product, ok := s.catalog.Get(req.ProductID)
	if !ok {
		return CartDetailResponse{}, catalog.ErrProductNotFound
	}

	qty := req.Qty
	if qty == 0 {
		// Omitted quantity means one of the item.
		qty = 1
	}

	ledger, err := s.loadLedger(ctx, userID)
	if err != nil {
		return CartDetailResponse{}, err
	}

	if _, err := ledger.AddLine(product, qty, req.Size, req.Color); err != nil {
		return CartDetailResponse{}, err
	}

	if err := s.persist(ctx, userID, ledger); err != nil {
		return CartDetailResponse{}, err
	}
	return toDetailResponse(ledger.Snapshot(nil)), nil
}

func (s *service) UpdateQty(ctx context.Context, userID, lineID string, req UpdateQtyRequest) (CartDetailResponse, error) {
	ledger, err := s.loadLedger(ctx, userID)
	if err != nil {
		return CartDetailResponse{}, err
	}

	if err := ledger.SetQuantity(lineID, req.Qty); err != nil {
		return CartDetailResponse{}, err
	}

	if err := s.persist(ctx, userID, ledger); err != nil {
		return CartDetailResponse{}, err
	}
	return toDetailResponse(ledger.Snapshot(nil)), nil
}

func (s *service) Increment(ctx context.Context, userID, lineID string) (CartDetailResponse, error) {
	return s.step(ctx, userID, lineID, +1)
}

func (s *service) Decrement(ctx context.Context, userID, lineID string) (CartDetailResponse, error) {
	return s.step(ctx, userID, lineID, -1)
}

// step adjusts a line's quantity by delta. Stepping down from one
// removes the line, same as an explicit zero-quantity update.
func (s *service) step(ctx context.Context, userID, lineID string, delta int) (CartDetailResponse, error) {
	ledger, err := s.loadLedger(ctx, userID)
	if err != nil {
		return CartDetailResponse{}, err
	}

	line, ok := ledger.Line(lineID)
	if !ok {
		return CartDetailResponse{}, ErrLineNotFound
	}

	if err := ledger.SetQuantity(lineID, line.Quantity+delta); err != nil {
		return CartDetailResponse{}, err
	}

	if err := s.persist(ctx, userID, ledger); err != nil {
		return CartDetailResponse{}, err
	}
	return toDetailResponse(ledger.Snapshot(nil)), nil
}

func (s *service) RemoveItem(ctx context.Context, userID, lineID string) (CartDetailResponse, error) {
	ledger, err := s.loadLedger(ctx, userID)
	if err != nil {
		return CartDetailResponse{}, err
	}

	ledger.RemoveLine(lineID)

	if err := s.persist(ctx, userID, ledger); err != nil {
		return CartDetailResponse{}, err
	}
	return toDetailResponse(ledger.Snapshot(nil)), nil
}

func (s *service) Clear(ctx context.Context, userID string) error {
	ledger, err := s.loadLedger(ctx, userID)
	if err != nil {
		return err
	}

	ledger.Clear()
	return s.persist(ctx, userID, ledger)
}
