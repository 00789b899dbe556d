package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/modateam/shopcore/internal/domain"
	"github.com/modateam/shopcore/internal/logger"
	"github.com/modateam/shopcore/internal/metrics"
	"github.com/modateam/shopcore/internal/repository"
)

// BuyItem purchases one catalog item for the member. The item is resolved
// through the catalog cache before the transaction opens; the member row is
// then locked for the debit and inventory insert so concurrent purchases on
// the same account serialize.
func (s *service) BuyItem(ctx context.Context, username string, itemID int) (*domain.PurchaseResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyItemCalled, "username", username, "itemID", itemID)

	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opBuy, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	if item == nil {
		metrics.ShopOperationsTotal.WithLabelValues(opBuy, metrics.OutcomeRejected).Inc()
		return &domain.PurchaseResult{Result: domain.Failure(MsgItemNotFound)}, nil
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opBuy, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	member, err := tx.GetMemberForUpdate(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			metrics.ShopOperationsTotal.WithLabelValues(opBuy, metrics.OutcomeRejected).Inc()
			return &domain.PurchaseResult{Result: domain.Failure(MsgMemberNotFound)}, nil
		}
		metrics.ShopOperationsTotal.WithLabelValues(opBuy, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgGetMemberFailed, err)
	}

	if member.Gold < item.Price {
		metrics.ShopOperationsTotal.WithLabelValues(opBuy, metrics.OutcomeRejected).Inc()
		return &domain.PurchaseResult{Result: domain.Failure(MsgInsufficientGold)}, nil
	}

	newGold, err := tx.AdjustGold(ctx, username, -item.Price)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opBuy, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgAdjustGoldFailed, err)
	}

	if err := tx.InsertInventoryEntry(ctx, username, item.ID); err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opBuy, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgUpdateInventoryFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opBuy, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.ShopOperationsTotal.WithLabelValues(opBuy, metrics.OutcomeSuccess).Inc()
	metrics.ItemsBought.WithLabelValues(item.Name).Inc()
	metrics.GoldSpent.Add(float64(item.Price))
	log.Info(LogMsgItemPurchased, "username", username, "item", item.Name, "price", item.Price, "newGold", newGold)

	return &domain.PurchaseResult{
		Result:   domain.Result{Success: true, Message: fmt.Sprintf(MsgBuySuccessFmt, item.Name, newGold)},
		ItemName: item.Name,
		NewGold:  newGold,
	}, nil
}
