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

// SellItem sells one owned item back to the shop for half its catalog
// price, rounded down. The member row is locked before the inventory row is
// read so a concurrent sell of the same row cannot double-credit.
func (s *service) SellItem(ctx context.Context, username string, inventoryID int) (*domain.SaleResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellItemCalled, "username", username, "inventoryID", inventoryID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opSell, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetMemberForUpdate(ctx, username); err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			metrics.ShopOperationsTotal.WithLabelValues(opSell, metrics.OutcomeRejected).Inc()
			return &domain.SaleResult{Result: domain.Failure(MsgMemberNotFound)}, nil
		}
		metrics.ShopOperationsTotal.WithLabelValues(opSell, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgGetMemberFailed, err)
	}

	owned, err := tx.GetOwnedItem(ctx, inventoryID, username)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opSell, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgListInventoryFailed, err)
	}
	if owned == nil {
		metrics.ShopOperationsTotal.WithLabelValues(opSell, metrics.OutcomeRejected).Inc()
		return &domain.SaleResult{Result: domain.Failure(MsgNoItemToSell)}, nil
	}

	if err := tx.DeleteInventoryEntry(ctx, inventoryID, username); err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opSell, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgUpdateInventoryFailed, err)
	}

	gained := owned.SellValue()
	newGold, err := tx.AdjustGold(ctx, username, gained)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opSell, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgAdjustGoldFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opSell, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.ShopOperationsTotal.WithLabelValues(opSell, metrics.OutcomeSuccess).Inc()
	metrics.ItemsSold.WithLabelValues(owned.Name).Inc()
	metrics.GoldEarned.Add(float64(gained))
	log.Info(LogMsgItemSold, "username", username, "item", owned.Name, "gained", gained, "newGold", newGold)

	return &domain.SaleResult{
		Result:     domain.Result{Success: true, Message: fmt.Sprintf(MsgSellSuccessFmt, owned.Name, gained)},
		SoldCount:  1,
		GoldGained: gained,
	}, nil
}

// SellAllItems liquidates the member's whole inventory in one transaction.
// The inventory rows are locked alongside the member so rewards landing
// concurrently are either fully included or fully excluded.
func (s *service) SellAllItems(ctx context.Context, username string) (*domain.SaleResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellAllItemsCalled, "username", username)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opSellAll, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetMemberForUpdate(ctx, username); err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			metrics.ShopOperationsTotal.WithLabelValues(opSellAll, metrics.OutcomeRejected).Inc()
			return &domain.SaleResult{Result: domain.Failure(MsgMemberNotFound)}, nil
		}
		metrics.ShopOperationsTotal.WithLabelValues(opSellAll, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgGetMemberFailed, err)
	}

	owned, err := tx.ListInventoryForUpdate(ctx, username)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opSellAll, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgListInventoryFailed, err)
	}
	if len(owned) == 0 {
		metrics.ShopOperationsTotal.WithLabelValues(opSellAll, metrics.OutcomeRejected).Inc()
		return &domain.SaleResult{Result: domain.Failure(MsgNothingToSell)}, nil
	}

	total := 0
	for _, o := range owned {
		total += o.SellValue()
	}

	deleted, err := tx.DeleteInventoryByUsername(ctx, username)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opSellAll, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgUpdateInventoryFailed, err)
	}

	if _, err := tx.AdjustGold(ctx, username, total); err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opSellAll, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgAdjustGoldFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opSellAll, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.ShopOperationsTotal.WithLabelValues(opSellAll, metrics.OutcomeSuccess).Inc()
	for _, o := range owned {
		metrics.ItemsSold.WithLabelValues(o.Name).Inc()
	}
	metrics.GoldEarned.Add(float64(total))
	log.Info(LogMsgInventoryLiquidated, "username", username, "soldCount", deleted, "gained", total)

	return &domain.SaleResult{
		Result:     domain.Result{Success: true, Message: fmt.Sprintf(MsgSellAllSuccessFmt, deleted, s.gold(total))},
		SoldCount:  deleted,
		GoldGained: total,
	}, nil
}
