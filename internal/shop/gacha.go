package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/modateam/shopcore/internal/domain"
	"github.com/modateam/shopcore/internal/gacha"
	"github.com/modateam/shopcore/internal/logger"
	"github.com/modateam/shopcore/internal/metrics"
	"github.com/modateam/shopcore/internal/repository"
)

// PlayFixedGacha runs one premium draw for a flat 1,000G. The reward is
// picked by catalog weight from items with a positive gacha weight; the
// pity counter is untouched. The catalog is read inside the transaction so
// the draw always reflects committed items.
func (s *service) PlayFixedGacha(ctx context.Context, username string) (*domain.GachaResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlayFixedGachaCalled, "username", username)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opFixedGacha, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	member, err := tx.GetMemberForUpdate(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			metrics.ShopOperationsTotal.WithLabelValues(opFixedGacha, metrics.OutcomeRejected).Inc()
			return &domain.GachaResult{Result: domain.Failure(MsgMemberNotFound)}, nil
		}
		metrics.ShopOperationsTotal.WithLabelValues(opFixedGacha, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgGetMemberFailed, err)
	}

	if member.Gold < FixedGachaCost {
		metrics.ShopOperationsTotal.WithLabelValues(opFixedGacha, metrics.OutcomeRejected).Inc()
		return &domain.GachaResult{Result: domain.Failure(MsgFixedGachaShortGold)}, nil
	}

	catalog, err := tx.ListItems(ctx)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opFixedGacha, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}

	reward, err := gacha.DrawFixed(catalog, s.rng)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opFixedGacha, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgDrawFailed, err)
	}

	if _, err := tx.AdjustGold(ctx, username, -FixedGachaCost); err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opFixedGacha, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgAdjustGoldFailed, err)
	}

	if err := tx.InsertInventoryEntry(ctx, username, reward.ID); err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opFixedGacha, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgUpdateInventoryFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opFixedGacha, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.ShopOperationsTotal.WithLabelValues(opFixedGacha, metrics.OutcomeSuccess).Inc()
	metrics.GachaDraws.WithLabelValues(metrics.ModeFixed, string(reward.Rarity)).Inc()
	metrics.GoldSpent.Add(float64(FixedGachaCost))
	log.Info(LogMsgGachaPlayed, "username", username, "mode", metrics.ModeFixed, "item", reward.Name, "rarity", reward.Rarity)

	return &domain.GachaResult{
		Result: domain.Result{Success: true, Message: fmt.Sprintf(MsgFixedGachaResultFmt, reward.Rarity, reward.Name)},
		Items: []domain.DrawnItem{
			{ItemID: reward.ID, Name: reward.Name, Rarity: reward.Rarity},
		},
	}, nil
}

// PlayDynamicGacha runs count pity-adjusted draws at 100G each. The draws
// thread the member's persisted fail counter sequentially; the gold debit
// and the final counter are written in one statement, and all rewards are
// inserted in one batch, so a multi-pull commits atomically.
func (s *service) PlayDynamicGacha(ctx context.Context, username string, count int) (*domain.GachaResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPlayDynamicGachaCalled, "username", username, "count", count)

	if count < 1 || count > MaxDynamicPulls {
		return nil, domain.ErrInvalidCount
	}
	totalCost := DynamicGachaCostPerPull * count

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opDynamicGacha, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	member, err := tx.GetMemberForUpdate(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			metrics.ShopOperationsTotal.WithLabelValues(opDynamicGacha, metrics.OutcomeRejected).Inc()
			return &domain.GachaResult{Result: domain.Failure(MsgMemberNotFound)}, nil
		}
		metrics.ShopOperationsTotal.WithLabelValues(opDynamicGacha, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgGetMemberFailed, err)
	}

	if member.Gold < totalCost {
		metrics.ShopOperationsTotal.WithLabelValues(opDynamicGacha, metrics.OutcomeRejected).Inc()
		return &domain.GachaResult{
			Result:    domain.Failure(fmt.Sprintf(MsgDynamicShortGoldFmt, totalCost)),
			FailCount: member.GachaFailCount,
		}, nil
	}

	catalog, err := tx.ListItems(ctx)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opDynamicGacha, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}

	draw, err := gacha.DrawDynamic(catalog, member.GachaFailCount, count, s.rng)
	if err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opDynamicGacha, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgDrawFailed, err)
	}

	if _, err := tx.UpdateGachaState(ctx, username, -totalCost, draw.FailCount); err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opDynamicGacha, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgAdjustGoldFailed, err)
	}

	itemIDs := make([]int, len(draw.Items))
	for i, it := range draw.Items {
		itemIDs[i] = it.ID
	}
	if err := tx.InsertInventoryEntries(ctx, username, itemIDs); err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opDynamicGacha, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgUpdateInventoryFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.ShopOperationsTotal.WithLabelValues(opDynamicGacha, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	metrics.ShopOperationsTotal.WithLabelValues(opDynamicGacha, metrics.OutcomeSuccess).Inc()
	metrics.GoldSpent.Add(float64(totalCost))

	drawn := make([]domain.DrawnItem, len(draw.Items))
	legendaryCount := 0
	for i, it := range draw.Items {
		drawn[i] = domain.DrawnItem{ItemID: it.ID, Name: it.Name, Rarity: it.Rarity}
		if it.Rarity.IsLegendary() {
			legendaryCount++
		}
		metrics.GachaDraws.WithLabelValues(metrics.ModeDynamic, string(it.Rarity)).Inc()
	}

	log.Info(LogMsgGachaPlayed,
		"username", username,
		"mode", metrics.ModeDynamic,
		"count", count,
		"legendaries", legendaryCount,
		"failCount", draw.FailCount,
	)

	return &domain.GachaResult{
		Result:    domain.Result{Success: true, Message: dynamicMessage(drawn, legendaryCount, draw.FailCount)},
		Items:     drawn,
		FailCount: draw.FailCount,
	}, nil
}

// dynamicMessage builds the announcement line. Multi-pulls summarize; a
// single pull calls out the jackpot or the miss with the running pity.
func dynamicMessage(drawn []domain.DrawnItem, legendaryCount, failCount int) string {
	if len(drawn) > 1 {
		return fmt.Sprintf(MsgDynamicMultiFmt, len(drawn), legendaryCount, failCount, gacha.PityLimit)
	}
	it := drawn[0]
	if it.Rarity.IsLegendary() {
		return fmt.Sprintf(MsgDynamicJackpotFmt, it.Rarity, it.Name)
	}
	return fmt.Sprintf(MsgDynamicMissFmt, failCount, gacha.PityLimit, it.Rarity, it.Name)
}
