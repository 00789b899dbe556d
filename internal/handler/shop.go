package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/modateam/shopcore/internal/domain"
	"github.com/modateam/shopcore/internal/logger"
	"github.com/modateam/shopcore/internal/shop"
)

// Business outcomes (member missing, short gold, empty inventory) arrive as
// failed results and go out as 200s with success=false, matching the result
// records the clients already consume. Only store failures become 500s.

type BuyItemRequest struct {
	Username string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	ItemID   int    `json:"item_id" validate:"required,min=1"`
}

// HandleBuyItem purchases one catalog item for a member
func HandleBuyItem(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BuyItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode buy request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid buy request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		result, err := svc.BuyItem(r.Context(), req.Username, req.ItemID)
		if err != nil {
			log.Error("Failed to buy item", "error", err, "username", req.Username, "itemID", req.ItemID)
			respondError(w, http.StatusInternalServerError, ErrMsgBuyItemFailed)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

type SellItemRequest struct {
	Username    string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	InventoryID int    `json:"inventory_id" validate:"required,min=1"`
}

// HandleSellItem sells one owned item back to the shop
func HandleSellItem(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SellItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode sell request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid sell request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		result, err := svc.SellItem(r.Context(), req.Username, req.InventoryID)
		if err != nil {
			log.Error("Failed to sell item", "error", err, "username", req.Username, "inventoryID", req.InventoryID)
			respondError(w, http.StatusInternalServerError, ErrMsgSellItemFailed)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

type SellAllRequest struct {
	Username string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// HandleSellAllItems liquidates a member's entire inventory
func HandleSellAllItems(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SellAllRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode sell-all request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid sell-all request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		result, err := svc.SellAllItems(r.Context(), req.Username)
		if err != nil {
			log.Error("Failed to sell all items", "error", err, "username", req.Username)
			respondError(w, http.StatusInternalServerError, ErrMsgSellAllFailed)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

type FixedGachaRequest struct {
	Username string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
}

// HandleFixedGacha runs one premium weighted draw
func HandleFixedGacha(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req FixedGachaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode fixed gacha request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid fixed gacha request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		result, err := svc.PlayFixedGacha(r.Context(), req.Username)
		if err != nil {
			log.Error("Failed to play fixed gacha", "error", err, "username", req.Username)
			respondError(w, http.StatusInternalServerError, ErrMsgGachaFailed)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

type DynamicGachaRequest struct {
	Username string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Count    int    `json:"count" validate:"required,min=1,max=100"`
}

// HandleDynamicGacha runs count pity-adjusted draws
func HandleDynamicGacha(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req DynamicGachaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode dynamic gacha request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid dynamic gacha request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		result, err := svc.PlayDynamicGacha(r.Context(), req.Username, req.Count)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCount) {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidPullCount)
				return
			}
			log.Error("Failed to play dynamic gacha", "error", err, "username", req.Username, "count", req.Count)
			respondError(w, http.StatusInternalServerError, ErrMsgGachaFailed)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleListItems returns the full catalog, cheapest first
func HandleListItems(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		items, err := svc.ListItems(r.Context())
		if err != nil {
			log.Error("Failed to list items", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgListItemsFailed)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

// HandleGetInventory returns a member's owned items, newest first
func HandleGetInventory(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		username := r.URL.Query().Get("username")
		if username == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "username"))
			return
		}

		owned, err := svc.GetInventory(r.Context(), username)
		if err != nil {
			log.Error("Failed to get inventory", "error", err, "username", username)
			respondError(w, http.StatusInternalServerError, ErrMsgGetInventoryFailed)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: owned})
	}
}

// HandleGetGold returns a member's gold balance and pity counter
func HandleGetGold(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		username := r.URL.Query().Get("username")
		if username == "" {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "username"))
			return
		}

		balance, err := svc.GetBalance(r.Context(), username)
		if err != nil {
			log.Error("Failed to get gold", "error", err, "username", username)
			respondError(w, http.StatusInternalServerError, ErrMsgGetGoldFailed)
			return
		}

		respondJSON(w, http.StatusOK, balance)
	}
}
