package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/modateam/shopcore/internal/domain"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleBuyItem(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockShopService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: BuyItemRequest{Username: "mina", ItemID: 2},
			setupMock: func(m *MockShopService) {
				m.On("BuyItem", mock.Anything, "mina", 2).Return(&domain.PurchaseResult{
					Result:   domain.Result{Success: true, Message: "'Silk Scarf' purchased! Remaining gold: 2000G"},
					ItemName: "Silk Scarf",
					NewGold:  2000,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"success":true`,
		},
		{
			name:        "Business Failure Is 200",
			requestBody: BuyItemRequest{Username: "mina", ItemID: 3},
			setupMock: func(m *MockShopService) {
				m.On("BuyItem", mock.Anything, "mina", 3).Return(&domain.PurchaseResult{
					Result: domain.Failure("Not enough gold!"),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"success":false`,
		},
		{
			name:           "Invalid Request - Missing Username",
			requestBody:    BuyItemRequest{ItemID: 2},
			setupMock:      func(m *MockShopService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:        "Service Error",
			requestBody: BuyItemRequest{Username: "mina", ItemID: 2},
			setupMock: func(m *MockShopService) {
				m.On("BuyItem", mock.Anything, "mina", 2).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgBuyItemFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockShopService{}
			tt.setupMock(mockSvc)

			rec := postJSON(t, HandleBuyItem(mockSvc), tt.requestBody)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleSellItem(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockShopService{}
		mockSvc.On("SellItem", mock.Anything, "mina", 7).Return(&domain.SaleResult{
			Result:     domain.Result{Success: true, Message: "'Linen Cap' sold! +499G"},
			SoldCount:  1,
			GoldGained: 499,
		}, nil)

		rec := postJSON(t, HandleSellItem(mockSvc), SellItemRequest{Username: "mina", InventoryID: 7})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"gold_gained":499`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Invalid Request - Missing Inventory ID", func(t *testing.T) {
		mockSvc := &MockShopService{}

		rec := postJSON(t, HandleSellItem(mockSvc), SellItemRequest{Username: "mina"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "SellItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleSellAllItems(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockShopService{}
		mockSvc.On("SellAllItems", mock.Anything, "mina").Return(&domain.SaleResult{
			Result:     domain.Result{Success: true, Message: "Sold all 3 items! +12,500G"},
			SoldCount:  3,
			GoldGained: 12500,
		}, nil)

		rec := postJSON(t, HandleSellAllItems(mockSvc), SellAllRequest{Username: "mina"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"sold_count":3`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		mockSvc := &MockShopService{}

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		HandleSellAllItems(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidRequest)
	})
}

func TestHandleDynamicGacha(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockShopService{}
		mockSvc.On("PlayDynamicGacha", mock.Anything, "mina", 10).Return(&domain.GachaResult{
			Result:    domain.Result{Success: true, Message: "Finished 10 pulls! (legendary: 1) - pity 5/50"},
			FailCount: 5,
		}, nil)

		rec := postJSON(t, HandleDynamicGacha(mockSvc), DynamicGachaRequest{Username: "mina", Count: 10})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"fail_count":5`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Count Above Limit Rejected By Validation", func(t *testing.T) {
		mockSvc := &MockShopService{}

		rec := postJSON(t, HandleDynamicGacha(mockSvc), DynamicGachaRequest{Username: "mina", Count: 101})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "PlayDynamicGacha", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid Count From Service", func(t *testing.T) {
		mockSvc := &MockShopService{}
		mockSvc.On("PlayDynamicGacha", mock.Anything, "mina", 50).Return(nil, domain.ErrInvalidCount)

		rec := postJSON(t, HandleDynamicGacha(mockSvc), DynamicGachaRequest{Username: "mina", Count: 50})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidPullCount)
	})
}

func TestHandleGetGold(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockShopService{}
		mockSvc.On("GetBalance", mock.Anything, "mina").Return(&domain.Balance{Gold: 1200, GachaFailCount: 7}, nil)

		req := httptest.NewRequest(http.MethodGet, "/?username=mina", nil)
		rec := httptest.NewRecorder()
		HandleGetGold(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"gold":1200`)
		assert.Contains(t, rec.Body.String(), `"gacha_fail_count":7`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing Username", func(t *testing.T) {
		mockSvc := &MockShopService{}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		HandleGetGold(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "GetBalance", mock.Anything, mock.Anything)
	})
}

func TestHandleListItems(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockShopService{}
		mockSvc.On("ListItems", mock.Anything).Return([]domain.Item{
			{ID: 1, Name: "Cotton Tee", Price: 500, Rarity: domain.RarityCommon},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		HandleListItems(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Cotton Tee")
		mockSvc.AssertExpectations(t)
	})

	t.Run("Service Error", func(t *testing.T) {
		mockSvc := &MockShopService{}
		mockSvc.On("ListItems", mock.Anything).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		HandleListItems(mockSvc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgListItemsFailed)
	})
}
