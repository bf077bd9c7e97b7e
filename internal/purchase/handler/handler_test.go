package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"valens/internal/coin"
	"valens/internal/domain"
	"valens/internal/purchase"
	"valens/internal/quote"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAddressValidator struct{ mock.Mock }

func (m *MockAddressValidator) ValidateAddress(address string) error {
	args := m.Called(address)
	return args.Error(0)
}

type MockAmountValidator struct{ mock.Mock }

func (m *MockAmountValidator) ValidateAmountText(text string) error {
	args := m.Called(text)
	return args.Error(0)
}

type MockService struct{ mock.Mock }

func (m *MockService) Quote(ctx context.Context, req purchase.PurchaseRequest) (domain.PurchaseQuote, error) {
	args := m.Called(ctx, req)
	q, _ := args.Get(0).(domain.PurchaseQuote)
	return q, args.Error(1)
}

func (m *MockService) SubmitPurchase(ctx context.Context, req purchase.PurchaseRequest) (domain.Order, error) {
	args := m.Called(ctx, req)
	order, _ := args.Get(0).(domain.Order)
	return order, args.Error(1)
}

func (m *MockService) SubmitSell(ctx context.Context, req purchase.SellRequest) (domain.Order, error) {
	args := m.Called(ctx, req)
	order, _ := args.Get(0).(domain.Order)
	return order, args.Error(1)
}

func (m *MockService) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	args := m.Called(ctx, orderID)
	order, _ := args.Get(0).(domain.Order)
	return order, args.Error(1)
}

type errorJSON struct {
	Error string `json:"error"`
}

const testAddress = "0x1f9840a85d5af5bf1d1762f925bdaddc4201f984"

func newHandlerWithMocks() (*Handler, *MockAddressValidator, *MockAmountValidator, *MockService) {
	mockAddresses := new(MockAddressValidator)
	mockAmounts := new(MockAmountValidator)
	mockService := new(MockService)
	return NewPurchaseHandler(mockAddresses, mockAmounts, mockService), mockAddresses, mockAmounts, mockService
}

func postJSON(target string, body any) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// --- CreateQuote ---

func TestHandler_CreateQuote_Success(t *testing.T) {
	h, mockAddresses, mockAmounts, mockService := newHandlerWithMocks()

	wantReq := purchase.PurchaseRequest{CoinAddress: testAddress, AmountText: "100", IncludeFollowingFee: true}
	q := domain.PurchaseQuote{BaseAmount: 100, PlatformFee: 5, FollowingFee: 5, TotalAmount: 110, TokenCount: 100000, TokenPrice: 0.001}

	mockAddresses.On("ValidateAddress", testAddress).Return(nil).Once()
	mockAmounts.On("ValidateAmountText", "100").Return(nil).Once()
	mockService.On("Quote", mock.Anything, wantReq).Return(q, nil).Once()

	rr := httptest.NewRecorder()
	h.CreateQuote(rr, postJSON("/quotes", CreateQuoteRequest{Address: " " + testAddress + " ", Amount: "100", IncludeFollowingFee: true}))

	require.Equal(t, http.StatusOK, rr.Code)
	var res CreateQuoteResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.InDelta(t, 110.0, res.TotalAmount, 1e-12)
	require.Equal(t, int64(100000), res.TokenCount)
	mockService.AssertExpectations(t)
}

func TestHandler_CreateQuote_UnknownFieldRejected(t *testing.T) {
	h, _, _, mockService := newHandlerWithMocks()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/quotes", bytes.NewReader([]byte(`{"address":"0xabc","amount":"1","bogus":true}`)))
	h.CreateQuote(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	mockService.AssertNotCalled(t, "Quote", mock.Anything, mock.Anything)
}

func TestHandler_CreateQuote_AmountValidationError(t *testing.T) {
	h, mockAddresses, mockAmounts, mockService := newHandlerWithMocks()

	mockAddresses.On("ValidateAddress", testAddress).Return(nil).Once()
	mockAmounts.On("ValidateAmountText", "").Return(quote.ErrAmountRequired).Once()

	rr := httptest.NewRecorder()
	h.CreateQuote(rr, postJSON("/quotes", CreateQuoteRequest{Address: testAddress}))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var ej errorJSON
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ej))
	require.Equal(t, quote.ErrAmountRequired.Error(), ej.Error)
	mockService.AssertNotCalled(t, "Quote", mock.Anything, mock.Anything)
}

func TestHandler_CreateQuote_PricePending(t *testing.T) {
	h, mockAddresses, mockAmounts, mockService := newHandlerWithMocks()

	mockAddresses.On("ValidateAddress", testAddress).Return(nil).Once()
	mockAmounts.On("ValidateAmountText", "100").Return(nil).Once()
	mockService.On("Quote", mock.Anything, mock.Anything).Return(domain.PurchaseQuote{}, domain.ErrPricePending).Once()

	rr := httptest.NewRecorder()
	h.CreateQuote(rr, postJSON("/quotes", CreateQuoteRequest{Address: testAddress, Amount: "100"}))

	require.Equal(t, http.StatusAccepted, rr.Code)
}

// --- SubmitPurchase ---

func TestHandler_SubmitPurchase_Success(t *testing.T) {
	h, mockAddresses, mockAmounts, mockService := newHandlerWithMocks()

	order := domain.Order{
		OrderID:     uuid.New(),
		Side:        domain.SideBuy,
		CoinAddress: testAddress,
		BaseAmount:  100,
		PlatformFee: 5,
		VendorFee:   5,
		TotalAmount: 110,
		TokenCount:  100000,
		TokenPrice:  0.001,
		Status:      domain.OrderCheckoutCreated,
		CheckoutURL: "https://checkout.example/session/abc",
	}

	mockAddresses.On("ValidateAddress", testAddress).Return(nil).Once()
	mockAmounts.On("ValidateAmountText", "100").Return(nil).Once()
	mockService.On("SubmitPurchase", mock.Anything, mock.Anything).Return(order, nil).Once()

	rr := httptest.NewRecorder()
	h.SubmitPurchase(rr, postJSON("/purchases", SubmitPurchaseRequest{Address: testAddress, Amount: "100"}))

	require.Equal(t, http.StatusCreated, rr.Code)
	var res OrderResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, order.OrderID.String(), res.OrderID)
	require.Equal(t, "checkout_created", res.Status)
	require.Equal(t, "https://checkout.example/session/abc", res.CheckoutURL)
}

func TestHandler_SubmitPurchase_AmountTooSmall(t *testing.T) {
	h, mockAddresses, mockAmounts, mockService := newHandlerWithMocks()

	mockAddresses.On("ValidateAddress", testAddress).Return(nil).Once()
	mockAmounts.On("ValidateAmountText", "0.0001").Return(nil).Once()
	mockService.On("SubmitPurchase", mock.Anything, mock.Anything).Return(domain.Order{}, domain.ErrAmountTooSmall).Once()

	rr := httptest.NewRecorder()
	h.SubmitPurchase(rr, postJSON("/purchases", SubmitPurchaseRequest{Address: testAddress, Amount: "0.0001"}))

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestHandler_SubmitPurchase_CoinNotFound(t *testing.T) {
	h, mockAddresses, mockAmounts, mockService := newHandlerWithMocks()

	mockAddresses.On("ValidateAddress", testAddress).Return(nil).Once()
	mockAmounts.On("ValidateAmountText", "100").Return(nil).Once()
	mockService.On("SubmitPurchase", mock.Anything, mock.Anything).Return(domain.Order{}, domain.ErrCoinNotFound).Once()

	rr := httptest.NewRecorder()
	h.SubmitPurchase(rr, postJSON("/purchases", SubmitPurchaseRequest{Address: testAddress, Amount: "100"}))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

// --- SubmitSell ---

func TestHandler_SubmitSell_Success(t *testing.T) {
	h, mockAddresses, _, mockService := newHandlerWithMocks()

	order := domain.Order{
		OrderID:     uuid.New(),
		Side:        domain.SideSell,
		CoinAddress: testAddress,
		TokenCount:  500,
		Status:      domain.OrderSubmitted,
	}

	mockAddresses.On("ValidateAddress", testAddress).Return(nil).Once()
	mockService.
		On("SubmitSell", mock.Anything, purchase.SellRequest{CoinAddress: testAddress, AmountTokens: "500"}).
		Return(order, nil).
		Once()

	rr := httptest.NewRecorder()
	h.SubmitSell(rr, postJSON("/sells", SubmitSellRequest{Address: testAddress, AmountTokens: " 500 "}))

	require.Equal(t, http.StatusCreated, rr.Code)
	var res OrderResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "sell", res.Side)
	require.Equal(t, "submitted", res.Status)
}

func TestHandler_SubmitSell_InvalidTokenAmount(t *testing.T) {
	h, mockAddresses, _, mockService := newHandlerWithMocks()

	mockAddresses.On("ValidateAddress", testAddress).Return(nil).Once()
	mockService.On("SubmitSell", mock.Anything, mock.Anything).Return(domain.Order{}, domain.ErrInvalidTokenAmount).Once()

	rr := httptest.NewRecorder()
	h.SubmitSell(rr, postJSON("/sells", SubmitSellRequest{Address: testAddress, AmountTokens: "-5"}))

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestHandler_SubmitSell_AddressValidationError(t *testing.T) {
	h, mockAddresses, _, mockService := newHandlerWithMocks()

	mockAddresses.On("ValidateAddress", "abc").Return(coin.ErrAddressInvalid).Once()

	rr := httptest.NewRecorder()
	h.SubmitSell(rr, postJSON("/sells", SubmitSellRequest{Address: "ABC", AmountTokens: "5"}))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	mockService.AssertNotCalled(t, "SubmitSell", mock.Anything, mock.Anything)
}

// --- GetOrder ---

func TestHandler_GetOrder_InvalidID(t *testing.T) {
	h, _, _, _ := newHandlerWithMocks()

	req := httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "not-a-uuid")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()

	h.GetOrder(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_GetOrder_NotFound(t *testing.T) {
	h, _, _, mockService := newHandlerWithMocks()

	orderID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID.String(), nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", orderID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()

	mockService.On("GetOrder", mock.Anything, orderID).Return(domain.Order{}, domain.ErrOrderNotFound).Once()

	h.GetOrder(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandler_GetOrder_Success(t *testing.T) {
	h, _, _, mockService := newHandlerWithMocks()

	order := domain.Order{OrderID: uuid.New(), Side: domain.SideBuy, Status: domain.OrderCheckoutCreated}
	req := httptest.NewRequest(http.MethodGet, "/orders/"+order.OrderID.String(), nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", order.OrderID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	rr := httptest.NewRecorder()

	mockService.On("GetOrder", mock.Anything, order.OrderID).Return(order, nil).Once()

	h.GetOrder(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var res OrderResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, order.OrderID.String(), res.OrderID)
}
