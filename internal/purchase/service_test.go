package purchase

import (
	"context"
	"errors"
	"testing"

	"valens/internal/domain"
	"valens/internal/quote"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Testify mocks ---

type MockCoinRepository struct{ mock.Mock }

func (m *MockCoinRepository) List(ctx context.Context) ([]domain.Coin, error) {
	args := m.Called(ctx)
	coins, _ := args.Get(0).([]domain.Coin)
	return coins, args.Error(1)
}

func (m *MockCoinRepository) GetByAddress(ctx context.Context, address string) (domain.Coin, error) {
	args := m.Called(ctx, address)
	c, _ := args.Get(0).(domain.Coin)
	return c, args.Error(1)
}

func (m *MockCoinRepository) GetPrice(ctx context.Context, address string) (domain.CoinPrice, error) {
	args := m.Called(ctx, address)
	p, _ := args.Get(0).(domain.CoinPrice)
	return p, args.Error(1)
}

type MockPriceProvider struct{ mock.Mock }

func (m *MockPriceProvider) GetPrice(ctx context.Context, address string) (domain.CoinPrice, error) {
	args := m.Called(ctx, address)
	p, _ := args.Get(0).(domain.CoinPrice)
	return p, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Create(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) SetCheckoutURL(ctx context.Context, orderID uuid.UUID, url string) error {
	args := m.Called(ctx, orderID, url)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(domain.Order)
	return o, args.Error(1)
}

type MockCheckoutClient struct{ mock.Mock }

func (m *MockCheckoutClient) CreatePurchaseSession(ctx context.Context, payload domain.PurchasePayload) (string, error) {
	args := m.Called(ctx, payload)
	return args.String(0), args.Error(1)
}

func (m *MockCheckoutClient) SubmitSell(ctx context.Context, payload domain.SellPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newServiceWithMocks() (*Service, *MockCoinRepository, *MockPriceProvider, *MockOrderRepository, *MockCheckoutClient) {
	mockCoins := new(MockCoinRepository)
	mockPrices := new(MockPriceProvider)
	mockOrders := new(MockOrderRepository)
	mockCheckout := new(MockCheckoutClient)
	svc := NewService(mockCoins, mockPrices, mockOrders, mockCheckout, quote.DefaultFeeRates)
	return svc, mockCoins, mockPrices, mockOrders, mockCheckout
}

var testCoin = domain.Coin{ID: 1, Address: "0xabc", Symbol: "VLN", Name: "Valens", VendorID: "vendor-1", Active: true}

// --- Quote ---

func TestService_Quote_Success(t *testing.T) {
	svc, mockCoins, mockPrices, _, _ := newServiceWithMocks()

	mockCoins.On("GetByAddress", mock.Anything, "0xabc").Return(testCoin, nil).Once()
	mockPrices.On("GetPrice", mock.Anything, "0xabc").Return(domain.CoinPrice{Address: "0xabc", PriceUSD: 0.001}, nil).Once()

	q, err := svc.Quote(context.Background(), PurchaseRequest{CoinAddress: "0xabc", AmountText: "100", IncludeFollowingFee: true})

	require.NoError(t, err)
	require.InDelta(t, 5.0, q.PlatformFee, 1e-9)
	require.InDelta(t, 5.0, q.FollowingFee, 1e-9)
	require.InDelta(t, 110.0, q.TotalAmount, 1e-9)
	require.Equal(t, int64(100000), q.TokenCount)
	mockCoins.AssertExpectations(t)
	mockPrices.AssertExpectations(t)
}

func TestService_Quote_UnknownCoin(t *testing.T) {
	svc, mockCoins, mockPrices, _, _ := newServiceWithMocks()

	mockCoins.On("GetByAddress", mock.Anything, "0xdead").Return(domain.Coin{}, domain.ErrCoinNotFound).Once()

	_, err := svc.Quote(context.Background(), PurchaseRequest{CoinAddress: "0xdead", AmountText: "10"})

	require.ErrorIs(t, err, domain.ErrCoinNotFound)
	mockPrices.AssertNotCalled(t, "GetPrice", mock.Anything, mock.Anything)
}

func TestService_Quote_PricePending(t *testing.T) {
	svc, mockCoins, mockPrices, _, _ := newServiceWithMocks()

	mockCoins.On("GetByAddress", mock.Anything, "0xabc").Return(testCoin, nil).Once()
	mockPrices.On("GetPrice", mock.Anything, "0xabc").Return(domain.CoinPrice{}, domain.ErrPricePending).Once()

	_, err := svc.Quote(context.Background(), PurchaseRequest{CoinAddress: "0xabc", AmountText: "10"})

	require.ErrorIs(t, err, domain.ErrPricePending)
}

// --- SubmitPurchase ---

func TestService_SubmitPurchase_Success(t *testing.T) {
	svc, mockCoins, mockPrices, mockOrders, mockCheckout := newServiceWithMocks()

	mockCoins.On("GetByAddress", mock.Anything, "0xabc").Return(testCoin, nil).Once()
	mockPrices.On("GetPrice", mock.Anything, "0xabc").Return(domain.CoinPrice{Address: "0xabc", PriceUSD: 0.001}, nil).Once()

	mockOrders.
		On("Create", mock.Anything, mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) {
			order, ok := args.Get(1).(domain.Order)
			require.True(t, ok)
			require.Equal(t, domain.SideBuy, order.Side)
			require.Equal(t, domain.OrderPending, order.Status)
			require.Equal(t, "vendor-1", order.VendorID)
			require.InDelta(t, 110.0, order.TotalAmount, 1e-9)
			require.Equal(t, int64(100000), order.TokenCount)
		}).Once()

	wantPayload := domain.PurchasePayload{
		Amount:             110,
		PlatformFee:        5,
		VendorFee:          5,
		RestAmount:         100,
		TokensReceived:     100000,
		PurchaseTokenPrice: 0.001,
		VendorID:           "vendor-1",
	}
	mockCheckout.On("CreatePurchaseSession", mock.Anything, wantPayload).Return("https://checkout.example/s/1", nil).Once()
	mockOrders.On("SetCheckoutURL", mock.Anything, mock.Anything, "https://checkout.example/s/1").Return(nil).Once()

	order, err := svc.SubmitPurchase(context.Background(), PurchaseRequest{CoinAddress: "0xabc", AmountText: "100", IncludeFollowingFee: true})

	require.NoError(t, err)
	require.Equal(t, domain.OrderCheckoutCreated, order.Status)
	require.Equal(t, "https://checkout.example/s/1", order.CheckoutURL)
	mockOrders.AssertExpectations(t)
	mockCheckout.AssertExpectations(t)
}

func TestService_SubmitPurchase_AmountBelowOneToken(t *testing.T) {
	svc, mockCoins, mockPrices, mockOrders, mockCheckout := newServiceWithMocks()

	mockCoins.On("GetByAddress", mock.Anything, "0xabc").Return(testCoin, nil).Once()
	mockPrices.On("GetPrice", mock.Anything, "0xabc").Return(domain.CoinPrice{Address: "0xabc", PriceUSD: 0.001}, nil).Once()

	_, err := svc.SubmitPurchase(context.Background(), PurchaseRequest{CoinAddress: "0xabc", AmountText: "0.0004"})

	require.ErrorIs(t, err, domain.ErrAmountTooSmall)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockCheckout.AssertNotCalled(t, "CreatePurchaseSession", mock.Anything, mock.Anything)
}

func TestService_SubmitPurchase_NonNumericAmount(t *testing.T) {
	svc, mockCoins, mockPrices, mockOrders, _ := newServiceWithMocks()

	mockCoins.On("GetByAddress", mock.Anything, "0xabc").Return(testCoin, nil).Once()
	mockPrices.On("GetPrice", mock.Anything, "0xabc").Return(domain.CoinPrice{Address: "0xabc", PriceUSD: 0.001}, nil).Once()

	// coerces to 0, which floors to 0 tokens
	_, err := svc.SubmitPurchase(context.Background(), PurchaseRequest{CoinAddress: "0xabc", AmountText: "1o0"})

	require.ErrorIs(t, err, domain.ErrAmountTooSmall)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_SubmitPurchase_CheckoutFailureMarksOrderFailed(t *testing.T) {
	svc, mockCoins, mockPrices, mockOrders, mockCheckout := newServiceWithMocks()

	mockCoins.On("GetByAddress", mock.Anything, "0xabc").Return(testCoin, nil).Once()
	mockPrices.On("GetPrice", mock.Anything, "0xabc").Return(domain.CoinPrice{Address: "0xabc", PriceUSD: 0.001}, nil).Once()
	mockOrders.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	mockCheckout.On("CreatePurchaseSession", mock.Anything, mock.Anything).Return("", errors.New("checkout down")).Once()
	mockOrders.On("UpdateStatus", mock.Anything, mock.Anything, domain.OrderFailed).Return(nil).Once()

	_, err := svc.SubmitPurchase(context.Background(), PurchaseRequest{CoinAddress: "0xabc", AmountText: "100"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to create checkout session")
	mockOrders.AssertExpectations(t)
}

// --- SubmitSell ---

func TestService_SubmitSell_Success(t *testing.T) {
	svc, mockCoins, _, mockOrders, mockCheckout := newServiceWithMocks()

	mockCoins.On("GetByAddress", mock.Anything, "0xabc").Return(testCoin, nil).Once()
	mockOrders.
		On("Create", mock.Anything, mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) {
			order, ok := args.Get(1).(domain.Order)
			require.True(t, ok)
			require.Equal(t, domain.SideSell, order.Side)
			require.Equal(t, int64(250), order.TokenCount)
		}).Once()
	mockCheckout.On("SubmitSell", mock.Anything, domain.SellPayload{AmountTokens: "250", TokenAddress: "0xabc"}).Return(nil).Once()
	mockOrders.On("UpdateStatus", mock.Anything, mock.Anything, domain.OrderSubmitted).Return(nil).Once()

	order, err := svc.SubmitSell(context.Background(), SellRequest{CoinAddress: "0xabc", AmountTokens: "250"})

	require.NoError(t, err)
	require.Equal(t, domain.OrderSubmitted, order.Status)
	mockOrders.AssertExpectations(t)
	mockCheckout.AssertExpectations(t)
}

func TestService_SubmitSell_InvalidTokenAmount(t *testing.T) {
	svc, mockCoins, _, mockOrders, _ := newServiceWithMocks()

	for _, raw := range []string{"", "abc", "0", "-5", "2.5"} {
		_, err := svc.SubmitSell(context.Background(), SellRequest{CoinAddress: "0xabc", AmountTokens: raw})
		require.ErrorIs(t, err, domain.ErrInvalidTokenAmount, "amountTokens=%q", raw)
	}
	mockCoins.AssertNotCalled(t, "GetByAddress", mock.Anything, mock.Anything)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_SubmitSell_CheckoutFailureMarksOrderFailed(t *testing.T) {
	svc, mockCoins, _, mockOrders, mockCheckout := newServiceWithMocks()

	mockCoins.On("GetByAddress", mock.Anything, "0xabc").Return(testCoin, nil).Once()
	mockOrders.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	mockCheckout.On("SubmitSell", mock.Anything, mock.Anything).Return(errors.New("no balance")).Once()
	mockOrders.On("UpdateStatus", mock.Anything, mock.Anything, domain.OrderFailed).Return(nil).Once()

	_, err := svc.SubmitSell(context.Background(), SellRequest{CoinAddress: "0xabc", AmountTokens: "10"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to submit sell")
	mockOrders.AssertExpectations(t)
}

// --- GetOrder ---

func TestService_GetOrder(t *testing.T) {
	svc, _, _, mockOrders, _ := newServiceWithMocks()

	orderID := uuid.New()
	want := domain.Order{OrderID: orderID, Side: domain.SideBuy, Status: domain.OrderCheckoutCreated}
	mockOrders.On("GetByOrderID", mock.Anything, orderID).Return(want, nil).Once()

	order, err := svc.GetOrder(context.Background(), orderID)

	require.NoError(t, err)
	require.Equal(t, want, order)
}
