package billing

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/folderforge/folderforge/internal/common"
	"github.com/folderforge/folderforge/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	customers       map[string]*Customer // by email
	createdCustomer *Customer
	session         *CheckoutSession
	portalURL       string
	invoices        []Invoice
	intents         []PaymentIntent
	prices          []Price
	cancellation    *Cancellation
	err             error

	lastMode              string
	lastMetadata          map[string]string
	canceledForCustomerID string
}

func (f *fakeAPI) FindCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customers[email], nil
}

func (f *fakeAPI) CreateCustomer(ctx context.Context, email, externalUserID string) (*Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.createdCustomer = &Customer{ID: "cus_new", Email: email}
	return f.createdCustomer, nil
}

func (f *fakeAPI) CreateCheckoutSession(ctx context.Context, customerID, priceID, mode, successURL, cancelURL string, metadata map[string]string) (*CheckoutSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastMode = mode
	f.lastMetadata = metadata
	return f.session, nil
}

func (f *fakeAPI) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.portalURL, nil
}

func (f *fakeAPI) ListInvoices(ctx context.Context, customerID string, limit int) ([]Invoice, []PaymentIntent, error) {
	return f.invoices, f.intents, f.err
}

func (f *fakeAPI) CancelSubscription(ctx context.Context, customerID string) (*Cancellation, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.canceledForCustomerID = customerID
	return f.cancellation, nil
}

func (f *fakeAPI) ListActivePrices(ctx context.Context) ([]Price, error) {
	return f.prices, f.err
}

type fakePlanFinder struct {
	info *PlanInfo
	err  error
}

func (f *fakePlanFinder) FindByStripePrice(ctx context.Context, priceID string) (*PlanInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

type fakeCustomerDirectory struct {
	ids    map[string]string
	setErr error
}

func (f *fakeCustomerDirectory) StripeCustomerID(ctx context.Context, uid string) (string, error) {
	return f.ids[uid], nil
}

func (f *fakeCustomerDirectory) SetStripeCustomerID(ctx context.Context, uid, customerID string) error {
	if f.setErr != nil {
		return f.setErr
	}
	if f.ids == nil {
		f.ids = map[string]string{}
	}
	f.ids[uid] = customerID
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func newBillingService(api *fakeAPI, plans PlanFinder, customers CustomerDirectory) *Service {
	return NewService(api, plans, customers, "https://folderforge.test", testLogger())
}

func TestCheckout_ReusesExistingCustomer(t *testing.T) {
	api := &fakeAPI{
		customers: map[string]*Customer{"u@example.com": {ID: "cus_1", Email: "u@example.com"}},
		session:   &CheckoutSession{ID: "cs_1", URL: "https://stripe/session"},
	}
	dir := &fakeCustomerDirectory{}
	svc := newBillingService(api, &fakePlanFinder{err: common.ErrorNotFound}, dir)

	session, err := svc.Checkout(context.Background(), "uid1", "u@example.com", "price_1", ModeSubscription, "")
	require.NoError(t, err)

	assert.Equal(t, "cs_1", session.ID)
	assert.Nil(t, api.createdCustomer, "existing customer must be reused")
	assert.Equal(t, "cus_1", dir.ids["uid1"], "handle must be stored on the profile")
	assert.Equal(t, ModeSubscription, api.lastMode)
	assert.Equal(t, "uid1", api.lastMetadata["userId"])
}

func TestCheckout_CreatesCustomerWhenAbsent(t *testing.T) {
	api := &fakeAPI{
		session: &CheckoutSession{ID: "cs_2", URL: "https://stripe/session"},
	}
	svc := newBillingService(api, &fakePlanFinder{err: common.ErrorNotFound}, &fakeCustomerDirectory{})

	_, err := svc.Checkout(context.Background(), "uid2", "new@example.com", "price_1", ModePayment, "")
	require.NoError(t, err)
	require.NotNil(t, api.createdCustomer)
	assert.Equal(t, "new@example.com", api.createdCustomer.Email)
}

func TestCheckout_SoldOutPlan(t *testing.T) {
	api := &fakeAPI{session: &CheckoutSession{ID: "cs_3"}}
	svc := newBillingService(api, &fakePlanFinder{info: &PlanInfo{ID: "plan1", SoldOut: true}}, &fakeCustomerDirectory{})

	_, err := svc.Checkout(context.Background(), "uid", "u@example.com", "price_1", ModeSubscription, "")
	assert.True(t, errors.Is(err, common.ErrorValidation))
}

func TestCheckout_Validation(t *testing.T) {
	svc := newBillingService(&fakeAPI{}, &fakePlanFinder{}, &fakeCustomerDirectory{})

	tests := []struct {
		name    string
		email   string
		priceID string
		mode    string
	}{
		{"missing price", "u@example.com", "", ModeSubscription},
		{"missing email", "", "price_1", ModeSubscription},
		{"bad mode", "u@example.com", "price_1", "installments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Checkout(context.Background(), "uid", tt.email, tt.priceID, tt.mode, "")
			assert.True(t, errors.Is(err, common.ErrorValidation))
		})
	}
}

func TestPortal_NoStoredCustomer(t *testing.T) {
	svc := newBillingService(&fakeAPI{portalURL: "https://stripe/portal"}, &fakePlanFinder{}, &fakeCustomerDirectory{})

	_, err := svc.Portal(context.Background(), "uid-without-customer", "")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestPortal_Success(t *testing.T) {
	dir := &fakeCustomerDirectory{ids: map[string]string{"uid1": "cus_1"}}
	svc := newBillingService(&fakeAPI{portalURL: "https://stripe/portal"}, &fakePlanFinder{}, dir)

	url, err := svc.Portal(context.Background(), "uid1", "")
	require.NoError(t, err)
	assert.Equal(t, "https://stripe/portal", url)
}

func TestCancelSubscription_NoStoredCustomer(t *testing.T) {
	svc := newBillingService(&fakeAPI{}, &fakePlanFinder{}, &fakeCustomerDirectory{})

	_, err := svc.CancelSubscription(context.Background(), "uid-without-customer")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestCancelSubscription_NothingToCancel(t *testing.T) {
	dir := &fakeCustomerDirectory{ids: map[string]string{"uid1": "cus_1"}}
	svc := newBillingService(&fakeAPI{}, &fakePlanFinder{}, dir)

	_, err := svc.CancelSubscription(context.Background(), "uid1")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestCancelSubscription_Success(t *testing.T) {
	periodEnd := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	api := &fakeAPI{cancellation: &Cancellation{SubscriptionID: "sub_1", CurrentPeriodEnd: periodEnd}}
	dir := &fakeCustomerDirectory{ids: map[string]string{"uid1": "cus_1"}}
	svc := newBillingService(api, &fakePlanFinder{}, dir)

	cancellation, err := svc.CancelSubscription(context.Background(), "uid1")
	require.NoError(t, err)

	assert.Equal(t, "cus_1", api.canceledForCustomerID)
	assert.Equal(t, "sub_1", cancellation.SubscriptionID)
	assert.Equal(t, periodEnd, cancellation.CurrentPeriodEnd)
}

func TestInvoices_NoCustomerYieldsEmptyList(t *testing.T) {
	svc := newBillingService(&fakeAPI{}, &fakePlanFinder{}, &fakeCustomerDirectory{})

	invoices, err := svc.Invoices(context.Background(), "uid-x")
	require.NoError(t, err)
	assert.Empty(t, invoices)
	assert.NotNil(t, invoices)
}

func TestMergeHistory(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC) }

	invoices := []Invoice{
		{ID: "in_1", Amount: 999, Status: "paid", Date: day(1), Type: "invoice"},
	}
	intents := []PaymentIntent{
		{ID: "pi_linked", Amount: 999, Status: "succeeded", Created: day(1), InvoiceID: "in_1"},
		{ID: "pi_lifetime", Amount: 4900, Status: "succeeded", Created: day(3)},
		{ID: "pi_failed", Amount: 4900, Status: "requires_payment_method", Created: day(4)},
	}

	merged := MergeHistory(invoices, intents)

	require.Len(t, merged, 2)
	// most recent first; invoice-linked and failed intents dropped
	assert.Equal(t, "pi_lifetime", merged[0].ID)
	assert.Equal(t, "paid", merged[0].Status)
	assert.Equal(t, "payment", merged[0].Type)
	assert.Equal(t, "in_1", merged[1].ID)
}
