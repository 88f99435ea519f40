package form

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimikegami/point-of-sales/product-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/product-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/product-admin/internal/validator"
	"github.com/alimikegami/point-of-sales/product-admin/pkg/errs"
)

type fakeService struct {
	mu          sync.Mutex
	added       []domain.DraftProduct
	addErr      error
	prompts     []string
	generated   *dto.GeneratedProduct
	generateErr error

	// when set, calls wait on release after signalling started
	started chan struct{}
	release chan struct{}
}

func (s *fakeService) wait() {
	if s.started == nil {
		return
	}
	s.started <- struct{}{}
	<-s.release
}

func (s *fakeService) AddProduct(ctx context.Context, draft domain.DraftProduct, image domain.ProductImage) error {
	s.mu.Lock()
	s.added = append(s.added, draft)
	s.mu.Unlock()

	s.wait()
	return s.addErr
}

func (s *fakeService) GenerateProduct(ctx context.Context, prompt string) (*dto.GeneratedProduct, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	s.wait()
	return s.generated, s.generateErr
}

type recorder struct {
	mu            sync.Mutex
	notifications []Notification
	routes        []string
}

func (r *recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recorder) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

func newTestForm(svc *fakeService) (*Form, *recorder) {
	rec := &recorder{}
	return New(svc, rec, rec), rec
}

func fillValid(t *testing.T, f *Form) {
	t.Helper()

	values := map[domain.Field]string{
		domain.FieldName:             "MacBook Air",
		domain.FieldBrand:            "Apple",
		domain.FieldDescription:      "13 inch laptop",
		domain.FieldPrice:            "999.99",
		domain.FieldCategory:         "Laptop",
		domain.FieldStockQuantity:    "10",
		domain.FieldReleaseDate:      "2024-03-08",
		domain.FieldProductAvailable: "true",
	}
	for field, value := range values {
		require.NoError(t, f.SetField(field, value))
	}
	f.SelectImage(domain.NewImageFromBytes("air.png", domain.MIMEImagePNG, make([]byte, 2048)))
}

func TestSubmitInvalidFormSendsNothing(t *testing.T) {
	svc := &fakeService{}
	f, rec := newTestForm(svc)

	err := f.Submit(context.Background())

	assert.ErrorIs(t, err, errs.ErrInvalidForm)
	assert.Empty(t, svc.added)
	assert.Empty(t, rec.routes)
	assert.Empty(t, rec.notifications)

	state := f.Snapshot()
	assert.True(t, state.Validated)
	assert.False(t, state.Loading)
	assert.Equal(t, validator.MsgNameRequired, state.Errors.Name)
	assert.Equal(t, validator.MsgImageRequired, state.Errors.Image)
}

func TestSubmitSuccess(t *testing.T) {
	svc := &fakeService{}
	f, rec := newTestForm(svc)
	fillValid(t, f)

	err := f.Submit(context.Background())

	require.NoError(t, err)
	require.Len(t, svc.added, 1)
	assert.Equal(t, "MacBook Air", svc.added[0].Name)
	assert.True(t, svc.added[0].ProductAvailable)
	assert.Equal(t, []Notification{{Level: LevelSuccess, Message: MsgProductAdded}}, rec.notifications)
	assert.Equal(t, []string{LandingRoute}, rec.routes)
	assert.False(t, f.Snapshot().Loading)
}

func TestSubmitServerFieldErrorsReplaceMapping(t *testing.T) {
	svc := &fakeService{addErr: &errs.ValidationError{
		StatusCode: http.StatusConflict,
		Fields:     map[string]string{"name": "Name already exists"},
	}}
	f, rec := newTestForm(svc)
	fillValid(t, f)

	err := f.Submit(context.Background())

	assert.ErrorIs(t, err, errs.ErrConflict)

	state := f.Snapshot()
	assert.Equal(t, map[string]string{"name": "Name already exists"}, state.Errors.Map())
	assert.Empty(t, rec.notifications)
	assert.Equal(t, []string{LandingRoute}, rec.routes)
	assert.False(t, state.Loading)
}

func TestSubmitUnstructuredFailureNotifies(t *testing.T) {
	svc := &fakeService{addErr: &errs.StatusError{StatusCode: http.StatusInternalServerError}}
	f, rec := newTestForm(svc)
	fillValid(t, f)

	err := f.Submit(context.Background())

	assert.ErrorIs(t, err, errs.ErrInternalServer)
	assert.Equal(t, []Notification{{Level: LevelError, Message: MsgAddFailed}}, rec.notifications)
	assert.Equal(t, []string{LandingRoute}, rec.routes)
	assert.True(t, f.Snapshot().Errors.Empty())
}

func TestSubmitRejectsWhileInFlight(t *testing.T) {
	svc := &fakeService{started: make(chan struct{}), release: make(chan struct{})}
	f, rec := newTestForm(svc)
	fillValid(t, f)

	done := make(chan error, 1)
	go func() { done <- f.Submit(context.Background()) }()

	<-svc.started
	assert.True(t, f.Snapshot().Loading)
	assert.ErrorIs(t, f.Submit(context.Background()), errs.ErrSubmitInFlight)

	close(svc.release)
	require.NoError(t, <-done)

	assert.Len(t, svc.added, 1)
	assert.Len(t, rec.routes, 1)
	assert.False(t, f.Snapshot().Loading)
}

func TestSetFieldClearsOnlyThatError(t *testing.T) {
	f, _ := newTestForm(&fakeService{})
	f.Validate()

	require.NoError(t, f.SetField(domain.FieldName, "Pixel 8"))

	state := f.Snapshot()
	assert.Empty(t, state.Errors.Name)
	assert.Equal(t, validator.MsgBrandRequired, state.Errors.Brand)
	assert.Equal(t, validator.MsgPriceRequired, state.Errors.Price)
}

func TestSetField(t *testing.T) {
	type TestCase struct {
		Name      string
		Field     domain.Field
		Value     string
		ExpectErr bool
	}

	testCases := []TestCase{
		{Name: "availability yes", Field: domain.FieldProductAvailable, Value: "true"},
		{Name: "availability numeric", Field: domain.FieldProductAvailable, Value: "1"},
		{Name: "availability garbage", Field: domain.FieldProductAvailable, Value: "maybe", ExpectErr: true},
		{Name: "unknown field", Field: domain.Field("colour"), Value: "red", ExpectErr: true},
		{Name: "price kept raw", Field: domain.FieldPrice, Value: " 12.50 "},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			f, _ := newTestForm(&fakeService{})
			err := f.SetField(tc.Field, tc.Value)
			if tc.ExpectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.Field != domain.FieldProductAvailable {
				assert.Equal(t, tc.Value, f.Snapshot().Draft.Value(tc.Field))
			} else {
				assert.True(t, f.Snapshot().Draft.ProductAvailable)
			}
		})
	}
}

func TestSelectImageValidatesImmediately(t *testing.T) {
	f, _ := newTestForm(&fakeService{})

	msg := f.SelectImage(domain.NewImageFromBytes("anim.gif", "image/gif", []byte{1}))
	assert.Equal(t, validator.MsgImageTypeNotAccepted, msg)
	assert.Equal(t, validator.MsgImageTypeNotAccepted, f.Snapshot().Errors.Image)

	msg = f.SelectImage(domain.NewImageFromBytes("photo.jpg", domain.MIMEImageJPEG, make([]byte, 2*1024*1024)))
	assert.Empty(t, msg)
	assert.Empty(t, f.Snapshot().Errors.Image)
	assert.Equal(t, "photo.jpg", f.Snapshot().Image.Filename)
}

func TestGeneratorStateMachine(t *testing.T) {
	svc := &fakeService{generated: &dto.GeneratedProduct{Name: "Galaxy S24"}}
	f, rec := newTestForm(svc)

	_, err := f.Generate(context.Background())
	assert.ErrorIs(t, err, errs.ErrGeneratorNotOpen)

	f.OpenGenerator()
	assert.Equal(t, ModalOpen, f.Snapshot().Modal)

	f.SetPrompt("   ")
	_, err = f.Generate(context.Background())
	assert.ErrorIs(t, err, errs.ErrEmptyPrompt)
	assert.Equal(t, ModalOpen, f.Snapshot().Modal)
	assert.Empty(t, svc.prompts)

	f.SetPrompt("  flagship android phone ")
	generated, err := f.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Galaxy S24", generated.Name)
	assert.Equal(t, []string{"flagship android phone"}, svc.prompts)

	state := f.Snapshot()
	assert.Equal(t, ModalClosed, state.Modal)
	assert.Empty(t, state.Prompt)
	assert.Empty(t, state.Draft.Name)
	assert.Equal(t, []string{LandingRoute}, rec.routes)
}

func TestGenerateFailureReturnsToOpen(t *testing.T) {
	svc := &fakeService{generateErr: errs.ErrBadGateway}
	f, rec := newTestForm(svc)
	f.OpenGenerator()
	f.SetPrompt("wireless earbuds")

	_, err := f.Generate(context.Background())

	assert.ErrorIs(t, err, errs.ErrBadGateway)
	state := f.Snapshot()
	assert.Equal(t, ModalOpen, state.Modal)
	assert.Equal(t, "wireless earbuds", state.Prompt)
	assert.Equal(t, []Notification{{Level: LevelError, Message: MsgGenerateFailed}}, rec.notifications)
	assert.Empty(t, rec.routes)
}

func TestCancelRefusedWhileGenerating(t *testing.T) {
	svc := &fakeService{started: make(chan struct{}), release: make(chan struct{})}
	f, _ := newTestForm(svc)
	f.OpenGenerator()
	f.SetPrompt("running shoes")

	done := make(chan error, 1)
	go func() {
		_, err := f.Generate(context.Background())
		done <- err
	}()

	<-svc.started
	assert.Equal(t, ModalGenerating, f.Snapshot().Modal)
	assert.False(t, f.CancelGenerator())

	_, err := f.Generate(context.Background())
	assert.ErrorIs(t, err, errs.ErrGeneratorNotOpen)

	close(svc.release)
	require.NoError(t, <-done)
	assert.Equal(t, ModalClosed, f.Snapshot().Modal)
}

func TestCancelGenerator(t *testing.T) {
	f, _ := newTestForm(&fakeService{})
	f.OpenGenerator()

	assert.True(t, f.CancelGenerator())
	assert.Equal(t, ModalClosed, f.Snapshot().Modal)
}

func TestApplyGenerated(t *testing.T) {
	f, _ := newTestForm(&fakeService{})
	require.NoError(t, f.SetField(domain.FieldBrand, "Sony"))
	f.Validate()

	stock := 25
	available := true
	f.ApplyGenerated(&dto.GeneratedProduct{
		Name:             "WH-1000XM5",
		Price:            decimal.NewNullDecimal(decimal.RequireFromString("349.99")),
		Category:         "Headphone",
		StockQuantity:    &stock,
		ProductAvailable: &available,
	})

	state := f.Snapshot()
	assert.Equal(t, "WH-1000XM5", state.Draft.Name)
	assert.Equal(t, "Sony", state.Draft.Brand)
	assert.Equal(t, "349.99", state.Draft.Price)
	assert.Equal(t, "Headphone", state.Draft.Category)
	assert.Equal(t, "25", state.Draft.StockQuantity)
	assert.True(t, state.Draft.ProductAvailable)
	assert.Empty(t, state.Errors.Name)
	assert.Empty(t, state.Errors.Price)
	assert.Equal(t, validator.MsgDescriptionRequired, state.Errors.Description)

	f.ApplyGenerated(nil)
	assert.Equal(t, "WH-1000XM5", f.Snapshot().Draft.Name)
}

func TestSubmitAfterCanceledContext(t *testing.T) {
	svc := &fakeService{addErr: context.Canceled}
	f, rec := newTestForm(svc)
	fillValid(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.Submit(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, []Notification{{Level: LevelError, Message: MsgAddFailed}}, rec.notifications)
}
