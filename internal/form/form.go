// Package form holds the state of one "add product" form: the draft, the
// selected image, the field-error mapping, the submission flag and the
// generator dialog. A Form is safe for concurrent use; its lock is never held
// across a network call or a Notifier/Navigator callback.
package form

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/spf13/cast"

	"github.com/alimikegami/point-of-sales/product-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/product-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/product-admin/internal/service"
	"github.com/alimikegami/point-of-sales/product-admin/internal/validator"
	"github.com/alimikegami/point-of-sales/product-admin/pkg/errs"
)

const LandingRoute = "/"

const (
	MsgProductAdded   = "Product added successfully"
	MsgAddFailed      = "Error adding product"
	MsgGenerateFailed = "Error generating product. Please try again."
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level
	Message string
}

type Notifier interface {
	Notify(n Notification)
}

type Navigator interface {
	Navigate(route string)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

type NavigatorFunc func(route string)

func (f NavigatorFunc) Navigate(route string) { f(route) }

type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
	ModalGenerating
)

func (s ModalState) String() string {
	switch s {
	case ModalOpen:
		return "open"
	case ModalGenerating:
		return "generating"
	}
	return "closed"
}

// State is a copy of the form, safe to read without the lock.
type State struct {
	Draft     domain.DraftProduct
	Image     *domain.ProductImage
	Errors    domain.FieldErrors
	Loading   bool
	Validated bool
	Modal     ModalState
	Prompt    string
}

type Form struct {
	service   service.ProductService
	notifier  Notifier
	navigator Navigator

	mu        sync.Mutex
	draft     domain.DraftProduct
	image     *domain.ProductImage
	errors    domain.FieldErrors
	loading   bool
	validated bool
	modal     ModalState
	prompt    string
}

func New(svc service.ProductService, notifier Notifier, navigator Navigator) *Form {
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}
	if navigator == nil {
		navigator = NavigatorFunc(func(string) {})
	}
	return &Form{service: svc, notifier: notifier, navigator: navigator}
}

func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return State{
		Draft:     f.draft,
		Image:     f.image,
		Errors:    f.errors.Clone(),
		Loading:   f.loading,
		Validated: f.validated,
		Modal:     f.modal,
		Prompt:    f.prompt,
	}
}

// SetField stores raw input for a field and clears that field's error.
func (f *Form) SetField(field domain.Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case domain.FieldName:
		f.draft.Name = value
	case domain.FieldBrand:
		f.draft.Brand = value
	case domain.FieldDescription:
		f.draft.Description = value
	case domain.FieldPrice:
		f.draft.Price = value
	case domain.FieldCategory:
		f.draft.Category = value
	case domain.FieldStockQuantity:
		f.draft.StockQuantity = value
	case domain.FieldReleaseDate:
		f.draft.ReleaseDate = value
	case domain.FieldProductAvailable:
		available, err := cast.ToBoolE(strings.TrimSpace(value))
		if err != nil {
			return err
		}
		f.draft.ProductAvailable = available
	default:
		return errors.New("unknown form field " + string(field))
	}

	f.errors.Clear(field)
	return nil
}

func (f *Form) SetAvailable(available bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.draft.ProductAvailable = available
}

// SelectImage replaces the chosen file and re-checks it immediately.
// A nil image clears the selection but leaves the image error untouched.
func (f *Form) SelectImage(image *domain.ProductImage) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.image = image
	if image == nil {
		return f.errors.Image
	}

	msg := validator.ValidateImage(image)
	f.errors.Set(domain.FieldImage, msg)
	return msg
}

// Validate runs the validator over the current draft and replaces the error mapping.
func (f *Form) Validate() domain.FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.validated = true
	f.errors = validator.ValidateProduct(f.draft, f.image)
	return f.errors.Clone()
}

// Submit validates the draft and, when valid, sends it. Only one submission
// runs at a time. Whatever the server answers, the form leaves the loading
// state and navigates to the landing route; the returned error tells the
// caller what happened.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return errs.ErrSubmitInFlight
	}

	f.validated = true
	f.errors = validator.ValidateProduct(f.draft, f.image)
	if !f.errors.Empty() {
		f.mu.Unlock()
		return errs.ErrInvalidForm
	}

	f.loading = true
	draft, image := f.draft, *f.image
	f.mu.Unlock()

	err := f.service.AddProduct(ctx, draft, image)

	var notification *Notification
	var validationErr *errs.ValidationError

	f.mu.Lock()
	switch {
	case err == nil:
		notification = &Notification{Level: LevelSuccess, Message: MsgProductAdded}
	case errors.As(err, &validationErr):
		f.errors = domain.FieldErrorsFromMap(validationErr.Fields)
	default:
		notification = &Notification{Level: LevelError, Message: MsgAddFailed}
	}
	f.loading = false
	f.mu.Unlock()

	if notification != nil {
		f.notifier.Notify(*notification)
	}
	f.navigator.Navigate(LandingRoute)

	return err
}

// ApplyGenerated copies the non-empty generated values into the draft.
// Nothing calls it implicitly; callers of Generate decide whether to merge.
func (f *Form) ApplyGenerated(g *dto.GeneratedProduct) {
	if g == nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	set := func(field domain.Field, dst *string, value string) {
		if value == "" {
			return
		}
		*dst = value
		f.errors.Clear(field)
	}

	set(domain.FieldName, &f.draft.Name, g.Name)
	set(domain.FieldBrand, &f.draft.Brand, g.Brand)
	set(domain.FieldDescription, &f.draft.Description, g.Description)
	if g.Price.Valid {
		set(domain.FieldPrice, &f.draft.Price, g.Price.Decimal.String())
	}
	set(domain.FieldCategory, &f.draft.Category, g.Category)
	if g.StockQuantity != nil {
		set(domain.FieldStockQuantity, &f.draft.StockQuantity, cast.ToString(*g.StockQuantity))
	}
	set(domain.FieldReleaseDate, &f.draft.ReleaseDate, g.ReleaseDate)
	if g.ProductAvailable != nil {
		f.draft.ProductAvailable = *g.ProductAvailable
	}
}
