package form

import (
	"context"
	"strings"

	"github.com/alimikegami/point-of-sales/product-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/product-admin/pkg/errs"
)

func (f *Form) OpenGenerator() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.modal == ModalClosed {
		f.modal = ModalOpen
	}
}

func (f *Form) SetPrompt(prompt string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompt = prompt
}

// CancelGenerator closes an open dialog. It reports false while a
// generation is running.
func (f *Form) CancelGenerator() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.modal == ModalGenerating {
		return false
	}
	f.modal = ModalClosed
	return true
}

// Generate asks the API for a product matching the current prompt. On success
// the dialog closes, the prompt is cleared, the form navigates to the landing
// route and the generated data is returned without being merged.
func (f *Form) Generate(ctx context.Context) (*dto.GeneratedProduct, error) {
	f.mu.Lock()
	if f.modal != ModalOpen {
		f.mu.Unlock()
		return nil, errs.ErrGeneratorNotOpen
	}

	prompt := strings.TrimSpace(f.prompt)
	if prompt == "" {
		f.mu.Unlock()
		return nil, errs.ErrEmptyPrompt
	}

	f.modal = ModalGenerating
	f.mu.Unlock()

	generated, err := f.service.GenerateProduct(ctx, prompt)

	f.mu.Lock()
	if err != nil {
		f.modal = ModalOpen
		f.mu.Unlock()

		f.notifier.Notify(Notification{Level: LevelError, Message: MsgGenerateFailed})
		return nil, err
	}

	f.modal = ModalClosed
	f.prompt = ""
	f.mu.Unlock()

	f.navigator.Navigate(LandingRoute)
	return generated, nil
}
