package toast

import "github.com/riordanpawley/toaster/internal/domain"

// Recorder observes toast lifecycle events
type Recorder interface {
	ToastShown(t domain.Type)
	ToastPaused(t domain.Type)
	ToastExpired(t domain.Type)
	ToastDismissed(t domain.Type)
	ToastUnmounted(t domain.Type)
}

type nopRecorder struct{}

func (nopRecorder) ToastShown(domain.Type)     {}
func (nopRecorder) ToastPaused(domain.Type)    {}
func (nopRecorder) ToastExpired(domain.Type)   {}
func (nopRecorder) ToastDismissed(domain.Type) {}
func (nopRecorder) ToastUnmounted(domain.Type) {}
