// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-engine/internal/config"
	"github.com/your-org/storefront-engine/internal/domain/cart"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
)

// Service handles checkout business logic. Nothing is submitted anywhere:
// the result of a checkout is a message and a deep link the shopper opens.
type Service struct {
	catalog catalog.Reader
	config  *config.Config
	log     *logrus.Logger
	now     func() time.Time
}

// NewService creates a new checkout service
func NewService(reader catalog.Reader, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		catalog: reader,
		config:  cfg,
		log:     log,
		now:     time.Now,
	}
}

// GetPaymentMethods returns stored and built-in payment methods
func (s *Service) GetPaymentMethods(ctx context.Context) ([]catalog.PaymentMethod, error) {
	stored, err := s.catalog.ListPaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	return EffectivePaymentMethods(stored), nil
}

// PrepareInquiry validates the checkout details against the cart lines and
// composes the inquiry message. Invalid details yield a *ValidationError.
func (s *Service) PrepareInquiry(ctx context.Context, details Details, lines []cart.Line) (*Inquiry, error) {
	details.Normalize()

	settings, err := s.catalog.GetSiteSettings(ctx)
	if err != nil {
		return nil, err
	}
	methods, err := s.GetPaymentMethods(ctx)
	if err != nil {
		return nil, err
	}

	validation := Validate(&details, *settings, methods, lines)
	if !validation.IsValid {
		return nil, &ValidationError{Validation: validation}
	}

	method, _ := FindPaymentMethod(methods, details.PaymentMethodID)

	var total int64
	for _, line := range lines {
		total += cart.LineSubtotal(line)
	}

	message := BuildMessage(settings.StoreName, details, method.Name, lines, total)
	link, err := MessengerURL(s.config.Messenger.BaseURL, message)
	if err != nil {
		return nil, err
	}

	inquiry := &Inquiry{
		Reference:     newReference(),
		StoreName:     settings.StoreName,
		Details:       details,
		PaymentMethod: method,
		Lines:         lines,
		Total:         total,
		Message:       message,
		MessengerURL:  link,
		CreatedAt:     s.now(),
	}

	s.log.WithFields(logrus.Fields{
		"reference":      inquiry.Reference,
		"lines":          len(lines),
		"total":          total,
		"service_type":   details.ServiceType,
		"payment_method": method.ID,
	}).Info("Checkout inquiry prepared")

	return inquiry, nil
}

// PrepareGeneralInquiry composes a free-form inquiry message and its link
func (s *Service) PrepareGeneralInquiry(ctx context.Context, inquiry GeneralInquiry) (*GeneralInquiryResult, error) {
	storeName := s.config.App.StoreName
	if settings, err := s.catalog.GetSiteSettings(ctx); err == nil {
		storeName = settings.StoreName
	} else {
		s.log.WithError(err).Warn("Falling back to configured store name")
	}

	message, err := inquiry.BuildMessage(storeName)
	if err != nil {
		return nil, err
	}
	link, err := MessengerURL(s.config.Messenger.BaseURL, message)
	if err != nil {
		return nil, err
	}

	return &GeneralInquiryResult{Message: message, MessengerURL: link}, nil
}

func newReference() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("INQ-%s", strings.ToUpper(id[:8]))
}
