package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"ocr-translator/internal/logger"
	"ocr-translator/models"
)

// Translator is the transport operation the controller depends on.
type Translator interface {
	SubmitTranslation(ctx context.Context, file models.FileHandle, targetLanguageCode, ocrLanguageCode string) (*models.TranslationResult, error)
}

// SubmissionController validates a selection, drives at most one translation
// round trip at a time and publishes the outcome. It exclusively owns the
// outcome cell; front ends observe it through OnChange.
type SubmissionController struct {
	translator Translator
	newID      func() string

	inFlight atomic.Bool
	requests atomic.Int64

	mu        sync.RWMutex
	outcome   models.Outcome
	listeners []func(models.Outcome)
}

// NewSubmissionController creates a controller in the Idle state.
func NewSubmissionController(translator Translator) *SubmissionController {
	return &SubmissionController{
		translator: translator,
		newID:      uuid.NewString,
		outcome:    models.IdleOutcome(),
	}
}

// OnChange registers a callback invoked with every published outcome.
// Callbacks run on the submitting goroutine.
func (c *SubmissionController) OnChange(fn func(models.Outcome)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Outcome returns the current outcome.
func (c *SubmissionController) Outcome() models.Outcome {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.outcome
}

// InFlight reports whether a submission holds the single request slot.
func (c *SubmissionController) InFlight() bool {
	return c.inFlight.Load()
}

// RequestCount is the number of round trips issued so far. Validation
// failures and dropped intents are not counted.
func (c *SubmissionController) RequestCount() int64 {
	return c.requests.Load()
}

// Submit runs one submission to completion and returns its terminal outcome.
// If another submission is in flight the intent is dropped and
// ErrSubmissionInFlight is returned with the current outcome.
func (c *SubmissionController) Submit(ctx context.Context, selection models.Selection) (models.Outcome, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		logger.Debug("Submit ignored: translation already in flight")
		return c.Outcome(), ErrSubmissionInFlight
	}
	defer c.inFlight.Store(false)

	return c.run(ctx, selection), nil
}

// SubmitAsync starts a submission on its own goroutine and reports whether
// it was accepted. The attempt cannot be canceled once started.
func (c *SubmissionController) SubmitAsync(selection models.Selection) bool {
	if !c.inFlight.CompareAndSwap(false, true) {
		logger.Debug("Submit ignored: translation already in flight")
		return false
	}

	go func() {
		defer c.inFlight.Store(false)
		c.run(context.Background(), selection)
	}()
	return true
}

func (c *SubmissionController) run(ctx context.Context, selection models.Selection) models.Outcome {
	if err := selection.Validate(); err != nil {
		return c.publish(models.FailureOutcome("", FailureMessage(err)))
	}

	attemptID := c.newID()
	log := logger.L().With().
		Str("attempt", attemptID).
		Str("file", selection.File.Name()).
		Str("target", selection.TargetLanguageCode).
		Logger()

	c.publish(models.PendingOutcome(attemptID))
	c.requests.Add(1)
	log.Info().Msg("Translation submitted")

	result, err := c.translator.SubmitTranslation(
		WithRequestID(ctx, attemptID),
		selection.File,
		selection.TargetLanguageCode,
		selection.EffectiveOCRLanguage(),
	)
	if err != nil {
		message := FailureMessage(err)
		log.Warn().Err(err).Str("message", message).Msg("Translation failed")
		return c.publish(models.FailureOutcome(attemptID, message))
	}

	log.Info().Str("detected", result.DetectedLanguage).Msg("Translation completed")
	return c.publish(models.SuccessOutcome(attemptID, *result))
}

func (c *SubmissionController) publish(outcome models.Outcome) models.Outcome {
	c.mu.Lock()
	c.outcome = outcome
	listeners := append([]func(models.Outcome){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(outcome)
	}
	return outcome
}
