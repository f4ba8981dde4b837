package binfastq

import "github.com/bft-labs/binfastq/internal/domain"

// EventHandler receives notifications about finished conversions.
type EventHandler interface {
	OnConvertSuccess(event ConvertSuccessEvent)
	OnConvertError(event ConvertErrorEvent)
}

// ConvertSuccessEvent is emitted after records have been flushed.
type ConvertSuccessEvent struct {
	Summary Summary
}

// ConvertErrorEvent is emitted when a conversion fails.
type ConvertErrorEvent struct {
	Error error
}

// eventEmitterWrapper adapts EventHandler to the internal emitter interface.
type eventEmitterWrapper struct {
	handler EventHandler
}

func (e *eventEmitterWrapper) OnConvertSuccess(s domain.Summary) {
	if e.handler == nil {
		return
	}
	e.handler.OnConvertSuccess(ConvertSuccessEvent{Summary: s})
}

func (e *eventEmitterWrapper) OnConvertError(err error) {
	if e.handler == nil {
		return
	}
	e.handler.OnConvertError(ConvertErrorEvent{Error: err})
}
