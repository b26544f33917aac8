package errors

import "fmt"

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrChannelNotOpen   = fmt.Errorf("channel not open")
	ErrChannelRetired   = fmt.Errorf("channel retired")
	ErrNoConversation   = fmt.Errorf("no conversation selected")
	ErrSendFailed       = fmt.Errorf("message could not be sent")
	ErrCallInProgress   = fmt.Errorf("a call is already in progress")
	ErrNoActiveCall     = fmt.Errorf("no active call")
	ErrTokenUnavailable = fmt.Errorf("media token unavailable")
	ErrUnknownFrame     = fmt.Errorf("unknown frame type")
)
