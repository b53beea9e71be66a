package models

import (
	"errors"

	"github.com/tomoki-abe/shuho/internal/message"
)

var (
	ErrAlreadySubmitted = errors.New(message.MsgAlreadySubmitted)
	ErrNotEditable      = errors.New(message.MsgReportNotEditable)
	ErrReportNotFound   = errors.New(message.MsgReportNotFound)
)
