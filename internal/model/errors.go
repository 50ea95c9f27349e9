package model

import "fmt"

var (
	ErrMessageNotFound  = fmt.Errorf("message not found")
	ErrNotMessageSender = fmt.Errorf("only the sender can delete a message")
)
