package model

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	attachmentPrefix    = "[file]"
	attachmentSeparator = "|"
)

// Body is the message payload: plain text or a file attachment reference.
// The wire format keeps the legacy delimited encoding in the content
// column; everything past the store boundary works with the tagged
// variant instead of re-parsing strings.
type Body interface {
	isBody()
}

type TextBody struct {
	Text string
}

func (TextBody) isBody() {}

type AttachmentBody struct {
	Name string
	URL  string
	Mime string
	Size int64
}

func (AttachmentBody) isBody() {}

// EncodeBody renders a body into the content column format:
// plain text, or "[file]name|url|mime|size" for attachments.
func EncodeBody(body Body) string {
	switch b := body.(type) {
	case AttachmentBody:
		return attachmentPrefix + strings.Join([]string{
			b.Name,
			b.URL,
			b.Mime,
			strconv.FormatInt(b.Size, 10),
		}, attachmentSeparator)
	case TextBody:
		return b.Text
	default:
		return ""
	}
}

// ParseBody decodes a content column value. A malformed attachment
// encoding degrades to plain text rather than failing the message.
func ParseBody(content string) Body {
	if !strings.HasPrefix(content, attachmentPrefix) {
		return TextBody{Text: content}
	}

	parts := strings.SplitN(strings.TrimPrefix(content, attachmentPrefix), attachmentSeparator, 4)
	if len(parts) != 4 {
		return TextBody{Text: content}
	}

	size, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil || size < 0 {
		return TextBody{Text: content}
	}

	return AttachmentBody{
		Name: parts[0],
		URL:  parts[1],
		Mime: parts[2],
		Size: size,
	}
}

// ValidateBody checks the fields an attachment must carry before it is
// accepted at the store boundary.
func ValidateBody(body Body) error {
	switch b := body.(type) {
	case TextBody:
		if strings.TrimSpace(b.Text) == "" {
			return fmt.Errorf("content cannot be empty")
		}
	case AttachmentBody:
		if strings.TrimSpace(b.Name) == "" {
			return fmt.Errorf("attachment name is required")
		}
		if strings.TrimSpace(b.URL) == "" {
			return fmt.Errorf("attachment url is required")
		}
		if strings.TrimSpace(b.Mime) == "" {
			return fmt.Errorf("attachment mime type is required")
		}
		if b.Size < 0 {
			return fmt.Errorf("attachment size cannot be negative")
		}
	default:
		return fmt.Errorf("unsupported message body")
	}
	return nil
}
