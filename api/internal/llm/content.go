package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"carbon-coach/api/internal/util"
)

type ContentKind int

// The shapes a completion API returns message content in: a plain string,
// a list of typed blocks, or an already-parsed object.
const (
	KindText ContentKind = iota
	KindBlocks
	KindStructured
)

// ContentBlock is one element of block-list message content.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Content is a tagged variant over the message-content shape, so the
// normalization below stays in one place instead of duck-typing checks
// scattered through the handlers.
type Content struct {
	Kind       ContentKind
	Text       string
	Blocks     []ContentBlock
	Structured map[string]any
}

func TextContent(s string) Content { return Content{Kind: KindText, Text: s} }

func BlocksContent(blocks []ContentBlock) Content {
	return Content{Kind: KindBlocks, Blocks: blocks}
}

func StructuredContent(obj map[string]any) Content {
	return Content{Kind: KindStructured, Structured: obj}
}

// UnmarshalJSON picks the variant from the wire shape.
func (c *Content) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = TextContent(s)
		return nil
	}
	var blocks []ContentBlock
	if err := json.Unmarshal(b, &blocks); err == nil {
		*c = BlocksContent(blocks)
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err == nil {
		*c = StructuredContent(obj)
		return nil
	}
	return fmt.Errorf("%w: unsupported content shape", ErrMalformedResponse)
}

// Normalize turns raw message content into a parsed JSON object. Structured
// content passes through unchanged; text is parsed; for block lists the
// first textual block is parsed, with absent or empty text treated as "{}".
func (c Content) Normalize() (map[string]any, error) {
	switch c.Kind {
	case KindStructured:
		return c.Structured, nil
	case KindText:
		return parseObject(c.Text)
	case KindBlocks:
		text := "{}"
		for _, b := range c.Blocks {
			if b.Type == "text" {
				if strings.TrimSpace(b.Text) != "" {
					text = b.Text
				}
				break
			}
		}
		return parseObject(text)
	}
	return nil, fmt.Errorf("%w: unsupported content shape", ErrMalformedResponse)
}

func parseObject(s string) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(util.StripCodeFences(s)), &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return m, nil
}
