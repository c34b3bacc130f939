// Package assistant owns the conversational shopping assistant: the message
// log, the active mode, the pending image attachment and the single in-flight
// request slot. It composes the generation client, the camera session and the
// recommendation resolver.
package assistant

import (
	"errors"

	"github.com/cyralabs/cyra-shop-backend/internal/product"
)

// Mode selects which request shape Submit dispatches.
type Mode string

const (
	ModeChat         Mode = "chat"
	ModeSkinAnalysis Mode = "skin-analysis"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

var (
	// ErrBusy rejects a submission while a request is already in flight.
	// Submissions are not queued.
	ErrBusy = errors.New("a request is already in flight")
	// ErrEmptyMessage rejects a submission with neither text nor attachment.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrNotSkinMode rejects attachment operations outside skin-analysis mode.
	ErrNotSkinMode = errors.New("attachments require skin-analysis mode")
	// ErrUnknownMode rejects a switch to a mode the controller does not know.
	ErrUnknownMode = errors.New("unknown assistant mode")
)

// TopicMessageAppended is the event bus topic every appended message is
// published on; the rendering collaborator subscribes to scroll to latest.
const TopicMessageAppended = "assistant:message"

// Message is one immutable entry of the append-only conversation log.
type Message struct {
	Role                    string            `json:"role"`
	Text                    string            `json:"text"`
	Image                   string            `json:"image,omitempty"`
	IsProductRecommendation bool              `json:"isProductRecommendation,omitempty"`
	RecommendedProductIDs   []string          `json:"recommendedProductIds,omitempty"`
	RecommendedProducts     []product.Product `json:"recommendedProducts,omitempty"`
}

// Canned replies; provider failures never surface raw error detail in the log.
const (
	greeting          = "Suasdey! I'm CYRA AI. How can I help you achieve glowing skin today?"
	apologyThinking   = "I'm having a little trouble thinking right now. Please try again."
	apologyConnecting = "I apologize, I'm having trouble connecting to the beauty server right now."
	apologyVision     = "I'm having trouble seeing the image clearly right now. Please try again later."
)
